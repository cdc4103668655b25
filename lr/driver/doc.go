/*
Package driver provides a shift/reduce parser, executing LR automata built by
package lr. The same parser serves LR(0), SLR and LR(1) automata: the
variant only influences the construction of the automaton, not its execution.

This parser is intended for small to moderate grammars, e.g. for configuration
input or small domain-specific languages. It is *not* intended for full-fledged
programming languages (there are superb other tools around for these kinds of
usages, usually creating LALR(1)-parsers).

The main focus for this implementation is adaptability and on-the-fly usage.
Clients are able to construct the automaton from a grammar and use the
parser directly, without a code-generation or compile step. If you want, you
can create a grammar from user input and use a parser for it in a couple of
lines of code.

# Usage

Clients construct a grammar, usually by using a grammar builder:

	b := lr.NewGrammarBuilder("Signed Variables Grammar")
	b.LHS("Var").N("Sign").T("a").End()  // Var  ➞ Sign a
	b.LHS("Sign").T("+").End()           // Sign ➞ +
	b.LHS("Sign").T("-").End()           // Sign ➞ -
	b.LHS("Sign").Epsilon()              // Sign ➞
	g, err := b.Grammar()

This grammar is subjected to grammar analysis and automaton construction.

	ga, err := lr.Analysis(g)
	a, err := lr.NewAutomaton(ga, lr.SLR)
	if err != nil { ... }  // cannot use an SLR parser

Finally parse some input:

	p := driver.NewParser(a)
	ast, err := p.Parse(pgen.Fields("+ a"))

Clients instrument the grammar with semantic actions to construct the AST.
Without explicit actions, every rule produces a list tagged with the rule's
default tag.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package driver

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgen.parse'.
func tracer() tracing.Trace {
	return tracing.Select("pgen.parse")
}
