/*
Package ll provides LL(1) parsing tables and a predictive parser. Clients have
to use the tools of package lr to prepare a grammar and its analysis. The
parser utilizes the table to create a left derivation for a given input,
provided through a token source.

Package ll can only handle LL(1) grammars, i.e. grammars without left recursion
and without common prefixes of alternative rules. Grammars which are not LL(1)
are rejected with an error wrapping lr.ErrTableConflict; no attempt is made to
transform them.

# Usage

Clients construct a grammar, usually by using a grammar builder:

	b := lr.NewGrammarBuilder("Signed Variables Grammar")
	b.LHS("Var").N("Sign").T("a").End()  // Var  ➞ Sign a
	b.LHS("Sign").T("+").End()           // Sign ➞ +
	b.LHS("Sign").T("-").End()           // Sign ➞ -
	b.LHS("Sign").Epsilon()              // Sign ➞
	g, err := b.Grammar()

This grammar is subjected to grammar analysis and table generation.

	ga, err := lr.Analysis(g)
	table, err := ll.NewTable(ga)
	if errors.Is(err, lr.ErrTableConflict) { … }  // cannot use an LL(1) parser

Finally parse some input:

	p := ll.NewParser(table)
	ast, err := p.Parse(pgen.Fields("+ a"))

Tables are immutable and may be shared by any number of parsers.

# Configuration

Setting the gconf key "pgen.dump-table" to true will dump every table to the
trace after construction.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgen.ll'.
func tracer() tracing.Trace {
	return tracing.Select("pgen.ll")
}
