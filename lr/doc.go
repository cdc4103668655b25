/*
Package lr implements grammars, static grammar analysis and the construction
of LR automata. The LL(1) and LR parsers of this module share the grammar and
analysis types of this package.

# Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. A symbol is a terminal
if it never occurs as the left hand side of a rule. Grammars may contain
epsilon-productions. Rules may carry semantic actions, constructing an AST.

Example:

	b := lr.NewGrammarBuilder("G")
	b.LHS("E").N("T").End()                                            // E ➞ T
	b.LHS("E").N("E").T("+").N("T").Action(lr.TagWith("+", lr.Child(0), lr.Child(2))).End()
	b.LHS("T").N("F").End()                                            // T ➞ F
	b.LHS("T").N("T").T("*").N("F").Action(lr.TagWith("*", lr.Child(0), lr.Child(2))).End()
	b.LHS("F").T("n").End()                                            // F ➞ n
	b.LHS("F").T("(").N("E").T(")").Action(lr.Build(lr.Child(1))).End()
	g, err := b.Grammar()

This results in the following grammar:

	g.Dump()

	0: E ➞ T
	1: E ➞ E + T
	2: T ➞ F
	3: T ➞ T * F
	4: F ➞ n
	5: F ➞ ( E )

# Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LRAnalysis object, which computes FIRST and
FOLLOW sets for the grammar.

	ga, err := lr.Analysis(g)
	for _, N := range g.NonTerminals() {
	    fmt.Printf("FIRST(%s) = %v", N, ga.First(N))
	}

	// Output:
	FIRST(E) = {(, n}
	FIRST(F) = {(, n}
	FIRST(T) = {(, n}

# Parser Construction

Using grammar analysis as input, a bottom-up parser can be constructed.
The characteristic finite state machine is built for one of the variants
LR0, SLR or LR1. Grammars unsuitable for the chosen variant are rejected
with a shift/reduce or reduce/reduce conflict error.

	a, err := lr.NewAutomaton(ga, lr.SLR)
	if errors.Is(err, lr.ErrShiftReduce) { … }

The automaton is then handed to the parser of package driver. It can be
exported to Graphviz's Dot-format for debugging.

# Configuration

Setting the gconf key "pgen.dump-automaton" to true will dump every automaton
to the trace after construction.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgen.lr'.
func tracer() tracing.Trace {
	return tracing.Select("pgen.lr")
}
