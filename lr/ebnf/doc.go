/*
Package ebnf loads grammars from EBNF notation.

The notation is the one of golang.org/x/exp/ebnf, i.e. the notation used in
the Go language specification:

	Expr   = Term { ( "+" | "-" ) Term } .
	Term   = Factor { ( "*" | "/" ) Factor } .
	Factor = number | "(" Expr ")" .
	number = "0" … "9" { "0" … "9" } .

Productions with an upper case name become non-terminals of the grammar.
Productions with a lower case name are lexical productions: they are not
translated into rules, but references to them are terminals of the grammar,
to be delivered by a scanner. Quoted tokens are terminals as well.

Options, groups and repetitions are translated into synthetic non-terminals,
named after the production they occur in, e.g. "Expr_rep1". Repetitions
are expanded right-recursively, which makes them fit for LL(1) parsing.

	g, err := ebnf.Load("arith", strings.NewReader(src), "Expr")

Rules for productions are tagged with the production name, synthetic rules
splice their children into the enclosing rule's tree node.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ebnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgen.ebnf'.
func tracer() tracing.Trace {
	return tracing.Select("pgen.ebnf")
}
