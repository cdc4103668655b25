/*
Command pgen is an interactive command line tool to experiment with grammars
and the parsers of this module.

Grammars are either loaded from an EBNF file or taken from a built-in
arithmetic expression grammar. pgen will describe the grammar's analysis
(FIRST and FOLLOW sets, LL(1) table or LR automaton), parse token input with a
chosen method and display the resulting AST.

	pgen describe --method slr
	pgen describe --method lr1 --dot automaton.dot
	pgen parse --method ll "1 + 2 * (3 - 4)"
	pgen repl --grammar expr.ebnf --start Expr

Input is split into tokens by rune category. Runs of digits are
delivered as terminal "number", every other token uses its lexeme as terminal.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// tracer traces with key 'pgen.cli'
func tracer() tracing.Trace {
	return tracing.Select("pgen.cli")
}

func main() {
	initDisplay()
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
