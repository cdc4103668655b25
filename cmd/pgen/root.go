package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/ll"
	"github.com/npillmayer/pgen/lr"
	"github.com/npillmayer/pgen/lr/driver"
	"github.com/npillmayer/pgen/lr/ebnf"
	"github.com/npillmayer/pgen/terex"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	grammar *string
	start   *string
	method  *string
	scanner *string
	trace   *string
}{}

var rootCmd = &cobra.Command{
	Use:   "pgen",
	Short: "Analyse grammars and parse input with LL(1) or LR parsers",
	Long: `pgen loads a context-free grammar, either from an EBNF file or a
built-in expression grammar, and
- describes FIRST/FOLLOW sets, the LL(1) table or the LR automaton,
- parses input with a predictive or a shift/reduce parser.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupConfig(cliConfig{}, *rootFlags.trace)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	rootFlags.grammar = pf.StringP("grammar", "g", "", "EBNF grammar file (default: built-in expression grammar)")
	rootFlags.start = pf.StringP("start", "s", "", "start symbol of the EBNF grammar (default: first production)")
	rootFlags.method = pf.StringP("method", "m", "slr", "parsing method [ll|lr0|slr|lr1]")
	rootFlags.scanner = pf.String("scanner", "cat", "scanner for the input [cat|go|lexmachine]")
	rootFlags.trace = pf.StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

// --- Grammar and parser setup ----------------------------------------------

// loadGrammar reads the grammar given by flag --grammar, or creates the
// built-in grammar suitable for the parsing method.
func loadGrammar(method string) (*lr.Grammar, error) {
	if *rootFlags.grammar == "" {
		if method == "ll" {
			return makeLLExprGrammar()
		}
		return makeExprGrammar()
	}
	f, err := os.Open(*rootFlags.grammar)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar file: %w", err)
	}
	defer f.Close()
	return ebnf.Load(*rootFlags.grammar, f, *rootFlags.start)
}

// A parser is either an LL(1) parser or an LR driver.
type parser interface {
	Parse(pgen.TokenSource) (terex.Node, error)
}

// session bundles a grammar with its analysis and parser tables.
type session struct {
	method string
	g      *lr.Grammar
	ga     *lr.LRAnalysis
	table  *ll.Table     // for method ll
	a      *lr.Automaton // for LR methods
	parser parser
	scan   func(input string) pgen.TokenSource
}

// newSession loads the grammar and builds tables for the method given by
// flag --method.
func newSession() (*session, error) {
	method := strings.ToLower(*rootFlags.method)
	s := &session{method: method}
	var err error
	if s.g, err = loadGrammar(method); err != nil {
		return nil, err
	}
	s.g.Dump()
	if s.scan, err = makeScanner(*rootFlags.scanner, s.g); err != nil {
		return nil, err
	}
	if s.ga, err = lr.Analysis(s.g); err != nil {
		return nil, err
	}
	if method == "ll" {
		if s.table, err = ll.NewTable(s.ga); err != nil {
			return nil, err
		}
		s.parser = ll.NewParser(s.table)
		return s, nil
	}
	variant, err := lr.VariantByName(method)
	if err != nil {
		return nil, err
	}
	if s.a, err = lr.NewAutomaton(s.ga, variant); err != nil {
		return nil, err
	}
	s.parser = driver.NewParser(s.a)
	return s, nil
}
