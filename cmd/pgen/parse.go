package main

import (
	"errors"
	"strings"

	"github.com/npillmayer/pgen/lr"
	"github.com/npillmayer/pgen/terex"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse <input>",
		Short:   "Parse input and print the AST",
		Example: `  pgen parse --method lr1 "1 + 2 * 3"`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	ast, err := s.parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	printAST(ast)
	return nil
}

func (s *session) parse(input string) (terex.Node, error) {
	tracer().Debugf("parsing %q with method %s, scanner %s", input, s.method, *rootFlags.scanner)
	ast, err := s.parser.Parse(s.scan(input))
	if err != nil {
		var perr *lr.ParseError
		if errors.As(err, &perr) && len(perr.Expected) > 0 {
			tracer().Infof("expected one of %s", symbols(perr.Expected))
		}
		return nil, err
	}
	return ast, nil
}

// printAST prints an AST as an s-expression and as a tree.
func printAST(ast terex.Node) {
	pterm.Info.Println(terex.String(ast))
	items := terex.Leveled(ast)
	ll := make(pterm.LeveledList, len(items))
	for i, item := range items {
		ll[i] = pterm.LeveledListItem{Level: item.Level, Text: item.Text}
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
