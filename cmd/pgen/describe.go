package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var describeFlags = struct {
	dot  *string
	code *string
	pkg  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe a grammar and its parser tables",
		Example: `  pgen describe --method lr1
  pgen describe --grammar expr.ebnf --method ll
  pgen describe --method slr --code exprparser/parser.go --package exprparser`,
		Args: cobra.NoArgs,
		RunE: runDescribe,
	}
	describeFlags.dot = cmd.Flags().String("dot", "", "write the LR automaton in GraphViz DOT format to a file")
	describeFlags.code = cmd.Flags().String("code", "", "write a recursive-ascent recognizer for the LR automaton to a Go file")
	describeFlags.pkg = cmd.Flags().String("package", "parser", "package name of the generated Go file")
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	describeGrammar(s.g)
	describeAnalysis(s.ga)
	if s.table != nil {
		return describeTable(s)
	}
	if err = describeAutomaton(s.a); err != nil {
		return err
	}
	if *describeFlags.dot != "" {
		if err = writeFile(*describeFlags.dot, s.a.GraphViz); err != nil {
			return err
		}
		pterm.Info.Println(fmt.Sprintf("automaton written to %s", *describeFlags.dot))
	}
	if *describeFlags.code != "" {
		gen := func(w io.Writer) error { return s.a.GoSource(w, *describeFlags.pkg) }
		if err = writeFile(*describeFlags.code, gen); err != nil {
			return err
		}
		pterm.Info.Println(fmt.Sprintf("recognizer written to %s", *describeFlags.code))
	}
	return nil
}

// writeFile creates a file and lets write fill it. An error on closing the
// file is reported as well.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("cannot close %s: %w", path, cerr)
		}
	}()
	return write(f)
}

func describeGrammar(g *lr.Grammar) {
	pterm.DefaultSection.Println(fmt.Sprintf("Grammar %s", g.Name))
	data := pterm.TableData{{"#", "Rule", "Action"}}
	for _, r := range g.Rules() {
		data = append(data, []string{strconv.Itoa(r.ID), ruleText(r), r.Action.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func ruleText(r *lr.Rule) string {
	body := symbols(r.Body)
	if body == "" {
		body = "ε"
	}
	return fmt.Sprintf("%s ➞ %s", r.Head, body)
}

func describeAnalysis(ga *lr.LRAnalysis) {
	pterm.DefaultSection.Println("FIRST and FOLLOW")
	data := pterm.TableData{{"Non-terminal", "FIRST", "FOLLOW"}}
	for _, A := range ga.Grammar().NonTerminals() {
		data = append(data, []string{string(A), ga.First(A).String(), ga.Follow(A).String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func describeTable(s *session) error {
	pterm.DefaultSection.Println("LL(1) table")
	header := []string{""}
	for _, la := range s.table.Columns() {
		header = append(header, string(la))
	}
	data := pterm.TableData{header}
	for _, A := range s.g.NonTerminals() {
		row := []string{string(A)}
		for _, la := range s.table.Columns() {
			if id, ok := s.table.Lookup(A, la); ok {
				row = append(row, strconv.Itoa(id))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func describeAutomaton(a *lr.Automaton) error {
	pterm.DefaultSection.Println(fmt.Sprintf("%s automaton with %d states", a.Variant().Name(), a.Size()))
	data := pterm.TableData{{"State", "Items", "Transitions", "Reductions"}}
	g := a.Grammar()
	for id := 0; id < a.Size(); id++ {
		st := a.State(id)
		items := make([]string, len(st.Items))
		for i, it := range st.Items {
			items[i] = g.ItemString(it)
		}
		var trans, reds []string
		for _, t := range a.Transitions(id) {
			trans = append(trans, fmt.Sprintf("%s → %d", t.Symbol, t.Target))
		}
		for _, r := range a.Reductions(id) {
			if r.Rule == lr.AugmentID {
				reds = append(reds, fmt.Sprintf("%s: accept", r.Lookahead))
				continue
			}
			reds = append(reds, fmt.Sprintf("%s: %d", r.Lookahead, r.Rule))
		}
		data = append(data, []string{
			strconv.Itoa(id),
			strings.Join(items, "\n"),
			strings.Join(trans, "\n"),
			strings.Join(reds, "\n"),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func symbols(syms []pgen.Symbol) string {
	s := make([]string, len(syms))
	for i, sym := range syms {
		s[i] = string(sym)
	}
	return strings.Join(s, " ")
}
