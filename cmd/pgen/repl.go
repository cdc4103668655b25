package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse lines of input",
		Long: `repl starts an interactive loop. Every line entered is parsed and its
AST is printed. Quit with <ctrl>D or by entering 'quit'.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	repl, err := readline.New("pgen> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println(fmt.Sprintf("Parsing with method %s, quit with <ctrl>D", s.method))
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if line == "quit" {
			break
		}
		ast, err := s.parse(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		printAST(ast)
	}
	pterm.Info.Println("Good bye!")
	return nil
}
