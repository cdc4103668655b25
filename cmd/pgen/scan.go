package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/lr"
	"github.com/npillmayer/pgen/lr/scanner"
	"github.com/npillmayer/pgen/lr/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// numberTerminal is the grammar symbol every scanner reports numbers as.
const numberTerminal = "number"

// makeScanner creates the tokenizing function for flag --scanner. Numbers are
// terminal "number", every other token uses its lexeme as terminal.
func makeScanner(name string, g *lr.Grammar) (func(string) pgen.TokenSource, error) {
	switch strings.ToLower(name) {
	case "", "cat":
		return catSource, nil
	case "go":
		return goSource, nil
	case "lexmachine":
		lm, err := newLexer(g)
		if err != nil {
			return nil, fmt.Errorf("cannot create lexmachine scanner: %w", err)
		}
		return func(input string) pgen.TokenSource {
			sc, err := lm.Scanner(input)
			if err != nil {
				tracer().Errorf("lexmachine: %v", err)
			}
			sc.SetErrorHandler(logScanError)
			return scanner.Source(sc, lm.Classifier(map[string]string{"NUM": numberTerminal}))
		}, nil
	}
	return nil, fmt.Errorf("unknown scanner %q", name)
}

func logScanError(err error) {
	tracer().Errorf("scanner: %v", err)
}

// catSource splits input into tokens by rune category.
func catSource(input string) pgen.TokenSource {
	tokenizer := scanner.NewCatTokenizer(strings.NewReader(input), nil)
	tokenizer.SetErrorHandler(logScanError)
	c := scanner.NewClassifier().Map(scanner.TokType(scanner.CatDigit), numberTerminal)
	return scanner.Source(tokenizer, c)
}

// goSource tokenizes input like Go source.
func goSource(input string) pgen.TokenSource {
	tokenizer := scanner.GoTokenizer("input", strings.NewReader(input))
	tokenizer.SetErrorHandler(logScanError)
	c := scanner.NewClassifier().Map(scanner.Int, numberTerminal).Map(scanner.Float, numberTerminal)
	return scanner.Source(tokenizer, c)
}

var keywordPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
var literalPattern = regexp.MustCompile(`^[^A-Za-z0-9_\s]+$`)

// newLexer compiles a lexmachine DFA for the terminals of g. Terminals made of
// letters become keywords, terminals made of symbol characters become literals.
// Any other single character is scanned as a token of its own, to be rejected
// by the parser.
func newLexer(g *lr.Grammar) (*lexmach.LMAdapter, error) {
	var literals, keywords []string
	tokenIds := map[string]int{"NUM": 1, "ID": 2, "OTHER": 3}
	for _, t := range g.Terminals() {
		term := string(t)
		switch {
		case term == numberTerminal:
			continue
		case keywordPattern.MatchString(term):
			keywords = append(keywords, term)
		case literalPattern.MatchString(term):
			literals = append(literals, term)
		default:
			tracer().Infof("lexmachine scanner cannot match terminal %q", term)
			continue
		}
		tokenIds[term] = 10 + len(tokenIds)
	}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), lexmach.MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), lexmach.MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`.`), lexmach.MakeToken("OTHER", tokenIds["OTHER"]))
	}
	return lexmach.NewLMAdapter(init, literals, keywords, tokenIds)
}
