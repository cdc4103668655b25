package lexmach

import (
	"strings"

	"github.com/npillmayer/pgen/lr/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'pgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pgen.scanner")
}

// LMAdapter holds a compiled lexmachine DFA. It hands out a scanner for
// each input.
type LMAdapter struct {
	Lexer    *lexmachine.Lexer
	tokenIds map[string]int
}

// NewLMAdapter compiles a lexer from literals ('[', ":=", …), keywords ("if",
// "for", …) and the patterns added by init. tokenIds maps token names,
// literals and keywords to token types.
//
// Literals and keywords are added to the lexer ahead of the patterns of init.
// For input matched by a keyword and a pattern with the same length, e.g. an
// identifier pattern, the keyword wins.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string,
	tokenIds map[string]int) (*LMAdapter, error) {
	//
	lexer := lexmachine.NewLexer()
	for _, lit := range literals {
		lexer.Add(literalPattern(lit), MakeToken(lit, tokenIds[lit]))
	}
	for _, kw := range keywords {
		lexer.Add([]byte(strings.ToLower(kw)), MakeToken(kw, tokenIds[kw]))
	}
	if init != nil {
		init(lexer)
	}
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("lexmachine cannot compile DFA: %v", err)
		return nil, err
	}
	return &LMAdapter{Lexer: lexer, tokenIds: tokenIds}, nil
}

// literalPattern escapes every rune of a literal.
func literalPattern(lit string) []byte {
	var b strings.Builder
	for _, r := range lit {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return []byte(b.String())
}

// Scanner creates a tokenizer for input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s}, nil
}

// Classifier creates a token classifier for scanners of this adapter.
// Parameter terminals maps token names (as given to NewLMAdapter) to terminal
// symbols of a grammar. Token types not mentioned use their lexeme as symbol,
// which suits literals and keywords.
func (lm *LMAdapter) Classifier(terminals map[string]string) *scanner.Classifier {
	c := scanner.NewClassifier()
	for name, sym := range terminals {
		if id, ok := lm.tokenIds[name]; ok {
			c.Map(scanner.TokType(id), sym)
		} else {
			tracer().Infof("lexmachine adapter does not know token %q", name)
		}
	}
	return c
}

// LMScanner wraps a lexmachine scanner into a scanner.Tokenizer.
type LMScanner struct {
	scanner.Reporter
	scanner *lexmachine.Scanner
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// NextToken is part of the Tokenizer interface. Input no pattern matches is
// reported to the error handler and skipped.
func (lms *LMScanner) NextToken() scanner.Token {
	if lms.scanner == nil {
		return scanner.EOFAt(0)
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil && !eof {
		lms.Report(err)
		ui, ok := err.(*machines.UnconsumedInput)
		if !ok {
			eof = true
			break
		}
		lms.scanner.TC = ui.FailTC
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.EOFAt(uint64(lms.scanner.TC))
	}
	t := tok.(*lexmachine.Token)
	tracer().Debugf("lexmachine token %q, type %d", t.Lexeme, t.Type)
	from := uint64(t.TC)
	return scanner.Lexed{
		Type:   scanner.TokType(t.Type),
		Text:   string(t.Lexeme),
		Extent: scanner.Span{from, from + uint64(len(t.Lexeme))},
	}
}

// Skip is a lexer action dropping the match, e.g. for whitespace.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a lexer action producing a token of type id. name is
// informational only.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
