/*
Package scanner defines an interface for scanners to be used with the parsers
of this module, and adapts scanners to token sources.

Parsers consume grammar symbols, while scanners produce tokens categorized by
token types. A Classifier maps token types to terminal symbols. Function
Source combines a scanner with a classifier, yielding a pgen.TokenSource.

Two default scanner implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', and (2) a tokenizer splitting input into runs of rune categories.
An adapter for lexmachine lives in sub-package `lexmach`.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pgen.scanner")
}

// Token categories of text/scanner, re-exported for clients of GoTokenizer.
// Every tokenizer of this package signals end of input with EOF.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// TokType is the category of a token. Each tokenizer defines its own set of
// categories, with EOF being the only one shared.
type TokType int

// Token is what a tokenizer hands out for each lexeme of the input.
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// Tokenizer is the interface every scanner of this package implements.
// Scanning errors do not stop a tokenizer; they are handed to the error
// handler and scanning continues.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

// Reporter routes scanning errors to an error handler. Tokenizers embed it.
// Without a handler, errors are traced.
type Reporter struct {
	handler func(error)
}

// SetErrorHandler sets an error handler. nil restores tracing of errors.
func (r *Reporter) SetErrorHandler(h func(error)) {
	r.handler = h
}

// Report hands err to the error handler.
func (r *Reporter) Report(err error) {
	if r.handler == nil {
		tracer().Errorf("scanner error: %v", err)
		return
	}
	r.handler(err)
}

// Lexed is the token type produced by the tokenizers of this module.
type Lexed struct {
	Type   TokType
	Text   string
	Extent Span
}

// EOFAt returns an end-of-input token positioned at pos.
func EOFAt(pos uint64) Lexed {
	return Lexed{Type: EOF, Extent: Span{pos, pos}}
}

// TokType is part of interface Token.
func (l Lexed) TokType() TokType { return l.Type }

// Lexeme is part of interface Token.
func (l Lexed) Lexeme() string { return l.Text }

// Span is part of interface Token.
func (l Lexed) Span() Span { return l.Extent }

// --- Go tokenizer -----------------------------------------------------------

// GoScanner tokenizes input the way the Go compiler would, backed by
// text/scanner. Create one with GoTokenizer.
type GoScanner struct {
	Reporter
	sc           scanner.Scanner
	unifyStrings bool
}

var _ Tokenizer = (*GoScanner)(nil)

// GoTokenizer creates a tokenizer for Go-like tokens. sourceID names the input
// in error messages.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *GoScanner {
	gs := &GoScanner{}
	gs.sc.Init(input)
	gs.sc.Filename = sourceID
	gs.sc.Error = func(s *scanner.Scanner, msg string) {
		gs.Report(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(gs)
	}
	return gs
}

// NextToken is part of the Tokenizer interface.
func (gs *GoScanner) NextToken() Token {
	r := gs.sc.Scan()
	if r == scanner.EOF {
		tracer().Debugf("Go tokenizer reached end of input")
		return EOFAt(uint64(gs.sc.Pos().Offset))
	}
	if gs.unifyStrings && (r == scanner.RawString || r == scanner.Char) {
		r = scanner.String
	}
	return Lexed{
		Type:   TokType(r),
		Text:   gs.sc.TokenText(),
		Extent: Span{uint64(gs.sc.Position.Offset), uint64(gs.sc.Pos().Offset)},
	}
}

// Option configures a Go tokenizer.
type Option func(*GoScanner)

// SkipComments lets the tokenizer drop comments (the default) or deliver them
// as tokens of type Comment.
func SkipComments(b bool) Option {
	return func(gs *GoScanner) {
		if b {
			gs.sc.Mode |= scanner.SkipComments
		} else {
			gs.sc.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings reports raw strings and character literals as type String.
func UnifyStrings(b bool) Option {
	return func(gs *GoScanner) {
		gs.unifyStrings = b
	}
}

// --- Spans ------------------------------------------------------------

// Span holds the byte offsets of a lexeme: its start and the offset just
// behind it.
type Span [2]uint64

func (s Span) From() uint64 { return s[0] }
func (s Span) To() uint64   { return s[1] }
func (s Span) Len() uint64  { return s[1] - s[0] }

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Classification --------------------------------------------------------

// Classifier maps tokens to terminal symbols of a grammar. Token types
// registered with Map are mapped to a fixed symbol, e.g. all integers to
// terminal "n". All other tokens use their lexeme as symbol, which is
// appropriate for operators and keywords.
type Classifier struct {
	classes map[TokType]pgen.Symbol
}

// NewClassifier creates an empty classifier, mapping every token to its lexeme.
func NewClassifier() *Classifier {
	return &Classifier{classes: make(map[TokType]pgen.Symbol)}
}

// Map registers a terminal symbol for a token type.
func (c *Classifier) Map(tt TokType, sym string) *Classifier {
	c.classes[tt] = pgen.Symbol(sym)
	return c
}

// Symbol returns the terminal symbol for a token.
func (c *Classifier) Symbol(tok Token) pgen.Symbol {
	if c != nil {
		if sym, ok := c.classes[tok.TokType()]; ok {
			return sym
		}
	}
	return pgen.Symbol(tok.Lexeme())
}

// Source adapts a tokenizer to the pgen.TokenSource interface, as expected by
// parsers. The lexeme of every token is preserved.
func Source(t Tokenizer, c *Classifier) pgen.TokenSource {
	return &tokenSource{tokenizer: t, classifier: c}
}

type tokenSource struct {
	tokenizer  Tokenizer
	classifier *Classifier
	done       bool
}

func (src *tokenSource) Next() (pgen.Token, bool) {
	if src.done {
		return pgen.Token{}, false
	}
	tok := src.tokenizer.NextToken()
	if tok.TokType() == EOF {
		src.done = true
		return pgen.Token{}, false
	}
	sym := src.classifier.Symbol(tok)
	tracer().Debugf("token %q classified as %s", tok.Lexeme(), sym)
	return pgen.Token{Sym: sym, Lexeme: tok.Lexeme()}, true
}
