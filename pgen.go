package pgen

import (
	"fmt"
	"strings"
)

// --- Symbols ---------------------------------------------------------------

// Symbol is a grammar symbol, either a terminal or a non-terminal. Whether a
// symbol is a terminal is decided by the grammar: symbols never occuring as
// the left hand side of a rule are terminals.
type Symbol string

// EOI is the end-of-input sentinel. It is never part of a grammar's alphabet,
// but will be injected as the last token of every input stream.
const EOI Symbol = "#eof"

func (s Symbol) String() string {
	return string(s)
}

// --- A general purpose interface for tokens --------------------------------

// Token represents an input token. Parsers will only inspect Sym, which has to
// be a terminal of the grammar. Lexeme is an optional text as it appeared in the
// input stream. Tokens are used as leafs of syntax trees.
//
// An example would be a token for a number:
//
//	Sym    = "n"       // terminal symbol of the grammar
//	Lexeme = "3.1416"  // lexeme as it appeared in the input stream
type Token struct {
	Sym    Symbol
	Lexeme string
}

// Tok creates a token for a terminal without a lexeme.
func Tok(sym Symbol) Token {
	return Token{Sym: sym}
}

func (t Token) String() string {
	if t.Lexeme != "" {
		return t.Lexeme
	}
	return string(t.Sym)
}

// TokenSource is a pull interface for parsers to receive input tokens.
// Next returns false as soon as the input is exhausted. Parsers will call
// Next at most once for each input token and buffer one token of lookahead.
type TokenSource interface {
	Next() (Token, bool)
}

// --- Slice backed token sources --------------------------------------------

// TokenSlice is a TokenSource for a pre-tokenized input.
type TokenSlice struct {
	tokens []Token
	pos    int
}

var _ TokenSource = (*TokenSlice)(nil)

// Tokens creates a token source from a list of terminal symbols.
func Tokens(syms ...string) *TokenSlice {
	toks := make([]Token, len(syms))
	for i, s := range syms {
		toks[i] = Token{Sym: Symbol(s)}
	}
	return &TokenSlice{tokens: toks}
}

// Fields creates a token source from a string of whitespace-separated terminals.
//
//	src := pgen.Fields("n + n * ( n )")
func Fields(input string) *TokenSlice {
	return Tokens(strings.Fields(input)...)
}

// FromTokens creates a token source from a slice of tokens.
func FromTokens(toks []Token) *TokenSlice {
	return &TokenSlice{tokens: toks}
}

// Next is part of interface TokenSource.
func (ts *TokenSlice) Next() (Token, bool) {
	if ts == nil || ts.pos >= len(ts.tokens) {
		return Token{}, false
	}
	t := ts.tokens[ts.pos]
	ts.pos++
	return t, true
}

// Len returns the number of tokens not yet consumed.
func (ts *TokenSlice) Len() int {
	if ts == nil {
		return 0
	}
	return len(ts.tokens) - ts.pos
}

func (ts *TokenSlice) String() string {
	return fmt.Sprintf("%v", ts.tokens[ts.pos:])
}
