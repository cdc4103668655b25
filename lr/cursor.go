package lr

import (
	"github.com/npillmayer/pgen"
)

// Cursor is a pull-based reader over a token source with exactly one token of
// lookahead. After the source is exhausted, the cursor will deliver EOI for
// every subsequent call.
//
// Every token is checked against the terminals of a grammar as soon as it is
// pulled from the source. Tokens not in the grammar's alphabet result in an
// error wrapping ErrUnknownToken. This includes a token carrying symbol EOI:
// only an exhausted source ends the input.
type Cursor struct {
	src  pgen.TokenSource
	g    *Grammar
	la   pgen.Token
	pos  int
	done bool
}

// NewCursor creates a cursor and pulls the first token from src.
// A nil source is treated as empty input.
func NewCursor(src pgen.TokenSource, g *Grammar) (*Cursor, error) {
	c := &Cursor{src: src, g: g, pos: -1}
	if err := c.Advance(); err != nil {
		return c, err
	}
	return c, nil
}

// Lookahead returns the current lookahead token.
func (c *Cursor) Lookahead() pgen.Token {
	return c.la
}

// Pos returns the 0-based index of the lookahead within the input.
func (c *Cursor) Pos() int {
	return c.pos
}

// AtEnd is true if the lookahead is EOI.
func (c *Cursor) AtEnd() bool {
	return c.done
}

// Advance pulls the next token from the source.
func (c *Cursor) Advance() error {
	if c.done {
		return nil
	}
	c.pos++
	var tok pgen.Token
	ok := false
	if c.src != nil {
		tok, ok = c.src.Next()
	}
	if !ok {
		c.la, c.done = pgen.Token{Sym: pgen.EOI}, true
		tracer().Debugf("cursor reached end of input after %d tokens", c.pos)
		return nil
	}
	c.la = tok
	if !c.g.IsTerminal(tok.Sym) {
		return c.Error(ErrUnknownToken)
	}
	return nil
}

// Error creates a parse error of a given kind for the current lookahead.
func (c *Cursor) Error(kind error) *ParseError {
	return &ParseError{Kind: kind, Token: c.la, Pos: c.pos, State: -1}
}
