package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode"
)

// --- Category codes --------------------------------------------------------

// CatCode is a category of runes. Runs of runes with identical category form
// a token, unless the category is a loner category.
type CatCode int16

// Rune categories of the default categorizer. IllegalCatCode is reserved.
const (
	IllegalCatCode CatCode = iota
	CatSpace
	CatLetter
	CatDigit
	CatSymbol
)

// RuneCategorizer assigns categories to runes. Loner runes form tokens of
// length 1, regardless of the category of the next rune.
type RuneCategorizer interface {
	Cat(r rune) (cat CatCode, isLoner bool)
}

// CatSeq is a run of runes of the same category.
type CatSeq struct {
	Cat    CatCode // catcode of all runes in this sequence
	Length int     // length of sequence in terms of runes
}

type defaultCategorizer struct{}

// DefaultCategorizer groups letters (and underscores) and digits (and dots)
// into runs, skips whitespace, and treats every other rune as a loner.
var DefaultCategorizer RuneCategorizer = defaultCategorizer{}

func (defaultCategorizer) Cat(r rune) (CatCode, bool) {
	switch {
	case unicode.IsSpace(r):
		return CatSpace, false
	case unicode.IsLetter(r) || r == '_':
		return CatLetter, false
	case unicode.IsDigit(r) || r == '.':
		return CatDigit, false
	}
	return CatSymbol, true
}

// --- Category sequence reader ----------------------------------------------

// CatSeqReader reads runs of runes of identical category.
type CatSeqReader struct {
	isEof      bool
	next       rune
	hasNext    bool
	start, end uint64 // as bytes index
	reader     io.RuneReader
	writer     bytes.Buffer
}

// NewCatSeqReader creates a reader for category sequences.
func NewCatSeqReader(r io.RuneReader) *CatSeqReader {
	csr := &CatSeqReader{
		reader: r,
	}
	return csr
}

// Next reads the next run of runes of the same category. The runes are
// appended to the output, see OutputString. At the end of input Next
// returns io.EOF.
func (rs *CatSeqReader) Next(rc RuneCategorizer) (csq CatSeq, err error) {
	var r rune
	r, err = rs.lookahead()
	if err != nil && err != io.EOF {
		return csq, fmt.Errorf("scanner cannot read sequence (%w)", err)
	} else if err == io.EOF {
		return csq, io.EOF
	}
	var isLoner bool
	csq.Cat, isLoner = rc.Cat(r)
	rs.match(r)
	csq.Length = 1
	if isLoner { // rune category is not allowed to form sequences
		return csq, nil
	}
	for {
		r, err = rs.lookahead()
		if err == io.EOF {
			return csq, nil
		} else if err != nil {
			return csq, fmt.Errorf("scanner cannot read sequence (%w)", err)
		}
		if cc, loner := rc.Cat(r); cc != csq.Cat || loner {
			return csq, nil
		}
		rs.match(r)
		csq.Length++
	}
}

// OutputString returns the runes matched since the last call to ResetOutput.
func (rs *CatSeqReader) OutputString() string {
	return rs.writer.String()
}

// ResetOutput clears the output and starts a new span.
func (rs *CatSeqReader) ResetOutput() {
	if rs == nil {
		return
	}
	rs.writer.Reset()
	rs.start = rs.end
}

// Span returns the byte positions of the current output.
func (rs *CatSeqReader) Span() Span {
	return Span{rs.start, rs.end}
}

func (rs *CatSeqReader) lookahead() (r rune, err error) {
	if rs == nil || rs.isEof {
		return unicode.ReplacementChar, io.EOF
	}
	if rs.hasNext {
		return rs.next, nil
	}
	r, _, err = rs.reader.ReadRune()
	if err == io.EOF {
		rs.isEof = true
		return unicode.ReplacementChar, io.EOF
	} else if err != nil {
		return 0, err
	}
	rs.next, rs.hasNext = r, true
	return r, nil
}

func (rs *CatSeqReader) match(r rune) {
	rs.writer.WriteRune(r)
	rs.end += uint64(len(string(r)))
	rs.hasNext = false
}

// --- Category tokenizer ----------------------------------------------------

// CatTokenizer is a tokenizer producing a token for every run of runes of
// the same category. Whitespace is skipped. Token types are the category codes.
//
// With the default categorizer, input "n+n*(12)" results in tokens
//
//	n  +  n  *  (  12  )
type CatTokenizer struct {
	Reporter
	reader *CatSeqReader
	cat    RuneCategorizer
}

var _ Tokenizer = (*CatTokenizer)(nil)

// NewCatTokenizer creates a tokenizer for input. If rc is nil, DefaultCategorizer
// is used.
func NewCatTokenizer(input io.Reader, rc RuneCategorizer) *CatTokenizer {
	if rc == nil {
		rc = DefaultCategorizer
	}
	return &CatTokenizer{
		reader: NewCatSeqReader(bufio.NewReader(input)),
		cat:    rc,
	}
}

// NextToken is part of the Tokenizer interface.
func (t *CatTokenizer) NextToken() Token {
	for {
		csq, err := t.reader.Next(t.cat)
		if err != nil {
			if err != io.EOF {
				t.Report(err)
			}
			return EOFAt(t.reader.Span().To())
		}
		lexeme, span := t.reader.OutputString(), t.reader.Span()
		t.reader.ResetOutput()
		if csq.Cat == CatSpace {
			continue
		}
		tracer().Debugf("cat token %q, category %d, length %d", lexeme, csq.Cat, csq.Length)
		return Lexed{Type: TokType(csq.Cat), Text: lexeme, Extent: span}
	}
}
