package scanner

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLexerPeek(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.scanner")
	defer teardown()
	//
	input := "test!"
	stream := NewCatSeqReader(bufio.NewReader(strings.NewReader(input)))
	for i := 0; i < 5; i++ {
		r, err := stream.lookahead()
		if err != nil {
			t.Error(err)
		}
		if r != []rune(input)[i] {
			t.Errorf("expected rune #%d to be %#U, is %#U", i, input[i], r)
		}
		stream.match(r)
	}
	_, err := stream.lookahead()
	if err != io.EOF {
		t.Error("expected error to be EOF; isn't")
	}
	if stream.OutputString() != input {
		t.Errorf("expected output to be %q, is %q", input, stream.OutputString())
	}
}

func TestCatSeqDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.scanner")
	defer teardown()
	//
	for _, test := range []struct {
		input  string
		cat    CatCode
		length int
	}{
		{"abc ;", CatLetter, 3},
		{"x_1", CatLetter, 2},
		{"3.14+", CatDigit, 4},
		{"   x", CatSpace, 3},
		{"();", CatSymbol, 1},
		{"++", CatSymbol, 1},
	} {
		csr := NewCatSeqReader(bufio.NewReader(strings.NewReader(test.input)))
		csq, err := csr.Next(DefaultCategorizer)
		if err != nil {
			t.Error(err)
		}
		if csq.Cat != test.cat || csq.Length != test.length {
			t.Errorf("%q: expected %d|%d, have %d|%d", test.input, test.cat, test.length, csq.Cat, csq.Length)
		}
	}
}

func TestCatSeqCustom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.scanner")
	defer teardown()
	//
	rc := testCategorizer("<>=!", "+-", "(")
	csr := NewCatSeqReader(bufio.NewReader(strings.NewReader("<=+-((")))
	var runs []string
	for {
		csq, err := csr.Next(rc)
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		runs = append(runs, csr.OutputString())
		csr.ResetOutput()
		t.Logf("run of category %d, length %d", csq.Cat, csq.Length)
	}
	if r := strings.Join(runs, " "); r != "<= +- ( (" {
		t.Errorf("expected runs '<= +- ( (', have '%s'", r)
	}
}

func TestCatTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.scanner")
	defer teardown()
	//
	tokenizer := NewCatTokenizer(strings.NewReader("n+n * (12)"), nil)
	expected := []string{"n", "+", "n", "*", "(", "12", ")"}
	var lexemes []string
	for token := tokenizer.NextToken(); token.TokType() != EOF; token = tokenizer.NextToken() {
		t.Logf(" %4d | %6s | %v", token.TokType(), token.Lexeme(), token.Span())
		lexemes = append(lexemes, token.Lexeme())
	}
	if strings.Join(lexemes, " ") != strings.Join(expected, " ") {
		t.Errorf("expected tokens %v, have %v", expected, lexemes)
	}
}

func TestCatTokenizerSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.scanner")
	defer teardown()
	//
	tokenizer := NewCatTokenizer(strings.NewReader("ab  12"), nil)
	first := tokenizer.NextToken()
	second := tokenizer.NextToken()
	if first.Span() != (Span{0, 2}) {
		t.Errorf("expected span of %q to be (0…2), is %v", first.Lexeme(), first.Span())
	}
	if second.Span() != (Span{4, 6}) || second.TokType() != TokType(CatDigit) {
		t.Errorf("expected digits at (4…6), have %q at %v", second.Lexeme(), second.Span())
	}
	if tokenizer.NextToken().TokType() != EOF {
		t.Errorf("expected EOF after 2 tokens")
	}
}

// ---------------------------------------------------------------------------

type ctgrzr []string

func testCategorizer(c ...string) ctgrzr {
	return ctgrzr(c)
}

func (ct ctgrzr) Cat(r rune) (CatCode, bool) {
	for i, s := range ct {
		if strings.ContainsRune(s, r) {
			return CatCode(i + 1), len(s) == 1
		}
	}
	return IllegalCatCode, true
}
