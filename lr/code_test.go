package lr

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestGoSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	a, err := automaton(t, makeExprGrammar(t), SLR)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = a.GoSource(&buf, "calc"); err != nil {
		t.Fatal(err)
	}
	src := buf.String()
	t.Log(src)
	if _, err = format.Source(buf.Bytes()); err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}
	assert.True(t, strings.HasPrefix(src, "// Code generated by pgen"))
	assert.Contains(t, src, "package calc\n")
	assert.Equal(t, a.Size(), strings.Count(src, "func (p *parser) parse"))
	assert.Contains(t, src, fmt.Sprintf("p.parse%d()\n\tif p.accepted", a.Start()))
	//
	e, _ := a.Goto(a.Start(), "E")
	assert.Contains(t, src, fmt.Sprintf("\t\tcase \"E\":\n\t\t\tsym, n = p.parse%d()\n", e))
	n, _ := a.Goto(a.Start(), "n")
	assert.Contains(t, src, fmt.Sprintf("\tcase \"n\":\n\t\tp.lex.Advance()\n\t\tsym, n = p.parse%d()\n", n))
	assert.Contains(t, src, fmt.Sprintf("func (p *parser) parse%d() (string, int) {\n\tswitch", n),
		"a pure reduce state needs no goto loop")
	assert.Contains(t, src, "\tcase \")\", \"*\", \"+\", EOI:\n\t\tp.reduce(5)\n\t\treturn \"F\", 1\n")
	assert.Equal(t, 1, strings.Count(src, "p.accepted = true"))
}

func TestGoSourceEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	a, err := automaton(t, makeLLGrammar(t), LR1)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = a.GoSource(&buf, "calc"); err != nil {
		t.Fatal(err)
	}
	if _, err = format.Source(buf.Bytes()); err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}
	src := buf.String()
	if !strings.Contains(src, "p.reduce(2)\n\t\tsym, n = \"R\", 1\n") {
		t.Errorf("expected reduction of R ➞ ε to continue with a goto on R:\n%s", src)
	}
}
