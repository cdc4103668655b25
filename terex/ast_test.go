package terex

import (
	"testing"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestListString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.terex")
	defer teardown()
	//
	n := pgen.Token{Sym: "n", Lexeme: "42"}
	l := L("+", n, L("*", pgen.Tok("n"), 3), List{}, nil)
	assert.Equal(t, "(+ 42 (* n 3) () nil)", l.String())
	assert.Equal(t, 5, l.Length())
	assert.Equal(t, "+", l.First())
	assert.Equal(t, 4, l.Rest().Length())
	assert.Nil(t, List{}.First())
	assert.Nil(t, List{}.Rest())
	assert.True(t, IsList(l))
	assert.False(t, IsList(n))
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.terex")
	defer teardown()
	//
	a := L("+", pgen.Tok("n"), L("*", pgen.Tok("n"), pgen.Tok("n")))
	b := L("+", pgen.Tok("n"), L("*", pgen.Tok("n"), pgen.Tok("n")))
	c := L("+", pgen.Tok("n"), L("*", pgen.Tok("n"), pgen.Token{Sym: "n", Lexeme: "1"}))
	if !Equal(a, b) {
		t.Errorf("expected %v = %v", a, b)
	}
	if Equal(a, c) {
		t.Errorf("expected %v ≠ %v", a, c)
	}
	if Equal(a, pgen.Tok("n")) || Equal(L(), nil) {
		t.Errorf("lists never equal leafs")
	}
}

func TestLeveled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.terex")
	defer teardown()
	//
	tree := L("+", pgen.Tok("a"), L("*", pgen.Tok("b"), pgen.Tok("c")))
	items := Leveled(tree)
	expected := []Item{
		{0, "+"},
		{1, "a"},
		{1, "*"},
		{2, "b"},
		{2, "c"},
	}
	assert.Equal(t, expected, items)
	items = Leveled(L(L("x"), pgen.Tok("y")))
	assert.Equal(t, []Item{{0, "·"}, {1, "x"}, {1, "y"}}, items)
}
