package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/lr"
	"github.com/npillmayer/pgen/terex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// E ➞ T R       R ➞ ε  |  + E
// T ➞ F S       S ➞ ε  |  * T
// F ➞ n  |  ( E )
func makeGrammar(t *testing.T) *lr.Grammar {
	b := lr.NewGrammarBuilder("LL")
	b.LHS("E").N("T").N("R").Action(lr.Rewrite(infix)).End()
	b.LHS("R").Action(lr.Build()).Epsilon()
	b.LHS("R").T("+").N("E").Action(lr.Build(lr.Child(0), lr.Child(1))).End()
	b.LHS("T").N("F").N("S").Action(lr.Rewrite(infix)).End()
	b.LHS("S").Action(lr.Build()).Epsilon()
	b.LHS("S").T("*").N("T").Action(lr.Build(lr.Child(0), lr.Child(1))).End()
	b.LHS("F").T("n").Action(lr.Build(lr.Child(0))).End()
	b.LHS("F").T("(").N("E").T(")").Action(lr.Build(lr.Child(1))).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// infix combines x with an optional (op y) into (op x y).
func infix(ch []terex.Node) terex.Node {
	if tail, ok := ch[1].(terex.List); ok && len(tail) == 2 {
		return terex.L(tail[0], ch[0], tail[1])
	}
	return ch[0]
}

func makeTable(t *testing.T, g *lr.Grammar) *Table {
	ga, err := lr.Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	table, err := NewTable(ga)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.ll")
	defer teardown()
	//
	table := makeTable(t, makeGrammar(t))
	table.Dump()
	for _, test := range []struct {
		A, la pgen.Symbol
		rule  int
	}{
		{"E", "n", 0},
		{"E", "(", 0},
		{"R", pgen.EOI, 1},
		{"R", ")", 1},
		{"R", "+", 2},
		{"S", "+", 4},
		{"S", "*", 5},
		{"F", "(", 7},
	} {
		rule, ok := table.Lookup(test.A, test.la)
		if !ok || rule != test.rule {
			t.Errorf("expected table(%s, %s) = %d, is %d", test.A, test.la, test.rule, rule)
		}
	}
	if _, ok := table.Lookup("E", "+"); ok {
		t.Errorf("expected no entry for (E, +)")
	}
	if _, ok := table.Lookup("X", "+"); ok {
		t.Errorf("expected no entry for unknown non-terminal")
	}
	assert.Equal(t, []pgen.Symbol{"(", "n"}, table.Expected("F"))
	assert.Equal(t, []pgen.Symbol{"(", ")", "*", "+", "n", pgen.EOI}, table.Columns())
	if !table.Equals(makeTable(t, makeGrammar(t))) {
		t.Errorf("expected tables for identical grammars to be equal")
	}
}

func TestTableConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.ll")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("Conflict")
	b.LHS("S").T("x").T("a").End()
	b.LHS("S").T("x").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga, err := lr.Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewTable(ga)
	var gerr *lr.GrammarError
	if !errors.As(err, &gerr) || !errors.Is(err, lr.ErrTableConflict) {
		t.Fatalf("expected table conflict, have %v", err)
	}
	assert.Equal(t, pgen.Symbol("x"), gerr.Symbol)
	assert.Equal(t, []int{0, 1}, gerr.Rules)
}

func TestLeftRecursionConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.ll")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("LeftRec")
	b.LHS("E").N("E").T("+").T("n").End()
	b.LHS("E").T("n").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga, err := lr.Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = NewTable(ga); !errors.Is(err, lr.ErrTableConflict) {
		t.Errorf("expected left recursive grammar not to be LL(1), have %v", err)
	}
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.ll")
	defer teardown()
	//
	p := NewParser(makeTable(t, makeGrammar(t)))
	for _, test := range []struct {
		input, ast string
	}{
		{"n + n * ( n )", "(+ n (* n n))"},
		{"n", "n"},
		{"( ( n ) )", "n"},
		{"n * n + n", "(+ (* n n) n)"},
	} {
		ast, err := p.Parse(pgen.Fields(test.input))
		if err != nil {
			t.Errorf("cannot parse %q: %v", test.input, err)
			continue
		}
		assert.Equal(t, test.ast, terex.String(ast))
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.ll")
	defer teardown()
	//
	p := NewParser(makeTable(t, makeGrammar(t)))
	_, err := p.Parse(pgen.Fields("n ?"))
	assert.True(t, errors.Is(err, lr.ErrUnknownToken), "have %v", err)
	//
	_, err = p.Parse(pgen.Fields("n +"))
	var perr *lr.ParseError
	if assert.True(t, errors.As(err, &perr), "have %v", err) {
		assert.Equal(t, lr.ErrSyntax, perr.Kind)
		assert.Equal(t, pgen.Symbol("E"), perr.NonTerm)
		assert.Equal(t, pgen.EOI, perr.Token.Sym)
		assert.Equal(t, []pgen.Symbol{"(", "n"}, perr.Expected)
	}
	//
	_, err = p.Parse(pgen.Fields("( n n"))
	if assert.True(t, errors.As(err, &perr), "have %v", err) {
		assert.Equal(t, lr.ErrSyntax, perr.Kind)
		assert.Equal(t, 2, perr.Pos)
	}
	//
	_, err = p.Parse(pgen.Fields("n )"))
	assert.True(t, errors.Is(err, lr.ErrExtraInput), "have %v", err)
	//
	_, err = p.Parse(pgen.Fields(""))
	assert.True(t, errors.Is(err, lr.ErrSyntax), "have %v", err)
	//
	ast, err := p.Parse(pgen.Fields("n #eof + ? ? )"))
	assert.True(t, errors.Is(err, lr.ErrUnknownToken), "have %v", err)
	assert.Nil(t, ast, "no partial AST on error")
}

type countingObserver struct {
	rules, tokens int
}

func (o *countingObserver) RuleApplied(*lr.Rule, terex.Node) { o.rules++ }
func (o *countingObserver) TokenAccepted(pgen.Token, int)    { o.tokens++ }
func (o *countingObserver) Transition(int, pgen.Symbol, int) {}

func TestObserver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.ll")
	defer teardown()
	//
	o := &countingObserver{}
	p := NewParser(makeTable(t, makeGrammar(t)), WithObserver(o))
	if _, err := p.Parse(pgen.Fields("n")); err != nil {
		t.Fatal(err)
	}
	if o.rules != 5 || o.tokens != 1 {
		t.Errorf("expected 5 rules and 1 token to be observed, have %d and %d", o.rules, o.tokens)
	}
}
