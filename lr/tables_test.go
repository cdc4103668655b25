package lr

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func automaton(t *testing.T, g *Grammar, v Variant) (*Automaton, error) {
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	return NewAutomaton(ga, v)
}

func TestSLRAutomaton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	a, err := automaton(t, makeExprGrammar(t), SLR)
	if err != nil {
		t.Fatal(err)
	}
	a.Dump()
	if a.Size() != 12 {
		t.Errorf("expected SLR automaton for expression grammar to have 12 states, has %d", a.Size())
	}
	s, ok := a.Goto(a.Start(), "E")
	if !ok {
		t.Fatalf("expected goto on E from start state")
	}
	if !a.State(s).Accept {
		t.Errorf("expected state %d to be accepting", s)
	}
	if rule, ok := a.Reduce(s, pgen.EOI); !ok || rule != AugmentID {
		t.Errorf("expected state %d to accept on EOI", s)
	}
	if _, ok := a.Reduce(s, "+"); ok {
		t.Errorf("accepting state must not reduce on '+'")
	}
	n, _ := a.Goto(a.Start(), "n")
	if rule, ok := a.Reduce(n, "*"); !ok || rule != 5 {
		t.Errorf("expected reduce F ➞ n on '*' after shifting n")
	}
	if _, ok := a.Reduce(n, "("); ok {
		t.Errorf("'(' is not in FOLLOW(F), SLR must not reduce on it")
	}
	assert.Equal(t, []pgen.Symbol{"(", "n"}, a.Expected(a.Start()))
}

func TestAutomatonIsReproducible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	for _, v := range []Variant{SLR, LR1} {
		a1, err := automaton(t, makeExprGrammar(t), v)
		if err != nil {
			t.Fatal(err)
		}
		a2, err := automaton(t, makeExprGrammar(t), v)
		if err != nil {
			t.Fatal(err)
		}
		if !a1.Equals(a2) {
			t.Errorf("expected two %s automata for the same grammar to be equal", v.Name())
		}
	}
}

func TestLR1HasMoreStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	small, err := automaton(t, makeExprGrammar(t), SLR)
	if err != nil {
		t.Fatal(err)
	}
	large, err := automaton(t, makeExprGrammar(t), LR1)
	if err != nil {
		t.Fatal(err)
	}
	if large.Size() <= small.Size() {
		t.Errorf("expected LR(1) automaton to be larger than SLR, %d ≤ %d", large.Size(), small.Size())
	}
}

func TestLR0Conflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	_, err := automaton(t, makeExprGrammar(t), LR0)
	if !errors.Is(err, ErrShiftReduce) {
		t.Errorf("expected LR(0) shift/reduce conflict for expression grammar, have %v", err)
	}
}

// S ➞ L = R  |  R
// L ➞ * R  |  id
// R ➞ L
func makeAssignGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Assign")
	b.LHS("S").N("L").T("=").N("R").End()
	b.LHS("S").N("R").End()
	b.LHS("L").T("*").N("R").End()
	b.LHS("L").T("id").End()
	b.LHS("R").N("L").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestLR1AcceptsNonSLRGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	_, err := automaton(t, makeAssignGrammar(t), SLR)
	var gerr *GrammarError
	if !errors.As(err, &gerr) || !errors.Is(err, ErrShiftReduce) {
		t.Fatalf("expected SLR shift/reduce conflict, have %v", err)
	}
	if gerr.Symbol != "=" {
		t.Errorf("expected conflict on '=', is on %q", gerr.Symbol)
	}
	if _, err = automaton(t, makeAssignGrammar(t), LR1); err != nil {
		t.Errorf("expected grammar to be LR(1), have %v", err)
	}
}

func TestDanglingElse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("If")
	b.LHS("S").T("if").N("E").T("then").N("S").End()
	b.LHS("S").T("if").N("E").T("then").N("S").T("else").N("S").End()
	b.LHS("S").T("a").End()
	b.LHS("E").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []Variant{SLR, LR1} {
		_, err = automaton(t, g, v)
		if !errors.Is(err, ErrShiftReduce) {
			t.Errorf("expected %s shift/reduce conflict for dangling else, have %v", v.Name(), err)
		}
	}
}

func TestReduceReduceConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("RR")
	b.LHS("S").N("A").End()
	b.LHS("S").N("B").End()
	b.LHS("A").T("x").End()
	b.LHS("B").T("x").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	_, err = automaton(t, g, SLR)
	var gerr *GrammarError
	if !errors.As(err, &gerr) || gerr.Kind != ErrReduceReduce {
		t.Fatalf("expected reduce/reduce conflict, have %v", err)
	}
	assert.Equal(t, []int{2, 3}, gerr.Rules)
	assert.Equal(t, pgen.EOI, gerr.Symbol)
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	a, err := automaton(t, makeExprGrammar(t), SLR)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = a.GraphViz(&buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph {") || !strings.Contains(dot, `s000 -> s001 [label="("]`) {
		t.Errorf("unexpected DOT output:\n%s", dot)
	}
	if !strings.Contains(dot, "lightgray") {
		t.Errorf("expected accepting state to be highlighted")
	}
}
