package ebnf

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/ll"
	"github.com/npillmayer/pgen/lr"
	"github.com/npillmayer/pgen/lr/driver"
	"github.com/npillmayer/pgen/lr/scanner"
	"github.com/npillmayer/pgen/terex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const arith = `
Expr   = Term { ( "+" | "-" ) Term } .
Term   = Factor { ( "*" | "/" ) Factor } .
Factor = number | "(" Expr ")" .
number = "0" … "9" { "0" … "9" } .
`

func loadArith(t *testing.T) *lr.Grammar {
	g, err := Load("arith", strings.NewReader(arith), "Expr")
	if err != nil {
		t.Fatalf("cannot load grammar: %v", err)
	}
	return g
}

func source(input string) pgen.TokenSource {
	c := scanner.NewClassifier().Map(scanner.Int, "number")
	return scanner.Source(scanner.GoTokenizer("test", strings.NewReader(input)), c)
}

func TestLoadRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.ebnf")
	defer teardown()
	//
	g := loadArith(t)
	g.Dump()
	if g.Start() != "Expr" {
		t.Errorf("expected start symbol to be Expr, is %s", g.Start())
	}
	if g.Size() != 12 {
		t.Errorf("expected grammar to have 12 rules, has %d", g.Size())
	}
	if !g.IsTerminal("number") || !g.IsTerminal("+") || !g.IsTerminal("(") {
		t.Errorf("expected number, '+' and '(' to be terminals: %v", g.Terminals())
	}
	if g.IsNonTerminal("number") {
		t.Errorf("lexical production 'number' should not be converted into rules")
	}
	rep := g.RulesFor("Expr_rep1")
	if len(rep) != 2 || !rep[1].IsEpsilon() {
		t.Fatalf("expected repetition Expr_rep1 to have 2 rules, last one ε: %v", rep)
	}
	if rep[0].String() != "6: Expr_rep1 ➞ Expr_grp2 Term Expr_rep1" {
		t.Errorf("repetition should be right-recursive, is %v", rep[0])
	}
	if len(g.RulesFor("Expr_grp2")) != 2 {
		t.Errorf("expected group Expr_grp2 to have 2 alternatives")
	}
}

func TestLoadOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.ebnf")
	defer teardown()
	//
	g, err := Load("opt", strings.NewReader(`S = "a" [ "b" ] . Empty = .`), "S")
	if err == nil {
		t.Errorf("expected unreachable production Empty to be rejected")
	}
	g, err = Load("opt", strings.NewReader(`S = "a" [ "b" ] E . E = .`), "S")
	if err != nil {
		t.Fatal(err)
	}
	opt := g.RulesFor("S_opt1")
	if len(opt) != 2 || opt[0].IsEpsilon() || !opt[1].IsEpsilon() {
		t.Errorf("expected option to have rules S_opt1 ➞ b | ε, have %v", opt)
	}
	if len(g.RulesFor("E")) != 1 || !g.RulesFor("E")[0].IsEpsilon() {
		t.Errorf("expected empty production E to become an ε-rule")
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.ebnf")
	defer teardown()
	//
	for i, test := range []struct {
		src, start string
	}{
		{`S = "a" S2 .`, "S"},            // undefined
		{`S = "a" … "z" .`, "S"},         // range in non-lexical production
		{`S = "a" `, "S"},                // syntax
		{`S = "a" . s = "b" .`, "s"},     // lexical start
		{`S = "a" . T = "b" .`, "Start"}, // no such start
	} {
		_, err := Load("err", strings.NewReader(test.src), test.start)
		if err == nil {
			t.Errorf("test %d: expected grammar %q to be rejected", i, test.src)
		} else {
			t.Logf("test %d: %v", i, err)
		}
	}
}

func TestParseLoadedLL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.ebnf")
	defer teardown()
	//
	g := loadArith(t)
	ga, err := lr.Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	table, err := ll.NewTable(ga)
	if err != nil {
		t.Fatalf("expected loaded grammar to be LL(1): %v", err)
	}
	ast, err := ll.NewParser(table).Parse(source("1 + 2"))
	if err != nil {
		t.Fatal(err)
	}
	expected := "(Expr (Term (Factor 1) ()) ((+ (Term (Factor 2) ()))))"
	if terex.String(ast) != expected {
		t.Errorf("expected AST %s, have %s", expected, terex.String(ast))
	}
}

func TestParseLoadedLR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.ebnf")
	defer teardown()
	//
	g := loadArith(t)
	ga, err := lr.Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	a, err := lr.NewAutomaton(ga, lr.LR1)
	if err != nil {
		t.Fatalf("expected loaded grammar to be LR(1): %v", err)
	}
	p := driver.NewParser(a)
	ast, err := p.Parse(source("(1) * 2"))
	if err != nil {
		t.Fatal(err)
	}
	expected := "(Expr (Term (Factor ( (Expr (Term (Factor 1) ()) ()) )) ((* (Factor 2)))) ())"
	if terex.String(ast) != expected {
		t.Errorf("expected AST %s, have %s", expected, terex.String(ast))
	}
	_, err = p.Parse(source("1 + * 2"))
	if !errors.Is(err, lr.ErrSyntax) {
		t.Errorf("expected syntax error, have %v", err)
	}
}

func TestLoadDefaultStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.ebnf")
	defer teardown()
	//
	g, err := Load("arith", strings.NewReader(arith), "")
	if err != nil {
		t.Fatal(err)
	}
	if g.Start() != "Expr" {
		t.Errorf("expected first production Expr to be the start symbol, is %s", g.Start())
	}
}
