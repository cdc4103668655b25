package main

import (
	"github.com/npillmayer/pgen/lr"
	"github.com/npillmayer/pgen/terex"
)

// We provide a simple expression grammar as a default for LR parsing:
//
//	Expr   ➞ Expr SumOp Term  |  Term
//	Term   ➞ Term ProdOp Factor  |  Factor
//	Factor ➞ number  |  ( Expr )
//	SumOp  ➞ +  |  -
//	ProdOp ➞ *  |  /
//
// The AST for "1 + 2 * 3" is (+ 1 (* 2 3)).
func makeExprGrammar() (*lr.Grammar, error) {
	b := lr.NewGrammarBuilder("Expr")
	b.LHS("Expr").N("Expr").N("SumOp").N("Term").Action(binop).End()
	b.LHS("Expr").N("Term").Action(lr.Build(lr.Child(0))).End()
	b.LHS("Term").N("Term").N("ProdOp").N("Factor").Action(binop).End()
	b.LHS("Term").N("Factor").Action(lr.Build(lr.Child(0))).End()
	b.LHS("Factor").T("number").Action(lr.Build(lr.Child(0))).End()
	b.LHS("Factor").T("(").N("Expr").T(")").Action(lr.Build(lr.Child(1))).End()
	for _, op := range []string{"+", "-"} {
		b.LHS("SumOp").T(op).Action(lr.Build(lr.Child(0))).End()
	}
	for _, op := range []string{"*", "/"} {
		b.LHS("ProdOp").T(op).Action(lr.Build(lr.Child(0))).End()
	}
	return b.Grammar()
}

// binop builds (op x y) from children x op y.
var binop = lr.Rewrite(func(ch []terex.Node) terex.Node {
	return terex.L(ch[1], ch[0], ch[2])
})

// The LL(1) variant of the expression grammar avoids left recursion:
//
//	Expr   ➞ Term Sum
//	Sum    ➞ SumOp Expr  |  ε
//	Term   ➞ Factor Prod
//	Prod   ➞ ProdOp Term  |  ε
//	Factor ➞ number  |  ( Expr )
//
// Operators are right-associative with this grammar.
func makeLLExprGrammar() (*lr.Grammar, error) {
	b := lr.NewGrammarBuilder("LLExpr")
	b.LHS("Expr").N("Term").N("Sum").Action(lr.Rewrite(rightop)).End()
	b.LHS("Sum").N("SumOp").N("Expr").Action(lr.Build(lr.Child(0), lr.Child(1))).End()
	b.LHS("Sum").Action(lr.Build()).Epsilon()
	b.LHS("Term").N("Factor").N("Prod").Action(lr.Rewrite(rightop)).End()
	b.LHS("Prod").N("ProdOp").N("Term").Action(lr.Build(lr.Child(0), lr.Child(1))).End()
	b.LHS("Prod").Action(lr.Build()).Epsilon()
	b.LHS("Factor").T("number").Action(lr.Build(lr.Child(0))).End()
	b.LHS("Factor").T("(").N("Expr").T(")").Action(lr.Build(lr.Child(1))).End()
	for _, op := range []string{"+", "-"} {
		b.LHS("SumOp").T(op).Action(lr.Build(lr.Child(0))).End()
	}
	for _, op := range []string{"*", "/"} {
		b.LHS("ProdOp").T(op).Action(lr.Build(lr.Child(0))).End()
	}
	return b.Grammar()
}

// rightop combines an operand x with an optional (op y) tail into (op x y).
func rightop(ch []terex.Node) terex.Node {
	tail, ok := ch[1].(terex.List)
	if !ok || len(tail) != 2 {
		return ch[0]
	}
	return terex.L(tail[0], ch[0], tail[1])
}
