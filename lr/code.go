package lr

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/pgen"
)

// GoSource writes a recursive-ascent recognizer for the automaton as Go source
// of package pkg. Every state becomes a method parse<ID>, switching over the
// terminal lookahead (shifts and reductions) and, after a callee returns, over
// the non-terminal to go to.
//
// A state method returns the head of the rule reduced and the number of states
// still to pop. A negative count signals accept or error and unwinds all
// calls. The generated function Parse reports each reduction with its rule ID
// and depends on package fmt only.
func (a *Automaton) GoSource(w io.Writer, pkg string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// Code generated by pgen from grammar %q (%s). DO NOT EDIT.\n\n",
		a.g.Name, a.variant.Name())
	fmt.Fprintf(bw, "package %s\n", pkg)
	fmt.Fprintf(bw, codePrologue, strconv.Quote(string(pgen.EOI)), a.Start())
	for _, s := range a.states {
		a.stateCode(bw, s.ID)
	}
	return bw.Flush()
}

const codePrologue = `
import "fmt"

// EOI is the symbol a Lexer reports at the end of input.
const EOI = %s

// Lexer delivers the terminal symbols of the input.
type Lexer interface {
	Peek() string // current terminal, EOI at the end of input
	Advance()
}

// Parse recognizes the input delivered by lex. It calls reduce with the rule ID
// of every reduction, in bottom-up order.
func Parse(lex Lexer, reduce func(rule int)) error {
	if reduce == nil {
		reduce = func(int) {}
	}
	p := &parser{lex: lex, reduce: reduce}
	p.parse%d()
	if p.accepted {
		return nil
	}
	return p.err
}

type parser struct {
	lex      Lexer
	reduce   func(rule int)
	accepted bool
	err      error
}

func (p *parser) fail(state int) (string, int) {
	p.err = fmt.Errorf("syntax error in state %%d at %%q", state, p.lex.Peek())
	return "", -1
}
`

// terminalCase is a case of a state's lookahead switch. All lookaheads of a
// reduction by the same rule share a case.
type terminalCase struct {
	labels []string
	shift  int // target state or -1
	rule   *Rule
}

func (a *Automaton) stateCode(bw *bufio.Writer, state int) {
	var cases []*terminalCase
	var gotos []Transition
	loop := false
	for _, t := range a.Transitions(state) {
		if !a.g.IsTerminal(t.Symbol) {
			gotos = append(gotos, t)
			continue
		}
		cases = append(cases, &terminalCase{labels: []string{quoteSymbol(t.Symbol)}, shift: t.Target})
		loop = true
	}
	byRule := make(map[int]*terminalCase)
	for _, r := range a.Reductions(state) {
		if c, ok := byRule[r.Rule]; ok {
			c.labels = append(c.labels, quoteSymbol(r.Lookahead))
			continue
		}
		c := &terminalCase{labels: []string{quoteSymbol(r.Lookahead)}, shift: -1, rule: a.g.Rule(r.Rule)}
		byRule[r.Rule] = c
		cases = append(cases, c)
		if r.Rule != AugmentID && len(c.rule.Body) == 0 {
			loop = true
		}
	}
	fmt.Fprintf(bw, "\nfunc (p *parser) parse%d() (string, int) {\n", state)
	if loop {
		bw.WriteString("\tvar sym string\n\tvar n int\n")
	}
	bw.WriteString("\tswitch p.lex.Peek() {\n")
	for _, c := range cases {
		fmt.Fprintf(bw, "\tcase %s:\n", strings.Join(c.labels, ", "))
		switch {
		case c.shift >= 0:
			fmt.Fprintf(bw, "\t\tp.lex.Advance()\n\t\tsym, n = p.parse%d()\n", c.shift)
		case c.rule.ID == AugmentID:
			bw.WriteString("\t\tp.accepted = true\n\t\treturn \"\", -1\n")
		case len(c.rule.Body) == 0:
			fmt.Fprintf(bw, "\t\tp.reduce(%d)\n\t\tsym, n = %s, 1\n", c.rule.ID, quoteSymbol(c.rule.Head))
		default:
			fmt.Fprintf(bw, "\t\tp.reduce(%d)\n\t\treturn %s, %d\n", c.rule.ID,
				quoteSymbol(c.rule.Head), len(c.rule.Body))
		}
	}
	fmt.Fprintf(bw, "\tdefault:\n\t\treturn p.fail(%d)\n\t}\n", state)
	if !loop {
		bw.WriteString("}\n")
		return
	}
	if len(gotos) == 0 {
		fmt.Fprintf(bw, "\tif n--; n != 0 {\n\t\treturn sym, n\n\t}\n\treturn p.fail(%d)\n}\n", state)
		return
	}
	bw.WriteString("\tfor {\n\t\tif n--; n != 0 {\n\t\t\treturn sym, n\n\t\t}\n\t\tswitch sym {\n")
	for _, t := range gotos {
		fmt.Fprintf(bw, "\t\tcase %s:\n\t\t\tsym, n = p.parse%d()\n", quoteSymbol(t.Symbol), t.Target)
	}
	fmt.Fprintf(bw, "\t\tdefault:\n\t\t\treturn p.fail(%d)\n\t\t}\n\t}\n}\n", state)
}

func quoteSymbol(sym pgen.Symbol) string {
	if sym == pgen.EOI {
		return "EOI"
	}
	return strconv.Quote(string(sym))
}
