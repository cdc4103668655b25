package ebnf

import (
	"fmt"
	"io"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/lr"
	"github.com/npillmayer/pgen/terex"
	"golang.org/x/exp/ebnf"
)

// Load reads an EBNF grammar from r and converts it into a grammar with start
// symbol start. Parameter name is used for error messages and as the name of the
// resulting grammar.
//
// If start is empty, the first non-lexical production in source order is the
// start production.
//
// The grammar is verified before conversion: every production referenced
// must be defined, and every production must be reachable from start.
func Load(name string, r io.Reader, start string) (*lr.Grammar, error) {
	prods, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse EBNF grammar %s: %w", name, err)
	}
	if start == "" {
		if start = firstProduction(prods); start == "" {
			return nil, fmt.Errorf("EBNF grammar %s has no non-lexical production", name)
		}
	}
	if isLexical(start) {
		return nil, fmt.Errorf("start symbol %q of grammar %s is a lexical production", start, name)
	}
	if err = ebnf.Verify(prods, start); err != nil {
		return nil, fmt.Errorf("EBNF grammar %s is invalid: %w", name, err)
	}
	c := &converter{prods: prods, counter: make(map[string]int)}
	for _, p := range ordered(prods, start) {
		tracer().Debugf("converting production %s", p.Name.String)
		if err = c.production(p); err != nil {
			return nil, fmt.Errorf("EBNF grammar %s: %w", name, err)
		}
	}
	return lr.NewGrammar(name, append(c.rules, c.aux...))
}

// ordered returns the non-lexical productions, start production first and
// all others in source order.
func ordered(prods ebnf.Grammar, start string) []*ebnf.Production {
	list := make([]*ebnf.Production, 0, len(prods))
	for n, p := range prods {
		if n != start && !isLexical(n) {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Pos().Offset < list[j].Pos().Offset
	})
	return append([]*ebnf.Production{prods[start]}, list...)
}

func firstProduction(prods ebnf.Grammar) string {
	var first *ebnf.Production
	for n, p := range prods {
		if !isLexical(n) && (first == nil || p.Pos().Offset < first.Pos().Offset) {
			first = p
		}
	}
	if first == nil {
		return ""
	}
	return first.Name.String
}

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

type converter struct {
	prods   ebnf.Grammar
	rules   []lr.Rule      // rules for productions
	aux     []lr.Rule      // rules for synthetic non-terminals
	counter map[string]int // per production, for naming synthetic non-terminals
}

func (c *converter) production(p *ebnf.Production) error {
	head := p.Name.String
	alts, err := c.alternatives(head, p.Expr)
	if err != nil {
		return err
	}
	for _, body := range alts {
		c.rules = append(c.rules, rule(head, body, lr.Tag(head)))
	}
	return nil
}

func (c *converter) add(head string, body []pgen.Symbol, a lr.Action) {
	c.aux = append(c.aux, rule(head, body, a))
}

func rule(head string, body []pgen.Symbol, a lr.Action) lr.Rule {
	return lr.Rule{Head: pgen.Symbol(head), Body: body, Action: a}
}

// alternatives converts an expression into a list of right hand sides.
// Synthetic rules are added to the converter on the fly, named after prod.
func (c *converter) alternatives(prod string, x ebnf.Expression) ([][]pgen.Symbol, error) {
	if x == nil {
		return [][]pgen.Symbol{nil}, nil
	}
	if alt, ok := x.(ebnf.Alternative); ok {
		bodies := make([][]pgen.Symbol, 0, len(alt))
		for _, a := range alt {
			body, err := c.sequence(prod, a)
			if err != nil {
				return nil, err
			}
			bodies = append(bodies, body)
		}
		return bodies, nil
	}
	body, err := c.sequence(prod, x)
	if err != nil {
		return nil, err
	}
	return [][]pgen.Symbol{body}, nil
}

func (c *converter) sequence(prod string, x ebnf.Expression) ([]pgen.Symbol, error) {
	if x == nil {
		return nil, nil
	}
	seq, ok := x.(ebnf.Sequence)
	if !ok {
		seq = ebnf.Sequence{x}
	}
	body := make([]pgen.Symbol, 0, len(seq))
	for _, term := range seq {
		sym, err := c.term(prod, term)
		if err != nil {
			return nil, err
		}
		body = append(body, sym)
	}
	return body, nil
}

func (c *converter) term(prod string, x ebnf.Expression) (pgen.Symbol, error) {
	switch t := x.(type) {
	case *ebnf.Name:
		return pgen.Symbol(t.String), nil
	case *ebnf.Token:
		return pgen.Symbol(t.String), nil
	case *ebnf.Group:
		return c.synthetic(prod, "grp", t.Body, false)
	case *ebnf.Option:
		sym, err := c.synthetic(prod, "opt", t.Body, false)
		if err == nil {
			c.add(string(sym), nil, lr.Build())
		}
		return sym, err
	case *ebnf.Repetition:
		return c.synthetic(prod, "rep", t.Body, true)
	case *ebnf.Range:
		return "", fmt.Errorf("%s: character ranges are allowed in lexical productions only",
			t.Pos())
	case ebnf.Alternative, ebnf.Sequence:
		return c.synthetic(prod, "grp", t, false)
	}
	return "", fmt.Errorf("%s: unsupported EBNF expression %T", x.Pos(), x)
}

// synthetic creates a new non-terminal for a sub-expression of production prod.
// For repetitions, every alternative is followed by the new non-terminal itself,
// and an ε-rule terminates the recursion.
func (c *converter) synthetic(prod, kind string, body ebnf.Expression, repeat bool) (pgen.Symbol, error) {
	c.counter[prod]++
	head := fmt.Sprintf("%s_%s%d", prod, kind, c.counter[prod])
	alts, err := c.alternatives(prod, body)
	if err != nil {
		return "", err
	}
	for _, b := range alts {
		if repeat {
			c.add(head, append(b, pgen.Symbol(head)), lr.Rewrite(spliceTail))
			continue
		}
		c.add(head, b, lr.Rewrite(splice))
	}
	if repeat {
		c.add(head, nil, lr.Build())
	}
	return pgen.Symbol(head), nil
}

// splice passes a single child through and collects multiple children into a list.
func splice(children []terex.Node) terex.Node {
	if len(children) == 1 {
		return children[0]
	}
	return terex.List(append([]terex.Node(nil), children...))
}

// spliceTail is splice for repetitions: the last child is the (already flattened)
// list of subsequent repetitions, which is appended element-wise.
func spliceTail(children []terex.Node) terex.Node {
	n := len(children) - 1
	l := terex.List{splice(children[:n])}
	if tail, ok := children[n].(terex.List); ok {
		return append(l, tail...)
	}
	return append(l, children[n])
}
