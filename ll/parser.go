package ll

import (
	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/lr"
	"github.com/npillmayer/pgen/terex"
)

// Parser is a predictive LL(1) parser. It is stateless between parse runs and
// may be used for any number of subsequent or concurrent calls to Parse.
type Parser struct {
	table    *Table
	observer lr.Observer
}

// Option configures a parser.
type Option func(*Parser)

// WithObserver sets an observer for parse events. The default observer traces
// events at debug level.
func WithObserver(o lr.Observer) Option {
	return func(p *Parser) {
		if o != nil {
			p.observer = o
		}
	}
}

// NewParser creates an LL(1) parser for a prediction table.
func NewParser(t *Table, opts ...Option) *Parser {
	p := &Parser{table: t, observer: lr.TracingObserver{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// parseRun holds the state of a single parse.
type parseRun struct {
	*Parser
	g     *lr.Grammar
	cur   *lr.Cursor
	stack []pgen.Symbol
}

// Parse parses the tokens of src and returns the AST built from the rules'
// semantic actions. On error no partial AST is returned.
//
// Errors wrap lr.ErrUnknownToken for tokens not in the grammar's alphabet,
// lr.ErrSyntax for tokens not predicted by the table, and lr.ErrExtraInput
// for tokens remaining after a complete parse.
func (p *Parser) Parse(src pgen.TokenSource) (terex.Node, error) {
	g := p.table.Grammar()
	cur, err := lr.NewCursor(src, g)
	if err != nil {
		return nil, err
	}
	run := &parseRun{
		Parser: p,
		g:      g,
		cur:    cur,
		stack:  []pgen.Symbol{pgen.EOI, g.Start()},
	}
	ast, err := run.resolve()
	if err != nil {
		return nil, err
	}
	// only EOI is left on the stack
	run.stack = run.stack[:0]
	if !cur.AtEnd() {
		tracer().Infof("extra input at token #%d", cur.Pos())
		return nil, cur.Error(lr.ErrExtraInput)
	}
	return ast, nil
}

// resolve pops the top of stack and derives it from the input.
func (run *parseRun) resolve() (terex.Node, error) {
	top := run.stack[len(run.stack)-1]
	run.stack = run.stack[:len(run.stack)-1]
	la := run.cur.Lookahead()
	if !run.g.IsNonTerminal(top) {
		if top != la.Sym {
			err := run.cur.Error(lr.ErrSyntax)
			err.Expected = []pgen.Symbol{top}
			return nil, err
		}
		run.observer.TokenAccepted(la, run.cur.Pos())
		return la, run.cur.Advance()
	}
	id, ok := run.table.Lookup(top, la.Sym)
	if !ok {
		err := run.cur.Error(lr.ErrSyntax)
		err.NonTerm = top
		err.Expected = run.table.Expected(top)
		return nil, err
	}
	r := run.g.Rule(id)
	for i := len(r.Body) - 1; i >= 0; i-- {
		run.stack = append(run.stack, r.Body[i])
	}
	children := make([]terex.Node, len(r.Body))
	for i := range r.Body {
		child, err := run.resolve()
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	node, err := r.Action.Eval(children)
	if err != nil {
		return nil, err
	}
	run.observer.RuleApplied(r, node)
	return node, nil
}
