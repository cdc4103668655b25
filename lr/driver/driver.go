package driver

import (
	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/lr"
	"github.com/npillmayer/pgen/terex"
)

// Parser is a shift/reduce parser for an LR automaton. Create and initialize
// one with driver.NewParser(...). A parser holds no state between parse runs.
type Parser struct {
	a        *lr.Automaton
	g        *lr.Grammar
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

// NewParser creates a parser for an automaton.
func NewParser(a *lr.Automaton, opts ...Option) *Parser {
	parser := &Parser{
		a:        a,
		g:        a.Grammar(),
		observer: lr.TracingObserver{},
	}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// stacks of a parse run. All three stacks grow and shrink in parallel, with the
// state stack holding one more entry (the start state).
type stacks struct {
	states []int         // IDs of automaton states
	nodes  []terex.Node  // AST fragments
	syms   []pgen.Symbol // grammar symbols, for tracing only
}

func (st *stacks) top() int {
	return st.states[len(st.states)-1]
}

func (st *stacks) push(node terex.Node, sym pgen.Symbol) {
	st.nodes = append(st.nodes, node)
	st.syms = append(st.syms, sym)
}

// pop removes the handle of length n and returns the AST fragments of it.
func (st *stacks) pop(n int) []terex.Node {
	children := make([]terex.Node, n)
	copy(children, st.nodes[len(st.nodes)-n:])
	st.states = st.states[:len(st.states)-n]
	st.nodes = st.nodes[:len(st.nodes)-n]
	st.syms = st.syms[:len(st.syms)-n]
	return children
}

// Parse starts a new parse, given a source of input tokens. It returns the AST
// constructed by the semantic actions of the grammar's rules. On error, no
// partial AST is returned.
//
// Errors wrap lr.ErrUnknownToken for tokens not in the grammar's alphabet,
// lr.ErrSyntax for tokens without action in the current state, and
// lr.ErrExtraInput for tokens remaining after a complete parse.
//
// http://www.cse.unt.edu/~sweany/CSCE3650/HANDOUTS/LRParseAlg.pdf
func (p *Parser) Parse(src pgen.TokenSource) (terex.Node, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	cur, err := lr.NewCursor(src, p.g)
	if err != nil {
		return nil, err
	}
	st := &stacks{states: []int{p.a.Start()}}
	for {
		state := st.top()
		la := cur.Lookahead()
		var produced pgen.Symbol
		if rid, ok := p.a.Reduce(state, la.Sym); ok {
			rule := p.g.Rule(rid)
			node, err := rule.Action.Eval(st.pop(len(rule.Body)))
			if err != nil {
				return nil, err
			}
			p.observer.RuleApplied(rule, node)
			if rid == lr.AugmentID { // γ is reduced on EOI only
				tracer().Debugf("accept")
				return node, nil
			}
			st.push(node, rule.Head)
			produced = rule.Head
		} else if _, ok := p.a.Goto(state, la.Sym); ok && la.Sym != pgen.EOI {
			st.push(la, la.Sym)
			p.observer.TokenAccepted(la, cur.Pos())
			if err := cur.Advance(); err != nil {
				return nil, err
			}
			produced = la.Sym
		} else {
			return nil, p.fail(st, cur)
		}
		from := st.top()
		next, ok := p.a.Goto(from, produced)
		if !ok {
			err := cur.Error(lr.ErrSyntax)
			err.State = from
			return nil, err
		}
		p.observer.Transition(from, produced, next)
		st.states = append(st.states, next)
		tracer().Debugf("stack: %v", st.syms)
	}
}

// fail creates an error for a lookahead without action. If the input
// up to the lookahead would have been accepted, the error is ExtraInput,
// otherwise it is a syntax error.
func (p *Parser) fail(st *stacks, cur *lr.Cursor) error {
	state := st.top()
	if !cur.AtEnd() && p.acceptsAtEnd(st.states) {
		tracer().Infof("extra input at token #%d", cur.Pos())
		return cur.Error(lr.ErrExtraInput)
	}
	err := cur.Error(lr.ErrSyntax)
	err.State = state
	err.Expected = p.a.Expected(state)
	tracer().Infof("%v", err)
	return err
}

// acceptsAtEnd simulates the reductions on EOI for a copy of the state stack.
func (p *Parser) acceptsAtEnd(states []int) bool {
	sim := append([]int(nil), states...)
	limit := len(states) + p.a.Size()*(p.g.Size()+1)
	for step := 0; step < limit; step++ {
		rid, ok := p.a.Reduce(sim[len(sim)-1], pgen.EOI)
		if !ok {
			return false
		}
		if rid == lr.AugmentID {
			return true
		}
		rule := p.g.Rule(rid)
		sim = sim[:len(sim)-len(rule.Body)]
		next, ok := p.a.Goto(sim[len(sim)-1], rule.Head)
		if !ok {
			return false
		}
		sim = append(sim, next)
	}
	return false
}
