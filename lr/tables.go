package lr

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/lr/iteratable"
	"github.com/npillmayer/pgen/lr/sparse"
	"github.com/npillmayer/schuko/gconf"
)

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing, and 6.3 LR(1) Parsing.

// === Automaton construction ================================================

// State is a state of an LR automaton, i.e. a closed set of items.
type State struct {
	ID     int    // serial ID of this state, in order of discovery
	Items  []Item // closed item set, sorted
	Accept bool   // does this state contain the completed augmenting rule?
}

func (s *State) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, len(s.Items))
}

// Automaton edge between 2 states, directed and labeled with a symbol.
type edge struct {
	from, to int
	label    pgen.Symbol
}

// Automaton is the characteristic finite state machine for an LR grammar.
// Depending on the Variant it has been constructed for, it represents an
// LR(0), SLR or LR(1) parser. Create one with NewAutomaton.
//
// States are integers, indexing into sparse tables for transitions (shifts on
// terminals, gotos on non-terminals) and reductions. Once constructed, an
// automaton is immutable and may be shared between parsers.
type Automaton struct {
	ga      *LRAnalysis
	g       *Grammar
	variant Variant
	states  []*State
	keys    map[string]int      // canonical item set → state ID
	columns []pgen.Symbol       // table column → symbol
	colinx  map[pgen.Symbol]int // symbol → table column
	trans   *sparse.IntMatrix   // state × symbol → state
	reduce  *sparse.IntMatrix   // state × lookahead → rule ID
	edges   *arraylist.List     // all the edges between states
}

// NewAutomaton constructs the automaton for an analysed grammar. States are
// discovered depth-first, visiting symbols in sorted order, so state numbering
// is reproducible for a given grammar.
//
// If the grammar is not suitable for the variant, NewAutomaton returns an
// error wrapping ErrShiftReduce or ErrReduceReduce.
func NewAutomaton(ga *LRAnalysis, variant Variant) (*Automaton, error) {
	tracer().Debugf("=== build %s automaton =========================================", variant.Name())
	g := ga.Grammar()
	a := &Automaton{
		ga:      ga,
		g:       g,
		variant: variant,
		keys:    make(map[string]int),
		colinx:  make(map[pgen.Symbol]int),
		edges:   arraylist.New(),
	}
	a.columns = append(a.columns, g.Terminals()...)
	a.columns = append(a.columns, pgen.EOI)
	a.columns = append(a.columns, g.NonTerminals()...)
	for j, sym := range a.columns {
		a.colinx[sym] = j
	}
	a.trans = sparse.NewIntMatrix(0, len(a.columns), sparse.DefaultNullValue)
	a.reduce = sparse.NewIntMatrix(0, len(a.columns), sparse.DefaultNullValue)
	if _, err := a.addState(variant.Seed(ga)); err != nil {
		tracer().Errorf("%s automaton for %s: %v", variant.Name(), g.Name, err)
		return nil, err
	}
	tracer().Infof("%s automaton for %s has %d states", variant.Name(), g.Name, len(a.states))
	if gconf.GetBool("pgen.dump-automaton") {
		a.Dump()
	}
	return a, nil
}

// Compute the closure of a set of kernel items. The closure is returned sorted.
func (a *Automaton) closure(kernel []Item) []Item {
	C := iteratable.NewSet(len(kernel) * 4)
	for _, it := range kernel {
		C.Add(it)
	}
	C.IterateOnce()
	for C.Next() {
		item := C.Item().(Item)
		B, ok := a.g.Peek(item)
		if !ok || !a.g.IsNonTerminal(B) {
			continue
		}
		for _, r := range a.g.RulesFor(B) {
			for _, it := range a.variant.Expand(a.ga, item, r) {
				C.Add(it)
			}
		}
	}
	items := make([]Item, 0, C.Size())
	for _, x := range C.Values() {
		items = append(items, x.(Item))
	}
	sortItems(items)
	return items
}

// Add a state to the automaton. Checks first if a state with an identical
// closure is present.
func (a *Automaton) addState(kernel []Item) (int, error) {
	items := a.closure(kernel)
	key, err := structhash.Hash(struct{ Items []Item }{items}, 1)
	if err != nil {
		return -1, err
	}
	if id, ok := a.keys[key]; ok {
		if !sameItems(a.states[id].Items, items) {
			return -1, fmt.Errorf("hash collision for item sets of state %d", id)
		}
		return id, nil
	}
	s := &State{ID: len(a.states), Items: items}
	a.keys[key] = s.ID
	a.states = append(a.states, s)
	tracer().Debugf("new state %d with %d items", s.ID, len(items))
	if err := a.computeReduces(s); err != nil {
		return -1, err
	}
	if err := a.computeTransitions(s); err != nil {
		return -1, err
	}
	return s.ID, a.checkShiftReduce(s)
}

func sameItems(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// For every completed item we enter a reduce action for each of the item's
// lookaheads. The augmenting rule is reduced on EOI only.
func (a *Automaton) computeReduces(s *State) error {
	for _, it := range s.Items {
		if !a.g.Completed(it) {
			continue
		}
		las := []pgen.Symbol{pgen.EOI}
		if it.Rule == AugmentID {
			s.Accept = true
		} else {
			las = a.variant.Lookaheads(a.ga, it)
		}
		for _, la := range las {
			col := a.colinx[la]
			if prev, ok := a.reduce.Lookup(s.ID, col); ok && int(prev) != it.Rule {
				return ConflictError(ErrReduceReduce, s.ID, la, int(prev), it.Rule)
			}
			a.reduce.Set(s.ID, col, int32(it.Rule))
		}
	}
	return nil
}

// Items are grouped by the symbol after the dot. Advancing the dot for each
// group yields the kernel of the successor state.
func (a *Automaton) computeTransitions(s *State) error {
	groups := make(map[pgen.Symbol][]Item)
	var syms []pgen.Symbol
	for _, it := range s.Items {
		X, ok := a.g.Peek(it)
		if !ok {
			continue
		}
		if _, seen := groups[X]; !seen {
			syms = append(syms, X)
		}
		groups[X] = append(groups[X], a.variant.Advance(it))
	}
	sortSymbols(syms)
	for _, X := range syms {
		target, err := a.addState(groups[X])
		if err != nil {
			return err
		}
		tracer().Debugf("goto(%d, %s) = %d", s.ID, X, target)
		a.trans.Set(s.ID, a.colinx[X], int32(target))
		a.edges.Add(edge{from: s.ID, to: target, label: X})
	}
	return nil
}

func (a *Automaton) checkShiftReduce(s *State) (err error) {
	a.reduce.EachInRow(s.ID, func(j int, rule int32) {
		if err != nil {
			return
		}
		if _, shift := a.trans.Lookup(s.ID, j); shift {
			err = ConflictError(ErrShiftReduce, s.ID, a.columns[j], int(rule))
		}
	})
	return
}

// === Queries ===============================================================

// Start returns the start state, which is always 0.
func (a *Automaton) Start() int {
	return 0
}

// Size returns the number of states.
func (a *Automaton) Size() int {
	return len(a.states)
}

// State returns the state with ID id, or nil.
func (a *Automaton) State(id int) *State {
	if id < 0 || id >= len(a.states) {
		return nil
	}
	return a.states[id]
}

// Grammar returns the (un-augmented) grammar of the automaton.
func (a *Automaton) Grammar() *Grammar {
	return a.g
}

// Analysis returns the grammar analysis the automaton has been built from.
func (a *Automaton) Analysis() *LRAnalysis {
	return a.ga
}

// Variant returns the variant the automaton has been constructed for.
func (a *Automaton) Variant() Variant {
	return a.variant
}

// Goto returns the successor of state on symbol sym, which is a shift for
// terminals and a goto for non-terminals.
func (a *Automaton) Goto(state int, sym pgen.Symbol) (int, bool) {
	j, ok := a.colinx[sym]
	if !ok {
		return -1, false
	}
	v, ok := a.trans.Lookup(state, j)
	return int(v), ok
}

// Reduce returns the rule to reduce in state for lookahead la.
// AugmentID signals reducing γ ➞ start, i.e. accepting the input.
func (a *Automaton) Reduce(state int, la pgen.Symbol) (int, bool) {
	j, ok := a.colinx[la]
	if !ok {
		return 0, false
	}
	v, ok := a.reduce.Lookup(state, j)
	return int(v), ok
}

// Transition is an outgoing edge of a state.
type Transition struct {
	Symbol pgen.Symbol
	Target int
}

// Transitions lists all shifts and gotos of a state, terminals first.
func (a *Automaton) Transitions(state int) []Transition {
	var t []Transition
	a.trans.EachInRow(state, func(j int, v int32) {
		t = append(t, Transition{Symbol: a.columns[j], Target: int(v)})
	})
	return t
}

// Reduction is a reduce entry of a state.
type Reduction struct {
	Lookahead pgen.Symbol
	Rule      int
}

// Reductions lists all reduce entries of a state.
func (a *Automaton) Reductions(state int) []Reduction {
	var r []Reduction
	a.reduce.EachInRow(state, func(j int, v int32) {
		r = append(r, Reduction{Lookahead: a.columns[j], Rule: int(v)})
	})
	return r
}

// Expected returns all terminals (including EOI) a state has an action for.
func (a *Automaton) Expected(state int) []pgen.Symbol {
	var exp []pgen.Symbol
	for j, sym := range a.columns {
		if sym != pgen.EOI && !a.g.IsTerminal(sym) {
			continue
		}
		_, shift := a.trans.Lookup(state, j)
		_, reduce := a.reduce.Lookup(state, j)
		if shift || reduce {
			exp = append(exp, sym)
		}
	}
	return exp
}

// Equals compares two automata, including state numbering.
func (a *Automaton) Equals(other *Automaton) bool {
	if a.Size() != other.Size() || a.variant.Name() != other.variant.Name() {
		return false
	}
	for i, s := range a.states {
		if !sameItems(s.Items, other.states[i].Items) {
			return false
		}
	}
	return a.trans.Equals(other.trans) && a.reduce.Equals(other.reduce)
}

// === Diagnostics ===========================================================

// Dump is a debugging helper, tracing all states with their items,
// transitions and reductions at debug level.
func (a *Automaton) Dump() {
	for _, s := range a.states {
		tracer().Debugf("--- state %03d -----------", s.ID)
		for _, it := range s.Items {
			tracer().Debugf("    %s", a.g.ItemString(it))
		}
		for _, t := range a.Transitions(s.ID) {
			tracer().Debugf("    %s ⇒ %d", t.Symbol, t.Target)
		}
		for _, r := range a.Reductions(s.ID) {
			tracer().Debugf("    %s ⇐ reduce %v", r.Lookahead, a.g.Rule(r.Rule))
		}
	}
	tracer().Debugf("-------------------------")
}

// GraphViz exports the automaton to the Graphviz Dot format.
func (a *Automaton) GraphViz(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range a.states {
		fmt.Fprintf(bw, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, a.forGraphviz(s))
	}
	it := a.edges.Iterator()
	for it.Next() {
		e := it.Value().(edge)
		fmt.Fprintf(bw, "s%03d -> s%03d [label=\"%s\"]\n", e.from, e.to, escapeDot(string(e.label)))
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func nodecolor(state *State) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func (a *Automaton) forGraphviz(s *State) string {
	lines := make([]string, len(s.Items))
	for i, it := range s.Items {
		lines[i] = escapeDot(a.g.ItemString(it))
	}
	return strings.Join(lines, "\\l") + "\\l"
}

var dotEscaper = strings.NewReplacer(
	`"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}
