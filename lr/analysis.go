package lr

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/pgen"
)

// === Terminal sets =========================================================

// TermSet is a set of terminals, as used for FIRST and FOLLOW sets. A FIRST set
// may additionally contain the nullable marker ε, flagging that a symbol (or
// a sequence of symbols) derives the empty word.
//
// TermSets are sorted, therefore iterating over them is deterministic.
type TermSet struct {
	set      *treeset.Set
	nullable bool
}

func newTermSet(syms ...pgen.Symbol) *TermSet {
	ts := &TermSet{set: treeset.NewWith(symbolComparator)}
	for _, sym := range syms {
		ts.set.Add(sym)
	}
	return ts
}

// We need this for sets of symbols. It sorts symbols lexicographically.
func symbolComparator(s1, s2 interface{}) int {
	return utils.StringComparator(string(s1.(pgen.Symbol)), string(s2.(pgen.Symbol)))
}

// Contains checks if terminal sym is in the set.
func (ts *TermSet) Contains(sym pgen.Symbol) bool {
	return ts.set.Contains(sym)
}

// Nullable is true if the set contains the nullable marker.
func (ts *TermSet) Nullable() bool {
	return ts.nullable
}

// Size returns the number of terminals, not counting the nullable marker.
func (ts *TermSet) Size() int {
	return ts.set.Size()
}

// IsEmpty is true if the set contains neither terminals nor the nullable marker.
func (ts *TermSet) IsEmpty() bool {
	return ts.set.Empty() && !ts.nullable
}

// Symbols returns the terminals in the set in sorted order.
func (ts *TermSet) Symbols() []pgen.Symbol {
	syms := make([]pgen.Symbol, 0, ts.set.Size())
	for _, x := range ts.set.Values() {
		syms = append(syms, x.(pgen.Symbol))
	}
	return syms
}

// Equals compares two sets, including the nullable marker.
func (ts *TermSet) Equals(other *TermSet) bool {
	if ts.nullable != other.nullable || ts.set.Size() != other.set.Size() {
		return false
	}
	return ts.set.Contains(other.set.Values()...)
}

// union adds all terminals of other and, if withMarker is set, its nullable
// marker. It returns true if ts has grown.
func (ts *TermSet) union(other *TermSet, withMarker bool) bool {
	grown := false
	for _, x := range other.set.Values() {
		if !ts.set.Contains(x) {
			ts.set.Add(x)
			grown = true
		}
	}
	if withMarker && other.nullable && !ts.nullable {
		ts.nullable = true
		grown = true
	}
	return grown
}

func (ts *TermSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, sym := range ts.Symbols() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(sym))
	}
	if ts.nullable {
		if ts.set.Size() > 0 {
			b.WriteString(", ")
		}
		b.WriteString("ε")
	}
	b.WriteString("}")
	return b.String()
}

// === Grammar analysis ======================================================

// LRAnalysis is an object for static grammar analysis, i.e. FIRST and FOLLOW
// sets for every symbol of a grammar. It is a prerequisite for constructing
// LL(1) tables as well as LR automata. Create one with Analysis(g).
type LRAnalysis struct {
	g      *Grammar
	first  map[pgen.Symbol]*TermSet
	follow map[pgen.Symbol]*TermSet
}

// Analysis computes FIRST and FOLLOW sets for a grammar. It will return
// an error wrapping ErrIncompleteGrammar if a non-terminal does not derive any
// terminal string, e.g. for a rule A ➞ A.
func Analysis(g *Grammar) (*LRAnalysis, error) {
	ga := &LRAnalysis{
		g:      g,
		first:  make(map[pgen.Symbol]*TermSet),
		follow: make(map[pgen.Symbol]*TermSet),
	}
	if err := ga.computeFirst(); err != nil {
		return nil, err
	}
	ga.computeFollow()
	ga.Dump()
	return ga, nil
}

// Grammar returns the grammar this analysis is for.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(sym). For terminals and EOI this is a singleton set.
// Clients must not modify the returned set.
func (ga *LRAnalysis) First(sym pgen.Symbol) *TermSet {
	if sym == Gamma {
		return ga.first[ga.g.Start()]
	}
	if fs, ok := ga.first[sym]; ok {
		return fs
	}
	return newTermSet()
}

// FirstOf returns FIRST of a sequence of symbols. FIRST(ε) is {ε}.
func (ga *LRAnalysis) FirstOf(seq []pgen.Symbol) *TermSet {
	result := newTermSet()
	for _, sym := range seq {
		fs := ga.First(sym)
		result.union(fs, false)
		if !fs.nullable {
			return result
		}
	}
	result.nullable = true
	return result
}

// Follow returns FOLLOW(sym) for a non-terminal sym. The set never contains the
// nullable marker, but may contain EOI.
// Clients must not modify the returned set.
func (ga *LRAnalysis) Follow(sym pgen.Symbol) *TermSet {
	if fs, ok := ga.follow[sym]; ok {
		return fs
	}
	return newTermSet()
}

// FIRST sets are grown monotonically until a fixed point is reached.
func (ga *LRAnalysis) computeFirst() error {
	ga.first[pgen.EOI] = newTermSet(pgen.EOI)
	for _, t := range ga.g.Terminals() {
		ga.first[t] = newTermSet(t)
	}
	for _, n := range ga.g.NonTerminals() {
		ga.first[n] = newTermSet()
	}
	for changed, round := true, 1; changed; round++ {
		changed = false
		for _, r := range ga.g.Rules() {
			if ga.first[r.Head].union(ga.FirstOf(r.Body), true) {
				changed = true
			}
		}
		tracer().Debugf("FIRST round %d, changed = %v", round, changed)
	}
	for _, n := range ga.g.NonTerminals() {
		if ga.first[n].IsEmpty() {
			tracer().Errorf("FIRST(%s) is empty, grammar is incomplete", n)
			return grammarError(ErrIncompleteGrammar, n, "non-terminal derives no terminal string")
		}
	}
	return nil
}

// FOLLOW sets are grown monotonically until a fixed point is reached.
func (ga *LRAnalysis) computeFollow() {
	for _, n := range ga.g.NonTerminals() {
		ga.follow[n] = newTermSet()
	}
	ga.follow[Gamma] = newTermSet(pgen.EOI)
	ga.follow[ga.g.Start()].set.Add(pgen.EOI)
	for changed, round := true, 1; changed; round++ {
		changed = false
		for _, r := range ga.g.Rules() {
			for i, B := range r.Body {
				if !ga.g.IsNonTerminal(B) {
					continue
				}
				fs := ga.FirstOf(r.Body[i+1:])
				if ga.follow[B].union(fs, false) {
					changed = true
				}
				if fs.nullable && ga.follow[B].union(ga.follow[r.Head], false) {
					changed = true
				}
			}
		}
		tracer().Debugf("FOLLOW round %d, changed = %v", round, changed)
	}
}

// Dump is a debugging helper, tracing FIRST and FOLLOW sets at debug level.
func (ga *LRAnalysis) Dump() {
	for _, n := range ga.g.NonTerminals() {
		tracer().Debugf("FIRST(%s) = %v   FOLLOW(%s) = %v", n, ga.first[n], n, ga.follow[n])
	}
}
