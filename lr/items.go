package lr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/pgen"
)

// === Items =================================================================

// Item is an LR item, i.e. a rule with a dot position, denoting how much of the
// rule's right hand side has been recognized. LR(0) and SLR items leave LA
// empty, LR(1) items carry a lookahead terminal (or EOI).
type Item struct {
	Rule int         // rule ID, AugmentID for γ ➞ start
	Dot  int         // 0 … len(Body)
	LA   pgen.Symbol // lookahead for LR(1) items
}

// Peek returns the symbol after the dot, if any.
func (g *Grammar) Peek(it Item) (pgen.Symbol, bool) {
	body := g.Rule(it.Rule).Body
	if it.Dot >= len(body) {
		return "", false
	}
	return body[it.Dot], true
}

// Completed is true if the dot of item it is at the end of the rule.
func (g *Grammar) Completed(it Item) bool {
	return it.Dot >= len(g.Rule(it.Rule).Body)
}

// ItemString renders an item in dotted notation, e.g. "E ➞ E • + T, #eof".
func (g *Grammar) ItemString(it Item) string {
	r := g.Rule(it.Rule)
	var b strings.Builder
	b.WriteString(string(r.Head))
	b.WriteString(" ➞")
	for i, sym := range r.Body {
		if i == it.Dot {
			b.WriteString(" •")
		}
		b.WriteString(" ")
		b.WriteString(string(sym))
	}
	if it.Dot >= len(r.Body) {
		b.WriteString(" •")
	}
	if it.LA != "" {
		b.WriteString(", ")
		b.WriteString(string(it.LA))
	}
	return b.String()
}

func sortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		if a.Dot != b.Dot {
			return a.Dot < b.Dot
		}
		return a.LA < b.LA
	})
}

// === Variants of LR construction ===========================================

// Variant is the flavour of LR automaton to construct. The automaton builder is
// generic; it delegates everything depending on the shape of items to a Variant.
// Three variants are provided: LR0, SLR and LR1.
type Variant interface {
	// Name of the parsing method, e.g. "SLR"
	Name() string
	// Seed returns the kernel items of the start state.
	Seed(ga *LRAnalysis) []Item
	// Expand returns closure items for rule r, given an item with the head of r
	// immediately after the dot.
	Expand(ga *LRAnalysis, it Item, r *Rule) []Item
	// Lookaheads returns the terminals for which a completed item is reduced.
	Lookaheads(ga *LRAnalysis, it Item) []pgen.Symbol
	// Advance moves the dot of an item one symbol to the right.
	Advance(it Item) Item
}

var (
	// LR0 constructs LR(0) automata, reducing completed items regardless of lookahead.
	LR0 Variant = lr0{}
	// SLR constructs SLR(1) automata, reducing on FOLLOW(head).
	SLR Variant = slr{}
	// LR1 constructs canonical LR(1) automata.
	LR1 Variant = lr1{}
)

// VariantByName finds a variant from a name like "slr" (case-insensitive).
func VariantByName(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case "lr0", "lr(0)":
		return LR0, nil
	case "slr", "slr1", "slr(1)":
		return SLR, nil
	case "lr1", "lr(1)":
		return LR1, nil
	}
	return nil, fmt.Errorf("unknown LR variant %q", name)
}

// --- LR(0) -----------------------------------------------------------------

type lr0 struct{}

func (lr0) Name() string { return "LR(0)" }

func (lr0) Seed(*LRAnalysis) []Item {
	return []Item{{Rule: AugmentID}}
}

func (lr0) Expand(_ *LRAnalysis, _ Item, r *Rule) []Item {
	return []Item{{Rule: r.ID}}
}

func (lr0) Lookaheads(ga *LRAnalysis, _ Item) []pgen.Symbol {
	las := append([]pgen.Symbol(nil), ga.Grammar().Terminals()...)
	return append(las, pgen.EOI)
}

func (lr0) Advance(it Item) Item {
	return Item{Rule: it.Rule, Dot: it.Dot + 1}
}

// --- SLR -------------------------------------------------------------------

type slr struct {
	lr0
}

func (slr) Name() string { return "SLR" }

func (slr) Lookaheads(ga *LRAnalysis, it Item) []pgen.Symbol {
	return ga.Follow(ga.Grammar().Rule(it.Rule).Head).Symbols()
}

// --- LR(1) -----------------------------------------------------------------

type lr1 struct{}

func (lr1) Name() string { return "LR(1)" }

func (lr1) Seed(*LRAnalysis) []Item {
	return []Item{{Rule: AugmentID, LA: pgen.EOI}}
}

// For an item A ➞ α • B β, a and a rule B ➞ γ we produce B ➞ • γ, b for every
// b in FIRST(β a).
func (lr1) Expand(ga *LRAnalysis, it Item, r *Rule) []Item {
	body := ga.Grammar().Rule(it.Rule).Body
	rest := make([]pgen.Symbol, 0, len(body)-it.Dot)
	rest = append(rest, body[it.Dot+1:]...)
	rest = append(rest, it.LA)
	las := ga.FirstOf(rest).Symbols()
	items := make([]Item, len(las))
	for i, la := range las {
		items[i] = Item{Rule: r.ID, LA: la}
	}
	return items
}

func (lr1) Lookaheads(_ *LRAnalysis, it Item) []pgen.Symbol {
	return []pgen.Symbol{it.LA}
}

func (lr1) Advance(it Item) Item {
	return Item{Rule: it.Rule, Dot: it.Dot + 1, LA: it.LA}
}
