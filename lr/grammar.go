package lr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/pgen"
)

// Gamma is the head of the augmenting rule γ ➞ start, which is added to every
// grammar to give LR automata a single accepting rule.
const Gamma pgen.Symbol = "γ"

// AugmentID is the rule ID of the augmenting rule γ ➞ start.
const AugmentID = -1

// --- Rules -----------------------------------------------------------------

// Rule is a grammar production Head ➞ Body. IDs are assigned by position
// within the grammar, starting at 0. Rule IDs are used as references in every
// parser table.
type Rule struct {
	ID     int
	Head   pgen.Symbol
	Body   []pgen.Symbol
	Action Action
}

// IsEpsilon is true for rules with an empty right hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.Body) == 0
}

func (r *Rule) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d: %s ➞", r.ID, r.Head)
	if len(r.Body) == 0 {
		b.WriteString(" ε")
	}
	for _, sym := range r.Body {
		b.WriteString(" ")
		b.WriteString(string(sym))
	}
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context-free grammar, i.e. an ordered list of rules.
// Grammars are immutable once built and may be shared between parsers.
// Create a grammar with a GrammarBuilder or with NewGrammar.
type Grammar struct {
	Name         string
	rules        []*Rule
	augment      *Rule
	byHead       map[pgen.Symbol][]*Rule
	terms        map[pgen.Symbol]bool
	nonterminals []pgen.Symbol // sorted
	terminals    []pgen.Symbol // sorted
}

// NewGrammar creates a grammar from a list of rule descriptors. Rule IDs will be
// assigned by position, and rules without an action will be given a tag unique
// to the rule. Symbols which never occur as the head of a rule are terminals.
//
// The head of the first rule is the start symbol of the grammar.
func NewGrammar(name string, rules []Rule) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, grammarError(ErrIncompleteGrammar, "", "grammar has no rules")
	}
	g := &Grammar{
		Name:   name,
		rules:  make([]*Rule, len(rules)),
		byHead: make(map[pgen.Symbol][]*Rule),
		terms:  make(map[pgen.Symbol]bool),
	}
	for i, r := range rules {
		if err := checkReserved(r.Head); err != nil {
			return nil, err
		}
		rule := &Rule{
			ID:     i,
			Head:   r.Head,
			Body:   append([]pgen.Symbol(nil), r.Body...),
			Action: r.Action,
		}
		if rule.Action.IsIdentity() {
			rule.Action = Tag(fmt.Sprintf("f%d", i))
		}
		if err := rule.Action.validate(len(rule.Body)); err != nil {
			return nil, fmt.Errorf("rule %v: %w", rule, err)
		}
		if _, ok := g.byHead[rule.Head]; !ok {
			g.nonterminals = append(g.nonterminals, rule.Head)
		}
		g.byHead[rule.Head] = append(g.byHead[rule.Head], rule)
		g.rules[i] = rule
	}
	for _, r := range g.rules {
		for _, sym := range r.Body {
			if err := checkReserved(sym); err != nil {
				return nil, err
			}
			if _, isHead := g.byHead[sym]; !isHead && !g.terms[sym] {
				g.terms[sym] = true
				g.terminals = append(g.terminals, sym)
			}
		}
	}
	sortSymbols(g.nonterminals)
	sortSymbols(g.terminals)
	g.augment = &Rule{
		ID:     AugmentID,
		Head:   Gamma,
		Body:   []pgen.Symbol{g.rules[0].Head},
		Action: Build(Child(0)),
	}
	tracer().Debugf("grammar %q has %d rules, %d non-terminals, %d terminals",
		name, len(g.rules), len(g.nonterminals), len(g.terminals))
	return g, nil
}

func checkReserved(sym pgen.Symbol) error {
	if sym == pgen.EOI || sym == Gamma || sym == "" {
		return fmt.Errorf("symbol %q is reserved and cannot be used in a grammar", sym)
	}
	return nil
}

// Start returns the start symbol of the grammar, i.e. the head of rule 0.
func (g *Grammar) Start() pgen.Symbol {
	return g.rules[0].Head
}

// Size returns the number of rules, not counting the augmenting rule.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns the rule with ID id. AugmentID will return the augmenting
// rule γ ➞ start. Returns nil for unknown IDs.
func (g *Grammar) Rule(id int) *Rule {
	if id == AugmentID {
		return g.augment
	}
	if id < 0 || id >= len(g.rules) {
		return nil
	}
	return g.rules[id]
}

// Rules returns all rules in the order of definition.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// RulesFor returns all rules with a given head, in the order of definition.
func (g *Grammar) RulesFor(head pgen.Symbol) []*Rule {
	if head == Gamma {
		return []*Rule{g.augment}
	}
	return g.byHead[head]
}

// IsTerminal is true for symbols occuring in a right hand side, but never as the
// head of a rule.
func (g *Grammar) IsTerminal(sym pgen.Symbol) bool {
	return g.terms[sym]
}

// IsNonTerminal is true for symbols which are the head of at least one rule.
func (g *Grammar) IsNonTerminal(sym pgen.Symbol) bool {
	if sym == Gamma {
		return true
	}
	_, ok := g.byHead[sym]
	return ok
}

// Terminals returns all terminals of the grammar, sorted.
func (g *Grammar) Terminals() []pgen.Symbol {
	return g.terminals
}

// NonTerminals returns all non-terminals of the grammar, sorted.
func (g *Grammar) NonTerminals() []pgen.Symbol {
	return g.nonterminals
}

// Dump is a debugging helper, tracing all rules at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ----------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%v   ⇒ %v", r, r.Action)
	}
	tracer().Debugf("-------------------------------------------")
}

func sortSymbols(syms []pgen.Symbol) {
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is a helper for creating grammars. Usage:
//
//	b := lr.NewGrammarBuilder("G")
//	b.LHS("E").N("T").N("R").End()                   // E ➞ T R
//	b.LHS("R").Epsilon()                             // R ➞ ε
//	b.LHS("R").T("+").N("E").Action(lr.Tag("+")).End()  // R ➞ + E
//	…
//	g, err := b.Grammar()
//
// Symbols added with N() must have at least one rule; otherwise b.Grammar()
// will return an error.
type GrammarBuilder struct {
	name      string
	rules     []Rule
	declaredN map[pgen.Symbol]bool
	declaredT map[pgen.Symbol]bool
}

// NewGrammarBuilder creates a builder for a grammar.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:      name,
		declaredN: make(map[pgen.Symbol]bool),
		declaredT: make(map[pgen.Symbol]bool),
	}
}

// RuleBuilder collects the right hand side of a rule. Create one with
// GrammarBuilder.LHS().
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule Rule
	done bool
}

// LHS starts a new rule with head sym.
func (b *GrammarBuilder) LHS(sym string) *RuleBuilder {
	return &RuleBuilder{gb: b, rule: Rule{Head: pgen.Symbol(sym)}}
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(sym string) *RuleBuilder {
	rb.gb.declaredN[pgen.Symbol(sym)] = true
	rb.rule.Body = append(rb.rule.Body, pgen.Symbol(sym))
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(sym string) *RuleBuilder {
	rb.gb.declaredT[pgen.Symbol(sym)] = true
	rb.rule.Body = append(rb.rule.Body, pgen.Symbol(sym))
	return rb
}

// Action sets the semantic action of the rule.
func (rb *RuleBuilder) Action(a Action) *RuleBuilder {
	rb.rule.Action = a
	return rb
}

// End completes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() {
	if rb.done {
		panic(fmt.Sprintf("rule for %s completed twice", rb.rule.Head))
	}
	rb.done = true
	rb.gb.rules = append(rb.gb.rules, rb.rule)
}

// Epsilon completes an ε-rule and adds it to the grammar.
func (rb *RuleBuilder) Epsilon() {
	if len(rb.rule.Body) > 0 {
		panic(fmt.Sprintf("ε-rule for %s has a right hand side", rb.rule.Head))
	}
	rb.End()
}

// Grammar returns the grammar built so far.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	g, err := NewGrammar(b.name, b.rules)
	if err != nil {
		return nil, err
	}
	for _, n := range sortedKeys(b.declaredN) {
		if !g.IsNonTerminal(n) {
			return nil, grammarError(ErrIncompleteGrammar, n, "non-terminal has no rule")
		}
	}
	for _, t := range sortedKeys(b.declaredT) {
		if g.IsNonTerminal(t) {
			return nil, fmt.Errorf("symbol %q is declared as terminal, but has rules", t)
		}
	}
	return g, nil
}

func sortedKeys(m map[pgen.Symbol]bool) []pgen.Symbol {
	syms := make([]pgen.Symbol, 0, len(m))
	for s := range m {
		syms = append(syms, s)
	}
	sortSymbols(syms)
	return syms
}
