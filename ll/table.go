package ll

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/lr"
	"github.com/npillmayer/pgen/lr/sparse"
	"github.com/npillmayer/schuko/gconf"
)

// Table is an LL(1) prediction table, mapping pairs of (non-terminal, lookahead)
// to grammar rules. Create one with NewTable.
type Table struct {
	ga      *lr.LRAnalysis
	g       *lr.Grammar
	rows    map[pgen.Symbol]int
	columns []pgen.Symbol // terminals, followed by EOI
	colinx  map[pgen.Symbol]int
	matrix  *sparse.IntMatrix
}

// NewTable creates the LL(1) table for an analysed grammar.
//
// For every rule A ➞ α an entry is made for every terminal in FIRST(α). If α is
// nullable, entries are made for every terminal in FOLLOW(A) as well. If a cell
// of the table would receive two different rules, the grammar is not LL(1) and
// NewTable returns an error wrapping lr.ErrTableConflict.
func NewTable(ga *lr.LRAnalysis) (*Table, error) {
	g := ga.Grammar()
	t := &Table{
		ga:     ga,
		g:      g,
		rows:   make(map[pgen.Symbol]int),
		colinx: make(map[pgen.Symbol]int),
	}
	for i, A := range g.NonTerminals() {
		t.rows[A] = i
	}
	t.columns = append(append(t.columns, g.Terminals()...), pgen.EOI)
	for j, sym := range t.columns {
		t.colinx[sym] = j
	}
	t.matrix = sparse.NewIntMatrix(len(t.rows), len(t.columns), sparse.DefaultNullValue)
	for _, r := range g.Rules() {
		fs := ga.FirstOf(r.Body)
		for _, la := range fs.Symbols() {
			if err := t.add(r, la); err != nil {
				return nil, err
			}
		}
		if !fs.Nullable() {
			continue
		}
		for _, la := range ga.Follow(r.Head).Symbols() {
			if err := t.add(r, la); err != nil {
				return nil, err
			}
		}
	}
	tracer().Infof("LL(1) table for %s has %d entries", g.Name, t.matrix.ValueCount())
	if gconf.GetBool("pgen.dump-table") {
		t.Dump()
	}
	return t, nil
}

func (t *Table) add(r *lr.Rule, la pgen.Symbol) error {
	i, j := t.rows[r.Head], t.colinx[la]
	if prev, ok := t.matrix.Lookup(i, j); ok && int(prev) != r.ID {
		err := lr.ConflictError(lr.ErrTableConflict, -1, la, int(prev), r.ID)
		err.Msg = fmt.Sprintf("non-terminal %s is not LL(1)", r.Head)
		tracer().Errorf("conflict %v", err)
		return err
	}
	tracer().Debugf("predict (%s, %s) = %v", r.Head, la, r)
	t.matrix.Set(i, j, int32(r.ID))
	return nil
}

// Grammar returns the grammar this table is for.
func (t *Table) Grammar() *lr.Grammar {
	return t.g
}

// Lookup returns the ID of the rule to predict for non-terminal A and
// lookahead la.
func (t *Table) Lookup(A, la pgen.Symbol) (int, bool) {
	i, ok := t.rows[A]
	if !ok {
		return -1, false
	}
	j, ok := t.colinx[la]
	if !ok {
		return -1, false
	}
	v, ok := t.matrix.Lookup(i, j)
	return int(v), ok
}

// Columns returns the lookahead symbols of the table, i.e. the terminals of the
// grammar plus EOI.
func (t *Table) Columns() []pgen.Symbol {
	return t.columns
}

// Expected returns all lookaheads for which non-terminal A has an entry.
func (t *Table) Expected(A pgen.Symbol) []pgen.Symbol {
	var exp []pgen.Symbol
	if i, ok := t.rows[A]; ok {
		t.matrix.EachInRow(i, func(j int, _ int32) {
			exp = append(exp, t.columns[j])
		})
	}
	return exp
}

// Equals compares two tables entry by entry.
func (t *Table) Equals(other *Table) bool {
	return t.matrix.Equals(other.matrix)
}

// Dump is a debugging helper, tracing the table as a grid at debug level.
// Rows are non-terminals, columns are terminals and EOI.
func (t *Table) Dump() {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s", "")
	for _, la := range t.columns {
		fmt.Fprintf(&b, "| %-6s", la)
	}
	tracer().Debugf(b.String())
	for _, A := range t.g.NonTerminals() {
		b.Reset()
		fmt.Fprintf(&b, "%-10s", A)
		for _, la := range t.columns {
			if id, ok := t.Lookup(A, la); ok {
				fmt.Fprintf(&b, "| %-6d", id)
			} else {
				fmt.Fprintf(&b, "| %-6s", "")
			}
		}
		tracer().Debugf(b.String())
	}
}
