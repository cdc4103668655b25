/*
Package sparse implements a simple type for sparse integer matrices.
It is used for parser tables: the LL(1) prediction table, and the transition
and reduce tables of LR automata. Rows are states (or non-terminals), columns
are grammar symbols.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept in row-major order.

	https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
	https://www.coin-or.org/Ipopt/documentation/node38.html

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a spare matrix of integer values. Construct with
//
//	M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//	M.Set(2, 3, 4711)              // set a value
//	v := M.Value(2, 3)             // returns 4711
//	cnt := M.ValueCount()          // returns 1 (one position set)
//	v = M.Value(10, 10)            // returns -1, i.e. the null-value
//
// The row count grows as values are set in rows beyond M(), as parser
// tables are filled while states are discovered. The column count is fixed.
//
// Values cannot be deleted, but may be overwritten with the null-value. Space for
// null-values is not re-claimed.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

// Triplet values to store
type triplet struct {
	row, col int
	value    int32
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	k := m.search(i, j)
	if k < len(m.values) && m.values[k].storedAt(i, j) {
		return m.values[k].value
	}
	return m.nullval
}

// Lookup returns the value at position (i,j) and true, or false for
// an empty entry.
func (m *IntMatrix) Lookup(i, j int) (int32, bool) {
	v := m.Value(i, j)
	return v, v != m.nullval
}

// Set a value in the matrix at position (i,j). Will panic if j is not a valid
// column index.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	if i < 0 || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix.Set() with index out of range: (%d,%d)", i, j))
	}
	if i >= m.rowcnt {
		m.rowcnt = i + 1
	}
	k := m.search(i, j)
	if k < len(m.values) && m.values[k].storedAt(i, j) {
		m.values[k].value = value
		return m
	}
	tnew := triplet{row: i, col: j, value: value}
	// the following 3 lines have to work for k being the right edge of v or not
	m.values = append(m.values, tnew)  // make room
	copy(m.values[k+1:], m.values[k:]) // copy remainder values one index to right
	m.values[k] = tnew                 // if not append-case: insert new triplet
	return m
}

// EachInRow calls f for every non-null value in row i, in column order.
func (m *IntMatrix) EachInRow(i int, f func(j int, value int32)) {
	for k := m.search(i, 0); k < len(m.values) && m.values[k].row == i; k++ {
		if m.values[k].value != m.nullval {
			f(m.values[k].col, m.values[k].value)
		}
	}
}

// Equals compares the values of two matrices.
func (m *IntMatrix) Equals(other *IntMatrix) bool {
	if m.rowcnt != other.rowcnt || m.colcnt != other.colcnt || len(m.values) != len(other.values) {
		return false
	}
	for k, t := range m.values {
		if t != other.values[k] {
			return false
		}
	}
	return true
}

// search finds the index of the first triplet not stored left of (i,j).
func (m *IntMatrix) search(i, j int) int {
	return sort.Search(len(m.values), func(k int) bool {
		return !m.values[k].storedLeftOf(i, j)
	})
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return (t.row == i && t.col == j)
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%d", t.row, t.col, t.value)
}
