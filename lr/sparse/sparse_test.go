package sparse

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMatrixSetAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	M := NewIntMatrix(3, 4, -1)
	M.Set(2, 3, 4711)
	M.Set(0, 1, 1)
	M.Set(2, 0, 20)
	M.Set(1, 2, 12)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(1, 1); v != -1 {
		t.Errorf("expected M(1,1) to be null-value, is %d", v)
	}
	if M.ValueCount() != 4 {
		t.Errorf("expected 4 values, have %d", M.ValueCount())
	}
	M.Set(2, 3, 1)
	if v, ok := M.Lookup(2, 3); !ok || v != 1 {
		t.Errorf("expected M(2,3) to be overwritten with 1, is %d", v)
	}
	if M.ValueCount() != 4 {
		t.Errorf("overwriting should not add a value, have %d", M.ValueCount())
	}
	if _, ok := M.Lookup(10, 10); ok {
		t.Errorf("expected no value outside of matrix")
	}
}

func TestMatrixGrowsRows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	M := NewIntMatrix(0, 2, DefaultNullValue)
	M.Set(5, 1, 7)
	if M.M() != 6 || M.N() != 2 {
		t.Errorf("expected matrix to grow to 6 x 2, is %d x %d", M.M(), M.N())
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set with invalid column to panic")
		}
	}()
	M.Set(0, 2, 1)
}

func TestMatrixRowIteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	M := NewIntMatrix(3, 5, -1)
	M.Set(1, 4, 14).Set(1, 0, 10).Set(0, 3, 3).Set(2, 2, 22).Set(1, 2, 12)
	var cols []int
	var vals []int32
	M.EachInRow(1, func(j int, v int32) {
		cols = append(cols, j)
		vals = append(vals, v)
	})
	if len(cols) != 3 || cols[0] != 0 || cols[1] != 2 || cols[2] != 4 {
		t.Errorf("expected columns [0 2 4] in row 1, have %v", cols)
	}
	if vals[2] != 14 {
		t.Errorf("expected M(1,4) = 14, have %d", vals[2])
	}
	N := NewIntMatrix(3, 5, -1)
	N.Set(2, 2, 22).Set(1, 2, 12).Set(0, 3, 3).Set(1, 0, 10).Set(1, 4, 14)
	if !M.Equals(N) {
		t.Errorf("expected matrices filled in different order to be equal")
	}
}
