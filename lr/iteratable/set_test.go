package iteratable

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	S := NewSet(0)
	S.Add(1, 2, 3, 2, 1)
	if S.Size() != 3 {
		t.Errorf("expected set to contain 3 items, has %d", S.Size())
	}
	if !S.Contains(2) || S.Contains(4) {
		t.Errorf("expected set to contain 2, but not 4")
	}
	v := S.Values()
	if v[0] != 1 || v[1] != 2 || v[2] != 3 {
		t.Errorf("expected items in insertion order, have %v", v)
	}
}

func TestSetOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	A := NewSet(0).Add("a", "b", "c")
	B := NewSet(0).Add("c", "d")
	C := A.Copy().Union(B)
	if C.Size() != 4 || A.Size() != 3 {
		t.Errorf("expected union of size 4 and unmodified copy source, have %d and %d",
			C.Size(), A.Size())
	}
	C.Difference(A)
	if !C.Equals(NewSet(0).Add("d")) {
		t.Errorf("expected {d}, have %v", C.Values())
	}
	if !C.Contains("d") || C.Contains("a") {
		t.Errorf("index not updated after difference")
	}
	var nilset *Set
	if nilset.Size() != 0 || nilset.Contains("a") {
		t.Errorf("nil set should be empty")
	}
}

func TestSetIterationVisitsAddedItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.lr")
	defer teardown()
	//
	S := NewSet(0).Add(1)
	S.IterateOnce()
	visited := 0
	for S.Next() {
		n := S.Item().(int)
		visited++
		if n < 5 {
			S.Add(n + 1)
		}
	}
	if visited != 5 {
		t.Errorf("expected iteration to visit 5 items, visited %d", visited)
	}
}
