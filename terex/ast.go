package terex

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/npillmayer/pgen"
)

// Node is a node of a homogenous AST. It is either a List or a leaf value.
// Leafs are usually of type pgen.Token.
type Node interface{}

// List is an inner node of an AST. By convention the first element is an
// operator tag, followed by the operands.
type List []Node

// L is a shortcut for constructing lists.
//
//	L("+", pgen.Tok("n"), L("*", pgen.Tok("n"), pgen.Tok("n")))
func L(elems ...Node) List {
	return List(elems)
}

// Length returns the number of elements of l.
func (l List) Length() int {
	return len(l)
}

// First returns the first element of l, or nil for the empty list.
func (l List) First() Node {
	if len(l) == 0 {
		return nil
	}
	return l[0]
}

// Rest returns all elements of l but the first.
func (l List) Rest() List {
	if len(l) == 0 {
		return nil
	}
	return l[1:]
}

func (l List) String() string {
	return String(l)
}

// IsList returns true if n is an inner node.
func IsList(n Node) bool {
	_, ok := n.(List)
	return ok
}

// String renders a node as an s-expression.
func String(n Node) string {
	var b bytes.Buffer
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *bytes.Buffer, n Node) {
	switch x := n.(type) {
	case nil:
		b.WriteString("nil")
	case List:
		b.WriteString("(")
		for i, e := range x {
			if i > 0 {
				b.WriteString(" ")
			}
			writeNode(b, e)
		}
		b.WriteString(")")
	case pgen.Token:
		b.WriteString(x.String())
	case string:
		b.WriteString(x)
	case fmt.Stringer:
		b.WriteString(x.String())
	default:
		fmt.Fprintf(b, "%v", x)
	}
}

// Equal compares two trees structurally. Tokens compare equal if their symbols
// and lexemes are equal; all other leafs are compared with reflect.DeepEqual.
func Equal(a, b Node) bool {
	la, aIsList := a.(List)
	lb, bIsList := b.(List)
	if aIsList != bIsList {
		return false
	}
	if aIsList {
		if len(la) != len(lb) {
			return false
		}
		for i := range la {
			if !Equal(la[i], lb[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// --- Leveled lists ---------------------------------------------------------

// Item is an entry of a leveled list, as used for displaying trees on a terminal.
type Item struct {
	Level int
	Text  string
}

// Leveled flattens a tree into a pre-order list of (level, text) entries.
// A list contributes its first element on the list's level and its remaining
// elements one level deeper.
func Leveled(n Node) []Item {
	return leveled(n, nil, 0)
}

func leveled(n Node, ll []Item, level int) []Item {
	l, ok := n.(List)
	if !ok {
		return append(ll, Item{Level: level, Text: String(n)})
	}
	if len(l) == 0 {
		return append(ll, Item{Level: level, Text: "()"})
	}
	if IsList(l[0]) { // no operator tag
		ll = append(ll, Item{Level: level, Text: "·"})
		for _, e := range l {
			ll = leveled(e, ll, level+1)
		}
		return ll
	}
	ll = append(ll, Item{Level: level, Text: String(l[0])})
	for _, e := range l[1:] {
		ll = leveled(e, ll, level+1)
	}
	tracer().Debugf("leveled %s with %d items", String(l[0]), len(ll))
	return ll
}
