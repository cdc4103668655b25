package lr

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pgen/terex"
)

// Action is a semantic action attached to a grammar rule. Parsers evaluate the
// action whenever a rule has been recognized, handing over the already evaluated
// children, one for each symbol of the rule's right hand side.
//
// Actions come in the following flavours:
//
//	Identity               // zero value, replaced by Tag("f<rule-id>")
//	Tag("+")               // ("+" child_0 … child_n)
//	TagWith("+", Child(0), Child(2))  // ("+" child_0 child_2)
//	Build(Child(1))        // child_1
//	Rewrite(f)             // f(children)
//
// For the slot-based variants TagWith and Build, a result consisting of exactly
// one element is unwrapped to this element. This lets a rule like
// F ➞ ( E ) pass through its sub-tree transparently.
type Action struct {
	kind    actionKind
	tag     terex.Node
	slots   []Slot
	rewrite Rewriter
}

type actionKind int8

const (
	identityAction actionKind = iota
	tagAction
	slotAction
	rewriteAction
)

// Rewriter is a function to construct a tree node from the children of a rule.
// The children slice must not be retained.
type Rewriter func(children []terex.Node) terex.Node

// Identity is the default action, which will be replaced by a tag unique
// to the rule when the grammar is built.
var Identity = Action{}

// Tag creates an action which prepends tag to the list of children.
func Tag(tag terex.Node) Action {
	return Action{kind: tagAction, tag: tag}
}

// TagWith creates an action which constructs a list of tag, followed
// by the resolved slots.
func TagWith(tag terex.Node, slots ...Slot) Action {
	return Action{kind: slotAction, tag: tag, slots: slots}
}

// Build creates an action which constructs a list from the resolved slots, without
// any tag.
func Build(slots ...Slot) Action {
	return Action{kind: slotAction, slots: slots}
}

// Rewrite creates an action which delegates tree construction to a function.
func Rewrite(f Rewriter) Action {
	if f == nil {
		panic("lr.Rewrite called with nil function")
	}
	return Action{kind: rewriteAction, rewrite: f}
}

// IsIdentity is true for the default action.
func (a Action) IsIdentity() bool {
	return a.kind == identityAction
}

// Slot is a position within an action's result list. It is either a literal
// value or a reference to the i-th child of a rule.
type Slot struct {
	lit     terex.Node
	child   int
	isChild bool
}

// Lit creates a slot for a literal value.
func Lit(v terex.Node) Slot {
	return Slot{lit: v}
}

// Child creates a slot referencing the i-th child of a rule (0-based).
func Child(i int) Slot {
	return Slot{child: i, isChild: true}
}

func (s Slot) String() string {
	if s.isChild {
		return fmt.Sprintf("$%d", s.child)
	}
	return terex.String(s.lit)
}

// Eval evaluates an action for a list of children.
func (a Action) Eval(children []terex.Node) (terex.Node, error) {
	switch a.kind {
	case identityAction:
		return nil, fmt.Errorf("identity action has not been resolved to a tag")
	case tagAction:
		l := make(terex.List, 0, len(children)+1)
		l = append(l, a.tag)
		return append(l, children...), nil
	case rewriteAction:
		return a.rewrite(children), nil
	}
	l := make(terex.List, 0, len(a.slots)+1)
	if a.tag != nil {
		l = append(l, a.tag)
	}
	for _, s := range a.slots {
		if !s.isChild {
			l = append(l, s.lit)
			continue
		}
		if s.child < 0 || s.child >= len(children) {
			return nil, fmt.Errorf("action references child %d, rule has %d children",
				s.child, len(children))
		}
		l = append(l, children[s.child])
	}
	if len(l) == 1 {
		return l[0], nil
	}
	return l, nil
}

// validate checks slot indices against the length of a rule's right hand side.
func (a Action) validate(bodylen int) error {
	for _, s := range a.slots {
		if s.isChild && (s.child < 0 || s.child >= bodylen) {
			return fmt.Errorf("slot %s out of range for right hand side of length %d", s, bodylen)
		}
	}
	return nil
}

func (a Action) String() string {
	switch a.kind {
	case identityAction:
		return "<identity>"
	case tagAction:
		return terex.String(a.tag)
	case rewriteAction:
		return "<rewrite>"
	}
	var b strings.Builder
	b.WriteString("[")
	if a.tag != nil {
		b.WriteString(terex.String(a.tag))
	}
	for i, s := range a.slots {
		if i > 0 || a.tag != nil {
			b.WriteString(" ")
		}
		b.WriteString(s.String())
	}
	b.WriteString("]")
	return b.String()
}
