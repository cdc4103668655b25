package lr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/pgen"
)

// Errors of grammar construction and table generation. All of them are fatal
// for the construction of a parser: the grammar is not suitable for the requested
// parsing method.
var (
	ErrIncompleteGrammar = errors.New("grammar incomplete")
	ErrTableConflict     = errors.New("LL(1) table conflict")
	ErrShiftReduce       = errors.New("shift/reduce conflict")
	ErrReduceReduce      = errors.New("reduce/reduce conflict")
)

// Errors of a parse run. A parse run aborts on the first error.
var (
	ErrUnknownToken = errors.New("unknown token")
	ErrSyntax       = errors.New("syntax error")
	ErrExtraInput   = errors.New("extra tokens at end of input")
)

// GrammarError describes a defect of a grammar, detected while analysing it
// or while constructing parser tables. Kind is one of the build time sentinel
// errors, and errors.Is will match it.
type GrammarError struct {
	Kind   error
	Symbol pgen.Symbol // offending symbol (non-terminal or lookahead), if any
	State  int         // LR state, or -1
	Rules  []int       // IDs of the rules in conflict
	Msg    string      // optional detail
}

func (e *GrammarError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.State >= 0 {
		fmt.Fprintf(&b, " in state %d", e.State)
	}
	if e.Symbol != "" {
		fmt.Fprintf(&b, " on %q", e.Symbol)
	}
	if len(e.Rules) > 0 {
		fmt.Fprintf(&b, " between rules %v", e.Rules)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

// Unwrap returns the kind of grammar error.
func (e *GrammarError) Unwrap() error {
	return e.Kind
}

func grammarError(kind error, sym pgen.Symbol, msg string) *GrammarError {
	return &GrammarError{Kind: kind, Symbol: sym, State: -1, Msg: msg}
}

// ConflictError creates a table conflict error. It is used by table
// generators for the various parsing methods.
func ConflictError(kind error, state int, la pgen.Symbol, rules ...int) *GrammarError {
	return &GrammarError{Kind: kind, Symbol: la, State: state, Rules: rules}
}

// ParseError describes why a parse run failed. Kind is one of the parse time
// sentinel errors, and errors.Is will match it.
type ParseError struct {
	Kind     error
	Token    pgen.Token    // offending input token
	Pos      int           // 0-based index of the offending token in the input
	NonTerm  pgen.Symbol   // non-terminal being expanded (LL), if any
	State    int           // automaton state (LR), or -1
	Expected []pgen.Symbol // symbols which would have been legal, if known
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	fmt.Fprintf(&b, " at token #%d %q", e.Pos, e.Token.String())
	if e.NonTerm != "" {
		fmt.Fprintf(&b, " while parsing %s", e.NonTerm)
	}
	if e.State >= 0 {
		fmt.Fprintf(&b, " in state %d", e.State)
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, ", expected one of %v", e.Expected)
	}
	return b.String()
}

// Unwrap returns the kind of parse error.
func (e *ParseError) Unwrap() error {
	return e.Kind
}
