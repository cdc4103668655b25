package lr

import (
	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/terex"
	"github.com/npillmayer/schuko/tracing"
)

// Observer is notified by parsers at well-defined points of a parse run.
// Observers must not modify the nodes handed to them.
type Observer interface {
	RuleApplied(r *Rule, node terex.Node)         // a rule has been recognized
	TokenAccepted(tok pgen.Token, pos int)        // an input token has been consumed
	Transition(from int, sym pgen.Symbol, to int) // LR parsers only
}

// parseTracer traces with key 'pgen.parse'.
func parseTracer() tracing.Trace {
	return tracing.Select("pgen.parse")
}

// TracingObserver is the default observer for parsers. It traces every event
// with key 'pgen.parse' at debug level.
type TracingObserver struct{}

var _ Observer = TracingObserver{}

// RuleApplied is part of interface Observer.
func (TracingObserver) RuleApplied(r *Rule, node terex.Node) {
	parseTracer().Debugf("apply %v ⇒ %s", r, terex.String(node))
}

// TokenAccepted is part of interface Observer.
func (TracingObserver) TokenAccepted(tok pgen.Token, pos int) {
	parseTracer().Debugf("accept token #%d %q", pos, tok.String())
}

// Transition is part of interface Observer.
func (TracingObserver) Transition(from int, sym pgen.Symbol, to int) {
	parseTracer().Debugf("state %d --%s--> %d", from, sym, to)
}
