package strategy

import (
	"fmt"

	"github.com/lpp-lab/coilcalc/nodeout"
	"github.com/lpp-lab/coilcalc/params"
)

// Kind discriminates what a DepValue carries.
type Kind int

const (
	// KindScalar means the dependency named a parameter.
	KindScalar Kind = iota
	// KindNode means the dependency named an upstream node.
	KindNode
)

// DepValue is the tagged union handed to Calculate for each declared
// dependency: either a parameter's Scalar value or an upstream node's
// Node output.
type DepValue struct {
	Kind   Kind
	Scalar float64
	Node   nodeout.Output
}

// ScalarValue builds a parameter-kind DepValue.
func ScalarValue(v float64) DepValue { return DepValue{Kind: KindScalar, Scalar: v} }

// NodeValue builds a node-kind DepValue.
func NodeValue(o nodeout.Output) DepValue { return DepValue{Kind: KindNode, Node: o} }

// Descriptor is the capability set a strategy must provide: its declared
// dependency names, and the pure computation over those dependencies plus
// the full Parameter Bundle.
type Descriptor interface {
	// Dependencies returns the ordered names this strategy reads, drawn
	// from the union of parameter-names and node-names.
	Dependencies() []string

	// Calculate computes this node's output. deps is restricted to the
	// names declared by Dependencies; bundle is the full current
	// Parameter Bundle, provided for strategies that read parameters not
	// worth threading individually through deps.
	Calculate(deps map[string]DepValue, bundle *params.Bundle) (nodeout.Output, error)
}

// Failure wraps an internal numeric or shape failure raised inside a
// strategy's Calculate (division by zero, shape mismatch, and the like).
// The engine wraps Failure in an EvaluationFailedError before surfacing it.
type Failure struct {
	Node  string
	Cause error
}

// NewFailure builds a Failure for node, wrapping cause.
func NewFailure(node string, cause error) *Failure {
	return &Failure{Node: node, Cause: cause}
}

func (f *Failure) Error() string {
	return fmt.Sprintf("strategy: %s: %v", f.Node, f.Cause)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (f *Failure) Unwrap() error { return f.Cause }
