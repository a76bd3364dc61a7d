package engine

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates shouldAbort returned true between node evaluations.
var ErrCancelled = errors.New("engine: cancelled")

// InUseError indicates delete_node was requested for a node still named as
// a dependency by at least one other installed node.
type InUseError struct {
	Node        string
	Dependent   string // one of (possibly several) nodes that still depend on Node
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("engine: node %q is in use by %q", e.Node, e.Dependent)
}

// MissingInputError indicates a strategy declared a dependency name that
// was absent from both the current Parameter Bundle and the store at
// evaluation time.
type MissingInputError struct {
	Node    string
	Missing string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("engine: node %q is missing input %q", e.Node, e.Missing)
}

// EvaluationFailedError wraps the underlying cause (typically a
// *strategy.Failure, or ErrCancelled) that aborted run_calculations.
type EvaluationFailedError struct {
	Node  string
	Cause error
}

func (e *EvaluationFailedError) Error() string {
	return fmt.Sprintf("engine: evaluation failed at node %q: %v", e.Node, e.Cause)
}

func (e *EvaluationFailedError) Unwrap() error { return e.Cause }
