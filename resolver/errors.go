package resolver

import (
	"errors"
	"fmt"
)

// ErrGraphNil is returned when a nil *depgraph.Graph is passed to Resolve.
var ErrGraphNil = errors.New("resolver: graph is nil")

// CycleDetectedError reports that the dependency graph contains a cycle,
// naming one witness cycle.
type CycleDetectedError struct {
	Cycle []string
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("resolver: cycle detected: %v", e.Cycle)
}

// UnresolvedDependencyError reports that a strategy declared a dependency
// name that is neither an installed node nor a known parameter.
type UnresolvedDependencyError struct {
	Node    string
	Missing string
}

func (e *UnresolvedDependencyError) Error() string {
	return fmt.Sprintf("resolver: %s: unresolved dependency %q", e.Node, e.Missing)
}
