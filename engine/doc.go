// Package engine implements the Calculation Engine: the stateful
// orchestrator that owns the dependency graph, the current Parameter
// Bundle, the Result Store, and a cached topological order.
//
// RunCalculations drives evaluation node-by-node in cached topological
// order, skipping any node whose output is already fresh. A single
// sync.Mutex enforces that at most one RunCalculations is in flight at a
// time; AddOrUpdateNode, DeleteNode, UpdateParameters, and the result
// operations all take the same lock, matching the "no concurrent mutation
// during evaluation" rule.
//
// Cancellation is cooperative: RunCalculations polls a caller-supplied
// shouldAbort func() bool between node evaluations rather than selecting
// on a context.Context.
package engine
