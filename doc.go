// Package coilcalc is a dependency-resolving, incrementally-recomputing
// calculation engine for magnetic search-coil sensor models.
//
// What it is:
//
//	A small, dense core that composes many pluggable "strategies" — pure
//	functions from named inputs to a named, labeled, unit-tagged output —
//	into a dependency graph, runs them in topological order, caches their
//	results, and invalidates precisely what changed.
//
// Why:
//
//   - Swap a node's algorithm at runtime without rebuilding the graph by hand.
//   - Recompute only what a parameter or strategy change actually touches.
//   - Keep a bounded history of prior result sets so a caller can diff or
//     roll back.
//
// Organized as:
//
//	params/     — immutable snapshot of scalar user inputs
//	nodeout/    — value + labels + units produced by one strategy evaluation
//	strategy/   — the pure-function capability every node installs
//	depgraph/   — thread-safe directed graph backing the dependency DAG
//	resolver/   — deterministic topological ordering and cycle detection
//	store/      — current outputs plus a FIFO ring of prior snapshots
//	registry/   — named {default, alternatives} strategy sets per node
//	engine/     — owns nodes, parameters, and the store; orchestrates runs
//	strategies/ — concrete search-coil analytical formulas
//
// The engine itself has no UI, file format, or simulation surface; those are
// external collaborators invoked through the Strategy Descriptor contract.
package coilcalc
