// Package resolver computes a deterministic topological ordering of a
// depgraph.Graph's node-names, or reports why one does not exist.
//
// Algorithm: Kahn's algorithm over reverse adjacency (depgraph already
// stores edges d -> n for "d is a dependency of n", so n's remaining
// in-degree is exactly its unprocessed dependency count). The ready set —
// vertices with zero remaining in-edges — is kept in a string min-heap
// (container/heap, the same pattern the teacher's Dijkstra implementation
// uses for its priority queue) so ties are always broken by lexicographic
// name order: evaluation order is reproducible across platforms and runs.
//
// If vertices remain after the sweep, the graph contains a cycle; Resolve
// extracts one witness cycle by walking predecessors from the
// lexicographically smallest unresolved vertex until a name repeats.
//
// Complexity: O((V + E) log V).
package resolver
