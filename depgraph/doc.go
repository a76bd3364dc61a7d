// Package depgraph is the thread-safe directed-graph substrate the
// dependency resolver walks.
//
// Adapted from the teacher's core.Graph: a mutex-guarded adjacency
// structure, trimmed to what a dependency DAG needs — no undirected mode,
// no weights, no multi-edges. A vertex is any declared name (a node-name or
// a parameter-name); an edge d -> n means "d is a declared dependency of
// n", which is exactly the orientation Kahn's algorithm needs: n's
// in-degree counts how many of its dependencies are still unprocessed.
package depgraph
