package resolver

import (
	"container/heap"
	"sort"

	"github.com/lpp-lab/coilcalc/depgraph"
)

// Resolve computes a deterministic topological order over g's node-names
// (vertices for which isNode reports true). Parameter-only vertices
// participate in in-degree bookkeeping but are not included in the
// returned order — they are leaves nothing ever waits to "run".
//
// isKnownParam reports whether a non-node name is an accepted parameter
// name in the caller's current Parameter Bundle. A dependency that is
// neither a node nor a known parameter fails with
// *UnresolvedDependencyError before any ordering is attempted.
func Resolve(g *depgraph.Graph, isNode, isKnownParam func(name string) bool) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()

	for _, v := range vertices {
		if !isNode(v) {
			continue
		}
		for _, dep := range g.Predecessors(v) {
			if !isNode(dep) && !isKnownParam(dep) {
				return nil, &UnresolvedDependencyError{Node: v, Missing: dep}
			}
		}
	}

	inDegree := make(map[string]int, len(vertices))
	for _, v := range vertices {
		inDegree[v] = len(g.Predecessors(v))
	}

	ready := &nameHeap{}
	heap.Init(ready)
	for _, v := range vertices {
		if inDegree[v] == 0 {
			heap.Push(ready, v)
		}
	}

	order := make([]string, 0, len(vertices))
	processed := make(map[string]struct{}, len(vertices))

	for ready.Len() > 0 {
		v := heap.Pop(ready).(string)
		processed[v] = struct{}{}
		if isNode(v) {
			order = append(order, v)
		}
		for _, succ := range g.Successors(v) {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				heap.Push(ready, succ)
			}
		}
	}

	if len(processed) < len(vertices) {
		remaining := make(map[string]bool)
		for _, v := range vertices {
			if _, ok := processed[v]; !ok {
				remaining[v] = true
			}
		}
		return nil, &CycleDetectedError{Cycle: witnessCycle(g, remaining)}
	}

	return order, nil
}

// witnessCycle walks predecessors from the lexicographically smallest
// remaining vertex until a name repeats, returning that repeated segment.
func witnessCycle(g *depgraph.Graph, remaining map[string]bool) []string {
	names := make([]string, 0, len(remaining))
	for v := range remaining {
		names = append(names, v)
	}
	sort.Strings(names)

	cur := names[0]
	visitedAt := make(map[string]int)
	path := make([]string, 0, len(remaining)+1)

	for {
		if idx, seen := visitedAt[cur]; seen {
			cycle := append([]string{}, path[idx:]...)
			return append(cycle, cur)
		}
		visitedAt[cur] = len(path)
		path = append(path, cur)

		preds := g.Predecessors(cur)
		next := ""
		for _, p := range preds {
			if remaining[p] {
				next = p
				break
			}
		}
		if next == "" {
			// Defensive: every vertex left in `remaining` must have at
			// least one remaining predecessor, or it would have been
			// processed by Kahn's sweep. Return what we have rather than
			// looping forever.
			return path
		}
		cur = next
	}
}

// nameHeap is a string min-heap implementing heap.Interface, used to pop
// the lexicographically smallest ready (zero in-degree) vertex at each
// step of Kahn's algorithm.
type nameHeap []string

func (h nameHeap) Len() int            { return len(h) }
func (h nameHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h nameHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nameHeap) Push(x interface{}) { *h = append(*h, x.(string)) }
func (h *nameHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
