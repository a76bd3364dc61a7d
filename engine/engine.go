package engine

import (
	"fmt"
	"sync"

	"github.com/lpp-lab/coilcalc/depgraph"
	"github.com/lpp-lab/coilcalc/nodeout"
	"github.com/lpp-lab/coilcalc/params"
	"github.com/lpp-lab/coilcalc/registry"
	"github.com/lpp-lab/coilcalc/resolver"
	"github.com/lpp-lab/coilcalc/store"
	"github.com/lpp-lab/coilcalc/strategy"
)

// DefaultHistoryCapacity is the ring size used by New when the caller does
// not specify one.
const DefaultHistoryCapacity = 3

type nodeEntry struct {
	strategy  strategy.Descriptor
	evalCount int
}

// Engine owns the dependency graph, the installed strategies, the current
// Parameter Bundle, and the Result Store. It enforces that at most one
// RunCalculations is in flight via mu.
type Engine struct {
	mu sync.Mutex

	graph *depgraph.Graph
	nodes map[string]*nodeEntry

	bundle        *params.Bundle
	paramsPending bool // true until the first UpdateParameters call

	store    *store.Store
	capacity int

	topoOrder []string
	topoValid bool
}

// New returns an empty Engine with a history ring of the given capacity.
func New(historyCapacity int) *Engine {
	return &Engine{
		graph:         depgraph.New(),
		nodes:         make(map[string]*nodeEntry),
		paramsPending: true,
		store:         store.New(historyCapacity),
		capacity:      historyCapacity,
	}
}

// AddOrUpdateNode installs strategy as the descriptor for name, invalidating
// name and its full downstream closure. Upstream nodes are left untouched.
func (e *Engine) AddOrUpdateNode(name string, s strategy.Descriptor) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.graph.SetDependencies(name, s.Dependencies())

	entry, ok := e.nodes[name]
	if !ok {
		entry = &nodeEntry{}
		e.nodes[name] = entry
	}
	entry.strategy = s

	e.invalidateClosureLocked(name)
	e.topoValid = false
}

// DeleteNode removes name's entry, failing InUseError if any other
// installed node still declares name as a dependency.
func (e *Engine) DeleteNode(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, dependent := range e.graph.Successors(name) {
		if _, installed := e.nodes[dependent]; installed {
			return &InUseError{Node: name, Dependent: dependent}
		}
	}

	e.graph.RemoveVertex(name)
	delete(e.nodes, name)
	e.topoValid = false
	return nil
}

// UpdateParameters replaces the current Parameter Bundle. Every node whose
// declared dependencies include a changed parameter name, plus that node's
// downstream closure, is invalidated. The first call invalidates every
// installed node.
func (e *Engine) UpdateParameters(bundle *params.Bundle) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var changed map[string]struct{}
	if e.paramsPending {
		changed = nil // unused: the first call invalidates every node below
	} else {
		changed = params.ChangedNames(e.bundle, bundle)
	}

	prevPending := e.paramsPending
	e.bundle = bundle
	e.paramsPending = false

	for name := range e.nodes {
		if prevPending {
			e.invalidateClosureLocked(name)
			continue
		}
		for _, dep := range e.graph.Predecessors(name) {
			if _, touched := changed[dep]; touched {
				e.invalidateClosureLocked(name)
				break
			}
		}
	}
}

// SwapStrategyForNode installs s at name (as add_or_update_node would) and,
// if overlay is non-nil, layers overlay's values on top of the current
// Parameter Bundle and applies the merged result via UpdateParameters.
// Names present only in overlay are added; names present in both take the
// overlay's value; names absent from overlay keep their prior value.
//
// The two steps run as independent critical sections — AddOrUpdateNode and
// UpdateParameters each take e.mu themselves — so a concurrent caller can
// observe the new strategy installed before the overlay lands, never the
// reverse.
func (e *Engine) SwapStrategyForNode(name string, s strategy.Descriptor, overlay *params.Bundle) error {
	e.AddOrUpdateNode(name, s)

	if overlay == nil {
		return nil
	}

	e.mu.Lock()
	current := e.bundle
	e.mu.Unlock()

	merged := make(map[string]float64, current.Len()+overlay.Len())
	for _, name := range current.Names() {
		v, _ := current.Get(name)
		merged[name] = v
	}
	for _, name := range overlay.Names() {
		v, _ := overlay.Get(name)
		merged[name] = v
	}

	bundle, err := params.NewBundle(merged)
	if err != nil {
		return err
	}
	e.UpdateParameters(bundle)
	return nil
}

// invalidateClosureLocked marks name and its downstream closure Stale. It
// also includes name itself even if name has no entry yet; Store.Invalidate
// records every name it is given, and a name with no installed node is never
// evaluated or reported.
func (e *Engine) invalidateClosureLocked(name string) {
	set := e.graph.DownstreamClosure(name)
	set[name] = struct{}{}
	e.store.Invalidate(set)
}

// RunCalculations evaluates every Stale node in topological order.
// shouldAbort, if non-nil, is polled between node evaluations; when it
// returns true the run aborts with ErrCancelled wrapped in
// EvaluationFailedError.
func (e *Engine) RunCalculations(shouldAbort func() bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.topoValid {
		order, err := resolver.Resolve(e.graph, e.isNodeLocked, e.isKnownParamLocked)
		if err != nil {
			return err
		}
		e.topoOrder = order
		e.topoValid = true
	}

	for _, name := range e.topoOrder {
		if shouldAbort != nil && shouldAbort() {
			return &EvaluationFailedError{Node: name, Cause: ErrCancelled}
		}

		if !e.store.IsStale(name) {
			continue
		}

		entry := e.nodes[name]
		deps, err := e.assembleDepsLocked(name, entry.strategy)
		if err != nil {
			return err
		}

		out, err := e.evaluateLocked(name, entry, deps)
		if err != nil {
			return err
		}
		e.store.Put(name, out)
	}

	return nil
}

func (e *Engine) assembleDepsLocked(name string, s strategy.Descriptor) (map[string]strategy.DepValue, error) {
	deps := make(map[string]strategy.DepValue, len(s.Dependencies()))
	for _, depName := range s.Dependencies() {
		if _, isNode := e.nodes[depName]; isNode {
			current, err := e.store.Current([]string{depName})
			if err != nil {
				return nil, &MissingInputError{Node: name, Missing: depName}
			}
			deps[depName] = strategy.NodeValue(current[depName])
			continue
		}
		if e.bundle != nil && e.bundle.Contains(depName) {
			v, _ := e.bundle.Get(depName)
			deps[depName] = strategy.ScalarValue(v)
			continue
		}
		return nil, &MissingInputError{Node: name, Missing: depName}
	}
	return deps, nil
}

func (e *Engine) evaluateLocked(name string, entry *nodeEntry, deps map[string]strategy.DepValue) (out nodeout.Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &EvaluationFailedError{Node: name, Cause: strategy.NewFailure(name, panicAsError(r))}
		}
	}()

	out, cause := entry.strategy.Calculate(deps, e.bundle)
	if cause != nil {
		return nodeout.Output{}, &EvaluationFailedError{Node: name, Cause: strategy.NewFailure(name, cause)}
	}
	entry.evalCount++
	return out, nil
}

func panicAsError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &panicValue{r}
}

type panicValue struct{ v interface{} }

func (p *panicValue) Error() string { return fmt.Sprintf("%v", p.v) }

// SaveCalculationResults commits the current mapping into history. index is
// bounds-validated against the ring's construction-time capacity, but
// insertion is always a FIFO append; there is no positional write (see the
// open-question resolution in the design notes).
func (e *Engine) SaveCalculationResults(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= e.capacity {
		return store.ErrOutOfRange
	}
	return e.store.Commit(e.installedNamesLocked())
}

// ClearCalculationResults drops current outputs; strategies, parameters,
// and history are retained.
func (e *Engine) ClearCalculationResults() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.ClearCurrent()
}

// ResetWith installs every default descriptor from reg, replacing the
// current node set entirely. If keepParams is false, the Parameter Bundle
// is cleared as well (paramsPending is reset so the next UpdateParameters
// invalidates everything).
func (e *Engine) ResetWith(reg *registry.Registry, keepParams bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.graph = depgraph.New()
	e.nodes = make(map[string]*nodeEntry)
	e.store.Clear()
	e.topoValid = false

	if !keepParams {
		e.bundle = nil
		e.paramsPending = true
	}

	for _, name := range reg.Names() {
		def, _ := reg.DefaultFor(name)
		e.graph.SetDependencies(name, def.Dependencies())
		e.nodes[name] = &nodeEntry{strategy: def}
	}
	for name := range e.nodes {
		e.invalidateClosureLocked(name)
	}
}

// CurrentResults returns the current fresh output mapping restricted to
// installed nodes, or store.ErrNotReady if any installed node is Stale.
func (e *Engine) CurrentResults() (map[string]nodeout.Output, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Current(e.installedNamesLocked())
}

// History returns the snapshot at the given ring position.
func (e *Engine) History(index int) (store.Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.History(index)
}

// EvaluationCount reports how many times name has successfully evaluated
// since it was added to the engine. Replacing its strategy through
// AddOrUpdateNode does not reset the count.
func (e *Engine) EvaluationCount(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, ok := e.nodes[name]
	if !ok {
		return 0
	}
	return entry.evalCount
}

func (e *Engine) installedNamesLocked() []string {
	names := make([]string, 0, len(e.nodes))
	for name := range e.nodes {
		names = append(names, name)
	}
	return names
}

func (e *Engine) isNodeLocked(name string) bool {
	_, ok := e.nodes[name]
	return ok
}

func (e *Engine) isKnownParamLocked(name string) bool {
	return e.bundle != nil && e.bundle.Contains(name)
}
