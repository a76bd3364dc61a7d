package engine_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpp-lab/coilcalc/engine"
	"github.com/lpp-lab/coilcalc/nodeout"
	"github.com/lpp-lab/coilcalc/params"
	"github.com/lpp-lab/coilcalc/resolver"
	"github.com/lpp-lab/coilcalc/store"
	"github.com/lpp-lab/coilcalc/strategy"
)

// doubler reads a single named dependency (a parameter or another node)
// and emits its value doubled.
type doubler struct {
	reads string
}

func (d doubler) Dependencies() []string { return []string{d.reads} }

func (d doubler) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	v := scalarOf(deps[d.reads])
	return nodeout.Scalar(v*2, d.reads+"*2", ""), nil
}

// adderOne reads a single dependency and adds 1.
type adderOne struct {
	reads string
}

func (a adderOne) Dependencies() []string { return []string{a.reads} }

func (a adderOne) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	return nodeout.Scalar(scalarOf(deps[a.reads])+1, a.reads+"+1", ""), nil
}

// summer reads two named dependencies and emits their sum.
type summer struct {
	left, right string
}

func (s summer) Dependencies() []string { return []string{s.left, s.right} }

func (s summer) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	return nodeout.Scalar(scalarOf(deps[s.left])+scalarOf(deps[s.right]), "sum", ""), nil
}

// failing always raises a strategy-level error.
type failing struct {
	reads string
}

func (f failing) Dependencies() []string { return []string{f.reads} }

func (f failing) Calculate(map[string]strategy.DepValue, *params.Bundle) (nodeout.Output, error) {
	return nodeout.Output{}, errors.New("boom: division by zero")
}

func scalarOf(v strategy.DepValue) float64 {
	if v.Kind == strategy.KindScalar {
		return v.Scalar
	}
	f, _ := v.Node.AsScalar()
	return f
}

func bundleOf(t *testing.T, values map[string]float64) *params.Bundle {
	t.Helper()
	b, err := params.NewBundle(values)
	require.NoError(t, err)
	return b
}

func TestLinearChain(t *testing.T) {
	e := engine.New(engine.DefaultHistoryCapacity)
	e.AddOrUpdateNode("a", doubler{reads: "x"})
	e.AddOrUpdateNode("b", doubler{reads: "a"})
	e.AddOrUpdateNode("c", doubler{reads: "b"})

	e.UpdateParameters(bundleOf(t, map[string]float64{"x": 2}))
	require.NoError(t, e.RunCalculations(nil))

	results, err := e.CurrentResults()
	require.NoError(t, err)
	assertScalar(t, results, "a", 4)
	assertScalar(t, results, "b", 8)
	assertScalar(t, results, "c", 16)

	e.UpdateParameters(bundleOf(t, map[string]float64{"x": 3}))
	require.NoError(t, e.RunCalculations(nil))

	results, err = e.CurrentResults()
	require.NoError(t, err)
	assertScalar(t, results, "a", 6)
	assertScalar(t, results, "b", 12)
	assertScalar(t, results, "c", 24)
}

func TestDiamond_StrategySwapInvalidatesOnlyDownstream(t *testing.T) {
	e := engine.New(engine.DefaultHistoryCapacity)
	e.AddOrUpdateNode("a", doubler{reads: "x"})
	e.AddOrUpdateNode("b", doubler{reads: "a"})
	e.AddOrUpdateNode("c", doubler{reads: "a"})
	e.AddOrUpdateNode("d", summer{left: "b", right: "c"})
	e.UpdateParameters(bundleOf(t, map[string]float64{"x": 2}))
	require.NoError(t, e.RunCalculations(nil))

	aCount := e.EvaluationCount("a")
	bCount := e.EvaluationCount("b")

	e.AddOrUpdateNode("c", adderOne{reads: "a"})
	require.NoError(t, e.RunCalculations(nil))

	assert.Equal(t, aCount, e.EvaluationCount("a"), "a must stay Fresh across c's swap")
	assert.Equal(t, bCount, e.EvaluationCount("b"), "b must stay Fresh across c's swap")
	assert.Equal(t, 2, e.EvaluationCount("c"))
	assert.Equal(t, 2, e.EvaluationCount("d"))

	results, err := e.CurrentResults()
	require.NoError(t, err)
	assertScalar(t, results, "c", 5)  // a=4, c = a+1
	assertScalar(t, results, "d", 13) // b=8, c=5
}

func TestSwapStrategyForNode_OverlayMergesOntoCurrentBundle(t *testing.T) {
	e := engine.New(engine.DefaultHistoryCapacity)
	e.AddOrUpdateNode("a", doubler{reads: "x"})
	e.AddOrUpdateNode("b", summer{left: "a", right: "y"})
	e.UpdateParameters(bundleOf(t, map[string]float64{"x": 2, "y": 10}))
	require.NoError(t, e.RunCalculations(nil))

	results, err := e.CurrentResults()
	require.NoError(t, err)
	assertScalar(t, results, "a", 4)
	assertScalar(t, results, "b", 14) // a=4, y=10

	overlay := bundleOf(t, map[string]float64{"x": 5})
	require.NoError(t, e.SwapStrategyForNode("a", adderOne{reads: "x"}, overlay))
	require.NoError(t, e.RunCalculations(nil))

	results, err = e.CurrentResults()
	require.NoError(t, err)
	assertScalar(t, results, "a", 6)  // x=5 (from overlay), new strategy: x+1
	assertScalar(t, results, "b", 16) // a=6, y=10 (untouched by overlay)
}

func TestSwapStrategyForNode_NilOverlayOnlySwapsStrategy(t *testing.T) {
	e := engine.New(engine.DefaultHistoryCapacity)
	e.AddOrUpdateNode("a", doubler{reads: "x"})
	e.UpdateParameters(bundleOf(t, map[string]float64{"x": 2}))
	require.NoError(t, e.RunCalculations(nil))

	require.NoError(t, e.SwapStrategyForNode("a", adderOne{reads: "x"}, nil))
	require.NoError(t, e.RunCalculations(nil))

	results, err := e.CurrentResults()
	require.NoError(t, err)
	assertScalar(t, results, "a", 3) // x=2 unchanged, new strategy: x+1
}

func TestCycle_Detected(t *testing.T) {
	e := engine.New(engine.DefaultHistoryCapacity)
	e.AddOrUpdateNode("a", doubler{reads: "b"})
	e.AddOrUpdateNode("b", doubler{reads: "a"})

	err := e.RunCalculations(nil)
	require.Error(t, err)

	var cycleErr *resolver.CycleDetectedError
	require.ErrorAs(t, err, &cycleErr)
	assert.Contains(t, cycleErr.Cycle, "a")
	assert.Contains(t, cycleErr.Cycle, "b")
}

func TestStrategyFailure_ThenRecovery(t *testing.T) {
	e := engine.New(engine.DefaultHistoryCapacity)
	e.AddOrUpdateNode("a", doubler{reads: "x"})
	e.AddOrUpdateNode("b", failing{reads: "a"})
	e.AddOrUpdateNode("c", doubler{reads: "b"})
	e.UpdateParameters(bundleOf(t, map[string]float64{"x": 2}))

	err := e.RunCalculations(nil)
	require.Error(t, err)
	var evalErr *engine.EvaluationFailedError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "b", evalErr.Node)

	_, err = e.CurrentResults()
	assert.ErrorIs(t, err, store.ErrNotReady)

	e.AddOrUpdateNode("b", doubler{reads: "a"})
	require.NoError(t, e.RunCalculations(nil))

	results, err := e.CurrentResults()
	require.NoError(t, err)
	assertScalar(t, results, "a", 4)
	assertScalar(t, results, "b", 8)
	assertScalar(t, results, "c", 16)
}

func TestHistoryRing(t *testing.T) {
	e := engine.New(3)
	e.AddOrUpdateNode("a", doubler{reads: "x"})

	for i, v := range []float64{1, 2, 3, 4} {
		e.UpdateParameters(bundleOf(t, map[string]float64{"x": v}))
		require.NoError(t, e.RunCalculations(nil))
		require.NoError(t, e.SaveCalculationResults(i%3))
	}

	snap, err := e.History(0)
	require.NoError(t, err)
	out := snap["a"]
	v, _ := out.AsScalar()
	assert.Equal(t, 4.0, v) // v=2 doubled

	_, err = e.History(3)
	assert.ErrorIs(t, err, store.ErrOutOfRange)
}

func TestParameterScopedInvalidation(t *testing.T) {
	e := engine.New(engine.DefaultHistoryCapacity)
	e.AddOrUpdateNode("R", doubler{reads: "temperature"})
	e.AddOrUpdateNode("L", doubler{reads: "mu_r"})
	e.UpdateParameters(bundleOf(t, map[string]float64{"temperature": 300, "mu_r": 10}))
	require.NoError(t, e.RunCalculations(nil))

	lCount := e.EvaluationCount("L")

	e.UpdateParameters(bundleOf(t, map[string]float64{"temperature": 310, "mu_r": 10}))
	require.NoError(t, e.RunCalculations(nil))

	assert.Equal(t, lCount, e.EvaluationCount("L"), "L must not re-evaluate on an unrelated parameter change")
	assert.Equal(t, 2, e.EvaluationCount("R"))
}

func TestDeleteNode_InUse(t *testing.T) {
	e := engine.New(engine.DefaultHistoryCapacity)
	e.AddOrUpdateNode("a", doubler{reads: "x"})
	e.AddOrUpdateNode("b", doubler{reads: "a"})

	err := e.DeleteNode("a")
	var inUse *engine.InUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, "a", inUse.Node)
}

func TestMissingInput(t *testing.T) {
	e := engine.New(engine.DefaultHistoryCapacity)
	e.AddOrUpdateNode("a", doubler{reads: "x"})
	e.UpdateParameters(bundleOf(t, map[string]float64{}))

	err := e.RunCalculations(nil)
	require.Error(t, err)
	var missing *engine.MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "x", missing.Missing)
}

func TestCancellation(t *testing.T) {
	e := engine.New(engine.DefaultHistoryCapacity)
	e.AddOrUpdateNode("a", doubler{reads: "x"})
	e.UpdateParameters(bundleOf(t, map[string]float64{"x": 1}))

	err := e.RunCalculations(func() bool { return true })
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrCancelled)
}

func TestIdempotentUpdateParametersRunRoundTrip(t *testing.T) {
	e := engine.New(engine.DefaultHistoryCapacity)
	e.AddOrUpdateNode("a", doubler{reads: "x"})
	p := bundleOf(t, map[string]float64{"x": 5})

	e.UpdateParameters(p)
	require.NoError(t, e.RunCalculations(nil))
	first, err := e.CurrentResults()
	require.NoError(t, err)

	e.UpdateParameters(p)
	require.NoError(t, e.RunCalculations(nil))
	second, err := e.CurrentResults()
	require.NoError(t, err)

	assert.True(t, nodeout.Equal(first["a"], second["a"]))
}

func assertScalar(t *testing.T, results map[string]nodeout.Output, name string, want float64) {
	t.Helper()
	out, ok := results[name]
	require.True(t, ok, fmt.Sprintf("missing %q in results", name))
	v, ok := out.AsScalar()
	require.True(t, ok)
	assert.Equal(t, want, v)
}
