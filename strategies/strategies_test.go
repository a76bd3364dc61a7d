package strategies_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpp-lab/coilcalc/nodeout"
	"github.com/lpp-lab/coilcalc/strategies"
	"github.com/lpp-lab/coilcalc/strategy"
)

func scalarDep(v float64) strategy.DepValue { return strategy.ScalarValue(v) }

func nodeDep(o nodeout.Output) strategy.DepValue { return strategy.NodeValue(o) }

func TestResistance(t *testing.T) {
	out, err := strategies.Resistance{}.Calculate(map[string]strategy.DepValue{
		"nb_spire": scalarDep(10),
		"ray_spire": scalarDep(0.01),
		"rho_wire":  scalarDep(1.0),
	}, nil)
	require.NoError(t, err)
	v, ok := out.AsScalar()
	require.True(t, ok)
	assert.InDelta(t, 10*2*math.Pi*0.01*1.0, v, 1e-12)
}

func TestDemagnetizingFactor(t *testing.T) {
	out, err := strategies.DemagnetizingFactor{}.Calculate(map[string]strategy.DepValue{
		"diam_core": scalarDep(2),
		"len_core":  scalarDep(8),
	}, nil)
	require.NoError(t, err)
	v, _ := out.AsScalar()
	assert.InDelta(t, 2.0/18.0, v, 1e-12)
}

func TestApparentPermeability(t *testing.T) {
	out, err := strategies.ApparentPermeability{}.Calculate(map[string]strategy.DepValue{
		"mu_r": scalarDep(1000),
		"Nz":   nodeDep(nodeout.Scalar(0.1, "Nz", "")),
	}, nil)
	require.NoError(t, err)
	v, _ := out.AsScalar()
	assert.InDelta(t, 1000.0/(1+0.1*999), v, 1e-9)
}

func TestLambdaVariantsDiffer(t *testing.T) {
	deps := map[string]strategy.DepValue{
		"len_coil": scalarDep(0.5),
		"len_core": scalarDep(1.0),
	}
	lukoschus, err := strategies.LambdaLukoschus{}.Calculate(deps, nil)
	require.NoError(t, err)
	clerc, err := strategies.LambdaClerc{}.Calculate(deps, nil)
	require.NoError(t, err)

	lv, _ := lukoschus.AsScalar()
	cv, _ := clerc.AsScalar()
	assert.NotEqual(t, lv, cv)
	assert.InDelta(t, math.Pow(0.5, -2.0/5.0), lv, 1e-9)
	assert.InDelta(t, 1.85-1.1*0.5, cv, 1e-9)
}

func TestFrequencyVector_LogSpaced(t *testing.T) {
	out, err := strategies.FrequencyVector{}.Calculate(map[string]strategy.DepValue{
		"freq_min":    scalarDep(1),
		"freq_max":    scalarDep(1000),
		"freq_points": scalarDep(4),
	}, nil)
	require.NoError(t, err)
	vec, ok := out.AsVector()
	require.True(t, ok)
	require.Len(t, vec, 4)
	assert.InDelta(t, 1, vec[0], 1e-9)
	assert.InDelta(t, 1000, vec[3], 1e-6)
}

func TestFrequencyVector_RejectsBadRange(t *testing.T) {
	_, err := strategies.FrequencyVector{}.Calculate(map[string]strategy.DepValue{
		"freq_min":    scalarDep(1000),
		"freq_max":    scalarDep(1),
		"freq_points": scalarDep(4),
	}, nil)
	assert.Error(t, err)
}

func TestImpedance_MatrixShape(t *testing.T) {
	freq := nodeout.Vector([]float64{1, 10, 100}, "Frequency", "Hz")
	out, err := strategies.Impedance{}.Calculate(map[string]strategy.DepValue{
		"resistance":       scalarDep(5),
		"inductance":       scalarDep(1e-3),
		"capacitance":      scalarDep(1e-9),
		"frequency_vector": nodeDep(freq),
	}, nil)
	require.NoError(t, err)

	rows, ok := out.AsMatrix()
	require.True(t, ok)
	require.Len(t, rows, 3)
	for i, row := range rows {
		require.Len(t, row, 2)
		assert.Equal(t, []float64{1, 10, 100}[i], row[0])
		assert.Greater(t, row[1], 0.0)
	}
}

func TestTFASICStage_GainAtDCEqualsGain(t *testing.T) {
	freq := nodeout.Vector([]float64{0.0001}, "Frequency", "Hz")
	out, err := strategies.TFASICStage1{}.Calculate(map[string]strategy.DepValue{
		"gain_1_linear":         scalarDep(2.0),
		"stage_1_cutting_freq":  scalarDep(1000),
		"frequency_vector":      nodeDep(freq),
	}, nil)
	require.NoError(t, err)
	rows, _ := out.AsMatrix()
	assert.InDelta(t, 2.0, rows[0][1], 1e-3)
}

func TestCapacitance_RejectsZeroWire(t *testing.T) {
	_, err := strategies.Capacitance{}.Calculate(map[string]strategy.DepValue{
		"epsilon_insulator": scalarDep(3),
		"len_coil":          scalarDep(1),
		"kapton_thick":      scalarDep(1e-5),
		"insulator_thick":   scalarDep(1e-5),
		"diam_out_mandrel":  scalarDep(0.01),
		"diam_wire":         scalarDep(0),
		"capa_tuning":       scalarDep(0),
		"capa_triwire":      scalarDep(0),
		"nb_spire":          scalarDep(100),
	}, nil)
	assert.Error(t, err)
}
