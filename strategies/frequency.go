package strategies

import (
	"fmt"
	"math"

	"github.com/lpp-lab/coilcalc/nodeout"
	"github.com/lpp-lab/coilcalc/params"
	"github.com/lpp-lab/coilcalc/strategy"
)

// FrequencyVector generates the log-spaced frequency axis every downstream
// transfer-function and noise strategy is evaluated over.
type FrequencyVector struct{}

func (FrequencyVector) Dependencies() []string {
	return []string{"freq_min", "freq_max", "freq_points"}
}

func (FrequencyVector) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	fMin := deps["freq_min"].Scalar
	fMax := deps["freq_max"].Scalar
	points := int(deps["freq_points"].Scalar)

	if fMin <= 0 || fMax <= fMin {
		return nodeout.Output{}, fmt.Errorf("freq_min/freq_max out of order: %v, %v", fMin, fMax)
	}
	if points < 2 {
		return nodeout.Output{}, fmt.Errorf("freq_points must be >= 2, got %d", points)
	}

	logMin, logMax := math.Log10(fMin), math.Log10(fMax)
	step := (logMax - logMin) / float64(points-1)
	values := make([]float64, points)
	for i := range values {
		values[i] = math.Pow(10, logMin+step*float64(i))
	}
	return nodeout.Vector(values, "Frequency", "Hz"), nil
}
