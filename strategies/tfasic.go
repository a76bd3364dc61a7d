package strategies

import (
	"math"

	"github.com/lpp-lab/coilcalc/nodeout"
	"github.com/lpp-lab/coilcalc/params"
	"github.com/lpp-lab/coilcalc/strategy"
)

// TFASICStage1 computes the first-stage transfer function of the readout
// ASIC, a single-pole low-pass response.
type TFASICStage1 struct{}

func (TFASICStage1) Dependencies() []string {
	return []string{"gain_1_linear", "stage_1_cutting_freq", "frequency_vector"}
}

func (TFASICStage1) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	return tfAsicStage(deps["gain_1_linear"].Scalar, deps["stage_1_cutting_freq"].Scalar, vectorOf(deps["frequency_vector"])), nil
}

// TFASICStage2 computes the second-stage transfer function of the readout
// ASIC, identical in form to stage 1 with its own gain and cutting
// frequency.
type TFASICStage2 struct{}

func (TFASICStage2) Dependencies() []string {
	return []string{"gain_2_linear", "stage_2_cutting_freq", "frequency_vector"}
}

func (TFASICStage2) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	return tfAsicStage(deps["gain_2_linear"].Scalar, deps["stage_2_cutting_freq"].Scalar, vectorOf(deps["frequency_vector"])), nil
}

func tfAsicStage(gain, cuttingFreq float64, freq []float64) nodeout.Output {
	rows := make([][]float64, len(freq))
	for i, f := range freq {
		denominator := math.Sqrt(1 + (f/cuttingFreq)*(f/cuttingFreq))
		rows[i] = []float64{f, gain / denominator}
	}
	return nodeout.Matrix(rows, []string{"Frequency", "Transfer Function"}, []string{"Hz", ""})
}
