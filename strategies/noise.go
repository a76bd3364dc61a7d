package strategies

import (
	"math"

	"github.com/lpp-lab/coilcalc/nodeout"
	"github.com/lpp-lab/coilcalc/params"
	"github.com/lpp-lab/coilcalc/strategy"
)

// NSDRCoil computes the noise spectral density contributed by the coil's
// own thermal (Johnson) resistance noise.
type NSDRCoil struct{}

func (NSDRCoil) Dependencies() []string {
	return []string{"temperature", "resistance", "frequency_vector", "NSD_normalisation", "TF_ASIC_Stage_2"}
}

func (NSDRCoil) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	temperature := deps["temperature"].Scalar
	r, _ := deps["resistance"].Node.AsScalar()
	freq := vectorOf(deps["frequency_vector"])
	normalisation := matrixColumn(deps["NSD_normalisation"], 1)
	h2 := matrixColumn(deps["TF_ASIC_Stage_2"], 1)

	numerator := math.Sqrt(math.Abs(4 * boltzmannConstant * temperature * r))
	rows := make([][]float64, len(freq))
	for i, f := range freq {
		nonFiltered := numerator / normalisation[i]
		rows[i] = []float64{f, nonFiltered, nonFiltered * h2[i]}
	}
	return nodeout.Matrix(rows,
		[]string{"Frequency", "NSD_R_Coil", "NSD_R_Coil_filtered"},
		[]string{"Hz", "V/sqrt(Hz)", "V/sqrt(Hz)"}), nil
}

// NSDFlicker computes the ASIC's flicker (1/f) noise spectral density from
// its fitted amplitude and frequency-scaling parameters.
type NSDFlicker struct{}

func (NSDFlicker) Dependencies() []string {
	return []string{"frequency_vector", "Para_A", "Para_B", "Alpha", "e_en"}
}

func (NSDFlicker) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	paraA := deps["Para_A"].Scalar
	paraB := deps["Para_B"].Scalar
	alpha := deps["Alpha"].Scalar / 10
	eEn := deps["e_en"].Scalar
	freq := vectorOf(deps["frequency_vector"])

	rows := make([][]float64, len(freq))
	for i, f := range freq {
		nonFiltered := paraA*1e-9/(paraB*math.Pow(f, alpha)) + eEn
		rows[i] = []float64{f, nonFiltered}
	}
	return nodeout.Matrix(rows, []string{"Frequency", "NSD_Flicker"}, []string{"Hz", "V/sqrt(Hz)"}), nil
}
