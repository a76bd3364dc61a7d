package strategies

import (
	"math"

	"github.com/lpp-lab/coilcalc/nodeout"
	"github.com/lpp-lab/coilcalc/params"
	"github.com/lpp-lab/coilcalc/strategy"
)

// NSDNormalisation computes the shared noise-spectral-density denominator
// used by every downstream NSD_* strategy, so it is evaluated only once
// per run rather than repeated inside each noise contributor.
type NSDNormalisation struct{}

func (NSDNormalisation) Dependencies() []string {
	return []string{
		"inductance", "feedback_resistance", "frequency_vector", "mutual_inductance",
		"TF_ASIC_Stage_1", "capacitance", "resistance",
	}
}

func (NSDNormalisation) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	l, _ := deps["inductance"].Node.AsScalar()
	rFeedback := deps["feedback_resistance"].Scalar
	mutualL := deps["mutual_inductance"].Scalar
	c, _ := deps["capacitance"].Node.AsScalar()
	r, _ := deps["resistance"].Node.AsScalar()
	freq := vectorOf(deps["frequency_vector"])
	h1 := matrixColumn(deps["TF_ASIC_Stage_1"], 1)

	rows := make([][]float64, len(freq))
	for i, f := range freq {
		omega2 := math.Pow(2*math.Pi*f, 2)
		term := r*c + h1[i]*mutualL/rFeedback
		denominator := math.Sqrt(math.Pow(1-l*c*omega2, 2) + omega2*term*term)
		rows[i] = []float64{f, denominator}
	}
	return nodeout.Matrix(rows, []string{"Frequency", "NSD_normalisation"}, []string{"Hz", ""}), nil
}

// OLTF computes the sensor's open-loop transfer function.
type OLTF struct{}

func (OLTF) Dependencies() []string {
	return []string{
		"nb_spire", "ray_spire", "mu_app", "frequency_vector", "TF_ASIC_Stage_2",
		"inductance", "capacitance", "resistance",
	}
}

func (OLTF) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	n := deps["nb_spire"].Scalar
	rs := deps["ray_spire"].Scalar
	muApp, _ := deps["mu_app"].Node.AsScalar()
	l, _ := deps["inductance"].Node.AsScalar()
	c, _ := deps["capacitance"].Node.AsScalar()
	r, _ := deps["resistance"].Node.AsScalar()
	freq := vectorOf(deps["frequency_vector"])
	h2 := matrixColumn(deps["TF_ASIC_Stage_2"], 1)

	section := math.Pi * rs * rs
	rows := make([][]float64, len(freq))
	for i, f := range freq {
		omega := 2 * math.Pi * f
		numerator := n * section * muApp * omega
		denominator := math.Sqrt(math.Pow(1-l*c*omega*omega, 2) + math.Pow(r*c*omega, 2))
		oltf := numerator / denominator
		rows[i] = []float64{f, oltf, oltf * h2[i]}
	}
	return nodeout.Matrix(rows,
		[]string{"Frequency", "OLTF", "OLTF_filtered"},
		[]string{"Hz", "m^2/s", "m^2/s"}), nil
}

// CLTF computes the sensor's closed-loop transfer function.
type CLTF struct{}

func (CLTF) Dependencies() []string {
	return []string{
		"nb_spire", "ray_spire", "mu_app", "frequency_vector", "TF_ASIC_Stage_2",
		"NSD_normalisation",
	}
}

func (CLTF) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	n := deps["nb_spire"].Scalar
	rs := deps["ray_spire"].Scalar
	muApp, _ := deps["mu_app"].Node.AsScalar()
	freq := vectorOf(deps["frequency_vector"])
	h2 := matrixColumn(deps["TF_ASIC_Stage_2"], 1)
	normalisation := matrixColumn(deps["NSD_normalisation"], 1)

	section := math.Pi * rs * rs
	rows := make([][]float64, len(freq))
	for i, f := range freq {
		omega := 2 * math.Pi * f
		numerator := n * section * muApp * omega
		cltf := numerator / normalisation[i]
		rows[i] = []float64{f, cltf, cltf * h2[i]}
	}
	return nodeout.Matrix(rows,
		[]string{"Frequency", "CLTF", "CLTF_filtered"},
		[]string{"Hz", "m^2/s", "m^2/s"}), nil
}
