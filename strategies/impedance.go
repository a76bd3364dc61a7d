package strategies

import (
	"math"

	"github.com/lpp-lab/coilcalc/nodeout"
	"github.com/lpp-lab/coilcalc/params"
	"github.com/lpp-lab/coilcalc/strategy"
)

// Impedance computes the coil's electrical impedance across the frequency
// axis from its lumped RLC model.
type Impedance struct{}

func (Impedance) Dependencies() []string {
	return []string{"resistance", "inductance", "capacitance", "frequency_vector"}
}

func (Impedance) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	scalar := func(name string) float64 {
		if v, ok := deps[name].Node.AsScalar(); ok {
			return v
		}
		return deps[name].Scalar
	}
	r := scalar("resistance")
	l := scalar("inductance")
	c := scalar("capacitance")
	freq := vectorOf(deps["frequency_vector"])

	rows := make([][]float64, len(freq))
	for i, f := range freq {
		omega := 2 * math.Pi * f
		num := r*r + (l*omega)*(l*omega)
		den := math.Pow(1-l*c*omega*omega, 2) + math.Pow(r*c*omega, 2)
		rows[i] = []float64{f, math.Sqrt(num / den)}
	}
	return nodeout.Matrix(rows, []string{"Frequency", "Impedance"}, []string{"Hz", "Ohm"}), nil
}
