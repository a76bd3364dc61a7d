package strategies

import (
	"fmt"
	"math"

	"github.com/lpp-lab/coilcalc/nodeout"
	"github.com/lpp-lab/coilcalc/params"
	"github.com/lpp-lab/coilcalc/strategy"
)

const (
	vacuumPermeability = 4 * math.Pi * 1e-7   // mu_0, H/m
	vacuumPermittivity = 8.8541878128e-12     // epsilon_0, F/m
	boltzmannConstant  = 1.380649e-23         // k, J/K
)

// Resistance computes the DC resistance of the coil winding.
type Resistance struct{}

func (Resistance) Dependencies() []string {
	return []string{"nb_spire", "ray_spire", "rho_wire"}
}

func (Resistance) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	n := deps["nb_spire"].Scalar
	rs := deps["ray_spire"].Scalar
	rho := deps["rho_wire"].Scalar
	value := n * (2 * math.Pi * rs) * rho
	return nodeout.Scalar(value, "Resistance", "Ohm"), nil
}

// Inductance computes the coil's self-inductance from its geometry and the
// core's apparent permeability and coefficient factor.
type Inductance struct{}

func (Inductance) Dependencies() []string {
	return []string{"nb_spire", "ray_spire", "len_core", "lambda_param", "mu_app"}
}

func (Inductance) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	n := deps["nb_spire"].Scalar
	rs := deps["ray_spire"].Scalar
	lenCore := deps["len_core"].Scalar
	lambdaParam, _ := deps["lambda_param"].Node.AsScalar()
	muApp, _ := deps["mu_app"].Node.AsScalar()

	if lenCore == 0 {
		return nodeout.Output{}, fmt.Errorf("len_core is zero")
	}
	section := math.Pi * rs * rs
	value := vacuumPermeability * muApp * n * n * section * lambdaParam / lenCore
	return nodeout.Scalar(value, "Inductance", "H"), nil
}

// Capacitance computes the coil's parasitic winding capacitance.
type Capacitance struct{}

func (Capacitance) Dependencies() []string {
	return []string{
		"epsilon_insulator", "len_coil", "kapton_thick", "insulator_thick",
		"diam_out_mandrel", "diam_wire", "capa_tuning", "capa_triwire", "nb_spire",
	}
}

func (Capacitance) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	epsInsulator := deps["epsilon_insulator"].Scalar
	lenCoil := deps["len_coil"].Scalar
	kaptonThick := deps["kapton_thick"].Scalar
	insulatorThick := deps["insulator_thick"].Scalar
	diamOutMandrel := deps["diam_out_mandrel"].Scalar
	diamWire := deps["diam_wire"].Scalar
	capaTuning := deps["capa_tuning"].Scalar
	capaTriwire := deps["capa_triwire"].Scalar
	nbSpire := deps["nb_spire"].Scalar

	if diamWire == 0 {
		return nodeout.Output{}, fmt.Errorf("diam_wire is zero")
	}
	spirePerLayer := math.Trunc(lenCoil / diamWire)
	if spirePerLayer == 0 {
		return nodeout.Output{}, fmt.Errorf("len_coil/diam_wire rounds to zero spires per layer")
	}
	nbLayer := math.Trunc(nbSpire/spirePerLayer) + 1
	denom := (kaptonThick + 2*insulatorThick) * nbLayer * nbLayer
	if denom == 0 {
		return nodeout.Output{}, fmt.Errorf("capacitance denominator is zero")
	}

	value := (math.Pi*vacuumPermittivity*epsInsulator*lenCoil)*
		(nbLayer-1)*(diamOutMandrel+nbLayer*diamWire+(nbLayer-1)*kaptonThick)/denom +
		capaTuning + capaTriwire
	return nodeout.Scalar(value, "Capacitance", "F"), nil
}
