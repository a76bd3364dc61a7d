package strategies

import (
	"github.com/lpp-lab/coilcalc/nodeout"
	"github.com/lpp-lab/coilcalc/params"
	"github.com/lpp-lab/coilcalc/strategy"
)

// DemagnetizingFactor computes Nz, the shape-dependent demagnetizing
// factor of a cylindrical core.
type DemagnetizingFactor struct{}

func (DemagnetizingFactor) Dependencies() []string {
	return []string{"diam_core", "len_core"}
}

func (DemagnetizingFactor) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	diamCore := deps["diam_core"].Scalar
	lenCore := deps["len_core"].Scalar
	value := diamCore / (2*lenCore + diamCore)
	return nodeout.Scalar(value, "Nz", ""), nil
}

// ApparentPermeability computes mu_app for a cylindrical core.
type ApparentPermeability struct{}

func (ApparentPermeability) Dependencies() []string {
	return []string{"mu_r", "Nz"}
}

func (ApparentPermeability) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	muR := deps["mu_r"].Scalar
	nz, _ := deps["Nz"].Node.AsScalar()
	value := muR / (1 + nz*(muR-1))
	return nodeout.Scalar(value, "Mu_app", ""), nil
}

// ApparentPermeabilityDiabolo computes mu_app for a diabolo-shaped core,
// where the demagnetizing factor is scaled by the squared ratio of the
// core's center diameter to the diabolo's end-surface diameter.
type ApparentPermeabilityDiabolo struct{}

func (ApparentPermeabilityDiabolo) Dependencies() []string {
	return []string{"mu_r", "Nz", "diam_core", "diabolo_diam_core"}
}

func (ApparentPermeabilityDiabolo) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	muR := deps["mu_r"].Scalar
	nz, _ := deps["Nz"].Node.AsScalar()
	diamCore := deps["diam_core"].Scalar
	diaboloDiamCore := deps["diabolo_diam_core"].Scalar

	value := muR / (1 + nz*(diamCore*diamCore)*(muR-1)/(diaboloDiamCore*diaboloDiamCore))
	return nodeout.Scalar(value, "Mu_app", ""), nil
}
