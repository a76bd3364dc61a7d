package strategies

import (
	"math"

	"github.com/lpp-lab/coilcalc/nodeout"
	"github.com/lpp-lab/coilcalc/params"
	"github.com/lpp-lab/coilcalc/strategy"
)

// LambdaLukoschus computes the coefficient factor per Lukoschus's fit.
type LambdaLukoschus struct{}

func (LambdaLukoschus) Dependencies() []string {
	return []string{"len_coil", "len_core"}
}

func (LambdaLukoschus) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	ratio := deps["len_coil"].Scalar / deps["len_core"].Scalar
	value := math.Pow(ratio, -2.0/5.0)
	return nodeout.Scalar(value, "Lambda", ""), nil
}

// LambdaClerc computes the coefficient factor per Clerc's fit.
type LambdaClerc struct{}

func (LambdaClerc) Dependencies() []string {
	return []string{"len_coil", "len_core"}
}

func (LambdaClerc) Calculate(deps map[string]strategy.DepValue, _ *params.Bundle) (nodeout.Output, error) {
	ratio := deps["len_coil"].Scalar / deps["len_core"].Scalar
	value := 1.85 - 1.1*ratio
	return nodeout.Scalar(value, "Lambda", ""), nil
}
