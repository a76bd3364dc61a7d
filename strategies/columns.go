package strategies

import "github.com/lpp-lab/coilcalc/strategy"

// matrixColumn extracts column col from a node-kind dependency's matrix
// output. It panics (recovered by the engine as a strategy failure) if the
// dependency is not a matrix or the column index is out of range, since
// that indicates a strategy wiring bug rather than a runtime data error.
func matrixColumn(v strategy.DepValue, col int) []float64 {
	rows, ok := v.Node.AsMatrix()
	if !ok {
		panic("matrixColumn: dependency is not a matrix output")
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = row[col]
	}
	return out
}

// vectorOf extracts a []float64 from a node-kind dependency's vector output.
func vectorOf(v strategy.DepValue) []float64 {
	vec, ok := v.Node.AsVector()
	if !ok {
		panic("vectorOf: dependency is not a vector output")
	}
	return vec
}
