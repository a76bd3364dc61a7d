package nodeout

// Output is a value + labels + units produced by a single strategy
// evaluation. Data holds a scalar, a 1-D vector, or a 2-D matrix (rows are
// samples, columns align with Labels/Units); Units has the same length as
// Labels whenever Data is 2-D.
type Output struct {
	Data   interface{}
	Labels []string
	Units  []string
}

// Scalar builds a scalar Output with a single label/unit pair.
func Scalar(value float64, label, unit string) Output {
	return Output{Data: value, Labels: []string{label}, Units: []string{unit}}
}

// Vector builds a 1-D Output.
func Vector(values []float64, label, unit string) Output {
	cp := append([]float64(nil), values...)
	return Output{Data: cp, Labels: []string{label}, Units: []string{unit}}
}

// Matrix builds a 2-D Output with one label/unit per column.
func Matrix(rows [][]float64, labels, units []string) Output {
	cp := make([][]float64, len(rows))
	for i, row := range rows {
		cp[i] = append([]float64(nil), row...)
	}
	return Output{
		Data:   cp,
		Labels: append([]string(nil), labels...),
		Units:  append([]string(nil), units...),
	}
}

// AsScalar reports the Data as a float64, if that is its underlying shape.
func (o Output) AsScalar() (float64, bool) {
	v, ok := o.Data.(float64)
	return v, ok
}

// AsVector reports the Data as a []float64, if that is its underlying shape.
func (o Output) AsVector() ([]float64, bool) {
	v, ok := o.Data.([]float64)
	return v, ok
}

// AsMatrix reports the Data as a [][]float64, if that is its underlying shape.
func (o Output) AsMatrix() ([][]float64, bool) {
	v, ok := o.Data.([][]float64)
	return v, ok
}

// Equal performs a structural comparison. It exists for test fixtures only;
// production code never compares two Outputs — it reads Data through
// AsScalar/AsVector/AsMatrix instead.
func Equal(a, b Output) bool {
	if !equalStrings(a.Labels, b.Labels) || !equalStrings(a.Units, b.Units) {
		return false
	}
	switch av := a.Data.(type) {
	case float64:
		bv, ok := b.Data.(float64)
		return ok && av == bv
	case []float64:
		bv, ok := b.Data.([]float64)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case [][]float64:
		bv, ok := b.Data.([][]float64)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if len(av[i]) != len(bv[i]) {
				return false
			}
			for j := range av[i] {
				if av[i][j] != bv[i][j] {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
