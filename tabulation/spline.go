package tabulation

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// MonotoneSpline is a smooth, monotonicity-preserving curve fitted once
// through a set of (x, y) samples. It is continuous in the first derivative
// and is used to generate fast initial guesses for the saturation-pressure
// inversion; it is never the definitive property source.
type MonotoneSpline struct {
	xs, ys []float64
	fb     interp.FritschButland
}

// NewMonotoneSpline fits a Fritsch-Butland piecewise cubic through the given
// samples. The x values must be strictly increasing, with at least two
// samples.
func NewMonotoneSpline(xs, ys []float64) *MonotoneSpline {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("tabulation: sample columns differ in length: %d vs %d", len(xs), len(ys)))
	}
	if len(xs) < 2 {
		panic(fmt.Sprintf("tabulation: at least two samples required, got %d", len(xs)))
	}
	s := &MonotoneSpline{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	copy(s.xs, xs)
	copy(s.ys, ys)
	if err := s.fb.Fit(s.xs, s.ys); err != nil {
		panic(fmt.Sprintf("tabulation: spline fit failed: %v", err))
	}
	return s
}

// NumSamples returns the number of fitted samples.
func (s *MonotoneSpline) NumSamples() int { return len(s.xs) }

// XMin returns the smallest fitted x position.
func (s *MonotoneSpline) XMin() float64 { return s.xs[0] }

// XMax returns the largest fitted x position.
func (s *MonotoneSpline) XMax() float64 { return s.xs[len(s.xs)-1] }

// Eval returns the spline value at x. Beyond the fitted range the curve is
// continued linearly with the end-point derivative if extrapolate is true;
// otherwise an out-of-range x is a caller error and causes a panic.
func (s *MonotoneSpline) Eval(x float64, extrapolate bool) float64 {
	n := len(s.xs)
	switch {
	case x < s.xs[0]:
		if !extrapolate {
			panic(fmt.Sprintf("tabulation: x=%g below fitted range [%g, %g]", x, s.xs[0], s.xs[n-1]))
		}
		return s.ys[0] + s.fb.PredictDerivative(s.xs[0])*(x-s.xs[0])
	case x > s.xs[n-1]:
		if !extrapolate {
			panic(fmt.Sprintf("tabulation: x=%g above fitted range [%g, %g]", x, s.xs[0], s.xs[n-1]))
		}
		return s.ys[n-1] + s.fb.PredictDerivative(s.xs[n-1])*(x-s.xs[n-1])
	}
	return s.fb.Predict(x)
}
