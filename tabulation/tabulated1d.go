// Package tabulation provides the sampled-function machinery used by the PVT
// correlations: piecewise-linear 1-D and ragged 2-D tables plus a
// monotonicity-preserving spline for initial guesses.
package tabulation

import (
	"fmt"
	"sort"
)

// Tabulated1D is a piecewise-linear function defined by an ordered set of
// (x, y) samples with strictly increasing x. Once constructed it is
// immutable, so it can be evaluated concurrently without locking.
type Tabulated1D struct {
	xs, ys []float64
}

// NewTabulated1D copies the sample columns into a new table. The x values
// must be strictly increasing and at least two samples are required.
func NewTabulated1D(xs, ys []float64) *Tabulated1D {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("tabulation: sample columns differ in length: %d vs %d", len(xs), len(ys)))
	}
	if len(xs) < 2 {
		panic(fmt.Sprintf("tabulation: at least two samples required, got %d", len(xs)))
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			panic(fmt.Sprintf("tabulation: x positions must be strictly increasing: x[%d]=%g, x[%d]=%g",
				i, xs[i], i+1, xs[i+1]))
		}
	}
	t := &Tabulated1D{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	copy(t.xs, xs)
	copy(t.ys, ys)
	return t
}

// NumSamples returns the number of (x, y) samples.
func (t *Tabulated1D) NumSamples() int { return len(t.xs) }

// XAt returns the x position of sample i.
func (t *Tabulated1D) XAt(i int) float64 { return t.xs[i] }

// YAt returns the y value of sample i.
func (t *Tabulated1D) YAt(i int) float64 { return t.ys[i] }

// XMin returns the smallest tabulated x position.
func (t *Tabulated1D) XMin() float64 { return t.xs[0] }

// XMax returns the largest tabulated x position.
func (t *Tabulated1D) XMax() float64 { return t.xs[len(t.xs)-1] }

// Applies reports whether x lies inside the tabulated range.
func (t *Tabulated1D) Applies(x float64) bool {
	return x >= t.xs[0] && x <= t.xs[len(t.xs)-1]
}

// Eval returns the value of the function at x. Between samples the value is
// interpolated linearly. Outside the tabulated range the edge segment's
// slope is extended linearly if extrapolate is true; if it is false an
// out-of-range x is a caller error and causes a panic.
func (t *Tabulated1D) Eval(x float64, extrapolate bool) float64 {
	i := t.segmentIndex(x, extrapolate)
	// exact node hits return the stored value: the interpolation formula
	// does not round-trip when neighboring samples differ in magnitude
	if x == t.xs[i] {
		return t.ys[i]
	}
	if x == t.xs[i+1] {
		return t.ys[i+1]
	}
	x0, x1 := t.xs[i], t.xs[i+1]
	alpha := (x - x0) / (x1 - x0)
	return t.ys[i] + alpha*(t.ys[i+1]-t.ys[i])
}

// EvalDerivative returns the derivative dy/dx at x, i.e. the slope of the
// segment containing x (or of the nearest edge segment when extrapolating).
func (t *Tabulated1D) EvalDerivative(x float64, extrapolate bool) float64 {
	i := t.segmentIndex(x, extrapolate)
	return (t.ys[i+1] - t.ys[i]) / (t.xs[i+1] - t.xs[i])
}

func (t *Tabulated1D) segmentIndex(x float64, extrapolate bool) int {
	n := len(t.xs)
	if x < t.xs[0] {
		if !extrapolate {
			panic(fmt.Sprintf("tabulation: x=%g below tabulated range [%g, %g]", x, t.xs[0], t.xs[n-1]))
		}
		return 0
	}
	if x > t.xs[n-1] {
		if !extrapolate {
			panic(fmt.Sprintf("tabulation: x=%g above tabulated range [%g, %g]", x, t.xs[0], t.xs[n-1]))
		}
		return n - 2
	}
	// first sample position >= x
	k := sort.SearchFloat64s(t.xs, x)
	if k > 0 {
		k--
	}
	if k > n-2 {
		k = n - 2
	}
	return k
}
