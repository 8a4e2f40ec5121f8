package tabulation

import (
	"fmt"
	"sort"
)

type sample2D struct {
	y, v float64
}

// Tabulated2D is a ragged two-dimensional table: an ordered sequence of
// outer x positions, each owning its own ordered sequence of (y, value)
// samples. The inner sequences need not cover the same y range. It is built
// append-only via AppendXPos and AppendSamplePoint; input must already be
// ordered, the table never sorts.
type Tabulated2D struct {
	xPos    []float64
	samples [][]sample2D
}

// NewTabulated2D returns an empty table.
func NewTabulated2D() *Tabulated2D {
	return &Tabulated2D{}
}

// AppendXPos appends a new outer sample position and returns its index. The
// positions must be supplied in strictly increasing order.
func (t *Tabulated2D) AppendXPos(x float64) int {
	if n := len(t.xPos); n > 0 && x <= t.xPos[n-1] {
		panic(fmt.Sprintf("tabulation: outer positions must be strictly increasing: got %g after %g",
			x, t.xPos[n-1]))
	}
	t.xPos = append(t.xPos, x)
	t.samples = append(t.samples, nil)
	return len(t.xPos) - 1
}

// AppendSamplePoint appends a (y, value) sample to the column at outer index
// i. The y positions of a column must be supplied in strictly increasing
// order.
func (t *Tabulated2D) AppendSamplePoint(i int, y, v float64) {
	col := t.samples[i]
	if n := len(col); n > 0 && y <= col[n-1].y {
		panic(fmt.Sprintf("tabulation: column %d: inner positions must be strictly increasing: got %g after %g",
			i, y, col[n-1].y))
	}
	t.samples[i] = append(col, sample2D{y: y, v: v})
}

// NumX returns the number of outer sample positions.
func (t *Tabulated2D) NumX() int { return len(t.xPos) }

// NumY returns the number of samples in the column at outer index i.
func (t *Tabulated2D) NumY(i int) int { return len(t.samples[i]) }

// XAt returns the outer position of column i.
func (t *Tabulated2D) XAt(i int) float64 { return t.xPos[i] }

// YAt returns the inner position of sample j in column i.
func (t *Tabulated2D) YAt(i, j int) float64 { return t.samples[i][j].y }

// ValueAt returns the value of sample j in column i.
func (t *Tabulated2D) ValueAt(i, j int) float64 { return t.samples[i][j].v }

// XMin returns the smallest outer position.
func (t *Tabulated2D) XMin() float64 { return t.xPos[0] }

// XMax returns the largest outer position.
func (t *Tabulated2D) XMax() float64 { return t.xPos[len(t.xPos)-1] }

// Eval returns the interpolated value at (x, y). The value is interpolated
// along y inside each of the two columns bracketing x, then linearly between
// the two column values along x. Outside the tabulated domain the edge
// segments are extended linearly when extrapolate is true; when it is false
// an out-of-domain query is a caller error and causes a panic.
func (t *Tabulated2D) Eval(x, y float64, extrapolate bool) float64 {
	if len(t.xPos) == 0 {
		panic("tabulation: evaluation of an empty 2-D table")
	}
	if len(t.xPos) == 1 {
		return t.evalColumn(0, y, extrapolate)
	}
	i := t.outerSegmentIndex(x, extrapolate)
	// an exact column hit skips the x blend so stored samples are
	// reproduced without interpolation roundoff
	if x == t.xPos[i] {
		return t.evalColumn(i, y, extrapolate)
	}
	if x == t.xPos[i+1] {
		return t.evalColumn(i+1, y, extrapolate)
	}
	x0, x1 := t.xPos[i], t.xPos[i+1]
	alpha := (x - x0) / (x1 - x0)
	v0 := t.evalColumn(i, y, extrapolate)
	v1 := t.evalColumn(i+1, y, extrapolate)
	return v0 + alpha*(v1-v0)
}

func (t *Tabulated2D) outerSegmentIndex(x float64, extrapolate bool) int {
	n := len(t.xPos)
	if x < t.xPos[0] {
		if !extrapolate {
			panic(fmt.Sprintf("tabulation: x=%g below tabulated range [%g, %g]", x, t.xPos[0], t.xPos[n-1]))
		}
		return 0
	}
	if x > t.xPos[n-1] {
		if !extrapolate {
			panic(fmt.Sprintf("tabulation: x=%g above tabulated range [%g, %g]", x, t.xPos[0], t.xPos[n-1]))
		}
		return n - 2
	}
	k := sort.Search(n, func(j int) bool { return t.xPos[j] >= x })
	if k > 0 {
		k--
	}
	if k > n-2 {
		k = n - 2
	}
	return k
}

// evalColumn interpolates along the inner axis of one column. A column
// holding a single sample has no slope information and evaluates to that
// sample's value for every y.
func (t *Tabulated2D) evalColumn(i int, y float64, extrapolate bool) float64 {
	col := t.samples[i]
	if len(col) == 0 {
		panic(fmt.Sprintf("tabulation: column %d holds no samples", i))
	}
	if len(col) == 1 {
		return col[0].v
	}
	n := len(col)
	var k int
	switch {
	case y < col[0].y:
		if !extrapolate {
			panic(fmt.Sprintf("tabulation: column %d: y=%g below tabulated range [%g, %g]",
				i, y, col[0].y, col[n-1].y))
		}
		k = 0
	case y > col[n-1].y:
		if !extrapolate {
			panic(fmt.Sprintf("tabulation: column %d: y=%g above tabulated range [%g, %g]",
				i, y, col[0].y, col[n-1].y))
		}
		k = n - 2
	default:
		k = sort.Search(n, func(j int) bool { return col[j].y >= y })
		if k > 0 {
			k--
		}
		if k > n-2 {
			k = n - 2
		}
	}
	if y == col[k].y {
		return col[k].v
	}
	if y == col[k+1].y {
		return col[k+1].v
	}
	y0, y1 := col[k].y, col[k+1].y
	beta := (y - y0) / (y1 - y0)
	return col[k].v + beta*(col[k+1].v-col[k].v)
}
