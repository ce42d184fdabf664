package curves

import (
	"cmp"
	"errors"
	"fmt"
	"github.com/markusressel/fanctrl/internal/util"
	"golang.org/x/exp/slices"
)

var (
	ErrInvalidBreakpointTable = errors.New("invalid breakpoint table")
)

// Point is a single breakpoint of a Curve, mapping input X to output Y
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is a breakpoint table. Points are not required to be sorted,
// they are sorted ascending by X (keeping the order of equal X values) before use.
type Curve []Point

// NewCurve creates a curve from (x, y) pairs
func NewCurve(pairs ...[2]float64) Curve {
	curve := make(Curve, 0, len(pairs))
	for _, p := range pairs {
		curve = append(curve, Point{X: p[0], Y: p[1]})
	}
	return curve
}

// Sorted returns a copy of the curve, sorted ascending by X
func (c Curve) Sorted() Curve {
	sorted := slices.Clone(c)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
	return sorted
}

// Validate returns an error if the curve cannot be used for interpolation
func (c Curve) Validate() error {
	if len(c) <= 0 {
		return fmt.Errorf("%w: no breakpoints", ErrInvalidBreakpointTable)
	}
	return nil
}

// Interpolate returns the y-value for the given input, linearly interpolating
// between the two breakpoints surrounding it.
//
// Below the first breakpoint the first output is returned, at or above the last
// breakpoint the last output is returned. If multiple breakpoints share the input
// exactly, the average of their outputs is returned.
func Interpolate(curve Curve, input float64) (float64, error) {
	if err := curve.Validate(); err != nil {
		return 0, err
	}

	sorted := curve.Sorted()

	var matching []float64
	for _, p := range sorted {
		if p.X == input {
			matching = append(matching, p.Y)
		}
	}
	if len(matching) > 0 {
		return util.Avg(matching), nil
	}

	first := sorted[0]
	last := sorted[len(sorted)-1]
	if input < first.X {
		return first.Y, nil
	}
	if input >= last.X {
		return last.Y, nil
	}

	for i := 0; i < len(sorted)-1; i++ {
		prev := sorted[i]
		next := sorted[i+1]
		if prev.X <= input && input < next.X {
			ratio := util.Ratio(input, prev.X, next.X)
			return prev.Y + ratio*(next.Y-prev.Y), nil
		}
	}

	// unreachable for a sorted, non-empty curve
	return last.Y, nil
}

// MustInterpolate is like Interpolate but panics on an invalid curve.
// Only use it with curves that have been validated before.
func MustInterpolate(curve Curve, input float64) float64 {
	value, err := Interpolate(curve, input)
	if err != nil {
		panic(err)
	}
	return value
}
