package curves

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestInterpolate_Linear(t *testing.T) {
	// GIVEN
	curve := NewCurve([2]float64{0, 0}, [2]float64{100, 100})

	// WHEN
	half, err := Interpolate(curve, 50)
	assert.NoError(t, err)
	quarter, err := Interpolate(curve, 25)
	assert.NoError(t, err)

	// THEN
	assert.Equal(t, 50.0, half)
	assert.Equal(t, 25.0, quarter)
}

func TestInterpolate_DuplicateInputs(t *testing.T) {
	// GIVEN
	curve := NewCurve([2]float64{50, 10}, [2]float64{50, 30})

	// WHEN
	result, err := Interpolate(curve, 50)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 20.0, result)
}

func TestInterpolate_DuplicateInputsInsideRange(t *testing.T) {
	// GIVEN
	curve := NewCurve([2]float64{0, 0}, [2]float64{50, 10}, [2]float64{50, 30}, [2]float64{100, 100})

	// WHEN
	result, err := Interpolate(curve, 50)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 20.0, result)
}

func TestInterpolate_BelowRange(t *testing.T) {
	// GIVEN
	curve := NewCurve([2]float64{40, 5}, [2]float64{60, 80})

	for _, input := range []float64{40, 39.99, 0, -273} {
		// WHEN
		result, err := Interpolate(curve, input)

		// THEN
		assert.NoError(t, err)
		assert.Equal(t, 5.0, result, "input %f", input)
	}
}

func TestInterpolate_AboveRange(t *testing.T) {
	// GIVEN
	curve := NewCurve([2]float64{40, 5}, [2]float64{60, 80})

	for _, input := range []float64{60, 60.01, 1000} {
		// WHEN
		result, err := Interpolate(curve, input)

		// THEN
		assert.NoError(t, err)
		assert.Equal(t, 80.0, result, "input %f", input)
	}
}

func TestInterpolate_Unsorted(t *testing.T) {
	// GIVEN
	curve := NewCurve([2]float64{100, 1}, [2]float64{0, .096}, [2]float64{50, .15})

	// WHEN
	result, err := Interpolate(curve, 75)

	// THEN
	assert.NoError(t, err)
	assert.InDelta(t, 0.575, result, 1e-9)
	// the input is not modified
	assert.Equal(t, 100.0, curve[0].X)
}

func TestInterpolate_SinglePoint(t *testing.T) {
	// GIVEN
	curve := NewCurve([2]float64{0, 100})

	for _, input := range []float64{-10, 0, 42} {
		// WHEN
		result, err := Interpolate(curve, input)

		// THEN
		assert.NoError(t, err)
		assert.Equal(t, 100.0, result)
	}
}

func TestInterpolate_Empty(t *testing.T) {
	// GIVEN
	curve := Curve{}

	// WHEN
	_, err := Interpolate(curve, 50)

	// THEN
	assert.ErrorIs(t, err, ErrInvalidBreakpointTable)
}

func TestMustInterpolate_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustInterpolate(nil, 1)
	})
}

func TestSorted_IsStable(t *testing.T) {
	// GIVEN
	curve := NewCurve([2]float64{50, 30}, [2]float64{10, 0}, [2]float64{50, 10})

	// WHEN
	result := curve.Sorted()

	// THEN
	assert.Equal(t, Curve{{10, 0}, {50, 30}, {50, 10}}, result)
}
