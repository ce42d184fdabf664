package util

import (
	"golang.org/x/exp/constraints"
	"math"
)

// Avg calculates the average of all values in the given array
func Avg(values []float64) float64 {
	sum := 0.0
	for i := 0; i < len(values); i++ {
		sum += values[i]
	}
	return sum / (float64(len(values)))
}

// Ratio calculates the ration that target has in comparison to rangeMin and rangeMax
// Make sure that:
// rangeMin <= target <= rangeMax
// rangeMax - rangeMin != 0
func Ratio(target float64, rangeMin float64, rangeMax float64) float64 {
	return (target - rangeMin) / (rangeMax - rangeMin)
}

// Coerce returns a value that is at least min and at most max
func Coerce[T constraints.Integer | constraints.Float](value T, min T, max T) T {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

// GCD calculates the greatest common divisor of all given values.
// Returns 0 if no values are given.
func GCD[T constraints.Integer](values ...T) T {
	var result T
	for _, v := range values {
		a, b := result, v
		if b < 0 {
			b = -b
		}
		for b != 0 {
			a, b = b, a%b
		}
		result = a
	}
	return result
}

// ExponentialDecayFactor returns the factor by which a difference shrinks
// within the given elapsed time, when it halves every halfLife.
func ExponentialDecayFactor(elapsed float64, halfLife float64) float64 {
	return math.Pow(2, -elapsed/halfLife)
}
