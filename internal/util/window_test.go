package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestGetWindowMax(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(3)
	window.Append(1)
	window.Append(2)
	window.Append(3)

	// WHEN
	maximum := GetWindowMax(window)

	// THEN
	assert.Equal(t, 3.0, maximum)
}

func TestGetWindowMinAndAvg(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(4)
	window.Append(48.5)
	window.Append(50.0)
	window.Append(51.5)
	window.Append(50.0)

	// WHEN
	minimum := GetWindowMin(window)
	avg := GetWindowAvg(window)

	// THEN
	assert.Equal(t, 48.5, minimum)
	assert.Equal(t, 50.0, avg)
}

func TestWindowOverflow(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(2)
	window.Append(10)
	window.Append(20)

	// WHEN
	window.Append(30)

	// THEN
	assert.Equal(t, 20.0, GetWindowMin(window))
	assert.Equal(t, 30.0, GetWindowMax(window))
}

func TestFillWindow(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(5)

	// WHEN
	FillWindow(window, 5, 42.0)
	window.Append(44.0)

	// THEN
	assert.Equal(t, 42.0, GetWindowMin(window))
	assert.Equal(t, 44.0, GetWindowMax(window))
	assert.InDelta(t, 42.4, GetWindowAvg(window), 1e-9)
}
