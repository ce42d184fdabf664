package control_loop

import (
	"github.com/markusressel/fanctrl/internal/curves"
	"github.com/stretchr/testify/assert"
	"testing"
)

var aggressiveProfile = curves.NewCurve(
	[2]float64{55, 0},
	[2]float64{56, 0.1},
	[2]float64{75, 0.1},
	[2]float64{80, 1},
)

func TestTurnOnTemperature(t *testing.T) {
	// WHEN
	result, ok := TurnOnTemperature(aggressiveProfile, 49)

	// THEN
	assert.True(t, ok)
	assert.Equal(t, 55.0, result)
}

func TestTurnOnTemperature_BetweenOnBreakpoints(t *testing.T) {
	// WHEN
	result, ok := TurnOnTemperature(aggressiveProfile, 70)

	// THEN
	// the next breakpoint which is on is (75, 0.1), preceded by (56, 0.1)
	assert.True(t, ok)
	assert.Equal(t, 56.0, result)
}

func TestTurnOnTemperature_NoneAbove(t *testing.T) {
	// WHEN
	_, ok := TurnOnTemperature(aggressiveProfile, 81)

	// THEN
	assert.False(t, ok)
}

func TestTurnOnTemperature_FirstBreakpointIsOn(t *testing.T) {
	// GIVEN
	profile := curves.NewCurve([2]float64{0, 100})

	// WHEN
	_, ok := TurnOnTemperature(profile, -10)

	// THEN
	assert.False(t, ok)
}

func TestShouldTreatZeroAsOff_KeepsFanOn(t *testing.T) {
	// WHEN
	result := ShouldTreatZeroAsOff(aggressiveProfile, 0.096, 0, 70, 5)

	// THEN
	assert.False(t, result)
}

func TestShouldTreatZeroAsOff_KeepsFanOnWithinHysteresis(t *testing.T) {
	// 52 + 5 > 55
	assert.False(t, ShouldTreatZeroAsOff(aggressiveProfile, 0.096, 0, 52, 5))
	// 50.01 + 5 > 55
	assert.False(t, ShouldTreatZeroAsOff(aggressiveProfile, 0.096, 0, 50.01, 5))
}

func TestShouldTreatZeroAsOff_AllowsOffBelowHysteresis(t *testing.T) {
	// 49 + 5 <= 55
	assert.True(t, ShouldTreatZeroAsOff(aggressiveProfile, 0.096, 0, 49, 5))
	// 50 + 5 <= 55
	assert.True(t, ShouldTreatZeroAsOff(aggressiveProfile, 0.096, 0, 50, 5))
}

func TestShouldTreatZeroAsOff_OnlyForZeroTarget(t *testing.T) {
	assert.True(t, ShouldTreatZeroAsOff(aggressiveProfile, 0.096, 0.1, 70, 5))
}

func TestShouldTreatZeroAsOff_FanNotSpinning(t *testing.T) {
	assert.True(t, ShouldTreatZeroAsOff(aggressiveProfile, 0, 0, 52, 5))
}

func TestShouldTreatZeroAsOff_DegenerateProfile(t *testing.T) {
	// GIVEN
	silent := curves.NewCurve([2]float64{0, 0})

	// THEN
	assert.True(t, ShouldTreatZeroAsOff(silent, 0.5, 0, 52, 5))
}
