package control_loop

import (
	"github.com/markusressel/fanctrl/internal/curves"
	"github.com/markusressel/fanctrl/internal/ui"
)

// TurnOnTemperature finds the temperature at which the given profile turns the fan
// (back) on, when starting at the given temperature and moving upwards.
// Returns false if there is no such temperature.
func TurnOnTemperature(profile curves.Curve, temperature float64) (float64, bool) {
	sorted := profile.Sorted()
	for i, p := range sorted {
		if temperature <= p.X && p.Y > 0 {
			if i == 0 {
				ui.Debug("Hysteresis: first breakpoint at %.1f°C is already on, no turn-on temperature", p.X)
				return 0, false
			}
			return sorted[i-1].X, true
		}
	}
	ui.Debug("Hysteresis: profile has no breakpoint above %.1f°C that turns the fan on", temperature)
	return 0, false
}

// ShouldTreatZeroAsOff decides whether a target intensity of 0 should actually stop the fan.
//
// After being turned on, the fan is only allowed to stop again once the temperature
// has dropped at least hysteresis degrees below the temperature at which
// the profile turns it on.
func ShouldTreatZeroAsOff(
	profile curves.Curve,
	dutyCycle float64,
	target float64,
	temperature float64,
	hysteresis float64,
) bool {
	if target != 0 || dutyCycle <= 0 {
		return true
	}

	turnOnTemperature, ok := TurnOnTemperature(profile, temperature)
	if !ok {
		return true
	}

	return temperature+hysteresis <= turnOnTemperature
}
