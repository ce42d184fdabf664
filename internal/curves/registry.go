package curves

import (
	"fmt"
	"golang.org/x/exp/slices"
)

const (
	ProfileSilent                         = "Silent"
	ProfileVeryQuiet                      = "VeryQuiet"
	ProfileQuiet                          = "Quiet"
	ProfileBalanced                       = "Balanced"
	ProfileAggressiveThrottlingPrevention = "AggressiveThrottlingPrevention"
	ProfileMax                            = "Max"
	ProfileAlwaysFull                     = "AlwaysFull"
)

// Profile is a named cooling curve, mapping a temperature (°C) to a fan intensity in percent (0..100)
type Profile struct {
	Name  string `json:"name"`
	Curve Curve  `json:"curve"`
}

var (
	// CoolingProfiles contains all built-in cooling profiles.
	// The entry with the lowest temperature also specifies the intensity for all temperatures
	// below it, likewise for the highest one.
	CoolingProfiles = map[string]Profile{
		// fan always off
		ProfileSilent: {
			Name:  ProfileSilent,
			Curve: NewCurve([2]float64{0, 0}),
		},
		// off below 55, lowest speed above
		ProfileVeryQuiet: {
			Name:  ProfileVeryQuiet,
			Curve: NewCurve([2]float64{55, 0}, [2]float64{56, .1}),
		},
		// off below 45, minimum up to 55, then gradually up to 50% at 65
		ProfileQuiet: {
			Name:  ProfileQuiet,
			Curve: NewCurve([2]float64{45, 0}, [2]float64{46, .1}, [2]float64{55, .1}, [2]float64{65, 50}),
		},
		// minimum for 40-50, then up to 100% at 70
		ProfileBalanced: {
			Name:  ProfileBalanced,
			Curve: NewCurve([2]float64{40, 0}, [2]float64{41, .1}, [2]float64{50, .1}, [2]float64{70, 100}),
		},
		// on at 55, ramps up steeply above 75 to prevent any throttling
		ProfileAggressiveThrottlingPrevention: {
			Name:  ProfileAggressiveThrottlingPrevention,
			Curve: NewCurve([2]float64{55, 0}, [2]float64{56, .1}, [2]float64{75, .1}, [2]float64{80, 1}),
		},
		// tries to keep the temperature below 60
		ProfileMax: {
			Name:  ProfileMax,
			Curve: NewCurve([2]float64{35, 0}, [2]float64{36, .1}, [2]float64{40, 50}, [2]float64{50, 70}, [2]float64{60, 100}),
		},
		// fan at 100% at all times
		ProfileAlwaysFull: {
			Name:  ProfileAlwaysFull,
			Curve: NewCurve([2]float64{0, 100}),
		},
	}

	// FanScaling translates a fan intensity in percent (0..100) into a PWM duty cycle (0..1).
	// Tuned for the Pi Fan with a 100uF capacitor at 25kHz PWM.
	FanScaling = NewCurve(
		[2]float64{0, .096},
		[2]float64{25, .12},
		[2]float64{50, .15},
		[2]float64{62.5, .19},
		[2]float64{75, .26},
		[2]float64{87.5, .45},
		[2]float64{100, 1},
	)
)

// GetProfile returns the built-in profile with the given name
func GetProfile(name string) (Profile, bool) {
	profile, ok := CoolingProfiles[name]
	return profile, ok
}

// ProfileExists checks whether a built-in profile with the given name exists
func ProfileExists(name string) bool {
	_, ok := CoolingProfiles[name]
	return ok
}

// ProfileNames returns the names of all built-in profiles, sorted alphabetically
func ProfileNames() []string {
	names := make([]string, 0, len(CoolingProfiles))
	for name := range CoolingProfiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ValidateRegistry checks all built-in curves, which is expected to happen once at startup
func ValidateRegistry() error {
	for _, name := range ProfileNames() {
		if err := CoolingProfiles[name].Curve.Validate(); err != nil {
			return fmt.Errorf("cooling profile %s: %w", name, err)
		}
	}
	if err := FanScaling.Validate(); err != nil {
		return fmt.Errorf("fan scaling profile: %w", err)
	}
	return nil
}
