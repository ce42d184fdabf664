package schedule

import (
	"github.com/markusressel/fanctrl/internal/curves"
	"time"
)

// Config selects the cooling profile for day and night
type Config struct {
	DayProfile   string     `json:"dayProfile"`
	NightProfile string     `json:"nightProfile"`
	NightHours   NightHours `json:"nightHours"`
}

// DefaultConfig is used for every setting that is not configured
var DefaultConfig = Config{
	DayProfile:   curves.ProfileMax,
	NightProfile: curves.ProfileVeryQuiet,
	NightHours: NightHours{
		Start: TimeOfDay{Hour: 22, Minute: 30},
		End:   TimeOfDay{Hour: 10, Minute: 0},
	},
}

// Resolution describes which profile is active at a given point in time
// and when it will be replaced by the next one.
type Resolution struct {
	Active   string    `json:"active"`
	Next     string    `json:"next"`
	SwitchAt time.Time `json:"switchAt"`
}

// Resolve determines whether it is currently day or night, according to the given
// config, and when that will change next.
func Resolve(now time.Time, config Config) Resolution {
	nightStart := config.NightHours.Start.On(now)
	nightEnd := config.NightHours.End.On(now)

	day := func(switchAt time.Time) Resolution {
		return Resolution{Active: config.DayProfile, Next: config.NightProfile, SwitchAt: switchAt}
	}
	night := func(switchAt time.Time) Resolution {
		return Resolution{Active: config.NightProfile, Next: config.DayProfile, SwitchAt: switchAt}
	}

	switch {
	case isOrdered(nightEnd, now, nightStart) || isOrdered(now, nightStart, nightEnd):
		// daytime, changes at the night start today
		return day(nightStart)
	case isOrdered(nightStart, now, nightEnd) || isOrdered(now, nightEnd, nightStart):
		// nighttime, changes at the night end today
		return night(nightEnd)
	case isOrdered(nightStart, nightEnd, now):
		// daytime, changes at the night start tomorrow
		return day(nightStart.AddDate(0, 0, 1))
	default:
		// nightEnd <= nightStart <= now
		// nighttime, changes at the night end tomorrow
		return night(nightEnd.AddDate(0, 0, 1))
	}
}

// isOrdered returns true if a <= b <= c
func isOrdered(a, b, c time.Time) bool {
	return !b.Before(a) && !c.Before(b)
}
