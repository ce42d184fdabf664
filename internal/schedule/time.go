package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	timeOfDayPattern  = `([0-9]|0[0-9]|1[0-9]|2[0-3]):([0-5][0-9])`
	timeOfDayRegex    = regexp.MustCompile("^" + timeOfDayPattern + "$")
	nightHoursPattern = regexp.MustCompile("^" + timeOfDayPattern + "-" + timeOfDayPattern + "$")
)

// TimeOfDay is a wall-clock time with minute resolution
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a "HH:MM" (or "H:MM") string
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	match := timeOfDayRegex.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day '%s', expected HH:MM", text)
	}
	return timeOfDayFromMatch(match[1], match[2]), nil
}

func timeOfDayFromMatch(hour string, minute string) TimeOfDay {
	// the regex guarantees valid numbers
	h, _ := strconv.Atoi(hour)
	m, _ := strconv.Atoi(minute)
	return TimeOfDay{Hour: h, Minute: m}
}

// On returns the point in time of this time of day on the date of the given time,
// in its location, with seconds and sub-seconds zeroed
func (t TimeOfDay) On(date time.Time) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, t.Hour, t.Minute, 0, 0, date.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// NightHours is the time range during which the night profile is active.
// End may be before Start, in which case the range wraps past midnight.
type NightHours struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseNightHours parses a "HH:MM-HH:MM" string
func ParseNightHours(text string) (NightHours, error) {
	match := nightHoursPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return NightHours{}, fmt.Errorf("invalid night hours '%s', expected HH:MM-HH:MM", text)
	}
	return NightHours{
		Start: timeOfDayFromMatch(match[1], match[2]),
		End:   timeOfDayFromMatch(match[3], match[4]),
	}, nil
}

// WrapsMidnight returns true if the night range spans past midnight
func (n NightHours) WrapsMidnight() bool {
	return n.End.Hour*60+n.End.Minute <= n.Start.Hour*60+n.Start.Minute
}

func (n NightHours) String() string {
	return n.Start.String() + "-" + n.End.String()
}

func (n NightHours) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *NightHours) UnmarshalText(text []byte) error {
	parsed, err := ParseNightHours(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
