package ticker

import (
	"fmt"
	"github.com/markusressel/fanctrl/internal/util"
	"time"
)

const resolution = time.Millisecond

// Timing keeps the loop aligned to wall-clock boundaries.
//
// All periodic actions are expressed as multiples of a single tick Period, and ticks are
// counted from a fixed Reference (the start of the current UTC day), so that an action
// with an hourly interval always happens on the dot of xx:00:00, regardless of how long
// individual ticks take.
type Timing struct {
	Period time.Duration `json:"period"`

	// intervals in ticks
	FanUpdateInterval    int64 `json:"fanUpdateInterval"`
	LogInterval          int64 `json:"logInterval"`
	ConfigUpdateInterval int64 `json:"configUpdateInterval"`

	Reference time.Time `json:"reference"`
	Counter   int64     `json:"counter"`
}

// NewTiming computes the tick period as the greatest common divisor of the given
// intervals (at millisecond resolution) and aligns the counter to the given time.
func NewTiming(fanUpdate, log, configUpdate time.Duration, now time.Time) (*Timing, error) {
	intervals := map[string]time.Duration{
		"fan update":    fanUpdate,
		"log":           log,
		"config update": configUpdate,
	}
	for name, interval := range intervals {
		if interval < resolution {
			return nil, fmt.Errorf("%s interval must be at least %v, was %v", name, resolution, interval)
		}
		if interval%resolution != 0 {
			return nil, fmt.Errorf("%s interval must be a multiple of %v, was %v", name, resolution, interval)
		}
	}

	fanUpdateMs := fanUpdate.Milliseconds()
	logMs := log.Milliseconds()
	configUpdateMs := configUpdate.Milliseconds()

	periodMs := util.GCD(fanUpdateMs, logMs, configUpdateMs)
	period := time.Duration(periodMs) * resolution

	timing := &Timing{
		Period:               period,
		FanUpdateInterval:    fanUpdateMs / periodMs,
		LogInterval:          logMs / periodMs,
		ConfigUpdateInterval: configUpdateMs / periodMs,
	}
	timing.Align(now)
	return timing, nil
}

// Align resets the reference to the start of the UTC day of now
// and sets the counter to the tick that is currently in progress
func (t *Timing) Align(now time.Time) {
	utc := now.UTC()
	t.Reference = time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	t.Counter = int64(now.Sub(t.Reference) / t.Period)
}

func (t *Timing) IsFanUpdateTick() bool {
	return t.Counter%t.FanUpdateInterval == 0
}

func (t *Timing) IsLogTick() bool {
	return t.Counter%t.LogInterval == 0
}

func (t *Timing) IsConfigUpdateTick() bool {
	return t.Counter%t.ConfigUpdateInterval == 0
}

// FanUpdatePeriod is the real time between two fan updates
func (t *Timing) FanUpdatePeriod() time.Duration {
	return time.Duration(t.FanUpdateInterval) * t.Period
}

// Advance moves on to the next tick
func (t *Timing) Advance() {
	t.Counter++
}

// Deadline returns the wall-clock time at which the current tick is due
func (t *Timing) Deadline() time.Time {
	return t.Reference.Add(time.Duration(t.Counter) * t.Period)
}

// SleepDuration returns how long to wait until the current tick is due.
// A tick that is already overdue is not skipped, it is due immediately.
func (t *Timing) SleepDuration(now time.Time) time.Duration {
	d := t.Deadline().Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
