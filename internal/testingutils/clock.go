package testingutils

import (
	"context"
	"time"
)

// FakeClock only advances when something sleeps on it.
//
// OnSleep is called after every completed Sleep with the new time, which allows
// tests to stop a loop (e.g. by cancelling its context) at a certain point in time.
type FakeClock struct {
	Current time.Time
	Sleeps  []time.Duration

	OnSleep func(now time.Time)
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{
		Current: now,
	}
}

func (c *FakeClock) Now() time.Time {
	return c.Current
}

func (c *FakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Sleeps = append(c.Sleeps, d)
	if d > 0 {
		c.Current = c.Current.Add(d)
	}
	if c.OnSleep != nil {
		c.OnSleep(c.Current)
	}
	return ctx.Err()
}

// Advance moves the clock forward without sleeping
func (c *FakeClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}
