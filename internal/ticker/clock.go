package ticker

import (
	"context"
	"time"
)

// Clock provides the current time and a way to wait for a deadline
type Clock interface {
	Now() time.Time
	// Sleep blocks for the given duration, returning early with the context error
	// if the context is cancelled
	Sleep(ctx context.Context, d time.Duration) error
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
