package control_loop

import (
	"github.com/markusressel/fanctrl/internal/util"
	"time"
)

const (
	// SnapFactor makes a single cycle go (almost) all the way to the target
	SnapFactor = 1e-6
)

// ExponentialControlLoop approaches the target exponentially: with every cycle
// the difference between the current intensity and the target is multiplied
// by a constant factor.
type ExponentialControlLoop struct {
	factor float64
}

// NewExponentialControlLoop creates a loop that halves the difference to the target
// every characteristicTime, when cycled once every tickInterval.
func NewExponentialControlLoop(tickInterval time.Duration, characteristicTime time.Duration) *ExponentialControlLoop {
	return NewExponentialControlLoopWithFactor(ChangeRateFactor(tickInterval, characteristicTime))
}

// NewExponentialControlLoopWithFactor creates a loop with a fixed change rate factor in [0..1].
// 0 jumps to the target immediately, 1 never moves.
func NewExponentialControlLoopWithFactor(factor float64) *ExponentialControlLoop {
	return &ExponentialControlLoop{
		factor: util.Coerce(factor, 0, 1),
	}
}

// ChangeRateFactor calculates the factor by which the difference between current and target
// is multiplied with each tick, so that it halves every characteristicTime.
func ChangeRateFactor(tickInterval time.Duration, characteristicTime time.Duration) float64 {
	if characteristicTime <= 0 {
		return 0
	}
	return util.ExponentialDecayFactor(tickInterval.Seconds(), characteristicTime.Seconds())
}

func (l *ExponentialControlLoop) Factor() float64 {
	return l.factor
}

func (l *ExponentialControlLoop) Cycle(current Intensity, target float64) float64 {
	result := current.Value()*l.factor + target*(1-l.factor)

	// when the fan should be off, don't wait for the exponential decay to reach exactly 0
	if target == 0 && result < 1 {
		result = 0
	}

	return result
}
