package control_loop

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestExponential_ReachesExactlyZero(t *testing.T) {
	// GIVEN
	loop := NewExponentialControlLoopWithFactor(0.5)
	current := Percent(40)

	// WHEN
	var values []float64
	for i := 0; i < 10; i++ {
		next := loop.Cycle(current, 0)
		values = append(values, next)
		current = Percent(next)
	}

	// THEN
	assert.Equal(t, []float64{20, 10, 5, 2.5, 1.25, 0, 0, 0, 0, 0}, values)
}

func TestExponential_ApproachesTarget(t *testing.T) {
	// GIVEN
	loop := NewExponentialControlLoopWithFactor(0.5)

	// WHEN
	result := loop.Cycle(Percent(20), 60)

	// THEN
	assert.Equal(t, 40.0, result)
}

func TestExponential_NoSnapForNonZeroTarget(t *testing.T) {
	// GIVEN
	loop := NewExponentialControlLoopWithFactor(0.5)

	// WHEN
	result := loop.Cycle(Percent(0.1), 0.1)

	// THEN
	assert.InDelta(t, 0.1, result, 1e-12)
}

func TestExponential_OffBlendsAsZero(t *testing.T) {
	// GIVEN
	loop := NewExponentialControlLoopWithFactor(0.75)

	// WHEN
	result := loop.Cycle(Off(), 100)

	// THEN
	assert.Equal(t, 25.0, result)
}

func TestExponential_SnapFactor(t *testing.T) {
	// GIVEN
	loop := NewExponentialControlLoopWithFactor(SnapFactor)

	// WHEN
	result := loop.Cycle(Percent(100), 0.1)

	// THEN
	assert.InDelta(t, 0.1, result, 1e-3)
}

func TestChangeRateFactor(t *testing.T) {
	// halves every 4 seconds
	assert.InDelta(t, 0.8408964, ChangeRateFactor(time.Second, 4*time.Second), 1e-6)
	assert.Equal(t, 0.5, ChangeRateFactor(4*time.Second, 4*time.Second))
	assert.Equal(t, 0.0, ChangeRateFactor(time.Second, 0))
}

func TestExponential_HalvesPerCharacteristicTime(t *testing.T) {
	// GIVEN
	loop := NewExponentialControlLoop(time.Second, 4*time.Second)
	current := Percent(0)

	// WHEN
	for i := 0; i < 4; i++ {
		current = Percent(loop.Cycle(current, 100))
	}

	// THEN
	assert.InDelta(t, 50.0, current.Value(), 1e-9)
}

func TestNewExponentialControlLoopWithFactor_Coerced(t *testing.T) {
	assert.Equal(t, 1.0, NewExponentialControlLoopWithFactor(3).Factor())
	assert.Equal(t, 0.0, NewExponentialControlLoopWithFactor(-1).Factor())
}
