package testingutils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeSensor_RepeatsLastValue(t *testing.T) {
	// GIVEN
	sensor := NewFakeSensor(40, 50)

	// WHEN
	first, _ := sensor.GetValue()
	second, _ := sensor.GetValue()
	third, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []float64{40, 50, 50}, []float64{first, second, third})
}

func TestFakeFan_Error(t *testing.T) {
	// GIVEN
	fan := NewFakeFan()
	fan.Err = errors.New("broken")

	// WHEN
	err := fan.SetDutyCycle(25000, 0.5)

	// THEN
	assert.Error(t, err)
	assert.Empty(t, fan.Writes)
}

func TestFakeClock_Sleep(t *testing.T) {
	// GIVEN
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)
	ctx, cancel := context.WithCancel(context.Background())
	clock.OnSleep = func(now time.Time) {
		if now.Sub(start) >= 2*time.Second {
			cancel()
		}
	}

	// WHEN
	err1 := clock.Sleep(ctx, time.Second)
	err2 := clock.Sleep(ctx, time.Second)
	err3 := clock.Sleep(ctx, time.Second)

	// THEN
	assert.NoError(t, err1)
	assert.ErrorIs(t, err2, context.Canceled)
	assert.ErrorIs(t, err3, context.Canceled)
	assert.Equal(t, start.Add(2*time.Second), clock.Now())
}
