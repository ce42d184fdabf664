package fans

import (
	"errors"
	"fmt"
	"github.com/markusressel/fanctrl/internal/configuration"
)

const (
	MinDutyCycle = 0.0
	MaxDutyCycle = 1.0
)

var (
	ErrHardwareWrite = errors.New("unable to set fan duty cycle")
)

type Fan interface {
	GetId() string

	GetConfig() configuration.FanConfig

	// SetDutyCycle applies the given duty cycle (0..1) at the given PWM frequency in Hz
	SetDutyCycle(frequency int, dutyCycle float64) error
	// GetDutyCycle returns the last duty cycle applied to this fan
	GetDutyCycle() float64

	// Close releases the hardware, leaving the fan in its current state where possible
	Close() error
}

func NewFan(config configuration.FanConfig) (Fan, error) {
	if config.Sysfs != nil {
		return &SysfsFan{
			Config: config,
		}, nil
	}

	if config.Gpio != nil {
		return &GpioFan{
			Config: config,
		}, nil
	}

	if config.File != nil {
		return &FileFan{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching fan type for fan: %s", config.ID)
}

func validateDutyCycle(fan Fan, dutyCycle float64) error {
	if dutyCycle < MinDutyCycle || dutyCycle > MaxDutyCycle {
		return fmt.Errorf("%w: fan %s: duty cycle %f out of range [%.0f..%.0f]", ErrHardwareWrite, fan.GetId(), dutyCycle, MinDutyCycle, MaxDutyCycle)
	}
	return nil
}
