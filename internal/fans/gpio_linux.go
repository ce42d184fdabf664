//go:build linux

package fans

import (
	"fmt"
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/warthog618/go-gpiocdev"
)

const gpioConsumer = "fanctrl"

// GpioFan switches a 2-wire fan on and off through a transistor on a gpio line.
// Any duty cycle > 0 turns the fan on.
type GpioFan struct {
	Config    configuration.FanConfig `json:"configuration"`
	DutyCycle float64                 `json:"dutyCycle"`

	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

func (fan GpioFan) GetId() string {
	return fan.Config.ID
}

func (fan GpioFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *GpioFan) open() error {
	if fan.line != nil {
		return nil
	}

	chip, err := gpiocdev.NewChip(fan.Config.Gpio.Chip)
	if err != nil {
		return fmt.Errorf("open gpio chip %s: %w", fan.Config.Gpio.Chip, err)
	}
	offset, err := chip.FindLine(fan.Config.Gpio.Line)
	if err != nil {
		_ = chip.Close()
		return fmt.Errorf("gpio line %s not found: %w", fan.Config.Gpio.Line, err)
	}
	line, err := chip.RequestLine(offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer(gpioConsumer))
	if err != nil {
		_ = chip.Close()
		return fmt.Errorf("request gpio line %s: %w", fan.Config.Gpio.Line, err)
	}

	fan.chip = chip
	fan.line = line
	return nil
}

func (fan *GpioFan) SetDutyCycle(frequency int, dutyCycle float64) error {
	if err := validateDutyCycle(fan, dutyCycle); err != nil {
		return err
	}
	if err := fan.open(); err != nil {
		return fmt.Errorf("%w: fan %s: %v", ErrHardwareWrite, fan.GetId(), err)
	}

	value := 0
	if dutyCycle > 0 {
		value = 1
	}
	if err := fan.line.SetValue(value); err != nil {
		return fmt.Errorf("%w: fan %s: %v", ErrHardwareWrite, fan.GetId(), err)
	}

	fan.DutyCycle = dutyCycle
	return nil
}

func (fan GpioFan) GetDutyCycle() float64 {
	return fan.DutyCycle
}

func (fan *GpioFan) Close() error {
	if fan.line == nil {
		return nil
	}
	err := fan.line.Close()
	fan.line = nil
	if fan.chip != nil {
		_ = fan.chip.Close()
		fan.chip = nil
	}
	return err
}
