//go:build !linux

package fans

import (
	"fmt"
	"github.com/markusressel/fanctrl/internal/configuration"
)

// GpioFan is only supported on linux
type GpioFan struct {
	Config    configuration.FanConfig `json:"configuration"`
	DutyCycle float64                 `json:"dutyCycle"`
}

func (fan GpioFan) GetId() string {
	return fan.Config.ID
}

func (fan GpioFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *GpioFan) SetDutyCycle(frequency int, dutyCycle float64) error {
	return fmt.Errorf("%w: fan %s: gpio is not supported on this platform", ErrHardwareWrite, fan.GetId())
}

func (fan GpioFan) GetDutyCycle() float64 {
	return fan.DutyCycle
}

func (fan *GpioFan) Close() error {
	return nil
}
