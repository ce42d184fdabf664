package fans

import (
	"fmt"
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/markusressel/fanctrl/internal/util"
	"math"
	"strconv"
)

// FileDutyCycleScale is the value written to the file for a duty cycle of 1.0
const FileDutyCycleScale = 1_000_000

// FileFan writes the duty cycle as an integer out of FileDutyCycleScale to a file,
// for testing and for custom hardware bridges
type FileFan struct {
	Config    configuration.FanConfig `json:"configuration"`
	DutyCycle float64                 `json:"dutyCycle"`
}

func (fan FileFan) GetId() string {
	return fan.Config.ID
}

func (fan FileFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *FileFan) SetDutyCycle(frequency int, dutyCycle float64) error {
	if err := validateDutyCycle(fan, dutyCycle); err != nil {
		return err
	}

	filePath, err := util.ExpandPath(fan.Config.File.Path)
	if err != nil {
		return fmt.Errorf("%w: fan %s: %v", ErrHardwareWrite, fan.GetId(), err)
	}

	value := int(math.Round(dutyCycle * FileDutyCycleScale))
	err = util.WriteFileAtomic([]byte(strconv.Itoa(value)), filePath)
	if err != nil {
		return fmt.Errorf("%w: fan %s: %v", ErrHardwareWrite, fan.GetId(), err)
	}

	fan.DutyCycle = dutyCycle
	return nil
}

func (fan FileFan) GetDutyCycle() float64 {
	return fan.DutyCycle
}

func (fan *FileFan) Close() error {
	return nil
}
