package fans

import (
	"fmt"
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/markusressel/fanctrl/internal/util"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const exportTimeout = 500 * time.Millisecond

var writeAttribute = util.WriteStringToFile

// SysfsFan drives a hardware PWM channel via /sys/class/pwm.
//
// On a Raspberry Pi this requires a pwm overlay (e.g. dtoverlay=pwm-2chan),
// which exposes GPIO18 as channel 0 of pwmchip0.
type SysfsFan struct {
	Config    configuration.FanConfig `json:"configuration"`
	DutyCycle float64                 `json:"dutyCycle"`

	exported  bool
	frequency int
	periodNs  uint64
}

func (fan SysfsFan) GetId() string {
	return fan.Config.ID
}

func (fan SysfsFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *SysfsFan) pwmPath() string {
	return filepath.Join(fan.Config.Sysfs.Chip, fmt.Sprintf("pwm%d", fan.Config.Sysfs.Channel))
}

func (fan *SysfsFan) SetDutyCycle(frequency int, dutyCycle float64) error {
	if err := validateDutyCycle(fan, dutyCycle); err != nil {
		return err
	}
	if frequency <= 0 {
		return fmt.Errorf("%w: fan %s: invalid frequency %d", ErrHardwareWrite, fan.GetId(), frequency)
	}

	if err := fan.ensureExported(); err != nil {
		return fmt.Errorf("%w: fan %s: %v", ErrHardwareWrite, fan.GetId(), err)
	}

	if frequency != fan.frequency {
		if err := fan.setFrequency(frequency); err != nil {
			return fmt.Errorf("%w: fan %s: %v", ErrHardwareWrite, fan.GetId(), err)
		}
	}

	duty := uint64(math.Round(float64(fan.periodNs) * dutyCycle))
	if err := fan.writeAttribute("duty_cycle", strconv.FormatUint(duty, 10)); err != nil {
		return fmt.Errorf("%w: fan %s: %v", ErrHardwareWrite, fan.GetId(), err)
	}

	fan.DutyCycle = dutyCycle
	return nil
}

func (fan *SysfsFan) ensureExported() error {
	if fan.exported {
		return nil
	}

	pwmPath := fan.pwmPath()
	if _, err := os.Stat(pwmPath); err != nil {
		exportPath := filepath.Join(fan.Config.Sysfs.Chip, "export")
		err = writeAttribute(strconv.Itoa(fan.Config.Sysfs.Channel), exportPath)
		if err != nil {
			return fmt.Errorf("export pwm channel: %w", err)
		}

		// the kernel creates the channel asynchronously
		deadline := time.Now().Add(exportTimeout)
		for {
			if _, err = os.Stat(pwmPath); err == nil {
				break
			}
			if time.Now().After(deadline) {
				return fmt.Errorf("pwm path not created after export: %w", err)
			}
			time.Sleep(10 * time.Millisecond)
		}
	}

	fan.exported = true
	return nil
}

func (fan *SysfsFan) setFrequency(frequency int) error {
	periodNs := uint64(time.Second.Nanoseconds() / int64(frequency))
	if periodNs == 0 {
		periodNs = 1
	}

	// the period can only be changed while disabled, and never below the current duty cycle
	if err := fan.writeAttribute("enable", "0"); err != nil {
		return err
	}
	if err := fan.writeAttribute("duty_cycle", "0"); err != nil {
		return err
	}
	if err := fan.writeAttribute("period", strconv.FormatUint(periodNs, 10)); err != nil {
		return err
	}
	if err := fan.writeAttribute("enable", "1"); err != nil {
		return err
	}

	fan.frequency = frequency
	fan.periodNs = periodNs
	return nil
}

func (fan *SysfsFan) writeAttribute(name string, value string) error {
	return writeAttribute(value, filepath.Join(fan.pwmPath(), name))
}

func (fan SysfsFan) GetDutyCycle() float64 {
	return fan.DutyCycle
}

func (fan *SysfsFan) Close() error {
	if !fan.exported {
		return nil
	}
	err := fan.writeAttribute("enable", "0")
	fan.frequency = 0
	fan.periodNs = 0
	fan.exported = false
	return err
}
