package sensors

import (
	"fmt"
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/markusressel/fanctrl/internal/util"
	"strconv"
	"strings"
	"time"
)

const cmdTimeout = 2 * time.Second

type CmdSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor CmdSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor CmdSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor CmdSensor) GetValue() (float64, error) {
	exec := sensor.Config.Cmd.Exec
	args := sensor.Config.Cmd.Args
	result, err := util.SafeCmdExecution(exec, args, cmdTimeout)
	if err != nil {
		return 0, fmt.Errorf("%w: sensor %s: %v", ErrSensorRead, sensor.GetId(), err)
	}

	return parseCmdOutput(result)
}

// parseCmdOutput accepts a plain number, optionally followed by a unit,
// like "52.3", "-4" or "temp=52.3'C" as printed by vcgencmd
func parseCmdOutput(output string) (float64, error) {
	text := strings.TrimSpace(output)
	if idx := strings.Index(text, "="); idx >= 0 {
		text = text[idx+1:]
	}
	text = strings.TrimRightFunc(text, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})

	temp, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unable to parse command output '%s'", ErrSensorRead, output)
	}

	return temp, nil
}
