package sensors

import (
	"fmt"
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/markusressel/fanctrl/internal/util"
)

// FileSensor reads the temperature from a file, like the thermal zones in /sys/class/thermal
type FileSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor FileSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor FileSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor FileSensor) GetValue() (float64, error) {
	filePath, err := util.ExpandPath(sensor.Config.File.Path)
	if err != nil {
		return 0, fmt.Errorf("%w: sensor %s: %v", ErrSensorRead, sensor.GetId(), err)
	}

	integer, err := util.ReadIntFromFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("%w: sensor %s: %v", ErrSensorRead, sensor.GetId(), err)
	}

	value := float64(integer)
	if sensor.Config.File.MilliDegrees.Get() {
		value /= 1000
	}
	return value, nil
}
