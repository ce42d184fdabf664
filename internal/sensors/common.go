package sensors

import (
	"errors"
	"fmt"
	"github.com/markusressel/fanctrl/internal/configuration"
)

var (
	ErrSensorRead = errors.New("unable to read temperature")
)

type Sensor interface {
	GetId() string

	GetConfig() configuration.SensorConfig

	// GetValue returns the current temperature in °C
	GetValue() (float64, error)
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	if config.File != nil {
		return &FileSensor{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdSensor{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type for sensor: %s", config.ID)
}
