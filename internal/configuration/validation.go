package configuration

import (
	"errors"
	"fmt"
	"github.com/markusressel/fanctrl/internal/curves"
	"github.com/markusressel/fanctrl/internal/util"
	"time"
)

func validateConfig(config *Configuration, path string) error {
	err := validateIntervals(config)
	if err != nil {
		return err
	}
	err = validateSchedule(config)
	if err != nil {
		return err
	}
	err = validateSensor(config)
	if err != nil {
		return err
	}
	err = validateFan(config)
	if err != nil {
		return err
	}
	err = validateOutputs(config)

	if config.Sensor.Cmd != nil && len(path) > 0 {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %s", path, err)
		}
	}

	return err
}

func validateIntervals(config *Configuration) error {
	intervals := []struct {
		name  string
		value time.Duration
	}{
		{"updateFanInterval", config.UpdateFanInterval},
		{"logInterval", config.LogInterval},
		{"configUpdateInterval", config.ConfigUpdateInterval},
	}
	for _, interval := range intervals {
		if interval.value < time.Millisecond {
			return fmt.Errorf("%s must be at least 1ms, was: %v", interval.name, interval.value)
		}
		if interval.value%time.Millisecond != 0 {
			return fmt.Errorf("%s must be a multiple of 1ms, was: %v", interval.name, interval.value)
		}
	}

	if config.FanChangeCharacteristicTime < 0 {
		return errors.New("fanChangeCharacteristicTime must not be negative")
	}
	if config.FanOffTempHysteresis < 0 {
		return errors.New("fanOffTempHysteresis must not be negative")
	}
	if config.StartupSelfTestDuration < 0 {
		return errors.New("startupSelfTestDuration must not be negative")
	}

	return nil
}

func validateSchedule(config *Configuration) error {
	if !curves.ProfileExists(config.Schedule.DayProfile) {
		return fmt.Errorf("schedule: unknown day profile '%s', use one of: %v", config.Schedule.DayProfile, curves.ProfileNames())
	}
	if !curves.ProfileExists(config.Schedule.NightProfile) {
		return fmt.Errorf("schedule: unknown night profile '%s', use one of: %v", config.Schedule.NightProfile, curves.ProfileNames())
	}
	return nil
}

func validateSensor(config *Configuration) error {
	sensorConfig := config.Sensor

	subConfigs := 0
	if sensorConfig.File != nil {
		subConfigs++
	}
	if sensorConfig.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return fmt.Errorf("sensor %s: only one sensor type can be used", sensorConfig.ID)
	}
	if subConfigs <= 0 {
		return fmt.Errorf("sensor %s: sub-configuration for sensor is missing, use one of: file | cmd", sensorConfig.ID)
	}

	if sensorConfig.File != nil && len(sensorConfig.File.Path) <= 0 {
		return fmt.Errorf("sensor %s: no file path provided", sensorConfig.ID)
	}
	if sensorConfig.Cmd != nil && len(sensorConfig.Cmd.Exec) <= 0 {
		return fmt.Errorf("sensor %s: executable is missing", sensorConfig.ID)
	}

	return nil
}

func validateFan(config *Configuration) error {
	fanConfig := config.Fan

	subConfigs := 0
	if fanConfig.Sysfs != nil {
		subConfigs++
	}
	if fanConfig.Gpio != nil {
		subConfigs++
	}
	if fanConfig.File != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return fmt.Errorf("fan %s: only one fan type can be used", fanConfig.ID)
	}
	if subConfigs <= 0 {
		return fmt.Errorf("fan %s: sub-configuration for fan is missing, use one of: sysfs | gpio | file", fanConfig.ID)
	}

	if fanConfig.PwmFrequency <= 0 {
		return fmt.Errorf("fan %s: invalid pwmFrequency, must be > 0", fanConfig.ID)
	}

	if fanConfig.Sysfs != nil {
		if len(fanConfig.Sysfs.Chip) <= 0 {
			return fmt.Errorf("fan %s: no pwm chip provided", fanConfig.ID)
		}
		if fanConfig.Sysfs.Channel < 0 {
			return fmt.Errorf("fan %s: invalid channel, must be >= 0", fanConfig.ID)
		}
	}

	if fanConfig.Gpio != nil {
		if len(fanConfig.Gpio.Chip) <= 0 {
			return fmt.Errorf("fan %s: no gpio chip provided", fanConfig.ID)
		}
		if len(fanConfig.Gpio.Line) <= 0 {
			return fmt.Errorf("fan %s: no gpio line provided", fanConfig.ID)
		}
	}

	if fanConfig.File != nil && len(fanConfig.File.Path) <= 0 {
		return fmt.Errorf("fan %s: no file path provided", fanConfig.ID)
	}

	return nil
}

func validateOutputs(config *Configuration) error {
	if config.Statistics.Enabled && !isValidPort(config.Statistics.Port) {
		return fmt.Errorf("statistics: invalid port %d", config.Statistics.Port)
	}
	if config.Api.Enabled && !isValidPort(config.Api.Port) {
		return fmt.Errorf("api: invalid port %d", config.Api.Port)
	}
	if config.Statistics.Enabled && config.Api.Enabled && config.Statistics.Port == config.Api.Port {
		return fmt.Errorf("api and statistics cannot share port %d", config.Api.Port)
	}

	if config.History.Enabled {
		if len(config.DbPath) <= 0 {
			return errors.New("history: no dbPath provided")
		}
		if config.History.MaxRecords <= 0 {
			return errors.New("history: maxRecords must be > 0")
		}
	}

	if config.Mqtt.Enabled {
		if len(config.Mqtt.Broker) <= 0 {
			return errors.New("mqtt: no broker provided")
		}
		if len(config.Mqtt.Topic) <= 0 {
			return errors.New("mqtt: no topic provided")
		}
	}

	return nil
}

func isValidPort(port int) bool {
	return port > 0 && port < 65536
}
