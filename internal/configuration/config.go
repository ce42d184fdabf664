package configuration

import (
	"errors"
	"github.com/markusressel/fanctrl/internal/schedule"
	"github.com/markusressel/fanctrl/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"os"
	"time"
)

const (
	DefaultSensorFilePath = "/sys/class/thermal/thermal_zone0/temp"
	DefaultSysfsPwmChip   = "/sys/class/pwm/pwmchip0"
)

type Configuration struct {
	DbPath       string `json:"dbPath"`
	SchedulePath string `json:"schedulePath"`
	StatusFile   string `json:"statusFile"`

	UpdateFanInterval    time.Duration `json:"updateFanInterval"`
	LogInterval          time.Duration `json:"logInterval"`
	ConfigUpdateInterval time.Duration `json:"configUpdateInterval"`

	// Time it takes to halve the difference between the current and the target fan intensity
	FanChangeCharacteristicTime time.Duration `json:"fanChangeCharacteristicTime"`
	// Degrees the temperature has to drop below the point where the fan turns on,
	// before the fan is turned off again
	FanOffTempHysteresis    float64       `json:"fanOffTempHysteresis"`
	StartupSelfTestDuration time.Duration `json:"startupSelfTestDuration"`

	// Used when the schedule file is missing, and for directives missing from it
	Schedule schedule.Config `json:"schedule"`

	Sensor SensorConfig `json:"sensor"`
	Fan    FanConfig    `json:"fan"`

	Statistics StatisticsConfig `json:"statistics"`
	Api        ApiConfig        `json:"api"`
	History    HistoryConfig    `json:"history"`
	Mqtt       MqttConfig       `json:"mqtt"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("fanctrl")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/fanctrl/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("dbPath", "/var/lib/fanctrl/fanctrl.db")
	viper.SetDefault("schedulePath", "/etc/fanctrl/schedule")
	viper.SetDefault("statusFile", "")

	viper.SetDefault("updateFanInterval", 1*time.Second)
	viper.SetDefault("logInterval", 5*time.Minute)
	viper.SetDefault("configUpdateInterval", 1*time.Hour)

	viper.SetDefault("fanChangeCharacteristicTime", 4*time.Second)
	viper.SetDefault("fanOffTempHysteresis", 5.0)
	viper.SetDefault("startupSelfTestDuration", 5*time.Second)

	viper.SetDefault("schedule.dayProfile", schedule.DefaultConfig.DayProfile)
	viper.SetDefault("schedule.nightProfile", schedule.DefaultConfig.NightProfile)
	viper.SetDefault("schedule.nightHours", schedule.DefaultConfig.NightHours.String())

	viper.SetDefault("sensor.id", "soc")
	viper.SetDefault("fan.id", "fan")
	viper.SetDefault("fan.pwmFrequency", 25000)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)

	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.maxRecords", 2016)

	viper.SetDefault("mqtt.enabled", false)
	viper.SetDefault("mqtt.broker", "tcp://localhost:1883")
	viper.SetDefault("mqtt.topic", "fanctrl/state")
	viper.SetDefault("mqtt.clientId", "fanctrl")
}

// DetectAndReadConfigFile reads the config file, if any, and returns its path.
// Without a config file the default values are used.
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			ui.Warning("No configuration file found, using default values")
			return ""
		}
		ui.FatalWithoutStacktrace("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	// load default configuration values
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(decodeHook()))
	if err != nil {
		ui.FatalWithoutStacktrace("unable to decode into struct, %v", err)
	}
	applyHardwareDefaults(&CurrentConfig)
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		scheduleTypesHookFunc(),
		defaultTrueBoolHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// applyHardwareDefaults selects the on-board hardware of a Raspberry Pi,
// when no sensor or fan backend is configured
func applyHardwareDefaults(config *Configuration) {
	sensor := &config.Sensor
	if sensor.File == nil && sensor.Cmd == nil {
		sensor.File = &FileSensorConfig{
			Path: DefaultSensorFilePath,
		}
	}

	fan := &config.Fan
	if fan.Sysfs == nil && fan.Gpio == nil && fan.File == nil {
		fan.Sysfs = &SysfsFanConfig{
			Chip:    DefaultSysfsPwmChip,
			Channel: 0,
		}
	}
}

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}
