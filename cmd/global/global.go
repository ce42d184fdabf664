package global

import (
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/markusressel/fanctrl/internal/ui"
)

var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool
)

// LoadConfig reads and validates the configuration, exiting on any error.
// Returns the path of the config file used, empty if there is none.
func LoadConfig() string {
	configPath := configuration.DetectAndReadConfigFile()
	if configPath != "" {
		ui.Info("Using configuration file at: %s", configPath)
	}
	configuration.LoadConfig()

	if err := configuration.Validate(configPath); err != nil {
		ui.FatalWithoutStacktrace("Validation failed: %v", err)
	}
	return configPath
}
