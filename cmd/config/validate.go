package config

import (
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/markusressel/fanctrl/internal/ui"
	"github.com/spf13/cobra"
	"os"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the current configuration and schedule file",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// note: config file path parameter comes from the root command (-c)
		configPath := configuration.DetectAndReadConfigFile()
		if configPath != "" {
			ui.Info("Using configuration file at: %s", configPath)
		}
		configuration.LoadConfig()

		if err := configuration.Validate(configPath); err != nil {
			ui.Error("Validation failed: %v", err)
			os.Exit(1)
		}

		_, err := configuration.LoadScheduleConfig(configuration.CurrentConfig.SchedulePath, configuration.CurrentConfig.Schedule)
		if err != nil {
			// the daemon falls back to the defaults, so this is not fatal
			ui.Warning("Schedule file: %v", err)
		}

		ui.Success("Config looks good! :)")
		return nil
	},
}

func init() {
	Command.AddCommand(validateCmd)
}
