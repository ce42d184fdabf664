package sensor

import (
	"fmt"
	"github.com/markusressel/fanctrl/cmd/global"
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/markusressel/fanctrl/internal/sensors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "sensor",
	Short: "Print the current temperature of the configured sensor in °C",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		global.LoadConfig()

		sensor, err := sensors.NewSensor(configuration.CurrentConfig.Sensor)
		if err != nil {
			return err
		}

		value, err := sensor.GetValue()
		if err != nil {
			return err
		}
		fmt.Printf("%.1f\n", value)
		return nil
	},
}
