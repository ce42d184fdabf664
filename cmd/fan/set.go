package fan

import (
	"fmt"
	"github.com/markusressel/fanctrl/cmd/global"
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/markusressel/fanctrl/internal/fans"
	"github.com/markusressel/fanctrl/internal/ui"
	"github.com/spf13/cobra"
)

var dutyCycle float64

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the duty cycle of the fan to the given value ([0..1])",
	Long: `Set the duty cycle of the fan to the given value ([0..1]).
The value is kept until it is changed again, e.g. by the daemon.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dutyCycle < fans.MinDutyCycle || dutyCycle > fans.MaxDutyCycle {
			return fmt.Errorf("duty cycle must be in [%.0f..%.0f], was: %v", fans.MinDutyCycle, fans.MaxDutyCycle, dutyCycle)
		}

		global.LoadConfig()
		config := configuration.CurrentConfig.Fan

		fan, err := fans.NewFan(config)
		if err != nil {
			return err
		}

		err = fan.SetDutyCycle(config.PwmFrequency, dutyCycle)
		if err != nil {
			return err
		}
		ui.Success("Duty cycle of fan %s set to %.4f", fan.GetId(), dutyCycle)
		return nil
	},
}

func init() {
	setCmd.Flags().Float64VarP(&dutyCycle, "duty", "d", 0, "Duty cycle to apply (0..1)")
	_ = setCmd.MarkFlagRequired("duty")

	Command.AddCommand(setCmd)
}
