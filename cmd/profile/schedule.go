package profile

import (
	"github.com/markusressel/fanctrl/cmd/global"
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/markusressel/fanctrl/internal/schedule"
	"github.com/spf13/cobra"
	"time"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the currently active cooling profile and when it changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		global.LoadConfig()

		config := configuration.ReadScheduleConfig()
		resolution := schedule.Resolve(time.Now(), config)

		global.PrintTable(
			[]string{"Day", "Night", "Night Hours", "Active", "Next", "Switch At"},
			[][]string{{
				config.DayProfile,
				config.NightProfile,
				config.NightHours.String(),
				resolution.Active,
				resolution.Next,
				resolution.SwitchAt.Format(time.DateTime),
			}},
		)
		return nil
	},
}

func init() {
	Command.AddCommand(scheduleCmd)
}
