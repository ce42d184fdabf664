package cmd

import (
	"fmt"
	"github.com/markusressel/fanctrl/cmd/global"
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/markusressel/fanctrl/internal/persistence"
	"github.com/markusressel/fanctrl/internal/statelog"
	"github.com/markusressel/fanctrl/internal/ui"
	"github.com/spf13/cobra"
	"time"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the most recent state records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		global.LoadConfig()
		config := configuration.CurrentConfig

		history := persistence.NewPersistence(config.DbPath, config.History.MaxRecords)
		if historyClear {
			if err := history.DeleteStateRecords(); err != nil {
				return err
			}
			ui.Success("History cleared")
			return nil
		}

		records, err := history.LoadStateRecords(historyLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			ui.Info("No state records found in %s", config.DbPath)
			return nil
		}

		global.PrintTable(
			[]string{"Time", "Temp (°C)", "Min", "Avg", "Max", "FAN%", "Duty Cycle", "Profile"},
			historyRows(records),
		)
		return nil
	},
}

func historyRows(records []statelog.Record) [][]string {
	var rows [][]string
	for _, record := range records {
		rows = append(rows, []string{
			record.Timestamp.Local().Format(time.DateTime),
			fmt.Sprintf("%04.1f", record.Temperature),
			fmt.Sprintf("%04.1f", record.MinTemperature),
			fmt.Sprintf("%04.1f", record.AvgTemperature),
			fmt.Sprintf("%04.1f", record.MaxTemperature),
			record.Intensity.String(),
			fmt.Sprintf("%.4f", record.DutyCycle),
			record.ActiveProfile,
		})
	}
	return rows
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of records to print, 0 prints all of them")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all stored records")

	rootCmd.AddCommand(historyCmd)
}
