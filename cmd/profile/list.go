package profile

import (
	"fmt"
	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/fanctrl/cmd/global"
	"github.com/markusressel/fanctrl/internal/curves"
	"github.com/markusressel/fanctrl/internal/ui"
	"github.com/spf13/cobra"
)

const (
	graphMinTemperature = 20
	graphMaxTemperature = 90
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all built-in cooling profiles and the fan scaling profile to console",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		for idx, name := range curves.ProfileNames() {
			if idx > 0 {
				ui.Printfln("")
				ui.Printfln("")
			}

			profile, _ := curves.GetProfile(name)
			ui.Printfln("%s", name)
			printCurve(profile.Curve, "Temperature (°C)", "FAN%")

			values, err := sample(profile.Curve, graphMinTemperature, graphMaxTemperature)
			if err != nil {
				return err
			}
			caption := fmt.Sprintf("FAN%% / Temperature (%d..%d°C)", graphMinTemperature, graphMaxTemperature)
			graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
			ui.Printfln("%s", graph)
		}

		ui.Printfln("")
		ui.Printfln("")
		ui.Printfln("Fan scaling")
		printCurve(curves.FanScaling, "FAN%", "Duty Cycle")

		values, err := sample(curves.FanScaling, 0, 100)
		if err != nil {
			return err
		}
		graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption("Duty Cycle / FAN%"))
		ui.Printfln("%s", graph)

		return nil
	},
}

func printCurve(curve curves.Curve, inputHeader, outputHeader string) {
	var rows [][]string
	for _, point := range curve.Sorted() {
		rows = append(rows, []string{
			fmt.Sprintf("%g", point.X),
			fmt.Sprintf("%g", point.Y),
		})
	}
	global.PrintTable([]string{inputHeader, outputHeader}, rows)
}

// sample evaluates the curve for every integer input in [start..stop]
func sample(curve curves.Curve, start, stop int) ([]float64, error) {
	values := make([]float64, 0, stop-start+1)
	for x := start; x <= stop; x++ {
		value, err := curves.Interpolate(curve, float64(x))
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func init() {
	Command.AddCommand(listCmd)
}
