package global

import (
	"bytes"
	"github.com/markusressel/fanctrl/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/tomlazar/table"
)

// PrintTable prints the given rows as a table with alternating row colors
func PrintTable(headers []string, rows [][]string) {
	tab := table.Table{
		Headers: headers,
		Rows:    rows,
	}
	var buf bytes.Buffer
	tableErr := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           !NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	if tableErr != nil {
		panic(tableErr)
	}
	ui.Printfln("%s", buf.String())
}
