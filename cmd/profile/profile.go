package profile

import (
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "profile",
	Short: "Cooling profile related commands",
	Long:  ``,
}
