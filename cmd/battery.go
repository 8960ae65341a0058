package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// batteryCmd represents the battery level query
var batteryCmd = &cobra.Command{
	Use:   "battery",
	Short: "Show the camera's battery level",
	Run: func(cmd *cobra.Command, args []string) {
		api := newClient(loadSession())

		level, err := api.BatteryLevel()
		if err != nil {
			fmt.Printf("Error fetching battery level: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(map[string]string{"battery_level": level}); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		fmt.Printf("%s%%\n", level)
	},
}

func init() {
	rootCmd.AddCommand(batteryCmd)
}
