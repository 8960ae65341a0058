package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// infoCmd represents the camera identity query
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show camera model, firmware, and access-point details",
	Run: func(cmd *cobra.Command, args []string) {
		api := newClient(loadSession())

		info, err := api.Info()
		if err != nil {
			fmt.Printf("Error fetching info: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(info); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "MODEL\tFIRMWARE\tSERIAL\tAP SSID\tAP MAC")
		fmt.Fprintln(w, "-----\t--------\t------\t-------\t------")
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			info.ModelName,
			info.FirmwareVersion,
			info.SerialNumber,
			info.APSSID,
			info.APMAC,
		)
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
