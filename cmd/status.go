package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// statusCmd represents the raw status dump
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the camera's raw status and settings fields",
	Long: `Fetch /status and print every numeric field the camera reports.
Field IDs are firmware-defined; battery percent is status field 2.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newClient(loadSession())

		status, err := api.Status()
		if err != nil {
			fmt.Printf("Error fetching status: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(status); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "SECTION\tFIELD\tVALUE")
		fmt.Fprintln(w, "-------\t-----\t-----")

		for _, key := range sortedFieldKeys(status.Status) {
			fmt.Fprintf(w, "status\t%s\t%s\n", key, status.Status[key].String())
		}
		for _, key := range sortedFieldKeys(status.Settings) {
			fmt.Fprintf(w, "settings\t%s\t%s\n", key, status.Settings[key].String())
		}
		w.Flush()
	},
}

// sortedFieldKeys orders the numeric field IDs numerically so the table
// matches the firmware documentation.
func sortedFieldKeys(fields map[string]json.Number) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.Atoi(keys[i])
		b, berr := strconv.Atoi(keys[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		return keys[i] < keys[j]
	})
	return keys
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
