package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mserignese/gopro-control/internal/command"
)

// commandsCmd represents the catalog listing
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List every camera command the shell understands",
	Run: func(cmd *cobra.Command, args []string) {
		defs := command.All()

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(defs); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "COMMAND\tARGS\tPATH\tVALUES")
		fmt.Fprintln(w, "-------\t----\t----\t------")

		for _, def := range defs {
			values := ""
			if def.Mapping != nil {
				keys := make([]string, 0, len(def.Mapping))
				for k := range def.Mapping {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				values = strings.Join(keys, ",")
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", def.Name, def.Arity, def.Template, values)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
