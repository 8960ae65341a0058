package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mserignese/gopro-control/internal/command"
)

// sendCmd represents the one-shot dispatch command
var sendCmd = &cobra.Command{
	Use:   "send <command> [arg]",
	Short: "Send a single command to the camera",
	Long: `Parse and dispatch one catalog command without starting the
interactive shell. No wake packet is sent and no keepalive runs.`,
	Example: `  gopro-control send record_start
  gopro-control send video_resolution 4k`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session := loadSession()

		msg, err := command.Parse(args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		reply, err := newClient(session).Do(msg)
		if err != nil {
			fmt.Printf("Error sending %s: %v\n", msg.Def.Name, err)
			os.Exit(1)
		}
		if reply != "" {
			fmt.Println(reply)
		}
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
