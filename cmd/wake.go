package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mserignese/gopro-control/internal/wol"
)

// wakeCmd represents the one-shot Wake-on-LAN command
var wakeCmd = &cobra.Command{
	Use:   "wake",
	Short: "Send the Wake-on-LAN magic packet to the camera",
	Long: `Send the 102-byte magic packet to the camera's discard port over
UDP. The camera ignores HTTP until it has been woken this way.`,
	Run: func(cmd *cobra.Command, args []string) {
		session := loadSession()

		if session.MACAddr == "" {
			fmt.Println("Error: mac_address is not configured.")
			os.Exit(1)
		}

		if err := wol.Wake(session.IPAddr, session.MACAddr); err != nil {
			fmt.Printf("Error waking camera: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Wake packet sent to %s\n", session.IPAddr)
	},
}

func init() {
	rootCmd.AddCommand(wakeCmd)
}
