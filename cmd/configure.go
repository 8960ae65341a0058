package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mserignese/gopro-control/internal/config"
	"github.com/mserignese/gopro-control/internal/wol"
)

// Variables to hold flag values
var (
	confIP       string
	confMAC      string
	confPeriod   int
	confTimeout  int
	confSSID     string
	confPassword string
	confPlayer   string
)

// configureCmd represents the configure command
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save camera connection settings",
	Long: `Validates the camera coordinates and writes them to the config file
so every other command can find the camera.`,
	Example: `  gopro-control configure --ip 10.5.5.9 --mac AA:BB:CC:DD:EE:FF`,
	Run: func(cmd *cobra.Command, args []string) {
		values := map[string]any{"ip_address": confIP}

		if confMAC != "" {
			if _, err := wol.ParseMAC(confMAC); err != nil {
				fmt.Printf("Error: invalid MAC address: %v\n", err)
				os.Exit(1)
			}
			values["mac_address"] = confMAC
		}
		if confPeriod > 0 {
			values["keepalive_period"] = confPeriod
		}
		if confTimeout > 0 {
			values["http_timeout"] = confTimeout
		}
		if confSSID != "" {
			values["ap_ssid"] = confSSID
		}
		if confPassword != "" {
			values["ap_password"] = confPassword
		}
		if confPlayer != "" {
			values["player_path"] = confPlayer
		}

		if err := config.Save(values); err != nil {
			fmt.Printf("Error saving configuration: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Configuration saved. You can now run 'gopro-control shell'.")
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().StringVar(&confIP, "ip", "", "Camera IP address on its WiFi network")
	configureCmd.Flags().StringVar(&confMAC, "mac", "", "Camera MAC address (needed for Wake-on-LAN)")
	configureCmd.Flags().IntVar(&confPeriod, "keepalive-period", 0, "Heartbeat interval in milliseconds")
	configureCmd.Flags().IntVar(&confTimeout, "http-timeout", 0, "HTTP request timeout in seconds")
	configureCmd.Flags().StringVar(&confSSID, "ap-ssid", "", "Camera access point SSID")
	configureCmd.Flags().StringVar(&confPassword, "ap-password", "", "Camera access point password")
	configureCmd.Flags().StringVar(&confPlayer, "player", "", "Stream viewer binary (default mpv)")

	_ = configureCmd.MarkFlagRequired("ip")
}
