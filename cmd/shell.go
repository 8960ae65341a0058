package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mserignese/gopro-control/internal/client"
	"github.com/mserignese/gopro-control/internal/config"
	"github.com/mserignese/gopro-control/internal/keepalive"
	"github.com/mserignese/gopro-control/internal/player"
	"github.com/mserignese/gopro-control/internal/shell"
	"github.com/mserignese/gopro-control/internal/wol"
)

// Variables to hold flag values
var (
	noWake      bool
	noKeepalive bool
)

// shellCmd represents the interactive session
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive camera control session",
	Long: `Wake the camera, keep the session alive with UDP heartbeats, and
read commands from stdin until EOF or Ctrl-C. One command per line;
replies are printed to stdout. Run 'gopro-control commands' for the
full command list.`,
	Example: `  gopro-control shell
  echo "record_start" | gopro-control shell --no-wake`,
	Run: func(cmd *cobra.Command, args []string) {
		session := loadSession()
		logger := slog.Default()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if !noWake {
			if session.MACAddr == "" {
				logger.Warn("mac_address not configured, skipping wake")
			} else if err := wol.Wake(session.IPAddr, session.MACAddr); err != nil {
				logger.Warn("wake failed", "error", err)
			}
		}

		if !noKeepalive {
			loop := keepalive.New(keepalive.Addr(session.IPAddr), session.KeepalivePeriod, logger)
			go loop.Run(ctx)
		}

		api := newClient(session)
		logCameraIdentity(api, session, logger)

		onStream := func(ctx context.Context) error {
			return player.Launch(ctx, session.PlayerPath,
				player.StreamURL(session.IPAddr, keepalive.Port))
		}

		sh := shell.New(api, logger, os.Stdout, onStream)
		if err := sh.Run(ctx); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// logCameraIdentity records what we are talking to. Best effort: an
// asleep camera answers nothing until woken.
func logCameraIdentity(api *client.GoProClient, session *config.Session, logger *slog.Logger) {
	info, err := api.Info()
	if err != nil {
		logger.Debug("camera identity unavailable", "error", err)
		return
	}
	if session.APSSID != "" && info.APSSID != "" && session.APSSID != info.APSSID {
		logger.Warn("configured ap_ssid does not match camera",
			"configured", session.APSSID, "camera", info.APSSID)
	}
	level, err := api.BatteryLevel()
	if err != nil {
		level = "unknown"
	}
	logger.Debug("connected to camera",
		"model", info.ModelName,
		"firmware", info.FirmwareVersion,
		"serial", info.SerialNumber,
		"ap_ssid", info.APSSID,
		"battery", level,
	)
}

func init() {
	rootCmd.AddCommand(shellCmd)

	shellCmd.Flags().BoolVar(&noWake, "no-wake", false, "Skip the Wake-on-LAN packet at startup")
	shellCmd.Flags().BoolVar(&noKeepalive, "no-keepalive", false, "Skip the UDP keepalive loop")
}
