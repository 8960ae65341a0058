package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mserignese/gopro-control/internal/client"
	"github.com/mserignese/gopro-control/internal/config"
)

var cfgFile string
var jsonOutput bool
var debugOutput bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gopro-control",
	Short: "A CLI for controlling a GoPro camera over its WiFi API",
	Long: `Wake, configure, record with, and stream from a GoPro camera on
your network via its gpControl HTTP API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		config.InitConfig(cfgFile)
		setupLogger(debugOutput)
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gopro-control.yaml)")

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVar(&debugOutput, "debug", false, "Enable debug logging")
}

// setupLogger configures the process-wide logger. Command replies go to
// stdout, logs to stderr, so shell pipelines only see replies.
func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadSession builds the immutable camera session every subcommand
// shares.
func loadSession() *config.Session {
	session, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	return session
}

// newClient wires a gpControl client for the session.
func newClient(session *config.Session) *client.GoProClient {
	return client.New(client.ClientConfig{
		BaseURL: client.BaseURL(session.IPAddr),
		Timeout: session.HTTPTimeout,
		IPAddr:  session.IPAddr,
		MACAddr: session.MACAddr,
	})
}
