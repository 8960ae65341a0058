package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied when the config file leaves a key unset.
const (
	DefaultKeepalivePeriodMS = 2500
	DefaultHTTPTimeoutS      = 10
	DefaultPlayerPath        = "mpv"
)

// Session holds everything needed to control one camera. It is built
// once at startup and never mutated afterwards; every component reads
// the same copy.
type Session struct {
	IPAddr          string
	MACAddr         string
	KeepalivePeriod time.Duration
	HTTPTimeout     time.Duration
	APSSID          string
	APPassword      string
	PlayerPath      string
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".gopro-control" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gopro-control")
	}

	viper.SetDefault("keepalive_period", DefaultKeepalivePeriodMS)
	viper.SetDefault("http_timeout", DefaultHTTPTimeoutS)
	viper.SetDefault("player_path", DefaultPlayerPath)

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		// Config loaded successfully
	}
}

// Load builds the immutable camera session from whatever InitConfig
// gathered. ip_address is the one hard requirement; commands that need
// the MAC check for it themselves.
func Load() (*Session, error) {
	ip := viper.GetString("ip_address")
	if ip == "" {
		return nil, fmt.Errorf("ip_address is not configured; set it in the config file or environment")
	}
	period := viper.GetInt("keepalive_period")
	if period <= 0 {
		return nil, fmt.Errorf("keepalive_period must be a positive millisecond count, got %d", period)
	}
	timeout := viper.GetInt("http_timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("http_timeout must be a positive second count, got %d", timeout)
	}

	return &Session{
		IPAddr:          ip,
		MACAddr:         viper.GetString("mac_address"),
		KeepalivePeriod: time.Duration(period) * time.Millisecond,
		HTTPTimeout:     time.Duration(timeout) * time.Second,
		APSSID:          viper.GetString("ap_ssid"),
		APPassword:      viper.GetString("ap_password"),
		PlayerPath:      viper.GetString("player_path"),
	}, nil
}

// Save persists the given keys to the config file, creating it when missing
func Save(values map[string]any) error {
	for key, value := range values {
		viper.Set(key, value)
	}

	// Ensure the file exists before writing
	if err := viper.WriteConfig(); err != nil {
		// If file doesn't exist, create it
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viper.SafeWriteConfig()
		}
		// If it exists but failed to write, try writing to default path
		home, _ := os.UserHomeDir()
		path := filepath.Join(home, ".gopro-control.yaml")
		return viper.WriteConfigAs(path)
	}
	return nil
}
