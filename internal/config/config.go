package config

import (
	"blackjack-server/internal/util"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack server
type Config struct {
	loaded bool

	// TCPAddr is where the line protocol listens
	TCPAddr string `yaml:"tcpAddr" envconfig:"tcp_addr"`
	// HTTPAddr serves health, room state and the websocket bridge. Empty disables it
	HTTPAddr string `yaml:"httpAddr" envconfig:"http_addr"`

	StartingBalance int `yaml:"startingBalance" envconfig:"starting_balance"`
	DealerDelayMs   int `yaml:"dealerDelayMs" envconfig:"dealer_delay_ms"`
	DealerStandsOn  int `yaml:"dealerStandsOn" envconfig:"dealer_stands_on"`
	SendBuffer      int `yaml:"sendBuffer" envconfig:"send_buffer"`

	// Seed makes card draws reproducible. Zero draws from crypto/rand
	Seed int64 `yaml:"seed" envconfig:"seed"`

	Log struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

// DealerDelay is the pause between dealer draws
func (c Config) DealerDelay() time.Duration {
	return time.Duration(c.DealerDelayMs) * time.Millisecond
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		TCPAddr:         ":6789",
		HTTPAddr:        ":5000",
		StartingBalance: 1000,
		DealerDelayMs:   1000,
		DealerStandsOn:  17,
		SendBuffer:      256,
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Defaults are overlaid by the YAML file (if it exists) and then by BJ_* environment variables.
// A .env file in the working directory is loaded into the environment first
func Load() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case !os.IsNotExist(err):
		return err
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
