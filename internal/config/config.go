package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Journal JournalConfig `mapstructure:"journal"`
	Exports ExportsConfig `mapstructure:"exports"`
}

type ServerConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
	RetryAttempts  uint   `mapstructure:"retry_attempts" validate:"lte=10"`
}

type JournalConfig struct {
	Path string `mapstructure:"path"`
}

type ExportsConfig struct {
	DeckDirectory string `mapstructure:"deck_directory"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/algorecall")
	}

	v.SetDefault("server.base_url", "http://localhost:8000")
	v.SetDefault("server.timeout_seconds", 10)
	v.SetDefault("server.retry_attempts", 3)
	v.SetDefault("exports.deck_directory", filepath.Join("exports", "decks"))

	// The server URL may come from the environment without a config file
	if err := v.BindEnv("server.base_url", "ALGORECALL_SERVER_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind ALGORECALL_SERVER_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
