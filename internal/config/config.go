package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API      APIConfig       `mapstructure:"api"`
	Storage  StorageConfig   `mapstructure:"storage"`
	Log      LogConfig       `mapstructure:"log"`
	Mock     MockConfig      `mapstructure:"mock"`
	Features map[string]bool `mapstructure:"features"`
}

type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type MockConfig struct {
	Addr string `mapstructure:"addr"`
}

// Timeout returns the configured API timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig loads configuration from config.yaml and environment variables.
// A missing config file is fine: defaults plus environment cover everything.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.partnerctl/")
	v.AddConfigPath("/etc/partnerctl/")

	// Enable environment variable override with PARTNERCTL_ prefix
	v.SetEnvPrefix("PARTNERCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.base_url", "https://api.nashtto.com/api")
	v.SetDefault("api.timeout_seconds", 30)
	// Empty storage.dir means "resolve under the user's home directory";
	// the composition root fills it in.
	v.SetDefault("storage.dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("mock.addr", ":8080")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
