// Package config loads the service configuration file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ArchiveConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type Config struct {
	// Addr is the listen address, host:port.
	Addr string `mapstructure:"addr"`

	// Mock switches the statistics endpoints to canned sample data instead
	// of computing from the live collections.
	Mock bool `mapstructure:"mock"`

	// DatabaseURL enables the postgres risk store when set; otherwise the
	// in-memory store backs everything.
	DatabaseURL string `mapstructure:"database_url"`

	// ClientsPath points at the client-profile ini file.
	ClientsPath string `mapstructure:"clients_path"`

	// Archive configures report snapshots to S3-compatible storage.
	// Disabled when the endpoint is empty.
	Archive ArchiveConfig `mapstructure:"archive"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("addr", "localhost:8080")
	v.SetDefault("clients_path", "clients.ini")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
