// Package config holds the runtime configuration of the server
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultPort is used when PORT is not set
const DefaultPort = "3000"

// Config represents the server configuration
type Config struct {
	Port  string
	Debug bool
}

// Default returns the configuration used when no overrides are present
func Default() Config {
	return Config{
		Port:  DefaultPort,
		Debug: false,
	}
}

// Load reads an optional .env file and applies environment overrides
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := Default()

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Port = port
	}

	switch strings.ToLower(os.Getenv("DEBUG")) {
	case "true", "1":
		cfg.Debug = true
	}

	return &cfg, nil
}

// Addr returns the listen address for the configured port
func (c *Config) Addr() string {
	return ":" + c.Port
}
