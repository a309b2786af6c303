package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Store backends selectable via STORE_BACKEND.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	Addr         string `yaml:"addr"`
	DataDir      string `yaml:"data_dir"`
	StoreBackend string `yaml:"store_backend"`
	DatabaseURL  string `yaml:"database_url"`
}

// Load builds the configuration from defaults, then an optional YAML
// file named by CONFIG_FILE, then environment variables. Environment
// wins over the file.
func Load() *Config {
	config := &Config{
		Addr:         ":8080",
		DataDir:      "data",
		StoreBackend: BackendFile,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			// A malformed file is ignored; env and defaults still apply.
			_ = yaml.Unmarshal(data, config)
		}
	}

	config.Addr = getEnv("ADDR", config.Addr)
	config.DataDir = getEnv("DATA_DIR", config.DataDir)
	config.StoreBackend = getEnv("STORE_BACKEND", config.StoreBackend)
	config.DatabaseURL = getEnv("DATABASE_URL", config.DatabaseURL)

	return config
}

// Validate checks the configuration for values the server cannot start
// with.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendFile:
		if c.DataDir == "" {
			return fmt.Errorf("DATA_DIR must not be empty for the file backend")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
	if c.Addr == "" {
		return fmt.Errorf("ADDR must not be empty")
	}
	return nil
}

func LoadAndValidate() (*Config, error) {
	config := Load()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
