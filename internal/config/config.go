package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// Load reads configuration from an optional config.yaml plus environment
// variables. DATABASE_URL and HTTP_PORT are honored directly so the server
// keeps working with plain docker-compose style environments.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.url", "host=localhost user=postgres password=postgres dbname=dailydiet port=5432 sslmode=disable")

	// Read from environment variables (with priority)
	v.AutomaticEnv()
	v.SetEnvPrefix("DAILYDIET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Allow plain environment variable overrides
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		v.Set("database.url", dsn)
	}
	if port := os.Getenv("HTTP_PORT"); port != "" {
		v.Set("server.port", port)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}
