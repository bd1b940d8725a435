package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Host       string `yaml:"host" env:"SERVER_HOST"`
		Port       string `yaml:"port" env:"SERVER_PORT"`
		MaxClients int    `yaml:"max_clients" env:"SERVER_MAX_CLIENTS"`
	} `yaml:"server"`

	Storage struct {
		DataDir string `yaml:"data_dir" env:"STORAGE_DATA_DIR"`
	} `yaml:"storage"`

	Admin struct {
		ID       string `yaml:"id" env:"ADMIN_ID"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD"`
	} `yaml:"admin"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables. A
// missing config file is not an error; defaults plus environment overrides
// apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Host = ""
	config.Server.Port = "8080"
	config.Server.MaxClients = 64

	config.Storage.DataDir = "data"

	// Matches the credentials the bundled client documentation ships with;
	// deployments override via config file or ADMIN_* env vars.
	config.Admin.ID = "admin"
	config.Admin.Password = "admin123"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Server.MaxClients <= 0 {
		return fmt.Errorf("max clients must be positive")
	}

	if config.Storage.DataDir == "" {
		return fmt.Errorf("storage data directory is required")
	}

	if config.Admin.ID == "" || config.Admin.Password == "" {
		return fmt.Errorf("admin credentials are required")
	}

	return nil
}

// ListenAddr returns the TCP address the server binds to.
func (c *Config) ListenAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}
