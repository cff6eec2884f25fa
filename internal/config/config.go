package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Engine holds all configuration for a process hosting the rule engine.
type Engine struct {
	LogLevel string `yaml:"log_level"`

	// DataDir contains the catalog YAML files.
	DataDir string `yaml:"data_dir"`

	// Database is optional; guild bonuses come from it when enabled.
	Database DatabaseConfig `yaml:"database"`

	Gameplay Gameplay `yaml:"gameplay"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultEngine returns Engine config with sensible defaults.
func DefaultEngine() Engine {
	return Engine{
		LogLevel: "info",
		DataDir:  "data",
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "gamerule",
			Password: "gamerule",
			DBName:   "gamerule",
			SSLMode:  "disable",
		},
		Gameplay: DefaultGameplay(),
	}
}

// LoadEngine loads engine config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
