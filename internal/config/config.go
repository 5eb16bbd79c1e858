package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	apperrors "userdeck/internal/errors"
)

// DefaultEndpoint is the public random-user generator
const DefaultEndpoint = "https://randomuser.me/api/"

// Config represents the application configuration
type Config struct {
	Version    int          `toml:"version"`
	Source     SourceConfig `toml:"source"`
	Log        LogConfig    `toml:"log"`
	UISettings UISettings   `toml:"ui"`
}

// SourceConfig describes where the user batch comes from
type SourceConfig struct {
	Endpoint       string `toml:"endpoint" env:"USERDECK_ENDPOINT" validate:"required,url"`
	Seed           string `toml:"seed" env:"USERDECK_SEED" validate:"omitempty,printascii"`
	TimeoutSeconds int    `toml:"timeout_seconds" env:"USERDECK_TIMEOUT_SECONDS" validate:"min=1,max=300"`
}

// Timeout returns the request timeout as a duration
func (s SourceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// LogConfig controls the log file
type LogConfig struct {
	File  string `toml:"file" env:"USERDECK_LOG_FILE"`
	Level string `toml:"level" env:"USERDECK_LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpBar bool   `toml:"show_help_bar"`
	DateLayout  string `toml:"date_layout" validate:"required"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Validate(cfg *Config) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
	validate *validator.Validate
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "userdeck", "config.toml")
}

// NewConfigService creates a config service for path ("" means DefaultPath)
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		filePath: path,
		validate: validator.New(),
	}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the config file, writing defaults first if it does not exist,
// then applies .env and environment overrides.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return nil, err
		}
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cs.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path, filling any
// missing keys from the defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to parse config", err).WithContext("path", path)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks field constraints
func (cs *configService) Validate(cfg *Config) error {
	if err := cs.validate.Struct(cfg); err != nil {
		return apperrors.NewConfigError("invalid configuration", err)
	}
	return nil
}

// ApplyEnv loads a .env file from the working directory if present and
// overrides config fields from USERDECK_* variables.
func ApplyEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperrors.NewConfigError("failed to read .env", err)
	}
	if err := env.Parse(cfg); err != nil {
		return apperrors.NewConfigError("failed to read environment", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Source: SourceConfig{
			Endpoint:       DefaultEndpoint,
			TimeoutSeconds: 10,
		},
		Log: LogConfig{
			File:  "userdeck.log",
			Level: "info",
		},
		UISettings: UISettings{
			ShowHelpBar: true,
			DateLayout:  "2006-01-02",
		},
	}
}
