package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Figures FiguresConfig `yaml:"figures" envconfig:"FIGURES"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig describes the dataset to analyze.
// The path is an explicit required setting: there is deliberately no
// hardcoded fallback location.
type InputConfig struct {
	Path string `yaml:"path" envconfig:"PATH"`
}

// FiguresConfig describes where chart images are written
type FiguresConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR" default:"reports/figs"`
	DPI int    `yaml:"dpi" envconfig:"DPI" default:"140"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stderr"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/eda-report.log"`
}

// Load loads configuration from environment variables and an optional
// config file. Environment variables take precedence over file values.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom behaves like Load but reads the given config file path.
func LoadFrom(configFile string) (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("EDA", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Input.Path == "" {
		envConfig.Input.Path = fileConfig.Input.Path
	}
	if envConfig.Figures.Dir == "" || envConfig.Figures.Dir == defaultFiguresDir {
		if fileConfig.Figures.Dir != "" {
			envConfig.Figures.Dir = fileConfig.Figures.Dir
		}
	}
	if envConfig.Figures.DPI == 0 || envConfig.Figures.DPI == defaultChartDPI {
		if fileConfig.Figures.DPI != 0 {
			envConfig.Figures.DPI = fileConfig.Figures.DPI
		}
	}
	if fileConfig.Logging.Level != "" && envConfig.Logging.Level == "info" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Format != "" && envConfig.Logging.Format == "text" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if fileConfig.Logging.Output != "" && envConfig.Logging.Output == "stderr" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	return envConfig
}

// validate checks configuration values that would prevent a run entirely.
// The input path itself is validated later, after CLI flags are applied.
func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Output) {
	case "stdout", "stderr", "file", "both":
	default:
		return fmt.Errorf("invalid logging output: %s", c.Logging.Output)
	}

	if c.Figures.DPI <= 0 {
		return fmt.Errorf("figures dpi must be positive, got %d", c.Figures.DPI)
	}

	return nil
}

// ResolveInputPath returns the absolute input path for diagnostics
func (c *Config) ResolveInputPath() string {
	abs, err := filepath.Abs(c.Input.Path)
	if err != nil {
		return c.Input.Path
	}
	return abs
}
