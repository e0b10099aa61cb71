package internal

import (
	"fmt"
	"log/slog"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Data    DataConfig        `yaml:"data"`
	Catalog CatalogConfig     `yaml:"catalog"`
	Charts  ChartsConfig      `yaml:"charts"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Data.Validate(); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if err := c.Charts.Validate(); err != nil {
		return fmt.Errorf("charts: %w", err)
	}
	return nil
}

// ApplicationConfig holds application-level configuration.
//
// Logs go to LogFile when set and to stderr otherwise, so they never mix
// with the menu on stdout.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	LogFile  string     `yaml:"log_file"`
}

// DataConfig holds the path to the data directory.
type DataConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the data configuration.
func (c *DataConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// CatalogConfig controls the prompts and emotion cards tables.
type CatalogConfig struct {
	// Watch reloads prompts.json and emotion_cards.json when they change on disk.
	Watch bool `yaml:"watch"`
}

// ChartsConfig controls chart rendering.
type ChartsConfig struct {
	Dir      string  `yaml:"dir"`
	Open     bool    `yaml:"open"`
	WidthCM  float64 `yaml:"width_cm"`
	HeightCM float64 `yaml:"height_cm"`
}

// Validate validates the charts configuration.
func (c *ChartsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.WidthCM, validation.Required, validation.Min(4.0), validation.Max(100.0)),
		validation.Field(&c.HeightCM, validation.Required, validation.Min(4.0), validation.Max(100.0)),
	)
}

// ChartDir returns the chart output directory, defaulting to <data>/charts.
func (c *Config) ChartDir() string {
	if c.Charts.Dir != "" {
		return c.Charts.Dir
	}
	return filepath.Join(c.Data.Path, "charts")
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		Data: DataConfig{
			Path: "./data",
		},
		Charts: ChartsConfig{
			WidthCM:  16,
			HeightCM: 10,
		},
	}
}
