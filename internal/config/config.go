// Package config provides configuration management for the chain viewer.
//
// Values come from built-in defaults, then an optional config.yaml in
// the config directory, then CHAINVIEW_* environment variables. A
// missing config file is not an error; the viewer never writes one.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Mr-Dark-debug/chainview/internal/loader"
	"github.com/Mr-Dark-debug/chainview/internal/nav"
	"github.com/Mr-Dark-debug/chainview/internal/viewport"
)

// Config holds all application configuration.
type Config struct {
	Data DataConfig `mapstructure:"data"`
	View ViewConfig `mapstructure:"view"`
	Log  LogConfig  `mapstructure:"log"`
}

// DataConfig locates the options chain snapshot.
type DataConfig struct {
	Path string `mapstructure:"path"`
}

// ViewConfig holds navigation and display settings.
type ViewConfig struct {
	Variant       string `mapstructure:"variant"` // scroll, tabs
	ShowGreeks    bool   `mapstructure:"show_greeks"`
	VisibleWindow int    `mapstructure:"visible_window"`
	PageStep      int    `mapstructure:"page_step"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "chainview")
	}
	return filepath.Join(home, ".config", "chainview")
}

// DefaultLogFile returns the log file used by --debug when log.file is
// not set. Without either nothing is written.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "chainview.log"
	}
	return filepath.Join(dir, "chainview", "chainview.log")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.path", loader.DefaultPath)

	v.SetDefault("view.variant", string(nav.VariantScroll))
	v.SetDefault("view.show_greeks", true)
	v.SetDefault("view.visible_window", viewport.DefaultVisibleWindow)
	v.SetDefault("view.page_step", nav.DefaultPageStep)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 14)
}

// Load reads configuration from configDir. If configDir is empty the
// default directory is used.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("CHAINVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config in %s: %w", configDir, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := nav.ParseVariant(c.View.Variant); err != nil {
		return err
	}
	if c.View.VisibleWindow < 1 {
		return fmt.Errorf("view.visible_window must be positive, got %d", c.View.VisibleWindow)
	}
	if c.View.PageStep < 1 {
		return fmt.Errorf("view.page_step must be positive, got %d", c.View.PageStep)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", c.Log.Level)
	}
	return nil
}

// Variant returns the parsed navigation variant.
func (c *Config) Variant() nav.Variant {
	v, err := nav.ParseVariant(c.View.Variant)
	if err != nil {
		return nav.VariantScroll
	}
	return v
}
