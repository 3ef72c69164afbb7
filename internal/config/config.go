// Package config loads CLI settings from defaults, a config file, XCHIP_*
// environment variables, and flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bjaus/sheet"
	"github.com/bjaus/sheet/internal/logging"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Configuration keys.
const (
	KeyConfig   = "config"
	KeyDataset  = "dataset"
	KeyFormat   = "format"
	KeyBorder   = "border"
	KeyWidth    = "width"
	KeyLogLevel = "log_level"
)

// EnvPrefix is prepended to every key to form its environment variable.
const EnvPrefix = "XCHIP"

// Config is the validated CLI configuration.
type Config struct {
	// Dataset is the path to a JSON or YAML chip dataset. Empty means the
	// embedded dataset.
	Dataset  string
	Format   sheet.Format
	Border   sheet.BorderStyle
	Width    sheet.WidthMode
	LogLevel zapcore.Level
}

// file mirrors the config file layout.
type file struct {
	Dataset  string `mapstructure:"dataset"`
	Format   string `mapstructure:"format"`
	Border   string `mapstructure:"border"`
	Width    string `mapstructure:"width"`
	LogLevel string `mapstructure:"log_level"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataset, "")
	v.SetDefault(KeyFormat, sheet.Table.String())
	v.SetDefault(KeyBorder, sheet.BorderHeavy.String())
	v.SetDefault(KeyWidth, sheet.WidthDisplay.String())
	v.SetDefault(KeyLogLevel, "warn")
}

// Dir returns the per-user directory searched for config.yaml, or "" when
// neither the user config dir nor the home dir is known.
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "xchip")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "xchip")
	}
	return ""
}

// Init prepares v: defaults, environment binding, and the config file. When
// path is empty, config.yaml is searched for in Dir(), when known, and the
// working directory, and a missing file is not an error. An explicit path must
// exist.
func Init(v *viper.Viper, path string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// e.g. XCHIP_LOG_LEVEL for log_level
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := Dir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load reads the settings from v and validates them.
func Load(v *viper.Viper) (*Config, error) {
	var f file
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	format, err := sheet.ParseFormat(f.Format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyFormat, err)
	}
	border, err := sheet.ParseBorder(f.Border)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyBorder, err)
	}
	width, err := sheet.ParseWidthMode(f.Width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyWidth, err)
	}
	level, err := logging.ParseLevel(f.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	return &Config{
		Dataset:  f.Dataset,
		Format:   format,
		Border:   border,
		Width:    width,
		LogLevel: level,
	}, nil
}

// Apply sets the configured border and width mode on s.
func (c *Config) Apply(s *sheet.Sheet) {
	s.SetBorder(c.Border)
	s.SetWidthMode(c.Width)
}
