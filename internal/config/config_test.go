package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bjaus/sheet"
	"github.com/bjaus/sheet/internal/config"
	"github.com/bjaus/sheet/internal/logging"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		Dataset:  "",
		Format:   sheet.Table,
		Border:   sheet.BorderHeavy,
		Width:    sheet.WidthDisplay,
		LogLevel: zapcore.WarnLevel,
	}, cfg)
}

func TestInitReadsFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "dataset: /tmp/chips.yaml\nformat: markdown\nborder: ascii\nwidth: bytes\nlog_level: debug\n")

	v := viper.New()
	require.NoError(t, config.Init(v, path))
	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/chips.yaml", cfg.Dataset)
	assert.Equal(t, sheet.Markdown, cfg.Format)
	assert.Equal(t, sheet.BorderASCII, cfg.Border)
	assert.Equal(t, sheet.WidthBytes, cfg.Width)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
}

func TestInitMissingExplicitFile(t *testing.T) {
	t.Parallel()
	v := viper.New()
	err := config.Init(v, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestInitWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	v := viper.New()
	require.NoError(t, config.Init(v, ""))
	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, sheet.Table, cfg.Format)
}

func TestInitEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "border: ascii\n")
	t.Setenv("XCHIP_BORDER", "double")
	t.Setenv("XCHIP_LOG_LEVEL", "error")

	v := viper.New()
	require.NoError(t, config.Init(v, path))
	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, sheet.BorderDouble, cfg.Border)
	assert.Equal(t, zapcore.ErrorLevel, cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		key     string
		value   string
		wantErr error
	}{
		"format":    {key: config.KeyFormat, value: "xml", wantErr: sheet.ErrUnsupportedFormat},
		"border":    {key: config.KeyBorder, value: "dotted", wantErr: sheet.ErrUnsupportedBorder},
		"width":     {key: config.KeyWidth, value: "runes", wantErr: sheet.ErrUnsupportedWidthMode},
		"log level": {key: config.KeyLogLevel, value: "verbos", wantErr: logging.ErrInvalidLevel},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v := viper.New()
			config.SetDefaults(v)
			v.Set(tt.key, tt.value)
			_, err := config.Load(v)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{Border: sheet.BorderRounded, Width: sheet.WidthBytes}
	s := sheet.New()
	s.SetWidthMode(sheet.WidthDisplay)
	cfg.Apply(s)
	assert.Equal(t, sheet.BorderRounded, s.Border())
	assert.Equal(t, sheet.WidthBytes, s.WidthMode())
}

func TestDir(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "xchip", filepath.Base(config.Dir()))
}

func TestDirUnknownHome(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Chdir(t.TempDir())

	assert.Empty(t, config.Dir())

	v := viper.New()
	require.NoError(t, config.Init(v, ""))
	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, sheet.Table, cfg.Format)
}
