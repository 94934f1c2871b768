package toml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderAppliesFileValuesAsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `version = 1

[api]
url = "https://mirror.example.test/www/accounts"
shape = "current"

[thresholds]
warning = 30
critical = 10

[output]
perfdata = true

[display]
timezone = "Europe/Stockholm"

[log]
level = "info"
`)
	cfg := viper.New()
	cfg.Set(KeyConfigPath, path)

	loader, err := NewLoader(cfg)
	require.NoError(t, err)
	assert.Equal(t, path, loader.Path())
	require.NoError(t, loader.Apply(cfg))

	assert.Equal(t, "https://mirror.example.test/www/accounts", cfg.GetString(KeyAPIURL))
	assert.Equal(t, "current", cfg.GetString(KeyAPIShape))
	assert.Equal(t, 30, cfg.GetInt(KeyThresholdsWarning))
	assert.Equal(t, 10, cfg.GetInt(KeyThresholdsCritical))
	assert.True(t, cfg.GetBool(KeyOutputPerfData))
	assert.Equal(t, "Europe/Stockholm", cfg.GetString(KeyDisplayTimezone))
	assert.Equal(t, "info", cfg.GetString(KeyLogLevel))
}

func TestLoaderKeepsExplicitValuesAndBuiltInDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `[thresholds]
warning = 30
`)
	cfg := viper.New()
	cfg.Set(KeyConfigPath, path)
	cfg.SetDefault(KeyThresholdsWarning, 14)
	cfg.SetDefault(KeyThresholdsCritical, 7)
	cfg.Set(KeyThresholdsWarning, 21)

	loader, err := NewLoader(cfg)
	require.NoError(t, err)
	require.NoError(t, loader.Apply(cfg))

	assert.Equal(t, 21, cfg.GetInt(KeyThresholdsWarning))
	assert.Equal(t, 7, cfg.GetInt(KeyThresholdsCritical))
}

func TestLoaderMissingDefaultFileIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := viper.New()
	cfg.SetDefault(KeyThresholdsWarning, 14)

	loader, err := NewLoader(cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "check_mullvad_account", "config.toml"), loader.Path())
	require.NoError(t, loader.Apply(cfg))
	assert.Equal(t, 14, cfg.GetInt(KeyThresholdsWarning))
}

func TestLoaderMissingExplicitFileFails(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set(KeyConfigPath, filepath.Join(t.TempDir(), "absent.toml"))

	loader, err := NewLoader(cfg)
	require.NoError(t, err)

	err = loader.Apply(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoaderRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set(KeyConfigPath, writeConfig(t, "version = 2\n"))

	loader, err := NewLoader(cfg)
	require.NoError(t, err)

	err = loader.Apply(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config schema version 2 (current 1)")
}

func TestLoaderRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set(KeyConfigPath, writeConfig(t, "[thresholds\nwarning = ="))

	loader, err := NewLoader(cfg)
	require.NoError(t, err)

	err = loader.Apply(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config file")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
