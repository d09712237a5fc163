package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"HOSTCOLOR_TIMEOUT", "HOSTCOLOR_WATCH_FILE", "HOSTCOLOR_SIGNAL",
	"HOSTCOLOR_NO_COLOR", "HOSTCOLOR_LOG_LEVEL", "HOSTCOLOR_DEBUG", "NO_COLOR",
}

// isolate moves the test into an empty working directory with an empty user
// config directory and no hostcolor environment. It returns the directory.
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tempDir, "home"))
	for _, k := range envKeys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
	return tempDir
}

func writeLocalConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write local config: %v", err)
	}
}

func TestGetConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	dir := isolate(t)
	writeLocalConfig(t, dir, "timeout: 50ms\n")

	assert.Equal(t, FileName, getConfigPath())
}

func TestGetConfigPath_UsesXDGPath_When_LocalMissing(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on linux")
	}
	dir := isolate(t)

	configHome := filepath.Join(dir, "xdg", "hostcolor")
	require.NoError(t, os.MkdirAll(configHome, 0o755))
	configPath := filepath.Join(configHome, FileName)
	require.NoError(t, os.WriteFile(configPath, []byte("timeout: 50ms\n"), 0o600))

	assert.Equal(t, configPath, getConfigPath())
}

func TestGetConfigPath_ReturnsEmpty_When_NoConfig(t *testing.T) {
	isolate(t)
	assert.Empty(t, getConfigPath())
}

func TestLoadConfig_ReturnsDefaults_When_NoFile(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, 100*time.Millisecond, cfg.Timeout)
	assert.Equal(t, "#353731", cfg.FallbackBG)
	assert.Empty(t, cfg.Path)
}

func TestLoadConfig_MergesFileOverDefaults(t *testing.T) {
	dir := isolate(t)
	writeLocalConfig(t, dir, `
timeout: 250ms
fallback_bg: "#002b36"
watch_file: /tmp/theme
signal: false
log_level: debug
no_color: true
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval, "unset keys keep defaults")
	assert.Equal(t, "#ffffff", cfg.FallbackFG)
	assert.Equal(t, "#002b36", cfg.FallbackBG)
	assert.Equal(t, "/tmp/theme", cfg.WatchFile)
	require.NotNil(t, cfg.Signal)
	assert.False(t, *cfg.Signal)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, FileName, cfg.Path)
}

func TestLoadConfig_ReturnsDefaultsAndError_When_YAMLInvalid(t *testing.T) {
	dir := isolate(t)
	writeLocalConfig(t, dir, "timeout: [not a duration\n")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
	assert.Equal(t, Defaults(), cfg)
}
