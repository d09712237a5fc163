// Package config loads hostcolor settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/hostcolor/pkg/outercolor"
)

// FileName is the config file looked up in the working directory and in the
// user config directory.
const FileName = ".hostcolor.yaml"

// AppConfig represents the contents of .hostcolor.yaml.
type AppConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	PollInterval time.Duration `yaml:"poll_interval"`
	RetryDelay   time.Duration `yaml:"retry_delay"`
	FallbackFG   string        `yaml:"fallback_fg"`
	FallbackBG   string        `yaml:"fallback_bg"`
	WatchFile    string        `yaml:"watch_file"`
	Signal       *bool         `yaml:"signal"`
	LogLevel     string        `yaml:"log_level"`
	NoColor      bool          `yaml:"no_color"`

	// Path is the file the values came from; empty when defaults were used.
	Path string `yaml:"-"`
}

// Constants for default values.
const (
	DefaultTimeout      = outercolor.DefaultTimeout
	DefaultPollInterval = outercolor.DefaultPollInterval
	DefaultRetryDelay   = outercolor.DefaultRetryDelay
	DefaultLogLevel     = "warn"
)

// Defaults returns the hardcoded configuration.
func Defaults() *AppConfig {
	signal := true
	return &AppConfig{
		Timeout:      DefaultTimeout,
		PollInterval: DefaultPollInterval,
		RetryDelay:   DefaultRetryDelay,
		FallbackFG:   outercolor.DefaultForeground.Hex(),
		FallbackBG:   outercolor.DefaultBackground.Hex(),
		Signal:       &signal,
		LogLevel:     DefaultLogLevel,
	}
}

// LoadConfig loads .hostcolor.yaml over the defaults. A missing file is not
// an error. A file that cannot be read or parsed yields the defaults together
// with the error so the caller can warn.
func LoadConfig() (*AppConfig, error) {
	appCfg := Defaults()

	configPath := getConfigPath()
	if configPath == "" {
		return appCfg, nil
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return appCfg, nil
		}
		return appCfg, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
		return appCfg, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}

	mergeFile(appCfg, &fileCfg)
	appCfg.Path = configPath
	return appCfg, nil
}

// mergeFile copies every value the file set onto base.
func mergeFile(base, file *AppConfig) {
	if file.Timeout != 0 {
		base.Timeout = file.Timeout
	}
	if file.PollInterval != 0 {
		base.PollInterval = file.PollInterval
	}
	if file.RetryDelay != 0 {
		base.RetryDelay = file.RetryDelay
	}
	if file.FallbackFG != "" {
		base.FallbackFG = file.FallbackFG
	}
	if file.FallbackBG != "" {
		base.FallbackBG = file.FallbackBG
	}
	if file.WatchFile != "" {
		base.WatchFile = file.WatchFile
	}
	if file.Signal != nil {
		base.Signal = file.Signal
	}
	if file.LogLevel != "" {
		base.LogLevel = file.LogLevel
	}
	base.NoColor = file.NoColor
}

// getConfigPath tries to find the .hostcolor.yaml configuration file.
// It checks the local directory first, then the user config directory.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "hostcolor", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
