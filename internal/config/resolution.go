package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/dkoosis/hostcolor/internal/logging"
	"github.com/dkoosis/hostcolor/pkg/outercolor"
)

// Source names recorded on ResolvedConfig.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	Timeout   time.Duration
	WatchFile string
	NoSignal  bool
	NoColor   bool
	LogLevel  string
	Debug     bool

	// Flags to track if they were explicitly set by the user
	TimeoutSet   bool
	WatchFileSet bool
	NoSignalSet  bool
	NoColorSet   bool
	LogLevelSet  bool
	DebugSet     bool
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Timeout      time.Duration
	PollInterval time.Duration
	RetryDelay   time.Duration
	FallbackFG   outercolor.RGB
	FallbackBG   outercolor.RGB
	WatchFile    string
	Signal       bool
	LogLevel     slog.Level
	NoColor      bool

	// ConfigPath is the file that was loaded, if any.
	ConfigPath string

	// Resolution metadata (for debugging)
	TimeoutSource   string
	WatchFileSource string
	SignalSource    string
	LogLevelSource  string
	NoColorSource   string
}

// ResolveConfig resolves configuration from all sources.
// Priority: CLI > env > file > default.
//
// A broken config file is not fatal: the defaults are used and the load error
// is returned alongside a usable config so the caller can log it.
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	appCfg, loadErr := LoadConfig()
	fileSource := SourceDefault
	if appCfg.Path != "" {
		fileSource = SourceFile
	}

	resolved := &ResolvedConfig{
		Timeout:         appCfg.Timeout,
		PollInterval:    appCfg.PollInterval,
		RetryDelay:      appCfg.RetryDelay,
		WatchFile:       appCfg.WatchFile,
		Signal:          appCfg.Signal == nil || *appCfg.Signal,
		NoColor:         appCfg.NoColor,
		ConfigPath:      appCfg.Path,
		TimeoutSource:   fileSource,
		WatchFileSource: fileSource,
		SignalSource:    fileSource,
		LogLevelSource:  fileSource,
		NoColorSource:   fileSource,
	}

	var err error
	if resolved.FallbackFG, err = outercolor.ParseHex(appCfg.FallbackFG); err != nil {
		return nil, fmt.Errorf("fallback_fg: %w", err)
	}
	if resolved.FallbackBG, err = outercolor.ParseHex(appCfg.FallbackBG); err != nil {
		return nil, fmt.Errorf("fallback_bg: %w", err)
	}

	// Timeout: CLI > ENV > file > default
	if cliFlags.TimeoutSet {
		resolved.Timeout = cliFlags.Timeout
		resolved.TimeoutSource = SourceCLI
	} else if d, ok, err := getEnvDuration("HOSTCOLOR_TIMEOUT"); err != nil {
		return nil, err
	} else if ok {
		resolved.Timeout = d
		resolved.TimeoutSource = SourceEnv
	}

	// WatchFile: CLI > ENV > file
	if cliFlags.WatchFileSet {
		resolved.WatchFile = cliFlags.WatchFile
		resolved.WatchFileSource = SourceCLI
	} else if v := os.Getenv("HOSTCOLOR_WATCH_FILE"); v != "" {
		resolved.WatchFile = v
		resolved.WatchFileSource = SourceEnv
	}

	// Signal: CLI > ENV > file > default
	if cliFlags.NoSignalSet {
		resolved.Signal = !cliFlags.NoSignal
		resolved.SignalSource = SourceCLI
	} else if b := getEnvBool("HOSTCOLOR_SIGNAL"); b != nil {
		resolved.Signal = *b
		resolved.SignalSource = SourceEnv
	}

	// NoColor: CLI > ENV > file > default. NO_COLOR counts when present at all.
	if cliFlags.NoColorSet {
		resolved.NoColor = cliFlags.NoColor
		resolved.NoColorSource = SourceCLI
	} else if b := getEnvBool("HOSTCOLOR_NO_COLOR"); b != nil {
		resolved.NoColor = *b
		resolved.NoColorSource = SourceEnv
	} else if _, ok := os.LookupEnv("NO_COLOR"); ok {
		resolved.NoColor = true
		resolved.NoColorSource = SourceEnv
	}

	// Log level: --debug > --log-level > HOSTCOLOR_DEBUG > HOSTCOLOR_LOG_LEVEL > file > default
	levelName := appCfg.LogLevel
	switch {
	case cliFlags.DebugSet && cliFlags.Debug:
		levelName = "debug"
		resolved.LogLevelSource = SourceCLI
	case cliFlags.LogLevelSet:
		levelName = cliFlags.LogLevel
		resolved.LogLevelSource = SourceCLI
	case os.Getenv("HOSTCOLOR_DEBUG") != "":
		levelName = "debug"
		resolved.LogLevelSource = SourceEnv
	case os.Getenv("HOSTCOLOR_LOG_LEVEL") != "":
		levelName = os.Getenv("HOSTCOLOR_LOG_LEVEL")
		resolved.LogLevelSource = SourceEnv
	}
	if resolved.LogLevel, err = logging.ParseLevel(levelName); err != nil {
		return nil, err
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return resolved, loadErr
}

// EngineConfig converts the resolved timings into engine settings.
func (c *ResolvedConfig) EngineConfig(logger *slog.Logger) outercolor.EngineConfig {
	return outercolor.EngineConfig{
		Timeout:      c.Timeout,
		PollInterval: c.PollInterval,
		RetryDelay:   c.RetryDelay,
		Logger:       logger,
	}
}

// NotifierFactory builds the theme-change sources selected by the config:
// SIGUSR1 when Signal is set, plus a FileNotifier when WatchFile is set. A
// watch file that cannot be watched is logged and skipped so the signal
// source keeps working.
func (c *ResolvedConfig) NotifierFactory(logger *slog.Logger) outercolor.NotifierFactory {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func() (outercolor.Notifier, error) {
		var sources []outercolor.Notifier
		if c.Signal {
			n, err := outercolor.NewSignalNotifier()
			if err != nil {
				return nil, err
			}
			sources = append(sources, n)
		}
		if c.WatchFile != "" {
			fn, err := outercolor.NewFileNotifier(c.WatchFile, logger)
			if err != nil {
				logger.Warn("watch file unavailable", "path", c.WatchFile, "error", err)
			} else {
				sources = append(sources, fn)
			}
		}
		switch len(sources) {
		case 0:
			return outercolor.NopNotifier(), nil
		case 1:
			return sources[0], nil
		}
		return outercolor.NewMultiNotifier(sources...), nil
	}
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

// getEnvDuration reads a Go duration from key. ok is false when the variable is unset.
func getEnvDuration(key string) (time.Duration, bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", key, err)
	}
	return d, true, nil
}

// validateResolvedConfig validates the resolved configuration and returns errors for invalid states.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %s", cfg.Timeout)
	}
	if cfg.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got: %s", cfg.PollInterval)
	}
	if cfg.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must not be negative, got: %s", cfg.RetryDelay)
	}
	return nil
}
