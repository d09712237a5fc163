// Package config handles configuration loading and merging for hostcolor.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--timeout, --watch-file, --no-signal, --no-color, --log-level)
//  2. Environment variables (HOSTCOLOR_TIMEOUT, HOSTCOLOR_WATCH_FILE, HOSTCOLOR_LOG_LEVEL, NO_COLOR)
//  3. YAML config file (.hostcolor.yaml in local directory or ~/.config/hostcolor/.hostcolor.yaml)
//  4. Hardcoded defaults
//
// # Key Configuration Options
//
//   - timeout: how long to wait for each OSC 10/11 reply (default 100ms)
//   - poll_interval / retry_delay: read loop pacing (10ms / 5ms)
//   - fallback_fg / fallback_bg: colors used when the terminal stays silent
//   - watch_file: a file whose changes count as a theme change
//   - signal: listen for SIGUSR1 theme-change nudges (unix only)
//
// # Environment Variables
//
//   - HOSTCOLOR_TIMEOUT: Go duration, e.g. "150ms"
//   - HOSTCOLOR_WATCH_FILE: path to watch
//   - HOSTCOLOR_SIGNAL: "true"/"false"
//   - HOSTCOLOR_LOG_LEVEL: debug, info, warn, error
//   - HOSTCOLOR_DEBUG: any non-empty value forces debug logging
//   - NO_COLOR: disables colored output
package config
