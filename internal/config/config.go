package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for its configuration file.
const DefaultPath = ".aoc/config.yaml"

// ErrNoSession is returned when no session token is configured.
var ErrNoSession = errors.New("no session token (set AOC_SESSION or write it to the session file)")

// Config holds all aoc configuration.
type Config struct {
	// Puzzle year used when fetching inputs
	Year int `yaml:"year"`

	// Directory holding dayNN.txt input files
	InputDir string `yaml:"input_dir"`

	// File holding the session cookie value
	SessionFile string `yaml:"session_file"`

	// Session overrides SessionFile; only set from the environment.
	Session string `yaml:"-"`

	// Parallel jobs (0 = GOMAXPROCS)
	Workers int `yaml:"workers"`

	// Overall deadline for a run
	Timeout string `yaml:"timeout"`

	History HistoryConfig `yaml:"history"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// HistoryConfig configures the answer history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// FetchConfig configures input downloads.
type FetchConfig struct {
	BaseURL  string `yaml:"base_url"`
	Attempts int    `yaml:"attempts"`
	Delay    string `yaml:"delay"`   // between attempts
	Timeout  string `yaml:"timeout"` // per request
}

// WatchConfig configures the input watcher.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Year:        2024,
		InputDir:    "inputs",
		SessionFile: ".aoc/session",
		Workers:     0,
		Timeout:     "5m",

		History: HistoryConfig{
			Enabled: true,
			Path:    ".aoc/history.db",
		},

		Fetch: FetchConfig{
			BaseURL:  "https://adventofcode.com",
			Attempts: 3,
			Delay:    "2s",
			Timeout:  "30s",
		},

		Watch: WatchConfig{
			Debounce: "200ms",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if s := os.Getenv("AOC_SESSION"); s != "" {
		c.Session = strings.TrimSpace(s)
	}
	if dir := os.Getenv("AOC_INPUT_DIR"); dir != "" {
		c.InputDir = dir
	}
	if w := os.Getenv("AOC_WORKERS"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return fmt.Errorf("invalid AOC_WORKERS %q: %w", w, err)
		}
		c.Workers = n
	}
	return nil
}

// SessionToken returns the session cookie, preferring the environment over
// the session file.
func (c *Config) SessionToken() (string, error) {
	if c.Session != "" {
		return c.Session, nil
	}
	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to read session file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// GetTimeout returns the run deadline as a duration.
func (c *Config) GetTimeout() time.Duration {
	return parseDuration(c.Timeout, 5*time.Minute)
}

// GetFetchDelay returns the pause between download attempts.
func (c *Config) GetFetchDelay() time.Duration {
	return parseDuration(c.Fetch.Delay, 2*time.Second)
}

// GetFetchTimeout returns the per-request download timeout.
func (c *Config) GetFetchTimeout() time.Duration {
	return parseDuration(c.Fetch.Timeout, 30*time.Second)
}

// GetDebounce returns the watcher's quiet period.
func (c *Config) GetDebounce() time.Duration {
	return parseDuration(c.Watch.Debounce, 200*time.Millisecond)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Year < 2015 {
		return fmt.Errorf("invalid year %d (puzzles start in 2015)", c.Year)
	}
	if c.InputDir == "" {
		return errors.New("input_dir must not be empty")
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers %d (want 0 or more)", c.Workers)
	}
	if c.Fetch.Attempts < 1 {
		return fmt.Errorf("invalid fetch attempts %d (want at least 1)", c.Fetch.Attempts)
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history is enabled but history.path is empty")
	}
	for name, v := range map[string]string{
		"timeout":        c.Timeout,
		"fetch.delay":    c.Fetch.Delay,
		"fetch.timeout":  c.Fetch.Timeout,
		"watch.debounce": c.Watch.Debounce,
	} {
		if v == "" {
			continue
		}
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
	}
	return c.Logging.Validate()
}
