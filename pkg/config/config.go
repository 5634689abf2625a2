// Package config holds the process-wide options that shape how
// assertions render and report failures. Options are resolved from
// built-in defaults, an optional YAML file, and FLUENT_* environment
// variables, in that order.
package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"digital.vasic.fluentassertions/pkg/env"
	"digital.vasic.fluentassertions/pkg/logging"
)

// Failure modes.
const (
	// FailFatal reports the failure and stops the test.
	FailFatal = "fatal"
	// FailContinue reports the failure and lets the test go on.
	FailContinue = "continue"
)

// Log formats.
const (
	LogNone    = "none"
	LogConsole = "console"
	LogJSON    = "json"
	// LogBoth writes to the console and to JSON Lines.
	LogBoth = "both"
)

// FileEnv names the variable that points at a YAML config file.
var FileEnv = env.Setting("config")

// Config holds library-wide options.
type Config struct {
	// ContextRadius is the number of runes shown on each side of
	// a string mismatch.
	ContextRadius int `yaml:"context_radius" json:"context_radius"`

	// MaxValueLength truncates rendered values in failure
	// messages. Zero disables truncation.
	MaxValueLength int `yaml:"max_value_length" json:"max_value_length"`

	// FailureMode is FailFatal or FailContinue.
	FailureMode string `yaml:"failure_mode" json:"failure_mode"`

	// LogFormat selects the assertion logger: LogNone,
	// LogConsole, LogJSON or LogBoth.
	LogFormat string `yaml:"log_format" json:"log_format"`

	// LogLevel is the minimum level written by the logger.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// LogPath is the JSON log destination. Empty means stdout.
	LogPath string `yaml:"log_path" json:"log_path"`

	// AssertionLogPath receives one JSON record per assertion
	// when LogFormat is LogJSON.
	AssertionLogPath string `yaml:"assertion_log_path" json:"assertion_log_path"`

	// NoColor disables colored console logs.
	NoColor bool `yaml:"no_color" json:"no_color"`
}

// Default returns the built-in options.
func Default() Config {
	return Config{
		ContextRadius:  5,
		MaxValueLength: 2000,
		FailureMode:    FailFatal,
		LogFormat:      LogNone,
		LogLevel:       "info",
	}
}

// Validate checks enumerated fields and numeric bounds.
func (c Config) Validate() error {
	if c.ContextRadius < 0 {
		return fmt.Errorf("context_radius must not be negative: %d", c.ContextRadius)
	}
	if c.MaxValueLength < 0 {
		return fmt.Errorf("max_value_length must not be negative: %d", c.MaxValueLength)
	}
	switch c.FailureMode {
	case FailFatal, FailContinue:
	default:
		return fmt.Errorf("unknown failure_mode: %q", c.FailureMode)
	}
	switch c.LogFormat {
	case LogNone, LogConsole, LogJSON, LogBoth:
	default:
		return fmt.Errorf("unknown log_format: %q", c.LogFormat)
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log_level: %q", c.LogLevel)
	}
	return nil
}

// LoadFile overlays the YAML (or JSON) document at path onto c.
// Keys absent from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays FLUENT_* variables from the loader onto c.
func (c *Config) ApplyEnv(l env.Loader) error {
	var err error

	if c.ContextRadius, err = l.GetInt(env.Setting("context_radius"), c.ContextRadius); err != nil {
		return err
	}
	if c.MaxValueLength, err = l.GetInt(env.Setting("max_value_length"), c.MaxValueLength); err != nil {
		return err
	}
	if c.NoColor, err = l.GetBool(env.Setting("no_color"), c.NoColor); err != nil {
		return err
	}

	c.FailureMode = l.GetWithDefault(env.Setting("failure_mode"), c.FailureMode)
	c.LogFormat = l.GetWithDefault(env.Setting("log_format"), c.LogFormat)
	c.LogLevel = l.GetWithDefault(env.Setting("log_level"), c.LogLevel)
	c.LogPath = l.GetWithDefault(env.Setting("log_path"), c.LogPath)
	c.AssertionLogPath = l.GetWithDefault(env.Setting("assertion_log_path"), c.AssertionLogPath)

	return nil
}

// Load resolves options from defaults, the file named by
// FLUENT_CONFIG (if any), and the environment.
func Load(l env.Loader) (Config, error) {
	c := Default()

	if path := l.Get(FileEnv); path != "" {
		if err := c.LoadFile(path); err != nil {
			return c, err
		}
	}
	if err := c.ApplyEnv(l); err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid configuration: %w", err)
	}

	return c, nil
}

// NewLogger builds the logger selected by LogFormat.
func (c Config) NewLogger() (logging.Logger, error) {
	level, _ := logging.ParseLevel(c.LogLevel)

	console := func() logging.Logger {
		return logging.NewConsoleLogger(
			level == logging.LevelDebug,
			logging.WithNoColor(c.NoColor),
		)
	}
	jsonLines := func() (logging.Logger, error) {
		l, err := logging.NewJSONLogger(logging.LoggerConfig{
			OutputPath:   c.LogPath,
			AssertionLog: c.AssertionLogPath,
			Level:        level,
		})
		if err != nil {
			return nil, err
		}
		return l, nil
	}

	switch c.LogFormat {
	case LogConsole:
		return console(), nil
	case LogJSON:
		return jsonLines()
	case LogBoth:
		j, err := jsonLines()
		if err != nil {
			return nil, err
		}
		return logging.NewMultiLogger(console(), j), nil
	default:
		return logging.NullLogger{}, nil
	}
}

var (
	mu      sync.RWMutex
	once    sync.Once
	current = Default()
	logger  logging.Logger = logging.NullLogger{}
)

func initFromEnv() {
	c, err := Load(env.NewLoader())
	if err != nil {
		fmt.Fprintf(os.Stderr, "fluentassertions: %v; using defaults\n", err)
		c = Default()
	}
	l, err := c.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fluentassertions: %v; logging disabled\n", err)
		l = logging.NullLogger{}
	}

	mu.Lock()
	current, logger = c, l
	mu.Unlock()
}

// Current returns the active options. The first call resolves
// them from the environment.
func Current() Config {
	once.Do(initFromEnv)
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// CurrentLogger returns the logger built from the active options.
func CurrentLogger() logging.Logger {
	once.Do(initFromEnv)
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Set replaces the active options and logger. The returned
// function restores the previous ones, which suits defer in tests.
func Set(c Config, l logging.Logger) (restore func()) {
	once.Do(initFromEnv)
	if l == nil {
		l = logging.NullLogger{}
	}

	mu.Lock()
	prevConfig, prevLogger := current, logger
	current, logger = c, l
	mu.Unlock()

	return func() {
		mu.Lock()
		current, logger = prevConfig, prevLogger
		mu.Unlock()
	}
}
