// Package env reads library settings from the process environment
// and optional .env files. Process variables take precedence over
// values loaded from files.
package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Prefix is prepended to every setting name looked up through
// Setting.
const Prefix = "FLUENT_"

// Loader defines the interface for environment variable management.
type Loader interface {
	// Load reads environment variables from a .env file.
	Load(filepath string) error
	// Get retrieves an environment variable value.
	Get(key string) string
	// GetWithDefault retrieves an environment variable with a default fallback.
	GetWithDefault(key, defaultValue string) string
	// GetBool parses a boolean variable, returning defaultValue when unset.
	GetBool(key string, defaultValue bool) (bool, error)
	// GetInt parses an integer variable, returning defaultValue when unset.
	GetInt(key string, defaultValue int) (int, error)
	// Set sets an environment variable for this loader only.
	Set(key, value string)
	// All returns all loaded environment variables.
	All() map[string]string
}

// DefaultLoader implements Loader with .env file support.
type DefaultLoader struct {
	mu     sync.RWMutex
	vars   map[string]string
	loaded bool
	lookup func(string) (string, bool)
}

// NewLoader creates a DefaultLoader backed by the process
// environment.
func NewLoader() *DefaultLoader {
	return &DefaultLoader{
		vars:   make(map[string]string),
		lookup: os.LookupEnv,
	}
}

// Setting returns the prefixed variable name for a setting, e.g.
// Setting("context_radius") is "FLUENT_CONTEXT_RADIUS".
func Setting(name string) string {
	return Prefix + strings.ToUpper(name)
}

func (l *DefaultLoader) Load(filepath string) error {
	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("open env file %s: %w", filepath, err)
	}
	defer file.Close()

	l.mu.Lock()
	defer l.mu.Unlock()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		// Remove surrounding quotes
		value = strings.Trim(value, `"'`)
		l.vars[key] = value
	}

	l.loaded = true
	return scanner.Err()
}

func (l *DefaultLoader) Get(key string) string {
	// OS env takes precedence
	if v, ok := l.lookup(key); ok && v != "" {
		return v
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.vars[key]
}

func (l *DefaultLoader) GetWithDefault(key, defaultValue string) string {
	if v := l.Get(key); v != "" {
		return v
	}
	return defaultValue
}

func (l *DefaultLoader) GetBool(key string, defaultValue bool) (bool, error) {
	v := l.Get(key)
	if v == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue, fmt.Errorf("parse %s as bool: %w", key, err)
	}
	return b, nil
}

func (l *DefaultLoader) GetInt(key string, defaultValue int) (int, error) {
	v := l.Get(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, fmt.Errorf("parse %s as int: %w", key, err)
	}
	return n, nil
}

func (l *DefaultLoader) Set(key, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.vars[key] = value
}

func (l *DefaultLoader) All() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make(map[string]string, len(l.vars))
	for k, v := range l.vars {
		result[k] = v
	}
	return result
}
