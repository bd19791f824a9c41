// FILE: config.go
package taglog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values
type Config struct {
	// Filtering
	Level int64 `toml:"level"` // Runtime output threshold

	// Tagging
	TagPrefix  string `toml:"tag_prefix"`  // Joined to call-site tags with '.'
	DefaultTag string `toml:"default_tag"` // Used by untagged calls

	// Formatting
	Format          string `toml:"format"` // "verbose" or "compact"
	ShowTimestamp   bool   `toml:"show_timestamp"`
	TimestampFormat string `toml:"timestamp_format"`
	MaxLineBytes    int64  `toml:"max_line_bytes"` // Lines beyond this are cut, not dropped

	// Fatal behavior
	ExitOnFatal bool `toml:"exit_on_fatal"` // Run the fatal handler after Fatalf dispatch

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write internal errors to stderr
}

// defaultConfig is the single source for all configurable default values.
// Level starts at the compile-time floor, which admits everything that was
// compiled in. Format and DefaultTag defaults are fixed at build time.
var defaultConfig = Config{
	Level:                  compileFloor,
	TagPrefix:              "",
	DefaultTag:             buildDefaultTag,
	Format:                 defaultFormat,
	ShowTimestamp:          true,
	TimestampFormat:        time.RFC3339Nano,
	MaxLineBytes:           defaultMaxLineBytes,
	ExitOnFatal:            false,
	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("taglog.", *cfg); err != nil {
		return nil, fmt.Errorf("taglog: failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("taglog: failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "taglog.", cfg); err != nil {
		return nil, fmt.Errorf("taglog: failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("taglog: failed to apply overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Format != FormatVerbose && c.Format != FormatCompact {
		return fmtErrorf("invalid format: '%s' (use verbose or compact)", c.Format)
	}

	if c.ShowTimestamp && strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty when show_timestamp is set")
	}

	if c.MaxLineBytes < minLineBytes {
		return fmtErrorf("max_line_bytes must be at least %d: %d", minLineBytes, c.MaxLineBytes)
	}

	// Any int64 is a valid threshold; values below the compile-time floor
	// are resolved deterministically (the floor always wins).
	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
