// FILE: config_test.go
package taglog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig verifies the built-in defaults
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CompileFloor, cfg.Level, "default threshold admits everything compiled in")
	assert.Equal(t, "", cfg.TagPrefix)
	assert.Equal(t, defaultFormat, cfg.Format)
	assert.True(t, cfg.ShowTimestamp)
	assert.Equal(t, time.RFC3339Nano, cfg.TimestampFormat)
	assert.Equal(t, defaultMaxLineBytes, cfg.MaxLineBytes)
	assert.False(t, cfg.ExitOnFatal)

	require.NoError(t, cfg.validate())
}

// TestConfigValidation exercises the validation rules
func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"compact format", func(c *Config) { c.Format = FormatCompact }, false},
		{"unknown format", func(c *Config) { c.Format = "json" }, true},
		{"empty timestamp format", func(c *Config) { c.TimestampFormat = " " }, true},
		{"timestamp format irrelevant when hidden", func(c *Config) {
			c.ShowTimestamp = false
			c.TimestampFormat = ""
		}, false},
		{"max line too small", func(c *Config) { c.MaxLineBytes = minLineBytes - 1 }, true},
		{"threshold below floor allowed", func(c *Config) { c.Level = CompileFloor - 100 }, false},
		{"threshold none allowed", func(c *Config) { c.Level = LevelNone }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestConfigClone verifies Clone yields an independent copy
func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TagPrefix = "APP"

	clone := cfg.Clone()
	clone.TagPrefix = "OTHER"

	assert.Equal(t, "APP", cfg.TagPrefix)
	assert.Equal(t, "OTHER", clone.TagPrefix)
}

// TestNewConfigFromDefaults applies override maps over the defaults
func TestNewConfigFromDefaults(t *testing.T) {
	cfg, err := NewConfigFromDefaults(map[string]any{
		"level":          LevelWarn,
		"tag_prefix":     "APP",
		"format":         FormatCompact,
		"show_timestamp": false,
	})
	require.NoError(t, err)

	assert.Equal(t, LevelWarn, cfg.Level)
	assert.Equal(t, "APP", cfg.TagPrefix)
	assert.Equal(t, FormatCompact, cfg.Format)
	assert.False(t, cfg.ShowTimestamp)

	_, err = NewConfigFromDefaults(map[string]any{"unknown_key": 1})
	assert.Error(t, err)

	_, err = NewConfigFromDefaults(map[string]any{"level": "not an int"})
	assert.Error(t, err)
}

// TestNewConfigFromFile loads TOML configuration over the defaults
func TestNewConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taglog.toml")

	content := `
[taglog]
  level = 5
  tag_prefix = "APP"
  default_tag = "MAIN"
  format = "compact"
  show_timestamp = false
  max_line_bytes = 256
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, LevelError, cfg.Level)
	assert.Equal(t, "APP", cfg.TagPrefix)
	assert.Equal(t, "MAIN", cfg.DefaultTag)
	assert.Equal(t, FormatCompact, cfg.Format)
	assert.False(t, cfg.ShowTimestamp)
	assert.Equal(t, int64(256), cfg.MaxLineBytes)
}

// TestNewConfigFromFileMissing falls back to defaults when the file is absent
func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, *DefaultConfig(), *cfg)
}

// TestNewConfigFromFileInvalid rejects configurations that fail validation
func TestNewConfigFromFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taglog.toml")

	content := `
[taglog]
  format = "xml"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewConfigFromFile(path)
	assert.Error(t, err)
}
