// FILE: format_test.go
package taglog

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFormatConfig() *Config {
	cfg := DefaultConfig()
	cfg.Format = FormatCompact
	cfg.ShowTimestamp = false
	return cfg
}

// TestRenderLine tests line assembly for the compact and verbose variants
func TestRenderLine(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("compact", func(t *testing.T) {
		cfg := testFormatConfig()
		line, truncated := renderLine(nil, cfg, timestamp, LevelInfo, "APP.NET", "", "conn from %s", []any{"10.0.0.1"})

		assert.Equal(t, "INFO APP.NET conn from 10.0.0.1\n", string(line))
		assert.False(t, truncated)
	})

	t.Run("verbose carries call site", func(t *testing.T) {
		cfg := testFormatConfig()
		line, _ := renderLine(nil, cfg, timestamp, LevelWarn, "NET", "serve@server.go:42", "retrying", nil)

		assert.Equal(t, "WARN NET serve@server.go:42 retrying\n", string(line))
	})

	t.Run("timestamp prepended", func(t *testing.T) {
		cfg := testFormatConfig()
		cfg.ShowTimestamp = true
		cfg.TimestampFormat = "2006-01-02"
		line, _ := renderLine(nil, cfg, timestamp, LevelError, "", "", "boom", nil)

		assert.Equal(t, "2024-01-01 ERROR boom\n", string(line))
	})

	t.Run("no tag no caller", func(t *testing.T) {
		cfg := testFormatConfig()
		line, _ := renderLine(nil, cfg, timestamp, LevelDebug, "", "", "bare", nil)

		assert.Equal(t, "DEBUG bare\n", string(line))
	})

	t.Run("line feed terminated exactly once", func(t *testing.T) {
		cfg := testFormatConfig()
		line, _ := renderLine(nil, cfg, timestamp, LevelInfo, "", "", "a\nb\nc", nil)

		assert.Equal(t, 1, strings.Count(string(line), "\n"))
		assert.True(t, strings.HasSuffix(string(line), "\n"))
	})
}

// TestRenderLineTruncation verifies truncation length, marker and delivery
func TestRenderLineTruncation(t *testing.T) {
	timestamp := time.Now()

	t.Run("ascii", func(t *testing.T) {
		cfg := testFormatConfig()
		cfg.MaxLineBytes = minLineBytes
		line, truncated := renderLine(nil, cfg, timestamp, LevelInfo, "", "", "%s", []any{strings.Repeat("a", 300)})

		assert.True(t, truncated)
		require.LessOrEqual(t, len(line), int(minLineBytes)+1)
		assert.True(t, strings.HasSuffix(string(line), truncationMark+"\n"))
	})

	t.Run("never splits utf8", func(t *testing.T) {
		cfg := testFormatConfig()
		cfg.MaxLineBytes = minLineBytes
		line, truncated := renderLine(nil, cfg, timestamp, LevelInfo, "", "", "%s", []any{strings.Repeat("世", 200)})

		assert.True(t, truncated)
		trimmed := strings.TrimSuffix(string(line), truncationMark+"\n")
		assert.True(t, utf8.ValidString(trimmed))
	})

	t.Run("short lines untouched", func(t *testing.T) {
		cfg := testFormatConfig()
		line, truncated := renderLine(nil, cfg, timestamp, LevelInfo, "", "", "ok", nil)

		assert.False(t, truncated)
		assert.Equal(t, "INFO ok\n", string(line))
	})
}

// TestEffectiveTag exercises the tag resolver contract
func TestEffectiveTag(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		tag      string
		expected string
	}{
		{"both set", "APP", "NET", "APP.NET"},
		{"tag only", "", "NET", "NET"},
		{"prefix only", "APP", "", "APP"},
		{"neither", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, effectiveTag(tt.prefix, tt.tag))
		})
	}
}

// TestLevelToString verifies the conversion of log level constants to strings
func TestLevelToString(t *testing.T) {
	tests := []struct {
		level    int64
		expected string
	}{
		{LevelVerbose, "VERBOSE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelFatal, "FATAL"},
		{LevelNone, "NONE"},
		{999, "LEVEL(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, levelToString(tt.level))
		})
	}
}

// TestCallSite verifies caller capture shape
func TestCallSite(t *testing.T) {
	site := callSite(1) // This test function

	assert.Contains(t, site, "format_test.go:")
	assert.Contains(t, site, "TestCallSite")
	assert.Contains(t, site, "@")
}
