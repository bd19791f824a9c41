// FILE: override_test.go
package taglog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplyOverride tests applying configuration overrides from key-value strings
func TestApplyOverride(t *testing.T) {
	tests := []struct {
		name      string
		overrides []string
		verify    func(t *testing.T, cfg *Config)
		wantError bool
	}{
		{
			name: "basic overrides",
			overrides: []string{
				"level=5",
				"tag_prefix=APP",
				"format=compact",
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, LevelError, cfg.Level)
				assert.Equal(t, "APP", cfg.TagPrefix)
				assert.Equal(t, FormatCompact, cfg.Format)
			},
		},
		{
			name:      "level by name",
			overrides: []string{"level=warn"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, LevelWarn, cfg.Level)
			},
		},
		{
			name:      "level none",
			overrides: []string{"level=none"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, LevelNone, cfg.Level)
			},
		},
		{
			name: "boolean values",
			overrides: []string{
				"show_timestamp=false",
				"exit_on_fatal=true",
				"internal_errors_to_stderr=true",
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.ShowTimestamp)
				assert.True(t, cfg.ExitOnFatal)
				assert.True(t, cfg.InternalErrorsToStderr)
			},
		},
		{
			name:      "numeric values",
			overrides: []string{"max_line_bytes=128"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, int64(128), cfg.MaxLineBytes)
			},
		},
		{
			name:      "invalid format",
			overrides: []string{"invalid"},
			wantError: true,
		},
		{
			name:      "unknown key",
			overrides: []string{"unknown_key=value"},
			wantError: true,
		},
		{
			name:      "invalid value type",
			overrides: []string{"max_line_bytes=not_a_number"},
			wantError: true,
		},
		{
			name:      "invalid level name",
			overrides: []string{"level=loud"},
			wantError: true,
		},
		{
			name: "multiple errors combined",
			overrides: []string{
				"unknown_key=1",
				"show_timestamp=maybe",
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger()
			err := logger.ApplyOverride(tt.overrides...)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				tt.verify(t, logger.GetConfig())
			}
		})
	}
}

// TestApplyOverrideUpdatesRouterState verifies overrides reach the live
// filtering state, not just the stored configuration
func TestApplyOverrideUpdatesRouterState(t *testing.T) {
	logger := NewLogger()

	require.NoError(t, logger.ApplyOverride("level=error", "tag_prefix=SYS"))

	assert.Equal(t, LevelError, logger.OutputLevel())
	assert.Equal(t, "SYS", logger.TagPrefix())
}

// TestApplyOverrideFailureKeepsConfig verifies a failed override leaves the
// previous configuration in force
func TestApplyOverrideFailureKeepsConfig(t *testing.T) {
	logger := NewLogger()
	require.NoError(t, logger.ApplyOverride("tag_prefix=KEEP"))

	err := logger.ApplyOverride("tag_prefix=LOST", "format=xml")
	require.Error(t, err)

	assert.Equal(t, "KEEP", logger.GetConfig().TagPrefix)
}
