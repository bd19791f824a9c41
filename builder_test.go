// FILE: builder_test.go
package taglog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder verifies the fluent configuration path end to end
func TestBuilder(t *testing.T) {
	sink := &captureSink{}

	logger, err := NewBuilder().
		LevelString("warn").
		TagPrefix("APP").
		DefaultTag("CORE").
		Format(FormatCompact).
		ShowTimestamp(false).
		MaxLineBytes(256).
		Output(sink.fn()).
		Build()
	require.NoError(t, err)

	cfg := logger.GetConfig()
	assert.Equal(t, LevelWarn, cfg.Level)
	assert.Equal(t, "APP", cfg.TagPrefix)
	assert.Equal(t, int64(256), cfg.MaxLineBytes)

	logger.Infof("filtered")
	logger.Warnf("admitted")

	require.Equal(t, 1, sink.count())
	assert.Equal(t, "WARN APP.CORE admitted\n", sink.last().text)
}

// TestBuilderInvalidLevel verifies errors are deferred to Build
func TestBuilderInvalidLevel(t *testing.T) {
	logger, err := NewBuilder().
		LevelString("loud").
		TagPrefix("APP").
		Build()

	assert.Error(t, err)
	assert.Nil(t, logger)
}

// TestBuilderInvalidConfig verifies Build surfaces validation failures
func TestBuilderInvalidConfig(t *testing.T) {
	logger, err := NewBuilder().
		Format("xml").
		Build()

	assert.Error(t, err)
	assert.Nil(t, logger)
}
