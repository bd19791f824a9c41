package compat

import (
	"strings"

	"github.com/lixenwraith/taglog"
)

// FastHTTPAdapter wraps taglog.Logger to implement fasthttp's Logger interface
type FastHTTPAdapter struct {
	tagged        taglog.Tagged
	defaultLevel  int64
	levelDetector func(string) int64 // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *taglog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		tagged:        logger.Tag("fasthttp"),
		defaultLevel:  taglog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface. fasthttp logs everything
// through one method, so the message content picks the level.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(format); detected != 0 {
			level = detected
		}
	}

	switch level {
	case taglog.LevelVerbose:
		a.tagged.Verbosef(format, args...)
	case taglog.LevelDebug:
		a.tagged.Debugf(format, args...)
	case taglog.LevelWarn:
		a.tagged.Warnf(format, args...)
	case taglog.LevelError, taglog.LevelFatal:
		a.tagged.Errorf(format, args...)
	default:
		a.tagged.Infof(format, args...)
	}
}

// DetectLogLevel infers a log level from common message keywords.
// Returns 0 when nothing matches, leaving the default level in force.
func DetectLogLevel(msg string) int64 {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "panic"), strings.Contains(lower, "fatal"):
		return taglog.LevelError
	case strings.Contains(lower, "error"), strings.Contains(lower, "fail"):
		return taglog.LevelError
	case strings.Contains(lower, "warn"), strings.Contains(lower, "deprecated"):
		return taglog.LevelWarn
	case strings.Contains(lower, "debug"):
		return taglog.LevelDebug
	default:
		return 0
	}
}
