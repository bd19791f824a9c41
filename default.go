// FILE: default.go
package taglog

import (
	"fmt"
)

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default package-level functions that delegate to the default logger.
// The ...f functions call through logf directly so call-site capture
// reports the user's frame, not this file.

// Default returns the process-wide default logger instance.
func Default() *Logger {
	return defaultLogger
}

// ApplyConfig applies a validated configuration to the default logger
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// ApplyOverride applies string key-value overrides to the default logger
func ApplyOverride(overrides ...string) error {
	return defaultLogger.ApplyOverride(overrides...)
}

// SetOutputLevel updates the default logger's runtime output threshold
func SetOutputLevel(lvl int64) {
	defaultLogger.SetOutputLevel(lvl)
}

// SetTagPrefix updates the default logger's tag prefix
func SetTagPrefix(prefix string) {
	defaultLogger.SetTagPrefix(prefix)
}

// SetOutputCallback replaces the default logger's sink
func SetOutputCallback(cb SinkFunc) {
	defaultLogger.SetOutputCallback(cb)
}

// SetFatalHandler replaces the default logger's fatal handler
func SetFatalHandler(fn func(msg string)) {
	defaultLogger.SetFatalHandler(fn)
}

// Enabled reports whether lvl would currently reach the default logger's sink
func Enabled(lvl int64) bool {
	return defaultLogger.Enabled(lvl)
}

// Tag returns a tagged handle on the default logger
func Tag(tag string) Tagged {
	return defaultLogger.Tag(tag)
}

// Verbosef logs a formatted message at verbose level
func Verbosef(format string, args ...any) {
	if !AllowVerbose {
		return
	}
	defaultLogger.logf(LevelVerbose, "", format, args)
}

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...any) {
	if !AllowDebug {
		return
	}
	defaultLogger.logf(LevelDebug, "", format, args)
}

// Infof logs a formatted message at info level
func Infof(format string, args ...any) {
	if !AllowInfo {
		return
	}
	defaultLogger.logf(LevelInfo, "", format, args)
}

// Warnf logs a formatted message at warn level
func Warnf(format string, args ...any) {
	if !AllowWarn {
		return
	}
	defaultLogger.logf(LevelWarn, "", format, args)
}

// Errorf logs a formatted message at error level
func Errorf(format string, args ...any) {
	if !AllowError {
		return
	}
	defaultLogger.logf(LevelError, "", format, args)
}

// Fatalf logs at fatal level, then runs the fatal handler when
// exit_on_fatal is enabled
func Fatalf(format string, args ...any) {
	if AllowFatal {
		defaultLogger.logf(LevelFatal, "", format, args)
	}
	if defaultLogger.getConfig().ExitOnFatal {
		if fn, ok := defaultLogger.state.FatalHandler.Load().(func(string)); ok && fn != nil {
			fn(fmt.Sprintf(format, args...))
		}
	}
}

// Logf logs at a level chosen at run time
func Logf(lvl int64, format string, args ...any) {
	if lvl < compileFloor {
		return
	}
	defaultLogger.logf(lvl, "", format, args)
}

// GetStats returns a snapshot of the default logger's dispatch counters
func GetStats() Stats {
	return defaultLogger.Stats()
}

// Dump logs a labeled deep dump of v on the default logger
func Dump(lvl int64, label string, v any) {
	if !defaultLogger.Enabled(lvl) {
		return
	}
	defaultLogger.logf(lvl, "", "%s %s", []any{label, flattenDump(dumper.Sdump(v))})
}
