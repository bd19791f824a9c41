// FILE: logger.go
package taglog

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/valyala/bytebufferpool"
)

// Logger is the core struct that encapsulates all logging functionality.
// It is a synchronous facility: filtering, formatting and dispatch complete
// on the calling goroutine before a log call returns.
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         State
}

// NewLogger creates a new Logger instance with default settings: threshold
// at the compile-time floor, no tag prefix, no sink (dispatch is a no-op
// until SetOutputCallback installs one).
func NewLogger() *Logger {
	l := &Logger{}
	l.currentConfig.Store(DefaultConfig())

	l.state.OutputLevel.Store(compileFloor)
	l.state.TagPrefix.Store("")
	l.state.Sink.Store(sinkSlot{})
	l.state.FatalHandler.Store(func(string) { os.Exit(1) })

	return l
}

// ApplyConfig applies a validated configuration to the logger.
// This is the primary way applications should configure the logger.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	c := cfg.Clone()
	l.currentConfig.Store(c)

	// Mirror the filtering fields into the router state
	l.state.OutputLevel.Store(c.Level)
	l.state.TagPrefix.Store(c.TagPrefix)

	return nil
}

// GetConfig returns a copy of current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// SetOutputLevel updates the runtime output threshold unconditionally.
// Values above the compile-time floor raise the effective minimum; values
// below it have no visible effect because those statements were compiled
// out. Safe to call from any goroutine at any time.
func (l *Logger) SetOutputLevel(lvl int64) {
	l.state.OutputLevel.Store(lvl)
}

// OutputLevel returns the current runtime output threshold.
func (l *Logger) OutputLevel() int64 {
	return l.state.OutputLevel.Load()
}

// SetTagPrefix updates the process-wide tag prefix. The prefix is joined to
// call-site tags with a dot and recomputed on every call, so a change is
// picked up by the next log statement. Empty string disables the prefix.
func (l *Logger) SetTagPrefix(prefix string) {
	l.state.TagPrefix.Store(prefix)
}

// TagPrefix returns the current tag prefix.
func (l *Logger) TagPrefix() string {
	prefix, _ := l.state.TagPrefix.Load().(string)
	return prefix
}

// SetOutputCallback atomically replaces the active sink for subsequent
// calls. A nil callback disables output entirely: log calls still filter
// and format, but dispatch becomes a no-op. In-flight calls may still
// finish against the previous sink; each call dispatches at most once.
func (l *Logger) SetOutputCallback(cb SinkFunc) {
	l.state.Sink.Store(sinkSlot{cb: cb})
}

// SetFatalHandler replaces the function run by Fatalf when exit_on_fatal is
// enabled. The default handler calls os.Exit(1).
func (l *Logger) SetFatalHandler(fn func(msg string)) {
	if fn == nil {
		fn = func(string) { os.Exit(1) }
	}
	l.state.FatalHandler.Store(fn)
}

// Verbosef logs a formatted message at verbose level.
func (l *Logger) Verbosef(format string, args ...any) {
	if !AllowVerbose {
		return
	}
	l.logf(LevelVerbose, "", format, args)
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	if !AllowDebug {
		return
	}
	l.logf(LevelDebug, "", format, args)
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...any) {
	if !AllowInfo {
		return
	}
	l.logf(LevelInfo, "", format, args)
}

// Warnf logs a formatted message at warn level.
func (l *Logger) Warnf(format string, args ...any) {
	if !AllowWarn {
		return
	}
	l.logf(LevelWarn, "", format, args)
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...any) {
	if !AllowError {
		return
	}
	l.logf(LevelError, "", format, args)
}

// Fatalf logs a formatted message at fatal level. When exit_on_fatal is
// enabled the fatal handler runs after dispatch returns; termination is a
// documented side effect of this one call path, not of the mechanism in
// general, and happens regardless of filtering.
func (l *Logger) Fatalf(format string, args ...any) {
	if AllowFatal {
		l.logf(LevelFatal, "", format, args)
	}
	if l.getConfig().ExitOnFatal {
		if fn, ok := l.state.FatalHandler.Load().(func(string)); ok && fn != nil {
			fn(fmt.Sprintf(format, args...))
		}
	}
}

// Logf logs at a level chosen at run time. Unlike the fixed-level methods
// the floor comparison here is a runtime branch, so prefer those when the
// level is known.
func (l *Logger) Logf(lvl int64, format string, args ...any) {
	if lvl < compileFloor {
		return
	}
	l.logf(lvl, "", format, args)
}

// Tag returns a lightweight handle logging with the given call-site tag in
// place of the configured default tag. The handle is a plain value and safe
// to store per subsystem.
func (l *Logger) Tag(tag string) Tagged {
	return Tagged{l: l, tag: tag}
}

// Tagged logs with a fixed call-site tag. The effective tag is still
// recomputed per call, so prefix changes apply to existing handles.
type Tagged struct {
	l   *Logger
	tag string
}

// Verbosef logs a formatted message at verbose level with the handle's tag.
func (t Tagged) Verbosef(format string, args ...any) {
	if !AllowVerbose {
		return
	}
	t.l.logf(LevelVerbose, t.tag, format, args)
}

// Debugf logs a formatted message at debug level with the handle's tag.
func (t Tagged) Debugf(format string, args ...any) {
	if !AllowDebug {
		return
	}
	t.l.logf(LevelDebug, t.tag, format, args)
}

// Infof logs a formatted message at info level with the handle's tag.
func (t Tagged) Infof(format string, args ...any) {
	if !AllowInfo {
		return
	}
	t.l.logf(LevelInfo, t.tag, format, args)
}

// Warnf logs a formatted message at warn level with the handle's tag.
func (t Tagged) Warnf(format string, args ...any) {
	if !AllowWarn {
		return
	}
	t.l.logf(LevelWarn, t.tag, format, args)
}

// Errorf logs a formatted message at error level with the handle's tag.
func (t Tagged) Errorf(format string, args ...any) {
	if !AllowError {
		return
	}
	t.l.logf(LevelError, t.tag, format, args)
}

// Fatalf logs at fatal level with the handle's tag, then runs the fatal
// handler when exit_on_fatal is enabled.
func (t Tagged) Fatalf(format string, args ...any) {
	if AllowFatal {
		t.l.logf(LevelFatal, t.tag, format, args)
	}
	if t.l.getConfig().ExitOnFatal {
		if fn, ok := t.l.state.FatalHandler.Load().(func(string)); ok && fn != nil {
			fn(fmt.Sprintf(format, args...))
		}
	}
}

// logf is the single runtime gate behind every entry point. Each public
// ...f function sits exactly one frame above it, which keeps the caller
// skip depth uniform for call-site capture.
func (l *Logger) logf(lvl int64, tag, format string, args []any) {
	if lvl < l.state.OutputLevel.Load() {
		l.state.TotalFiltered.Add(1)
		return
	}

	cfg := l.getConfig()
	if tag == "" {
		tag = cfg.DefaultTag
	}
	prefix, _ := l.state.TagPrefix.Load().(string)
	tag = effectiveTag(prefix, tag)

	var caller string
	if cfg.Format == FormatVerbose {
		caller = callSite(callerSkip)
	}

	bb := bytebufferpool.Get()
	line, truncated := renderLine(bb.B[:0], cfg, time.Now(), lvl, tag, caller, format, args)
	bb.B = line
	if truncated {
		l.state.TotalTruncated.Add(1)
	}

	l.dispatch(lvl, line)
	bytebufferpool.Put(bb)
}

// dispatch hands a finished line to the registered sink, exactly once,
// synchronously. No sink means a silent no-op. A panicking sink is contained
// here so logging never crashes the caller.
func (l *Logger) dispatch(lvl int64, line []byte) {
	slot, _ := l.state.Sink.Load().(sinkSlot)
	if slot.cb == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			l.internalLog("output callback panic: %v\n", r)
		}
	}()

	slot.cb(lvl, line, len(line)-1) // Length excludes the trailing line feed
	l.state.TotalDispatched.Add(1)
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// internalLog handles writing internal logger diagnostics to stderr, if enabled.
func (l *Logger) internalLog(format string, args ...any) {
	cfg := l.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}

	// Ensure consistent "taglog: " prefix
	if !strings.HasPrefix(format, "taglog: ") {
		format = "taglog: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
