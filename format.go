// FILE: format.go
package taglog

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"time"
	"unicode/utf8"
)

// callerSkip is the runtime.Caller depth from callSite up to the user call
// site: callSite -> logf -> public ...f entry point -> caller. Every entry
// point must remain exactly one frame above logf for this to hold.
const callerSkip = 3

// renderLine assembles one finished log line into buf:
//
//	[timestamp] LEVEL [tag] [func@file:line] message\n
//
// The message is flattened to a single line and the whole line is cut to
// cfg.MaxLineBytes when it overruns; a cut line is still delivered, never
// dropped. Reports whether truncation happened. Rendering never fails.
func renderLine(buf []byte, cfg *Config, now time.Time, lvl int64, tag, caller, format string, args []any) ([]byte, bool) {
	if cfg.ShowTimestamp {
		buf = now.AppendFormat(buf, cfg.TimestampFormat)
		buf = append(buf, ' ')
	}

	buf = append(buf, levelToString(lvl)...)

	if tag != "" {
		buf = append(buf, ' ')
		buf = append(buf, tag...)
	}

	if caller != "" {
		buf = append(buf, ' ')
		buf = append(buf, caller...)
	}

	buf = append(buf, ' ')
	msgStart := len(buf)
	buf = fmt.Appendf(buf, format, args...)
	flattenLine(buf[msgStart:])

	truncated := false
	if int64(len(buf)) > cfg.MaxLineBytes {
		buf = truncateLine(buf, int(cfg.MaxLineBytes))
		truncated = true
	}

	buf = append(buf, '\n')
	return buf, truncated
}

// flattenLine replaces line terminators inside the message with spaces so
// the output stays a single line.
func flattenLine(msg []byte) {
	for i, c := range msg {
		if c == '\n' || c == '\r' {
			msg[i] = ' '
		}
	}
}

// truncateLine cuts buf to at most max bytes including the truncation
// marker, backing off to a rune boundary so the cut never splits UTF-8.
func truncateLine(buf []byte, max int) []byte {
	cut := max - len(truncationMark)
	if cut < 0 {
		cut = 0
	}
	for cut > 0 && !utf8.RuneStart(buf[cut]) {
		cut--
	}
	return append(buf[:cut], truncationMark...)
}

// effectiveTag combines the process-wide prefix with the call-site tag.
// Recomputed on every call so prefix changes apply immediately.
func effectiveTag(prefix, tag string) string {
	switch {
	case prefix == "":
		return tag
	case tag == "":
		return prefix
	default:
		return prefix + "." + tag
	}
}

// callSite captures the caller as "func@file:line" for the verbose variant.
func callSite(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	name := "?"
	if fn := runtime.FuncForPC(pc); fn != nil {
		// Trim the package import path, keep pkg.Func
		name = filepath.Base(fn.Name())
	}
	return name + "@" + filepath.Base(file) + ":" + strconv.Itoa(line)
}

// levelToString converts level constants to their display names.
func levelToString(level int64) string {
	switch level {
	case LevelVerbose:
		return "VERBOSE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelNone:
		return "NONE"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}
