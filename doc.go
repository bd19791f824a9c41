// Package taglog is a small synchronous logging facility with two-stage
// level filtering: a compile-time floor fixed by build tags and a runtime
// output threshold adjustable at any moment. Every admitted call renders a
// single text line and hands it to one pluggable output callback; the
// package performs no I/O of its own.
//
// Level guideline:
//   - LevelFatal - the process cannot continue; semantics close to assert.
//   - LevelError - unexpected failure the process can recover from.
//   - LevelWarn - something that usually should not happen and changes
//     behavior for a while (missing config file, auth failure).
//   - LevelInfo - significant lifecycle event or major state transition.
//   - LevelDebug - the minimal set of events needed to reconstruct the
//     execution path.
//   - LevelVerbose - everything else.
//
// Compile-time floor selection, highest priority first:
//
//	explicit tag   taglog_verbose, taglog_debug, taglog_info, taglog_warn,
//	               taglog_error, taglog_fatal, taglog_none
//	release builds taglog_release -> LevelInfo
//	otherwise      LevelDebug
//
// Setting two explicit floor tags at once is a compile error. Statements
// below the floor compile to empty function bodies. To also elide argument
// evaluation, guard the call with the matching Allow constant; the guard is
// an untyped boolean constant, so the compiler removes the whole block when
// it is false:
//
//	if taglog.AllowDebug {
//	    taglog.Tag("NET").Debugf("payload sha256=%s", hash(data))
//	}
//
// The runtime threshold only raises the bar: SetOutputLevel below the
// compile-time floor has no visible effect because those statements were
// never compiled in.
//
// All entry points are printf-style ...f functions, so go vet's printf
// analyzer checks format strings against their arguments at build time.
//
// The build-time default tag can be injected without code changes:
//
//	go build -ldflags "-X github.com/lixenwraith/taglog.buildDefaultTag=MAIN"
package taglog
