// FILE: level.go
package taglog

// CompileFloor is the compile-time minimum level of this build, exported so
// callers and tests can reason about which statements exist at all.
const CompileFloor = compileFloor

// Compile-time level predicates. Each is a boolean constant, so a block
// guarded by one is removed entirely by the compiler when the level is below
// the floor, including evaluation of the block's arguments:
//
//	if taglog.AllowVerbose {
//	    taglog.Verbosef("chunk sha256=%s", expensiveHash(chunk))
//	}
const (
	AllowVerbose = LevelVerbose >= compileFloor
	AllowDebug   = LevelDebug >= compileFloor
	AllowInfo    = LevelInfo >= compileFloor
	AllowWarn    = LevelWarn >= compileFloor
	AllowError   = LevelError >= compileFloor
	AllowFatal   = LevelFatal >= compileFloor
)

// Enabled reports whether a statement at lvl would currently reach the sink.
// The effective minimum is max(compile-time floor, runtime threshold); a
// threshold below the floor never resurrects statements that were compiled
// out. Useful before computing expensive arguments for a runtime-gated call.
func (l *Logger) Enabled(lvl int64) bool {
	return lvl >= compileFloor && lvl >= l.state.OutputLevel.Load()
}
