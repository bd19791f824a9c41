//go:build !taglog_verbose && !taglog_debug && !taglog_info && !taglog_warn && !taglog_error && !taglog_fatal && !taglog_none && !taglog_release

// FILE: floor_default.go
package taglog

// compileFloor is the compile-time minimum level of this build. Statements
// below it compile to nothing. Development default when no floor tag and no
// taglog_release tag is set.
const compileFloor = LevelDebug
