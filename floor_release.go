//go:build taglog_release && !taglog_verbose && !taglog_debug && !taglog_info && !taglog_warn && !taglog_error && !taglog_fatal && !taglog_none

// FILE: floor_release.go
package taglog

// Release default: an explicit floor tag still takes priority over
// taglog_release.
const compileFloor = LevelInfo
