//go:build taglog_verbose

// FILE: floor_verbose.go
package taglog

const compileFloor = LevelVerbose
