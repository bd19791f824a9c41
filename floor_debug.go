//go:build taglog_debug

// FILE: floor_debug.go
package taglog

const compileFloor = LevelDebug
