//go:build taglog_warn

// FILE: floor_warn.go
package taglog

const compileFloor = LevelWarn
