//go:build taglog_error

// FILE: floor_error.go
package taglog

const compileFloor = LevelError
