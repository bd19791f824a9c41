//go:build taglog_fatal

// FILE: floor_fatal.go
package taglog

const compileFloor = LevelFatal
