//go:build taglog_none

// FILE: floor_none.go
package taglog

const compileFloor = LevelNone
