//go:build taglog_info

// FILE: floor_info.go
package taglog

const compileFloor = LevelInfo
