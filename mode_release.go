//go:build taglog_release

// FILE: mode_release.go
package taglog

// Release builds omit call-site metadata to reduce line size and avoid
// leaking source layout in shipped binaries.
const defaultFormat = FormatCompact
