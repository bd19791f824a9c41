//go:build !taglog_release

// FILE: mode_debug.go
package taglog

// defaultFormat selects the line variant used when the configuration does
// not set one. Development builds carry call-site metadata.
const defaultFormat = FormatVerbose
