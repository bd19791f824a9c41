// FILE: constant.go
package taglog

// Log level constants. Higher is more severe, comparisons are always >=.
const (
	LevelVerbose int64 = 1
	LevelDebug   int64 = 2
	LevelInfo    int64 = 3
	LevelWarn    int64 = 4
	LevelError   int64 = 5
	LevelFatal   int64 = 6

	// LevelNone is a sentinel above every real level. It is only meaningful
	// as a threshold value meaning "suppress everything".
	LevelNone int64 = 0xFFFF
)

// Line format variants
const (
	// FormatVerbose includes caller function name and file:line.
	FormatVerbose = "verbose"
	// FormatCompact omits call-site metadata.
	FormatCompact = "compact"
)

// Formatting limits
const (
	defaultMaxLineBytes int64 = 2048
	// Lower bound for max_line_bytes, keeps room for metadata plus the marker
	minLineBytes int64 = 64
	// Appended in place of the removed tail when a line is cut
	truncationMark = "..."
)

// buildDefaultTag is the build-time default tag, the fallback when the
// configuration leaves default_tag empty. Inject with:
//
//	go build -ldflags "-X github.com/lixenwraith/taglog.buildDefaultTag=MAIN"
var buildDefaultTag string
