// FILE: dump.go
package taglog

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumper renders arbitrary values with log-friendly, compact output.
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true, // Cleaner for logs
	DisableCapacities:       true, // Less noise
	SortKeys:                true, // Consistent map output
}

// Dump logs a labeled deep dump of v at the given level. The dump is only
// rendered when lvl currently passes both filtering stages, so it is safe to
// hand over large structures on hot paths.
func (l *Logger) Dump(lvl int64, label string, v any) {
	if !l.Enabled(lvl) {
		return
	}
	l.logf(lvl, "", "%s %s", []any{label, flattenDump(dumper.Sdump(v))})
}

// Dump logs a labeled deep dump of v with the handle's tag.
func (t Tagged) Dump(lvl int64, label string, v any) {
	if !t.l.Enabled(lvl) {
		return
	}
	t.l.logf(lvl, t.tag, "%s %s", []any{label, flattenDump(dumper.Sdump(v))})
}

// flattenDump collapses spew's multi-line output to one line.
func flattenDump(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
