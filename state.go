// FILE: state.go
package taglog

import (
	"sync/atomic"
)

// State encapsulates the process-wide mutable state of the output router.
// Each field is updated atomically on its own; a log call observes some
// consistent snapshot of every field but there is no cross-field generation
// guarantee. Callers needing one must serialize reconfiguration externally.
type State struct {
	// OutputLevel is the runtime output threshold. It only raises the
	// effective bar: values below the compile-time floor are harmless
	// because those statements were never compiled in.
	OutputLevel atomic.Int64

	TagPrefix    atomic.Value // stores string
	Sink         atomic.Value // stores sinkSlot
	FatalHandler atomic.Value // stores func(string)

	// Counters
	TotalDispatched atomic.Uint64 // Sink invocations
	TotalFiltered   atomic.Uint64 // Calls dropped by the runtime threshold
	TotalTruncated  atomic.Uint64 // Lines cut to max_line_bytes
}

// sinkSlot wraps a SinkFunc, atomic value type change workaround
type sinkSlot struct {
	cb SinkFunc
}

// Stats is a snapshot of the router counters.
type Stats struct {
	Dispatched uint64
	Filtered   uint64
	Truncated  uint64
}

// Stats returns a point-in-time snapshot of the dispatch counters. The
// fields are read independently, so the snapshot is not transactional.
func (l *Logger) Stats() Stats {
	return Stats{
		Dispatched: l.state.TotalDispatched.Load(),
		Filtered:   l.state.TotalFiltered.Load(),
		Truncated:  l.state.TotalTruncated.Load(),
	}
}
