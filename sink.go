// FILE: sink.go
package taglog

import (
	"io"
	"sync"
)

// SinkFunc receives every admitted log line, synchronously on the calling
// goroutine. line includes the trailing line feed, n is the byte length
// excluding it. The sink may mutate line in place (redaction, truncation)
// but must not retain it: the buffer is pooled and reused as soon as the
// call returns.
type SinkFunc func(lvl int64, line []byte, n int)

// WriterSink adapts an io.Writer into a SinkFunc. Writes are serialized with
// a mutex since log calls may arrive from multiple goroutines. Write errors
// are discarded; durable delivery is the consumer's concern.
func WriterSink(w io.Writer) SinkFunc {
	var mu sync.Mutex
	return func(_ int64, line []byte, _ int) {
		mu.Lock()
		_, _ = w.Write(line)
		mu.Unlock()
	}
}
