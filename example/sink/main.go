package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/taglog"
)

// main demonstrates sink registration, replacement and removal. Lines
// delivered before a replacement go to the old sink, lines after go to the
// new one; no line is delivered to both.
func main() {
	logger, err := taglog.NewBuilder().
		LevelString("debug").
		ShowTimestamp(false).
		Build()
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}

	// No sink registered yet: filtering and formatting still run,
	// dispatch is a no-op.
	logger.Infof("nobody sees this line")

	// First sink: annotate and print
	logger.SetOutputCallback(func(lvl int64, line []byte, n int) {
		fmt.Printf("[sink-1 lvl=%d len=%d] %s", lvl, n, line)
	})
	logger.Infof("delivered to the first sink")

	// Replace mid-run
	logger.SetOutputCallback(func(lvl int64, line []byte, n int) {
		// The sink may mutate the buffer before writing, e.g. redact digits
		for i := 0; i < n; i++ {
			if line[i] >= '0' && line[i] <= '9' {
				line[i] = '#'
			}
		}
		fmt.Printf("[sink-2 lvl=%d len=%d] %s", lvl, n, line)
	})
	logger.Warnf("delivered to the second sink only")

	// Disable output entirely
	logger.SetOutputCallback(nil)
	logger.Errorf("dispatch is a no-op again")

	fmt.Printf("stats: %+v\n", logger.Stats())
}
