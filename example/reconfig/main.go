package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/taglog"
)

// main exercises runtime reconfiguration while log calls run concurrently:
// threshold and prefix changes are single-field atomic, so loggers observe
// either the old or the new value, never a torn one, and every admitted
// call dispatches exactly once.
func main() {
	logger := taglog.NewLogger()
	logger.SetOutputCallback(taglog.WriterSink(os.Stderr))

	if err := logger.ApplyOverride(
		"level=debug",
		"default_tag=WORKER",
		"show_timestamp=false",
	); err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for n := 0; ; n++ {
				select {
				case <-stop:
					return
				default:
				}
				logger.Debugf("worker=%d iteration=%d", id, n)
				logger.Warnf("worker=%d slow iteration=%d", id, n)
				time.Sleep(10 * time.Millisecond)
			}
		}(i)
	}

	// Reconfigure while the workers log
	time.Sleep(50 * time.Millisecond)
	logger.SetTagPrefix("APP")
	time.Sleep(50 * time.Millisecond)
	logger.SetOutputLevel(taglog.LevelError) // Debug and warn stop flowing
	time.Sleep(50 * time.Millisecond)

	close(stop)
	wg.Wait()

	fmt.Printf("stats: %+v\n", logger.Stats())
}
