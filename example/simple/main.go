package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/taglog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[taglog]
  level = 2 # Debug
  tag_prefix = "DEMO"
  default_tag = "MAIN"
  format = "verbose"
  show_timestamp = true
  max_line_bytes = 512
`

func main() {
	fmt.Println("--- Simple taglog Example ---")

	// Create dummy config file
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Printf("Fatal: could not write config file: %v\n", err)
		os.Exit(1)
	}
	defer os.Remove(configFile)

	cfg, err := taglog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Printf("Fatal: could not load config: %v\n", err)
		os.Exit(1)
	}

	if err := taglog.ApplyConfig(cfg); err != nil {
		fmt.Printf("Fatal: could not apply config: %v\n", err)
		os.Exit(1)
	}

	// Route finished lines to stderr; the facility does no I/O itself
	taglog.SetOutputCallback(taglog.WriterSink(os.Stderr))

	taglog.Infof("application started pid=%d", os.Getpid())
	taglog.Tag("NET").Debugf("listening on %s", "127.0.0.1:9000")

	// Expensive arguments belong behind the compile-time guard
	if taglog.AllowVerbose {
		taglog.Verbosef("initial environment: %v", os.Environ())
	}

	// Raise the runtime threshold: debug stops reaching the sink
	taglog.SetOutputLevel(taglog.LevelWarn)
	taglog.Tag("NET").Debugf("this line is filtered")
	taglog.Tag("NET").Warnf("connection pool at %d%% capacity", 92)

	fmt.Printf("stats: %+v\n", taglog.GetStats())
}
