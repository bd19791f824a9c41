// FILE: builder.go
package taglog

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	cb  SinkFunc
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()

	// ApplyConfig handles all validation
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	if b.cb != nil {
		logger.SetOutputCallback(b.cb)
	}

	return logger, nil
}

// Level sets the runtime output threshold.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the runtime output threshold from a level name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := Level(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// TagPrefix sets the process-wide tag prefix.
func (b *Builder) TagPrefix(prefix string) *Builder {
	b.cfg.TagPrefix = prefix
	return b
}

// DefaultTag sets the tag used by untagged calls.
func (b *Builder) DefaultTag(tag string) *Builder {
	b.cfg.DefaultTag = tag
	return b
}

// Format sets the line variant ("verbose" or "compact").
func (b *Builder) Format(format string) *Builder {
	b.cfg.Format = format
	return b
}

// ShowTimestamp sets whether lines carry a timestamp.
func (b *Builder) ShowTimestamp(show bool) *Builder {
	b.cfg.ShowTimestamp = show
	return b
}

// TimestampFormat sets the timestamp layout string.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// MaxLineBytes sets the truncation limit for rendered lines.
func (b *Builder) MaxLineBytes(n int64) *Builder {
	b.cfg.MaxLineBytes = n
	return b
}

// ExitOnFatal sets whether Fatalf runs the fatal handler after dispatch.
func (b *Builder) ExitOnFatal(exit bool) *Builder {
	b.cfg.ExitOnFatal = exit
	return b
}

// Output sets the sink installed on the built logger.
func (b *Builder) Output(cb SinkFunc) *Builder {
	b.cb = cb
	return b
}

// Example usage:
//
//	logger, err := taglog.NewBuilder().
//	    LevelString("warn").
//	    TagPrefix("APP").
//	    Format("compact").
//	    Output(taglog.WriterSink(os.Stderr)).
//	    Build()
//
//	if err == nil {
//	    logger.Warnf("config file %s not found, using defaults", path)
//	}
