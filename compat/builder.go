package compat

import (
	"fmt"

	"github.com/lixenwraith/taglog"
)

// Builder provides a flexible way to create configured logger adapters for
// gnet and fasthttp. It can use an existing *taglog.Logger instance or
// create a new one from a *taglog.Config.
type Builder struct {
	logger *taglog.Logger
	logCfg *taglog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// Recommended for applications that already have a central logger instance.
// If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *taglog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("taglog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance.
// This is used only if an existing logger is NOT provided via WithLogger.
// If neither WithLogger nor WithConfig is used, a default logger is created.
func (b *Builder) WithConfig(cfg *taglog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*taglog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	l := taglog.NewLogger()
	cfg := b.logCfg
	if cfg == nil {
		cfg = taglog.DefaultConfig()
	}
	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}
	return l, nil
}

// BuildGnet returns a gnet-compatible adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	logger, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(logger, opts...), nil
}

// BuildFastHTTP returns a fasthttp-compatible adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	logger, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(logger, opts...), nil
}
