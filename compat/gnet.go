package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/taglog"
)

// GnetAdapter wraps taglog.Logger to implement gnet's logging.Logger interface
type GnetAdapter struct {
	tagged       taglog.Tagged
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *taglog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		tagged: logger.Tag("gnet"),
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.tagged.Debugf(format, args...)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.tagged.Infof(format, args...)
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.tagged.Warnf(format, args...)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.tagged.Errorf(format, args...)
}

// Fatalf logs at error level and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	a.tagged.Errorf(format, args...)

	if a.fatalHandler != nil {
		a.fatalHandler(fmt.Sprintf(format, args...))
	}
}
