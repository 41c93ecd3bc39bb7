// Package logging adapts pkg/logger to the application's port.Logger.
package logging

import (
	"context"

	"github.com/hapkiduki/freight-weight/internal/application/port"
	"github.com/hapkiduki/freight-weight/pkg/logger"
)

// Adapter adapts *logger.Logger to the port.Logger interface.
type Adapter struct {
	*logger.Logger
}

var _ port.Logger = (*Adapter)(nil)

// New wraps l as a port.Logger.
func New(l *logger.Logger) *Adapter {
	return &Adapter{l}
}

// Nop returns a port.Logger that discards everything.
func Nop() *Adapter {
	return New(logger.NewNop())
}

// With implements port.Logger.
func (a *Adapter) With(keysAndValues ...any) port.Logger {
	return &Adapter{a.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (a *Adapter) WithContext(ctx context.Context) port.Logger {
	return &Adapter{a.Logger.WithContext(ctx)}
}
