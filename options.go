package eventchannel

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrorHandler is called with every error a broadcast returns.
type ErrorHandler func(err error)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics registers the registry's collectors on reg.
// Registration panics if reg already holds eventchannel collectors.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Registry) { r.metrics = NewMetrics(reg) }
}

// WithErrorHandler sets the callback for failed broadcasts.
func WithErrorHandler(h ErrorHandler) Option {
	return func(r *Registry) { r.errorHandler = h }
}
