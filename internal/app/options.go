package app

import (
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	publisher events.Publisher
	logger    *slog.Logger
}

// WithPublisher sets where services publish change events
func WithPublisher(p events.Publisher) Option {
	return func(cfg *appConfig) {
		cfg.publisher = p
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
