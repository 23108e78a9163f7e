package explore

import (
	"io"
	"log/slog"

	"github.com/aretw0/lingo/pkg/domain"
)

// cancelCheckInterval is how many steps pass between context checks.
const cancelCheckInterval = 1024

// Explorer runs generation, matching and set algebra over automata.
// It holds no per-traversal state and is safe for concurrent use.
type Explorer struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Explorer.
type Option func(*Explorer)

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Explorer) {
		e.hooks = hooks
	}
}

// WithLogger sets a structured logger for the explorer.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Explorer) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Explorer.
func New(opts ...Option) *Explorer {
	e := &Explorer{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExplorer = New()
