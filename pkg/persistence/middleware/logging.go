package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/lingo/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.AutomatonStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store operation at debug level with its duration.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.AutomatonStore) ports.AutomatonStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) log(ctx context.Context, op, name string, start time.Time, err error) {
	attrs := []any{"op", op, "duration", time.Since(start)}
	if name != "" {
		attrs = append(attrs, "name", name)
	}
	if err != nil {
		attrs = append(attrs, "err", err)
	}
	m.logger.DebugContext(ctx, "store", attrs...)
}

func (m *loggingMiddleware) Save(ctx context.Context, name string, a *domain.Automaton) error {
	start := time.Now()
	err := m.next.Save(ctx, name, a)
	m.log(ctx, "save", name, start, err)
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, name string) (*domain.Automaton, error) {
	start := time.Now()
	a, err := m.next.Load(ctx, name)
	m.log(ctx, "load", name, start, err)
	return a, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := m.next.Delete(ctx, name)
	m.log(ctx, "delete", name, start, err)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	names, err := m.next.List(ctx)
	m.log(ctx, "list", "", start, err)
	return names, err
}
