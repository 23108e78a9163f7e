package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/lingo/pkg/domain"
)

// LoggingHooks logs accepted words and match results at debug level.
// Visits and backtracks are left out; they scale with branching^bound.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAccept: func(ctx context.Context, e *domain.AcceptEvent) {
			logger.DebugContext(ctx, "word_accepted", "state", e.State, "word", e.Word)
		},
		OnMatch: func(ctx context.Context, e *domain.MatchEvent) {
			logger.DebugContext(ctx, "match",
				"word", e.Word,
				"found", e.Found,
				"path", e.Path.String(),
				"steps", e.Steps,
			)
		},
	}
}
