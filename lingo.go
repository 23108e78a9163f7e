package lingo

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/lingo/pkg/adapters/file"
	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/lingo/pkg/explore"
	"github.com/aretw0/lingo/pkg/ports"
)

// DefaultBound is the maximum word length used when no limits are configured.
const DefaultBound = 8

// Engine is the high-level entry point for the lingo library.
// It binds a loader, a set of guards and observability hooks to the explorer.
// Automata are immutable and explorations keep only call-local state, so an
// Engine is safe for concurrent use.
type Engine struct {
	explorer *explore.Explorer
	loader   ports.AutomatonLoader
	limits   explore.Limits
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	Name     string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom AutomatonLoader, bypassing the default file loader.
func WithLoader(l ports.AutomatonLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLimits sets the guards applied to every exploration.
func WithLimits(limits explore.Limits) Option {
	return func(e *Engine) {
		e.limits = limits
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithName labels the engine; the name is attached to every log line.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New initializes a new Engine.
// By default it loads automata from file paths and explores words up to DefaultBound.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		limits: explore.Bound(DefaultBound),
	}

	for _, opt := range opts {
		opt(eng)
	}

	if err := eng.limits.Validate(); err != nil {
		return nil, err
	}

	if eng.loader == nil {
		eng.loader = file.NewLoader("")
	}

	// Never hand a nil logger to the explorer.
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("automaton", eng.Name)
	}

	eng.explorer = explore.New(
		explore.WithHooks(eng.hooks),
		explore.WithLogger(eng.logger),
	)
	return eng, nil
}

// Limits returns the guards the engine applies.
func (e *Engine) Limits() explore.Limits {
	return e.limits
}

// Load resolves ref through the configured loader.
func (e *Engine) Load(ctx context.Context, ref string) (*domain.Automaton, error) {
	a, err := e.loader.Load(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to load automaton %q: %w", ref, err)
	}
	e.logger.Debug("automaton loaded", "ref", ref, "states", a.Len(), "edges", a.NumEdges())
	return a, nil
}

// Generate enumerates the words accepted from the initial state.
func (e *Engine) Generate(ctx context.Context, a *domain.Automaton) ([]string, error) {
	return e.explorer.GenerateFromInitial(ctx, a, e.limits)
}

// GenerateFrom enumerates the words accepted from start.
func (e *Engine) GenerateFrom(ctx context.Context, a *domain.Automaton, start int) ([]string, error) {
	return e.explorer.Generate(ctx, a, start, e.limits)
}

// Match reports whether word is accepted and returns the state path that accepts it.
func (e *Engine) Match(ctx context.Context, word string, a *domain.Automaton) (bool, domain.Path, error) {
	return e.explorer.Match(ctx, word, a, e.limits)
}

// Union concatenates the languages of a and b.
func (e *Engine) Union(ctx context.Context, a, b *domain.Automaton) ([]string, error) {
	return e.explorer.Union(ctx, a, b, e.limits)
}

// UnionSet is the deduplicated union of the languages of a and b.
func (e *Engine) UnionSet(ctx context.Context, a, b *domain.Automaton) ([]string, error) {
	return e.explorer.UnionSet(ctx, a, b, e.limits)
}

// Intersect returns the words accepted by both a and b.
func (e *Engine) Intersect(ctx context.Context, a, b *domain.Automaton) ([]string, error) {
	return e.explorer.Intersect(ctx, a, b, e.limits)
}
