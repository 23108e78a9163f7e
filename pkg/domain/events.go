package domain

import (
	"context"
)

// EventType defines the category of the event.
type EventType string

const (
	EventVisit     EventType = "visit"
	EventAccept    EventType = "accept"
	EventBacktrack EventType = "backtrack"
	EventMatch     EventType = "match"
)

// VisitEvent is emitted when the explorer enters or leaves a state.
type VisitEvent struct {
	Type  EventType `json:"type"`
	State int       `json:"state"`
	Depth int       `json:"depth"`
	Word  string    `json:"word"`
}

// AcceptEvent is emitted when the generator records a new word.
type AcceptEvent struct {
	State int    `json:"state"`
	Word  string `json:"word"`
}

// MatchEvent is emitted when the matcher finishes a query.
type MatchEvent struct {
	Word  string `json:"word"`
	Found bool   `json:"found"`
	Path  Path   `json:"path,omitempty"`
	Steps int    `json:"steps"`
}

// LifecycleHooks defines callbacks for explorer observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnVisit     func(context.Context, *VisitEvent)
	OnAccept    func(context.Context, *AcceptEvent)
	OnBacktrack func(context.Context, *VisitEvent)
	OnMatch     func(context.Context, *MatchEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnVisit:     chain(h.OnVisit, other.OnVisit),
		OnAccept:    chain(h.OnAccept, other.OnAccept),
		OnBacktrack: chain(h.OnBacktrack, other.OnBacktrack),
		OnMatch:     chain(h.OnMatch, other.OnMatch),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
