package domain

import "errors"

// ErrDimensionMismatch is returned when the matrix is not N×N for N states.
var ErrDimensionMismatch = errors.New("transition matrix dimensions do not match state count")

// ErrInvalidStateIndex is returned when state indices are not unique and dense.
var ErrInvalidStateIndex = errors.New("state indices must be unique and dense")

// ErrNoInitialState is returned when no state is flagged initial.
var ErrNoInitialState = errors.New("automaton has no initial state")

// ErrMultipleInitialStates is returned when more than one state is flagged initial.
var ErrMultipleInitialStates = errors.New("automaton has more than one initial state")

// ErrStartOutOfRange is returned when a traversal starts from an unknown state.
var ErrStartOutOfRange = errors.New("start state out of range")

// ErrInvalidBound is returned when a traversal is requested without a positive bound.
var ErrInvalidBound = errors.New("bound must be greater than zero")

// ErrAutomatonNotFound is returned when an automaton cannot be found in a store.
var ErrAutomatonNotFound = errors.New("automaton not found")
