// Package cli wires the command-line application: configuration, the engine,
// the automaton store and the observability stack.
package cli
