/*
Package ports defines the driven ports (interfaces) for the lingo engine.

These interfaces decouple exploration from the places automata come from,
allowing the engine to read definitions from files, memory or Redis.

# Key Interfaces

  - AutomatonLoader: Resolves a reference (path or name) to an automaton.
  - AutomatonStore: Persists named automata (Save, Load, Delete, List).
*/
package ports
