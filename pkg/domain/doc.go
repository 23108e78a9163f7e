/*
Package domain contains the core model of a finite-state automaton.

It defines the fixed vocabulary used by every other package: states, labeled
transitions (with an explicit absent-edge value), the transition matrix and the
edge arena derived from it, and the paths produced by the matcher. The package
is kept pure and free of I/O or persistence concerns.

# Key Entities

  - State: A vertex with a dense index and initial/terminal flags.
  - Transition: One cell of the matrix, either a labeled edge or NoEdge.
  - Automaton: Validated states + matrix, plus an arena of present edges.
  - Path: The ordered state indices of one accepting traversal.
*/
package domain
