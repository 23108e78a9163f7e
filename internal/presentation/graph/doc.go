// Package graph renders automata as Graphviz DOT or Mermaid diagrams.
package graph
