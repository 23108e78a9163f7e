// Package file persists automata as JSON or YAML documents on the local filesystem.
package file
