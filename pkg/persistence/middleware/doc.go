// Package middleware decorates automaton stores with caching and logging.
package middleware
