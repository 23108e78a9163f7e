// Package redis stores automata in Redis as JSON documents indexed by a sorted set.
package redis
