// Package loam stores automata in a Loam vault, a directory of JSON and YAML
// documents indexed by Loam's metadata cache.
//
// Saved automata are written as <name>.json in the same shape the file loader
// reads, so a stored document can also be passed to the CLI by path.
package loam
