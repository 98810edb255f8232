// Package ir defines the JSON document tree produced by parse and
// consumed by encode. It is the internal representation of a single
// parse or encode call: each call builds a fresh tree and nothing is
// shared across calls, so trees need no locking.
package ir
