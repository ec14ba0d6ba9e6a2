// Package random provides the toolbox's seeded pseudo-random number source.
// The generator seeds itself lazily on first use through a configurable seed
// handler, defaulting to system entropy. It is not suitable for
// cryptographic use.
package random
