// Package kernel contains shared value objects used across the domain model.
// It provides UUID identifiers and Money amounts, both immutable and safe
// for concurrent use. Domain aggregates build on these primitives instead of
// raw library types so that validation happens once, at construction.
package kernel
