// Package types defines the shared Go types used by the vitals monitor
// packages. A Reading is the canonical in-memory form of one set of vital
// sign samples; it carries no identity and is never mutated after creation.
package types
