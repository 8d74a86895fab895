// Package flagx provides typed, immutable feature-flag sets with optional
// version layering.
//
// # Overview
//
// flagx associates typed flag keys with explicitly assigned values, falling
// back to each flag's declared default when no value was set. A versioned
// variant layers per-version deltas and merges them deterministically, later
// versions overriding earlier ones. All configs are immutable once built and
// therefore safe for unrestricted concurrent reads.
//
// # Features
//
//   - Typed flags via generics; wrong-type assignments fail at compile time
//   - Total queries: Value never fails, defaults guarantee an answer
//   - Builder chaining with last-wins merge semantics
//   - Versioned configs with ascending-fold delta merging and At() views
//   - Type-safe struct binding via flag/default tags with validation
//   - Manager for holding and swapping the active registry at runtime
//
// # Usage
//
//	var verbose = flagx.Bool("app/verbose", false)
//
//	cfg := flagx.NewBuilder().
//		Value(verbose.Of(true)).
//		Build()
//	on := flagx.Value(cfg, verbose)
//
//	versioned := flagx.NewVersionedBuilder().
//		Version(1, func(b *flagx.Builder) { b.Value(verbose.Of(true)) }).
//		Build()
//	old := versioned.At(0)
//
// # Concurrency
//
// Configs and versioned configs are immutable after Build and need no
// locking. Builders assume a single writer and must not be shared across
// goroutines.
package flagx
