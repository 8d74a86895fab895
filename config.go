package flagx

import (
	"github.com/eggybyte-technology/flagx/internal/registry"
)

// Config is an immutable set of explicitly assigned flag values. A config
// answers Has for flags that were explicitly set and falls back to flag
// defaults for everything else (see Value). Configs are safe for
// unrestricted concurrent reads.
//
// Config carries an unexported method so that only this package provides
// implementations.
type Config interface {
	// Has reports whether the flag was explicitly set in this config,
	// as opposed to merely falling back to its default.
	Has(flag Key) bool

	// Equal reports whether both configs hold the same explicit
	// key-to-value mappings. For versioned views the comparison is over
	// the collapsed cumulative mapping, not the raw per-version deltas.
	Equal(other Config) bool

	// explicit exposes the internal mapping to this package. Callers must
	// never mutate the returned map.
	explicit() registry.Values
}

type config struct {
	values registry.Values
}

var emptyConfig Config = &config{values: registry.Values{}}

// Empty returns the empty config: Has is always false and Value always
// reports flag defaults.
func Empty() Config {
	return emptyConfig
}

func (c *config) Has(flag Key) bool {
	_, ok := c.values[flag.ID()]
	return ok
}

func (c *config) Equal(other Config) bool {
	return other != nil && registry.Equal(c.values, other.explicit())
}

func (c *config) explicit() registry.Values {
	return c.values
}

// Value returns the value assigned to flag in cfg, or the flag's fallback
// when the flag was never explicitly set. The query is total: it never
// fails. Interface methods cannot be generic in Go, so the typed query
// lives at package level.
func Value[V any](cfg Config, flag Flag[V]) V {
	if raw, ok := cfg.explicit()[flag.id]; ok {
		if v, ok := raw.(V); ok {
			return v
		}
	}
	return flag.fallback
}

// Builder accumulates explicit flag values and produces immutable configs.
// Calls apply in order: later Value/Values calls override earlier entries
// for the same flag. Builders assume a single writer; they are not safe for
// concurrent use.
type Builder struct {
	values registry.Values
}

// NewBuilder creates an empty config builder.
func NewBuilder() *Builder {
	return &Builder{values: registry.Values{}}
}

// Value records an explicit flag assignment, replacing any earlier value
// for the same flag. Bindings are created with Flag.Of, which ties the
// value type to the flag at compile time.
func (b *Builder) Value(binding Binding) *Builder {
	b.values[binding.id] = binding.value
	return b
}

// Values copies every explicit entry from existing into the builder,
// overriding entries recorded by earlier calls on key collisions.
func (b *Builder) Values(existing Config) *Builder {
	b.values.Overlay(existing.explicit())
	return b
}

// Build produces an immutable snapshot of the accumulated mapping. The
// builder remains usable afterwards; further mutation never affects
// previously built configs.
func (b *Builder) Build() Config {
	return &config{values: b.values.Clone()}
}
