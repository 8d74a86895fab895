package flagx

import (
	"github.com/eggybyte-technology/flagx/internal/registry"
)

// Versioned is a config layered across ordered version numbers. Each
// version contributes a delta: the flags newly set or changed at exactly
// that version. Queries on the unrestricted instance answer for the highest
// registered version; At derives views restricted to lower ceilings.
type Versioned interface {
	Config

	// ChildSets returns the raw per-version deltas as registered. The map
	// is always the full, unfiltered registration, regardless of any At
	// call that produced the receiver. The returned map is a copy; the
	// configs inside it are immutable.
	ChildSets() map[int]Config

	// At returns a view whose queries behave as if only the deltas with
	// version at or below the given ceiling existed, merged in ascending
	// version order with later versions winning per key. A ceiling below
	// every registered version yields a view with no explicit entries; a
	// ceiling above the highest version is equivalent to the full merge.
	At(version int) Versioned
}

type versioned struct {
	children map[int]registry.Values
	merged   registry.Values
}

func (v *versioned) Has(flag Key) bool {
	_, ok := v.merged[flag.ID()]
	return ok
}

func (v *versioned) Equal(other Config) bool {
	return other != nil && registry.Equal(v.merged, other.explicit())
}

func (v *versioned) explicit() registry.Values {
	return v.merged
}

func (v *versioned) ChildSets() map[int]Config {
	sets := make(map[int]Config, len(v.children))
	for version, values := range v.children {
		sets[version] = &config{values: values}
	}
	return sets
}

func (v *versioned) At(version int) Versioned {
	return &versioned{
		children: v.children,
		merged:   registry.Collapse(v.children, version),
	}
}

// EqualChildSets reports whether two versioned configs were built from the
// same raw per-version deltas. This is a diagnostic comparison; Equal on
// Versioned compares the collapsed cumulative mapping instead.
func EqualChildSets(a, b Versioned) bool {
	as, bs := a.ChildSets(), b.ChildSets()
	if len(as) != len(bs) {
		return false
	}
	for version, cfg := range as {
		other, ok := bs[version]
		if !ok || !cfg.Equal(other) {
			return false
		}
	}
	return true
}

// VersionedBuilder accumulates per-version deltas and produces immutable
// versioned configs. Not safe for concurrent use.
type VersionedBuilder struct {
	children map[int]registry.Values
}

// NewVersionedBuilder creates an empty versioned config builder.
func NewVersionedBuilder() *VersionedBuilder {
	return &VersionedBuilder{children: map[int]registry.Values{}}
}

// Version registers the delta introduced at exactly the given version
// number. fn receives a fresh Builder holding only that version's changes,
// never the cumulative state. Registering the same version twice replaces
// the earlier delta wholesale; registration order is otherwise irrelevant.
func (vb *VersionedBuilder) Version(version int, fn func(*Builder)) *VersionedBuilder {
	b := NewBuilder()
	if fn != nil {
		fn(b)
	}
	vb.children[version] = b.values.Clone()
	return vb
}

// Build freezes the registered deltas into an immutable versioned config.
// The unrestricted instance answers for the highest registered version.
func (vb *VersionedBuilder) Build() Versioned {
	children := make(map[int]registry.Values, len(vb.children))
	for version, values := range vb.children {
		children[version] = values.Clone()
	}

	highest := 0
	for _, version := range registry.Versions(children) {
		highest = version
	}

	return &versioned{
		children: children,
		merged:   registry.Collapse(children, highest),
	}
}
