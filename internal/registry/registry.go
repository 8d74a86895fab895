// Package registry provides the untyped value store backing flag configs.
package registry

import (
	"reflect"
	"slices"
)

// Values is an explicit flag mapping keyed by flag identifier. The stored
// values carry their runtime type; type agreement with the owning flag is
// enforced by the typed facade at write time.
type Values map[string]any

// Clone returns an independent copy of the mapping.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Overlay merges other into the receiver with other taking precedence on
// key collisions.
func (v Values) Overlay(other Values) {
	for k, val := range other {
		v[k] = val
	}
}

// Equal reports whether two mappings hold the same keys and values.
// Order is irrelevant; values are compared deeply.
func Equal(a, b Values) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}

// Versions returns the registered version numbers in ascending order.
func Versions(children map[int]Values) []int {
	versions := make([]int, 0, len(children))
	for v := range children {
		versions = append(versions, v)
	}
	slices.Sort(versions)
	return versions
}

// Collapse folds the per-version deltas whose version is at or below
// ceiling into one cumulative mapping, in ascending version order. Each
// later delta overrides earlier ones on key collisions. A ceiling below
// every registered version yields an empty mapping.
func Collapse(children map[int]Values, ceiling int) Values {
	merged := Values{}
	for _, version := range Versions(children) {
		if version > ceiling {
			break
		}
		merged.Overlay(children[version])
	}
	return merged
}
