package flagx

// Flag is a typed feature flag: a string identity plus a fallback value of
// type V returned whenever a config holds no explicit entry for the flag.
// Flags are immutable value types; identifiers are expected to be unique
// within an embedding system.
type Flag[V any] struct {
	id       string
	fallback V
}

// New creates a flag with the given identifier and fallback value.
// V may be any value-like type, including named enum types.
func New[V any](id string, fallback V) Flag[V] {
	return Flag[V]{id: id, fallback: fallback}
}

// Bool creates a boolean flag.
func Bool(id string, fallback bool) Flag[bool] {
	return New(id, fallback)
}

// Int creates an integer flag.
func Int(id string, fallback int) Flag[int] {
	return New(id, fallback)
}

// String creates a string flag.
func String(id, fallback string) Flag[string] {
	return New(id, fallback)
}

// ID returns the flag identifier.
func (f Flag[V]) ID() string {
	return f.id
}

// Fallback returns the value queries report when no explicit value was set.
func (f Flag[V]) Fallback() V {
	return f.fallback
}

// Of pairs the flag with a value of its declared type for use with
// Builder.Value. The pairing is checked at compile time, so a config can
// never hold a value that disagrees with its flag's type.
func (f Flag[V]) Of(value V) Binding {
	return Binding{id: f.id, value: value}
}

// Key is the erased view of a flag, carrying identity only. Every Flag[V]
// implements Key.
type Key interface {
	// ID returns the flag identifier.
	ID() string
}

// Binding is a type-checked (flag, value) pair accepted by Builder.Value.
type Binding struct {
	id    string
	value any
}
