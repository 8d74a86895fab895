package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneIndependence(t *testing.T) {
	original := Values{"a": 1, "b": "two"}
	clone := original.Clone()

	clone["a"] = 99
	clone["c"] = true

	assert.Equal(t, 1, original["a"])
	assert.NotContains(t, original, "c")
}

func TestOverlayLastWins(t *testing.T) {
	dst := Values{"a": 1, "b": 2}
	dst.Overlay(Values{"b": 20, "c": 30})

	assert.Equal(t, Values{"a": 1, "b": 20, "c": 30}, dst)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Values{}, Values{}))
	assert.True(t, Equal(Values{"a": 1, "b": "x"}, Values{"b": "x", "a": 1}))
	assert.False(t, Equal(Values{"a": 1}, Values{"a": 2}))
	assert.False(t, Equal(Values{"a": 1}, Values{"b": 1}))
	assert.False(t, Equal(Values{"a": 1}, Values{"a": 1, "b": 2}))
}

func TestVersionsSorted(t *testing.T) {
	children := map[int]Values{5: {}, -1: {}, 3: {}, 0: {}}
	assert.Equal(t, []int{-1, 0, 3, 5}, Versions(children))
}

func TestCollapse(t *testing.T) {
	children := map[int]Values{
		0: {"two": true, "mode": "three"},
		3: {"one": false},
		5: {"mode": "two"},
	}

	tests := []struct {
		name     string
		ceiling  int
		expected Values
	}{
		{"below all", -1, Values{}},
		{"first step", 0, Values{"two": true, "mode": "three"}},
		{"between steps", 4, Values{"two": true, "mode": "three", "one": false}},
		{"highest", 5, Values{"two": true, "mode": "two", "one": false}},
		{"above all", 7, Values{"two": true, "mode": "two", "one": false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Collapse(children, tt.ceiling))
		})
	}
}

func TestCollapseDoesNotMutateChildren(t *testing.T) {
	children := map[int]Values{0: {"a": 1}, 1: {"a": 2}}
	_ = Collapse(children, 1)

	assert.Equal(t, Values{"a": 1}, children[0])
	assert.Equal(t, Values{"a": 2}, children[1])
}
