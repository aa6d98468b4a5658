package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAppendUnique verifies duplicates are never introduced.
func TestAppendUnique(t *testing.T) {
	list := []string{"a", "b"}
	assert.Equal(t, []string{"a", "b", "c"}, AppendUnique(list, "c"))
	assert.Equal(t, []string{"a", "b"}, AppendUnique([]string{"a", "b"}, "a"))
}

// TestRemove verifies order-preserving removal and the empty no-op.
func TestRemove(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, Remove([]string{"a", "b", "c"}, "b"))
	assert.Empty(t, Remove([]string{"b"}, "b"))
	assert.Equal(t, []string{"a"}, Remove([]string{"a"}, "z"))
}

// TestToggle_RoundTrip verifies two toggles restore the original
// membership.
func TestToggle_RoundTrip(t *testing.T) {
	list := []string{"a"}
	list = Toggle(list, "b")
	assert.True(t, Contains(list, "b"))
	list = Toggle(list, "b")
	assert.False(t, Contains(list, "b"))
	assert.Equal(t, []string{"a"}, list)
}
