package iterator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceIterator(t *testing.T) {
	it := NewSliceIterator([]string{"a", "b", "c"})
	require.Equal(t, 3, it.Size())

	var got []string
	for it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
	require.False(t, it.Next())
}

func TestSliceIterator_Empty(t *testing.T) {
	it := NewSliceIterator([]int(nil))
	require.Zero(t, it.Size())
	require.False(t, it.Next())
	require.Zero(t, it.Value())
}
