package ringdeque_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/internal/ringdeque"
)

func TestDeque_FrontAndBackOrdering(t *testing.T) {
	d := ringdeque.New[int](2)
	d.PushBack(1)
	d.PushBack(2)
	d.PushFront(0)

	require.Equal(t, 3, d.Len())
	for _, want := range []int{0, 1, 2} {
		v, ok := d.PopFront()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	require.True(t, d.Empty())
}

func TestDeque_PopFromEmpty(t *testing.T) {
	d := ringdeque.New[int](1)
	_, ok := d.PopFront()
	require.False(t, ok)
}

func TestDeque_GrowsPastInitialCapacity(t *testing.T) {
	d := ringdeque.New[int](1)
	const n = 50
	for i := 0; i < n; i++ {
		d.PushBack(i)
	}
	for i := 0; i < n; i++ {
		v, ok := d.PopFront()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestDeque_MixedPushFrontAndBack(t *testing.T) {
	d := ringdeque.New[int](4)
	// simulate 0-1 BFS interleaving: push back (cost-1 edges), then
	// several front pushes (cost-0 edges) that should be drained first.
	d.PushBack(10)
	d.PushFront(2)
	d.PushFront(1)
	d.PushBack(11)

	var got []int
	for {
		v, ok := d.PopFront()
		if !ok {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 10, 11}, got)
}
