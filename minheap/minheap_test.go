package minheap_test

import (
	"testing"

	"github.com/katalvlaran/arenalath/internal/arena"
	"github.com/katalvlaran/arenalath/minheap"
	"github.com/katalvlaran/arenalath/tagged"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp() minheap.Comparator {
	return minheap.ComparatorFunc(func(a, b tagged.Value) int {
		return int(a.Int32() - b.Int32())
	})
}

func newHeap(t *testing.T, capacity int) *minheap.Heap {
	t.Helper()
	need := minheap.ComputeBufferSize(capacity)
	h, err := minheap.Create(capacity, intCmp(), make([]byte, need))
	require.NoError(t, err)

	return h
}

// Heap ordering (min): insert [3,1,4,1,5,9,2,6], pop six times, expect
// [1,1,2,3,4,5]; final size 2; peek after is 6.
func TestHeap_OrderingMin(t *testing.T) {
	h := newHeap(t, 8)
	for _, v := range []int32{3, 1, 4, 1, 5, 9, 2, 6} {
		require.NoError(t, h.Insert(tagged.FromInt32(v), tagged.FromInt32(v)))
	}
	require.NoError(t, h.Validate())

	var popped []int32
	for i := 0; i < 6; i++ {
		k, _, err := h.Pop()
		require.NoError(t, err)
		popped = append(popped, k.Int32())
	}
	assert.Equal(t, []int32{1, 1, 2, 3, 4, 5}, popped)
	assert.Equal(t, 2, h.Len())

	k, _, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, int32(6), k.Int32())
}

func TestInsert_FailsWhenFull(t *testing.T) {
	h := newHeap(t, 2)
	require.NoError(t, h.Insert(tagged.FromInt32(1), tagged.Zero))
	require.NoError(t, h.Insert(tagged.FromInt32(2), tagged.Zero))
	err := h.Insert(tagged.FromInt32(3), tagged.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrOperationFailed)
}

func TestPop_FailsWhenEmpty(t *testing.T) {
	h := newHeap(t, 4)
	_, _, err := h.Pop()
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrOperationFailed)
}

// Heap size bookkeeping.
func TestSizeBookkeeping(t *testing.T) {
	h := newHeap(t, 4)
	for i, v := range []int32{5, 2, 8} {
		require.NoError(t, h.Insert(tagged.FromInt32(v), tagged.Zero))
		assert.Equal(t, i+1, h.Len())
	}
	k1, v1, err := h.Peek()
	require.NoError(t, err)
	k2, v2, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 2, h.Len())
}

func TestRelocate_PreservesContents(t *testing.T) {
	need := minheap.ComputeBufferSize(8)
	buf := make([]byte, need)
	h, err := minheap.Create(8, intCmp(), buf)
	require.NoError(t, err)
	for _, v := range []int32{9, 4, 7, 1} {
		require.NoError(t, h.Insert(tagged.FromInt32(v), tagged.FromInt32(v*10)))
	}

	newBuf := make([]byte, need)
	relocated, err := h.Relocate(newBuf)
	require.NoError(t, err)
	require.NoError(t, relocated.Validate())

	var popped []int32
	for relocated.Len() > 0 {
		k, v, err := relocated.Pop()
		require.NoError(t, err)
		assert.Equal(t, k.Int32()*10, v.Int32())
		popped = append(popped, k.Int32())
	}
	assert.Equal(t, []int32{1, 4, 7, 9}, popped)
}
