package stack_test

import (
	"testing"

	"github.com/katalvlaran/arenalath/internal/arena"
	"github.com/katalvlaran/arenalath/internal/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPop_LIFOOrder(t *testing.T) {
	need := stack.ComputeBufferSize(4)
	s, err := stack.Create(4, make([]byte, need))
	require.NoError(t, err)

	for _, v := range []int32{1, 2, 3} {
		require.NoError(t, s.Push(v))
	}
	assert.Equal(t, 3, s.Len())

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, int32(3), top)

	var out []int32
	for s.Len() > 0 {
		v, err := s.Pop()
		require.NoError(t, err)
		out = append(out, v)
	}
	assert.Equal(t, []int32{3, 2, 1}, out)
}

func TestPush_FailsWhenFull(t *testing.T) {
	need := stack.ComputeBufferSize(1)
	s, err := stack.Create(1, make([]byte, need))
	require.NoError(t, err)
	require.NoError(t, s.Push(1))

	err = s.Push(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrOperationFailed)
}

func TestPop_FailsWhenEmpty(t *testing.T) {
	need := stack.ComputeBufferSize(1)
	s, err := stack.Create(1, make([]byte, need))
	require.NoError(t, err)

	_, err = s.Pop()
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrOperationFailed)
}
