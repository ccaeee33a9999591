package arena_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/arenalath/internal/arena"
	"github.com/stretchr/testify/assert"
)

func TestFail_WrapsKindSentinel(t *testing.T) {
	err := arena.Fail(arena.InvalidArgument, "widget", "bad value %d", 7)
	assert.ErrorIs(t, err, arena.ErrInvalidArgument)
	assert.NotErrorIs(t, err, arena.ErrOperationFailed)
	assert.Contains(t, err.Error(), "widget")
	assert.Contains(t, err.Error(), "bad value 7")

	err = arena.Fail(arena.OperationFailed, "widget", "exhausted")
	assert.ErrorIs(t, err, arena.ErrOperationFailed)
}

func TestFailWith_WrapsBothSentinels(t *testing.T) {
	domainErr := errors.New("widget: specific problem")
	err := arena.FailWith(arena.OperationFailed, domainErr, "widget", "detail %d", 3)
	assert.ErrorIs(t, err, arena.ErrOperationFailed)
	assert.ErrorIs(t, err, domainErr)
}

func TestMust_PanicsOnError(t *testing.T) {
	assert.NotPanics(t, func() { arena.Must(nil) })
	assert.Panics(t, func() { arena.Must(errors.New("boom")) })
}

func TestAlign_RoundsUpToPowerOfTwo(t *testing.T) {
	assert.Equal(t, 0, arena.Align(0, 8))
	assert.Equal(t, 8, arena.Align(1, 8))
	assert.Equal(t, 8, arena.Align(8, 8))
	assert.Equal(t, 16, arena.Align(9, 8))
	assert.Equal(t, 4, arena.Align(1, 4))
}

func TestLayout_ReplaysIdenticalOffsetsAcrossRuns(t *testing.T) {
	sizer := arena.NewLayout(nil)
	sizer.Bytes(3, 4) // forces alignment padding
	sizer.Bytes(16, 8)
	need := sizer.Size()

	buf := make([]byte, need)
	l := arena.NewLayout(buf)
	a := l.Bytes(3, 4)
	b := l.Bytes(16, 8)

	assert.Equal(t, need, l.Size())
	assert.Len(t, a, 3)
	assert.Len(t, b, 16)
}

func TestBitSet_GetSetClear(t *testing.T) {
	data := make([]byte, arena.BitsetBytes(40))
	bs := arena.NewBitSet(data)

	assert.False(t, bs.Get(5))
	bs.Set(5)
	assert.True(t, bs.Get(5))
	bs.Clear(5)
	assert.False(t, bs.Get(5))

	bs.Set(0)
	bs.Set(39)
	bs.ClearAll()
	assert.False(t, bs.Get(0))
	assert.False(t, bs.Get(39))
}

func TestBitsetBytes_RoundsUpToWordMultiple(t *testing.T) {
	assert.Equal(t, 4, arena.BitsetBytes(1))
	assert.Equal(t, 4, arena.BitsetBytes(32))
	assert.Equal(t, 8, arena.BitsetBytes(33))
}
