// Package stack implements a fixed-capacity LIFO stack of int32 values over
// a caller-owned buffer, following the same ComputeBufferSize/Create/
// GetBufferSize/Relocate protocol as every other component in this module.
// It is dfs.State's internal explicit-recursion stack, never exposed
// directly.
package stack

import (
	"encoding/binary"

	"github.com/katalvlaran/arenalath/internal/arena"
)

const (
	component  = "stack"
	headerSize = 8 // capacity(4) + count(4)
)

// Stack is a fixed-capacity LIFO stack of int32 values.
type Stack struct {
	buf      []byte
	header   []byte
	slots    []byte
	capacity int
}

// ComputeBufferSize returns the exact byte count Create needs for a stack
// holding up to capacity int32 values.
func ComputeBufferSize(capacity int) int {
	l := arena.NewLayout(nil)
	l.Bytes(headerSize, 4)
	l.Bytes(capacity*4, 4)

	return l.Size()
}

// Create constructs an empty Stack of the given capacity in buf.
//
// Fails with InvalidArgument if buf is nil, capacity <= 0, or len(buf) is
// smaller than ComputeBufferSize(capacity).
func Create(capacity int, buf []byte) (*Stack, error) {
	if capacity <= 0 {
		return nil, arena.Fail(arena.InvalidArgument, component, "capacity %d must be positive", capacity)
	}
	need := ComputeBufferSize(capacity)
	if buf == nil || len(buf) < need {
		return nil, arena.Fail(arena.InvalidArgument, component, "buffer too small: have %d, need %d", len(buf), need)
	}

	l := arena.NewLayout(buf)
	header := l.Bytes(headerSize, 4)
	slots := l.Bytes(capacity*4, 4)

	s := &Stack{buf: buf[:need], header: header, slots: slots, capacity: capacity}
	binary.LittleEndian.PutUint32(s.header[0:4], uint32(capacity))
	s.setCount(0)

	return s, nil
}

// GetBufferSize returns the size recorded at Create.
func (s *Stack) GetBufferSize() int { return len(s.buf) }

// Relocate copies s's buffer into newBuf and returns a fresh handle over
// it. After Relocate, s must not be used again.
func (s *Stack) Relocate(newBuf []byte) (*Stack, error) {
	size := s.GetBufferSize()
	if newBuf == nil || len(newBuf) < size {
		return nil, arena.Fail(arena.InvalidArgument, component, "relocation target too small: have %d, need %d", len(newBuf), size)
	}
	copy(newBuf, s.buf[:size])

	l := arena.NewLayout(newBuf)
	header := l.Bytes(headerSize, 4)
	slots := l.Bytes(s.capacity*4, 4)

	return &Stack{buf: newBuf[:size], header: header, slots: slots, capacity: s.capacity}, nil
}

// Len reports the number of values currently on the stack.
func (s *Stack) Len() int { return s.count() }

// Push pushes v onto the stack. Fails with OperationFailed if the stack is
// at capacity.
func (s *Stack) Push(v int32) error {
	n := s.count()
	if n == s.capacity {
		return arena.Fail(arena.OperationFailed, component, "stack full (capacity %d)", s.capacity)
	}
	s.setSlot(n, v)
	s.setCount(n + 1)

	return nil
}

// Pop removes and returns the top value. Fails with OperationFailed if the
// stack is empty.
func (s *Stack) Pop() (int32, error) {
	n := s.count()
	if n == 0 {
		return 0, arena.Fail(arena.OperationFailed, component, "stack is empty")
	}
	v := s.slot(n - 1)
	s.setCount(n - 1)

	return v, nil
}

// Peek returns the top value without removing it. Fails with
// OperationFailed if the stack is empty.
func (s *Stack) Peek() (int32, error) {
	n := s.count()
	if n == 0 {
		return 0, arena.Fail(arena.OperationFailed, component, "stack is empty")
	}

	return s.slot(n - 1), nil
}

func (s *Stack) count() int     { return int(binary.LittleEndian.Uint32(s.header[4:8])) }
func (s *Stack) setCount(c int) { binary.LittleEndian.PutUint32(s.header[4:8], uint32(c)) }

func (s *Stack) slot(i int) int32 {
	return int32(binary.LittleEndian.Uint32(s.slots[i*4 : i*4+4]))
}

func (s *Stack) setSlot(i int, v int32) {
	binary.LittleEndian.PutUint32(s.slots[i*4:i*4+4], uint32(v))
}
