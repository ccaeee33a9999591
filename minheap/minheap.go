// Package minheap implements a 1-based array-backed binary min-heap of
// (key, value) tagged.Value pairs over a caller-owned buffer, ordered by a
// caller-supplied Comparator.
//
// Complexity: Insert and Pop are O(log n); Peek is O(1); Validate is O(n).
package minheap

import (
	"encoding/binary"

	"github.com/katalvlaran/arenalath/internal/arena"
	"github.com/katalvlaran/arenalath/tagged"
)

const (
	component  = "minheap"
	headerSize = 8 // capacity(4) + nextEmpty(4)
	pairSize   = 8 // key(4) + value(4)
)

// Comparator is the capability a Heap is built with: a total order over
// tagged.Value keys. Modeling it as an interface rather than a bare func
// lets callers close over external state in a struct.
type Comparator interface {
	// Compare returns <0 if a orders before b, 0 if equal, >0 if after.
	Compare(a, b tagged.Value) int
}

// ComparatorFunc adapts a plain function to the Comparator interface.
type ComparatorFunc func(a, b tagged.Value) int

// Compare implements Comparator.
func (f ComparatorFunc) Compare(a, b tagged.Value) int { return f(a, b) }

// Heap is a 1-based binary min-heap over a caller-supplied buffer. Index 1
// is the root; children of index i are at 2i and 2i+1; the parent of i is
// at i/2.
type Heap struct {
	buf      []byte
	header   []byte
	pairs    []byte // capacity+1 slots; index 0 unused
	capacity int
	cmp      Comparator
}

// ComputeBufferSize returns the byte count Create needs to hold up to
// capacity (key, value) pairs.
func ComputeBufferSize(capacity int) int {
	l := arena.NewLayout(nil)
	l.Bytes(headerSize, 4)
	l.Bytes(pairSize*(capacity+1), 4)

	return l.Size()
}

// Create constructs an empty Heap of the given capacity in buf, ordered by
// cmp. Fails with InvalidArgument if cmp is nil, capacity <= 0, buf is nil,
// or buf is smaller than ComputeBufferSize(capacity).
func Create(capacity int, cmp Comparator, buf []byte) (*Heap, error) {
	if cmp == nil {
		return nil, arena.Fail(arena.InvalidArgument, component, "comparator is nil")
	}
	if capacity <= 0 {
		return nil, arena.Fail(arena.InvalidArgument, component, "capacity %d must be positive", capacity)
	}
	need := ComputeBufferSize(capacity)
	if buf == nil || len(buf) < need {
		return nil, arena.Fail(arena.InvalidArgument, component, "buffer too small: have %d, need %d", len(buf), need)
	}

	l := arena.NewLayout(buf)
	header := l.Bytes(headerSize, 4)
	pairs := l.Bytes(pairSize*(capacity+1), 4)

	h := &Heap{buf: buf[:need], header: header, pairs: pairs, capacity: capacity, cmp: cmp}
	binary.LittleEndian.PutUint32(h.header[0:4], uint32(capacity))
	h.setNextEmpty(1)

	return h, nil
}

// GetBufferSize returns the size recorded at Create.
func (h *Heap) GetBufferSize() int { return len(h.buf) }

// Relocate copies h's buffer into newBuf and returns a fresh handle bound
// to the same comparator. After Relocate, h must not be used again.
func (h *Heap) Relocate(newBuf []byte) (*Heap, error) {
	size := h.GetBufferSize()
	if newBuf == nil || len(newBuf) < size {
		return nil, arena.Fail(arena.InvalidArgument, component, "relocation target too small: have %d, need %d", len(newBuf), size)
	}
	copy(newBuf, h.buf[:size])

	l := arena.NewLayout(newBuf)
	header := l.Bytes(headerSize, 4)
	pairs := l.Bytes(pairSize*(h.capacity+1), 4)

	return &Heap{buf: newBuf[:size], header: header, pairs: pairs, capacity: h.capacity, cmp: h.cmp}, nil
}

// Len returns the current number of elements in the heap.
func (h *Heap) Len() int { return int(h.nextEmpty()) - 1 }

// Insert appends (key, value) and bubbles it up to restore heap order.
// Fails with OperationFailed when the heap is full.
func (h *Heap) Insert(key, value tagged.Value) error {
	n := h.nextEmpty()
	if int(n) > h.capacity {
		return arena.Fail(arena.OperationFailed, component, "heap is full (capacity %d)", h.capacity)
	}
	h.setPair(int(n), key, value)
	h.setNextEmpty(n + 1)
	h.bubbleUp(int(n))

	return nil
}

// Peek returns the root (key, value) without removing it. Fails with
// OperationFailed when the heap is empty.
func (h *Heap) Peek() (tagged.Value, tagged.Value, error) {
	if h.Len() == 0 {
		return tagged.Zero, tagged.Zero, arena.Fail(arena.OperationFailed, component, "heap is empty")
	}
	k, v := h.pair(1)

	return k, v, nil
}

// Pop removes and returns the root (key, value), moving the last element
// to the root and bubbling it down. Fails with OperationFailed when the
// heap is empty.
func (h *Heap) Pop() (tagged.Value, tagged.Value, error) {
	n := h.Len()
	if n == 0 {
		return tagged.Zero, tagged.Zero, arena.Fail(arena.OperationFailed, component, "heap is empty")
	}
	rk, rv := h.pair(1)
	lk, lv := h.pair(n)
	h.setPair(1, lk, lv)
	h.setNextEmpty(int32(n))
	if n > 1 {
		h.bubbleDown(1)
	}

	return rk, rv, nil
}

// Validate performs a structural check: nextEmpty is in range, and every
// non-root node's key is ordered at or after its parent's key.
func (h *Heap) Validate() error {
	n := h.nextEmpty()
	if n < 1 || int(n) > h.capacity+1 {
		return arena.Fail(arena.InvalidArgument, component, "nextEmpty %d out of range [1,%d]", n, h.capacity+1)
	}
	for i := 2; i < int(n); i++ {
		pk, _ := h.pair(i / 2)
		ck, _ := h.pair(i)
		if h.cmp.Compare(pk, ck) > 0 {
			return arena.Fail(arena.InvalidArgument, component, "heap order violated at index %d", i)
		}
	}

	return nil
}

func (h *Heap) bubbleUp(i int) {
	for i > 1 {
		parent := i / 2
		pk, _ := h.pair(parent)
		ck, _ := h.pair(i)
		if h.cmp.Compare(ck, pk) >= 0 {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap) bubbleDown(i int) {
	n := h.Len()
	for {
		left, right := 2*i, 2*i+1
		smallest := i
		sk, _ := h.pair(smallest)
		if left <= n {
			lk, _ := h.pair(left)
			if h.cmp.Compare(lk, sk) < 0 {
				smallest = left
				sk = lk
			}
		}
		if right <= n {
			rk, _ := h.pair(right)
			if h.cmp.Compare(rk, sk) < 0 {
				smallest = right
			}
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *Heap) swap(i, j int) {
	ki, vi := h.pair(i)
	kj, vj := h.pair(j)
	h.setPair(i, kj, vj)
	h.setPair(j, ki, vi)
}

func (h *Heap) nextEmpty() int32 {
	return int32(binary.LittleEndian.Uint32(h.header[4:8]))
}

func (h *Heap) setNextEmpty(n int32) {
	binary.LittleEndian.PutUint32(h.header[4:8], uint32(n))
}

func (h *Heap) pair(i int) (tagged.Value, tagged.Value) {
	start := i * pairSize
	slot := h.pairs[start : start+pairSize]

	return tagged.FromBits(binary.LittleEndian.Uint32(slot[0:4])),
		tagged.FromBits(binary.LittleEndian.Uint32(slot[4:8]))
}

func (h *Heap) setPair(i int, key, value tagged.Value) {
	start := i * pairSize
	slot := h.pairs[start : start+pairSize]
	binary.LittleEndian.PutUint32(slot[0:4], key.Bits())
	binary.LittleEndian.PutUint32(slot[4:8], value.Bits())
}
