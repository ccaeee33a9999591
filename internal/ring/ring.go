// Package ring implements a fixed-capacity FIFO queue of int32 values over
// a caller-owned buffer, following the same ComputeBufferSize/Create/
// GetBufferSize/Relocate protocol as every other component in this module.
// It is bfs.State's internal frontier queue, never exposed directly.
package ring

import (
	"encoding/binary"

	"github.com/katalvlaran/arenalath/internal/arena"
)

const (
	component  = "ring"
	headerSize = 12 // capacity(4) + head(4) + count(4)
)

// Queue is a fixed-capacity circular buffer of int32 values.
type Queue struct {
	buf      []byte
	header   []byte
	slots    []byte
	capacity int
}

// ComputeBufferSize returns the exact byte count Create needs for a queue
// holding up to capacity int32 values.
func ComputeBufferSize(capacity int) int {
	l := arena.NewLayout(nil)
	l.Bytes(headerSize, 4)
	l.Bytes(capacity*4, 4)

	return l.Size()
}

// Create constructs an empty Queue of the given capacity in buf.
//
// Fails with InvalidArgument if buf is nil, capacity <= 0, or len(buf) is
// smaller than ComputeBufferSize(capacity).
func Create(capacity int, buf []byte) (*Queue, error) {
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

	q := &Queue{buf: buf[:need], header: header, slots: slots, capacity: capacity}
	binary.LittleEndian.PutUint32(q.header[0:4], uint32(capacity))
	q.setHead(0)
	q.setCount(0)

	return q, nil
}

// GetBufferSize returns the size recorded at Create.
func (q *Queue) GetBufferSize() int { return len(q.buf) }

// Relocate copies q's buffer into newBuf and returns a fresh handle over
// it. After Relocate, q must not be used again.
func (q *Queue) Relocate(newBuf []byte) (*Queue, error) {
	size := q.GetBufferSize()
	if newBuf == nil || len(newBuf) < size {
		return nil, arena.Fail(arena.InvalidArgument, component, "relocation target too small: have %d, need %d", len(newBuf), size)
	}
	copy(newBuf, q.buf[:size])

	l := arena.NewLayout(newBuf)
	header := l.Bytes(headerSize, 4)
	slots := l.Bytes(q.capacity*4, 4)

	return &Queue{buf: newBuf[:size], header: header, slots: slots, capacity: q.capacity}, nil
}

// Len reports the number of values currently queued.
func (q *Queue) Len() int { return q.count() }

// Push enqueues v. Fails with OperationFailed if the queue is at capacity.
func (q *Queue) Push(v int32) error {
	n := q.count()
	if n == q.capacity {
		return arena.Fail(arena.OperationFailed, component, "queue full (capacity %d)", q.capacity)
	}
	tail := (q.head() + n) % q.capacity
	q.setSlot(tail, v)
	q.setCount(n + 1)

	return nil
}

// Pop dequeues and returns the oldest value. Fails with OperationFailed if
// the queue is empty.
func (q *Queue) Pop() (int32, error) {
	n := q.count()
	if n == 0 {
		return 0, arena.Fail(arena.OperationFailed, component, "queue is empty")
	}
	h := q.head()
	v := q.slot(h)
	q.setHead((h + 1) % q.capacity)
	q.setCount(n - 1)

	return v, nil
}

func (q *Queue) head() int  { return int(binary.LittleEndian.Uint32(q.header[4:8])) }
func (q *Queue) setHead(h int) { binary.LittleEndian.PutUint32(q.header[4:8], uint32(h)) }
func (q *Queue) count() int { return int(binary.LittleEndian.Uint32(q.header[8:12])) }
func (q *Queue) setCount(c int) { binary.LittleEndian.PutUint32(q.header[8:12], uint32(c)) }

func (q *Queue) slot(i int) int32 {
	return int32(binary.LittleEndian.Uint32(q.slots[i*4 : i*4+4]))
}

func (q *Queue) setSlot(i int, v int32) {
	binary.LittleEndian.PutUint32(q.slots[i*4:i*4+4], uint32(v))
}
