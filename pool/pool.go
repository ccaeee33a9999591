// Package pool implements a fixed-size-block allocator over a caller-owned
// buffer. Free slots form a singly-linked free-list whose "next" pointer is
// the 4 bytes at the start of each free slot, encoded as a slot index
// (-1 denotes end-of-list). Alloc and Free are both O(1); nothing the pool
// does ever grows the buffer or calls into the Go allocator after Create.
//
// This is the edge-storage building block graph.Graph allocates its edge
// nodes from; it is also usable standalone for any fixed-size record type.
package pool

import (
	"encoding/binary"
	"unsafe"

	"github.com/katalvlaran/arenalath/internal/arena"
)

const (
	component  = "pool"
	endOfList  = int32(-1)
	headerSize = 12 // elementSize(4) + elementCount(4) + head(4)
)

// Allocator is a fixed-size-block pool over a caller-supplied buffer.
// ElementSize must be at least 4 bytes, since the free-list next-pointer is
// stored in a slot's first 4 bytes.
type Allocator struct {
	buf         []byte // the entire backing buffer (header + slots)
	header      []byte // first headerSize bytes of buf
	slots       []byte // the elementCount*elementSize slot array
	elementSize int
	elementCount int
}

// ComputeBufferSize returns the exact byte count Create needs for a pool of
// elementCount slots, each elementSize bytes. Pure and deterministic.
func ComputeBufferSize(elementSize, elementCount int) int {
	l := arena.NewLayout(nil)
	l.Bytes(headerSize, 4)
	l.Bytes(elementSize*elementCount, 4)

	return l.Size()
}

// Create constructs an Allocator in buf, formatting every slot into the
// free-list (slot i's next-pointer set to i+1, last slot's set to
// endOfList) and setting head to 0.
//
// Fails with InvalidArgument if buf is nil, elementSize < 4, elementCount
// <= 0, or len(buf) is smaller than ComputeBufferSize(elementSize,
// elementCount).
func Create(elementSize, elementCount int, buf []byte) (*Allocator, error) {
	if elementSize < 4 {
		return nil, arena.Fail(arena.InvalidArgument, component, "element size %d is below the minimum of 4 bytes", elementSize)
	}
	if elementCount <= 0 {
		return nil, arena.Fail(arena.InvalidArgument, component, "element count %d must be positive", elementCount)
	}
	need := ComputeBufferSize(elementSize, elementCount)
	if buf == nil || len(buf) < need {
		return nil, arena.Fail(arena.InvalidArgument, component, "buffer too small: have %d, need %d", len(buf), need)
	}

	l := arena.NewLayout(buf)
	header := l.Bytes(headerSize, 4)
	slots := l.Bytes(elementSize*elementCount, 4)

	a := &Allocator{
		buf:          buf[:need],
		header:       header,
		slots:        slots,
		elementSize:  elementSize,
		elementCount: elementCount,
	}
	binary.LittleEndian.PutUint32(a.header[0:4], uint32(elementSize))
	binary.LittleEndian.PutUint32(a.header[4:8], uint32(elementCount))

	for i := 0; i < elementCount; i++ {
		next := int32(i + 1)
		if i == elementCount-1 {
			next = endOfList
		}
		a.setNext(i, next)
	}
	a.setHead(0)

	return a, nil
}

// GetBufferSize returns the size recorded at Create.
func (a *Allocator) GetBufferSize() int {
	return len(a.buf)
}

// GetElementSize returns the fixed slot size this pool was created with.
func (a *Allocator) GetElementSize() int {
	return a.elementSize
}

// Relocate copies a's buffer into newBuf (which must be at least
// a.GetBufferSize() long) and returns a fresh handle over it. After
// Relocate, a must not be used again.
func (a *Allocator) Relocate(newBuf []byte) (*Allocator, error) {
	size := a.GetBufferSize()
	if newBuf == nil || len(newBuf) < size {
		return nil, arena.Fail(arena.InvalidArgument, component, "relocation target too small: have %d, need %d", len(newBuf), size)
	}
	copy(newBuf, a.buf[:size])

	l := arena.NewLayout(newBuf)
	header := l.Bytes(headerSize, 4)
	slots := l.Bytes(a.elementSize*a.elementCount, 4)

	return &Allocator{
		buf:          newBuf[:size],
		header:       header,
		slots:        slots,
		elementSize:  a.elementSize,
		elementCount: a.elementCount,
	}, nil
}

// Alloc claims a free slot and returns its byte range within the buffer.
// Fails with OperationFailed when the pool is exhausted.
func (a *Allocator) Alloc() ([]byte, error) {
	head := a.head()
	if head == endOfList {
		return nil, arena.Fail(arena.OperationFailed, component, "pool exhausted (%d slots)", a.elementCount)
	}
	a.setHead(a.next(int(head)))

	return a.slot(int(head)), nil
}

// Free returns p — a slice previously returned by Alloc on this Allocator —
// to the free-list. Fails with InvalidArgument if p does not point within
// this pool's slot array, is not aligned on an element boundary, or is
// empty. Double-free is not detected: freeing an already-free slot silently
// corrupts the free-list.
func (a *Allocator) Free(p []byte) error {
	idx, ok := a.indexOf(p)
	if !ok {
		return arena.Fail(arena.InvalidArgument, component, "pointer does not belong to this pool")
	}
	a.setNext(idx, a.head())
	a.setHead(int32(idx))

	return nil
}

func (a *Allocator) slot(i int) []byte {
	start := i * a.elementSize

	return a.slots[start : start+a.elementSize]
}

// Outstanding returns the number of slots currently allocated (not sitting
// on the free-list). Walks the free-list once, so it is O(elementCount)
// rather than O(1); exposed for consistency checks (graph.Validate), not
// the allocation hot path.
func (a *Allocator) Outstanding() int {
	free := 0
	for n := a.head(); n != endOfList; n = a.next(int(n)) {
		free++
	}

	return a.elementCount - free
}

// Slot returns the byte range of slot index i, live or free. Exposed so
// composed structures (graph.Graph's edge pool) can address nodes by a
// stable integer index rather than by raw slice identity — an index
// survives Relocate, since it is recomputed from the new slot array the
// same way on both sides.
func (a *Allocator) Slot(i int) []byte {
	return a.slot(i)
}

// IndexOf is the exported form of indexOf, for composed structures that
// need to translate an Alloc'd slice back into a stable index once, at
// allocation time, and store that index instead of the slice.
func (a *Allocator) IndexOf(p []byte) (int, bool) {
	return a.indexOf(p)
}

// AllocIndex is Alloc, returning the new slot's stable index instead of its
// byte range.
func (a *Allocator) AllocIndex() (int, error) {
	p, err := a.Alloc()
	if err != nil {
		return 0, err
	}
	idx, _ := a.indexOf(p)

	return idx, nil
}

// FreeIndex is Free, addressing the slot by its stable index instead of a
// byte range.
func (a *Allocator) FreeIndex(i int) error {
	if i < 0 || i >= a.elementCount {
		return arena.Fail(arena.InvalidArgument, component, "index %d out of range [0,%d)", i, a.elementCount)
	}

	return a.Free(a.slot(i))
}

func (a *Allocator) next(i int) int32 {
	return int32(binary.LittleEndian.Uint32(a.slot(i)[0:4]))
}

func (a *Allocator) setNext(i int, next int32) {
	binary.LittleEndian.PutUint32(a.slot(i)[0:4], uint32(next))
}

func (a *Allocator) head() int32 {
	return int32(binary.LittleEndian.Uint32(a.header[8:12]))
}

func (a *Allocator) setHead(h int32) {
	binary.LittleEndian.PutUint32(a.header[8:12], uint32(h))
}

// indexOf resolves p back to a slot index, validating that it aliases this
// pool's slot array at an element boundary. Pointer identity is recovered
// via the address of the slice's first byte, the one place this package
// reaches for unsafe — slices carry no other way to compare "is this a
// sub-slice of that array".
func (a *Allocator) indexOf(p []byte) (int, bool) {
	if len(p) != a.elementSize || len(a.slots) == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(&a.slots[0]))
	addr := uintptr(unsafe.Pointer(&p[0]))
	if addr < base {
		return 0, false
	}
	off := addr - base
	if off%uintptr(a.elementSize) != 0 {
		return 0, false
	}
	idx := int(off / uintptr(a.elementSize))
	if idx >= a.elementCount {
		return 0, false
	}

	return idx, true
}
