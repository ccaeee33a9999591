// Package bfs implements breadth-first search over a graph.Graph using a
// State the caller allocates in its own buffer: two bitsets (discovered,
// processed), a parent array, and an internal vertex queue, all laid out
// consecutively behind a small header.
package bfs

import (
	"encoding/binary"

	"github.com/katalvlaran/arenalath/graph"
	"github.com/katalvlaran/arenalath/internal/arena"
	"github.com/katalvlaran/arenalath/internal/ring"
)

const (
	component  = "bfs"
	headerSize = 16 // vertexCapacity(4) + reserved(4) + generation(8)
)

// State is BFS scratch space for one traversal of a specific graph. It
// captures the graph's mutation generation at Create time; Walk rejects a
// State whose captured generation no longer matches the graph's current
// one, since every offset inside State assumes the vertex layout it was
// built against.
//
// A State is one-shot: Walk consumes a fresh discovery/processed state.
// To run another search, Create a new State (or re-Create in the same
// buffer).
type State struct {
	buf            []byte
	header         []byte
	discovered     arena.BitSet
	processed      arena.BitSet
	parent         []byte
	queue          *ring.Queue
	vertexCapacity int
}

// ComputeBufferSize returns the exact byte count Create needs for a State
// over a graph with the given vertex capacity.
func ComputeBufferSize(vertexCapacity int) int {
	l := arena.NewLayout(nil)
	l.Bytes(headerSize, 8)
	bsBytes := arena.BitsetBytes(vertexCapacity)
	l.Bytes(bsBytes, 4)
	l.Bytes(bsBytes, 4)
	l.Bytes(vertexCapacity*4, 4)
	l.Bytes(ring.ComputeBufferSize(vertexCapacity), 4)

	return l.Size()
}

// Create constructs a State over buf for g: both bitsets zeroed, every
// parent set to -1, and the internal queue emptied.
//
// Fails with InvalidArgument if buf is nil or smaller than
// ComputeBufferSize(g.VertexCapacity()).
func Create(g *graph.Graph, buf []byte) (*State, error) {
	vc := g.VertexCapacity()
	need := ComputeBufferSize(vc)
	if buf == nil || len(buf) < need {
		return nil, arena.Fail(arena.InvalidArgument, component, "buffer too small: have %d, need %d", len(buf), need)
	}

	l := arena.NewLayout(buf)
	header := l.Bytes(headerSize, 8)
	bsBytes := arena.BitsetBytes(vc)
	discoveredBuf := l.Bytes(bsBytes, 4)
	processedBuf := l.Bytes(bsBytes, 4)
	parentBuf := l.Bytes(vc*4, 4)
	queueBuf := l.Bytes(ring.ComputeBufferSize(vc), 4)

	queue, err := ring.Create(vc, queueBuf)
	if err != nil {
		return nil, err
	}

	s := &State{
		buf:            buf[:need],
		header:         header,
		discovered:     arena.NewBitSet(discoveredBuf),
		processed:      arena.NewBitSet(processedBuf),
		parent:         parentBuf,
		queue:          queue,
		vertexCapacity: vc,
	}
	binary.LittleEndian.PutUint32(s.header[0:4], uint32(vc))
	for v := 0; v < vc; v++ {
		s.setParent(v, -1)
	}
	s.setGeneration(g.Generation())

	return s, nil
}

// GetBufferSize returns the size recorded at Create.
func (s *State) GetBufferSize() int { return len(s.buf) }

// Relocate copies s's buffer into newBuf and returns a fresh handle over
// it. After Relocate, s must not be used again.
func (s *State) Relocate(newBuf []byte) (*State, error) {
	size := s.GetBufferSize()
	if newBuf == nil || len(newBuf) < size {
		return nil, arena.Fail(arena.InvalidArgument, component, "relocation target too small: have %d, need %d", len(newBuf), size)
	}
	copy(newBuf, s.buf[:size])

	l := arena.NewLayout(newBuf)
	header := l.Bytes(headerSize, 8)
	bsBytes := arena.BitsetBytes(s.vertexCapacity)
	discoveredBuf := l.Bytes(bsBytes, 4)
	processedBuf := l.Bytes(bsBytes, 4)
	parentBuf := l.Bytes(s.vertexCapacity*4, 4)
	queueBuf := l.Bytes(ring.ComputeBufferSize(s.vertexCapacity), 4)

	queue, err := s.queue.Relocate(queueBuf)
	if err != nil {
		return nil, err
	}

	return &State{
		buf:            newBuf[:size],
		header:         header,
		discovered:     arena.NewBitSet(discoveredBuf),
		processed:      arena.NewBitSet(processedBuf),
		parent:         parentBuf,
		queue:          queue,
		vertexCapacity: s.vertexCapacity,
	}, nil
}

// Discovered reports whether v has been enqueued at least once.
func (s *State) Discovered(v int) bool { return s.discovered.Get(v) }

// Processed reports whether all of v's outgoing edges have been explored.
func (s *State) Processed(v int) bool { return s.processed.Get(v) }

// Parent returns v's predecessor in the BFS tree, or -1 if v is the root
// or was never reached.
func (s *State) Parent(v int) int {
	return int(int32(binary.LittleEndian.Uint32(s.parent[v*4 : v*4+4])))
}

func (s *State) setParent(v int, p int32) {
	binary.LittleEndian.PutUint32(s.parent[v*4:v*4+4], uint32(p))
}

func (s *State) generation() uint64 {
	return binary.LittleEndian.Uint64(s.header[8:16])
}

func (s *State) setGeneration(g uint64) {
	binary.LittleEndian.PutUint64(s.header[8:16], g)
}
