// Package dfs implements iterative depth-first search over a graph.Graph
// using a State the caller allocates in its own buffer: discovered/
// processed bitsets, a parent array, entry/exit timestamps, a per-vertex
// "next edge to consider" cursor, and an internal explicit stack, all in
// place of recursion.
package dfs

import (
	"encoding/binary"

	"github.com/katalvlaran/arenalath/graph"
	"github.com/katalvlaran/arenalath/internal/arena"
	"github.com/katalvlaran/arenalath/internal/stack"
)

const (
	component  = "dfs"
	headerSize = 24 // vertexCapacity(4) + reserved(4) + generation(8) + time(8)
)

// EdgeKind classifies a directed edge relative to the DFS tree rooted at
// the traversal's current search.
type EdgeKind int

const (
	// Tree marks an edge v0->v1 where v1 was first discovered via v0.
	Tree EdgeKind = iota
	// Back marks an edge into an ancestor still on the stack — proof of a
	// cycle in a directed graph.
	Back
	// Forward marks an edge into an already-finished descendant.
	Forward
	// Cross marks an edge into an already-finished vertex that is neither
	// ancestor nor descendant.
	Cross
)

func (k EdgeKind) String() string {
	switch k {
	case Tree:
		return "tree"
	case Back:
		return "back"
	case Forward:
		return "forward"
	case Cross:
		return "cross"
	default:
		return "unknown"
	}
}

// State is DFS scratch space for one traversal (or one forest-covering
// sweep, as topo.Sort does) of a specific graph. It captures the graph's
// mutation generation at Create time; Walk rejects a State whose captured
// generation no longer matches the graph's current one.
type State struct {
	buf            []byte
	header         []byte
	discovered     arena.BitSet
	processed      arena.BitSet
	parent         []byte // int32 per vertex
	entryTime      []byte // int32 per vertex
	exitTime       []byte // int32 per vertex
	nextEdge       []byte // int32 per vertex, pool index or -1
	work           *stack.Stack
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
	l.Bytes(vertexCapacity*4, 4)
	l.Bytes(vertexCapacity*4, 4)
	l.Bytes(vertexCapacity*4, 4)
	l.Bytes(stack.ComputeBufferSize(vertexCapacity), 4)

	return l.Size()
}

// Create constructs a State over buf for g: both bitsets zeroed, every
// parent/entry/exit set to -1/0, next_edge[v] seeded from v's current
// edge-list head, and the internal stack emptied.
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
	entryBuf := l.Bytes(vc*4, 4)
	exitBuf := l.Bytes(vc*4, 4)
	nextEdgeBuf := l.Bytes(vc*4, 4)
	workBuf := l.Bytes(stack.ComputeBufferSize(vc), 4)

	work, err := stack.Create(vc, workBuf)
	if err != nil {
		return nil, err
	}

	s := &State{
		buf:            buf[:need],
		header:         header,
		discovered:     arena.NewBitSet(discoveredBuf),
		processed:      arena.NewBitSet(processedBuf),
		parent:         parentBuf,
		entryTime:      entryBuf,
		exitTime:       exitBuf,
		nextEdge:       nextEdgeBuf,
		work:           work,
		vertexCapacity: vc,
	}
	binary.LittleEndian.PutUint32(s.header[0:4], uint32(vc))
	for v := 0; v < vc; v++ {
		s.setParent(v, -1)
		s.setEntryTime(v, 0)
		s.setExitTime(v, 0)
		if g.IsLive(v) {
			s.setNextEdge(v, g.EdgeHead(v))
		} else {
			s.setNextEdge(v, -1)
		}
	}
	s.setGeneration(g.Generation())
	s.setTime(0)

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
	entryBuf := l.Bytes(s.vertexCapacity*4, 4)
	exitBuf := l.Bytes(s.vertexCapacity*4, 4)
	nextEdgeBuf := l.Bytes(s.vertexCapacity*4, 4)
	workBuf := l.Bytes(stack.ComputeBufferSize(s.vertexCapacity), 4)

	work, err := s.work.Relocate(workBuf)
	if err != nil {
		return nil, err
	}

	return &State{
		buf:            newBuf[:size],
		header:         header,
		discovered:     arena.NewBitSet(discoveredBuf),
		processed:      arena.NewBitSet(processedBuf),
		parent:         parentBuf,
		entryTime:      entryBuf,
		exitTime:       exitBuf,
		nextEdge:       nextEdgeBuf,
		work:           work,
		vertexCapacity: s.vertexCapacity,
	}, nil
}

// Discovered reports whether v has been pushed at least once.
func (s *State) Discovered(v int) bool { return s.discovered.Get(v) }

// Processed reports whether v and all its descendants are fully explored.
func (s *State) Processed(v int) bool { return s.processed.Get(v) }

// Parent returns v's predecessor in the DFS tree, or -1 if v is a root or
// was never reached.
func (s *State) Parent(v int) int { return int(s.get32(s.parent, v)) }

// EntryTime returns the tick at which v was first discovered.
func (s *State) EntryTime(v int) int { return int(s.get32(s.entryTime, v)) }

// ExitTime returns the tick at which v finished (all descendants
// processed).
func (s *State) ExitTime(v int) int { return int(s.get32(s.exitTime, v)) }

// Classify reports how edge v0->v1 relates to the DFS tree, per the parent
// link, the discovered/processed bits, and entry timestamps. Valid only for edges already explored by
// Walk (on_edge fires with the classification available).
func (s *State) Classify(v0, v1 int) EdgeKind {
	switch {
	case s.Parent(v1) == v0:
		return Tree
	case s.Discovered(v1) && !s.Processed(v1):
		return Back
	case s.Processed(v1) && s.EntryTime(v1) > s.EntryTime(v0):
		return Forward
	default:
		return Cross
	}
}

func (s *State) setParent(v int, p int32)    { s.set32(s.parent, v, p) }
func (s *State) setEntryTime(v int, t int32) { s.set32(s.entryTime, v, t) }
func (s *State) setExitTime(v int, t int32)  { s.set32(s.exitTime, v, t) }
func (s *State) nextEdgeOf(v int) int32      { return s.get32(s.nextEdge, v) }
func (s *State) setNextEdge(v int, n int32)  { s.set32(s.nextEdge, v, n) }

func (s *State) get32(arr []byte, i int) int32 {
	return int32(binary.LittleEndian.Uint32(arr[i*4 : i*4+4]))
}

func (s *State) set32(arr []byte, i int, v int32) {
	binary.LittleEndian.PutUint32(arr[i*4:i*4+4], uint32(v))
}

func (s *State) generation() uint64 { return binary.LittleEndian.Uint64(s.header[8:16]) }
func (s *State) setGeneration(g uint64) {
	binary.LittleEndian.PutUint64(s.header[8:16], g)
}

func (s *State) time() int32     { return int32(binary.LittleEndian.Uint32(s.header[16:20])) }
func (s *State) setTime(t int32) { binary.LittleEndian.PutUint32(s.header[16:20], uint32(t)) }
func (s *State) tick() int32 {
	t := s.time() + 1
	s.setTime(t)

	return t
}
