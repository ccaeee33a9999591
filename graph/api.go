// File api.go is the thin, deterministic public facade over types.go's
// layout: constructors (ComputeBufferSize, Create, GetBufferSize, Relocate)
// and read-only accessors. No algorithmic complexity lives here.
package graph

import (
	"encoding/binary"

	"github.com/katalvlaran/arenalath/internal/arena"
	"github.com/katalvlaran/arenalath/pool"
)

// header layout (all little-endian):
//
//	[0:4]   vertexCapacity  uint32
//	[4:8]   edgeCapacity    uint32 (edge-node capacity)
//	[8:12]  directed        uint32 (0 or 1)
//	[12:16] vertexCount     uint32
//	[16:20] edgeCount       uint32 (logical edges)
//	[20:24] vertexFreeHead  int32  (-1 = empty)
//	[24:32] generation      uint64
//	[32:40] reserved

func (g *Graph) u32(off int) uint32        { return binary.LittleEndian.Uint32(g.header[off : off+4]) }
func (g *Graph) setU32(off int, v uint32)  { binary.LittleEndian.PutUint32(g.header[off:off+4], v) }
func (g *Graph) i32(off int) int32         { return int32(g.u32(off)) }
func (g *Graph) setI32(off int, v int32)   { g.setU32(off, uint32(v)) }

func (g *Graph) vertexCountRaw() int       { return int(g.u32(12)) }
func (g *Graph) setVertexCount(n int)      { g.setU32(12, uint32(n)) }
func (g *Graph) edgeCountRaw() int         { return int(g.u32(16)) }
func (g *Graph) setEdgeCount(n int)        { g.setU32(16, uint32(n)) }
func (g *Graph) vertexFreeHead() int32     { return g.i32(20) }
func (g *Graph) setVertexFreeHead(v int32) { g.setI32(20, v) }

// Create constructs an empty Graph with the given vertex and edge-node
// capacities in buf. edgeCapacity bounds the number of edge *nodes*: a
// directed graph can hold edgeCapacity logical edges, an undirected one
// edgeCapacity/2 (each logical edge consumes two nodes).
//
// Fails with InvalidArgument if buf is nil, either capacity is <= 0, or
// len(buf) is smaller than ComputeBufferSize(vertexCapacity, edgeCapacity).
func Create(vertexCapacity, edgeCapacity int, directed bool, buf []byte) (*Graph, error) {
	if vertexCapacity <= 0 {
		return nil, arena.Fail(arena.InvalidArgument, component, "vertex capacity %d must be positive", vertexCapacity)
	}
	if edgeCapacity <= 0 {
		return nil, arena.Fail(arena.InvalidArgument, component, "edge capacity %d must be positive", edgeCapacity)
	}
	need := ComputeBufferSize(vertexCapacity, edgeCapacity)
	if buf == nil || len(buf) < need {
		return nil, arena.Fail(arena.InvalidArgument, component, "buffer too small: have %d, need %d", len(buf), need)
	}

	l := arena.NewLayout(buf)
	header := l.Bytes(headerSize, 8)
	vertices := l.Bytes(vertexCapacity*vertexRecordSize, 4)
	validIDs := l.Bytes(vertexCapacity*4, 4)
	idToValidIndex := l.Bytes(vertexCapacity*4, 4)
	poolBuf := l.Bytes(pool.ComputeBufferSize(edgeNodeSize, edgeCapacity), 4)

	edgePool, err := pool.Create(edgeNodeSize, edgeCapacity, poolBuf)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		buf:            buf[:need],
		header:         header,
		vertices:       vertices,
		validIDs:       validIDs,
		idToValidIndex: idToValidIndex,
		edgePool:       edgePool,
		vertexCapacity: vertexCapacity,
		edgeCapacity:   edgeCapacity,
	}
	g.setU32(0, uint32(vertexCapacity))
	g.setU32(4, uint32(edgeCapacity))
	if directed {
		g.setU32(8, 1)
	}

	for i := 0; i < vertexCapacity; i++ {
		rec := g.vrec(i)
		rec.setDegree(freeSlot)
		next := int32(i + 1)
		if i == vertexCapacity-1 {
			next = freeSlot
		}
		rec.setNextFree(next)
		rec.setEdgeHead(freeSlot)
	}
	g.setVertexFreeHead(0)

	return g, nil
}

// GetBufferSize returns the size recorded at Create.
func (g *Graph) GetBufferSize() int { return len(g.buf) }

// Relocate copies g's buffer into newBuf and returns a fresh handle over
// it. After Relocate, g must not be used again.
func (g *Graph) Relocate(newBuf []byte) (*Graph, error) {
	size := g.GetBufferSize()
	if newBuf == nil || len(newBuf) < size {
		return nil, arena.Fail(arena.InvalidArgument, component, "relocation target too small: have %d, need %d", len(newBuf), size)
	}
	copy(newBuf, g.buf[:size])

	l := arena.NewLayout(newBuf)
	header := l.Bytes(headerSize, 8)
	vertices := l.Bytes(g.vertexCapacity*vertexRecordSize, 4)
	validIDs := l.Bytes(g.vertexCapacity*4, 4)
	idToValidIndex := l.Bytes(g.vertexCapacity*4, 4)
	poolBuf := l.Bytes(pool.ComputeBufferSize(edgeNodeSize, g.edgeCapacity), 4)

	edgePool, err := g.edgePool.Relocate(poolBuf)
	if err != nil {
		return nil, err
	}

	return &Graph{
		buf:            newBuf[:size],
		header:         header,
		vertices:       vertices,
		validIDs:       validIDs,
		idToValidIndex: idToValidIndex,
		edgePool:       edgePool,
		vertexCapacity: g.vertexCapacity,
		edgeCapacity:   g.edgeCapacity,
	}, nil
}

// Directed reports the edge mode fixed at Create.
func (g *Graph) Directed() bool { return g.u32(8) != 0 }

// VertexCapacity returns the maximum number of live vertices.
func (g *Graph) VertexCapacity() int { return g.vertexCapacity }

// EdgeCapacity returns the maximum number of edge nodes (not logical edges).
func (g *Graph) EdgeCapacity() int { return g.edgeCapacity }

// VertexCount returns the number of currently live vertices.
func (g *Graph) VertexCount() int { return g.vertexCountRaw() }

// EdgeCount returns the number of currently live logical edges.
func (g *Graph) EdgeCount() int { return g.edgeCountRaw() }

// Generation returns the monotonically increasing mutation counter. A
// traversal state (bfs.State, dfs.State) captures this at creation and
// compares it on every subsequent call, rejecting stale traversals with
// InvalidArgument.
func (g *Graph) Generation() uint64 {
	return binary.LittleEndian.Uint64(g.header[24:32])
}

func (g *Graph) bumpGeneration() {
	binary.LittleEndian.PutUint64(g.header[24:32], g.Generation()+1)
}

// ValidVertexIDAt returns the vertex id stored at position i (0 <= i <
// VertexCount()) of the compact, unsorted live-id table, in the order
// maintained internally for O(1) removal (swap-with-tail), not insertion
// order. Lets callers sweep every live vertex by index — a topo.Sort
// component scan, say — without allocating a buffer just to enumerate ids.
func (g *Graph) ValidVertexIDAt(i int) int {
	return int(int32(binary.LittleEndian.Uint32(g.validSlot(i))))
}
