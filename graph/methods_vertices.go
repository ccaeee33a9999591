// File methods_vertices.go implements the vertex lifecycle: AddVertex pops a
// slot from the free-list, RemoveVertex returns one, both keeping ValidIDs
// and the inverse index map as mutual inverses on live ids.
package graph

import (
	"encoding/binary"

	"github.com/katalvlaran/arenalath/internal/arena"
	"github.com/katalvlaran/arenalath/tagged"
)

// AddVertex claims a free vertex slot, sets its payload to data, and
// returns its stable vertex id. Fails with OperationFailed when the graph
// is at vertex capacity.
//
// Complexity: O(1).
func (g *Graph) AddVertex(data tagged.Value) (int, error) {
	head := g.vertexFreeHead()
	if head == freeSlot {
		return 0, arena.Fail(arena.OperationFailed, component, "graph is at vertex capacity (%d)", g.vertexCapacity)
	}
	id := int(head)
	rec := g.vrec(id)
	g.setVertexFreeHead(rec.nextFree())

	rec.setDegree(0)
	rec.setData(data)
	rec.setEdgeHead(freeSlot)

	pos := g.vertexCountRaw()
	binary.LittleEndian.PutUint32(g.validSlot(pos), uint32(id))
	binary.LittleEndian.PutUint32(g.idIndexSlot(id), uint32(pos))
	g.setVertexCount(pos + 1)
	g.bumpGeneration()

	return id, nil
}

// RemoveVertex removes v and every edge incident to it, then returns v's
// slot to the vertex free-list.
//
// Directed graphs cannot find v's incoming edges via v's own adjacency
// list, so removal scans every other live vertex's outgoing edges,
// making RemoveVertex O(V+E) on directed graphs versus O(degree(v)^2)
// worst case on undirected graphs.
//
// Fails with InvalidArgument if v is not live.
func (g *Graph) RemoveVertex(v int) error {
	if !g.isLive(v) {
		return g.vertexNotFound(v)
	}

	// Remove v's own outgoing edges one head-node at a time: removeEdgeInternal
	// always matches and unlinks the chain's current head, so this drains the
	// chain in O(degree) without collecting destinations into a side buffer.
	// In undirected mode this also removes every mirror edge pointing back at
	// v, so no further scan is needed.
	for n := g.EdgeHead(v); n != freeSlot; n = g.EdgeHead(v) {
		_ = g.removeEdgeInternal(v, g.EdgeDestination(n))
	}

	if g.Directed() {
		for i := 0; i < g.vertexCountRaw(); i++ {
			u := g.ValidVertexIDAt(i)
			if u == v {
				continue
			}
			if g.hasEdgeInternal(u, v) {
				_ = g.removeEdgeInternal(u, v)
			}
		}
	}

	rec := g.vrec(v)
	rec.setNextFree(g.vertexFreeHead())
	g.setVertexFreeHead(int32(v))
	rec.setDegree(freeSlot)

	pos := int(binary.LittleEndian.Uint32(g.idIndexSlot(v)))
	last := g.vertexCountRaw() - 1
	lastID := int(int32(binary.LittleEndian.Uint32(g.validSlot(last))))
	binary.LittleEndian.PutUint32(g.validSlot(pos), uint32(lastID))
	binary.LittleEndian.PutUint32(g.idIndexSlot(lastID), uint32(pos))
	g.setVertexCount(last)
	g.bumpGeneration()

	return nil
}

// GetVertexDegree reads v's out-degree. Fails with InvalidArgument if v is
// not live.
func (g *Graph) GetVertexDegree(v int) (int, error) {
	if !g.isLive(v) {
		return 0, g.vertexNotFound(v)
	}

	return int(g.vrec(v).degree()), nil
}

// GetVertexData reads v's payload. Fails with InvalidArgument if v is not
// live.
func (g *Graph) GetVertexData(v int) (tagged.Value, error) {
	if !g.isLive(v) {
		return tagged.Zero, g.vertexNotFound(v)
	}

	return g.vrec(v).data(), nil
}

// SetVertexData writes v's payload. Fails with InvalidArgument if v is not
// live.
func (g *Graph) SetVertexData(v int, data tagged.Value) error {
	if !g.isLive(v) {
		return g.vertexNotFound(v)
	}
	g.vrec(v).setData(data)

	return nil
}

func (g *Graph) vertexNotFound(v int) error {
	return arena.FailWith(arena.InvalidArgument, ErrVertexNotFound, component, "vertex %d is not live", v)
}

func (g *Graph) isLive(v int) bool {
	if v < 0 || v >= g.vertexCapacity {
		return false
	}

	return g.vrec(v).degree() != freeSlot
}

// IsLive reports whether v is a currently live vertex id. Exposed for
// traversal drivers (bfs, dfs, topo) that need to validate a root/start
// vertex without going through the error-returning accessors.
func (g *Graph) IsLive(v int) bool {
	return g.isLive(v)
}
