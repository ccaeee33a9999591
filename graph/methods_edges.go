// File methods_edges.go implements the edge lifecycle: AddEdge reserves
// both endpoints' pool nodes before linking either one, so a mid-insert
// pool-exhaustion failure never leaves a half-inserted undirected edge.
// RemoveEdge and GetVertexEdges walk the chains built in
// methods_adjacent.go.
package graph

import "github.com/katalvlaran/arenalath/internal/arena"

// AddEdge inserts an edge between s and d. In undirected mode this
// allocates two edge nodes (s→d and d→s) and is idempotent: calling it
// again with the same (unordered) pair is a silent no-op. In directed
// mode it allocates one node and is idempotent on the same ordered pair.
//
// Fails with InvalidArgument if s or d are not live or s == d
// (ErrLoopNotAllowed), and with OperationFailed if the edge pool has no
// room left for the node(s) this insert needs.
func (g *Graph) AddEdge(s, d int) error {
	if !g.isLive(s) {
		return g.vertexNotFound(s)
	}
	if !g.isLive(d) {
		return g.vertexNotFound(d)
	}
	if s == d {
		return arena.FailWith(arena.InvalidArgument, ErrLoopNotAllowed, component, "self-edge on vertex %d", s)
	}

	if g.hasEdgeInternal(s, d) {
		return nil
	}

	if !g.Directed() {
		idxSD, err := g.edgePool.AllocIndex()
		if err != nil {
			return arena.Fail(arena.OperationFailed, component, "edge pool exhausted: %v", err)
		}
		idxDS, err := g.edgePool.AllocIndex()
		if err != nil {
			_ = g.edgePool.FreeIndex(idxSD)

			return arena.Fail(arena.OperationFailed, component, "edge pool exhausted: %v", err)
		}
		g.linkEdge(s, idxSD, d)
		g.linkEdge(d, idxDS, s)
	} else {
		idx, err := g.edgePool.AllocIndex()
		if err != nil {
			return arena.Fail(arena.OperationFailed, component, "edge pool exhausted: %v", err)
		}
		g.linkEdge(s, idx, d)
	}

	g.setEdgeCount(g.edgeCountRaw() + 1)
	g.bumpGeneration()

	return nil
}

// RemoveEdge deletes the edge between s and d (both directions, in
// undirected mode). Fails with InvalidArgument if s or d are not live, and
// with ErrEdgeNotFound if no such edge exists.
func (g *Graph) RemoveEdge(s, d int) error {
	if !g.isLive(s) {
		return g.vertexNotFound(s)
	}
	if !g.isLive(d) {
		return g.vertexNotFound(d)
	}

	if !g.removeEdgeInternal(s, d) {
		return arena.FailWith(arena.OperationFailed, ErrEdgeNotFound, component, "%d -> %d", s, d)
	}

	return nil
}

// removeEdgeInternal splices out s→d (and, in undirected mode, d→s),
// updating the edge count and generation when something was actually
// removed. Reports whether an edge was found.
func (g *Graph) removeEdgeInternal(s, d int) bool {
	removed := g.unlinkEdge(s, d)
	if !g.Directed() {
		if g.unlinkEdge(d, s) {
			removed = true
		}
	}
	if removed {
		g.setEdgeCount(g.edgeCountRaw() - 1)
		g.bumpGeneration()
	}

	return removed
}

// GetVertexEdges writes v's out-neighbor ids into out, in chain order.
// expectedDegree must equal v's current degree (the caller is expected to
// have just called GetVertexDegree and sized out accordingly); a mismatch
// returns ErrDegreeMismatch, guarding against a caller racing a concurrent
// mutation or miscounting.
//
// Fails with InvalidArgument if v is not live, expectedDegree does not
// match, or len(out) < expectedDegree.
func (g *Graph) GetVertexEdges(v int, expectedDegree int, out []int) error {
	if !g.isLive(v) {
		return g.vertexNotFound(v)
	}
	actual := int(g.vrec(v).degree())
	if actual != expectedDegree {
		return arena.FailWith(arena.InvalidArgument, ErrDegreeMismatch, component, "expected %d, got %d", expectedDegree, actual)
	}
	if len(out) < expectedDegree {
		return arena.Fail(arena.InvalidArgument, component, "output slice too small: have %d, need %d", len(out), expectedDegree)
	}

	i := 0
	for n := g.vrec(v).edgeHead(); n != freeSlot; n = g.EdgeNext(n) {
		out[i] = g.EdgeDestination(n)
		i++
	}

	return nil
}

// HasEdge reports whether an s→d edge currently exists. Fails with
// InvalidArgument if either endpoint is not live.
func (g *Graph) HasEdge(s, d int) (bool, error) {
	if !g.isLive(s) {
		return false, g.vertexNotFound(s)
	}
	if !g.isLive(d) {
		return false, g.vertexNotFound(d)
	}

	return g.hasEdgeInternal(s, d), nil
}
