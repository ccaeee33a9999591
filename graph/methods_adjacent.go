// File methods_adjacent.go holds the intrusive singly-linked edge-list
// primitives shared by AddEdge, RemoveEdge, and RemoveVertex: walking a
// vertex's edgeHead chain, testing membership, and splicing nodes in and
// out of it. dfs reaches into this chain directly (via EdgeHead/EdgeNext
// below) to drive its per-vertex next_edge cursor without re-walking from
// scratch on every step.
package graph

// EdgeHead returns the pool index of v's first outgoing edge node, or -1
// if v has none. Exposed for dfs's next_edge cursor initialization.
func (g *Graph) EdgeHead(v int) int32 {
	return g.vrec(v).edgeHead()
}

// EdgeNext returns the pool index of the edge node chained after node
// (itself a pool index returned by EdgeHead or EdgeNext), or -1 if node is
// the chain's tail.
func (g *Graph) EdgeNext(node int32) int32 {
	return edgeNode{rec: g.edgePool.Slot(int(node))}.next()
}

// EdgeDestination returns the destination vertex id stored in edge node
// index node.
func (g *Graph) EdgeDestination(node int32) int {
	return int(edgeNode{rec: g.edgePool.Slot(int(node))}.destination())
}

// hasEdgeInternal reports whether an edge node s→d exists in s's chain,
// without validating liveness of either endpoint.
func (g *Graph) hasEdgeInternal(s, d int) bool {
	for n := g.vrec(s).edgeHead(); n != freeSlot; n = (edgeNode{rec: g.edgePool.Slot(int(n))}).next() {
		if (edgeNode{rec: g.edgePool.Slot(int(n))}).destination() == int32(d) {
			return true
		}
	}

	return false
}

// linkEdge prepends a freshly allocated edge node (pool index idx)
// pointing at destination d onto s's chain.
func (g *Graph) linkEdge(s int, idx int, d int) {
	node := edgeNode{rec: g.edgePool.Slot(idx)}
	node.setDestination(int32(d))
	rec := g.vrec(s)
	node.setNext(rec.edgeHead())
	rec.setEdgeHead(int32(idx))
	rec.setDegree(rec.degree() + 1)
}

// unlinkEdge splices the first s→d node out of s's chain and frees it back
// to the edge pool. Reports whether a node was found and removed.
func (g *Graph) unlinkEdge(s, d int) bool {
	rec := g.vrec(s)
	prev := int32(freeSlot)
	cur := rec.edgeHead()
	for cur != freeSlot {
		node := edgeNode{rec: g.edgePool.Slot(int(cur))}
		next := node.next()
		if node.destination() == int32(d) {
			if prev == freeSlot {
				rec.setEdgeHead(next)
			} else {
				edgeNode{rec: g.edgePool.Slot(int(prev))}.setNext(next)
			}
			rec.setDegree(rec.degree() - 1)
			_ = g.edgePool.FreeIndex(int(cur))

			return true
		}
		prev = cur
		cur = next
	}

	return false
}
