// File view.go implements Validate, an exhaustive internal-consistency
// check over the whole buffer: every live vertex's degree matches its
// chain length, every chain node's destination is itself live, undirected
// edges are mirrored in both directions, live+free vertex slots account
// for the whole capacity, the edge pool's outstanding node count matches
// the logical edge count, and validIDs/idToValidIndex form a bijection on
// live ids. Intended for tests and debugging, not the hot path.
package graph

import (
	"encoding/binary"

	"github.com/katalvlaran/arenalath/internal/arena"
)

// Validate walks the entire vertex and edge-node structure and reports the
// first inconsistency found, wrapped as InvalidArgument. A nil return means
// the graph's internal bookkeeping (free-lists, degrees, chain lengths,
// undirected mirroring, live counts, edge-pool accounting, and the
// validIDs/idToValidIndex bijection) is self-consistent.
func (g *Graph) Validate() error {
	liveCount := 0
	for id := 0; id < g.vertexCapacity; id++ {
		if !g.isLive(id) {
			continue
		}
		liveCount++

		degree := int(g.vrec(id).degree())
		chainLen := 0
		for n := g.vrec(id).edgeHead(); n != freeSlot; n = g.EdgeNext(n) {
			chainLen++
			dst := g.EdgeDestination(n)
			if !g.isLive(dst) {
				return arena.Fail(arena.InvalidArgument, component, "vertex %d has an edge to non-live vertex %d", id, dst)
			}
			if !g.Directed() && !g.hasEdgeInternal(dst, id) {
				return arena.Fail(arena.InvalidArgument, component, "undirected edge %d -> %d has no mirror %d -> %d", id, dst, dst, id)
			}
		}
		if chainLen != degree {
			return arena.Fail(arena.InvalidArgument, component, "vertex %d reports degree %d but chain has %d nodes", id, degree, chainLen)
		}
	}

	if liveCount != g.vertexCountRaw() {
		return arena.Fail(arena.InvalidArgument, component, "vertex count %d does not match %d live slots", g.vertexCountRaw(), liveCount)
	}

	// Walk the vertex free-list independently of the live scan above: a
	// corrupted or cyclic free-list can leave liveCount == vertexCountRaw()
	// while still failing to account for every slot in the capacity.
	freeCount := 0
	for n := g.vertexFreeHead(); n != freeSlot; n = g.vrec(int(n)).nextFree() {
		freeCount++
		if freeCount > g.vertexCapacity {
			return arena.Fail(arena.InvalidArgument, component, "vertex free-list exceeds capacity %d, likely cyclic", g.vertexCapacity)
		}
	}
	if liveCount+freeCount != g.vertexCapacity {
		return arena.Fail(arena.InvalidArgument, component, "live (%d) + free (%d) vertex slots do not equal capacity (%d)", liveCount, freeCount, g.vertexCapacity)
	}

	wantNodes := g.edgeCountRaw()
	if !g.Directed() {
		wantNodes *= 2
	}
	if got := g.edgePool.Outstanding(); got != wantNodes {
		return arena.Fail(arena.InvalidArgument, component, "edge pool has %d outstanding nodes, want %d for %d logical edge(s)", got, wantNodes, g.edgeCountRaw())
	}

	// validIDs and idToValidIndex must be mutual inverses on every live id.
	// Checking idToValidIndex[id] == i for every slot also rules out
	// duplicate ids in validIDs: idToValidIndex[id] holds one value, so two
	// positions claiming the same id could not both match their own index.
	for i := 0; i < liveCount; i++ {
		id := g.ValidVertexIDAt(i)
		if !g.isLive(id) {
			return arena.Fail(arena.InvalidArgument, component, "validIDs[%d] = %d is not live", i, id)
		}
		pos := int(int32(binary.LittleEndian.Uint32(g.idIndexSlot(id))))
		if pos != i {
			return arena.Fail(arena.InvalidArgument, component, "idToValidIndex[%d] = %d does not point back at validIDs[%d]", id, pos, i)
		}
	}

	return nil
}
