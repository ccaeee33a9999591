package bfs

import (
	"github.com/katalvlaran/arenalath/graph"
	"github.com/katalvlaran/arenalath/internal/arena"
)

// Callbacks is the capability set a Walk caller may supply; any field left
// nil is simply not invoked. Callbacks must not mutate g or call Walk
// again on the same State.
type Callbacks struct {
	// OnVertexEarly fires once per reached vertex, right after it is
	// dequeued and before its edges are explored.
	OnVertexEarly func(v int)

	// OnEdge fires once per logical edge touching a vertex as it is
	// explored: once per undirected pair, once per directed arc.
	OnEdge func(v0, v1 int)

	// OnVertexLate fires once per reached vertex, after all its edges
	// have been explored.
	OnVertexLate func(v int)
}

// Walk runs breadth-first search over g starting at root, using s as
// scratch space. s must have been Created for g and not yet used by a
// prior Walk.
//
// Fails with InvalidArgument if g has mutated since s was created (its
// generation no longer matches), or root is not a live vertex of g.
func Walk(g *graph.Graph, s *State, root int, cb Callbacks) error {
	if g.Generation() != s.generation() {
		return arena.Fail(arena.InvalidArgument, component, "graph generation %d does not match traversal state generation %d", g.Generation(), s.generation())
	}
	if !g.IsLive(root) {
		return arena.Fail(arena.InvalidArgument, component, "root vertex %d is not live", root)
	}

	s.discovered.Set(root)
	if err := s.queue.Push(int32(root)); err != nil {
		return arena.Fail(arena.InvalidArgument, component, "vertex queue capacity exceeded: %v", err)
	}

	for s.queue.Len() > 0 {
		raw, err := s.queue.Pop()
		if err != nil {
			return arena.Fail(arena.InvalidArgument, component, "unexpected empty queue: %v", err)
		}
		v0 := int(raw)

		if cb.OnVertexEarly != nil {
			cb.OnVertexEarly(v0)
		}

		// Mark processed before exploring edges so an undirected
		// back-edge to v0 is not double-invoked.
		s.processed.Set(v0)

		for n := g.EdgeHead(v0); n != -1; n = g.EdgeNext(n) {
			v1 := g.EdgeDestination(n)

			if !s.processed.Get(v1) || g.Directed() {
				if cb.OnEdge != nil {
					cb.OnEdge(v0, v1)
				}
			}
			if !s.discovered.Get(v1) {
				s.discovered.Set(v1)
				s.setParent(v1, int32(v0))
				if err := s.queue.Push(int32(v1)); err != nil {
					return arena.Fail(arena.InvalidArgument, component, "vertex queue capacity exceeded: %v", err)
				}
			}
		}

		if cb.OnVertexLate != nil {
			cb.OnVertexLate(v0)
		}
	}

	return nil
}
