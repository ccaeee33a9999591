package dfs

import (
	"github.com/katalvlaran/arenalath/graph"
	"github.com/katalvlaran/arenalath/internal/arena"
)

// Callbacks is the capability set a Walk caller may supply; any field left
// nil is simply not invoked. Callbacks must not mutate g or call Walk
// again on the same State. OnEdge may call State.Classify(v0, v1) to learn
// how the edge relates to the DFS tree at the moment it fires.
type Callbacks struct {
	// OnVertexEarly fires once per reached vertex, at first discovery.
	OnVertexEarly func(v int)

	// OnEdge fires for v0->v1 edges explored from v0, once per edge, with
	// undirected mirror edges suppressed per the rule documented on Walk.
	OnEdge func(v0, v1 int)

	// OnVertexLate fires once per reached vertex, after every outgoing
	// edge has been considered.
	OnVertexLate func(v int)
}

// Walk runs iterative depth-first search over g starting at root, using s
// as scratch space. s must have been Created for g and not yet used by a
// prior Walk.
//
// Undirected edges: OnEdge is suppressed when the edge leads back to the
// current vertex's own parent (the mirror of the tree edge that reached
// it) or when the destination is already fully processed (the mirror of
// an edge already classified from the other endpoint), so each logical
// edge fires OnEdge exactly once.
//
// Fails with InvalidArgument if g has mutated since s was created, or
// root is not a live vertex of g.
func Walk(g *graph.Graph, s *State, root int, cb Callbacks) error {
	if g.Generation() != s.generation() {
		return arena.Fail(arena.InvalidArgument, component, "graph generation %d does not match traversal state generation %d", g.Generation(), s.generation())
	}
	if !g.IsLive(root) {
		return arena.Fail(arena.InvalidArgument, component, "root vertex %d is not live", root)
	}

	if err := s.work.Push(int32(root)); err != nil {
		return arena.Fail(arena.InvalidArgument, component, "vertex stack capacity exceeded: %v", err)
	}

	for s.work.Len() > 0 {
		raw, err := s.work.Peek()
		if err != nil {
			return arena.Fail(arena.InvalidArgument, component, "unexpected empty stack: %v", err)
		}
		v0 := int(raw)

		if !s.Discovered(v0) {
			s.discovered.Set(v0)
			s.setEntryTime(v0, s.tick())
			if cb.OnVertexEarly != nil {
				cb.OnVertexEarly(v0)
			}
		}

		cursor := s.nextEdgeOf(v0)
		if cursor != -1 {
			s.setNextEdge(v0, g.EdgeNext(cursor))
			v1 := g.EdgeDestination(cursor)

			if !s.Discovered(v1) {
				s.setParent(v1, int32(v0))
				if cb.OnEdge != nil {
					cb.OnEdge(v0, v1)
				}
				if err := s.work.Push(int32(v1)); err != nil {
					return arena.Fail(arena.InvalidArgument, component, "vertex stack capacity exceeded: %v", err)
				}
			} else {
				suppress := !g.Directed() && (s.Parent(v0) == v1 || s.Processed(v1))
				if !suppress && cb.OnEdge != nil {
					cb.OnEdge(v0, v1)
				}
			}

			continue
		}

		if cb.OnVertexLate != nil {
			cb.OnVertexLate(v0)
		}
		s.setExitTime(v0, s.tick())
		s.processed.Set(v0)
		if _, err := s.work.Pop(); err != nil {
			return arena.Fail(arena.InvalidArgument, component, "unexpected empty stack: %v", err)
		}
	}

	return nil
}
