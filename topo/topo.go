// Package topo computes a topological ordering of a directed graph.Graph by
// driving a dfs.State through a full forest-covering sweep and recording
// each vertex at its DFS finish time, in reverse.
package topo

import (
	"errors"

	"github.com/katalvlaran/arenalath/dfs"
	"github.com/katalvlaran/arenalath/graph"
	"github.com/katalvlaran/arenalath/internal/arena"
)

const component = "topo"

// ErrCycleDetected indicates Sort found a back edge: a cycle, so no
// topological order exists.
var ErrCycleDetected = errors.New("topo: cycle detected")

// Sort computes a topological ordering of every live vertex in g, writing
// it into out (which must be at least g.VertexCount() long). s is shared
// DFS scratch space; it must have been created for g and not yet used by a
// prior dfs.Walk, since Sort drives the whole forest through it in one
// sweep so already-processed vertices are skipped naturally.
//
// Fails with OperationFailed if g is undirected, and with InvalidArgument
// if out is too small, s's generation does not match g's, or the graph
// contains a cycle (wrapping ErrCycleDetected).
func Sort(g *graph.Graph, s *dfs.State, out []int) error {
	if !g.Directed() {
		return arena.Fail(arena.OperationFailed, component, "topological sort requires a directed graph")
	}
	n := g.VertexCount()
	if len(out) < n {
		return arena.Fail(arena.InvalidArgument, component, "output slice too small: have %d, need %d", len(out), n)
	}

	cursor := n - 1
	var cycleErr error
	cb := dfs.Callbacks{
		OnEdge: func(v0, v1 int) {
			if cycleErr != nil {
				return
			}
			if s.Classify(v0, v1) == dfs.Back {
				cycleErr = arena.FailWith(arena.InvalidArgument, ErrCycleDetected, component, "back edge %d -> %d", v0, v1)
			}
		},
		OnVertexLate: func(v int) {
			out[cursor] = v
			cursor--
		},
	}

	for i := 0; i < n; i++ {
		v := g.ValidVertexIDAt(i)
		if s.Processed(v) {
			continue
		}
		if err := dfs.Walk(g, s, v, cb); err != nil {
			return err
		}
		if cycleErr != nil {
			return cycleErr
		}
	}

	return nil
}
