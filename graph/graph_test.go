package graph_test

import (
	"testing"

	"github.com/katalvlaran/arenalath/graph"
	"github.com/katalvlaran/arenalath/internal/arena"
	"github.com/katalvlaran/arenalath/tagged"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGraph(t *testing.T, vertexCap, edgeCap int, directed bool) *graph.Graph {
	t.Helper()
	need := graph.ComputeBufferSize(vertexCap, edgeCap)
	g, err := graph.Create(vertexCap, edgeCap, directed, make([]byte, need))
	require.NoError(t, err)

	return g
}

func TestCreate_RejectsBadInputs(t *testing.T) {
	_, err := graph.Create(0, 4, true, make([]byte, 256))
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrInvalidArgument)

	_, err = graph.Create(4, 0, true, make([]byte, 256))
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrInvalidArgument)

	need := graph.ComputeBufferSize(4, 4)
	_, err = graph.Create(4, 4, true, make([]byte, need-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrInvalidArgument)
}

func TestAddVertex_ExhaustsCapacity(t *testing.T) {
	g := newGraph(t, 2, 4, true)
	_, err := g.AddVertex(tagged.Zero)
	require.NoError(t, err)
	_, err = g.AddVertex(tagged.Zero)
	require.NoError(t, err)

	_, err = g.AddVertex(tagged.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrOperationFailed)
}

// Vertex count bookkeeping: VertexCount tracks
// live vertices exactly through adds and removes.
func TestVertexCount_Bookkeeping(t *testing.T) {
	g := newGraph(t, 4, 8, false)
	assert.Equal(t, 0, g.VertexCount())

	a, err := g.AddVertex(tagged.FromInt32(1))
	require.NoError(t, err)
	b, err := g.AddVertex(tagged.FromInt32(2))
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())

	require.NoError(t, g.RemoveVertex(a))
	assert.Equal(t, 1, g.VertexCount())
	_, err = g.GetVertexData(a)
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrInvalidArgument)

	d, err := g.GetVertexData(b)
	require.NoError(t, err)
	assert.Equal(t, int32(2), d.Int32())
}

// Undirected edge symmetry: adding s-d makes d a
// neighbor of s and s a neighbor of d, and removing it clears both.
func TestUndirectedEdge_Symmetry(t *testing.T) {
	g := newGraph(t, 4, 8, false)
	a, _ := g.AddVertex(tagged.Zero)
	b, _ := g.AddVertex(tagged.Zero)

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.Validate())

	has, err := g.HasEdge(b, a)
	require.NoError(t, err)
	assert.True(t, has)

	degA, err := g.GetVertexDegree(a)
	require.NoError(t, err)
	assert.Equal(t, 1, degA)
	degB, err := g.GetVertexDegree(b)
	require.NoError(t, err)
	assert.Equal(t, 1, degB)

	require.NoError(t, g.RemoveEdge(a, b))
	require.NoError(t, g.Validate())
	degA, _ = g.GetVertexDegree(a)
	degB, _ = g.GetVertexDegree(b)
	assert.Equal(t, 0, degA)
	assert.Equal(t, 0, degB)
}

// AddEdge idempotence: re-adding the same pair
// does not grow degree or consume extra pool capacity.
func TestAddEdge_Idempotent(t *testing.T) {
	g := newGraph(t, 4, 2, true)
	a, _ := g.AddVertex(tagged.Zero)
	b, _ := g.AddVertex(tagged.Zero)

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, b))
	deg, err := g.GetVertexDegree(a)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_RejectsLoop(t *testing.T) {
	g := newGraph(t, 2, 4, true)
	a, _ := g.AddVertex(tagged.Zero)

	err := g.AddEdge(a, a)
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrInvalidArgument)
	assert.ErrorIs(t, err, graph.ErrLoopNotAllowed)
}

// Directed vertex removal: removing a vertex that is the destination
// of edges from other vertices must also remove those incoming edges,
// even though the removed vertex's own outgoing chain (here only b->c)
// gives no hint of them.
func TestRemoveVertex_DirectedScansForIncomingEdges(t *testing.T) {
	g := newGraph(t, 4, 8, true)
	a, _ := g.AddVertex(tagged.Zero)
	b, _ := g.AddVertex(tagged.Zero)
	c, _ := g.AddVertex(tagged.Zero)

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(c, b))
	require.NoError(t, g.AddEdge(b, c))

	require.NoError(t, g.RemoveVertex(b))
	require.NoError(t, g.Validate())

	has, err := g.HasEdge(a, b)
	require.Error(t, err)
	assert.False(t, has)

	degA, err := g.GetVertexDegree(a)
	require.NoError(t, err)
	assert.Equal(t, 0, degA)
	degC, err := g.GetVertexDegree(c)
	require.NoError(t, err)
	assert.Equal(t, 0, degC)
}

func TestGetVertexEdges_DegreeMismatch(t *testing.T) {
	g := newGraph(t, 4, 8, true)
	a, _ := g.AddVertex(tagged.Zero)
	b, _ := g.AddVertex(tagged.Zero)
	require.NoError(t, g.AddEdge(a, b))

	out := make([]int, 1)
	err := g.GetVertexEdges(a, 0, out)
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrDegreeMismatch)

	require.NoError(t, g.GetVertexEdges(a, 1, out))
	assert.Equal(t, b, out[0])
}

func TestRelocate_PreservesTopology(t *testing.T) {
	need := graph.ComputeBufferSize(5, 12)
	buf := make([]byte, need)
	g, err := graph.Create(5, 12, false, buf)
	require.NoError(t, err)

	ids := make([]int, 5)
	for i := range ids {
		v, err := g.AddVertex(tagged.FromInt32(int32(i)))
		require.NoError(t, err)
		ids[i] = v
	}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(ids[e[0]], ids[e[1]]))
	}

	before := make(map[int][]int)
	for _, id := range ids {
		deg, err := g.GetVertexDegree(id)
		require.NoError(t, err)
		out := make([]int, deg)
		require.NoError(t, g.GetVertexEdges(id, deg, out))
		before[id] = out
	}

	newBuf := make([]byte, need)
	relocated, err := g.Relocate(newBuf)
	require.NoError(t, err)
	require.NoError(t, relocated.Validate())

	for _, id := range ids {
		deg, err := relocated.GetVertexDegree(id)
		require.NoError(t, err)
		out := make([]int, deg)
		require.NoError(t, relocated.GetVertexEdges(id, deg, out))
		assert.ElementsMatch(t, before[id], out)
	}
}

func TestValidate_CatchesCorruption(t *testing.T) {
	need := graph.ComputeBufferSize(3, 8)
	buf := make([]byte, need)
	g, err := graph.Create(3, 8, false, buf)
	require.NoError(t, err)

	a, _ := g.AddVertex(tagged.Zero)
	b, _ := g.AddVertex(tagged.Zero)
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.Validate())

	// The vertex-count field lives at header offset [12:16]; corrupting it
	// directly in the shared buffer (bypassing the API) desyncs it from
	// the live-slot scan Validate performs.
	buf[12] = 0xFF
	err = g.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrInvalidArgument)
}

func TestValidate_CatchesEdgeNodeCountMismatch(t *testing.T) {
	need := graph.ComputeBufferSize(3, 8)
	buf := make([]byte, need)
	g, err := graph.Create(3, 8, true, buf)
	require.NoError(t, err)

	a, _ := g.AddVertex(tagged.Zero)
	b, _ := g.AddVertex(tagged.Zero)
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.Validate())

	// The logical edge-count field lives at header offset [16:20]; bumping
	// it desyncs it from the edge pool's actual outstanding node count.
	buf[16]++
	err = g.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrInvalidArgument)
}

func TestValidate_CatchesNonBijectiveIndex(t *testing.T) {
	const vertexCap = 3
	need := graph.ComputeBufferSize(vertexCap, 8)
	buf := make([]byte, need)
	g, err := graph.Create(vertexCap, 8, false, buf)
	require.NoError(t, err)

	a, err := g.AddVertex(tagged.Zero)
	require.NoError(t, err)
	_, err = g.AddVertex(tagged.Zero)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	// idToValidIndex starts right after the header, vertex records, and
	// validIDs table: 40 + vertexCap*12 + vertexCap*4 bytes in. Corrupting
	// vertex a's entry there points it at the wrong slot in validIDs,
	// breaking the bijection Validate checks for.
	const idToValidIndexOffset = 40 + vertexCap*12 + vertexCap*4
	buf[idToValidIndexOffset+a*4] ^= 0xFF
	err = g.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrInvalidArgument)
}
