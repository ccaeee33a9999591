// Package graph implements the adjacency-list graph: vertex/edge store
// backed by a caller-owned buffer, directed or undirected, with
// O(degree) edge removal and O(V+E) vertex removal. Edge storage is a
// pool.Allocator the Graph owns internally; traversal (bfs, dfs, topo)
// consumes a Graph plus its own scratch state.
//
// Errors:
//
//	ErrVertexNotFound  - requested vertex id is not live.
//	ErrEdgeNotFound    - requested s→d edge does not exist.
//	ErrLoopNotAllowed  - addEdge(v, v) was attempted.
//	ErrDegreeMismatch  - GetVertexEdges called with the wrong expected degree.
package graph

import (
	"encoding/binary"
	"errors"

	"github.com/katalvlaran/arenalath/internal/arena"
	"github.com/katalvlaran/arenalath/pool"
	"github.com/katalvlaran/arenalath/tagged"
)

const component = "graph"

// Sentinel errors for graph operations, wrapped into arena.ErrInvalidArgument
// or arena.ErrOperationFailed via arena.Fail so callers can match either the
// specific sentinel (errors.Is(err, ErrVertexNotFound)) or the broad failure
// kind (errors.Is(err, arena.ErrInvalidArgument)).
var (
	// ErrVertexNotFound indicates an operation referenced a non-live vertex id.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates removeEdge found no s→d edge to remove.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates addEdge(v, v) was attempted; self-edges
	// are never permitted.
	ErrLoopNotAllowed = errors.New("graph: self-edges are not allowed")

	// ErrDegreeMismatch indicates GetVertexEdges's expectedDegree argument
	// did not match the vertex's actual degree.
	ErrDegreeMismatch = errors.New("graph: expected degree does not match actual degree")
)

const (
	headerSize       = 40 // see field offsets in header accessors, api.go
	vertexRecordSize = 12 // degree(4) + data(4) + edgeHead(4)
	edgeNodeSize     = 8  // destination(4) + next(4)
	freeSlot         = int32(-1)
)

// Graph is an adjacency-list graph over a caller-owned buffer. Edge mode
// (directed/undirected) is fixed at Create time.
type Graph struct {
	buf    []byte
	header []byte

	vertices       []byte // vertexCapacity * vertexRecordSize
	validIDs       []byte // vertexCapacity * int32
	idToValidIndex []byte // vertexCapacity * int32

	edgePool *pool.Allocator

	vertexCapacity int
	edgeCapacity   int // max edge *nodes* (directed: = max logical edges; undirected: = 2x max logical edges)
}

// ComputeBufferSize returns the exact byte count Create needs for a graph
// with the given vertex capacity and edge-node capacity.
func ComputeBufferSize(vertexCapacity, edgeCapacity int) int {
	l := arena.NewLayout(nil)
	l.Bytes(headerSize, 8)
	l.Bytes(vertexCapacity*vertexRecordSize, 4)
	l.Bytes(vertexCapacity*4, 4)
	l.Bytes(vertexCapacity*4, 4)
	l.Bytes(pool.ComputeBufferSize(edgeNodeSize, edgeCapacity), 4)

	return l.Size()
}

type vertexRecord struct {
	rec []byte
}

func (g *Graph) vrec(id int) vertexRecord {
	start := id * vertexRecordSize

	return vertexRecord{rec: g.vertices[start : start+vertexRecordSize]}
}

func (r vertexRecord) degree() int32          { return int32(binary.LittleEndian.Uint32(r.rec[0:4])) }
func (r vertexRecord) setDegree(d int32)      { binary.LittleEndian.PutUint32(r.rec[0:4], uint32(d)) }
func (r vertexRecord) data() tagged.Value     { return tagged.FromBits(binary.LittleEndian.Uint32(r.rec[4:8])) }
func (r vertexRecord) setData(v tagged.Value) { binary.LittleEndian.PutUint32(r.rec[4:8], v.Bits()) }
func (r vertexRecord) nextFree() int32        { return int32(binary.LittleEndian.Uint32(r.rec[4:8])) }
func (r vertexRecord) setNextFree(n int32)    { binary.LittleEndian.PutUint32(r.rec[4:8], uint32(n)) }
func (r vertexRecord) edgeHead() int32        { return int32(binary.LittleEndian.Uint32(r.rec[8:12])) }
func (r vertexRecord) setEdgeHead(h int32)    { binary.LittleEndian.PutUint32(r.rec[8:12], uint32(h)) }

func (g *Graph) idIndexSlot(id int) []byte {
	start := id * 4

	return g.idToValidIndex[start : start+4]
}

func (g *Graph) validSlot(pos int) []byte {
	start := pos * 4

	return g.validIDs[start : start+4]
}

type edgeNode struct {
	rec []byte
}

func (n edgeNode) destination() int32  { return int32(binary.LittleEndian.Uint32(n.rec[0:4])) }
func (n edgeNode) setDestination(d int32) {
	binary.LittleEndian.PutUint32(n.rec[0:4], uint32(d))
}
func (n edgeNode) next() int32     { return int32(binary.LittleEndian.Uint32(n.rec[4:8])) }
func (n edgeNode) setNext(i int32) { binary.LittleEndian.PutUint32(n.rec[4:8], uint32(i)) }
