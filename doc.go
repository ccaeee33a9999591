// Package arenalath is a bring-your-own-buffer toolkit for building graphs
// and running traversals over them with zero dynamic allocation after
// setup.
//
// Every component — pool allocator, min-heap, graph, and the traversal
// states built on top of it — computes its own required buffer size,
// accepts a caller-owned []byte at construction, and never allocates from
// the heap again. Capacities are fixed at Create: Relocate moves a
// structure into another buffer of at least its recorded size and keeps
// the same capacities, so a structure never grows.
//
// Subpackages:
//
//	tagged/     — fixed-width tagged union used as vertex payload
//	pool/       — fixed-capacity free-list allocator
//	minheap/    — fixed-capacity binary min-heap
//	graph/      — adjacency-list graph over caller-owned memory
//	bfs/        — breadth-first traversal state and walker
//	dfs/        — depth-first traversal state, walker, and edge classification
//	topo/       — topological sort built on a shared dfs.State
//
// None of these packages allocate after Create, hold a mutex, or perform
// I/O: callers own both the memory and any concurrency discipline.
package arenalath
