// Package coset defines the folded, generator-labeled coset graph
// (Stallings graph) primitives: Vertex, Edge, and the arena-owning Graph.
//
// This file declares the types and sentinel errors; the folding engine
// lives in fold.go, the canonicalizer in relabel.go, and the product
// construction in product.go.
//
// Errors:
//
//	ErrGroupMismatch - a word from a different free group was pushed.
//	ErrEdgeConflict  - adding an edge would violate the folded invariant.
//	ErrFolding       - internal inconsistency in the folding engine (a bug,
//	                   never user-recoverable).
package coset

import (
	"errors"

	"github.com/katalvlaran/stallings/freegroup"
)

// Sentinel errors for coset-graph operations.
var (
	// ErrGroupMismatch indicates a word built over a different free group
	// than the graph's.
	ErrGroupMismatch = errors.New("coset: word and graph belong to different free groups")

	// ErrEdgeConflict indicates an AddEdge call on a direction that is
	// already populated. Callers are expected to check Neighbor first.
	ErrEdgeConflict = errors.New("coset: edge slot already occupied")

	// ErrFolding indicates the folding engine reached an inconsistent state.
	// This is a bug in the engine, not recoverable by the caller.
	ErrFolding = errors.New("coset: folding invariant violated")
)

// VertexID is a stable handle assigned by a graph's arena. Handles are
// scoped to one Graph and never reused while the vertex is live; vertex
// identity is always resolved through the arena, never through pointers
// embedded in other vertices.
type VertexID int

// Edge is a directed transition labeled by a single generator. Direction
// encodes sign: traversing forward consumes the generator, traversing
// backward consumes its inverse. An edge's sole storage is the pair of
// index entries source.out[gen] and target.in[gen].
type Edge struct {
	source VertexID
	target VertexID
	gen    int
}

// Source returns the handle of the vertex the edge leaves.
func (e *Edge) Source() VertexID { return e.source }

// Target returns the handle of the vertex the edge enters.
func (e *Edge) Target() VertexID { return e.target }

// Gen returns the generator index labeling the edge.
func (e *Edge) Gen() int { return e.gen }

// Vertex is one coset of the represented subgroup. Its label is a word
// from the basepoint to this vertex; the label changes during
// canonicalization but always denotes the same coset.
//
// The out and in maps hold at most one edge per generator each; this is
// the folded invariant.
type Vertex struct {
	id    VertexID
	label freegroup.Element
	out   map[int]*Edge
	in    map[int]*Edge
}

// ID returns the vertex's arena handle.
func (v *Vertex) ID() VertexID { return v.id }

// Label returns the current representative word of the vertex's coset.
func (v *Vertex) Label() freegroup.Element { return v.label }

// OutDegree returns the number of distinct generators with an outgoing edge.
func (v *Vertex) OutDegree() int { return len(v.out) }

// InDegree returns the number of distinct generators with an incoming edge.
func (v *Vertex) InDegree() int { return len(v.in) }

// Step is one traversed edge together with the direction it was walked in
// (+1 forward, -1 backward).
type Step struct {
	Edge *Edge
	Sign int
}
