// Package coset: the Graph arena and its pure lookup/walk primitives.
package coset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stallings/freegroup"
)

// Graph is a folded coset graph: an arena of vertices with one
// distinguished basepoint representing the identity coset. Every vertex is
// reachable from the basepoint via a mixed forward/backward path, because
// vertices are only ever created while extending a path from a vertex
// already in the graph and deletion only removes isolated vertices.
//
// A Graph is exclusively owned by one logical owner; combining operations
// (Product, Reroot callers) read their inputs and build new graphs.
type Graph struct {
	group  *freegroup.Group
	arena  map[VertexID]*Vertex
	nextID VertexID
	base   VertexID
}

// NewGraph creates a graph containing only the basepoint, labeled with the
// identity of group.
func NewGraph(group *freegroup.Group) *Graph {
	g := &Graph{
		group: group,
		arena: make(map[VertexID]*Vertex),
	}
	base := g.newVertex(group.Identity())
	g.base = base.id

	return g
}

// Group returns the free group the graph is built over.
func (g *Graph) Group() *freegroup.Group { return g.group }

// Basepoint returns the distinguished identity-coset vertex.
func (g *Graph) Basepoint() *Vertex { return g.arena[g.base] }

// Vertex resolves a handle through the arena; nil if the vertex was merged
// away or never existed.
func (g *Graph) Vertex(id VertexID) *Vertex { return g.arena[id] }

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int { return len(g.arena) }

// Vertices returns all vertices in deterministic breadth-first order from
// the basepoint, exploring directions in letter order (generator ascending,
// forward before backward).
func (g *Graph) Vertices() []*Vertex {
	order := make([]*Vertex, 0, len(g.arena))
	seen := make(map[VertexID]bool, len(g.arena))
	queue := []*Vertex{g.Basepoint()}
	seen[g.base] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for gen := 0; gen < g.group.Rank(); gen++ {
			for _, sgn := range []int{1, -1} {
				_, next := g.Neighbor(v, gen, sgn)
				if next != nil && !seen[next.id] {
					seen[next.id] = true
					queue = append(queue, next)
				}
			}
		}
	}

	return order
}

// Edges returns every edge exactly once, in deterministic order: vertices
// in Vertices() order, outgoing edges by generator.
func (g *Graph) Edges() []*Edge {
	var edges []*Edge
	for _, v := range g.Vertices() {
		for _, gen := range sortedGenKeys(v.out) {
			edges = append(edges, v.out[gen])
		}
	}

	return edges
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, v := range g.arena {
		n += len(v.out)
	}

	return n
}

// Neighbor is the pure directional lookup: the edge and vertex reached from
// v by generator gen in direction sgn (+1 forward, -1 backward), or nils
// when that direction is not populated.
func (g *Graph) Neighbor(v *Vertex, gen, sgn int) (*Edge, *Vertex) {
	if sgn > 0 {
		e := v.out[gen]
		if e == nil {
			return nil, nil
		}

		return e, g.arena[e.target]
	}
	e := v.in[gen]
	if e == nil {
		return nil, nil
	}

	return e, g.arena[e.source]
}

// NeighborOrCreate returns the neighbor in the given direction, creating a
// fresh vertex and edge when the direction is absent. The new vertex's
// label extends v's label by the consumed letter.
func (g *Graph) NeighborOrCreate(v *Vertex, gen, sgn int) (*Edge, *Vertex) {
	if e, next := g.Neighbor(v, gen, sgn); next != nil {
		return e, next
	}
	step := g.group.Gen(gen)
	if sgn > 0 {
		next := g.newVertex(v.label.Mul(step))
		e, err := g.AddEdge(v, gen, next)
		if err != nil {
			panic(err) // direction was checked absent above
		}

		return e, next
	}
	next := g.newVertex(v.label.Mul(step.Inverse()))
	e, err := g.AddEdge(next, gen, v)
	if err != nil {
		panic(err)
	}

	return e, next
}

// Walk follows word letter by letter from v using pure lookups. Returns the
// traversed steps and the end vertex, or ok=false as soon as a direction is
// missing.
func (g *Graph) Walk(v *Vertex, word freegroup.Element) ([]Step, *Vertex, bool) {
	steps := make([]Step, 0, word.Len())
	for _, let := range word.Letters() {
		e, next := g.Neighbor(v, let.Gen, let.Sign)
		if next == nil {
			return nil, nil, false
		}
		steps = append(steps, Step{Edge: e, Sign: let.Sign})
		v = next
	}

	return steps, v, true
}

// WalkOrCreate follows word from v, creating a fresh path for any
// unmatched suffix.
func (g *Graph) WalkOrCreate(v *Vertex, word freegroup.Element) ([]Step, *Vertex) {
	steps := make([]Step, 0, word.Len())
	for _, let := range word.Letters() {
		var e *Edge
		e, v = g.NeighborOrCreate(v, let.Gen, let.Sign)
		steps = append(steps, Step{Edge: e, Sign: let.Sign})
	}

	return steps, v
}

// AddEdge installs a gen-labeled edge from source to target. Fails with
// ErrEdgeConflict when either index slot is already occupied; callers are
// expected to have checked via Neighbor first.
func (g *Graph) AddEdge(source *Vertex, gen int, target *Vertex) (*Edge, error) {
	if source.out[gen] != nil || target.in[gen] != nil {
		return nil, fmt.Errorf("%w: %s --%s--> %s",
			ErrEdgeConflict, source.label, g.group.GenName(gen), target.label)
	}
	e := &Edge{source: source.id, target: target.id, gen: gen}
	source.out[gen] = e
	target.in[gen] = e

	return e, nil
}

// removeEdge clears both index entries of e. Both entries must still point
// at e; anything else means the engine corrupted the indexes.
func (g *Graph) removeEdge(e *Edge) error {
	src, dst := g.arena[e.source], g.arena[e.target]
	if src == nil || dst == nil || src.out[e.gen] != e || dst.in[e.gen] != e {
		return fmt.Errorf("%w: removing unindexed edge", ErrFolding)
	}
	delete(src.out, e.gen)
	delete(dst.in, e.gen)

	return nil
}

// newVertex allocates a vertex in the arena with the next free handle.
func (g *Graph) newVertex(label freegroup.Element) *Vertex {
	v := &Vertex{
		id:    g.nextID,
		label: label,
		out:   make(map[int]*Edge),
		in:    make(map[int]*Edge),
	}
	g.arena[v.id] = v
	g.nextID++

	return v
}

// deleteVertex removes an isolated vertex from the arena.
func (g *Graph) deleteVertex(v *Vertex) error {
	if len(v.out) != 0 || len(v.in) != 0 {
		return fmt.Errorf("%w: deleting vertex with incident edges", ErrFolding)
	}
	delete(g.arena, v.id)

	return nil
}

// sortedGenKeys returns the generator indexes present in m, ascending, so
// that map iteration never leaks nondeterminism into fold or traversal
// order.
func sortedGenKeys(m map[int]*Edge) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
