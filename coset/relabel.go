// Package coset: the canonicalizer.
//
// Relabel assigns every vertex its minimal reachable representative word
// (length first, then lexicographic). The fixpoint is a label relaxation in
// the style of Bellman–Ford, but over the word order instead of a numeric
// weight; it is correct because the order is compatible with multiplication
// by a fixed trailing letter. Afterwards the edges whose target label
// extends their source label form a spanning tree, and each remaining edge
// contributes one free generator of the represented subgroup.
package coset

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/stallings/freegroup"
)

// Relabel lowers every vertex label to the minimal word reaching it from
// the basepoint. Idempotent; terminates because each relaxation strictly
// decreases some vertex's label in a well-founded order.
func (g *Graph) Relabel() {
	worklist := linkedlistqueue.New()
	queued := make(map[VertexID]bool, len(g.arena))
	for _, v := range g.Vertices() {
		worklist.Enqueue(v)
		queued[v.id] = true
	}

	for !worklist.Empty() {
		raw, _ := worklist.Dequeue()
		v := raw.(*Vertex)
		queued[v.id] = false

		for _, gen := range sortedGenKeys(v.out) {
			edge := v.out[gen]
			target := g.arena[edge.target]
			suggestion := v.label.Mul(g.group.Gen(gen))
			if suggestion.Less(target.label) {
				target.label = suggestion
				if !queued[target.id] {
					worklist.Enqueue(target)
					queued[target.id] = true
				}
			}
		}
		for _, gen := range sortedGenKeys(v.in) {
			edge := v.in[gen]
			source := g.arena[edge.source]
			suggestion := v.label.Mul(g.group.Gen(gen).Inverse())
			if suggestion.Less(source.label) {
				source.label = suggestion
				if !queued[source.id] {
					worklist.Enqueue(source)
					queued[source.id] = true
				}
			}
		}
	}
}

// CycleGenerators relabels the graph and returns the free basis of the
// represented subgroup: one generator per non-tree edge, as the word
// source.label · gen · target.label⁻¹.
//
// The byEdge map drives Express-style walks; gens lists the same words
// sorted by the word order (deterministic across runs).
func (g *Graph) CycleGenerators() (byEdge map[*Edge]freegroup.Element, gens []freegroup.Element) {
	g.Relabel()
	byEdge = make(map[*Edge]freegroup.Element)
	sorted := redblacktree.NewWith(elementComparator)
	for _, e := range g.Edges() {
		src, dst := g.arena[e.source], g.arena[e.target]
		value := src.label.Mul(g.group.Gen(e.gen)).Mul(dst.label.Inverse())
		if value.IsIdentity() {
			continue // spanning-tree edge
		}
		byEdge[e] = value
		sorted.Put(value, struct{}{})
	}

	gens = make([]freegroup.Element, 0, sorted.Size())
	it := sorted.Iterator()
	for it.Next() {
		gens = append(gens, it.Key().(freegroup.Element))
	}

	return byEdge, gens
}

// Reroot conjugates the graph in place: the vertex reached by walking w⁻¹
// from the basepoint (violently, creating the path if needed) becomes the
// new basepoint, every label is left-multiplied by w, the new basepoint is
// reset to the identity, and labels are re-canonicalized. The rerooted
// graph represents w·H·w⁻¹.
func (g *Graph) Reroot(w freegroup.Element) error {
	if w.Group() != g.group {
		return ErrGroupMismatch
	}
	_, newBase := g.WalkOrCreate(g.Basepoint(), w.Inverse())
	g.base = newBase.id
	for _, v := range g.arena {
		v.label = w.Mul(v.label)
	}
	newBase.label = g.group.Identity()
	g.Relabel()

	return nil
}

// elementComparator orders redblacktree keys by the word order.
func elementComparator(a, b interface{}) int {
	return a.(freegroup.Element).Compare(b.(freegroup.Element))
}
