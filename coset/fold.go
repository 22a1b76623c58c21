// Package coset: the folding engine.
//
// PushWord extends the graph with a path spelling a word, then forcibly
// identifies the path's endpoint with the basepoint. Identification
// cascades: whenever rehoming a merged vertex's edge would give some vertex
// two edges with the same generator and direction, the two conflicting
// endpoints are scheduled to be identified instead, until the folded
// invariant holds again.
//
// Each glue step touches only the edges of the vertex being merged away, so
// a step costs O(degree) rather than a full-graph rescan; the cascade
// revisits only vertices whose edges were just rehomed. Termination: every
// pop either merges two vertices (vertex count strictly decreases) or
// discards an already-resolved pair (schedule strictly shrinks).
package coset

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/stallings/freegroup"
)

// gluePair schedules two vertices for identification. Handles may be stale
// by the time the pair is popped; forwarding resolves them to survivors.
type gluePair struct {
	a VertexID
	b VertexID
}

// PushWord walks word from the basepoint, creating a fresh path for any
// unmatched suffix, and glues the endpoint onto the basepoint, folding
// until no vertex has two same-labeled edges in one direction.
func (g *Graph) PushWord(word freegroup.Element) error {
	if word.Group() != g.group {
		return fmt.Errorf("%w: pushing %s", ErrGroupMismatch, word)
	}
	_, end := g.WalkOrCreate(g.Basepoint(), word)

	return g.glue(end, g.Basepoint())
}

// glue runs the identification cascade starting from the pair (a, b).
func (g *Graph) glue(a, b *Vertex) error {
	pending := arraystack.New()
	pending.Push(gluePair{a: a.id, b: b.id})
	// merged forwards handles of deleted vertices to their survivors, so
	// stale scheduled pairs resolve without rewriting the schedule.
	merged := make(map[VertexID]VertexID)

	for !pending.Empty() {
		raw, _ := pending.Pop()
		pair := raw.(gluePair)
		aID := resolveMerged(merged, pair.a)
		bID := resolveMerged(merged, pair.b)
		if aID == bID {
			continue
		}
		if err := g.mergeInto(g.arena[aID], g.arena[bID], pending, merged); err != nil {
			return err
		}
	}

	return nil
}

// mergeInto identifies two live vertices. The survivor is the one with the
// smaller label (the basepoint always survives); every edge of the dropped
// vertex is deleted and either recreated on the survivor or, when the
// survivor already has an edge with that generator and direction, turned
// into a further scheduled identification of the two conflicting endpoints.
func (g *Graph) mergeInto(drop, keep *Vertex, pending *arraystack.Stack, merged map[VertexID]VertexID) error {
	if drop.label.Less(keep.label) || drop.id == g.base {
		drop, keep = keep, drop
	}

	// Outgoing edges of drop. Keys are snapshotted because the self-loop
	// case deletes the same edge from both maps.
	for _, gen := range sortedGenKeys(drop.out) {
		edge := drop.out[gen]
		if edge == nil {
			continue
		}
		if err := g.removeEdge(edge); err != nil {
			return err
		}
		_, keepNext := g.Neighbor(keep, gen, 1)

		if edge.target == drop.id {
			// Self-loop on drop: it must become a self-loop on keep, but
			// only if keep has no edge already playing either role.
			prevEdge, _ := g.Neighbor(keep, gen, -1)
			if keepNext != nil {
				pending.Push(gluePair{a: keep.id, b: keepNext.id})
			}
			if prevEdge != nil {
				pending.Push(gluePair{a: prevEdge.source, b: keep.id})
			}
			if keepNext == nil && prevEdge == nil {
				if _, err := g.AddEdge(keep, gen, keep); err != nil {
					return fmt.Errorf("%w: rehoming loop: %v", ErrFolding, err)
				}
			}

			continue
		}

		if keepNext == nil {
			if _, err := g.AddEdge(keep, gen, g.arena[edge.target]); err != nil {
				return fmt.Errorf("%w: rehoming out-edge: %v", ErrFolding, err)
			}
		} else {
			pending.Push(gluePair{a: edge.target, b: keepNext.id})
		}
	}

	// Incoming edges of drop. Self-loops were consumed above, so the
	// loop case cannot recur here.
	for _, gen := range sortedGenKeys(drop.in) {
		edge := drop.in[gen]
		if edge == nil {
			continue
		}
		if err := g.removeEdge(edge); err != nil {
			return err
		}
		_, keepPrev := g.Neighbor(keep, gen, -1)
		if keepPrev == nil {
			if _, err := g.AddEdge(g.arena[edge.source], gen, keep); err != nil {
				return fmt.Errorf("%w: rehoming in-edge: %v", ErrFolding, err)
			}
		} else {
			pending.Push(gluePair{a: edge.source, b: keepPrev.id})
		}
	}

	if err := g.deleteVertex(drop); err != nil {
		return err
	}
	merged[drop.id] = keep.id

	return nil
}

// resolveMerged follows the forwarding chain to a live handle.
func resolveMerged(merged map[VertexID]VertexID, id VertexID) VertexID {
	for {
		next, ok := merged[id]
		if !ok {
			return id
		}
		id = next
	}
}
