// Package coset: synchronized product automaton.
//
// The product graph of several coset graphs over one free group represents
// the intersection of the represented subgroups: a word loops at the
// product's basepoint exactly when it loops at every component basepoint.
package coset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/stallings/freegroup"
)

// productState pairs a materialized product vertex with its component
// images, one per input graph.
type productState struct {
	v      *Vertex
	images []*Vertex
}

// Product builds a fresh graph whose vertices are tuples of the inputs'
// vertices, lazily materialized from the tuple of basepoints. An edge
// exists in the product iff every component graph has the corresponding
// edge. Inputs are only read, never mutated.
func Product(group *freegroup.Group, graphs []*Graph) (*Graph, error) {
	for _, gr := range graphs {
		if gr.group != group {
			return nil, ErrGroupMismatch
		}
	}
	res := NewGraph(group)
	if len(graphs) == 0 {
		return res, nil
	}

	baseImages := make([]*Vertex, len(graphs))
	for i, gr := range graphs {
		baseImages[i] = gr.Basepoint()
	}
	mapping := map[string]*Vertex{imageKey(baseImages): res.Basepoint()}
	work := []productState{{v: res.Basepoint(), images: baseImages}}

	for len(work) > 0 {
		st := work[0]
		work = work[1:]
		for gen := 0; gen < group.Rank(); gen++ {
			for _, sgn := range []int{1, -1} {
				if _, next := res.Neighbor(st.v, gen, sgn); next != nil {
					continue
				}
				images, ok := stepImages(graphs, st.images, gen, sgn)
				if !ok {
					continue
				}
				key := imageKey(images)
				nv, seen := mapping[key]
				if !seen {
					nv = res.newVertex(st.v.label.Mul(group.Gen(gen).Pow(sgn)))
					mapping[key] = nv
					work = append(work, productState{v: nv, images: images})
				}
				var err error
				if sgn > 0 {
					_, err = res.AddEdge(st.v, gen, nv)
				} else {
					_, err = res.AddEdge(nv, gen, st.v)
				}
				if err != nil {
					// Component automata are deterministic, so this slot
					// cannot be occupied by a different edge.
					return nil, fmt.Errorf("%w: product edge: %v", ErrFolding, err)
				}
			}
		}
	}

	return res, nil
}

// stepImages advances every component image by one letter; ok is false as
// soon as any component lacks the direction.
func stepImages(graphs []*Graph, images []*Vertex, gen, sgn int) ([]*Vertex, bool) {
	next := make([]*Vertex, len(graphs))
	for i, gr := range graphs {
		_, nx := gr.Neighbor(images[i], gen, sgn)
		if nx == nil {
			return nil, false
		}
		next[i] = nx
	}

	return next, true
}

// imageKey encodes a tuple of component vertex handles; position
// disambiguates handles from different arenas.
func imageKey(images []*Vertex) string {
	var b strings.Builder
	for i, v := range images {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.Itoa(int(v.id)))
	}

	return b.String()
}
