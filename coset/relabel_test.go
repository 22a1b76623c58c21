// Package coset_test: canonical labels, spanning trees, basis extraction,
// and rerooting.
package coset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stallings/coset"
	"github.com/katalvlaran/stallings/freegroup"
)

// assertCanonical checks that every label is the minimal word reaching its
// vertex: no edge offers a strictly smaller label to either endpoint.
func assertCanonical(t *testing.T, g *coset.Graph) {
	t.Helper()
	f := g.Group()
	for _, v := range g.Vertices() {
		for gen := 0; gen < f.Rank(); gen++ {
			if _, next := g.Neighbor(v, gen, 1); next != nil {
				assert.False(t, v.Label().Mul(f.Gen(gen)).Less(next.Label()),
					"label of %s is not minimal", next.Label())
			}
			if _, prev := g.Neighbor(v, gen, -1); prev != nil {
				assert.False(t, v.Label().Mul(f.Gen(gen).Inverse()).Less(prev.Label()),
					"label of %s is not minimal", prev.Label())
			}
		}
	}
}

func TestRelabel_MinimalLabels(t *testing.T) {
	f := freegroup.MustNew("a", "b")
	g := coset.NewGraph(f)
	// The non-base vertex is reachable both as a and as b⁻¹; the word
	// order prefers a.
	pushAll(t, g, "a^2", "a*b")

	g.Relabel()
	assertCanonical(t, g)
	assert.True(t, g.Basepoint().Label().IsIdentity())
	labels := make(map[string]bool)
	for _, v := range g.Vertices() {
		labels[v.Label().String()] = true
	}
	assert.True(t, labels["a"], "mid vertex must relabel to a, not a^-1")
}

func TestRelabel_Idempotent(t *testing.T) {
	f := freegroup.MustNew("a", "b")
	g := coset.NewGraph(f)
	pushAll(t, g, "a*b*a", "b^2")

	g.Relabel()
	first := make([]string, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		first = append(first, v.Label().String())
	}
	g.Relabel()
	again := make([]string, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		again = append(again, v.Label().String())
	}
	assert.Equal(t, first, again)
}

func TestCycleGenerators_SquareSubgroup(t *testing.T) {
	f := freegroup.MustNew("a", "b")
	g := coset.NewGraph(f)
	pushAll(t, g, "a^2")

	byEdge, gens := g.CycleGenerators()
	require.Len(t, gens, 1)
	assert.True(t, gens[0].Equal(freegroup.MustParse(f, "a^2")))
	assert.Len(t, byEdge, 1, "one non-tree edge for one basis word")
}

func TestCycleGenerators_RankMatchesEulerFormula(t *testing.T) {
	f := freegroup.MustNew("a", "b")
	g := coset.NewGraph(f)
	pushAll(t, g, "a^2", "b^3", "a*b*a^-1*b^-1")

	_, gens := g.CycleGenerators()
	assert.Len(t, gens, g.EdgeCount()-g.VertexCount()+1)
}

func TestCycleGenerators_SortedAndDistinct(t *testing.T) {
	f := freegroup.MustNew("a", "b")
	g := coset.NewGraph(f)
	pushAll(t, g, "a^3", "b*a*b^-1", "b^2")

	_, gens := g.CycleGenerators()
	for i := 1; i < len(gens); i++ {
		assert.True(t, gens[i-1].Less(gens[i]), "basis must be strictly increasing")
	}
	// Every basis word loops at the basepoint.
	for _, w := range gens {
		_, end, ok := g.Walk(g.Basepoint(), w)
		require.True(t, ok)
		assert.Same(t, g.Basepoint(), end)
	}
}

func TestReroot_ConjugatesBasis(t *testing.T) {
	f := freegroup.MustNew("a", "b")
	g := coset.NewGraph(f)
	pushAll(t, g, "a^2")

	b := f.Gen(1)
	require.NoError(t, g.Reroot(b))

	assert.True(t, g.Basepoint().Label().IsIdentity())
	_, gens := g.CycleGenerators()
	require.Len(t, gens, 1)
	assert.True(t, gens[0].Equal(freegroup.MustParse(f, "b*a^2*b^-1")))
}

func TestReroot_RoundTrip(t *testing.T) {
	f := freegroup.MustNew("a", "b")
	g := coset.NewGraph(f)
	pushAll(t, g, "a*b^-1*a*b")

	w := freegroup.MustParse(f, "b*a")
	require.NoError(t, g.Reroot(w))
	require.NoError(t, g.Reroot(w.Inverse()))

	_, gens := g.CycleGenerators()
	require.Len(t, gens, 1)
	assert.True(t, gens[0].Equal(freegroup.MustParse(f, "a*b^-1*a*b")))
}

func TestReroot_GroupMismatch(t *testing.T) {
	f1 := freegroup.MustNew("a")
	f2 := freegroup.MustNew("a")
	g := coset.NewGraph(f1)

	assert.ErrorIs(t, g.Reroot(f2.Gen(0)), coset.ErrGroupMismatch)
}
