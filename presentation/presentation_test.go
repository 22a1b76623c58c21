// Package presentation_test realizes the classical presentations and checks
// their orders and structure.
package presentation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stallings/freegroup"
	"github.com/katalvlaran/stallings/presentation"
	"github.com/katalvlaran/stallings/quotient"
	"github.com/katalvlaran/stallings/subgroup"
)

func realize(t *testing.T, relators *subgroup.Subgroup) *quotient.Group {
	t.Helper()
	q, err := presentation.Realize(relators)
	require.NoError(t, err)

	return q
}

func TestCyclic(t *testing.T) {
	for _, n := range []int{1, 2, 3, 6, 12} {
		q := realize(t, presentation.Cyclic(n))
		assert.Equal(t, n, q.Order(), "C%d", n)
	}

	q := realize(t, presentation.Cyclic(6))
	a := q.Gens()[0]
	assert.Equal(t, 6, a.Order())
	z, err := q.Center()
	require.NoError(t, err)
	assert.Equal(t, 6, z.Order())
}

func TestDihedral(t *testing.T) {
	q := realize(t, presentation.Dihedral(4))
	assert.Equal(t, 8, q.Order())

	gens := q.Gens()
	require.Len(t, gens, 2)
	// The rotation has order 4, the reflection order 2, and the reflection
	// inverts the rotation.
	var rot, ref quotient.Element
	for _, g := range gens {
		switch g.Order() {
		case 4:
			rot = g
		case 2:
			ref = g
		}
	}
	require.Equal(t, 4, rot.Order())
	require.Equal(t, 2, ref.Order())
	assert.True(t, rot.Conjugate(ref).Equal(rot.Inverse()))

	z, err := q.Center()
	require.NoError(t, err)
	assert.Equal(t, 2, z.Order())
}

func TestQuaternion(t *testing.T) {
	q := realize(t, presentation.Quaternion())
	assert.Equal(t, 8, q.Order())

	// Q8 has a unique element of order 2 and six of order 4.
	counts := map[int]int{}
	for _, e := range q.Elements() {
		counts[e.Order()]++
	}
	assert.Equal(t, map[int]int{1: 1, 2: 1, 4: 6}, counts)

	z, err := q.Center()
	require.NoError(t, err)
	assert.Equal(t, 2, z.Order())
}

func TestSymmetric(t *testing.T) {
	q3 := realize(t, presentation.Symmetric(3))
	assert.Equal(t, 6, q3.Order())
	z, err := q3.Center()
	require.NoError(t, err)
	assert.Equal(t, 1, z.Order(), "S3 has trivial center")

	q4 := realize(t, presentation.Symmetric(4))
	assert.Equal(t, 24, q4.Order())
}

func TestProduct(t *testing.T) {
	rel, err := presentation.Product(presentation.Cyclic(2), presentation.Cyclic(3))
	require.NoError(t, err)

	q := realize(t, rel)
	assert.Equal(t, 6, q.Order())
	// C2 x C3 is cyclic of order 6.
	orders := map[int]int{}
	for _, e := range q.Elements() {
		orders[e.Order()]++
	}
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 2, 6: 2}, orders)
}

func TestRealize_UnstableClosure(t *testing.T) {
	// <a> in F(a, b) has an infinitely generated normal closure; the bounded
	// iteration gives up and the sentinel survives the added context.
	f := freegroup.MustNew("a", "b")
	rel := subgroup.MustParse(f, "a")

	_, err := presentation.Realize(rel, subgroup.WithMaxRounds(3))
	assert.ErrorIs(t, err, subgroup.ErrNormalizationDepth)

	_, err = presentation.Invariant(rel, subgroup.WithMaxRounds(3))
	assert.ErrorIs(t, err, subgroup.ErrNormalizationDepth)
}

func TestInvariant(t *testing.T) {
	// The invariant is 1 minus the presented order, so it lines up exactly
	// for isomorphic presentations.
	inv6, err := presentation.Invariant(presentation.Cyclic(6))
	require.NoError(t, err)
	prod, err := presentation.Product(presentation.Cyclic(2), presentation.Cyclic(3))
	require.NoError(t, err)
	invProd, err := presentation.Invariant(prod)
	require.NoError(t, err)
	assert.Equal(t, inv6, invProd)

	inv4, err := presentation.Invariant(presentation.Cyclic(4))
	require.NoError(t, err)
	assert.NotEqual(t, inv6, inv4)
	assert.Equal(t, -5, inv6)
	assert.Equal(t, -3, inv4)
}
