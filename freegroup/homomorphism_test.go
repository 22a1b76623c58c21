package freegroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stallings/freegroup"
)

func TestHomomorphism_Apply(t *testing.T) {
	f := freegroup.MustNew("a", "b")
	g := freegroup.MustNew("x")
	x := g.Gen(0)

	// a ↦ x, b ↦ x⁻¹: the commutator subgroup lands on the identity.
	h, err := freegroup.NewHomomorphism(f, g, []freegroup.Element{x, x.Inverse()})
	require.NoError(t, err)

	got, err := h.Apply(freegroup.MustParse(f, "a*b"))
	require.NoError(t, err)
	assert.True(t, got.IsIdentity())

	got, err = h.Apply(freegroup.MustParse(f, "a^2*b^-1"))
	require.NoError(t, err)
	assert.True(t, got.Equal(x.Pow(3)))
}

func TestHomomorphism_Validation(t *testing.T) {
	f := freegroup.MustNew("a", "b")
	g := freegroup.MustNew("x")

	_, err := freegroup.NewHomomorphism(f, g, []freegroup.Element{g.Gen(0)})
	assert.ErrorIs(t, err, freegroup.ErrBadImageCount)

	_, err = freegroup.NewHomomorphism(f, g, []freegroup.Element{g.Gen(0), f.Gen(0)})
	assert.ErrorIs(t, err, freegroup.ErrGroupMismatch)

	h, err := freegroup.NewHomomorphism(f, g, []freegroup.Element{g.Gen(0), g.Gen(0)})
	require.NoError(t, err)
	_, err = h.Apply(g.Gen(0))
	assert.ErrorIs(t, err, freegroup.ErrGroupMismatch)
}

func TestHomomorphism_Compose(t *testing.T) {
	f := freegroup.MustNew("a", "b")

	// Swap generators, twice: composes to the identity endomorphism.
	swap, err := freegroup.NewHomomorphism(f, f, []freegroup.Element{f.Gen(1), f.Gen(0)})
	require.NoError(t, err)

	twice, err := swap.Compose(swap)
	require.NoError(t, err)
	assert.True(t, twice.Equal(freegroup.IdentityHomomorphism(f)))

	w := freegroup.MustParse(f, "a*b^-1*a^2")
	got, err := twice.Apply(w)
	require.NoError(t, err)
	assert.True(t, got.Equal(w))
}
