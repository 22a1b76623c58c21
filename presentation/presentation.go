// Package presentation: relation subgroups for the classical finite groups.
//
// Each builder returns the subgroup generated by the standard relators; the
// presented group itself is the quotient by its normal closure, available
// via Realize.
package presentation

import (
	"fmt"

	"github.com/katalvlaran/stallings/freegroup"
	"github.com/katalvlaran/stallings/subgroup"
)

// Cyclic returns the relators of the cyclic group of order n over F(a).
func Cyclic(n int) *subgroup.Subgroup {
	f := freegroup.MustNew("a")

	return subgroup.MustNew(f, f.Gen(0).Pow(n))
}

// Dihedral returns the relators of the dihedral group of order 2n over
// F(a, b): aⁿ, b², and the inversion relation b·a·b⁻¹·a.
func Dihedral(n int) *subgroup.Subgroup {
	f := freegroup.MustNew("a", "b")
	a, b := f.Gen(0), f.Gen(1)

	return subgroup.MustNew(f,
		a.Pow(n),
		b.Pow(2),
		a.Conjugate(b).Mul(a),
	)
}

// Quaternion returns the relators of the quaternion group Q8 over F(a, b):
// a⁴, a⁻²b², and a·b·a·b⁻¹.
func Quaternion() *subgroup.Subgroup {
	f := freegroup.MustNew("a", "b")
	a, b := f.Gen(0), f.Gen(1)

	return subgroup.MustNew(f,
		a.Pow(4),
		a.Pow(-2).Mul(b.Pow(2)),
		a.Mul(b).Mul(a).Mul(b.Inverse()),
	)
}

// Symmetric returns relators presenting the symmetric group Sₙ over
// F(a, b), with a an adjacent transposition and b an n-cycle (the classical
// two-generator presentation). n must be at least 2.
func Symmetric(n int) *subgroup.Subgroup {
	if n < 2 {
		panic(fmt.Sprintf("presentation: Symmetric needs n >= 2, got %d", n))
	}
	f := freegroup.MustNew("a", "b")
	a, b := f.Gen(0), f.Gen(1)

	relators := []freegroup.Element{
		a.Pow(2),
		b.Pow(n),
		a.Mul(b).Pow(n - 1),
		freegroup.Commutator(a, b).Pow(3),
	}
	for k := 2; k <= n/2; k++ {
		relators = append(relators, freegroup.Commutator(a, b.Pow(k)).Pow(2))
	}

	return subgroup.MustNew(f, relators...)
}

// Product combines relation subgroups into the relators of the direct
// product: each component's relators are embedded over a renamed alphabet
// (generator j of component i becomes a<i>_<j>) and every pair of
// generators from different components is forced to commute.
func Product(components ...*subgroup.Subgroup) (*subgroup.Subgroup, error) {
	var names []string
	offsets := make([]int, len(components))
	for i, c := range components {
		offsets[i] = len(names)
		for j := 0; j < c.Group().Rank(); j++ {
			names = append(names, fmt.Sprintf("a%d_%d", i, j))
		}
	}
	f, err := freegroup.New(names...)
	if err != nil {
		return nil, err
	}

	images := func(i int) []freegroup.Element {
		c := components[i]
		imgs := make([]freegroup.Element, c.Group().Rank())
		for j := range imgs {
			imgs[j] = f.Gen(offsets[i] + j)
		}

		return imgs
	}

	var relators []freegroup.Element
	for i, c := range components {
		for _, rel := range c.Gens() {
			embedded, serr := rel.Substitute(f, images(i))
			if serr != nil {
				return nil, serr
			}
			relators = append(relators, embedded)
		}
	}
	for i := range components {
		for j := i + 1; j < len(components); j++ {
			for _, gi := range images(i) {
				for _, gj := range images(j) {
					relators = append(relators, freegroup.Commutator(gi, gj))
				}
			}
		}
	}

	return subgroup.New(f, relators...)
}
