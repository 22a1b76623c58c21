// Package quotient: the finite quotient Group and its construction.
package quotient

import (
	goerrors "errors"

	"github.com/pkg/errors"

	"github.com/katalvlaran/stallings/freegroup"
	"github.com/katalvlaran/stallings/subgroup"
)

var (
	// ErrGroupMismatch is returned when quotients over different free
	// groups are combined.
	ErrGroupMismatch = goerrors.New("quotient: operands belong to different free groups")

	// ErrKernelNotContained is returned when the kernel is not a subgroup
	// of the lift.
	ErrKernelNotContained = goerrors.New("quotient: kernel is not contained in the lift")

	// ErrKernelNotNormal is returned when the kernel is not normal in the
	// lift.
	ErrKernelNotNormal = goerrors.New("quotient: kernel is not normal in the lift")

	// ErrInfiniteQuotient is returned when the kernel has infinite index in
	// the lift. Only finite quotients are supported.
	ErrInfiniteQuotient = goerrors.New("quotient: kernel has infinite index in the lift")

	// ErrNotInGroup is returned when a word does not name an element of the
	// quotient (it lies outside the lift).
	ErrNotInGroup = goerrors.New("quotient: word is outside the lift")
)

// Group is a finite group presented as lift/kernel: a subgroup of a free
// group modulo a normal, finite-index subgroup of it. Every derived group
// (subgroups, quotients, centralizers) is again a Group sharing the same
// ambient free group.
//
// Internally all coset arithmetic runs over the kernel rewritten in the
// lift's basis, where the coset graph is complete and representatives are
// canonical.
type Group struct {
	free   *freegroup.Group
	lift   *subgroup.Subgroup
	kernel *subgroup.Subgroup

	rel      *subgroup.Subgroup // kernel over the lift's basis
	abstract *freegroup.Group
	back     *freegroup.Homomorphism // abstract generators to lift basis words
	order    int
}

// New builds the quotient lift/kernel. The kernel must be contained in the
// lift, normal in it, and of finite index; each violation is reported with
// its own sentinel.
func New(lift, kernel *subgroup.Subgroup) (*Group, error) {
	if lift.Group() != kernel.Group() {
		return nil, ErrGroupMismatch
	}
	if !lift.ContainsSubgroup(kernel) {
		return nil, errors.Wrapf(ErrKernelNotContained, "kernel %s, lift %s", kernel, lift)
	}
	if !kernel.IsNormalIn(lift) {
		return nil, errors.Wrapf(ErrKernelNotNormal, "kernel %s, lift %s", kernel, lift)
	}
	rel, abstract, err := kernel.RewriteIn(lift)
	if err != nil {
		return nil, err
	}
	order, err := rel.Index()
	if err != nil {
		return nil, errors.Wrapf(ErrInfiniteQuotient, "kernel %s, lift %s", kernel, lift)
	}

	images := lift.Gens()
	if lift.IsTrivial() {
		// RewriteIn substitutes a rank-one stand-in for the empty basis.
		images = []freegroup.Element{lift.Group().Identity()}
	}
	back, err := freegroup.NewHomomorphism(abstract, lift.Group(), images)
	if err != nil {
		return nil, err
	}

	return &Group{
		free:     lift.Group(),
		lift:     lift,
		kernel:   kernel,
		rel:      rel,
		abstract: abstract,
		back:     back,
		order:    order,
	}, nil
}

// ByNormalClosure presents a group by relations: the quotient of the whole
// free group by the normal closure of the relation words. The closure
// iteration is bounded; see subgroup.WithMaxRounds.
func ByNormalClosure(f *freegroup.Group, relations []freegroup.Element, opts ...subgroup.Option) (*Group, error) {
	s, err := subgroup.New(f, relations...)
	if err != nil {
		return nil, err
	}
	n, err := s.Normalization(opts...)
	if err != nil {
		return nil, err
	}

	return New(subgroup.Full(f), n)
}

// Free returns the ambient free group.
func (g *Group) Free() *freegroup.Group { return g.free }

// Lift returns the subgroup whose elements represent this group.
func (g *Group) Lift() *subgroup.Subgroup { return g.lift }

// Kernel returns the normal subgroup quotiented out.
func (g *Group) Kernel() *subgroup.Subgroup { return g.kernel }

// Order returns the number of elements.
func (g *Group) Order() int { return g.order }

// Equal reports whether two quotients are the same group: same lift, same
// kernel.
func (g *Group) Equal(o *Group) bool {
	if g.free != o.free {
		return false
	}

	return g.lift.Equal(o.lift) && g.kernel.Equal(o.kernel)
}

// ContainsSubgroup reports whether o is a subgroup of g: the lifts must nest
// and the kernels agree.
func (g *Group) ContainsSubgroup(o *Group) bool {
	if g.free != o.free {
		return false
	}

	return g.lift.ContainsSubgroup(o.lift) && g.kernel.Equal(o.kernel)
}

// canonicalRep maps a lift word to the canonical representative of its
// kernel coset: rewrite over the lift's basis, resolve the coset in the
// complete abstract graph, map the label back.
func (g *Group) canonicalRep(w freegroup.Element) (freegroup.Element, error) {
	if g.lift.IsTrivial() {
		if !w.IsIdentity() {
			return freegroup.Element{}, errors.Wrapf(ErrNotInGroup, "word %s", w)
		}

		return g.free.Identity(), nil
	}
	bw, err := g.lift.Express(w)
	if err != nil {
		return freegroup.Element{}, errors.Wrapf(ErrNotInGroup, "word %s", w)
	}
	aw := g.abstract.Identity()
	for _, f := range bw.Factors() {
		aw = aw.Mul(g.abstract.Gen(f.Index).Pow(f.Pow))
	}

	return g.back.Apply(g.rel.CosetRepresentative(aw))
}

// Identity returns the identity element.
func (g *Group) Identity() Element {
	return Element{group: g, rep: g.free.Identity()}
}

// Gens returns the images of the lift's basis.
func (g *Group) Gens() []Element {
	gens := make([]Element, 0, g.lift.Rank())
	for _, w := range g.lift.Gens() {
		e, err := g.NewElement(w)
		if err != nil {
			panic(err) // basis words are lift members
		}
		gens = append(gens, e)
	}

	return gens
}

// Elements enumerates the whole group, identity first.
func (g *Group) Elements() []Element {
	reps, err := g.kernel.RightCosetRepresentativesIn(g.lift)
	if err != nil {
		panic(err) // finite index was checked at construction
	}
	elems := make([]Element, len(reps))
	for i, rep := range reps {
		canon, cerr := g.canonicalRep(rep)
		if cerr != nil {
			panic(cerr)
		}
		elems[i] = Element{group: g, rep: canon}
	}

	return elems
}

// Subgroup returns the subgroup of g generated by the given elements,
// itself a Group over the same kernel.
func (g *Group) Subgroup(elems ...Element) (*Group, error) {
	words := make([]freegroup.Element, 0, len(elems))
	for _, e := range elems {
		if e.group != g {
			return nil, ErrGroupMismatch
		}
		words = append(words, e.rep)
	}
	lifted, err := g.kernel.WithAddedElements(words...)
	if err != nil {
		return nil, err
	}

	return New(lifted, g.kernel)
}

// Quotient returns g/o for a normal subgroup o of g.
func (g *Group) Quotient(o *Group) (*Group, error) {
	if !g.ContainsSubgroup(o) {
		return nil, errors.Wrapf(ErrKernelNotContained, "quotient by %s", o.lift)
	}

	return New(g.lift, o.lift)
}

// IndexIn returns the index of g inside o.
func (g *Group) IndexIn(o *Group) (int, error) {
	if !o.ContainsSubgroup(g) {
		return 0, errors.Wrapf(ErrKernelNotContained, "index of %s in %s", g.lift, o.lift)
	}

	return g.lift.IndexIn(o.lift)
}

// IsNormalIn reports whether g is normal in o. Normality descends to
// quotients, so the lifts decide.
func (g *Group) IsNormalIn(o *Group) bool {
	if !o.ContainsSubgroup(g) {
		return false
	}

	return g.lift.IsNormalIn(o.lift)
}

// NormalizationIn returns the normal closure of g inside o.
func (g *Group) NormalizationIn(o *Group, opts ...subgroup.Option) (*Group, error) {
	if !o.ContainsSubgroup(g) {
		return nil, errors.Wrapf(ErrKernelNotContained, "normalization of %s in %s", g.lift, o.lift)
	}
	norm, err := g.lift.NormalizationIn(o.lift, opts...)
	if err != nil {
		return nil, err
	}

	return New(norm, g.kernel)
}

// CoreIn returns the largest subgroup of g normal in o.
func (g *Group) CoreIn(o *Group) (*Group, error) {
	if !o.ContainsSubgroup(g) {
		return nil, errors.Wrapf(ErrKernelNotContained, "core of %s in %s", g.lift, o.lift)
	}
	core, err := g.lift.CoreIn(o.lift)
	if err != nil {
		return nil, err
	}

	return New(core, g.kernel)
}

// Center returns the subgroup of elements commuting with everything. It
// suffices to test against the generators.
func (g *Group) Center() (*Group, error) {
	gens := g.Gens()
	var central []Element
	for _, x := range g.Elements() {
		commutes := true
		for _, h := range gens {
			if !x.Mul(h).Equal(h.Mul(x)) {
				commutes = false

				break
			}
		}
		if commutes {
			central = append(central, x)
		}
	}

	return g.Subgroup(central...)
}

// CentralizerIn returns the subgroup of o commuting with all of g
// elementwise: the commutator with every generator of g must die in the
// kernel.
func (g *Group) CentralizerIn(o *Group) (*Group, error) {
	if !o.ContainsSubgroup(g) {
		return nil, errors.Wrapf(ErrKernelNotContained, "centralizer of %s in %s", g.lift, o.lift)
	}
	var elems []Element
	for _, x := range o.Elements() {
		ok := true
		for _, h := range g.lift.Gens() {
			if !g.kernel.ContainsElement(freegroup.Commutator(x.rep, h)) {
				ok = false

				break
			}
		}
		if ok {
			elems = append(elems, x)
		}
	}

	return o.Subgroup(elems...)
}

// NormalizerIn returns the subgroup of o conjugating g into itself. An
// element normalizes g exactly when its commutator with every generator of
// g stays inside the lift.
func (g *Group) NormalizerIn(o *Group) (*Group, error) {
	if !o.ContainsSubgroup(g) {
		return nil, errors.Wrapf(ErrKernelNotContained, "normalizer of %s in %s", g.lift, o.lift)
	}
	var elems []Element
	for _, x := range o.Elements() {
		ok := true
		for _, h := range g.lift.Gens() {
			if !g.lift.ContainsElement(freegroup.Commutator(x.rep, h)) {
				ok = false

				break
			}
		}
		if ok {
			elems = append(elems, x)
		}
	}

	return o.Subgroup(elems...)
}
