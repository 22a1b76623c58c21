// Package freegroup: homomorphisms between free groups.
//
// A homomorphism is fully determined by the images of the domain's
// generators; Apply substitutes and freely reduces.
package freegroup

import "fmt"

// Homomorphism maps a free group into another by generator images.
type Homomorphism struct {
	domain   *Group
	codomain *Group
	images   []Element
}

// NewHomomorphism builds the homomorphism sending generator i of domain to
// images[i]. The image count must match the domain rank and every image
// must belong to codomain.
func NewHomomorphism(domain, codomain *Group, images []Element) (*Homomorphism, error) {
	if len(images) != domain.Rank() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadImageCount, len(images), domain.Rank())
	}
	owned := make([]Element, len(images))
	for i, img := range images {
		if img.Group() != codomain {
			return nil, fmt.Errorf("%w: image %d", ErrGroupMismatch, i)
		}
		owned[i] = img
	}

	return &Homomorphism{domain: domain, codomain: codomain, images: owned}, nil
}

// IdentityHomomorphism returns the identity endomorphism of g.
func IdentityHomomorphism(g *Group) *Homomorphism {
	h, err := NewHomomorphism(g, g, g.Gens())
	if err != nil {
		panic(err) // generator images are always valid
	}

	return h
}

// Domain returns the source group.
func (h *Homomorphism) Domain() *Group { return h.domain }

// Codomain returns the target group.
func (h *Homomorphism) Codomain() *Group { return h.codomain }

// Image returns the image of domain generator i.
func (h *Homomorphism) Image(i int) Element { return h.images[i] }

// Apply maps x through the homomorphism.
func (h *Homomorphism) Apply(x Element) (Element, error) {
	if x.Group() != h.domain {
		return Element{}, ErrGroupMismatch
	}

	return x.Substitute(h.codomain, h.images)
}

// Compose returns the homomorphism x ↦ other(h(x)); h's codomain must be
// other's domain.
func (h *Homomorphism) Compose(other *Homomorphism) (*Homomorphism, error) {
	if h.codomain != other.domain {
		return nil, fmt.Errorf("%w: codomain/domain disagree", ErrGroupMismatch)
	}
	images := make([]Element, len(h.images))
	for i, img := range h.images {
		mapped, err := other.Apply(img)
		if err != nil {
			return nil, err
		}
		images[i] = mapped
	}

	return NewHomomorphism(h.domain, other.codomain, images)
}

// Equal reports whether two homomorphisms have the same domain, codomain,
// and generator images.
func (h *Homomorphism) Equal(other *Homomorphism) bool {
	if h.domain != other.domain || h.codomain != other.codomain {
		return false
	}
	for i, img := range h.images {
		if !img.Equal(other.images[i]) {
			return false
		}
	}

	return true
}

// String renders the map as "F(a,b) -> F(x) : a ↦ x, b ↦ x^-1".
func (h *Homomorphism) String() string {
	s := h.domain.String() + " -> " + h.codomain.String() + " :"
	for i, img := range h.images {
		if i > 0 {
			s += ","
		}
		s += " " + h.domain.GenName(i) + " -> " + img.String()
	}

	return s
}
