// Package freegroup defines free groups over a finite alphabet of named
// generators and the reduced-word Element value type that every other
// package in this module consumes.
//
// This file declares the Group type, its constructors, and the sentinel
// errors shared by the package.
//
// Errors:
//
//	ErrBadGeneratorName  - a generator name is empty or not an identifier.
//	ErrDuplicateGenerator - two generators share the same name.
//	ErrNoGenerators      - a group was requested with an empty alphabet.
//	ErrGroupMismatch     - operands belong to different free groups.
//	ErrUnknownGenerator  - a parsed word names a generator outside the alphabet.
//	ErrBadImageCount     - a homomorphism was given the wrong number of images.
package freegroup

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for free-group construction and arithmetic.
var (
	// ErrBadGeneratorName indicates a generator name that is empty or not of
	// the form letter (letter|digit|underscore)*.
	ErrBadGeneratorName = errors.New("freegroup: invalid generator name")

	// ErrDuplicateGenerator indicates two generators with the same name.
	ErrDuplicateGenerator = errors.New("freegroup: duplicate generator name")

	// ErrNoGenerators indicates an attempt to build a group with no generators.
	ErrNoGenerators = errors.New("freegroup: at least one generator is required")

	// ErrGroupMismatch indicates that operands belong to different free groups.
	// Mixing groups is always a programming error; element arithmetic panics
	// with this error, while package boundaries return it.
	ErrGroupMismatch = errors.New("freegroup: elements belong to different free groups")

	// ErrUnknownGenerator indicates a word referencing a generator that is not
	// part of the group's alphabet.
	ErrUnknownGenerator = errors.New("freegroup: unknown generator")

	// ErrBadImageCount indicates a homomorphism defined with a number of
	// images different from the domain's rank.
	ErrBadImageCount = errors.New("freegroup: image count must equal domain rank")
)

// Group is a free group over a fixed, ordered alphabet of generators.
//
// Two elements may be combined only when they come from the same Group
// instance; group identity is pointer identity, exactly as each graph in
// this module is owned by the group it was built over.
type Group struct {
	names []string
	name  string
}

// New constructs a free group over the given generator names.
// Names must be non-empty identifiers (letter followed by letters, digits,
// or underscores) and pairwise distinct.
func New(names ...string) (*Group, error) {
	if len(names) == 0 {
		return nil, ErrNoGenerators
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if !validGenName(n) {
			return nil, fmt.Errorf("%w: %q", ErrBadGeneratorName, n)
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGenerator, n)
		}
		seen[n] = struct{}{}
	}
	owned := make([]string, len(names))
	copy(owned, names)

	return &Group{names: owned}, nil
}

// MustNew is New but panics on error. Intended for fixed alphabets in
// tests and presentation builders.
func MustNew(names ...string) *Group {
	g, err := New(names...)
	if err != nil {
		panic(err)
	}

	return g
}

// WithName attaches a display name used by String; returns the receiver.
func (g *Group) WithName(name string) *Group {
	g.name = name

	return g
}

// Rank returns the number of generators.
func (g *Group) Rank() int { return len(g.names) }

// GenName returns the name of generator i (0-based).
func (g *Group) GenName(i int) string { return g.names[i] }

// Gen returns generator i as an Element.
func (g *Group) Gen(i int) Element {
	return Element{group: g, word: []Syllable{{Gen: i, Pow: 1}}}
}

// Gens returns all generators in alphabet order.
func (g *Group) Gens() []Element {
	gens := make([]Element, g.Rank())
	for i := range gens {
		gens[i] = g.Gen(i)
	}

	return gens
}

// Identity returns the empty word.
func (g *Group) Identity() Element { return Element{group: g} }

// String renders the group as its display name, or F(a,b,...) otherwise.
func (g *Group) String() string {
	if g.name != "" {
		return g.name
	}

	return "F(" + strings.Join(g.names, ",") + ")"
}

// validGenName reports whether n is a letter followed by letters, digits,
// or underscores.
func validGenName(n string) bool {
	if n == "" {
		return false
	}
	for i, r := range n {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if i == 0 && !isLetter {
			return false
		}
		if !isLetter && !isDigit && r != '_' {
			return false
		}
	}

	return true
}
