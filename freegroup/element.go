// Package freegroup: reduced-word elements and their arithmetic.
//
// An Element is an immutable reduced word: a sequence of syllables
// (generator, non-zero exponent) with no two adjacent syllables sharing a
// generator. All operations return fresh elements; the zero Element is not
// valid, obtain elements from a Group.
package freegroup

import (
	"strconv"
	"strings"
)

// Syllable is one run of a reduced word: generator index and a non-zero
// signed exponent.
type Syllable struct {
	Gen int
	Pow int
}

// Letter is a single signed generator step, the unit consumed when walking
// a coset graph. Sign is +1 or -1.
type Letter struct {
	Gen  int
	Sign int
}

// Element is a reduced word over the generators of one Group.
// Elements are immutable values; arithmetic never mutates the receiver.
type Element struct {
	group *Group
	word  []Syllable
}

// Group returns the free group this element belongs to.
func (e Element) Group() *Group { return e.group }

// IsIdentity reports whether the word is empty.
func (e Element) IsIdentity() bool { return len(e.word) == 0 }

// Len returns the letter length of the word (sum of absolute exponents).
func (e Element) Len() int {
	n := 0
	for _, s := range e.word {
		n += abs(s.Pow)
	}

	return n
}

// Syllables returns a copy of the reduced syllable sequence.
func (e Element) Syllables() []Syllable {
	out := make([]Syllable, len(e.word))
	copy(out, e.word)

	return out
}

// Letters expands the word into single signed generator steps, in order.
func (e Element) Letters() []Letter {
	out := make([]Letter, 0, e.Len())
	for _, s := range e.word {
		step := Letter{Gen: s.Gen, Sign: sign(s.Pow)}
		for i := 0; i < abs(s.Pow); i++ {
			out = append(out, step)
		}
	}

	return out
}

// checkGroup panics with ErrGroupMismatch when f was built over a different
// group. Arithmetic on mixed groups is a programming error, never data.
func (e Element) checkGroup(f Element) {
	if e.group != f.group {
		panic(ErrGroupMismatch)
	}
}

// Mul returns e·f, freely reduced.
func (e Element) Mul(f Element) Element {
	e.checkGroup(f)
	word := make([]Syllable, len(e.word), len(e.word)+len(f.word))
	copy(word, e.word)
	for _, s := range f.word {
		word = appendSyllable(word, s)
	}

	return Element{group: e.group, word: word}
}

// Inverse returns e⁻¹.
func (e Element) Inverse() Element {
	word := make([]Syllable, len(e.word))
	for i, s := range e.word {
		word[len(e.word)-1-i] = Syllable{Gen: s.Gen, Pow: -s.Pow}
	}

	return Element{group: e.group, word: word}
}

// Pow returns eⁿ for any integer n (square-and-multiply).
func (e Element) Pow(n int) Element {
	if n == 0 {
		return e.group.Identity()
	}
	if n < 0 {
		return e.Inverse().Pow(-n)
	}
	half := e.Pow(n / 2)
	sq := half.Mul(half)
	if n%2 == 0 {
		return sq
	}

	return sq.Mul(e)
}

// Conjugate returns by·e·by⁻¹.
func (e Element) Conjugate(by Element) Element {
	return by.Mul(e).Mul(by.Inverse())
}

// Commutator returns a·b·a⁻¹·b⁻¹.
func Commutator(a, b Element) Element {
	return a.Mul(b).Mul(a.Inverse()).Mul(b.Inverse())
}

// Equal reports whether e and f are the same reduced word of the same group.
func (e Element) Equal(f Element) bool {
	if e.group != f.group || len(e.word) != len(f.word) {
		return false
	}
	for i, s := range e.word {
		if f.word[i] != s {
			return false
		}
	}

	return true
}

// Compare imposes the well-founded total order used throughout the module:
// shorter words first, then letterwise with generators in alphabet order and
// a generator sorting before its own inverse. Returns -1, 0, or +1.
func (e Element) Compare(f Element) int {
	e.checkGroup(f)
	if le, lf := e.Len(), f.Len(); le != lf {
		if le < lf {
			return -1
		}

		return 1
	}
	ea, fa := e.Letters(), f.Letters()
	for i := range ea {
		if c := compareLetter(ea[i], fa[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Less reports e < f in the word order.
func (e Element) Less(f Element) bool { return e.Compare(f) < 0 }

// Substitute maps generator i of e's group to images[i] in codomain and
// evaluates the resulting word there. The number of images must equal the
// rank of e's group.
func (e Element) Substitute(codomain *Group, images []Element) (Element, error) {
	if len(images) != e.group.Rank() {
		return Element{}, ErrBadImageCount
	}
	for _, img := range images {
		if img.Group() != codomain {
			return Element{}, ErrGroupMismatch
		}
	}
	out := codomain.Identity()
	for _, s := range e.word {
		out = out.Mul(images[s.Gen].Pow(s.Pow))
	}

	return out, nil
}

// String renders the word as a*b^-2*a, or "1" for the identity. The output
// round-trips through Parse.
func (e Element) String() string {
	if e.IsIdentity() {
		return "1"
	}
	var b strings.Builder
	for i, s := range e.word {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(e.group.names[s.Gen])
		if s.Pow != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(s.Pow))
		}
	}

	return b.String()
}

// appendSyllable appends s to a reduced word, merging and cancelling at the
// junction so the result stays reduced.
func appendSyllable(word []Syllable, s Syllable) []Syllable {
	if s.Pow == 0 {
		return word
	}
	if n := len(word); n > 0 && word[n-1].Gen == s.Gen {
		word[n-1].Pow += s.Pow
		if word[n-1].Pow == 0 {
			word = word[:n-1]
		}

		return word
	}

	return append(word, s)
}

// compareLetter orders single steps: generator index first, then the
// positive letter before the negative one.
func compareLetter(a, b Letter) int {
	if a.Gen != b.Gen {
		if a.Gen < b.Gen {
			return -1
		}

		return 1
	}
	if a.Sign == b.Sign {
		return 0
	}
	if a.Sign > 0 {
		return -1
	}

	return 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

func sign(n int) int {
	if n < 0 {
		return -1
	}

	return 1
}
