// Package freegroup: word-expression parsing.
//
// Grammar (participle, default lexer):
//
//	word    = factor ("*" factor)*
//	factor  = (ident | "(" word ")") ("^" ["-"] int)?
//
// "1" and the empty string denote the identity.
package freegroup

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

type wordExpr struct {
	Factors []*factorExpr `parser:"(@@ (\"*\" @@)*)?"`
}

type factorExpr struct {
	Name string    `parser:"( @Ident"`
	Sub  *wordExpr `parser:"  | \"(\" @@ \")\" )"`
	Pow  *powExpr  `parser:"(\"^\" @@)?"`
}

type powExpr struct {
	Neg bool `parser:"@\"-\"?"`
	Val int  `parser:"@Int"`
}

var wordParser = participle.MustBuild[wordExpr]()

// Parse reads a word expression such as "a*b^-2*(a*b)^3" and returns the
// freely reduced element of g it denotes.
func Parse(g *Group, expr string) (Element, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" || trimmed == "1" {
		return g.Identity(), nil
	}
	parsed, err := wordParser.ParseString("", trimmed)
	if err != nil {
		return Element{}, fmt.Errorf("freegroup: parse %q: %w", expr, err)
	}

	return evalWordExpr(g, parsed)
}

// MustParse is Parse but panics on error; for fixed test and builder words.
func MustParse(g *Group, expr string) Element {
	e, err := Parse(g, expr)
	if err != nil {
		panic(err)
	}

	return e
}

func evalWordExpr(g *Group, w *wordExpr) (Element, error) {
	out := g.Identity()
	for _, f := range w.Factors {
		base, err := evalFactorExpr(g, f)
		if err != nil {
			return Element{}, err
		}
		out = out.Mul(base)
	}

	return out, nil
}

func evalFactorExpr(g *Group, f *factorExpr) (Element, error) {
	var base Element
	switch {
	case f.Sub != nil:
		sub, err := evalWordExpr(g, f.Sub)
		if err != nil {
			return Element{}, err
		}
		base = sub
	default:
		idx := genIndex(g, f.Name)
		if idx < 0 {
			return Element{}, fmt.Errorf("%w: %q", ErrUnknownGenerator, f.Name)
		}
		base = g.Gen(idx)
	}
	if f.Pow == nil {
		return base, nil
	}
	pow := f.Pow.Val
	if f.Pow.Neg {
		pow = -pow
	}

	return base.Pow(pow), nil
}

func genIndex(g *Group, name string) int {
	for i, n := range g.names {
		if n == name {
			return i
		}
	}

	return -1
}
