// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package engine

import (
	"github.com/go-air/craig/assume"
	"github.com/go-air/craig/cerrors"
	"github.com/go-air/craig/label"
	"github.com/go-air/craig/proof"
	"github.com/go-air/craig/term"
	"github.com/go-air/craig/z"
)

// LabelLeaf assigns, to every variable in a leaf's clause, its AB
// coloring entry for that node. A-class and B-class variables need no
// entry (their color is always their class); assumption variables are
// skipped too — no coloring is stored for them, and they are filtered
// at use sites instead.
func LabelLeaf(inf *Info, sys label.System, ps label.Labels, or assume.Oracle, node proof.ID, clause []z.Lit) {
	for _, l := range clause {
		v := l.Var()
		if or.IsAssumedVariable(v) {
			continue
		}
		class := inf.Class(v)
		if class != z.ClassAB {
			continue
		}
		inf.SetColor(node, v, label.AssignLeafColor(sys, class, ps[v]))
	}
}

func literalTerm(s *term.Store, l z.Lit) z.Lit {
	a := s.Atom(l.Var())
	if !l.IsPos() {
		return s.Not(a)
	}
	return a
}

// OrigInterpolant computes the partial interpolant of an ORIG leaf.
// class must be A or B — relabeling any AB clause to A is the caller's
// responsibility, via label.ResolveLeafClass.
func OrigInterpolant(s *term.Store, or assume.Oracle, inf *Info, node proof.ID, clause []z.Lit, class z.Class) z.Lit {
	var opposite z.Color
	switch class {
	case z.ClassA:
		opposite = z.ColorB
	case z.ClassB:
		opposite = z.ColorA
	default:
		cerrors.PanicInvariant("ORIG leaf with non-A/B class")
	}

	var restricted []z.Lit
	for _, l := range clause {
		v := l.Var()
		if or.IsAssumedVariable(v) {
			continue
		}
		if inf.VarColor(node, v) != opposite {
			continue
		}
		if or.IsAssumedLiteral(l.Not()) {
			continue
		}
		restricted = append(restricted, l)
	}

	switch class {
	case z.ClassA:
		if len(restricted) == 0 {
			return s.False()
		}
		terms := make([]z.Lit, len(restricted))
		for i, l := range restricted {
			terms[i] = literalTerm(s, l)
		}
		return s.Ors(terms...)
	default: // z.ClassB
		if len(restricted) == 0 {
			return s.True()
		}
		terms := make([]z.Lit, len(restricted))
		for i, l := range restricted {
			terms[i] = s.Not(literalTerm(s, l))
		}
		return s.Ands(terms...)
	}
}

// SplitInterpolant computes the partial interpolant of a SPLIT leaf:
// both atoms share a color; A -> ⊥, B -> ⊤, AB -> ⊥ arbitrarily.
func SplitInterpolant(s *term.Store, inf *Info, node proof.ID, clause []z.Lit) z.Lit {
	if len(clause) == 0 {
		cerrors.PanicInvariant("SPLIT leaf with empty clause")
	}
	color := inf.VarColor(node, clause[0].Var())
	switch color {
	case z.ColorA, z.ColorAB:
		return s.False()
	case z.ColorB:
		return s.True()
	default:
		cerrors.PanicInvariant("SPLIT leaf with undefined color")
		panic("unreachable")
	}
}

// AssumptionInterpolant is the placeholder partial interpolant for an
// ASSUMPTION leaf: it is absorbed by the S-pivot rule upward and never
// itself contributes to the final interpolant.
func AssumptionInterpolant(s *term.Store) z.Lit {
	return s.True()
}
