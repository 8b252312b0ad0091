// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package engine

import (
	"github.com/go-air/craig/cerrors"
	"github.com/go-air/craig/term"
	"github.com/go-air/craig/z"
)

// Combine computes the partial interpolant of a resolvent from its
// antecedents' partial interpolants i1, i2, by the pivot's color.
//
// assumedPositive is only consulted when color is z.ColorS: it reports
// whether the positive pivot literal is the assumed one, selecting
// which antecedent's interpolant survives.
func Combine(s *term.Store, color z.Color, pivot z.Lit, i1, i2 z.Lit, alternative bool, assumedPositive bool) z.Lit {
	switch color {
	case z.ColorA:
		return s.Or(i1, i2)
	case z.ColorB:
		return s.And(i1, i2)
	case z.ColorAB:
		return combineAB(s, pivot, i1, i2, alternative)
	case z.ColorS:
		if assumedPositive {
			return i2
		}
		return i1
	default:
		cerrors.PanicInvariant("resolvent pivot with no color")
		panic("unreachable")
	}
}

// combineAB implements the AB-pivot rule: the standard form
// (I1 ∨ p) ∧ (I2 ∨ ¬p), or, when the alternative-interpolant toggle is
// enabled and the size heuristic triggers, the logically equivalent
// alternative form (I1 ∧ ¬p) ∨ (I2 ∧ p).
func combineAB(s *term.Store, pivot, i1, i2 z.Lit, alternative bool) z.Lit {
	if alternative && useAlternative(s, i1, i2) {
		return s.Or(s.And(i1, s.Not(pivot)), s.And(i2, pivot))
	}
	return s.And(s.Or(i1, pivot), s.Or(i2, s.Not(pivot)))
}

// useAlternative is the size heuristic that picks the alternative form
// when exactly one side is the constant ⊥ and the other isn't a
// constant, or when both sides are ⊥. Taken verbatim from the original
// source; its optimality is not proven.
func useAlternative(s *term.Store, i1, i2 z.Lit) bool {
	i1False, i2False := s.IsFalse(i1), s.IsFalse(i2)
	i1Const, i2Const := s.IsConst(i1), s.IsConst(i2)
	return (i1False && !i2Const) || (!i1Const && i2False) || (i1False && i2False)
}
