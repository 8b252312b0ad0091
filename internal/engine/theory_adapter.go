// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package engine

import (
	"github.com/go-air/craig/cerrors"
	"github.com/go-air/craig/proof"
	"github.com/go-air/craig/term"
	"github.com/go-air/craig/theory"
	"github.com/go-air/craig/z"
)

// TheoryInterpolant handles a THEORY leaf: assert the clause's
// negation, confirm UNSAT, build a color map over the clause's atoms,
// and delegate to the handler.
//
// The handler is always reset via a deferred Backtrack(-1), even if
// GetInterpolant panics, matching THandler.cc's RAII-guaranteed reset
// and the requirement that a theory handler be fully reset between
// leaves.
func TheoryInterpolant(s *term.Store, h theory.Handler, inf *Info, alpha z.Mask, node proof.ID, ref proof.ClauseRef, clause []z.Lit) z.Lit {
	defer h.Backtrack(-1)

	negated := make([]z.Lit, len(clause))
	for i, l := range clause {
		negated[i] = l.Not()
	}
	// assert_literals returning false means an immediate conflict: the
	// negation is already refuted, which is exactly the UNSAT this step
	// requires, so no further Check is needed.
	if ok := h.AssertLiterals(negated); ok {
		if res := h.Check(true); res != theory.Unsat {
			cerrors.PanicInvariant("theory leaf: negation of a T-consequence of false did not yield UNSAT")
		}
	}

	colors, cached := inf.TheoryColors(ref)
	if !cached {
		colors = make(map[z.Lit]z.Color, len(clause))
		for _, l := range clause {
			atom := s.Atom(l.Var())
			colors[atom] = inf.VarColor(node, l.Var())
		}
		inf.SetTheoryColors(ref, colors)
	}

	interp, err := h.GetInterpolant(alpha, colors)
	if err != nil {
		panic(cerrors.NewTheory("theory handler failed to produce an interpolant", err))
	}
	return interp
}
