// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package engine

import (
	"github.com/go-air/craig/proof"
	"github.com/go-air/craig/theory"
	"github.com/go-air/craig/z"
)

type fakeManager struct {
	varMask    map[z.Var]z.Mask
	clauseMask map[proof.ClauseRef]z.Mask
}

func (f *fakeManager) VariableMask(v z.Var) z.Mask { return f.varMask[v] }
func (f *fakeManager) ClauseMask(r proof.ClauseRef) z.Mask { return f.clauseMask[r] }

type fakeTheoryHandler struct {
	interp        z.Lit
	asserted      []z.Lit
	backtracks    int
	checkResult   theory.Result
	assertOK      bool
	getErr        error
}

func (h *fakeTheoryHandler) AssertLiterals(ls []z.Lit) bool {
	h.asserted = append(h.asserted, ls...)
	return h.assertOK
}

func (h *fakeTheoryHandler) Check(complete bool) theory.Result {
	return h.checkResult
}

func (h *fakeTheoryHandler) GetInterpolant(alpha z.Mask, colors theory.ColorMap) (z.Lit, error) {
	if h.getErr != nil {
		return z.LitNull, h.getErr
	}
	return h.interp, nil
}

func (h *fakeTheoryHandler) Backtrack(level int) {
	h.backtracks++
}
