// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package assume declares the Assumption Oracle collaborator:
// incremental-frame markers that participate in the proof but must
// never surface in the produced interpolant.
package assume

import "github.com/go-air/craig/z"

// Oracle answers whether a variable or literal is an assumption (an
// incremental-frame marker), supplied by the surrounding incremental
// solver.
type Oracle interface {
	IsAssumedVariable(v z.Var) bool
	IsAssumedLiteral(l z.Lit) bool
}

// None is an Oracle for non-incremental runs: nothing is an assumption.
type None struct{}

func (None) IsAssumedVariable(z.Var) bool { return false }
func (None) IsAssumedLiteral(z.Lit) bool  { return false }
