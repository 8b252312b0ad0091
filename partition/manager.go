// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package partition declares the Partition Manager collaborator: for
// each original clause and each variable, it returns a partition mask.
// The interpolation engine only ever reads masks through this
// interface; it never constructs or mutates one itself.
package partition

import (
	"github.com/go-air/craig/proof"
	"github.com/go-air/craig/z"
)

// Manager is the external Partition Manager. Implementations are
// supplied by the surrounding solver; the engine treats Manager as
// read-only for the duration of a run.
type Manager interface {
	// VariableMask returns the partition mask of v.
	VariableMask(v z.Var) z.Mask

	// ClauseMask returns the partition mask of the clause referenced by
	// ref, as attached to a proof.Node by the proof's producer.
	ClauseMask(ref proof.ClauseRef) z.Mask
}

// VarClass computes the Class of v under A-mask alpha via the Manager.
// Assumption variables are not handled here: callers must special-case
// them to ClassAB, since the Manager has no notion of assumption
// literals.
func VarClass(m Manager, v z.Var, alpha z.Mask) z.Class {
	return z.ClassOf(m.VariableMask(v), alpha)
}

// ClauseClass computes the Class of a leaf's clause under A-mask alpha.
func ClauseClass(m Manager, ref proof.ClauseRef, alpha z.Mask) z.Class {
	return z.ClassOf(m.ClauseMask(ref), alpha)
}
