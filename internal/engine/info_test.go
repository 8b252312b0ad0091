// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package engine

import (
	"testing"

	"github.com/go-air/craig/assume"
	"github.com/go-air/craig/proof"
	"github.com/go-air/craig/z"
	"github.com/stretchr/testify/require"
)

func TestInfoPartialSetOnce(t *testing.T) {
	inf := NewInfo(1)
	inf.SetPartial(0, z.Var(1).Pos())
	require.Panics(t, func() {
		inf.SetPartial(0, z.Var(2).Pos())
	})
}

func TestInfoVarColorNonABIsClass(t *testing.T) {
	inf := NewInfo(1)
	inf.classes[z.Var(1)] = z.ClassA
	inf.classes[z.Var(2)] = z.ClassB
	require.Equal(t, z.ColorA, inf.VarColor(0, z.Var(1)))
	require.Equal(t, z.ColorB, inf.VarColor(0, z.Var(2)))
}

func TestInfoMergeAndClearPivot(t *testing.T) {
	inf := NewInfo(3)
	inf.classes[z.Var(1)] = z.ClassAB
	inf.SetColor(0, z.Var(1), z.ColorB)
	inf.SetColor(1, z.Var(1), z.ColorB)

	inf.MergeAntecedents(2, 0, 1)
	require.True(t, inf.HasPivotColoring(2, z.Var(1)))

	// After ClearPivot the resolvent carries no coloring entry for its
	// own pivot.
	inf.ClearPivot(2, z.Var(1))
	require.False(t, inf.HasPivotColoring(2, z.Var(1)))
}

func TestInfoClearPivotNoopForNonAB(t *testing.T) {
	inf := NewInfo(1)
	inf.classes[z.Var(1)] = z.ClassA
	require.NotPanics(t, func() {
		inf.ClearPivot(0, z.Var(1))
	})
}

func TestInfoSeedClassesForcesAssumptionsAB(t *testing.T) {
	g := proof.NewGraph()
	g.AddLeaf(proof.Assumption, []z.Lit{z.Var(1).Pos()}, 0)
	g.SetRoot(0)

	inf := NewInfo(g.Len())
	inf.SeedClasses(g, &fakeManager{varMask: map[z.Var]z.Mask{1: z.PartitionMask(0)}}, z.PartitionMask(0), assumedOracle{1})
	require.Equal(t, z.ClassAB, inf.Class(z.Var(1)))
}

type assumedOracle struct {
	v z.Var
}

func (a assumedOracle) IsAssumedVariable(v z.Var) bool { return v == a.v }
func (a assumedOracle) IsAssumedLiteral(l z.Lit) bool  { return l.Var() == a.v }

var _ assume.Oracle = assumedOracle{}
