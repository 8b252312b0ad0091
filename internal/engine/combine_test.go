// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package engine

import (
	"testing"

	"github.com/go-air/craig/term"
	"github.com/go-air/craig/z"
	"github.com/stretchr/testify/require"
)

func TestCombineAColor(t *testing.T) {
	s := term.NewStore()
	a := s.Atom(z.Var(1))
	b := s.Atom(z.Var(2))
	got := Combine(s, z.ColorA, z.LitNull, a, b, false, false)
	require.Equal(t, s.Or(a, b), got)
}

func TestCombineBColor(t *testing.T) {
	s := term.NewStore()
	a := s.Atom(z.Var(1))
	b := s.Atom(z.Var(2))
	got := Combine(s, z.ColorB, z.LitNull, a, b, false, false)
	require.Equal(t, s.And(a, b), got)
}

func TestCombineSColorSelectsNonAssumedAntecedent(t *testing.T) {
	s := term.NewStore()
	i1 := s.Atom(z.Var(1))
	i2 := s.Atom(z.Var(2))
	require.Equal(t, i2, Combine(s, z.ColorS, z.LitNull, i1, i2, false, true))
	require.Equal(t, i1, Combine(s, z.ColorS, z.LitNull, i1, i2, false, false))
}

// AB pivot p with I1=⊥, I2=⊥. The alternative form is chosen and both
// forms are logically (here: structurally) equivalent.
func TestCombineABPivotBothFalse(t *testing.T) {
	s := term.NewStore()
	p := s.Atom(z.Var(7))
	f := s.False()

	require.True(t, useAlternative(s, f, f))

	withAlt := Combine(s, z.ColorAB, p, f, f, true, false)
	withoutAlt := Combine(s, z.ColorAB, p, f, f, false, false)
	require.Equal(t, s.False(), withAlt)
	require.Equal(t, s.False(), withoutAlt, "p ∧ ¬p reduces to ⊥ under hash-consing too")
}

func TestCombineABPivotStandardForm(t *testing.T) {
	s := term.NewStore()
	p := s.Atom(z.Var(7))
	i1 := s.Atom(z.Var(8))
	i2 := s.Atom(z.Var(9))
	got := Combine(s, z.ColorAB, p, i1, i2, false, false)
	require.Equal(t, s.And(s.Or(i1, p), s.Or(i2, s.Not(p))), got)
}

func TestUseAlternativeHeuristicTriggers(t *testing.T) {
	s := term.NewStore()
	f, tt := s.False(), s.True()
	notConst := s.Atom(z.Var(1))

	require.True(t, useAlternative(s, f, notConst))
	require.True(t, useAlternative(s, notConst, f))
	require.True(t, useAlternative(s, f, f))
	require.False(t, useAlternative(s, notConst, notConst))
	require.False(t, useAlternative(s, f, tt))
	require.False(t, useAlternative(s, tt, f))
}
