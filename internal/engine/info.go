// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package engine holds the Interpolation Info, the leaf and resolvent
// partial-interpolant rules, and the top-level Driver, kept unexported
// so only craig.Interpolator's contract is visible to callers of this
// module.
//
// The per-node coloring state sits in a side table keyed by node id (a
// slice indexed by id, sized to the graph when the Info is created), so
// a fresh one can be built per run without touching the proof graph
// itself.
package engine

import (
	"github.com/go-air/craig/assume"
	"github.com/go-air/craig/partition"
	"github.com/go-air/craig/proof"
	"github.com/go-air/craig/z"
)

// Info holds per-node coloring state for AB variables, the per-node
// partial interpolant, and the static variable-class cache. Its
// lifetime is scoped to one ProduceInterpolant call.
type Info struct {
	classes map[z.Var]z.Class
	colors  []map[z.Var]z.Color
	partial []z.Lit

	// theoryColors memoizes the color map built for a theory leaf by
	// clause reference, grounded on PGInterpolator.cc's per-clause
	// memoization.
	theoryColors map[proof.ClauseRef]map[z.Lit]z.Color
}

// NewInfo creates an Info sized for a proof graph with n nodes.
func NewInfo(n int) *Info {
	return &Info{
		classes:      make(map[z.Var]z.Class),
		colors:       make([]map[z.Var]z.Color, n),
		partial:      newUnsetPartials(n),
		theoryColors: make(map[proof.ClauseRef]map[z.Lit]z.Color),
	}
}

func newUnsetPartials(n int) []z.Lit {
	p := make([]z.Lit, n)
	for i := range p {
		p[i] = z.LitNull
	}
	return p
}

// SeedClasses computes and caches the static Class of every variable in
// g under A-mask alpha. A variable's class is A, B, or AB, except
// assumption variables, which are always forced to AB.
func (inf *Info) SeedClasses(g *proof.Graph, pm partition.Manager, alpha z.Mask, or assume.Oracle) {
	for v := range g.Variables() {
		if or.IsAssumedVariable(v) {
			inf.classes[v] = z.ClassAB
			continue
		}
		inf.classes[v] = partition.VarClass(pm, v, alpha)
	}
}

// Class returns the static class of v.
func (inf *Info) Class(v z.Var) z.Class {
	return inf.classes[v]
}

// VarColor returns v's color at node: for A-/B-class variables this is
// always their class; for AB-class variables it is the dynamic per-node
// coloring entry.
func (inf *Info) VarColor(node proof.ID, v z.Var) z.Color {
	class := inf.classes[v]
	if class != z.ClassAB {
		return z.FromClass(class)
	}
	if m := inf.colors[node]; m != nil {
		if c, ok := m[v]; ok {
			return c
		}
	}
	return z.ColorUndef
}

// SetColor stores the per-node coloring entry for an AB-class variable.
// Calling SetColor for an A-/B-class variable is a no-op: their color is
// always their static class.
func (inf *Info) SetColor(node proof.ID, v z.Var, c z.Color) {
	if inf.classes[v] != z.ClassAB {
		return
	}
	if inf.colors[node] == nil {
		inf.colors[node] = make(map[z.Var]z.Color)
	}
	inf.colors[node][v] = c
}

// MergeAntecedents unions the AB-colorings of a1 and a2 into node,
// before the pivot's own color is computed from the merged result.
func (inf *Info) MergeAntecedents(node, a1, a2 proof.ID) {
	size := len(inf.colors[a1]) + len(inf.colors[a2])
	if size == 0 {
		return
	}
	merged := make(map[z.Var]z.Color, size)
	for v, c := range inf.colors[a1] {
		merged[v] = c
	}
	for v, c := range inf.colors[a2] {
		merged[v] = c
	}
	inf.colors[node] = merged
}

// ClearPivot removes node's coloring entry for pivot, if pivot is
// AB-class. An AB pivot is resolved away at this node and must not
// propagate its coloring upward.
func (inf *Info) ClearPivot(node proof.ID, pivot z.Var) {
	if inf.classes[pivot] != z.ClassAB {
		return
	}
	delete(inf.colors[node], pivot)
}

// HasPivotColoring reports whether node's coloring still has an entry
// for pivot — used only by tests to check the pivot-elimination
// invariant.
func (inf *Info) HasPivotColoring(node proof.ID, pivot z.Var) bool {
	if inf.colors[node] == nil {
		return false
	}
	_, ok := inf.colors[node][pivot]
	return ok
}

// Partial returns node's partial interpolant, or z.LitNull if unset.
func (inf *Info) Partial(node proof.ID) z.Lit {
	return inf.partial[node]
}

// SetPartial sets node's partial interpolant. It panics if called twice
// for the same node: a partial interpolant is set once and never
// overwritten.
func (inf *Info) SetPartial(node proof.ID, m z.Lit) {
	if inf.partial[node] != z.LitNull {
		panic("engine: partial interpolant set twice for the same node")
	}
	inf.partial[node] = m
}

// TheoryColors returns the cached color map for a theory leaf's clause
// reference, and whether one was found.
func (inf *Info) TheoryColors(ref proof.ClauseRef) (map[z.Lit]z.Color, bool) {
	m, ok := inf.theoryColors[ref]
	return m, ok
}

// SetTheoryColors caches the color map built for a theory leaf's clause
// reference.
func (inf *Info) SetTheoryColors(ref proof.ClauseRef, m map[z.Lit]z.Color) {
	inf.theoryColors[ref] = m
}
