// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package engine

import (
	"github.com/go-air/craig/assume"
	"github.com/go-air/craig/cerrors"
	"github.com/go-air/craig/label"
	"github.com/go-air/craig/partition"
	"github.com/go-air/craig/proof"
	"github.com/go-air/craig/term"
	"github.com/go-air/craig/theory"
	"github.com/go-air/craig/z"
)

// Logger is the minimal leveled-logging surface the driver needs.
// *logrus.Logger and *logrus.Entry both satisfy it; tests may supply a
// no-op implementation.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

// NopLogger is a Logger that discards everything.
var NopLogger Logger = nopLogger{}

// Run is the Interpolation Driver's entry point: it validates the
// configuration, seeds variable classes, optionally computes the PS
// label map, walks the proof in topological order producing one partial
// interpolant per node, and returns the root's.
func Run(
	g *proof.Graph,
	pm partition.Manager,
	alpha z.Mask,
	or assume.Oracle,
	sys label.System,
	alternative bool,
	s *term.Store,
	th theory.Handler,
	logger Logger,
) (result z.Lit, err error) {
	if sys == label.SystemUndef {
		return z.LitNull, cerrors.NewConfig("no interpolation labeling system selected")
	}
	if logger == nil {
		logger = NopLogger
	}

	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*cerrors.Error)
			if !ok {
				panic(r)
			}
			logger.Warnf("interpolation aborted: %s", ce)
			result, err = z.LitNull, ce
		}
	}()

	inf := NewInfo(g.Len())
	inf.SeedClasses(g, pm, alpha, or)

	var psLabels label.Labels
	if sys.IsProofSensitive() {
		psLabels = label.ComputeLabels(g, pm, alpha)
	}

	for _, id := range g.TopoOrder() {
		node := g.Node(id)
		if node.Kind != proof.Resolvent {
			processLeaf(s, pm, or, th, inf, sys, psLabels, alpha, id, node, logger)
			continue
		}
		processResolvent(s, or, inf, alternative, id, node, logger)
	}

	return inf.Partial(g.Root()), nil
}

func processLeaf(
	s *term.Store,
	pm partition.Manager,
	or assume.Oracle,
	th theory.Handler,
	inf *Info,
	sys label.System,
	psLabels label.Labels,
	alpha z.Mask,
	id proof.ID,
	node *proof.Node,
	logger Logger,
) {
	LabelLeaf(inf, sys, psLabels, or, id, node.Clause)

	var partial z.Lit
	switch node.Kind {
	case proof.Orig:
		class := label.ResolveLeafClass(pm, node.Ref, alpha)
		partial = OrigInterpolant(s, or, inf, id, node.Clause, class)
	case proof.Theory:
		if th == nil {
			cerrors.PanicInvariant("theory leaf encountered with no theory handler configured")
		}
		partial = TheoryInterpolant(s, th, inf, alpha, id, node.Ref, node.Clause)
	case proof.Split:
		partial = SplitInterpolant(s, inf, id, node.Clause)
	case proof.Assumption:
		partial = AssumptionInterpolant(s)
	default:
		cerrors.PanicInvariant("leaf node with unexpected kind")
	}
	inf.SetPartial(id, partial)
	logger.Debugf("leaf %d kind=%s partial=%v", id, node.Kind, partial)
}

func processResolvent(
	s *term.Store,
	or assume.Oracle,
	inf *Info,
	alternative bool,
	id proof.ID,
	node *proof.Node,
	logger Logger,
) {
	inf.MergeAntecedents(id, node.Ante1, node.Ante2)

	var color z.Color
	if or.IsAssumedVariable(node.Pivot) {
		color = z.ColorS
	} else {
		color = inf.VarColor(id, node.Pivot)
		if color == z.ColorUndef {
			cerrors.PanicInvariant("resolvent pivot variable has no class")
		}
	}

	i1, i2 := inf.Partial(node.Ante1), inf.Partial(node.Ante2)
	pivotTerm := s.Atom(node.Pivot)
	assumedPositive := or.IsAssumedLiteral(node.Pivot.Pos())
	partial := Combine(s, color, pivotTerm, i1, i2, alternative, assumedPositive)

	inf.ClearPivot(id, node.Pivot)
	inf.SetPartial(id, partial)
	logger.Debugf("resolvent %d pivot=%s color=%s partial=%v", id, node.Pivot, color, partial)
}
