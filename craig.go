// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package craig is a propositional Craig interpolation engine: given a
// resolution refutation proof of the unsatisfiability of a formula split
// into partitions A and B, it produces an interpolant term I such that
// A ⇒ I, I ∧ B is unsatisfiable, and every non-logical symbol of I
// occurs in both A and B.
//
// The public surface is deliberately small: a Config, an Interpolator
// built from one, and the collaborator interfaces in partition, theory
// and assume that a surrounding SMT solver implements. Everything else
// — the SAT search that built the proof, proof compression, the term
// DAG's own construction, theory solving, SMT-LIB I/O — is an external
// collaborator.
package craig

import (
	"github.com/go-air/craig/assume"
	"github.com/go-air/craig/internal/engine"
	"github.com/go-air/craig/label"
	"github.com/go-air/craig/partition"
	"github.com/go-air/craig/proof"
	"github.com/go-air/craig/term"
	"github.com/go-air/craig/theory"
	"github.com/go-air/craig/z"
	"github.com/sirupsen/logrus"
)

// Config carries the driver's explicit inputs that don't vary per run:
// the labeling system selector and the alternative-interpolant toggle,
// plus an optional logger. There is no global state: the driver takes
// the proof, A-mask, labeling system, and theory handler as explicit
// inputs on every call.
type Config struct {
	System      label.System
	Alternative bool

	// Logger receives Debug-level traces of every leaf/resolvent
	// processed and a Warn on abort. *logrus.Logger and *logrus.Entry
	// both satisfy this; New replaces nil with logrus.StandardLogger().
	Logger engine.Logger
}

// Interpolator produces Craig interpolants from resolution refutation
// proofs under a fixed Config, term Store and Assumption Oracle.
type Interpolator struct {
	cfg   Config
	store *term.Store
	or    assume.Oracle
}

// New creates an Interpolator. store is the Term Store collaborator; or
// is the Assumption Oracle — pass assume.None{} for a non-incremental
// run with no assumption literals.
func New(cfg Config, store *term.Store, or assume.Oracle) *Interpolator {
	if or == nil {
		or = assume.None{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return &Interpolator{cfg: cfg, store: store, or: or}
}

// ProduceInterpolant is the Interpolation Driver's entry point: given a
// proof and an A-mask, it returns the interpolant term, or an error if
// the configuration is invalid or the proof/collaborator violates an
// invariant the engine relies on.
//
// th may be nil if the proof contains no THEORY leaves; encountering one
// with a nil handler is itself an invariant violation.
func (ip *Interpolator) ProduceInterpolant(g *proof.Graph, pm partition.Manager, alphaMask z.Mask, th theory.Handler) (z.Lit, error) {
	return engine.Run(g, pm, alphaMask, ip.or, ip.cfg.System, ip.cfg.Alternative, ip.store, th, ip.cfg.Logger)
}

// Store returns the Interpolator's term store, so callers can build
// atoms and inspect the resulting term.
func (ip *Interpolator) Store() *term.Store {
	return ip.store
}
