// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package theory declares the pluggable Theory Handler collaborator: the
// narrow interface through which a theory solver (linear arithmetic,
// EUF, STP, ...) produces theory-lemma interpolants. Theory solvers
// themselves are out of scope; this package only specifies how the
// engine talks to one.
package theory

import "github.com/go-air/craig/z"

// Result is the outcome of Check.
type Result int

const (
	Unknown Result = iota
	Sat
	Unsat
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// ColorMap assigns each clause-atom term its variable color in the node
// currently being interpolated.
type ColorMap map[z.Lit]z.Color

// Handler is the interface a theory solver implements to participate in
// interpolation. Exactly one Handler instance is used per theory-lemma
// leaf and must be fully reset (Backtrack(-1)) before or after each use.
type Handler interface {
	// AssertLiterals asserts literals to the theory solver's current
	// context. It returns false if the assertion is an immediate
	// syntactic conflict.
	AssertLiterals(literals []z.Lit) bool

	// Check decides satisfiability of the asserted literals. If
	// complete is false, the theory solver may return Unknown for
	// incomplete decision procedures; the adapter always calls Check
	// with complete=true and treats anything but Unsat as an invariant
	// violation.
	Check(complete bool) Result

	// GetInterpolant returns the theory-level partial interpolant for
	// the literals last found UNSAT, colored per colors and split by
	// A-mask alpha.
	GetInterpolant(alpha z.Mask, colors ColorMap) (z.Lit, error)

	// Backtrack resets the handler's asserted-literal context to empty
	// when level=-1.
	Backtrack(level int)
}
