// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cerrors defines the engine's error taxonomy: a user-visible
// Config error, an internal Invariant violation, and a Theory-backend
// failure which is reported as an Invariant violation carrying the
// backend's message.
package cerrors

import "fmt"

// Kind classifies an Error.
type Kind uint8

const (
	// Config marks a user-visible configuration mistake, e.g. no
	// labeling system selected. Surfaced at the API boundary as a
	// normal error return, never a panic.
	Config Kind = iota
	// Invariant marks a broken proof or broken collaborator: a pivot
	// with no class, an unexpected clause class, a leaf node with a
	// non-leaf kind, or a theory lemma whose negation fails to
	// conflict. The run aborts; no partial result is returned.
	Invariant
	// Theory marks a theory-backend failure, propagated as an
	// Invariant violation carrying the backend's message.
	Theory
)

func (k Kind) String() string {
	switch k {
	case Config:
		return "config"
	case Invariant:
		return "invariant"
	case Theory:
		return "theory"
	default:
		return "unknown"
	}
}

// Error is the engine's error type. Config errors are returned directly
// by the public API; Invariant and Theory errors are raised internally
// via panic(*Error) and converted back to a normal error return by the
// single recover boundary at the top of the driver — no recovery is
// attempted at any level below that boundary.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("craig: %s error: %s: %s", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("craig: %s error: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfig creates a Config error.
func NewConfig(msg string) *Error {
	return &Error{Kind: Config, Msg: msg}
}

// NewInvariant creates an Invariant error.
func NewInvariant(msg string) *Error {
	return &Error{Kind: Invariant, Msg: msg}
}

// NewTheory wraps a theory-backend failure as a Theory error.
func NewTheory(msg string, cause error) *Error {
	return &Error{Kind: Theory, Msg: msg, Err: cause}
}

// PanicInvariant raises an internal invariant violation. It is only
// ever called from inside this module's own packages; it is recovered
// at the single boundary in internal/engine.Run, which
// craig.Interpolator.ProduceInterpolant calls.
func PanicInvariant(msg string) {
	panic(NewInvariant(msg))
}
