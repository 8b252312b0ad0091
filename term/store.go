// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package term implements an immutable, hash-consed DAG of boolean terms
// with constructors for and/or/not and the constants true/false, plus a
// cache mapping proof variables to the atomic terms that represent them.
//
// The representation is an and-inverter graph: every internal node is a
// two-input AND, negation is the low bit of the literal, and Or/Implies
// are derived via De Morgan. This gives hash-consing (structural term
// identity, so repeated construction of an equivalent term is a no-op)
// almost for free via a strash table.
package term

import (
	"fmt"

	"github.com/go-air/craig/z"
)

type node struct {
	a z.Lit
	b z.Lit
	n uint32 // next in strash bucket
}

// Store is a hash-consed boolean term DAG. Terms compare by identity:
// two calls to And (or Or, Not, ...) with equivalent arguments return the
// same z.Lit.
type Store struct {
	nodes  []node
	strash []uint32
	f      z.Lit
	t      z.Lit
	atoms  map[z.Var]z.Lit
}

// NewStore creates an empty term store.
func NewStore() *Store {
	return NewStoreCap(128)
}

// NewStoreCap creates an empty term store with an initial capacity hint.
func NewStoreCap(capHint int) *Store {
	s := &Store{atoms: make(map[z.Var]z.Lit)}
	s.nodes = make([]node, 2, capHint)
	s.strash = make([]uint32, capHint)
	s.f = z.Var(1).Neg()
	s.t = s.f.Not()
	return s
}

// True returns the term for the constant ⊤.
func (s *Store) True() z.Lit { return s.t }

// False returns the term for the constant ⊥.
func (s *Store) False() z.Lit { return s.f }

// IsTrue reports whether m is the constant ⊤.
func (s *Store) IsTrue(m z.Lit) bool { return m == s.t }

// IsFalse reports whether m is the constant ⊥.
func (s *Store) IsFalse(m z.Lit) bool { return m == s.f }

// IsConst reports whether m is ⊤ or ⊥.
func (s *Store) IsConst(m z.Lit) bool { return m == s.t || m == s.f }

// Atom returns the atomic term representing proof variable v, creating
// and caching a fresh input term the first time v is seen.
func (s *Store) Atom(v z.Var) z.Lit {
	if m, ok := s.atoms[v]; ok {
		return m
	}
	m := s.newIn()
	s.atoms[v] = m
	return m
}

func (s *Store) newIn() z.Lit {
	id := len(s.nodes)
	s.grow1()
	return z.Var(id).Pos()
}

// Not returns the negation of m. Negation never allocates: it is the low
// bit of the literal.
func (s *Store) Not(m z.Lit) z.Lit { return m.Not() }

// And returns a term equivalent to "a and b", hash-consed against any
// previously built equivalent term.
func (s *Store) And(a, b z.Lit) z.Lit {
	if a == b {
		return a
	}
	if a == b.Not() {
		return s.f
	}
	if a > b {
		a, b = b, a
	}
	if a == s.f {
		return s.f
	}
	if a == s.t {
		return b
	}
	code := strashCode(a, b)
	bucket := code % uint32(cap(s.nodes))
	si := s.strash[bucket]
	for {
		n := &s.nodes[si]
		if n.a == a && n.b == b {
			return z.Var(si).Pos()
		}
		if n.n == 0 {
			break
		}
		si = n.n
	}
	j := uint32(len(s.nodes))
	s.grow1()
	n := &s.nodes[j]
	n.a, n.b = a, b
	bucket = code % uint32(cap(s.nodes))
	n.n = s.strash[bucket]
	s.strash[bucket] = j
	return z.Var(j).Pos()
}

// Or returns a term equivalent to "a or b" via De Morgan over And.
func (s *Store) Or(a, b z.Lit) z.Lit {
	return s.And(a.Not(), b.Not()).Not()
}

// Ands conjoins ms, returning ⊤ for an empty list.
func (s *Store) Ands(ms ...z.Lit) z.Lit {
	r := s.t
	for _, m := range ms {
		r = s.And(r, m)
	}
	return r
}

// Ors disjoins ms, returning ⊥ for an empty list.
func (s *Store) Ors(ms ...z.Lit) z.Lit {
	r := s.f
	for _, m := range ms {
		r = s.Or(r, m)
	}
	return r
}

// Implies returns a term equivalent to (a ⇒ b).
func (s *Store) Implies(a, b z.Lit) z.Lit {
	return s.Or(a.Not(), b)
}

// String renders m as a fully-parenthesized boolean expression over its
// atoms, for diagnostics and the demo CLI. It does not memoize across
// calls; callers printing many subterms of the same DAG should expect
// shared substructure to be printed once per occurrence.
func (s *Store) String(m z.Lit) string {
	if s.IsTrue(m) {
		return "T"
	}
	if s.IsFalse(m) {
		return "F"
	}
	for v, a := range s.atoms {
		if a == m {
			return varName(v)
		}
		if a == m.Not() {
			return "~" + varName(v)
		}
	}
	v := m.Var()
	n := &s.nodes[v]
	if n.a == 0 && n.b == 0 {
		return varName(v)
	}
	neg := !m.IsPos()
	a, b := n.a, n.b
	if neg {
		return "~(" + s.String(a) + " & " + s.String(b) + ")"
	}
	return "(" + s.String(a) + " & " + s.String(b) + ")"
}

func varName(v z.Var) string {
	return fmt.Sprintf("x%d", uint32(v))
}

func (s *Store) grow1() {
	if len(s.nodes) == cap(s.nodes) {
		s.grow()
	}
	s.nodes = s.nodes[:len(s.nodes)+1]
}

func (s *Store) grow() {
	newCap := cap(s.nodes) * 2
	nodes := make([]node, cap(s.nodes), newCap)
	strash := make([]uint32, newCap)
	copy(nodes, s.nodes)
	ucap := uint32(newCap)
	for i := range nodes {
		n := &nodes[i]
		if n.a == 0 || n.a == s.f || n.a == s.t {
			continue
		}
		code := strashCode(n.a, n.b)
		j := code % ucap
		n.n = strash[j]
		strash[j] = uint32(i)
	}
	s.nodes = nodes
	s.strash = strash
}

func strashCode(a, b z.Lit) uint32 {
	return uint32((a << 13) * b)
}
