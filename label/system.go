// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package label implements the labeling strategies as a tagged sum
// rather than subclassing, plus the proof-sensitive (PS) statistics
// pass that PS/PSW/PSS consume.
package label

import (
	"fmt"

	"github.com/go-air/craig/partition"
	"github.com/go-air/craig/proof"
	"github.com/go-air/craig/z"
)

// System selects one of the six recognized labeling systems. The zero
// value, SystemUndef, is never a valid selection and causes the driver
// to fail with a configuration error.
type System uint8

const (
	SystemUndef System = iota
	Pudlak
	McMillan
	McMillanPrime
	PS
	PSW
	PSS
)

func (s System) String() string {
	switch s {
	case Pudlak:
		return "Pudlak"
	case McMillan:
		return "McMillan"
	case McMillanPrime:
		return "McMillan'"
	case PS:
		return "PS"
	case PSW:
		return "PSW"
	case PSS:
		return "PSS"
	default:
		return "undefined"
	}
}

// IsProofSensitive reports whether s needs a PS label map.
func (s System) IsProofSensitive() bool {
	return s == PS || s == PSW || s == PSS
}

// ParseSystem parses the recognized system names, for use by
// configuration loaders (never by the core engine, which always takes a
// System value directly).
func ParseSystem(name string) (System, error) {
	switch name {
	case "Pudlak", "pudlak":
		return Pudlak, nil
	case "McMillan", "mcmillan":
		return McMillan, nil
	case "McMillan'", "mcmillan'", "McMillanPrime", "mcmillanprime":
		return McMillanPrime, nil
	case "PS", "ps":
		return PS, nil
	case "PSW", "psw":
		return PSW, nil
	case "PSS", "pss":
		return PSS, nil
	default:
		return SystemUndef, fmt.Errorf("label: unrecognized labeling system %q", name)
	}
}

// Labels is the PS label map: for every AB-class variable it records a
// static color, A or B, derived once per run from original-clause
// occurrence counts.
type Labels map[z.Var]z.Color

// ComputeLabels computes the PS label map for every AB-class variable
// reachable from g under A-mask alpha. Ties (occ_A == occ_B, including
// the 0-0 case) go to B, via the strict '>' comparison preserved from
// the original occurrence-counting source.
func ComputeLabels(g *proof.Graph, pm partition.Manager, alpha z.Mask) Labels {
	occA := make(map[z.Var]int)
	occB := make(map[z.Var]int)
	abVars := make(map[z.Var]struct{})

	for v := range g.Variables() {
		if partition.VarClass(pm, v, alpha) == z.ClassAB {
			abVars[v] = struct{}{}
		}
	}

	for _, id := range g.Leaves() {
		n := g.Node(id)
		if n.Kind != proof.Orig {
			continue
		}
		class := ResolveLeafClass(pm, n.Ref, alpha)
		for _, l := range n.Clause {
			v := l.Var()
			if _, ok := abVars[v]; !ok {
				continue
			}
			switch class {
			case z.ClassA:
				occA[v]++
			case z.ClassB:
				occB[v]++
			}
		}
	}

	labels := make(Labels, len(abVars))
	for v := range abVars {
		if occA[v] > occB[v] {
			labels[v] = z.ColorA
		} else {
			labels[v] = z.ColorB
		}
	}
	return labels
}

// ResolveLeafClass computes the Class of a leaf clause, applying an
// arbitrary AB→A relabeling: an ORIG clause is always attributed to
// exactly one side, A or B, never AB.
func ResolveLeafClass(pm partition.Manager, ref proof.ClauseRef, alpha z.Mask) z.Class {
	c := partition.ClauseClass(pm, ref, alpha)
	if c == z.ClassAB {
		return z.ClassA
	}
	return c
}

// AssignLeafColor assigns a variable's per-node color at a leaf. class
// is the variable's static Class; ps is only consulted (and only
// meaningful) for AB-class variables under a proof-sensitive system,
// and should be z.ColorUndef otherwise.
func AssignLeafColor(sys System, class z.Class, ps z.Color) z.Color {
	switch class {
	case z.ClassA:
		return z.ColorA
	case z.ClassB:
		return z.ColorB
	}
	// class == z.ClassAB
	switch sys {
	case Pudlak:
		return z.ColorAB
	case McMillan:
		return z.ColorB
	case McMillanPrime:
		return z.ColorA
	case PS:
		if ps == z.ColorA {
			return z.ColorA
		}
		return z.ColorB
	case PSW:
		if ps == z.ColorA {
			return z.ColorA
		}
		return z.ColorAB
	case PSS:
		if ps == z.ColorA {
			return z.ColorAB
		}
		return z.ColorB
	default:
		return z.ColorUndef
	}
}
