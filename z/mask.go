// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "math/bits"

// Mask is an opaque bitset over formula partitions, as produced by the
// Partition Manager for a clause or a variable. Up to 64 partitions are
// supported, which comfortably covers the incremental-frame counts seen
// in practice; a wider mask is a straightforward []uint64 generalization
// if ever needed.
type Mask uint64

// And, Or and Not are the bitwise mask operations the Partition Manager
// interface requires.
func (m Mask) And(n Mask) Mask { return m & n }
func (m Mask) Or(n Mask) Mask  { return m | n }
func (m Mask) Not() Mask       { return ^m }

// IsZero reports whether m has no partitions set.
func (m Mask) IsZero() bool { return m == 0 }

// PartitionMask returns the mask with only partition p (0-indexed) set.
func PartitionMask(p int) Mask {
	return Mask(1) << uint(p)
}

// Partitions returns the number of partitions set in m.
func (m Mask) Partitions() int {
	return bits.OnesCount64(uint64(m))
}

// ClassOf derives the static Class of a mask M under A-mask alpha:
// in_A = (M & alpha) != 0, in_B = (M & ~alpha) != 0.
func ClassOf(m, alpha Mask) Class {
	inA := !m.And(alpha).IsZero()
	inB := !m.And(alpha.Not()).IsZero()
	switch {
	case inA && inB:
		return ClassAB
	case inA:
		return ClassA
	case inB:
		return ClassB
	default:
		return ClassUndef
	}
}
