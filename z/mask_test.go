// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassOf(t *testing.T) {
	alpha := PartitionMask(0)
	bOnly := PartitionMask(1)
	require.Equal(t, ClassA, ClassOf(alpha, alpha))
	require.Equal(t, ClassB, ClassOf(bOnly, alpha))
	require.Equal(t, ClassAB, ClassOf(alpha.Or(bOnly), alpha))
	require.Equal(t, ClassUndef, ClassOf(Mask(0), alpha))
}

func TestMaskOps(t *testing.T) {
	a := PartitionMask(0)
	b := PartitionMask(1)
	require.True(t, a.And(b).IsZero())
	require.False(t, a.Or(b).IsZero())
	require.Equal(t, 2, a.Or(b).Partitions())
	require.Equal(t, a, a.Not().Not())
}

func TestFromClass(t *testing.T) {
	require.Equal(t, ColorA, FromClass(ClassA))
	require.Equal(t, ColorB, FromClass(ClassB))
	require.Equal(t, ColorUndef, FromClass(ClassAB))
}
