// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"strings"
	"testing"

	"github.com/go-air/craig/proof"
	"github.com/go-air/craig/z"
	"github.com/stretchr/testify/require"
)

const s1Proof = `
# McMillan, purely propositional.
var 1 A
var 2 AB
alpha 1

leaf 1 orig 1 1 2 0
leaf 2 orig 1 -1 0
resolvent 3 1 2 1 2 0
leaf 4 orig 2 -2 0
resolvent 5 3 4 2 0
root 5
`

func TestReadProofS1(t *testing.T) {
	pp, err := readProof(strings.NewReader(s1Proof))
	require.NoError(t, err)
	require.Equal(t, z.Mask(1), pp.alpha)
	require.Equal(t, z.PartitionMask(0), pp.pm.VariableMask(z.Var(1)))
	require.Equal(t, z.PartitionMask(0).Or(z.PartitionMask(1)), pp.pm.VariableMask(z.Var(2)))
	require.Equal(t, 5, pp.graph.Len())

	root := pp.graph.Node(pp.graph.Root())
	require.Equal(t, proof.Resolvent, root.Kind)
	require.Equal(t, z.Var(2), root.Pivot)
}

func TestReadProofMissingRoot(t *testing.T) {
	_, err := readProof(strings.NewReader("var 1 A\nleaf 1 orig 1 1 0\n"))
	require.Error(t, err)
}

func TestReadProofUnknownDirective(t *testing.T) {
	_, err := readProof(strings.NewReader("bogus 1 2 3\n"))
	require.Error(t, err)
}

func TestReadProofRootRefersToUndeclaredNode(t *testing.T) {
	_, err := readProof(strings.NewReader("leaf 1 orig 1 1 0\nroot 99\n"))
	require.Error(t, err)
}

func TestReadProofUnknownLeafKind(t *testing.T) {
	_, err := readProof(strings.NewReader("leaf 1 bogus 1 1 0\nroot 1\n"))
	require.Error(t, err)
}
