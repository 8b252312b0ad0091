// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassString(t *testing.T) {
	require.Equal(t, "A", ClassA.String())
	require.Equal(t, "B", ClassB.String())
	require.Equal(t, "AB", ClassAB.String())
	require.Equal(t, "UNDEF", ClassUndef.String())
}

func TestColorString(t *testing.T) {
	require.Equal(t, "A", ColorA.String())
	require.Equal(t, "B", ColorB.String())
	require.Equal(t, "AB", ColorAB.String())
	require.Equal(t, "S", ColorS.String())
	require.Equal(t, "UNDEF", ColorUndef.String())
}
