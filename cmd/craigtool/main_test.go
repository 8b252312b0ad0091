// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmdProducesInterpolant(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s1.proof")
	require.NoError(t, os.WriteFile(path, []byte(s1Proof), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--system", "mcmillan", path})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "x2\n", out.String())
}

func TestRootCmdRejectsUnknownSystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s1.proof")
	require.NoError(t, os.WriteFile(path, []byte(s1Proof), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--system", "bogus", path})
	require.Error(t, cmd.Execute())
}

func TestRootCmdMissingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--system", "mcmillan", filepath.Join(t.TempDir(), "missing.proof")})
	require.Error(t, cmd.Execute())
}
