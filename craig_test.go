// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package craig_test

import (
	"testing"

	"github.com/go-air/craig"
	"github.com/go-air/craig/assume"
	"github.com/go-air/craig/label"
	"github.com/go-air/craig/proof"
	"github.com/go-air/craig/term"
	"github.com/go-air/craig/z"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	varMask    map[z.Var]z.Mask
	clauseMask map[proof.ClauseRef]z.Mask
}

func (f *fakeManager) VariableMask(v z.Var) z.Mask         { return f.varMask[v] }
func (f *fakeManager) ClauseMask(r proof.ClauseRef) z.Mask { return f.clauseMask[r] }

func TestProduceInterpolantS1(t *testing.T) {
	p, q := z.Var(1), z.Var(2)
	alpha := z.PartitionMask(0)
	bMask := z.PartitionMask(1)

	pm := &fakeManager{
		varMask:    map[z.Var]z.Mask{p: alpha, q: alpha.Or(bMask)},
		clauseMask: map[proof.ClauseRef]z.Mask{1: alpha, 2: alpha, 3: bMask},
	}

	g := proof.NewGraph()
	leaf1 := g.AddLeaf(proof.Orig, []z.Lit{p.Pos(), q.Pos()}, 1)
	leaf2 := g.AddLeaf(proof.Orig, []z.Lit{p.Neg()}, 2)
	resP := g.AddResolvent(leaf1, leaf2, p, []z.Lit{q.Pos()})
	leaf3 := g.AddLeaf(proof.Orig, []z.Lit{q.Neg()}, 3)
	root := g.AddResolvent(resP, leaf3, q, nil)
	g.SetRoot(root)

	store := term.NewStore()
	ip := craig.New(craig.Config{System: label.McMillan}, store, nil)
	result, err := ip.ProduceInterpolant(g, pm, alpha, nil)
	require.NoError(t, err)
	require.Equal(t, store.Atom(q), result)
}

func TestProduceInterpolantConfigError(t *testing.T) {
	g := proof.NewGraph()
	g.AddLeaf(proof.Orig, nil, 0)
	g.SetRoot(0)

	store := term.NewStore()
	ip := craig.New(craig.Config{}, store, assume.None{})
	_, err := ip.ProduceInterpolant(g, &fakeManager{}, z.PartitionMask(0), nil)
	require.Error(t, err)
}

func TestStoreAccessor(t *testing.T) {
	store := term.NewStore()
	ip := craig.New(craig.Config{System: label.Pudlak}, store, nil)
	require.Same(t, store, ip.Store())
}
