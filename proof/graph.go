// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package proof models the resolution refutation DAG consumed by the
// interpolation engine. Nodes are addressed by a stable integer id in an
// arena, so antecedent links are plain ids rather than ownership edges
// and the DAG can be shared across multiple resolvents.
package proof

import "github.com/go-air/craig/z"

// Kind is the kind of a proof node.
type Kind uint8

const (
	// Orig is an original input clause of the refuted formula.
	Orig Kind = iota
	// Theory is a theory lemma, interpolated by a Theory Handler.
	Theory
	// Split is a binary clause introduced to split a theory atom into
	// two literals sharing the same color.
	Split
	// Assumption is an incremental-frame marker clause.
	Assumption
	// Resolvent is an inner node, the resolution of two antecedents.
	Resolvent
)

func (k Kind) String() string {
	switch k {
	case Orig:
		return "ORIG"
	case Theory:
		return "THEORY"
	case Split:
		return "SPLIT"
	case Assumption:
		return "ASSUMPTION"
	case Resolvent:
		return "RESOLVENT"
	default:
		return "UNKNOWN"
	}
}

// IsLeaf reports whether k is a leaf kind.
func (k Kind) IsLeaf() bool { return k != Resolvent }

// ID identifies a node in a Graph. Ids are dense, starting at 0, in the
// order nodes were added.
type ID uint32

// IDNull is not a valid node id.
const IDNull ID = ^ID(0)

// ClauseRef is an opaque reference a leaf node carries to its original
// clause, used by the Partition Manager to look up that clause's
// partition mask. The interpolation engine never interprets a ClauseRef
// itself; it is supplied by, and round-tripped back to, the external
// Partition Manager.
type ClauseRef uint32

// Node is one vertex of the proof DAG: a leaf clause or a resolvent.
type Node struct {
	ID     ID
	Kind   Kind
	Clause []z.Lit

	// Ref is populated for leaf nodes and consumed by the Partition
	// Manager's clause_mask lookup.
	Ref ClauseRef

	// Ante1, Ante2 and Pivot are populated for Resolvent nodes only.
	Ante1, Ante2 ID
	Pivot        z.Var
}

// Graph is a finite, acyclic, multi-parent resolution refutation DAG
// with a single root whose clause is empty.
type Graph struct {
	nodes []Node
	root  ID
	leaves []ID
}

// NewGraph creates an empty proof graph.
func NewGraph() *Graph {
	return &Graph{root: IDNull}
}

// AddLeaf appends a new leaf node and returns its id.
func (g *Graph) AddLeaf(kind Kind, clause []z.Lit, ref ClauseRef) ID {
	if !kind.IsLeaf() {
		panic("proof: AddLeaf called with non-leaf kind")
	}
	id := ID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Kind: kind, Clause: clause, Ref: ref})
	g.leaves = append(g.leaves, id)
	return id
}

// AddResolvent appends a new resolvent node resolving ante1 and ante2 on
// pivot, and returns its id. The caller supplies the resolved clause; the
// Graph does not itself compute resolution.
func (g *Graph) AddResolvent(ante1, ante2 ID, pivot z.Var, clause []z.Lit) ID {
	id := ID(len(g.nodes))
	g.nodes = append(g.nodes, Node{
		ID:     id,
		Kind:   Resolvent,
		Clause: clause,
		Ante1:  ante1,
		Ante2:  ante2,
		Pivot:  pivot,
	})
	return id
}

// SetRoot marks id as the refutation's root. The root's clause should be
// empty (it represents ⊥).
func (g *Graph) SetRoot(id ID) {
	g.root = id
}

// Root returns the id of the root node.
func (g *Graph) Root() ID {
	return g.root
}

// Node returns the node with the given id.
func (g *Graph) Node(id ID) *Node {
	return &g.nodes[id]
}

// Leaves returns the ids of all leaf nodes, in the order they were added.
func (g *Graph) Leaves() []ID {
	return g.leaves
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Variables returns the set of all variables occurring in any clause of
// the graph, including resolvent pivots.
func (g *Graph) Variables() map[z.Var]struct{} {
	vs := make(map[z.Var]struct{})
	for i := range g.nodes {
		n := &g.nodes[i]
		for _, l := range n.Clause {
			vs[l.Var()] = struct{}{}
		}
		if n.Kind == Resolvent {
			vs[n.Pivot] = struct{}{}
		}
	}
	return vs
}

// TopoOrder returns the node ids of the graph in topological order,
// parents (antecedents) before children, leaves first, so a single
// bottom-up pass can compute every node's partial interpolant from its
// antecedents' already-computed values.
//
// TopoOrder panics if the graph's root is unset.
func (g *Graph) TopoOrder() []ID {
	if g.root == IDNull {
		panic("proof: TopoOrder called on a graph with no root")
	}
	order := make([]ID, 0, len(g.nodes))
	visited := make([]bool, len(g.nodes))
	var visit func(id ID)
	visit = func(id ID) {
		if visited[id] {
			return
		}
		visited[id] = true
		n := &g.nodes[id]
		if n.Kind == Resolvent {
			visit(n.Ante1)
			visit(n.Ante2)
		}
		order = append(order, id)
	}
	visit(g.root)
	return order
}
