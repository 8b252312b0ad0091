// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-air/craig/proof"
	"github.com/go-air/craig/z"
)

// mapManager is the demo partition.Manager: a proof file declares the
// partition mask of every variable and clause directly, rather than
// deriving it from an SMT-LIB :named annotation or similar.
type mapManager struct {
	vars    map[z.Var]z.Mask
	clauses map[proof.ClauseRef]z.Mask
}

func (m *mapManager) VariableMask(v z.Var) z.Mask         { return m.vars[v] }
func (m *mapManager) ClauseMask(r proof.ClauseRef) z.Mask { return m.clauses[r] }

var kindByName = map[string]proof.Kind{
	"orig":   proof.Orig,
	"theory": proof.Theory,
	"split":  proof.Split,
	"assume": proof.Assumption,
}

// parsedProof is the result of reading a craigtool proof file: a proof
// graph plus its A/B partition manager and A-mask.
type parsedProof struct {
	graph *proof.Graph
	pm    *mapManager
	alpha z.Mask
}

// readProof parses the line-based proof format:
//
//	var <varid> A|B|AB
//	leaf <id> orig|theory|split|assume <clause-mask> <lit...> 0
//	resolvent <id> <ante1> <ante2> <pivot-var> <lit...> 0
//	alpha <mask>
//	root <id>
//
// Literals use DIMACS sign convention. Blank lines and lines starting
// with '#' are ignored. This is a harness format, not a replacement for
// SMT-LIB proof traces (still out of scope).
func readProof(r io.Reader) (*parsedProof, error) {
	pp := &parsedProof{
		graph: proof.NewGraph(),
		pm:    &mapManager{vars: map[z.Var]z.Mask{}, clauses: map[proof.ClauseRef]z.Mask{}},
	}
	nodeIDs := map[int]proof.ID{}
	var rootLine int
	haveRoot := false

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "var":
			v, mask, err := parseVarLine(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			pp.pm.vars[v] = mask
		case "alpha":
			mask, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad alpha mask: %w", lineNo, err)
			}
			pp.alpha = z.Mask(mask)
		case "leaf":
			id, err := parseLeafLine(pp, fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			num, _ := strconv.Atoi(fields[1])
			nodeIDs[num] = id
		case "resolvent":
			id, err := parseResolventLine(pp, fields, nodeIDs)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			num, _ := strconv.Atoi(fields[1])
			nodeIDs[num] = id
		case "root":
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad root id: %w", lineNo, err)
			}
			rootLine = n
			haveRoot = true
		default:
			return nil, fmt.Errorf("line %d: unrecognized directive %q", lineNo, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !haveRoot {
		return nil, fmt.Errorf("proof file has no root directive")
	}
	id, ok := nodeIDs[rootLine]
	if !ok {
		return nil, fmt.Errorf("root refers to undeclared node %d", rootLine)
	}
	pp.graph.SetRoot(id)
	return pp, nil
}

func parseVarLine(fields []string) (z.Var, z.Mask, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("want 'var <id> A|B|AB'")
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad var id: %w", err)
	}
	var mask z.Mask
	switch fields[2] {
	case "A":
		mask = z.PartitionMask(0)
	case "B":
		mask = z.PartitionMask(1)
	case "AB":
		mask = z.PartitionMask(0).Or(z.PartitionMask(1))
	default:
		return 0, 0, fmt.Errorf("unknown partition class %q", fields[2])
	}
	return z.Var(n), mask, nil
}

func parseLeafLine(pp *parsedProof, fields []string) (proof.ID, error) {
	if len(fields) < 4 {
		return proof.IDNull, fmt.Errorf("want 'leaf <id> <kind> <clause-mask> <lit...> 0'")
	}
	kind, ok := kindByName[fields[2]]
	if !ok {
		return proof.IDNull, fmt.Errorf("unknown leaf kind %q", fields[2])
	}
	maskVal, err := strconv.ParseUint(fields[3], 10, 64)
	if err != nil {
		return proof.IDNull, fmt.Errorf("bad clause mask: %w", err)
	}
	lits, err := parseLits(fields[4:])
	if err != nil {
		return proof.IDNull, err
	}
	n, _ := strconv.Atoi(fields[1])
	ref := proof.ClauseRef(n)
	pp.pm.clauses[ref] = z.Mask(maskVal)
	return pp.graph.AddLeaf(kind, lits, ref), nil
}

func parseResolventLine(pp *parsedProof, fields []string, nodeIDs map[int]proof.ID) (proof.ID, error) {
	if len(fields) < 5 {
		return proof.IDNull, fmt.Errorf("want 'resolvent <id> <ante1> <ante2> <pivot-var> <lit...> 0'")
	}
	a1, err := strconv.Atoi(fields[2])
	if err != nil {
		return proof.IDNull, fmt.Errorf("bad ante1: %w", err)
	}
	a2, err := strconv.Atoi(fields[3])
	if err != nil {
		return proof.IDNull, fmt.Errorf("bad ante2: %w", err)
	}
	pivot, err := strconv.Atoi(fields[4])
	if err != nil {
		return proof.IDNull, fmt.Errorf("bad pivot var: %w", err)
	}
	ante1, ok := nodeIDs[a1]
	if !ok {
		return proof.IDNull, fmt.Errorf("antecedent 1 refers to undeclared node %d", a1)
	}
	ante2, ok := nodeIDs[a2]
	if !ok {
		return proof.IDNull, fmt.Errorf("antecedent 2 refers to undeclared node %d", a2)
	}
	lits, err := parseLits(fields[5:])
	if err != nil {
		return proof.IDNull, err
	}
	return pp.graph.AddResolvent(ante1, ante2, z.Var(pivot), lits), nil
}

func parseLits(fields []string) ([]z.Lit, error) {
	var lits []z.Lit
	for _, f := range fields {
		d, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad literal %q: %w", f, err)
		}
		if d == 0 {
			break
		}
		lits = append(lits, z.Dimacs2Lit(d))
	}
	return lits, nil
}
