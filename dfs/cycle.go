// SPDX-License-Identifier: MIT
// Package: linenet/dfs
//
// cycle.go - directed cycle detection.
//
// Three-color DFS from every white node in definition order. Each back edge
// u→v (v gray) closes the cycle v … u v found on the current path. Cycles
// are rotated to start at their smallest id (Booth) and deduplicated, then
// sorted by signature. Direction matters: a→b→a is a cycle, and its
// reversal would be a different one.
//
// Complexity: O(V + E + C·L).

package dfs

import (
	"sort"
	"strings"

	"github.com/katalvlaran/linenet/core"
)

// DetectCycles reports whether def's edges loop back and lists the cycles
// found, each closed ([v0, …, v0]). A nil definition has no cycles.
func DetectCycles(def *core.Definition) (bool, [][]string) {
	if def == nil {
		return false, nil
	}

	ids := nodeIDs(def)
	d := &cycleFinder{
		adj:   successors(def),
		state: make(map[string]int, len(ids)),
		path:  make([]string, 0, len(ids)),
		seen:  make(map[string]struct{}),
	}
	for _, id := range ids {
		if d.state[id] == White {
			d.visit(id)
		}
	}
	if len(d.cycles) == 0 {
		return false, nil
	}
	sort.Slice(d.cycles, func(i, j int) bool {
		return joinSig(d.cycles[i]) < joinSig(d.cycles[j])
	})

	return true, d.cycles
}

type cycleFinder struct {
	adj    map[string][]string
	state  map[string]int
	path   []string
	seen   map[string]struct{}
	cycles [][]string
}

func (d *cycleFinder) visit(id string) {
	d.state[id] = Gray
	d.path = append(d.path, id)

	for _, next := range d.adj[id] {
		switch d.state[next] {
		case White:
			d.visit(next)
		case Gray:
			d.record(next)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = Black
}

// record stores the cycle from start to the top of the path.
func (d *cycleFinder) record(start string) {
	idx := indexOf(d.path, start)
	canon := minimalRotation(d.path[idx:])
	closed := append(canon, canon[0])

	sig := joinSig(closed)
	if _, dup := d.seen[sig]; dup {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, closed)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

func joinSig(c []string) string { return strings.Join(c, ",") }

// minimalRotation returns the lexicographically smallest rotation of s
// (Booth's algorithm, O(n)). The result is a fresh slice.
func minimalRotation(s []string) []string {
	n := len(s)
	doubled := make([]string, 2*n)
	copy(doubled, s)
	copy(doubled[n:], s)

	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	out := make([]string, n, n+1)
	copy(out, doubled[k:k+n])

	return out
}
