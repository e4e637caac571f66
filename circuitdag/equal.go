package circuitdag

import "sort"

// Equal reports whether a and b hold isomorphic graphs: a bijection between
// the node sets must exist under which operations are equal and edge
// presence matches. Handle numbering is not part of equality, edge payloads
// do not exist.
func Equal(a, b *Dag) bool {
	ga, gb := a.graph, b.graph
	n := ga.nodeCount()
	if n != gb.nodeCount() || ga.edgeCount != gb.edgeCount {
		return false
	}
	if n == 0 {
		return true
	}

	// Most constrained first: high-degree nodes have the fewest candidate
	// images, which prunes the search early.
	order := make([]NodeIndex, n)
	for i := range order {
		order[i] = NodeIndex(i)
	}
	sort.Slice(order, func(i, j int) bool {
		di := ga.outDegree(order[i]) + ga.inDegree(order[i])
		dj := ga.outDegree(order[j]) + ga.inDegree(order[j])
		return di > dj
	})

	mapping := make([]NodeIndex, n)
	for i := range mapping {
		mapping[i] = -1
	}
	used := make([]bool, n)

	var match func(pos int) bool
	match = func(pos int) bool {
		if pos == n {
			return true
		}
		u := order[pos]
		for v := NodeIndex(0); int(v) < n; v++ {
			if used[v] || !compatibleNodes(ga, gb, u, v) {
				continue
			}
			if !edgesConsistent(ga, gb, mapping, order[:pos], u, v) {
				continue
			}
			mapping[u] = v
			used[v] = true
			if match(pos + 1) {
				return true
			}
			mapping[u] = -1
			used[v] = false
		}
		return false
	}
	return match(0)
}

// compatibleNodes checks the cheap per-node invariants of any isomorphism:
// equal operations and equal degrees.
func compatibleNodes(ga, gb *opGraph, u, v NodeIndex) bool {
	return ga.outDegree(u) == gb.outDegree(v) &&
		ga.inDegree(u) == gb.inDegree(v) &&
		ga.ops[u].Equal(gb.ops[v])
}

// edgesConsistent verifies that mapping u to v preserves edge presence, in
// both directions, against every node already mapped.
func edgesConsistent(ga, gb *opGraph, mapping []NodeIndex, mapped []NodeIndex, u, v NodeIndex) bool {
	for _, w := range mapped {
		mw := mapping[w]
		if ga.hasEdge(u, w) != gb.hasEdge(v, mw) {
			return false
		}
		if ga.hasEdge(w, u) != gb.hasEdge(mw, v) {
			return false
		}
	}
	return true
}
