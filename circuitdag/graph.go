package circuitdag

import (
	"github.com/HQSquantumsimulations/qoqo-sub001/operations"
)

// NodeIndex is the stable handle of one graph node. Handles are dense,
// assigned in insertion order starting at zero, and never reused: nodes are
// only ever added, so a handle stays valid for the lifetime of its Dag.
type NodeIndex int

// opGraph is an arena-backed directed graph whose nodes own operation
// values. Adjacency is stored as one outgoing and one incoming index list
// per node; edges carry no payload, their presence alone means "strictly
// precedes".
type opGraph struct {
	ops       []operations.Operation
	out       [][]NodeIndex
	in        [][]NodeIndex
	edgeCount int
}

func newOpGraph(nodeHint, edgeHint int) *opGraph {
	if nodeHint < 0 {
		nodeHint = 0
	}
	return &opGraph{
		ops: make([]operations.Operation, 0, nodeHint),
		out: make([][]NodeIndex, 0, nodeHint),
		in:  make([][]NodeIndex, 0, nodeHint),
	}
}

func (g *opGraph) nodeCount() int { return len(g.ops) }

// addNode stores op in the arena and returns its handle.
func (g *opGraph) addNode(op operations.Operation) NodeIndex {
	g.ops = append(g.ops, op)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return NodeIndex(len(g.ops) - 1)
}

// addEdge inserts the edge from -> to unless it is already present.
func (g *opGraph) addEdge(from, to NodeIndex) {
	for _, n := range g.out[from] {
		if n == to {
			return
		}
	}
	g.out[from] = append(g.out[from], to)
	g.in[to] = append(g.in[to], from)
	g.edgeCount++
}

func (g *opGraph) hasEdge(from, to NodeIndex) bool {
	for _, n := range g.out[from] {
		if n == to {
			return true
		}
	}
	return false
}

// degree helpers used by the isomorphism matcher.
func (g *opGraph) outDegree(n NodeIndex) int { return len(g.out[n]) }
func (g *opGraph) inDegree(n NodeIndex) int  { return len(g.in[n]) }
