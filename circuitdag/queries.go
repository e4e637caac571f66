package circuitdag

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotInFrontLayer is returned by NewFrontLayer when the node to retire is
// not part of the supplied front layer. The Dag is left untouched.
var ErrNotInFrontLayer = errors.New("node not in current front layer")

// ExecutionBlocked returns every transitive predecessor of target that is
// not listed in executed, sorted ascending. An empty result is a hard
// guarantee that target can run now, regardless of whether executed is a
// consistent execution prefix.
//
// The traversal walks the whole ancestor cone (it does not stop at executed
// nodes), so the cost is proportional to the number of ancestors.
func (d *Dag) ExecutionBlocked(executed []NodeIndex, target NodeIndex) []NodeIndex {
	done := make(map[NodeIndex]struct{}, len(executed))
	for _, n := range executed {
		done[n] = struct{}{}
	}

	visited := map[NodeIndex]struct{}{target: {}}
	stack := slices.Clone(d.graph.in[target])
	blocking := make([]NodeIndex, 0)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[n]; ok {
			continue
		}
		visited[n] = struct{}{}
		if _, ok := done[n]; !ok {
			blocking = append(blocking, n)
		}
		stack = append(stack, d.graph.in[n]...)
	}
	slices.Sort(blocking)
	return blocking
}

// BlockingPredecessors returns the direct predecessors of target not listed
// in executed, sorted ascending. It is cheaper than ExecutionBlocked but
// only sound when executed is a consistent prefix of some valid execution
// order: with an inconsistent executed set an empty result does not prove
// target is runnable.
func (d *Dag) BlockingPredecessors(executed []NodeIndex, target NodeIndex) []NodeIndex {
	blocking := make([]NodeIndex, 0, len(d.graph.in[target]))
	for _, n := range d.graph.in[target] {
		if !slices.Contains(executed, n) {
			blocking = append(blocking, n)
		}
	}
	slices.Sort(blocking)
	return blocking
}

// NewFrontLayer simulates retiring target out of front: every direct
// successor of target that is no longer blocked joins the returned layer.
// It fails without touching anything when target is not part of front.
//
// Quirk: target leaves the returned
// layer only when at least one successor was added or target has no
// successors at all. A retired node whose successors all remain blocked
// stays in the layer.
func (d *Dag) NewFrontLayer(executed, front []NodeIndex, target NodeIndex) ([]NodeIndex, error) {
	if !slices.Contains(front, target) {
		return nil, fmt.Errorf("%w: node %d", ErrNotInFrontLayer, target)
	}

	layer := slices.Clone(front)
	executedPlus := append(slices.Clone(executed), target)

	added := false
	for _, succ := range d.graph.out[target] {
		if slices.Contains(layer, succ) {
			continue
		}
		if len(d.ExecutionBlocked(executedPlus, succ)) == 0 {
			layer = append(layer, succ)
			added = true
		}
	}

	if added || len(d.graph.out[target]) == 0 {
		layer = slices.DeleteFunc(layer, func(n NodeIndex) bool { return n == target })
	}
	return layer, nil
}

// Successors returns the direct successors of node, without transitive
// closure.
func (d *Dag) Successors(node NodeIndex) []NodeIndex {
	return slices.Clone(d.graph.out[node])
}

// Predecessors returns the direct predecessors of node.
func (d *Dag) Predecessors(node NodeIndex) []NodeIndex {
	return slices.Clone(d.graph.in[node])
}
