package circuitdag

import (
	"errors"
	"fmt"

	"github.com/HQSquantumsimulations/qoqo-sub001/circuit"
)

// ErrCyclicGraph reports an internal consistency failure: the graph holds a
// cycle, which the insertion API can never produce.
var ErrCyclicGraph = errors.New("dependency graph contains a cycle")

// FromCircuit builds a Dag by inserting every operation of c at the back,
// in authoring order.
func FromCircuit(c *circuit.Circuit) *Dag {
	d := WithCapacity(c.Len(), c.Len())
	for i := 0; i < c.Len(); i++ {
		d.AddToBack(c.Get(i))
	}
	return d
}

// Circuit converts the Dag back into a flat ordered sequence using a
// topological sort. Any total order consistent with the edges is valid, so
// the result does not necessarily reproduce the original authoring order.
//
// A cyclic graph yields an empty circuit and an ErrCyclicGraph error.
func (d *Dag) Circuit() (*circuit.Circuit, error) {
	order, err := d.TopologicalOrder()
	if err != nil {
		return &circuit.Circuit{}, err
	}
	var c circuit.Circuit
	for _, n := range order {
		c.Add(d.graph.ops[n])
	}
	return &c, nil
}

// TopologicalOrder returns one valid total order of all node handles using
// Kahn's algorithm. The order is deterministic for a given Dag.
func (d *Dag) TopologicalOrder() ([]NodeIndex, error) {
	n := d.graph.nodeCount()
	inDegree := make([]int, n)
	for i := 0; i < n; i++ {
		inDegree[i] = len(d.graph.in[i])
	}

	queue := make([]NodeIndex, 0, n)
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			queue = append(queue, NodeIndex(i))
		}
	}

	order := make([]NodeIndex, 0, n)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)
		for _, succ := range d.graph.out[node] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(order) != n {
		return nil, fmt.Errorf("%w: %d of %d nodes unsortable", ErrCyclicGraph, n-len(order), n)
	}
	return order, nil
}
