package circuitdag

import "slices"

// ParallelBlocks is a forward-only cursor over the parallel blocks of a
// Dag: successive layers of mutually independent, ready-to-run nodes,
// equivalent to as-soon-as-possible layering under the dependency order.
//
// The cursor is finite and not restartable; take a fresh one from
// [Dag.ParallelBlocks] to iterate again. Commuting operations are never
// part of a layer — they can be merged into any layer at the caller's
// discretion via [Dag.CommutingOperations]. The Dag must not be mutated
// while a cursor is live.
type ParallelBlocks struct {
	dag      *Dag
	current  []NodeIndex
	executed []NodeIndex
	started  bool
	done     bool
}

// ParallelBlocks returns a new layering cursor positioned before the first
// block.
func (d *Dag) ParallelBlocks() *ParallelBlocks {
	return &ParallelBlocks{dag: d}
}

// Next returns the next parallel block, sorted ascending. The boolean is
// false once the whole graph has been layered.
func (p *ParallelBlocks) Next() ([]NodeIndex, bool) {
	if p.done {
		return nil, false
	}

	if !p.started {
		p.started = true
		first := make([]NodeIndex, 0, len(p.dag.firstParallelBlock))
		for n := range p.dag.firstParallelBlock {
			first = append(first, n)
		}
		slices.Sort(first)
		p.current = first
	} else {
		p.executed = append(p.executed, p.current...)
		next := make([]NodeIndex, 0)
		for _, n := range p.current {
			for _, succ := range p.dag.graph.out[n] {
				if slices.Contains(next, succ) {
					continue
				}
				if len(p.dag.ExecutionBlocked(p.executed, succ)) == 0 {
					next = append(next, succ)
				}
			}
		}
		slices.Sort(next)
		p.current = next
	}

	if len(p.current) == 0 {
		p.done = true
		return nil, false
	}
	return slices.Clone(p.current), true
}
