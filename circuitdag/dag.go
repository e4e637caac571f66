package circuitdag

import (
	"maps"
	"slices"

	"github.com/HQSquantumsimulations/qoqo-sub001/operations"
)

// Dag is the dependency graph of a quantum program. Nodes own operation
// values; an edge (a, b) means a must be considered executed before b may be
// considered ready.
//
// Alongside the graph the Dag maintains four mutually consistent indexes:
// the per-qubit frontier maps, the per-classical-slot frontier maps, the
// first/last parallel block sets and the first/last touches-all-qubits
// markers. All of them are updated incrementally on every insertion.
type Dag struct {
	graph *opGraph

	// commutingOperations lists, in insertion order, the handles of
	// operations freely reorderable with respect to everything else:
	// register declarations and operations touching neither qubits nor
	// classical slots. Such nodes never receive edges.
	commutingOperations []NodeIndex

	firstParallelBlock map[NodeIndex]struct{}
	lastParallelBlock  map[NodeIndex]struct{}

	firstAll    NodeIndex
	hasFirstAll bool
	lastAll     NodeIndex
	hasLastAll  bool

	firstOperationInvolvingQubit map[int]NodeIndex
	lastOperationInvolvingQubit  map[int]NodeIndex

	firstOperationInvolvingClassical map[operations.ClassicalSlot]NodeIndex
	lastOperationInvolvingClassical  map[operations.ClassicalSlot]NodeIndex
}

// New returns an empty Dag.
func New() *Dag {
	return WithCapacity(0, 0)
}

// WithCapacity returns an empty Dag pre-sized for roughly nodeHint
// operations and edgeHint edges.
func WithCapacity(nodeHint, edgeHint int) *Dag {
	return &Dag{
		graph:                            newOpGraph(nodeHint, edgeHint),
		firstParallelBlock:               make(map[NodeIndex]struct{}),
		lastParallelBlock:                make(map[NodeIndex]struct{}),
		firstOperationInvolvingQubit:     make(map[int]NodeIndex),
		lastOperationInvolvingQubit:      make(map[int]NodeIndex),
		firstOperationInvolvingClassical: make(map[operations.ClassicalSlot]NodeIndex),
		lastOperationInvolvingClassical:  make(map[operations.ClassicalSlot]NodeIndex),
	}
}

// AddToBack appends op to the program and returns the new node's handle.
func (d *Dag) AddToBack(op operations.Operation) NodeIndex {
	op = op.Clone()
	node := d.graph.addNode(op)

	_, isDefinition := operations.AsDefinition(op)
	involvedQubits := op.InvolvedQubits()
	involvedClassical := op.InvolvedClassical()

	switch {
	case isDefinition:
		// Declarations commute regardless of their classical involvement.
		d.commutingOperations = append(d.commutingOperations, node)
	case involvedQubits.Kind == operations.QubitsNone && involvedClassical.Kind == operations.ClassicalNone:
		d.commutingOperations = append(d.commutingOperations, node)
	default:
		d.wireQubitsBack(node, involvedQubits)
	}

	d.trackClassicalBack(node, op, involvedClassical, isDefinition)
	return node
}

// AddToFront prepends op to the program and returns the new node's handle.
// It is the exact mirror of AddToBack: edges point from the new node to the
// previous frontier and the first-* indexes take the role of the last-*
// ones.
func (d *Dag) AddToFront(op operations.Operation) NodeIndex {
	op = op.Clone()
	node := d.graph.addNode(op)

	_, isDefinition := operations.AsDefinition(op)
	involvedQubits := op.InvolvedQubits()
	involvedClassical := op.InvolvedClassical()

	switch {
	case isDefinition:
		d.commutingOperations = append(d.commutingOperations, node)
	case involvedQubits.Kind == operations.QubitsNone && involvedClassical.Kind == operations.ClassicalNone:
		d.commutingOperations = append(d.commutingOperations, node)
	default:
		d.wireQubitsFront(node, involvedQubits)
	}

	d.trackClassicalFront(node, op, involvedClassical, isDefinition)
	return node
}

func (d *Dag) wireQubitsBack(node NodeIndex, involved operations.InvolvedQubits) {
	switch involved.Kind {
	case operations.QubitsSet:
		for _, qubit := range involved.Set {
			d.updateFromQubitBack(node, qubit)
		}
		if len(d.graph.in[node]) == 0 {
			d.firstParallelBlock[node] = struct{}{}
		}
	case operations.QubitsAll:
		d.updateFromAllBack(node)
	case operations.QubitsNone:
		// Nothing to wire.
	}
}

func (d *Dag) wireQubitsFront(node NodeIndex, involved operations.InvolvedQubits) {
	switch involved.Kind {
	case operations.QubitsSet:
		for _, qubit := range involved.Set {
			d.updateFromQubitFront(node, qubit)
		}
		if len(d.graph.out[node]) == 0 {
			d.lastParallelBlock[node] = struct{}{}
		}
	case operations.QubitsAll:
		d.updateFromAllFront(node)
	case operations.QubitsNone:
	}
}

// updateFromQubitBack wires node behind the current back frontier of one
// qubit.
func (d *Dag) updateFromQubitBack(node NodeIndex, qubit int) {
	if prev, ok := d.lastOperationInvolvingQubit[qubit]; ok {
		d.graph.addEdge(prev, node)
		delete(d.lastParallelBlock, prev)
	} else if d.hasLastAll {
		d.graph.addEdge(d.lastAll, node)
		delete(d.lastParallelBlock, d.lastAll)
	}
	d.lastOperationInvolvingQubit[qubit] = node
	d.lastParallelBlock[node] = struct{}{}

	if _, seen := d.firstOperationInvolvingQubit[qubit]; !seen {
		if d.hasLastAll {
			d.firstOperationInvolvingQubit[qubit] = d.lastAll
		} else {
			d.firstOperationInvolvingQubit[qubit] = node
		}
	}
}

// updateFromQubitFront wires node ahead of the current front frontier of
// one qubit.
func (d *Dag) updateFromQubitFront(node NodeIndex, qubit int) {
	if prev, ok := d.firstOperationInvolvingQubit[qubit]; ok {
		d.graph.addEdge(node, prev)
		delete(d.firstParallelBlock, prev)
	} else if d.hasFirstAll {
		d.graph.addEdge(node, d.firstAll)
		delete(d.firstParallelBlock, d.firstAll)
	}
	d.firstOperationInvolvingQubit[qubit] = node
	d.firstParallelBlock[node] = struct{}{}

	if _, seen := d.lastOperationInvolvingQubit[qubit]; !seen {
		if d.hasFirstAll {
			d.lastOperationInvolvingQubit[qubit] = d.firstAll
		} else {
			d.lastOperationInvolvingQubit[qubit] = node
		}
	}
}

// updateFromAllBack appends an operation that touches every qubit. The new
// node becomes the sole member of the back frontier and every tracked qubit
// is rerouted through it.
//
// Quirk: when no qubit has been tracked yet, both qubit frontier maps are
// seeded under qubit key 0 even if qubit 0 never appears in the circuit.
func (d *Dag) updateFromAllBack(node NodeIndex) {
	if !d.hasFirstAll {
		d.firstAll, d.hasFirstAll = node, true
	}
	d.lastAll, d.hasLastAll = node, true

	clear(d.lastParallelBlock)
	d.lastParallelBlock[node] = struct{}{}
	if len(d.firstParallelBlock) == 0 {
		d.firstParallelBlock[node] = struct{}{}
	}

	if len(d.firstOperationInvolvingQubit) == 0 && len(d.lastOperationInvolvingQubit) == 0 {
		d.firstOperationInvolvingQubit[0] = node
		d.lastOperationInvolvingQubit[0] = node
		return
	}
	for qubit, old := range d.lastOperationInvolvingQubit {
		d.graph.addEdge(old, node)
		d.lastOperationInvolvingQubit[qubit] = node
	}
}

// updateFromAllFront is the front mirror of updateFromAllBack, including
// the qubit key 0 seeding quirk.
func (d *Dag) updateFromAllFront(node NodeIndex) {
	if !d.hasLastAll {
		d.lastAll, d.hasLastAll = node, true
	}
	d.firstAll, d.hasFirstAll = node, true

	clear(d.firstParallelBlock)
	d.firstParallelBlock[node] = struct{}{}
	if len(d.lastParallelBlock) == 0 {
		d.lastParallelBlock[node] = struct{}{}
	}

	if len(d.firstOperationInvolvingQubit) == 0 && len(d.lastOperationInvolvingQubit) == 0 {
		d.firstOperationInvolvingQubit[0] = node
		d.lastOperationInvolvingQubit[0] = node
		return
	}
	for qubit, old := range d.firstOperationInvolvingQubit {
		d.graph.addEdge(node, old)
		d.firstOperationInvolvingQubit[qubit] = node
	}
}

// trackClassicalBack records which classical register slots node touches.
// This is bookkeeping only: it never creates graph edges, and it runs for
// every insertion independent of the qubit wiring.
func (d *Dag) trackClassicalBack(node NodeIndex, op operations.Operation, involved operations.InvolvedClassical, isDefinition bool) {
	if isDefinition {
		def, _ := operations.AsDefinition(op)
		for i := 0; i < def.RegisterLength(); i++ {
			slot := operations.ClassicalSlot{Register: def.RegisterName(), Index: i}
			d.firstOperationInvolvingClassical[slot] = node
			d.lastOperationInvolvingClassical[slot] = node
		}
		return
	}
	switch involved.Kind {
	case operations.ClassicalSet:
		for _, slot := range involved.Slots {
			if _, seen := d.firstOperationInvolvingClassical[slot]; !seen {
				d.firstOperationInvolvingClassical[slot] = node
			}
			d.lastOperationInvolvingClassical[slot] = node
		}
	case operations.ClassicalAll, operations.ClassicalAllQubits:
		for slot := range d.lastOperationInvolvingClassical {
			if slot.Register == involved.Register {
				d.lastOperationInvolvingClassical[slot] = node
			}
		}
	case operations.ClassicalNone:
	}
}

// trackClassicalFront mirrors trackClassicalBack: a slot seen for the first
// time from the front back-fills the last-involving map instead of the
// first-involving one.
func (d *Dag) trackClassicalFront(node NodeIndex, op operations.Operation, involved operations.InvolvedClassical, isDefinition bool) {
	if isDefinition {
		def, _ := operations.AsDefinition(op)
		for i := 0; i < def.RegisterLength(); i++ {
			slot := operations.ClassicalSlot{Register: def.RegisterName(), Index: i}
			d.firstOperationInvolvingClassical[slot] = node
			if _, seen := d.lastOperationInvolvingClassical[slot]; !seen {
				d.lastOperationInvolvingClassical[slot] = node
			}
		}
		return
	}
	switch involved.Kind {
	case operations.ClassicalSet:
		for _, slot := range involved.Slots {
			d.firstOperationInvolvingClassical[slot] = node
			if _, seen := d.lastOperationInvolvingClassical[slot]; !seen {
				d.lastOperationInvolvingClassical[slot] = node
			}
		}
	case operations.ClassicalAll, operations.ClassicalAllQubits:
		for slot := range d.firstOperationInvolvingClassical {
			if slot.Register == involved.Register {
				d.firstOperationInvolvingClassical[slot] = node
			}
		}
	case operations.ClassicalNone:
	}
}

// Get returns a copy of the operation stored at handle n, so callers cannot
// reach the stored value through slice fields. The boolean is false when n
// was never returned by an insertion on this Dag.
func (d *Dag) Get(n NodeIndex) (operations.Operation, bool) {
	if n < 0 || int(n) >= d.graph.nodeCount() {
		return nil, false
	}
	return d.graph.ops[n].Clone(), true
}

// NodeCount returns the number of nodes in the graph.
func (d *Dag) NodeCount() int { return d.graph.nodeCount() }

// EdgeCount returns the number of edges in the graph.
func (d *Dag) EdgeCount() int { return d.graph.edgeCount }

// CommutingOperations returns the handles of all freely reorderable
// operations in insertion order.
func (d *Dag) CommutingOperations() []NodeIndex {
	return slices.Clone(d.commutingOperations)
}

// FirstParallelBlock returns the set of nodes forming the dependency-free
// frontier nearest the start of the program.
func (d *Dag) FirstParallelBlock() map[NodeIndex]struct{} {
	return maps.Clone(d.firstParallelBlock)
}

// LastParallelBlock returns the set of nodes forming the dependency-free
// frontier nearest the end of the program.
func (d *Dag) LastParallelBlock() map[NodeIndex]struct{} {
	return maps.Clone(d.lastParallelBlock)
}

// FirstAll returns the earliest operation touching all qubits, if any.
func (d *Dag) FirstAll() (NodeIndex, bool) { return d.firstAll, d.hasFirstAll }

// LastAll returns the latest operation touching all qubits, if any.
func (d *Dag) LastAll() (NodeIndex, bool) { return d.lastAll, d.hasLastAll }

// FirstOperationInvolvingQubit maps each tracked qubit to the earliest node
// touching it.
func (d *Dag) FirstOperationInvolvingQubit() map[int]NodeIndex {
	return maps.Clone(d.firstOperationInvolvingQubit)
}

// LastOperationInvolvingQubit maps each tracked qubit to the latest node
// touching it.
func (d *Dag) LastOperationInvolvingQubit() map[int]NodeIndex {
	return maps.Clone(d.lastOperationInvolvingQubit)
}

// FirstOperationInvolvingClassical maps each tracked register slot to the
// earliest node touching it.
func (d *Dag) FirstOperationInvolvingClassical() map[operations.ClassicalSlot]NodeIndex {
	return maps.Clone(d.firstOperationInvolvingClassical)
}

// LastOperationInvolvingClassical maps each tracked register slot to the
// latest node touching it.
func (d *Dag) LastOperationInvolvingClassical() map[operations.ClassicalSlot]NodeIndex {
	return maps.Clone(d.lastOperationInvolvingClassical)
}

// MinimumSupportedVersion returns the lowest toolkit version able to
// interpret every operation in the Dag, starting from the catalogue
// baseline.
func (d *Dag) MinimumSupportedVersion() operations.Version {
	v := operations.BaseVersion
	for _, op := range d.graph.ops {
		v = v.Max(op.MinimumSupportedVersion())
	}
	return v
}
