package circuitdag

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/HQSquantumsimulations/qoqo-sub001/operations"
)

// wireOperation is the serialized form of one operation. Kind selects which
// of the remaining fields are meaningful; the codec switches over the closed
// catalogue so an unknown kind is always an error.
type wireOperation struct {
	Kind         string  `msgpack:"kind"`
	Qubit        int     `msgpack:"qubit,omitempty"`
	Control      int     `msgpack:"control,omitempty"`
	Target       int     `msgpack:"target,omitempty"`
	Qubits       []int   `msgpack:"qubits,omitempty"`
	Theta        float64 `msgpack:"theta,omitempty"`
	Phase        float64 `msgpack:"phase,omitempty"`
	Duration     float64 `msgpack:"duration,omitempty"`
	Register     string  `msgpack:"register,omitempty"`
	Length       int     `msgpack:"length,omitempty"`
	IsOutput     bool    `msgpack:"is_output,omitempty"`
	Readout      string  `msgpack:"readout,omitempty"`
	ReadoutIndex int     `msgpack:"readout_index,omitempty"`
	Count        int     `msgpack:"count,omitempty"`
}

// wireClassicalEntry flattens one classical frontier map entry; struct keyed
// maps do not round-trip portably through msgpack.
type wireClassicalEntry struct {
	Register string    `msgpack:"register"`
	Index    int       `msgpack:"index"`
	Node     NodeIndex `msgpack:"node"`
}

// wireDag is the persisted form of a Dag: the graph, all four index maps,
// the commuting list and the minimum version triple needed to interpret
// every stored operation.
type wireDag struct {
	Nodes               []wireOperation      `msgpack:"nodes"`
	Edges               [][2]NodeIndex       `msgpack:"edges"`
	CommutingOperations []NodeIndex          `msgpack:"commuting_operations"`
	FirstParallelBlock  []NodeIndex          `msgpack:"first_parallel_block"`
	LastParallelBlock   []NodeIndex          `msgpack:"last_parallel_block"`
	FirstAll            *NodeIndex           `msgpack:"first_all"`
	LastAll             *NodeIndex           `msgpack:"last_all"`
	FirstQubit          map[int]NodeIndex    `msgpack:"first_operation_involving_qubit"`
	LastQubit           map[int]NodeIndex    `msgpack:"last_operation_involving_qubit"`
	FirstClassical      []wireClassicalEntry `msgpack:"first_operation_involving_classical"`
	LastClassical       []wireClassicalEntry `msgpack:"last_operation_involving_classical"`
	MinimumVersion      [3]uint32            `msgpack:"minimum_supported_version"`
}

// Marshal serializes the Dag, recording the maximum minimum-supported
// version over all stored operations.
func (d *Dag) Marshal() ([]byte, error) {
	w := wireDag{
		Nodes:               make([]wireOperation, d.graph.nodeCount()),
		CommutingOperations: d.CommutingOperations(),
		FirstQubit:          d.FirstOperationInvolvingQubit(),
		LastQubit:           d.LastOperationInvolvingQubit(),
	}
	for i, op := range d.graph.ops {
		enc, err := encodeOperation(op)
		if err != nil {
			return nil, err
		}
		w.Nodes[i] = enc
	}
	for from, succs := range d.graph.out {
		for _, to := range succs {
			w.Edges = append(w.Edges, [2]NodeIndex{NodeIndex(from), to})
		}
	}
	for n := range d.firstParallelBlock {
		w.FirstParallelBlock = append(w.FirstParallelBlock, n)
	}
	for n := range d.lastParallelBlock {
		w.LastParallelBlock = append(w.LastParallelBlock, n)
	}
	if d.hasFirstAll {
		first := d.firstAll
		w.FirstAll = &first
	}
	if d.hasLastAll {
		last := d.lastAll
		w.LastAll = &last
	}
	for slot, n := range d.firstOperationInvolvingClassical {
		w.FirstClassical = append(w.FirstClassical, wireClassicalEntry{slot.Register, slot.Index, n})
	}
	for slot, n := range d.lastOperationInvolvingClassical {
		w.LastClassical = append(w.LastClassical, wireClassicalEntry{slot.Register, slot.Index, n})
	}
	v := d.MinimumSupportedVersion()
	w.MinimumVersion = [3]uint32{v.Major, v.Minor, v.Patch}
	return msgpack.Marshal(w)
}

// Unmarshal reconstructs a Dag from its persisted form. The version triple
// stored in the payload is ignored: the minimum supported version is always
// recomputed from the decoded operations, so a tampered or stale tag cannot
// claim forward compatibility. The edge set is validated and the graph
// checked acyclic before the Dag is returned.
func Unmarshal(data []byte) (*Dag, error) {
	var w wireDag
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding dag: %w", err)
	}

	d := WithCapacity(len(w.Nodes), len(w.Edges))
	for _, enc := range w.Nodes {
		op, err := decodeOperation(enc)
		if err != nil {
			return nil, err
		}
		d.graph.addNode(op)
	}
	// Every handle in the payload must land inside the decoded node range;
	// a stray handle would otherwise surface as an index panic on first use.
	n := NodeIndex(d.graph.nodeCount())
	validate := func(what string, handle NodeIndex) error {
		if handle < 0 || handle >= n {
			return fmt.Errorf("%s references unknown node %d", what, handle)
		}
		return nil
	}

	for _, e := range w.Edges {
		if err := validate("edge", e[0]); err != nil {
			return nil, err
		}
		if err := validate("edge", e[1]); err != nil {
			return nil, err
		}
		d.graph.addEdge(e[0], e[1])
	}

	for _, node := range w.CommutingOperations {
		if err := validate("commuting list", node); err != nil {
			return nil, err
		}
	}
	d.commutingOperations = w.CommutingOperations
	for _, node := range w.FirstParallelBlock {
		if err := validate("first parallel block", node); err != nil {
			return nil, err
		}
		d.firstParallelBlock[node] = struct{}{}
	}
	for _, node := range w.LastParallelBlock {
		if err := validate("last parallel block", node); err != nil {
			return nil, err
		}
		d.lastParallelBlock[node] = struct{}{}
	}
	if w.FirstAll != nil {
		if err := validate("first all marker", *w.FirstAll); err != nil {
			return nil, err
		}
		d.firstAll, d.hasFirstAll = *w.FirstAll, true
	}
	if w.LastAll != nil {
		if err := validate("last all marker", *w.LastAll); err != nil {
			return nil, err
		}
		d.lastAll, d.hasLastAll = *w.LastAll, true
	}
	for q, node := range w.FirstQubit {
		if err := validate("qubit frontier", node); err != nil {
			return nil, err
		}
		d.firstOperationInvolvingQubit[q] = node
	}
	for q, node := range w.LastQubit {
		if err := validate("qubit frontier", node); err != nil {
			return nil, err
		}
		d.lastOperationInvolvingQubit[q] = node
	}
	for _, e := range w.FirstClassical {
		if err := validate("classical frontier", e.Node); err != nil {
			return nil, err
		}
		d.firstOperationInvolvingClassical[operations.ClassicalSlot{Register: e.Register, Index: e.Index}] = e.Node
	}
	for _, e := range w.LastClassical {
		if err := validate("classical frontier", e.Node); err != nil {
			return nil, err
		}
		d.lastOperationInvolvingClassical[operations.ClassicalSlot{Register: e.Register, Index: e.Index}] = e.Node
	}

	if _, err := d.TopologicalOrder(); err != nil {
		return nil, err
	}
	return d, nil
}

func encodeOperation(op operations.Operation) (wireOperation, error) {
	switch o := op.(type) {
	case operations.Hadamard:
		return wireOperation{Kind: o.Name(), Qubit: o.Qubit}, nil
	case operations.PauliX:
		return wireOperation{Kind: o.Name(), Qubit: o.Qubit}, nil
	case operations.PauliY:
		return wireOperation{Kind: o.Name(), Qubit: o.Qubit}, nil
	case operations.PauliZ:
		return wireOperation{Kind: o.Name(), Qubit: o.Qubit}, nil
	case operations.SGate:
		return wireOperation{Kind: o.Name(), Qubit: o.Qubit}, nil
	case operations.RotateX:
		return wireOperation{Kind: o.Name(), Qubit: o.Qubit, Theta: o.Theta}, nil
	case operations.RotateY:
		return wireOperation{Kind: o.Name(), Qubit: o.Qubit, Theta: o.Theta}, nil
	case operations.RotateZ:
		return wireOperation{Kind: o.Name(), Qubit: o.Qubit, Theta: o.Theta}, nil
	case operations.CNOT:
		return wireOperation{Kind: o.Name(), Control: o.Control, Target: o.Target}, nil
	case operations.ControlledPauliZ:
		return wireOperation{Kind: o.Name(), Control: o.Control, Target: o.Target}, nil
	case operations.SWAP:
		return wireOperation{Kind: o.Name(), Control: o.Control, Target: o.Target}, nil
	case operations.MeasureQubit:
		return wireOperation{Kind: o.Name(), Qubit: o.Qubit, Readout: o.Readout, ReadoutIndex: o.ReadoutIndex}, nil
	case operations.PragmaRepeatedMeasurement:
		return wireOperation{Kind: o.Name(), Readout: o.Readout, Count: o.Repetitions}, nil
	case operations.PragmaSetNumberOfMeasurements:
		return wireOperation{Kind: o.Name(), Readout: o.Readout, Count: o.Measurements}, nil
	case operations.PragmaGlobalPhase:
		return wireOperation{Kind: o.Name(), Phase: o.Phase}, nil
	case operations.PragmaStopParallelBlock:
		return wireOperation{Kind: o.Name(), Qubits: o.Qubits, Duration: o.Duration}, nil
	case operations.DefinitionBit:
		return wireOperation{Kind: o.Name(), Register: o.Register, Length: o.Length, IsOutput: o.IsOutput}, nil
	case operations.DefinitionFloat:
		return wireOperation{Kind: o.Name(), Register: o.Register, Length: o.Length, IsOutput: o.IsOutput}, nil
	case operations.DefinitionComplex:
		return wireOperation{Kind: o.Name(), Register: o.Register, Length: o.Length, IsOutput: o.IsOutput}, nil
	case operations.DefinitionUsize:
		return wireOperation{Kind: o.Name(), Register: o.Register, Length: o.Length, IsOutput: o.IsOutput}, nil
	default:
		return wireOperation{}, fmt.Errorf("cannot serialize operation kind %q", op.Name())
	}
}

func decodeOperation(w wireOperation) (operations.Operation, error) {
	switch w.Kind {
	case "Hadamard":
		return operations.NewHadamard(w.Qubit), nil
	case "PauliX":
		return operations.NewPauliX(w.Qubit), nil
	case "PauliY":
		return operations.NewPauliY(w.Qubit), nil
	case "PauliZ":
		return operations.NewPauliZ(w.Qubit), nil
	case "SGate":
		return operations.NewSGate(w.Qubit), nil
	case "RotateX":
		return operations.NewRotateX(w.Qubit, w.Theta), nil
	case "RotateY":
		return operations.NewRotateY(w.Qubit, w.Theta), nil
	case "RotateZ":
		return operations.NewRotateZ(w.Qubit, w.Theta), nil
	case "CNOT":
		return operations.NewCNOT(w.Control, w.Target), nil
	case "ControlledPauliZ":
		return operations.NewControlledPauliZ(w.Control, w.Target), nil
	case "SWAP":
		return operations.NewSWAP(w.Control, w.Target), nil
	case "MeasureQubit":
		return operations.NewMeasureQubit(w.Qubit, w.Readout, w.ReadoutIndex), nil
	case "PragmaRepeatedMeasurement":
		return operations.NewPragmaRepeatedMeasurement(w.Readout, w.Count), nil
	case "PragmaSetNumberOfMeasurements":
		return operations.NewPragmaSetNumberOfMeasurements(w.Readout, w.Count), nil
	case "PragmaGlobalPhase":
		return operations.NewPragmaGlobalPhase(w.Phase), nil
	case "PragmaStopParallelBlock":
		return operations.NewPragmaStopParallelBlock(w.Qubits, w.Duration), nil
	case "DefinitionBit":
		return operations.NewDefinitionBit(w.Register, w.Length, w.IsOutput), nil
	case "DefinitionFloat":
		return operations.NewDefinitionFloat(w.Register, w.Length, w.IsOutput), nil
	case "DefinitionComplex":
		return operations.NewDefinitionComplex(w.Register, w.Length, w.IsOutput), nil
	case "DefinitionUsize":
		return operations.NewDefinitionUsize(w.Register, w.Length, w.IsOutput), nil
	default:
		return nil, fmt.Errorf("unknown operation kind %q", w.Kind)
	}
}
