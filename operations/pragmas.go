package operations

import "slices"

// PragmaRepeatedMeasurement instructs the backend to run the whole circuit
// Repetitions times, measuring every qubit into the named readout register
// on each run. It therefore involves all qubits.
type PragmaRepeatedMeasurement struct {
	baseVersion
	Readout     string
	Repetitions int
}

// NewPragmaRepeatedMeasurement returns a repeated measurement of every qubit
// into the register named readout.
func NewPragmaRepeatedMeasurement(readout string, repetitions int) PragmaRepeatedMeasurement {
	return PragmaRepeatedMeasurement{Readout: readout, Repetitions: repetitions}
}

func (p PragmaRepeatedMeasurement) Name() string                   { return "PragmaRepeatedMeasurement" }
func (p PragmaRepeatedMeasurement) InvolvedQubits() InvolvedQubits { return AllQubits() }

func (p PragmaRepeatedMeasurement) InvolvedClassical() InvolvedClassical {
	return AllQubitsClassical(p.Readout)
}

func (p PragmaRepeatedMeasurement) Equal(other Operation) bool { return sameOp(p, other) }
func (p PragmaRepeatedMeasurement) Clone() Operation           { return p }

// PragmaSetNumberOfMeasurements overrides the number of measurement runs
// recorded into the named readout register. It touches no qubits but
// involves the whole register, so it is ordered by the classical
// bookkeeping only.
type PragmaSetNumberOfMeasurements struct {
	baseVersion
	Readout      string
	Measurements int
}

// NewPragmaSetNumberOfMeasurements returns a pragma setting the number of
// measurements stored in the register named readout.
func NewPragmaSetNumberOfMeasurements(readout string, measurements int) PragmaSetNumberOfMeasurements {
	return PragmaSetNumberOfMeasurements{Readout: readout, Measurements: measurements}
}

func (p PragmaSetNumberOfMeasurements) Name() string {
	return "PragmaSetNumberOfMeasurements"
}
func (p PragmaSetNumberOfMeasurements) InvolvedQubits() InvolvedQubits { return NoQubits() }

func (p PragmaSetNumberOfMeasurements) InvolvedClassical() InvolvedClassical {
	return AllClassical(p.Readout)
}

func (p PragmaSetNumberOfMeasurements) Equal(other Operation) bool { return sameOp(p, other) }
func (p PragmaSetNumberOfMeasurements) Clone() Operation           { return p }

// PragmaGlobalPhase records a global phase picked up by the circuit. It
// touches neither qubits nor classical slots and commutes with everything.
type PragmaGlobalPhase struct {
	noClassical
	baseVersion
	Phase float64
}

// NewPragmaGlobalPhase returns a global phase annotation.
func NewPragmaGlobalPhase(phase float64) PragmaGlobalPhase {
	return PragmaGlobalPhase{Phase: phase}
}

func (p PragmaGlobalPhase) Name() string                   { return "PragmaGlobalPhase" }
func (p PragmaGlobalPhase) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (p PragmaGlobalPhase) Equal(other Operation) bool     { return sameOp(p, other) }
func (p PragmaGlobalPhase) Clone() Operation               { return p }

// PragmaStopParallelBlock forces a scheduling barrier on the listed qubits
// for the given wall time in seconds.
type PragmaStopParallelBlock struct {
	noClassical
	baseVersion
	Qubits   []int
	Duration float64
}

// NewPragmaStopParallelBlock returns a barrier pragma over the given qubits.
func NewPragmaStopParallelBlock(qubits []int, duration float64) PragmaStopParallelBlock {
	return PragmaStopParallelBlock{Qubits: slices.Clone(qubits), Duration: duration}
}

func (p PragmaStopParallelBlock) Name() string                   { return "PragmaStopParallelBlock" }
func (p PragmaStopParallelBlock) InvolvedQubits() InvolvedQubits { return QubitSet(p.Qubits...) }

func (p PragmaStopParallelBlock) Equal(other Operation) bool {
	o, ok := other.(PragmaStopParallelBlock)
	return ok && o.Duration == p.Duration && slices.Equal(o.Qubits, p.Qubits)
}

func (p PragmaStopParallelBlock) Clone() Operation {
	return PragmaStopParallelBlock{Qubits: slices.Clone(p.Qubits), Duration: p.Duration}
}
