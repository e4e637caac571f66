package operations

// Hadamard is the single qubit Hadamard gate.
type Hadamard struct {
	noClassical
	baseVersion
	Qubit int
}

// NewHadamard returns a Hadamard gate acting on qubit.
func NewHadamard(qubit int) Hadamard { return Hadamard{Qubit: qubit} }

func (g Hadamard) Name() string                   { return "Hadamard" }
func (g Hadamard) InvolvedQubits() InvolvedQubits { return QubitSet(g.Qubit) }
func (g Hadamard) Equal(other Operation) bool     { return sameOp(g, other) }
func (g Hadamard) Clone() Operation               { return g }

// PauliX is the single qubit Pauli X gate.
type PauliX struct {
	noClassical
	baseVersion
	Qubit int
}

// NewPauliX returns a Pauli X gate acting on qubit.
func NewPauliX(qubit int) PauliX { return PauliX{Qubit: qubit} }

func (g PauliX) Name() string                   { return "PauliX" }
func (g PauliX) InvolvedQubits() InvolvedQubits { return QubitSet(g.Qubit) }
func (g PauliX) Equal(other Operation) bool     { return sameOp(g, other) }
func (g PauliX) Clone() Operation               { return g }

// PauliY is the single qubit Pauli Y gate.
type PauliY struct {
	noClassical
	baseVersion
	Qubit int
}

// NewPauliY returns a Pauli Y gate acting on qubit.
func NewPauliY(qubit int) PauliY { return PauliY{Qubit: qubit} }

func (g PauliY) Name() string                   { return "PauliY" }
func (g PauliY) InvolvedQubits() InvolvedQubits { return QubitSet(g.Qubit) }
func (g PauliY) Equal(other Operation) bool     { return sameOp(g, other) }
func (g PauliY) Clone() Operation               { return g }

// PauliZ is the single qubit Pauli Z gate.
type PauliZ struct {
	noClassical
	baseVersion
	Qubit int
}

// NewPauliZ returns a Pauli Z gate acting on qubit.
func NewPauliZ(qubit int) PauliZ { return PauliZ{Qubit: qubit} }

func (g PauliZ) Name() string                   { return "PauliZ" }
func (g PauliZ) InvolvedQubits() InvolvedQubits { return QubitSet(g.Qubit) }
func (g PauliZ) Equal(other Operation) bool     { return sameOp(g, other) }
func (g PauliZ) Clone() Operation               { return g }

// SGate is the single qubit phase gate S.
type SGate struct {
	noClassical
	baseVersion
	Qubit int
}

// NewSGate returns an S gate acting on qubit.
func NewSGate(qubit int) SGate { return SGate{Qubit: qubit} }

func (g SGate) Name() string                   { return "SGate" }
func (g SGate) InvolvedQubits() InvolvedQubits { return QubitSet(g.Qubit) }
func (g SGate) Equal(other Operation) bool     { return sameOp(g, other) }
func (g SGate) Clone() Operation               { return g }

// RotateX is a rotation around the X axis by angle Theta.
type RotateX struct {
	noClassical
	baseVersion
	Qubit int
	Theta float64
}

// NewRotateX returns an X rotation of theta radians on qubit.
func NewRotateX(qubit int, theta float64) RotateX { return RotateX{Qubit: qubit, Theta: theta} }

func (g RotateX) Name() string                   { return "RotateX" }
func (g RotateX) InvolvedQubits() InvolvedQubits { return QubitSet(g.Qubit) }
func (g RotateX) Equal(other Operation) bool     { return sameOp(g, other) }
func (g RotateX) Clone() Operation               { return g }

// RotateY is a rotation around the Y axis by angle Theta.
type RotateY struct {
	noClassical
	baseVersion
	Qubit int
	Theta float64
}

// NewRotateY returns a Y rotation of theta radians on qubit.
func NewRotateY(qubit int, theta float64) RotateY { return RotateY{Qubit: qubit, Theta: theta} }

func (g RotateY) Name() string                   { return "RotateY" }
func (g RotateY) InvolvedQubits() InvolvedQubits { return QubitSet(g.Qubit) }
func (g RotateY) Equal(other Operation) bool     { return sameOp(g, other) }
func (g RotateY) Clone() Operation               { return g }

// RotateZ is a rotation around the Z axis by angle Theta.
type RotateZ struct {
	noClassical
	baseVersion
	Qubit int
	Theta float64
}

// NewRotateZ returns a Z rotation of theta radians on qubit.
func NewRotateZ(qubit int, theta float64) RotateZ { return RotateZ{Qubit: qubit, Theta: theta} }

func (g RotateZ) Name() string                   { return "RotateZ" }
func (g RotateZ) InvolvedQubits() InvolvedQubits { return QubitSet(g.Qubit) }
func (g RotateZ) Equal(other Operation) bool     { return sameOp(g, other) }
func (g RotateZ) Clone() Operation               { return g }

// CNOT is the controlled NOT gate.
type CNOT struct {
	noClassical
	baseVersion
	Control int
	Target  int
}

// NewCNOT returns a CNOT gate with the given control and target qubits.
func NewCNOT(control, target int) CNOT { return CNOT{Control: control, Target: target} }

func (g CNOT) Name() string                   { return "CNOT" }
func (g CNOT) InvolvedQubits() InvolvedQubits { return QubitSet(g.Control, g.Target) }
func (g CNOT) Equal(other Operation) bool     { return sameOp(g, other) }
func (g CNOT) Clone() Operation               { return g }

// ControlledPauliZ is the controlled Pauli Z gate.
type ControlledPauliZ struct {
	noClassical
	baseVersion
	Control int
	Target  int
}

// NewControlledPauliZ returns a controlled Z gate with the given control and
// target qubits.
func NewControlledPauliZ(control, target int) ControlledPauliZ {
	return ControlledPauliZ{Control: control, Target: target}
}

func (g ControlledPauliZ) Name() string                   { return "ControlledPauliZ" }
func (g ControlledPauliZ) InvolvedQubits() InvolvedQubits { return QubitSet(g.Control, g.Target) }
func (g ControlledPauliZ) Equal(other Operation) bool     { return sameOp(g, other) }
func (g ControlledPauliZ) Clone() Operation               { return g }

// SWAP exchanges the states of two qubits.
type SWAP struct {
	noClassical
	baseVersion
	Control int
	Target  int
}

// NewSWAP returns a SWAP gate exchanging the two given qubits.
func NewSWAP(control, target int) SWAP { return SWAP{Control: control, Target: target} }

func (g SWAP) Name() string                   { return "SWAP" }
func (g SWAP) InvolvedQubits() InvolvedQubits { return QubitSet(g.Control, g.Target) }
func (g SWAP) Equal(other Operation) bool     { return sameOp(g, other) }
func (g SWAP) Clone() Operation               { return g }
