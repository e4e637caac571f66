package operations

// MeasureQubit measures a single qubit into one slot of a classical bit
// register.
type MeasureQubit struct {
	baseVersion
	Qubit        int
	Readout      string
	ReadoutIndex int
}

// NewMeasureQubit returns a measurement of qubit into slot readoutIndex of
// the register named readout.
func NewMeasureQubit(qubit int, readout string, readoutIndex int) MeasureQubit {
	return MeasureQubit{Qubit: qubit, Readout: readout, ReadoutIndex: readoutIndex}
}

func (m MeasureQubit) Name() string                   { return "MeasureQubit" }
func (m MeasureQubit) InvolvedQubits() InvolvedQubits { return QubitSet(m.Qubit) }

func (m MeasureQubit) InvolvedClassical() InvolvedClassical {
	return ClassicalSlots(ClassicalSlot{Register: m.Readout, Index: m.ReadoutIndex})
}

func (m MeasureQubit) Equal(other Operation) bool { return sameOp(m, other) }
func (m MeasureQubit) Clone() Operation           { return m }
