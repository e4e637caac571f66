package operations

import "sort"

// Operation is a single quantum program instruction. Implementations are
// immutable value types: Clone returns an independent copy and Equal compares
// by kind and by every field.
type Operation interface {
	// Name returns the unique tag of the operation kind, e.g. "PauliX".
	Name() string

	// InvolvedQubits reports which qubits the operation touches.
	InvolvedQubits() InvolvedQubits

	// InvolvedClassical reports which classical register slots the
	// operation touches.
	InvolvedClassical() InvolvedClassical

	// Equal reports whether other is the same kind with the same fields.
	Equal(other Operation) bool

	// Clone returns an independent copy of the operation.
	Clone() Operation

	// MinimumSupportedVersion returns the earliest toolkit version able to
	// interpret the operation.
	MinimumSupportedVersion() Version
}

// QubitsKind discriminates the variants of InvolvedQubits.
type QubitsKind int

const (
	// QubitsNone marks an operation touching no qubits.
	QubitsNone QubitsKind = iota
	// QubitsAll marks an operation touching every qubit in the circuit.
	QubitsAll
	// QubitsSet marks an operation touching an explicit set of qubits.
	QubitsSet
)

// InvolvedQubits is the tagged union describing the qubits an operation
// touches. Set is populated only when Kind is QubitsSet.
type InvolvedQubits struct {
	Kind QubitsKind
	Set  []int
}

// NoQubits returns the QubitsNone variant.
func NoQubits() InvolvedQubits { return InvolvedQubits{Kind: QubitsNone} }

// AllQubits returns the QubitsAll variant.
func AllQubits() InvolvedQubits { return InvolvedQubits{Kind: QubitsAll} }

// QubitSet returns the QubitsSet variant over the given qubit indices,
// deduplicated and sorted.
func QubitSet(qubits ...int) InvolvedQubits {
	seen := make(map[int]struct{}, len(qubits))
	set := make([]int, 0, len(qubits))
	for _, q := range qubits {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		set = append(set, q)
	}
	sort.Ints(set)
	return InvolvedQubits{Kind: QubitsSet, Set: set}
}

// ClassicalKind discriminates the variants of InvolvedClassical.
type ClassicalKind int

const (
	// ClassicalNone marks an operation touching no classical slot.
	ClassicalNone ClassicalKind = iota
	// ClassicalSet marks an operation touching an explicit set of slots.
	ClassicalSet
	// ClassicalAll marks an operation touching every slot of one register.
	ClassicalAll
	// ClassicalAllQubits marks an operation touching every slot of one
	// register up to the number of qubits in the device. For dependency
	// tracking it is equivalent to ClassicalAll.
	ClassicalAllQubits
)

// ClassicalSlot addresses a single slot of a named classical register.
type ClassicalSlot struct {
	Register string
	Index    int
}

// InvolvedClassical is the tagged union describing the classical register
// slots an operation touches. Slots is populated only for ClassicalSet;
// Register only for ClassicalAll and ClassicalAllQubits.
type InvolvedClassical struct {
	Kind     ClassicalKind
	Slots    []ClassicalSlot
	Register string
}

// NoClassical returns the ClassicalNone variant.
func NoClassical() InvolvedClassical { return InvolvedClassical{Kind: ClassicalNone} }

// ClassicalSlots returns the ClassicalSet variant over the given slots.
func ClassicalSlots(slots ...ClassicalSlot) InvolvedClassical {
	return InvolvedClassical{Kind: ClassicalSet, Slots: slots}
}

// AllClassical returns the ClassicalAll variant for the named register.
func AllClassical(register string) InvolvedClassical {
	return InvolvedClassical{Kind: ClassicalAll, Register: register}
}

// AllQubitsClassical returns the ClassicalAllQubits variant for the named
// register.
func AllQubitsClassical(register string) InvolvedClassical {
	return InvolvedClassical{Kind: ClassicalAllQubits, Register: register}
}

// Definition is the capability shared by the four classical register
// declaration kinds: DefinitionBit, DefinitionFloat, DefinitionComplex and
// DefinitionUsize.
type Definition interface {
	Operation
	// RegisterName returns the name of the declared register.
	RegisterName() string
	// RegisterLength returns the number of slots in the declared register.
	RegisterLength() int
}

// AsDefinition reports whether op is one of the four register declaration
// kinds and, if so, returns its Definition view.
func AsDefinition(op Operation) (Definition, bool) {
	def, ok := op.(Definition)
	return def, ok
}

// sameOp reports whether other is an operation of comparable type T with
// fields equal to op.
func sameOp[T comparable](op T, other Operation) bool {
	o, ok := other.(T)
	return ok && o == op
}
