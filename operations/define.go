package operations

// DefinitionBit declares a classical bit register, the usual target of
// measurement readouts.
type DefinitionBit struct {
	noClassical
	baseVersion
	Register string
	Length   int
	IsOutput bool
}

// NewDefinitionBit returns a bit register declaration.
func NewDefinitionBit(register string, length int, isOutput bool) DefinitionBit {
	return DefinitionBit{Register: register, Length: length, IsOutput: isOutput}
}

func (d DefinitionBit) Name() string                   { return "DefinitionBit" }
func (d DefinitionBit) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d DefinitionBit) Equal(other Operation) bool     { return sameOp(d, other) }
func (d DefinitionBit) Clone() Operation               { return d }
func (d DefinitionBit) RegisterName() string           { return d.Register }
func (d DefinitionBit) RegisterLength() int            { return d.Length }

// DefinitionFloat declares a classical floating point register.
type DefinitionFloat struct {
	noClassical
	baseVersion
	Register string
	Length   int
	IsOutput bool
}

// NewDefinitionFloat returns a float register declaration.
func NewDefinitionFloat(register string, length int, isOutput bool) DefinitionFloat {
	return DefinitionFloat{Register: register, Length: length, IsOutput: isOutput}
}

func (d DefinitionFloat) Name() string                   { return "DefinitionFloat" }
func (d DefinitionFloat) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d DefinitionFloat) Equal(other Operation) bool     { return sameOp(d, other) }
func (d DefinitionFloat) Clone() Operation               { return d }
func (d DefinitionFloat) RegisterName() string           { return d.Register }
func (d DefinitionFloat) RegisterLength() int            { return d.Length }

// DefinitionComplex declares a classical complex number register.
type DefinitionComplex struct {
	noClassical
	baseVersion
	Register string
	Length   int
	IsOutput bool
}

// NewDefinitionComplex returns a complex register declaration.
func NewDefinitionComplex(register string, length int, isOutput bool) DefinitionComplex {
	return DefinitionComplex{Register: register, Length: length, IsOutput: isOutput}
}

func (d DefinitionComplex) Name() string                   { return "DefinitionComplex" }
func (d DefinitionComplex) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d DefinitionComplex) Equal(other Operation) bool     { return sameOp(d, other) }
func (d DefinitionComplex) Clone() Operation               { return d }
func (d DefinitionComplex) RegisterName() string           { return d.Register }
func (d DefinitionComplex) RegisterLength() int            { return d.Length }

// DefinitionUsize declares a classical unsigned integer register.
type DefinitionUsize struct {
	noClassical
	baseVersion
	Register string
	Length   int
	IsOutput bool
}

// NewDefinitionUsize returns an unsigned integer register declaration.
func NewDefinitionUsize(register string, length int, isOutput bool) DefinitionUsize {
	return DefinitionUsize{Register: register, Length: length, IsOutput: isOutput}
}

func (d DefinitionUsize) Name() string                   { return "DefinitionUsize" }
func (d DefinitionUsize) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d DefinitionUsize) Equal(other Operation) bool     { return sameOp(d, other) }
func (d DefinitionUsize) Clone() Operation               { return d }
func (d DefinitionUsize) RegisterName() string           { return d.Register }
func (d DefinitionUsize) RegisterLength() int            { return d.Length }
