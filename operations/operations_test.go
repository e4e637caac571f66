package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvolvedQubits(t *testing.T) {
	cases := []struct {
		name string
		op   Operation
		want InvolvedQubits
	}{
		{"single qubit gate", NewHadamard(3), QubitSet(3)},
		{"two qubit gate", NewCNOT(0, 1), QubitSet(0, 1)},
		{"swap", NewSWAP(2, 5), QubitSet(2, 5)},
		{"measurement", NewMeasureQubit(1, "ro", 0), QubitSet(1)},
		{"repeated measurement", NewPragmaRepeatedMeasurement("ro", 10), AllQubits()},
		{"set measurements", NewPragmaSetNumberOfMeasurements("ro", 10), NoQubits()},
		{"global phase", NewPragmaGlobalPhase(0.1), NoQubits()},
		{"stop parallel block", NewPragmaStopParallelBlock([]int{2, 0}, 1e-6), QubitSet(0, 2)},
		{"definition", NewDefinitionBit("ro", 2, true), NoQubits()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.op.InvolvedQubits())
		})
	}
}

func TestQubitSetNormalizes(t *testing.T) {
	assert.Equal(t, []int{0, 1, 4}, QubitSet(4, 1, 0, 1).Set)
}

func TestInvolvedClassical(t *testing.T) {
	cases := []struct {
		name string
		op   Operation
		want InvolvedClassical
	}{
		{"gate", NewRotateZ(0, 0.5), NoClassical()},
		{"measurement", NewMeasureQubit(1, "ro", 3), ClassicalSlots(ClassicalSlot{Register: "ro", Index: 3})},
		{"repeated measurement", NewPragmaRepeatedMeasurement("ro", 10), AllQubitsClassical("ro")},
		{"set measurements", NewPragmaSetNumberOfMeasurements("ro", 10), AllClassical("ro")},
		{"definition", NewDefinitionFloat("psi", 4, false), NoClassical()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.op.InvolvedClassical())
		})
	}
}

func TestEqual(t *testing.T) {
	t.Run("same kind same fields", func(t *testing.T) {
		assert.True(t, NewRotateX(0, 0.5).Equal(NewRotateX(0, 0.5)))
		assert.True(t, NewCNOT(0, 1).Equal(NewCNOT(0, 1)))
		assert.True(t, NewDefinitionBit("ro", 2, true).Equal(NewDefinitionBit("ro", 2, true)))
	})

	t.Run("same kind different fields", func(t *testing.T) {
		assert.False(t, NewRotateX(0, 0.5).Equal(NewRotateX(0, 0.25)))
		assert.False(t, NewCNOT(0, 1).Equal(NewCNOT(1, 0)))
		assert.False(t, NewDefinitionBit("ro", 2, true).Equal(NewDefinitionBit("ro", 2, false)))
	})

	t.Run("different kind", func(t *testing.T) {
		assert.False(t, NewPauliX(0).Equal(NewPauliY(0)))
		assert.False(t, NewRotateX(0, 0.5).Equal(NewRotateY(0, 0.5)))
		assert.False(t, NewDefinitionBit("ro", 2, true).Equal(NewDefinitionFloat("ro", 2, true)))
	})

	t.Run("qubit slice", func(t *testing.T) {
		a := NewPragmaStopParallelBlock([]int{0, 1}, 1e-6)
		assert.True(t, a.Equal(NewPragmaStopParallelBlock([]int{0, 1}, 1e-6)))
		assert.False(t, a.Equal(NewPragmaStopParallelBlock([]int{0, 2}, 1e-6)))
		assert.False(t, a.Equal(NewPragmaStopParallelBlock([]int{0, 1}, 2e-6)))
	})
}

func TestClone(t *testing.T) {
	ops := []Operation{
		NewHadamard(0),
		NewRotateZ(1, 0.5),
		NewCNOT(0, 1),
		NewMeasureQubit(0, "ro", 0),
		NewPragmaRepeatedMeasurement("ro", 100),
		NewPragmaStopParallelBlock([]int{0, 1}, 1e-6),
		NewDefinitionComplex("amp", 8, true),
	}
	for _, op := range ops {
		t.Run(op.Name(), func(t *testing.T) {
			assert.True(t, op.Equal(op.Clone()))
		})
	}
}

func TestCloneIndependence(t *testing.T) {
	op := NewPragmaStopParallelBlock([]int{0, 1}, 1e-6)
	clone := op.Clone()

	op.Qubits[0] = 9
	assert.True(t, clone.Equal(NewPragmaStopParallelBlock([]int{0, 1}, 1e-6)))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Hadamard", NewHadamard(0).Name())
	assert.Equal(t, "CNOT", NewCNOT(0, 1).Name())
	assert.Equal(t, "PragmaRepeatedMeasurement", NewPragmaRepeatedMeasurement("ro", 1).Name())
	assert.Equal(t, "DefinitionUsize", NewDefinitionUsize("n", 1, false).Name())
}

func TestAsDefinition(t *testing.T) {
	def, ok := AsDefinition(NewDefinitionBit("ro", 2, true))
	require.True(t, ok)
	assert.Equal(t, "ro", def.RegisterName())
	assert.Equal(t, 2, def.RegisterLength())

	_, ok = AsDefinition(NewPauliX(0))
	assert.False(t, ok)
}

func TestVersion(t *testing.T) {
	t.Run("at least", func(t *testing.T) {
		v := Version{Major: 1, Minor: 2, Patch: 3}
		assert.True(t, v.AtLeast(Version{Major: 1, Minor: 2, Patch: 3}))
		assert.True(t, v.AtLeast(Version{Major: 1, Minor: 1, Patch: 9}))
		assert.False(t, v.AtLeast(Version{Major: 1, Minor: 3, Patch: 0}))
		assert.False(t, v.AtLeast(Version{Major: 2, Minor: 0, Patch: 0}))
	})

	t.Run("max", func(t *testing.T) {
		a := Version{Major: 1, Minor: 0, Patch: 0}
		b := Version{Major: 1, Minor: 4, Patch: 0}
		assert.Equal(t, b, a.Max(b))
		assert.Equal(t, b, b.Max(a))
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "1.0.0", BaseVersion.String())
	})
}

func TestMinimumSupportedVersion(t *testing.T) {
	assert.Equal(t, BaseVersion, NewHadamard(0).MinimumSupportedVersion())
	assert.Equal(t, BaseVersion, NewPragmaRepeatedMeasurement("ro", 1).MinimumSupportedVersion())
}
