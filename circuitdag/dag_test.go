package circuitdag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HQSquantumsimulations/qoqo-sub001/operations"
)

func TestNew(t *testing.T) {
	d := New()
	require.NotNil(t, d)
	assert.Equal(t, 0, d.NodeCount())
	assert.Equal(t, 0, d.EdgeCount())
	assert.Empty(t, d.CommutingOperations())
	_, ok := d.FirstAll()
	assert.False(t, ok)
	_, ok = d.LastAll()
	assert.False(t, ok)
}

func TestAddToBackSharedQubit(t *testing.T) {
	d := New()
	cnot := d.AddToBack(operations.NewCNOT(0, 1))
	x := d.AddToBack(operations.NewPauliX(0))

	assert.Equal(t, 2, d.NodeCount())
	require.Equal(t, 1, d.EdgeCount())
	assert.True(t, d.graph.hasEdge(cnot, x))

	last := d.LastOperationInvolvingQubit()
	assert.Equal(t, x, last[0])
	assert.Equal(t, cnot, last[1])

	first := d.FirstOperationInvolvingQubit()
	assert.Equal(t, cnot, first[0])
	assert.Equal(t, cnot, first[1])

	assert.Equal(t, map[NodeIndex]struct{}{cnot: {}}, d.FirstParallelBlock())
	assert.Equal(t, map[NodeIndex]struct{}{x: {}}, d.LastParallelBlock())
}

func TestAddToBackDeclarationAndMeasurement(t *testing.T) {
	d := New()
	decl := d.AddToBack(operations.NewDefinitionBit("ro", 4, true))
	meas := d.AddToBack(operations.NewMeasureQubit(0, "ro", 1))

	t.Run("declaration is edge-free and commuting", func(t *testing.T) {
		assert.Equal(t, 0, d.EdgeCount())
		assert.Equal(t, []NodeIndex{decl}, d.CommutingOperations())
		assert.Empty(t, d.Successors(decl))
		assert.Empty(t, d.Predecessors(decl))
	})

	t.Run("declaration seeds every slot of the register", func(t *testing.T) {
		first := d.FirstOperationInvolvingClassical()
		last := d.LastOperationInvolvingClassical()
		for i := 0; i < 4; i++ {
			slot := operations.ClassicalSlot{Register: "ro", Index: i}
			assert.Equal(t, decl, first[slot], "first slot %d", i)
			if i == 1 {
				continue
			}
			assert.Equal(t, decl, last[slot], "last slot %d", i)
		}
	})

	t.Run("measurement only moves the classical last frontier", func(t *testing.T) {
		slot := operations.ClassicalSlot{Register: "ro", Index: 1}
		assert.Equal(t, meas, d.LastOperationInvolvingClassical()[slot])
		assert.Equal(t, decl, d.FirstOperationInvolvingClassical()[slot])
		assert.False(t, d.graph.hasEdge(decl, meas))
		assert.False(t, d.graph.hasEdge(meas, decl))
	})
}

func TestAddToBackAllQubits(t *testing.T) {
	d := New()
	x := d.AddToBack(operations.NewPauliX(0))
	all := d.AddToBack(operations.NewPragmaRepeatedMeasurement("ro", 100))

	assert.True(t, d.graph.hasEdge(x, all))

	lastAll, ok := d.LastAll()
	require.True(t, ok)
	assert.Equal(t, all, lastAll)
	firstAll, ok := d.FirstAll()
	require.True(t, ok)
	assert.Equal(t, all, firstAll)

	assert.Equal(t, all, d.LastOperationInvolvingQubit()[0])
	assert.Equal(t, x, d.FirstOperationInvolvingQubit()[0])
	assert.Equal(t, map[NodeIndex]struct{}{all: {}}, d.LastParallelBlock())
}

func TestAddToBackAfterAll(t *testing.T) {
	d := New()
	x := d.AddToBack(operations.NewPauliX(0))
	all := d.AddToBack(operations.NewPragmaRepeatedMeasurement("ro", 100))
	y := d.AddToBack(operations.NewPauliY(2))

	// Qubit 2 was never seen, so its back frontier chains off the all node
	// and its first entry points at the all node, not at the new node.
	assert.True(t, d.graph.hasEdge(all, y))
	assert.Equal(t, all, d.FirstOperationInvolvingQubit()[2])
	assert.Equal(t, y, d.LastOperationInvolvingQubit()[2])
	assert.Equal(t, x, d.FirstOperationInvolvingQubit()[0])
}

func TestLeadingAllSeedsQubitZero(t *testing.T) {
	// Quirk: an all-qubits operation inserted into an empty Dag
	// seeds both qubit frontier maps under qubit key 0.
	t.Run("back", func(t *testing.T) {
		d := New()
		all := d.AddToBack(operations.NewPragmaRepeatedMeasurement("ro", 1))
		assert.Equal(t, map[int]NodeIndex{0: all}, d.FirstOperationInvolvingQubit())
		assert.Equal(t, map[int]NodeIndex{0: all}, d.LastOperationInvolvingQubit())
	})
	t.Run("front", func(t *testing.T) {
		d := New()
		all := d.AddToFront(operations.NewPragmaRepeatedMeasurement("ro", 1))
		assert.Equal(t, map[int]NodeIndex{0: all}, d.FirstOperationInvolvingQubit())
		assert.Equal(t, map[int]NodeIndex{0: all}, d.LastOperationInvolvingQubit())
	})
}

func TestAddToFrontMirrorsAddToBack(t *testing.T) {
	d := New()
	x := d.AddToBack(operations.NewPauliX(0))
	h := d.AddToFront(operations.NewHadamard(0))

	assert.True(t, d.graph.hasEdge(h, x))
	assert.Equal(t, h, d.FirstOperationInvolvingQubit()[0])
	assert.Equal(t, x, d.LastOperationInvolvingQubit()[0])
	assert.Equal(t, map[NodeIndex]struct{}{h: {}}, d.FirstParallelBlock())
	assert.Equal(t, map[NodeIndex]struct{}{x: {}}, d.LastParallelBlock())
}

func TestAddToFrontAllQubits(t *testing.T) {
	d := New()
	x := d.AddToBack(operations.NewPauliX(0))
	all := d.AddToFront(operations.NewPragmaRepeatedMeasurement("ro", 10))

	assert.True(t, d.graph.hasEdge(all, x))
	firstAll, ok := d.FirstAll()
	require.True(t, ok)
	assert.Equal(t, all, firstAll)
	lastAll, ok := d.LastAll()
	require.True(t, ok)
	assert.Equal(t, all, lastAll)
	assert.Equal(t, all, d.FirstOperationInvolvingQubit()[0])
	assert.Equal(t, x, d.LastOperationInvolvingQubit()[0])
	assert.Equal(t, map[NodeIndex]struct{}{all: {}}, d.FirstParallelBlock())
}

func TestClassicalFrontMirror(t *testing.T) {
	d := New()
	meas := d.AddToBack(operations.NewMeasureQubit(0, "ro", 0))
	decl := d.AddToFront(operations.NewDefinitionBit("ro", 2, false))

	first := d.FirstOperationInvolvingClassical()
	last := d.LastOperationInvolvingClassical()

	slot0 := operations.ClassicalSlot{Register: "ro", Index: 0}
	slot1 := operations.ClassicalSlot{Register: "ro", Index: 1}

	// The front declaration takes over the first frontier of every slot,
	// but back-fills the last frontier only where no operation was seen.
	assert.Equal(t, decl, first[slot0])
	assert.Equal(t, decl, first[slot1])
	assert.Equal(t, meas, last[slot0])
	assert.Equal(t, decl, last[slot1])
}

func TestClassicalAllRegister(t *testing.T) {
	d := New()
	decl := d.AddToBack(operations.NewDefinitionBit("ro", 2, true))
	other := d.AddToBack(operations.NewDefinitionBit("ri", 2, true))
	pragma := d.AddToBack(operations.NewPragmaSetNumberOfMeasurements("ro", 50))

	last := d.LastOperationInvolvingClassical()
	assert.Equal(t, pragma, last[operations.ClassicalSlot{Register: "ro", Index: 0}])
	assert.Equal(t, pragma, last[operations.ClassicalSlot{Register: "ro", Index: 1}])
	assert.Equal(t, other, last[operations.ClassicalSlot{Register: "ri", Index: 0}])

	// The pragma touches no qubits, so it stays edge-free without being
	// commuting.
	assert.Equal(t, 0, d.EdgeCount())
	assert.NotContains(t, d.CommutingOperations(), pragma)
	assert.Contains(t, d.CommutingOperations(), decl)
}

func TestCommutingIsolation(t *testing.T) {
	d := New()
	d.AddToBack(operations.NewDefinitionBit("ro", 3, true))
	d.AddToBack(operations.NewHadamard(0))
	d.AddToBack(operations.NewPragmaGlobalPhase(0.25))
	d.AddToBack(operations.NewCNOT(0, 1))
	d.AddToFront(operations.NewDefinitionFloat("f", 2, false))

	for _, n := range d.CommutingOperations() {
		assert.Empty(t, d.Successors(n), "commuting node %d has outgoing edges", n)
		assert.Empty(t, d.Predecessors(n), "commuting node %d has incoming edges", n)
	}
	assert.Len(t, d.CommutingOperations(), 3)
}

func TestAcyclicityMixedInsertion(t *testing.T) {
	cases := []struct {
		name  string
		build func(d *Dag)
	}{
		{"back chain", func(d *Dag) {
			d.AddToBack(operations.NewHadamard(0))
			d.AddToBack(operations.NewCNOT(0, 1))
			d.AddToBack(operations.NewPauliX(1))
			d.AddToBack(operations.NewCNOT(1, 2))
		}},
		{"front chain", func(d *Dag) {
			d.AddToFront(operations.NewCNOT(1, 2))
			d.AddToFront(operations.NewPauliX(1))
			d.AddToFront(operations.NewCNOT(0, 1))
			d.AddToFront(operations.NewHadamard(0))
		}},
		{"interleaved with all", func(d *Dag) {
			d.AddToBack(operations.NewHadamard(0))
			d.AddToFront(operations.NewPauliY(1))
			d.AddToBack(operations.NewPragmaRepeatedMeasurement("ro", 10))
			d.AddToFront(operations.NewPragmaStopParallelBlock([]int{0, 1}, 0.001))
			d.AddToBack(operations.NewPauliZ(2))
			d.AddToFront(operations.NewSWAP(1, 2))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := New()
			tc.build(d)
			_, err := d.TopologicalOrder()
			assert.NoError(t, err)
		})
	}
}

// touchesQubit reports whether the operation at node n involves qubit q via
// an explicit set.
func touchesQubit(t *testing.T, d *Dag, n NodeIndex, q int) bool {
	t.Helper()
	op, ok := d.Get(n)
	require.True(t, ok)
	iq := op.InvolvedQubits()
	if iq.Kind != operations.QubitsSet {
		return false
	}
	for _, qb := range iq.Set {
		if qb == q {
			return true
		}
	}
	return false
}

func TestLastFrontierHasNoForwardEdgeOnSameQubit(t *testing.T) {
	d := New()
	d.AddToBack(operations.NewHadamard(0))
	d.AddToBack(operations.NewCNOT(0, 1))
	d.AddToBack(operations.NewRotateZ(1, 0.5))
	d.AddToBack(operations.NewCNOT(1, 2))
	d.AddToBack(operations.NewPauliX(0))

	for q, n := range d.LastOperationInvolvingQubit() {
		for _, succ := range d.Successors(n) {
			assert.False(t, touchesQubit(t, d, succ, q),
				"last node %d for qubit %d precedes node %d touching the same qubit", n, q, succ)
		}
	}
}

func TestGet(t *testing.T) {
	d := New()
	n := d.AddToBack(operations.NewRotateX(3, 1.5))

	op, ok := d.Get(n)
	require.True(t, ok)
	assert.True(t, op.Equal(operations.NewRotateX(3, 1.5)))

	_, ok = d.Get(NodeIndex(99))
	assert.False(t, ok)
	_, ok = d.Get(NodeIndex(-1))
	assert.False(t, ok)
}

func TestGetReturnsCopy(t *testing.T) {
	d := New()
	n := d.AddToBack(operations.NewPragmaStopParallelBlock([]int{0, 1}, 1e-6))

	op, ok := d.Get(n)
	require.True(t, ok)
	op.(operations.PragmaStopParallelBlock).Qubits[0] = 9

	stored, ok := d.Get(n)
	require.True(t, ok)
	assert.True(t, stored.Equal(operations.NewPragmaStopParallelBlock([]int{0, 1}, 1e-6)))
}

func TestMinimumSupportedVersion(t *testing.T) {
	d := New()
	assert.Equal(t, operations.BaseVersion, d.MinimumSupportedVersion())

	d.AddToBack(operations.NewPauliX(0))
	d.AddToBack(operations.NewDefinitionBit("ro", 1, true))
	assert.Equal(t, operations.BaseVersion, d.MinimumSupportedVersion())
}
