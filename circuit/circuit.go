// Package circuit provides the flat, ordered representation of a quantum
// program: a sequence of operations in authoring order, before any
// dependency analysis.
package circuit

import (
	"github.com/HQSquantumsimulations/qoqo-sub001/operations"
)

// Circuit is an append-only ordered sequence of operations. The zero value
// is an empty circuit, ready to use.
type Circuit struct {
	ops []operations.Operation
}

// Add appends op to the end of the circuit.
func (c *Circuit) Add(op operations.Operation) {
	c.ops = append(c.ops, op.Clone())
}

// Len returns the number of operations in the circuit.
func (c *Circuit) Len() int { return len(c.ops) }

// Get returns a copy of the operation at position i in authoring order.
func (c *Circuit) Get(i int) operations.Operation { return c.ops[i].Clone() }

// Operations returns an independent copy of the operation sequence.
func (c *Circuit) Operations() []operations.Operation {
	out := make([]operations.Operation, len(c.ops))
	for i, op := range c.ops {
		out[i] = op.Clone()
	}
	return out
}

// Equal reports whether c and other contain equal operations in the same
// order.
func (c *Circuit) Equal(other *Circuit) bool {
	if len(c.ops) != len(other.ops) {
		return false
	}
	for i, op := range c.ops {
		if !op.Equal(other.ops[i]) {
			return false
		}
	}
	return true
}

// InvolvedQubits aggregates the qubits touched by the whole circuit. The
// result is QubitsAll if any operation touches all qubits, QubitsNone if no
// operation touches any, and the union set otherwise.
func (c *Circuit) InvolvedQubits() operations.InvolvedQubits {
	union := make([]int, 0)
	for _, op := range c.ops {
		iq := op.InvolvedQubits()
		switch iq.Kind {
		case operations.QubitsAll:
			return operations.AllQubits()
		case operations.QubitsSet:
			union = append(union, iq.Set...)
		case operations.QubitsNone:
		}
	}
	if len(union) == 0 {
		return operations.NoQubits()
	}
	return operations.QubitSet(union...)
}
