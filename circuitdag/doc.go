// Package circuitdag turns a quantum circuit into a dependency graph and
// answers the scheduling questions a downstream executor needs: which
// operations are ready to run, which operations block a given one, and how
// the program splits into layers of mutually independent operations.
//
// A [Dag] is built by inserting operations one at a time at either end of
// the program ([Dag.AddToBack], [Dag.AddToFront]) or in bulk from a flat
// [circuit.Circuit] via [FromCircuit]. Insertion wires an edge between two
// operations exactly when they touch a common qubit; classical register
// usage is tracked in separate frontier maps that never create edges.
//
// The Dag is a single writer, in-memory structure with no interior locking.
// Readers may share it freely once mutation has stopped; each consumer of
// [Dag.ParallelBlocks] holds independent cursor state.
package circuitdag
