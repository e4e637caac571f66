// Package operations defines the closed catalogue of quantum program
// instructions consumed by the circuit DAG: gates, measurements, pragmas and
// the four classical register declaration kinds.
//
// The catalogue is deliberately closed. Scheduling code dispatches on the
// involvement unions ([InvolvedQubits], [InvolvedClassical]) and on the
// [Definition] capability with exhaustive switches, so adding a new
// operation kind means extending this package, not implementing an interface
// elsewhere.
package operations
