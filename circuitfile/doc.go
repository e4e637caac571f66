// Package circuitfile loads quantum circuits from HCL files.
//
// A circuit file holds a single circuit block whose op blocks, in source
// order, name an operation kind from the operations catalogue and set its
// fields as attributes:
//
//	circuit {
//	  op "DefinitionBit" {
//	    register = "ro"
//	    length   = 2
//	    output   = true
//	  }
//
//	  op "Hadamard" {
//	    qubit = 0
//	  }
//
//	  op "CNOT" {
//	    control = 0
//	    target  = 1
//	  }
//	}
package circuitfile
