package circuitfile

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/HQSquantumsimulations/qoqo-sub001/operations"
)

// decodeOpBlock turns one op block into an operation from the catalogue.
// The block label selects the kind by its catalogue name.
func decodeOpBlock(block *hcl.Block) (operations.Operation, hcl.Diagnostics) {
	kind := block.Labels[0]
	r, diags := newAttrReader(block)
	if diags.HasErrors() {
		return nil, diags
	}

	var op operations.Operation
	switch kind {
	case "Hadamard":
		op = operations.NewHadamard(r.requireInt("qubit"))
	case "PauliX":
		op = operations.NewPauliX(r.requireInt("qubit"))
	case "PauliY":
		op = operations.NewPauliY(r.requireInt("qubit"))
	case "PauliZ":
		op = operations.NewPauliZ(r.requireInt("qubit"))
	case "SGate":
		op = operations.NewSGate(r.requireInt("qubit"))
	case "RotateX":
		op = operations.NewRotateX(r.requireInt("qubit"), r.requireFloat("theta"))
	case "RotateY":
		op = operations.NewRotateY(r.requireInt("qubit"), r.requireFloat("theta"))
	case "RotateZ":
		op = operations.NewRotateZ(r.requireInt("qubit"), r.requireFloat("theta"))
	case "CNOT":
		op = operations.NewCNOT(r.requireInt("control"), r.requireInt("target"))
	case "ControlledPauliZ":
		op = operations.NewControlledPauliZ(r.requireInt("control"), r.requireInt("target"))
	case "SWAP":
		op = operations.NewSWAP(r.requireInt("control"), r.requireInt("target"))
	case "MeasureQubit":
		op = operations.NewMeasureQubit(r.requireInt("qubit"), r.requireString("readout"), r.requireInt("readout_index"))
	case "PragmaRepeatedMeasurement":
		op = operations.NewPragmaRepeatedMeasurement(r.requireString("readout"), r.requireInt("repetitions"))
	case "PragmaSetNumberOfMeasurements":
		op = operations.NewPragmaSetNumberOfMeasurements(r.requireString("readout"), r.requireInt("measurements"))
	case "PragmaGlobalPhase":
		op = operations.NewPragmaGlobalPhase(r.requireFloat("phase"))
	case "PragmaStopParallelBlock":
		op = operations.NewPragmaStopParallelBlock(r.requireIntList("qubits"), r.requireFloat("duration"))
	case "DefinitionBit":
		op = operations.NewDefinitionBit(r.requireString("register"), r.requireInt("length"), r.optionalBool("output", false))
	case "DefinitionFloat":
		op = operations.NewDefinitionFloat(r.requireString("register"), r.requireInt("length"), r.optionalBool("output", false))
	case "DefinitionComplex":
		op = operations.NewDefinitionComplex(r.requireString("register"), r.requireInt("length"), r.optionalBool("output", false))
	case "DefinitionUsize":
		op = operations.NewDefinitionUsize(r.requireString("register"), r.requireInt("length"), r.optionalBool("output", false))
	default:
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unknown operation kind",
			Detail:   "There is no operation named \"" + kind + "\" in the catalogue.",
			Subject:  &block.DefRange,
		}}
	}

	if diags := r.finish(); diags.HasErrors() {
		return nil, diags
	}
	return op, nil
}

// attrReader accumulates typed attribute lookups and their diagnostics for
// one op block, so each operation kind reads like a constructor call.
type attrReader struct {
	block *hcl.Block
	attrs hcl.Attributes
	used  map[string]bool
	diags hcl.Diagnostics
}

func newAttrReader(block *hcl.Block) (*attrReader, hcl.Diagnostics) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	return &attrReader{block: block, attrs: attrs, used: make(map[string]bool)}, nil
}

// finish reports accumulated diagnostics plus an error per attribute the
// operation kind does not accept.
func (r *attrReader) finish() hcl.Diagnostics {
	diags := r.diags
	for name, attr := range r.attrs {
		if !r.used[name] {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported attribute",
				Detail:   "Operation \"" + r.block.Labels[0] + "\" does not accept attribute \"" + name + "\".",
				Subject:  &attr.NameRange,
			})
		}
	}
	return diags
}

func (r *attrReader) value(name string, want cty.Type, required bool) (cty.Value, bool) {
	attr, ok := r.attrs[name]
	if !ok {
		if required {
			r.diags = append(r.diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing required attribute",
				Detail:   "Operation \"" + r.block.Labels[0] + "\" requires attribute \"" + name + "\".",
				Subject:  &r.block.DefRange,
			})
		}
		return cty.NilVal, false
	}
	r.used[name] = true

	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		r.diags = append(r.diags, diags...)
		return cty.NilVal, false
	}
	converted, err := convert.Convert(v, want)
	if err != nil {
		r.diags = append(r.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute value",
			Detail:   "Attribute \"" + name + "\": " + err.Error(),
			Subject:  attr.Expr.Range().Ptr(),
		})
		return cty.NilVal, false
	}
	return converted, true
}

func (r *attrReader) requireInt(name string) int {
	v, ok := r.value(name, cty.Number, true)
	if !ok {
		return 0
	}
	var out int
	if err := gocty.FromCtyValue(v, &out); err != nil {
		r.diags = append(r.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute value",
			Detail:   "Attribute \"" + name + "\" must be an integer: " + err.Error(),
			Subject:  &r.block.DefRange,
		})
		return 0
	}
	return out
}

func (r *attrReader) requireFloat(name string) float64 {
	v, ok := r.value(name, cty.Number, true)
	if !ok {
		return 0
	}
	var out float64
	if err := gocty.FromCtyValue(v, &out); err != nil {
		r.diags = append(r.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute value",
			Detail:   "Attribute \"" + name + "\" must be a number: " + err.Error(),
			Subject:  &r.block.DefRange,
		})
		return 0
	}
	return out
}

func (r *attrReader) requireString(name string) string {
	v, ok := r.value(name, cty.String, true)
	if !ok {
		return ""
	}
	return v.AsString()
}

func (r *attrReader) requireIntList(name string) []int {
	v, ok := r.value(name, cty.List(cty.Number), true)
	if !ok {
		return nil
	}
	var out []int
	if err := gocty.FromCtyValue(v, &out); err != nil {
		r.diags = append(r.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute value",
			Detail:   "Attribute \"" + name + "\" must be a list of integers: " + err.Error(),
			Subject:  &r.block.DefRange,
		})
		return nil
	}
	return out
}

func (r *attrReader) optionalBool(name string, fallback bool) bool {
	v, ok := r.value(name, cty.Bool, false)
	if !ok {
		return fallback
	}
	return v.True()
}
