package circuitfile

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/HQSquantumsimulations/qoqo-sub001/circuit"
	"github.com/HQSquantumsimulations/qoqo-sub001/internal/ctxlog"
)

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "circuit"},
	},
}

var circuitSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "op", LabelNames: []string{"kind"}},
	},
}

// Load reads and parses the circuit file at path.
func Load(ctx context.Context, path string) (*circuit.Circuit, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading circuit file.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading circuit file: %w", err)
	}
	c, err := Parse(ctx, path, src)
	if err != nil {
		return nil, err
	}
	logger.Debug("Circuit file loaded.", "path", path, "operations", c.Len())
	return c, nil
}

// Parse decodes HCL source into a circuit. filename is used only for
// diagnostics.
func Parse(ctx context.Context, filename string, src []byte) (*circuit.Circuit, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", filename, diags)
	}

	circuitBlock, diags := uniqueBlock(content.Blocks, "circuit")
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", filename, diags)
	}
	if circuitBlock == nil {
		return nil, fmt.Errorf("decoding %s: no circuit block found", filename)
	}

	opsContent, diags := circuitBlock.Body.Content(circuitSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", filename, diags)
	}

	var c circuit.Circuit
	for _, block := range opsContent.Blocks {
		op, opDiags := decodeOpBlock(block)
		if opDiags.HasErrors() {
			return nil, fmt.Errorf("decoding %s: %w", filename, opDiags)
		}
		c.Add(op)
	}
	return &c, nil
}

// uniqueBlock returns the single block of the given type, or nil when
// absent. More than one is a diagnostic error.
func uniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics
	for _, block := range blocks {
		if block.Type != name {
			continue
		}
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"" + name + "\" block",
				Detail:   "Only one \"" + name + "\" block is allowed per file.",
				Subject:  &block.DefRange,
			})
		}
		found = block
	}
	return found, diags
}
