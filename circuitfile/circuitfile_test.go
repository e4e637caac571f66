package circuitfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HQSquantumsimulations/qoqo-sub001/operations"
)

const validSource = `
circuit {
  op "DefinitionBit" {
    register = "ro"
    length   = 2
    output   = true
  }

  op "Hadamard" {
    qubit = 0
  }

  op "CNOT" {
    control = 0
    target  = 1
  }

  op "RotateZ" {
    qubit = 1
    theta = 0.5
  }

  op "MeasureQubit" {
    qubit         = 0
    readout       = "ro"
    readout_index = 0
  }

  op "PragmaStopParallelBlock" {
    qubits   = [0, 1]
    duration = 1e-6
  }
}
`

func TestParse(t *testing.T) {
	c, err := Parse(context.Background(), "test.hcl", []byte(validSource))
	require.NoError(t, err)
	require.Equal(t, 6, c.Len())

	assert.True(t, c.Get(0).Equal(operations.NewDefinitionBit("ro", 2, true)))
	assert.True(t, c.Get(1).Equal(operations.NewHadamard(0)))
	assert.True(t, c.Get(2).Equal(operations.NewCNOT(0, 1)))
	assert.True(t, c.Get(3).Equal(operations.NewRotateZ(1, 0.5)))
	assert.True(t, c.Get(4).Equal(operations.NewMeasureQubit(0, "ro", 0)))
	assert.True(t, c.Get(5).Equal(operations.NewPragmaStopParallelBlock([]int{0, 1}, 1e-6)))
}

func TestParseEmptyCircuit(t *testing.T) {
	c, err := Parse(context.Background(), "test.hcl", []byte("circuit {}\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestParseDefinitionOutputDefaultsFalse(t *testing.T) {
	src := `
circuit {
  op "DefinitionFloat" {
    register = "psi"
    length   = 4
  }
}
`
	c, err := Parse(context.Background(), "test.hcl", []byte(src))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.True(t, c.Get(0).Equal(operations.NewDefinitionFloat("psi", 4, false)))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "invalid syntax",
			src:     "circuit {",
			wantErr: "parsing",
		},
		{
			name:    "no circuit block",
			src:     "",
			wantErr: "no circuit block found",
		},
		{
			name:    "duplicate circuit block",
			src:     "circuit {}\ncircuit {}\n",
			wantErr: "Duplicate \"circuit\" block",
		},
		{
			name:    "unknown kind",
			src:     "circuit {\n  op \"Teleport\" {\n    qubit = 0\n  }\n}\n",
			wantErr: "Unknown operation kind",
		},
		{
			name:    "missing attribute",
			src:     "circuit {\n  op \"RotateX\" {\n    qubit = 0\n  }\n}\n",
			wantErr: "Missing required attribute",
		},
		{
			name:    "unsupported attribute",
			src:     "circuit {\n  op \"PauliX\" {\n    qubit = 0\n    theta = 0.5\n  }\n}\n",
			wantErr: "Unsupported attribute",
		},
		{
			name:    "wrong attribute type",
			src:     "circuit {\n  op \"PauliX\" {\n    qubit = \"zero\"\n  }\n}\n",
			wantErr: "Invalid attribute value",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(context.Background(), "test.hcl", []byte(tc.src))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bell.hcl")
	require.NoError(t, os.WriteFile(path, []byte(validSource), 0o644))

	c, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "reading circuit file")
}
