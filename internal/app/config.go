package app

import "errors"

// Output modes supported by the qdag binary.
const (
	OutputBlocks = "blocks"
	OutputOrder  = "order"
	OutputReport = "report"
)

// Config holds all the necessary configuration for one qdag invocation.
type Config struct {
	CircuitPath string // hcl circuit file

	Output    string
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CircuitPath == "" {
		return nil, errors.New("CircuitPath is a required configuration field and cannot be empty")
	}
	switch cfg.Output {
	case OutputBlocks, OutputOrder, OutputReport:
	default:
		return nil, errors.New("Output must be one of 'blocks', 'order' or 'report'")
	}
	return &cfg, nil
}
