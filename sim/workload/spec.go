package workload

import (
	"bytes"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// GeneratorSpec configures synthetic arrival queue generation.
// Loaded from YAML via LoadGeneratorSpec(path).
type GeneratorSpec struct {
	Seed           int64    `yaml:"seed"`
	Ticks          int      `yaml:"ticks"`               // number of arrival batches to generate
	Rate           float64  `yaml:"rate"`                // mean arrivals per tick
	Process        string   `yaml:"process"`             // "poisson" or "bursty"
	CV             *float64 `yaml:"cv,omitempty"`        // coefficient of variation of the bursty rate (default 2)
	TaskDuration   int      `yaml:"ttask"`               // written to line 1 of the input file
	ServerCapacity int      `yaml:"umax"`                // written to line 2 of the input file
	IdleTail       int      `yaml:"idle_tail,omitempty"` // zero batches appended after the generated ones
}

var validProcesses = map[string]bool{
	"poisson": true,
	"bursty":  true,
}

// LoadGeneratorSpec loads a GeneratorSpec from a YAML file.
// Unknown fields are rejected.
func LoadGeneratorSpec(path string) (*GeneratorSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading generator spec: %w", err)
	}
	var spec GeneratorSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing generator spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid and reports every problem.
func (s *GeneratorSpec) Validate() error {
	var err error
	if s.Ticks <= 0 {
		err = multierr.Append(err, fmt.Errorf("ticks must be positive, got %d", s.Ticks))
	}
	if s.Rate < 0 {
		err = multierr.Append(err, fmt.Errorf("rate must be non-negative, got %f", s.Rate))
	}
	if !validProcesses[s.Process] {
		err = multierr.Append(err, fmt.Errorf("unknown process %q; valid: poisson, bursty", s.Process))
	}
	if s.CV != nil && *s.CV <= 0 {
		err = multierr.Append(err, fmt.Errorf("cv must be positive, got %f", *s.CV))
	}
	if s.TaskDuration <= 0 {
		err = multierr.Append(err, fmt.Errorf("ttask must be positive, got %d", s.TaskDuration))
	}
	if s.ServerCapacity <= 0 {
		err = multierr.Append(err, fmt.Errorf("umax must be positive, got %d", s.ServerCapacity))
	}
	if s.IdleTail < 0 {
		err = multierr.Append(err, fmt.Errorf("idle_tail must be non-negative, got %d", s.IdleTail))
	}
	return err
}
