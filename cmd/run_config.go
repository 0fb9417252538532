package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is the optional YAML file passed to `run --config`.
// Flags set explicitly on the command line take precedence over it.
type RunConfig struct {
	Policy     string `yaml:"policy,omitempty"`
	Bootstrap  string `yaml:"bootstrap,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty"`
	TraceLevel string `yaml:"trace_level,omitempty"`
}

// loadRunConfig parses a RunConfig with strict field checking: typos must cause errors.
// An empty file yields the zero RunConfig.
func loadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return &cfg, nil
}
