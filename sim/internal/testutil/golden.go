// Package testutil provides shared test infrastructure for the lbsim simulator.
// It holds the golden scenario dataset used by sim/ and cmd/ tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// ScenarioDataset represents the structure of testdata/scenarios.json.
type ScenarioDataset struct {
	Scenarios []Scenario `json:"scenarios"`
}

// Scenario is one end-to-end simulation with its expected output.
type Scenario struct {
	Name      string  `json:"name"`
	TTask     int     `json:"ttask"`
	UMax      int     `json:"umax"`
	Queue     []int   `json:"queue"`
	BaseCost  int64   `json:"base_cost"`
	Snapshots [][]int `json:"snapshots"`
	TotalCost int64   `json:"total_cost"`
}

// TestdataPath returns the absolute path of a file under the repo root testdata/.
func TestdataPath(t *testing.T, name string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", name)
}

// LoadScenarios loads the golden scenario dataset from the testdata directory.
func LoadScenarios(t *testing.T) *ScenarioDataset {
	t.Helper()

	data, err := os.ReadFile(TestdataPath(t, "scenarios.json"))
	if err != nil {
		t.Fatalf("Failed to read scenario dataset: %v", err)
	}

	var dataset ScenarioDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse scenario dataset: %v", err)
	}
	if len(dataset.Scenarios) == 0 {
		t.Fatal("scenario dataset is empty")
	}
	return &dataset
}
