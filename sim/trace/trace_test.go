package trace

import (
	"testing"
)

func TestSimulationTrace_RecordPlacement_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN a placement record is recorded
	st.RecordPlacement(PlacementRecord{
		Clock:        3,
		TaskIndex:    0,
		ChosenServer: "server_1",
		Reason:       "longest-remaining (max=4)",
	})

	// THEN the trace contains one placement record with correct data
	if len(st.Placements) != 1 {
		t.Fatalf("expected 1 placement, got %d", len(st.Placements))
	}
	if st.Placements[0].ChosenServer != "server_1" {
		t.Errorf("expected server_1, got %s", st.Placements[0].ChosenServer)
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN multiple records are added
	st.RecordProvision(ProvisionRecord{Clock: 1, ServerID: "server_0", Capacity: 2})
	st.RecordProvision(ProvisionRecord{Clock: 2, ServerID: "server_1", Capacity: 2})
	st.RecordRetirement(RetirementRecord{Clock: 6, ServerID: "server_0", Lifetime: 5})

	// THEN order is preserved
	if len(st.Provisions) != 2 {
		t.Fatalf("expected 2 provisions, got %d", len(st.Provisions))
	}
	if st.Provisions[0].ServerID != "server_0" || st.Provisions[1].ServerID != "server_1" {
		t.Error("provision order not preserved")
	}
	if len(st.Retirements) != 1 || st.Retirements[0].ServerID != "server_0" {
		t.Error("retirement record mismatch")
	}
}

func TestSimulationTrace_Enabled(t *testing.T) {
	var nilTrace *SimulationTrace
	if nilTrace.Enabled() {
		t.Error("nil trace must report disabled")
	}
	if NewSimulationTrace(TraceConfig{Level: TraceLevelNone}).Enabled() {
		t.Error("level none must report disabled")
	}
	if !NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions}).Enabled() {
		t.Error("level decisions must report enabled")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"decisions", true},
		{"", true},
		{"verbose", false},
		{"DECISIONS", false},
	}
	for _, tc := range tests {
		if got := IsValidTraceLevel(tc.level); got != tc.valid {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tc.level, got, tc.valid)
		}
	}
}
