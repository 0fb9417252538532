package trace

import (
	"testing"
)

func TestSummarize_NilTrace_ReturnsZeroSummary(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalPlacements != 0 || summary.UniqueTargets != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if summary.TargetDistribution == nil {
		t.Error("TargetDistribution must be non-nil")
	}
}

func TestSummarize_CountsAndDistribution(t *testing.T) {
	// GIVEN a trace with placements across two servers and one retirement
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})
	st.RecordPlacement(PlacementRecord{Clock: 1, ChosenServer: "server_0", Bootstrap: true})
	st.RecordPlacement(PlacementRecord{Clock: 2, ChosenServer: "server_0"})
	st.RecordPlacement(PlacementRecord{Clock: 2, ChosenServer: "server_1", Provisioned: true})
	st.RecordProvision(ProvisionRecord{Clock: 1, ServerID: "server_0"})
	st.RecordProvision(ProvisionRecord{Clock: 2, ServerID: "server_1"})
	st.RecordRetirement(RetirementRecord{Clock: 5, ServerID: "server_0", Lifetime: 4})
	st.RecordRetirement(RetirementRecord{Clock: 8, ServerID: "server_1", Lifetime: 6})

	// WHEN summarized
	summary := Summarize(st)

	// THEN totals and distribution reflect the records
	if summary.TotalPlacements != 3 {
		t.Errorf("TotalPlacements = %d, want 3", summary.TotalPlacements)
	}
	if summary.BootstrapCount != 1 {
		t.Errorf("BootstrapCount = %d, want 1", summary.BootstrapCount)
	}
	if summary.ProvisionCount != 2 || summary.RetirementCount != 2 {
		t.Errorf("provisions/retirements = %d/%d, want 2/2", summary.ProvisionCount, summary.RetirementCount)
	}
	if summary.TargetDistribution["server_0"] != 2 || summary.TargetDistribution["server_1"] != 1 {
		t.Errorf("unexpected distribution %v", summary.TargetDistribution)
	}
	if summary.UniqueTargets != 2 {
		t.Errorf("UniqueTargets = %d, want 2", summary.UniqueTargets)
	}
	if summary.MeanLifetime != 5.0 || summary.MaxLifetime != 6 {
		t.Errorf("lifetime mean/max = %v/%d, want 5/6", summary.MeanLifetime, summary.MaxLifetime)
	}
}
