package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalPlacements    int
	BootstrapCount     int
	ProvisionCount     int
	RetirementCount    int
	MeanLifetime       float64
	MaxLifetime        int64
	UniqueTargets      int
	TargetDistribution map[string]int // server ID → count of tasks placed
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		TargetDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalPlacements = len(st.Placements)
	for _, p := range st.Placements {
		if p.Bootstrap {
			summary.BootstrapCount++
		}
		if p.ChosenServer != "" {
			summary.TargetDistribution[p.ChosenServer]++
		}
	}
	summary.ProvisionCount = len(st.Provisions)
	summary.RetirementCount = len(st.Retirements)

	if len(st.Retirements) > 0 {
		var total int64
		for _, r := range st.Retirements {
			total += r.Lifetime
			if r.Lifetime > summary.MaxLifetime {
				summary.MaxLifetime = r.Lifetime
			}
		}
		summary.MeanLifetime = float64(total) / float64(len(st.Retirements))
	}

	summary.UniqueTargets = len(summary.TargetDistribution)

	return summary
}
