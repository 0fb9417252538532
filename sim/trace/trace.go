package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures all placement, provisioning and retirement decisions.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects decision records during a simulation.
type SimulationTrace struct {
	Config      TraceConfig
	Placements  []PlacementRecord
	Provisions  []ProvisionRecord
	Retirements []RetirementRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Placements:  make([]PlacementRecord, 0),
		Provisions:  make([]ProvisionRecord, 0),
		Retirements: make([]RetirementRecord, 0),
	}
}

// Enabled reports whether records should be collected.
// Safe on a nil trace.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelDecisions
}

// RecordPlacement appends a placement decision record.
func (st *SimulationTrace) RecordPlacement(record PlacementRecord) {
	st.Placements = append(st.Placements, record)
}

// RecordProvision appends a provisioning record.
func (st *SimulationTrace) RecordProvision(record ProvisionRecord) {
	st.Provisions = append(st.Provisions, record)
}

// RecordRetirement appends a retirement record.
func (st *SimulationTrace) RecordRetirement(record RetirementRecord) {
	st.Retirements = append(st.Retirements, record)
}
