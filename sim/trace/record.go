// Package trace provides decision-trace recording for placement policy analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// CandidateScore captures one server considered during a placement scan.
type CandidateScore struct {
	ServerID  string
	MaxTask   int
	Occupancy int
	Capacity  int
	Available bool
}

// PlacementRecord captures a single placement policy decision for one arriving task.
type PlacementRecord struct {
	Clock        int64
	TaskIndex    int // position of the task inside its arrival batch
	ChosenServer string
	Reason       string
	Provisioned  bool
	Bootstrap    bool
	Candidates   []CandidateScore // servers visited by the scan, in fleet order (nil for bootstrap)
}

// ProvisionRecord captures the creation of a server.
type ProvisionRecord struct {
	Clock    int64
	ServerID string
	Capacity int
}

// RetirementRecord captures the removal of an empty server from the fleet.
type RetirementRecord struct {
	Clock    int64
	ServerID string
	Lifetime int64 // ticks between provisioning and retirement
}
