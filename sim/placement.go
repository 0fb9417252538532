// sim/placement.go
package sim

import "fmt"

// PlacementDecision encapsulates the outcome of one placement call.
type PlacementDecision struct {
	// Target is the server that should receive the task; nil when no server
	// could be selected.
	Target      *Server
	Provisioned bool   // true if the call appended a new server to the fleet
	Reason      string // human-readable explanation
}

// PlacementPolicy selects the server that receives the next arriving task.
// Implementations may provision new servers on the fleet but never add tasks
// themselves; the caller admits the task into the returned Target.
type PlacementPolicy interface {
	Place(f *Fleet) PlacementDecision
}

// LongestRemaining is the default placement policy.
//
// It scans the fleet in order. Among available servers it keeps the first one
// and then switches to any later server whose longest remaining task is larger
// than the current candidate's, or which is empty. When the last server of the
// fleet is full, a new server is provisioned; the scan runs over the live fleet,
// so the new server is visited later in the same call and becomes a candidate.
// At most one server is provisioned per call.
type LongestRemaining struct{}

// prefers reports whether s should replace the current candidate.
func (lr *LongestRemaining) prefers(s, candidate *Server) bool {
	return s.MaxTask() > candidate.MaxTask() || s.MaxTask() == 0
}

// Place implements PlacementPolicy for LongestRemaining.
func (lr *LongestRemaining) Place(f *Fleet) PlacementDecision {
	var candidate *Server
	provisioned := false
	for i := 0; i < f.Len(); i++ {
		s := f.At(i)
		if s.Available() {
			if candidate == nil || lr.prefers(s, candidate) {
				candidate = s
			}
		} else if i == f.Len()-1 && !provisioned {
			f.Provision()
			provisioned = true
		}
	}
	if candidate == nil {
		return PlacementDecision{Provisioned: provisioned, Reason: "longest-remaining: no candidate"}
	}
	return PlacementDecision{
		Target:      candidate,
		Provisioned: provisioned,
		Reason:      fmt.Sprintf("longest-remaining (max=%d)", candidate.MaxTask()),
	}
}

// FirstFit places the task on the first available server in fleet order,
// provisioning a new one when every server is full.
type FirstFit struct{}

// Place implements PlacementPolicy for FirstFit.
func (ff *FirstFit) Place(f *Fleet) PlacementDecision {
	for i := 0; i < f.Len(); i++ {
		s := f.At(i)
		if s.Available() {
			return PlacementDecision{Target: s, Reason: fmt.Sprintf("first-fit[%d]", i)}
		}
	}
	return provisionFallback(f, "first-fit")
}

// LeastLoaded places the task on the available server with the fewest tasks.
// Ties are broken by first occurrence in fleet order.
type LeastLoaded struct{}

// Place implements PlacementPolicy for LeastLoaded.
func (ll *LeastLoaded) Place(f *Fleet) PlacementDecision {
	var target *Server
	for i := 0; i < f.Len(); i++ {
		s := f.At(i)
		if !s.Available() {
			continue
		}
		if target == nil || s.Occupancy() < target.Occupancy() {
			target = s
		}
	}
	if target == nil {
		return provisionFallback(f, "least-loaded")
	}
	return PlacementDecision{
		Target: target,
		Reason: fmt.Sprintf("least-loaded (load=%d)", target.Occupancy()),
	}
}

// provisionFallback provisions a server for policies that return the new server directly.
// Empty fleets are left alone, matching LongestRemaining; the simulator
// bootstraps the first server itself.
func provisionFallback(f *Fleet, name string) PlacementDecision {
	if f.Len() == 0 {
		return PlacementDecision{Reason: name + ": no candidate"}
	}
	s := f.Provision()
	return PlacementDecision{Target: s, Provisioned: true, Reason: name + ": provisioned " + s.ID()}
}

// validPlacementPolicies maps accepted placement policy names.
var validPlacementPolicies = map[string]bool{
	"":                  true, // empty defaults to longest-remaining
	"longest-remaining": true,
	"first-fit":         true,
	"least-loaded":      true,
}

// IsValidPlacementPolicy returns true if name is a recognized placement policy.
func IsValidPlacementPolicy(name string) bool {
	return validPlacementPolicies[name]
}

// ValidPlacementPolicyNames returns the accepted names for CLI help text.
func ValidPlacementPolicyNames() []string {
	return []string{"longest-remaining", "first-fit", "least-loaded"}
}

// NewPlacementPolicy creates a placement policy by name.
// Empty string defaults to longest-remaining.
// Panics on unrecognized names.
func NewPlacementPolicy(name string) PlacementPolicy {
	if !IsValidPlacementPolicy(name) {
		panic(fmt.Sprintf("unknown placement policy %q", name))
	}
	switch name {
	case "", "longest-remaining":
		return &LongestRemaining{}
	case "first-fit":
		return &FirstFit{}
	case "least-loaded":
		return &LeastLoaded{}
	default:
		panic(fmt.Sprintf("unhandled placement policy %q", name))
	}
}
