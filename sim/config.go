package sim

import (
	"fmt"

	"go.uber.org/multierr"
)

// BootstrapMode selects how the first arrival batch is admitted into an empty fleet.
type BootstrapMode string

const (
	// BootstrapUnbounded provisions one server and appends the whole batch to it
	// without checking capacity. This is the default.
	BootstrapUnbounded BootstrapMode = "unbounded"
	// BootstrapCapped provisions one server and then places every unit of the
	// batch through the placement policy, so capacity always holds.
	BootstrapCapped BootstrapMode = "capped"
)

// validBootstrapModes maps accepted bootstrap mode strings.
var validBootstrapModes = map[BootstrapMode]bool{
	BootstrapUnbounded: true,
	BootstrapCapped:    true,
	"":                 true, // empty defaults to unbounded
}

// IsValidBootstrapMode returns true if mode is a recognized bootstrap mode.
func IsValidBootstrapMode(mode string) bool {
	return validBootstrapModes[BootstrapMode(mode)]
}

// SimConfig groups the parameters of one simulation run.
type SimConfig struct {
	TaskDuration   int           // ticks each arriving task occupies a slot (ttask, must be > 0)
	ServerCapacity int           // tasks per server (umax, must be > 0)
	BaseCost       int64         // cost charged per active server per tick (must be >= 0)
	Policy         string        // placement policy name, see NewPlacementPolicy
	Bootstrap      BootstrapMode // first-batch admission mode
}

// NewSimConfig creates a SimConfig with all fields explicitly specified.
func NewSimConfig(taskDuration, serverCapacity int, baseCost int64, policy string, bootstrap BootstrapMode) SimConfig {
	return SimConfig{
		TaskDuration:   taskDuration,
		ServerCapacity: serverCapacity,
		BaseCost:       baseCost,
		Policy:         policy,
		Bootstrap:      bootstrap,
	}
}

// Validate reports every invalid field at once.
func (c SimConfig) Validate() error {
	var err error
	if c.TaskDuration <= 0 {
		err = multierr.Append(err, fmt.Errorf("task duration must be positive, got %d", c.TaskDuration))
	}
	if c.ServerCapacity <= 0 {
		err = multierr.Append(err, fmt.Errorf("server capacity must be positive, got %d", c.ServerCapacity))
	}
	if c.BaseCost < 0 {
		err = multierr.Append(err, fmt.Errorf("base cost must be non-negative, got %d", c.BaseCost))
	}
	if !IsValidPlacementPolicy(c.Policy) {
		err = multierr.Append(err, fmt.Errorf("unknown placement policy %q; valid: %v", c.Policy, ValidPlacementPolicyNames()))
	}
	if !IsValidBootstrapMode(string(c.Bootstrap)) {
		err = multierr.Append(err, fmt.Errorf("unknown bootstrap mode %q; valid: unbounded, capped", c.Bootstrap))
	}
	return err
}
