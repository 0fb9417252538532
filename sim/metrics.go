// Tracks simulation-wide counters such as cost, fleet size and admissions.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about the simulation
// for final reporting.
type Metrics struct {
	Ticks              int64 // Number of ticks simulated
	TotalCost          int64 // Same value as Simulator.TotalCost
	ServerTicks        int64 // Sum over ticks of active servers after retirement
	PeakServers        int   // Max number of simultaneously active servers
	ServersProvisioned int   // Servers created, bootstrap included
	ServersRetired     int   // Servers removed after emptying
	TasksAdmitted      int   // Tasks placed on a server
	BootstrapOverflow  int   // Tasks admitted beyond capacity by unbounded bootstrap
	DroppedTasks       int   // Tasks for which the policy returned no server
}

// NewMetrics creates a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// MeanServers returns the average number of active servers per tick.
func (m *Metrics) MeanServers() float64 {
	if m.Ticks == 0 {
		return 0
	}
	return float64(m.ServerTicks) / float64(m.Ticks)
}

// Print writes the aggregated metrics block at the end of the simulation.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Ticks                : %d\n", m.Ticks)
	fmt.Fprintf(w, "Total Cost           : %d\n", m.TotalCost)
	fmt.Fprintf(w, "Tasks Admitted       : %d\n", m.TasksAdmitted)
	fmt.Fprintf(w, "Servers Provisioned  : %d\n", m.ServersProvisioned)
	fmt.Fprintf(w, "Servers Retired      : %d\n", m.ServersRetired)
	fmt.Fprintf(w, "Peak Servers         : %d\n", m.PeakServers)
	if m.Ticks > 0 {
		fmt.Fprintf(w, "Average Servers      : %.2f\n", m.MeanServers())
	}
	if m.BootstrapOverflow > 0 {
		fmt.Fprintf(w, "Bootstrap Overflow   : %d tasks\n", m.BootstrapOverflow)
	}
	if m.DroppedTasks > 0 {
		fmt.Fprintf(w, "Dropped Tasks        : %d\n", m.DroppedTasks)
	}
}
