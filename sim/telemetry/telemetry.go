// Package telemetry exports the metrics of a finished simulation in the
// Prometheus text format, for node-exporter textfile collection.
package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lbsim/lbsim/sim"
)

const namespace = "lbsim"

// NewRegistry builds a registry holding one sample per simulation metric,
// labelled with the placement policy that produced it.
func NewRegistry(policy string, m *sim.Metrics) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{"policy": policy}

	gauges := []struct {
		name  string
		help  string
		value float64
	}{
		{"total_cost", "Total operating cost accrued over the simulation.", float64(m.TotalCost)},
		{"ticks_total", "Number of simulated ticks.", float64(m.Ticks)},
		{"server_ticks_total", "Sum over ticks of active servers.", float64(m.ServerTicks)},
		{"peak_servers", "Maximum number of simultaneously active servers.", float64(m.PeakServers)},
		{"mean_servers", "Average number of active servers per tick.", m.MeanServers()},
		{"servers_provisioned_total", "Servers created during the simulation.", float64(m.ServersProvisioned)},
		{"servers_retired_total", "Servers removed after emptying.", float64(m.ServersRetired)},
		{"tasks_admitted_total", "Tasks placed on a server.", float64(m.TasksAdmitted)},
		{"tasks_dropped_total", "Tasks for which no server could be selected.", float64(m.DroppedTasks)},
		{"bootstrap_overflow_tasks", "Tasks admitted beyond capacity by unbounded bootstrap.", float64(m.BootstrapOverflow)},
	}
	for _, g := range gauges {
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        g.name,
			Help:        g.help,
			ConstLabels: labels,
		})
		gauge.Set(g.value)
		if err := reg.Register(gauge); err != nil {
			return nil, fmt.Errorf("registering %s: %w", g.name, err)
		}
	}
	return reg, nil
}

// WriteTextfile writes every metric in reg to path in the Prometheus text format.
func WriteTextfile(path string, reg *prometheus.Registry) error {
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
