package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lbsim/lbsim/sim"
)

// defaultBurstCV is used when a bursty spec leaves cv unset.
const defaultBurstCV = 2.0

// GenerateInput creates a complete Input from a GeneratorSpec.
// Deterministic given the same spec.
func GenerateInput(spec *GeneratorSpec) (*Input, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
	cv := defaultBurstCV
	if spec.CV != nil {
		cv = *spec.CV
	}
	sampler := NewArrivalSampler(spec.Process, spec.Rate, cv,
		rng.ForSubsystem(sim.SubsystemArrivals), rng.ForSubsystem(sim.SubsystemBurst))

	arrivals := make([]int, 0, spec.Ticks+spec.IdleTail)
	total := 0
	for i := 0; i < spec.Ticks; i++ {
		n := sampler.SampleCount()
		arrivals = append(arrivals, n)
		total += n
	}
	for i := 0; i < spec.IdleTail; i++ {
		arrivals = append(arrivals, 0)
	}
	logrus.Infof("Generated %d arrival batches (%d tasks, process=%s, rate=%.2f)",
		len(arrivals), total, spec.Process, spec.Rate)

	return &Input{
		TaskDuration:   spec.TaskDuration,
		ServerCapacity: spec.ServerCapacity,
		Arrivals:       arrivals,
	}, nil
}
