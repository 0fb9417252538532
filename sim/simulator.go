// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lbsim/lbsim/sim/trace"
)

// Result is the observable outcome of a finished simulation.
type Result struct {
	// Snapshots holds one entry per tick: the task count of every active
	// server, in fleet order, taken after admission and retirement.
	Snapshots [][]int
	TotalCost int64
}

// Simulator is the core object that holds simulation time, the fleet and the arrival queue.
//
// Thread-safety: NOT thread-safe. Must be used from a single goroutine.
type Simulator struct {
	Clock     int64
	TotalCost int64
	// Output is the append-only sequence of per-tick occupancy snapshots.
	Output  [][]int
	Metrics *Metrics
	// Trace collects decision records when non-nil and enabled.
	Trace *trace.SimulationTrace

	config SimConfig
	fleet  *Fleet
	policy PlacementPolicy
	// queue holds pending arrival counts, one consumed per tick (FIFO).
	queue []int
}

// NewSimulator creates a simulator for the given configuration and arrival queue.
// The queue is copied; every entry must be non-negative.
func NewSimulator(cfg SimConfig, queue []int) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	for i, n := range queue {
		if n < 0 {
			return nil, fmt.Errorf("arrival queue entry %d is negative (%d)", i, n)
		}
	}
	fleet, err := NewFleet(cfg.ServerCapacity)
	if err != nil {
		return nil, err
	}
	s := &Simulator{
		Output:  make([][]int, 0, len(queue)),
		Metrics: NewMetrics(),
		config:  cfg,
		fleet:   fleet,
		policy:  NewPlacementPolicy(cfg.Policy),
		queue:   append([]int(nil), queue...),
	}
	fleet.onProvision = s.recordProvision
	return s, nil
}

// Config returns the configuration the simulator was built with.
func (sim *Simulator) Config() SimConfig { return sim.config }

// Fleet returns the simulator's fleet for read-only inspection.
func (sim *Simulator) Fleet() *Fleet { return sim.fleet }

// Pending returns the number of arrival batches not yet consumed.
func (sim *Simulator) Pending() int { return len(sim.queue) }

// Done reports whether the queue is drained and no server is active.
func (sim *Simulator) Done() bool {
	return len(sim.queue) == 0 && sim.fleet.Len() == 0
}

// Run steps the simulation until it is done.
func (sim *Simulator) Run() {
	logrus.Infof("Starting simulation: ttask=%d umax=%d base_cost=%d policy=%q batches=%d",
		sim.config.TaskDuration, sim.config.ServerCapacity, sim.config.BaseCost, sim.policyName(), len(sim.queue))
	for sim.Step() {
	}
	logrus.Infof("[tick %07d] Simulation ended, total cost %d", sim.Clock, sim.TotalCost)
}

// Step runs one tick and reports whether another tick is needed.
// Calling Step on a finished simulator does nothing and returns false.
func (sim *Simulator) Step() bool {
	if sim.Done() {
		return false
	}
	sim.Clock++
	sim.fleet.TickAll()

	if len(sim.queue) > 0 {
		n := sim.queue[0]
		sim.queue = sim.queue[1:]
		sim.admitBatch(n)
	}

	for _, s := range sim.fleet.RetireEmpty() {
		sim.Metrics.ServersRetired++
		logrus.Debugf("[tick %07d] retired %s", sim.Clock, s.ID())
		if sim.Trace.Enabled() {
			sim.Trace.RecordRetirement(trace.RetirementRecord{
				Clock:    sim.Clock,
				ServerID: s.ID(),
				Lifetime: sim.Clock - s.provisionedAt,
			})
		}
	}

	active := sim.fleet.Len()
	sim.TotalCost += int64(active) * sim.config.BaseCost
	snapshot := sim.fleet.Occupancy()
	sim.Output = append(sim.Output, snapshot)

	sim.Metrics.Ticks = sim.Clock
	sim.Metrics.TotalCost = sim.TotalCost
	sim.Metrics.ServerTicks += int64(active)
	if active > sim.Metrics.PeakServers {
		sim.Metrics.PeakServers = active
	}
	logrus.Debugf("[tick %07d] servers=%v total_cost=%d", sim.Clock, snapshot, sim.TotalCost)

	return !sim.Done()
}

// Result returns a copy of the snapshots and the total cost so far.
func (sim *Simulator) Result() Result {
	snapshots := make([][]int, len(sim.Output))
	for i, snap := range sim.Output {
		snapshots[i] = append([]int{}, snap...)
	}
	return Result{Snapshots: snapshots, TotalCost: sim.TotalCost}
}

// admitBatch admits n arriving tasks. An empty fleet is bootstrapped first;
// every other unit goes through the placement policy one at a time.
func (sim *Simulator) admitBatch(n int) {
	if n <= 0 {
		return
	}
	start := 0
	if sim.fleet.Len() == 0 {
		start = sim.bootstrap(n)
	}
	for i := start; i < n; i++ {
		sim.placeOne(i)
	}
}

// bootstrap provisions the first server of an empty fleet and returns how many
// units of the batch it already admitted.
func (sim *Simulator) bootstrap(n int) int {
	s := sim.fleet.Provision()
	if sim.config.Bootstrap == BootstrapCapped {
		return 0
	}
	for i := 0; i < n; i++ {
		s.forceAdd(sim.config.TaskDuration)
		sim.recordPlacement(i, s, "bootstrap", i == 0, true, nil)
	}
	sim.Metrics.TasksAdmitted += n
	if over := n - s.Capacity(); over > 0 {
		sim.Metrics.BootstrapOverflow += over
		logrus.Warnf("[tick %07d] bootstrap admitted %d tasks into %s with capacity %d",
			sim.Clock, n, s.ID(), s.Capacity())
	}
	return n
}

// placeOne places a single task through the placement policy.
func (sim *Simulator) placeOne(index int) {
	var candidates []trace.CandidateScore
	if sim.Trace.Enabled() {
		candidates = candidateScores(sim.fleet)
	}
	decision := sim.policy.Place(sim.fleet)
	if decision.Target == nil || !decision.Target.Add(sim.config.TaskDuration) {
		sim.Metrics.DroppedTasks++
		logrus.Warnf("[tick %07d] task %d dropped: %s", sim.Clock, index, decision.Reason)
		sim.recordPlacement(index, nil, decision.Reason, decision.Provisioned, false, candidates)
		return
	}
	sim.Metrics.TasksAdmitted++
	sim.recordPlacement(index, decision.Target, decision.Reason, decision.Provisioned, false, candidates)
}

func (sim *Simulator) recordPlacement(index int, target *Server, reason string, provisioned, bootstrap bool, candidates []trace.CandidateScore) {
	if !sim.Trace.Enabled() {
		return
	}
	chosen := ""
	if target != nil {
		chosen = target.ID()
	}
	sim.Trace.RecordPlacement(trace.PlacementRecord{
		Clock:        sim.Clock,
		TaskIndex:    index,
		ChosenServer: chosen,
		Reason:       reason,
		Provisioned:  provisioned,
		Bootstrap:    bootstrap,
		Candidates:   candidates,
	})
}

func (sim *Simulator) recordProvision(s *Server) {
	s.provisionedAt = sim.Clock
	sim.Metrics.ServersProvisioned++
	if sim.Trace.Enabled() {
		sim.Trace.RecordProvision(trace.ProvisionRecord{
			Clock:    sim.Clock,
			ServerID: s.ID(),
			Capacity: s.Capacity(),
		})
	}
}

func (sim *Simulator) policyName() string {
	if sim.config.Policy == "" {
		return "longest-remaining"
	}
	return sim.config.Policy
}

// candidateScores captures the fleet state a placement scan starts from.
func candidateScores(f *Fleet) []trace.CandidateScore {
	out := make([]trace.CandidateScore, f.Len())
	for i := 0; i < f.Len(); i++ {
		s := f.At(i)
		out[i] = trace.CandidateScore{
			ServerID:  s.ID(),
			MaxTask:   s.MaxTask(),
			Occupancy: s.Occupancy(),
			Capacity:  s.Capacity(),
			Available: s.Available(),
		}
	}
	return out
}
