// Package sim provides the core discrete-time simulation engine for lbsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - server.go: Server capacity, task aging and the exact-zero purge
//   - placement.go: PlacementPolicy implementations and their tie-break rules
//   - simulator.go: the tick loop (age, admit, retire, charge, snapshot)
//
// # Architecture
//
// The Simulator exclusively owns a Fleet, the ordered set of active servers.
// Fleet order is creation order and placement policies depend on it. Policies
// may provision servers on the fleet; the simulator alone adds tasks and
// retires empty servers.
//
// Sub-packages:
//   - sim/workload/: input file reading, result writing, arrival generation
//   - sim/trace/: decision trace recording
//   - sim/telemetry/: Prometheus textfile export of run metrics
//
// Everything here runs on a single goroutine and is deterministic.
package sim
