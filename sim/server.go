// sim/server.go
package sim

import "fmt"

// Server is a capacity-limited container of concurrently running tasks.
// Each entry of tasks is the number of ticks left for one occupant, kept in
// insertion order.
type Server struct {
	id       string
	capacity int
	tasks    []int
	// Clock value at which the server was provisioned, used for lifetime traces.
	provisionedAt int64
}

// NewServer creates an empty server. Capacity must be positive.
func NewServer(id string, capacity int) (*Server, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("server %s: capacity must be positive, got %d", id, capacity)
	}
	return &Server{id: id, capacity: capacity, tasks: make([]int, 0, capacity)}, nil
}

// ID returns the stable identifier assigned at provisioning.
func (s *Server) ID() string { return s.id }

// Capacity returns the maximum number of simultaneous tasks.
func (s *Server) Capacity() int { return s.capacity }

// Occupancy returns the number of tasks currently on the server.
func (s *Server) Occupancy() int { return len(s.tasks) }

// IsEmpty reports whether the server holds no tasks.
func (s *Server) IsEmpty() bool { return len(s.tasks) == 0 }

// Tasks returns a copy of the remaining tick counts in insertion order.
func (s *Server) Tasks() []int {
	out := make([]int, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Available reports whether the server can admit one more task.
func (s *Server) Available() bool {
	return len(s.tasks) < s.capacity
}

// Add appends a task with the given duration if the server is available.
// Returns false and leaves the server untouched when it is full.
func (s *Server) Add(duration int) bool {
	if !s.Available() {
		return false
	}
	s.tasks = append(s.tasks, duration)
	return true
}

// forceAdd appends a task without checking capacity. Only the bootstrap
// admission path uses it.
func (s *Server) forceAdd(duration int) {
	s.tasks = append(s.tasks, duration)
}

// Clear drops every task whose remaining count is exactly zero.
// Negative counts are left in place.
func (s *Server) Clear() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t != 0 {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

// Tick ages every task by one unit and purges the ones that finished.
func (s *Server) Tick() {
	for i := range s.tasks {
		s.tasks[i]--
	}
	s.Clear()
}

// MaxTask returns the longest remaining task, or 0 for an empty server.
func (s *Server) MaxTask() int {
	maxTask := 0
	for i, t := range s.tasks {
		if i == 0 || t > maxTask {
			maxTask = t
		}
	}
	return maxTask
}
