// sim/fleet.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Fleet is the ordered set of active servers. Order is creation order and is
// load-bearing: placement policies scan it front to back and provision only
// when the last server is full.
//
// Thread-safety: NOT thread-safe. Must be used from a single goroutine.
type Fleet struct {
	capacity    int
	servers     []*Server
	provisioned int
	// onProvision is invoked after every successful Provision call.
	onProvision func(*Server)
}

// NewFleet creates an empty fleet whose servers will be provisioned with the given capacity.
func NewFleet(capacity int) (*Fleet, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("fleet: server capacity must be positive, got %d", capacity)
	}
	return &Fleet{capacity: capacity, servers: make([]*Server, 0)}, nil
}

// Capacity returns the per-server capacity used when provisioning.
func (f *Fleet) Capacity() int { return f.capacity }

// Len returns the number of active servers.
func (f *Fleet) Len() int { return len(f.servers) }

// At returns the i-th active server in creation order.
func (f *Fleet) At(i int) *Server { return f.servers[i] }

// Servers returns a copy of the active server sequence.
func (f *Fleet) Servers() []*Server {
	out := make([]*Server, len(f.servers))
	copy(out, f.servers)
	return out
}

// Provisioned returns how many servers have ever been created by this fleet.
func (f *Fleet) Provisioned() int { return f.provisioned }

// Provision appends a new empty server to the end of the fleet and returns it.
func (f *Fleet) Provision() *Server {
	id := fmt.Sprintf("server_%d", f.provisioned)
	// capacity was validated by NewFleet, so NewServer cannot fail here
	s, err := NewServer(id, f.capacity)
	if err != nil {
		panic(err)
	}
	f.provisioned++
	f.servers = append(f.servers, s)
	logrus.Debugf("provisioned %s (capacity=%d, fleet=%d)", id, f.capacity, len(f.servers))
	if f.onProvision != nil {
		f.onProvision(s)
	}
	return s
}

// TickAll ages every active server by one tick.
func (f *Fleet) TickAll() {
	for _, s := range f.servers {
		s.Tick()
	}
}

// RetireEmpty removes every server left without tasks, preserving the order
// of the survivors, and returns the removed servers.
func (f *Fleet) RetireEmpty() []*Server {
	var retired []*Server
	kept := f.servers[:0]
	for _, s := range f.servers {
		if s.IsEmpty() {
			retired = append(retired, s)
			continue
		}
		kept = append(kept, s)
	}
	// clear the tail so retired servers can be collected
	for i := len(kept); i < len(f.servers); i++ {
		f.servers[i] = nil
	}
	f.servers = kept
	return retired
}

// Occupancy returns the task count of every active server in fleet order.
func (f *Fleet) Occupancy() []int {
	out := make([]int, len(f.servers))
	for i, s := range f.servers {
		out[i] = s.Occupancy()
	}
	return out
}
