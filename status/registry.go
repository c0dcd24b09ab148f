package status

import "sync/atomic"

// Metric keys published by the simulation every tick
const (
	KeyScore        = "score"
	KeyDropsLeft    = "drops_left"
	KeyDeposits     = "deposits"
	KeyGoodAgents   = "good_agents"
	KeyBadAgents    = "bad_agents"
	KeyFrames       = "frames"
	KeyGameOver     = "game_over"
	KeyPlaneVisible = "plane_visible"
)

// Registry is the central metrics facade
// The simulation caches pointers at construction; Tick writes directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}
