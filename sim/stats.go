package sim

import (
	"sync"
	"time"

	"github.com/montanaflynn/stats"
)

// StatsHook is a Hook, meant to be registered on EventType Stop, that
// accumulates each party's total elapsed time across repeated Simulate
// calls against fresh managers sharing this hook, and summarizes it with
// basic descriptive statistics.
type StatsHook struct {
	mu      sync.Mutex
	samples [][]float64 // per party, elapsed times in milliseconds
}

// NewStatsHook creates a StatsHook for a simulation of numParties
// parties.
func NewStatsHook(numParties int) *StatsHook {
	return &StatsHook{samples: make([][]float64, numParties)}
}

// Run implements Hook: it records the triggering party's current elapsed
// time as one sample.
func (h *StatsHook) Run(partyID int, ctx SimulationContext) {
	elapsed := ctx.CurrentTimeOf(partyID)
	ms := float64(elapsed) / float64(time.Millisecond)
	h.mu.Lock()
	h.samples[partyID] = append(h.samples[partyID], ms)
	h.mu.Unlock()
}

// Summary holds descriptive statistics over a party's accumulated
// samples, in milliseconds.
type Summary struct {
	Mean   float64
	StdDev float64
	Median float64
}

// Summary computes descriptive statistics over the samples recorded so
// far for partyID.
func (h *StatsHook) Summary(partyID int) (Summary, error) {
	h.mu.Lock()
	data := append([]float64(nil), h.samples[partyID]...)
	h.mu.Unlock()

	series := stats.Float64Data(data)
	mean, err := series.Mean()
	if err != nil {
		return Summary{}, err
	}
	sd, err := series.StandardDeviation()
	if err != nil {
		return Summary{}, err
	}
	median, err := series.Median()
	if err != nil {
		return Summary{}, err
	}
	return Summary{Mean: mean, StdDev: sd, Median: median}, nil
}
