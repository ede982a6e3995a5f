package stats

import (
	"sort"
	"sync"
	"time"
)

// OperationCount tracks outcomes for a single operation
type OperationCount struct {
	Operation string `json:"operation"`
	Total     int    `json:"total"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

// Snapshot is a point in time copy of the counters
type Snapshot struct {
	Since      string           `json:"since"`
	Operations []OperationCount `json:"operations"`
}

// Stats holds per-operation counters since process start
type Stats struct {
	mu     sync.RWMutex
	since  time.Time
	counts map[string]*OperationCount
}

var stats = New()

// New returns empty counters starting now
func New() *Stats {
	return &Stats{
		since:  time.Now(),
		counts: make(map[string]*OperationCount),
	}
}

// GetStatsInstance returns the process wide counters
func GetStatsInstance() *Stats {
	return stats
}

// Record counts one call of operation
func (s *Stats) Record(operation string, succeeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counts[operation]
	if !ok {
		c = &OperationCount{Operation: operation}
		s.counts[operation] = c
	}
	c.Total++
	if succeeded {
		c.Succeeded++
	} else {
		c.Failed++
	}
}

// Snapshot returns a copy of the counters sorted by operation name
func (s *Stats) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Since:      s.since.Format(time.RFC3339),
		Operations: make([]OperationCount, 0, len(s.counts)),
	}
	for _, c := range s.counts {
		snap.Operations = append(snap.Operations, *c)
	}
	sort.Slice(snap.Operations, func(i, j int) bool {
		return snap.Operations[i].Operation < snap.Operations[j].Operation
	})
	return snap
}

// Reset clears every counter
func (s *Stats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.since = time.Now()
	s.counts = make(map[string]*OperationCount)
}
