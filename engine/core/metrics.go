package core

import "sync"

const regenAvgCount = 30

// RegenStats tracks drawing regeneration timings over a rolling window.
// Safe for concurrent use.
type RegenStats struct {
	mu      sync.Mutex
	timesMS [regenAvgCount]float64
	counter uint8
	avgMS   float64
	lastMS  float64
	total   uint64
}

func NewRegenStats() *RegenStats {
	return &RegenStats{}
}

// Record folds one regeneration pass, in seconds, into the statistics.
func (rs *RegenStats) Record(elapsed float64) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	ms := elapsed * 1000.0
	rs.lastMS = ms
	rs.timesMS[rs.counter] = ms

	// Refresh the average once per full window.
	if rs.counter == regenAvgCount-1 {
		sum := 0.0
		for i := 0; i < regenAvgCount; i++ {
			sum += rs.timesMS[i]
		}
		rs.avgMS = sum / float64(regenAvgCount)
	}
	rs.counter = (rs.counter + 1) % regenAvgCount

	rs.total++
}

// LastMS returns the duration of the most recent pass in milliseconds.
func (rs *RegenStats) LastMS() float64 {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.lastMS
}

// AverageMS returns the rolling average pass duration in milliseconds. It is
// zero until a full window has been recorded.
func (rs *RegenStats) AverageMS() float64 {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.avgMS
}

// Count returns how many passes have been recorded in total.
func (rs *RegenStats) Count() uint64 {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.total
}
