package feedlib

import (
	"sync"
	"time"
)

// recordingMetrics records observed outcomes
type recordingMetrics struct {
	mu   sync.Mutex
	seen []string
}

func (m *recordingMetrics) ObserveLoad(outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = append(m.seen, outcome)
}

func (m *recordingMetrics) outcomes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.seen...)
}
