package clock

import (
	"sync"
	"time"
)

// System derives the ledger height from wall-clock seconds. Heights only
// need to be monotonically non-decreasing, so unix seconds are enough for
// production wiring.
type System struct{}

func (System) Height() uint64 {
	return uint64(time.Now().Unix())
}

// Manual is a settable height source for tests and local development.
type Manual struct {
	mu     sync.Mutex
	height uint64
}

func NewManual(start uint64) *Manual {
	return &Manual{height: start}
}

func (m *Manual) Height() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.height
}

func (m *Manual) Advance(delta uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.height += delta
}

func (m *Manual) Set(height uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if height > m.height {
		m.height = height
	}
}
