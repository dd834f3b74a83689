package ledger

import (
	"fmt"
	"sync"
	"time"
)

// NumberGenerator issues ORD-<epoch millis> order numbers that never repeat
// within a process, even when two orders arrive in the same millisecond.
type NumberGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewNumberGenerator(now func() time.Time) *NumberGenerator {
	if now == nil {
		now = time.Now
	}
	return &NumberGenerator{now: now}
}

func (g *NumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("ORD-%d", ms)
}
