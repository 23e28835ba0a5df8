package profiler

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// fixedRand returns value clamped into [0, n) for every draw.
type fixedRand struct {
	value int
}

func (r fixedRand) IntN(n int) int {
	if r.value >= n {
		return n - 1
	}
	return r.value
}

// maxRand always draws the top of the range.
type maxRand struct{}

func (maxRand) IntN(n int) int { return n - 1 }

type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 15, 10, 30, 0, 123_000_000, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) Slept() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.slept...)
}

func seeded(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newTestEngine(r RandomSource) (*Engine, *fakeClock) {
	clock := newFakeClock()
	return NewEngine(Options{Rand: r, Clock: clock, SimulateLatency: true}), clock
}

func ptr[T any](v T) *T { return &v }
