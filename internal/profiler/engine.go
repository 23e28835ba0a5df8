package profiler

import (
	"context"
	"math/rand/v2"
	"time"
)

const (
	AnalysisLatency = 1500 * time.Millisecond
	BudgetLatency   = 2100 * time.Millisecond
)

// RandomSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Clock supplies wall time and the simulated processing delay.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration)
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Sleep waits for d or until ctx is done, whichever comes first.
func (systemClock) Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

type Options struct {
	Rand            RandomSource
	Clock           Clock
	SimulateLatency bool
}

// Engine runs the segmentation and budget pipelines. It holds no per-request
// state and is safe for concurrent use as long as its RandomSource is.
type Engine struct {
	rand            RandomSource
	clock           Clock
	simulateLatency bool
}

func NewEngine(opts Options) *Engine {
	e := &Engine{
		rand:            opts.Rand,
		clock:           opts.Clock,
		simulateLatency: opts.SimulateLatency,
	}
	if e.rand == nil {
		e.rand = globalRand{}
	}
	if e.clock == nil {
		e.clock = systemClock{}
	}
	return e
}

// Now exposes the engine clock so envelopes share the same time source.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// RandomIn returns an integer in [lo, lo+span).
func (e *Engine) RandomIn(lo, span int) int {
	return lo + e.rand.IntN(span)
}

func (e *Engine) pick(options []string) string {
	return options[e.rand.IntN(len(options))]
}

func (e *Engine) wait(ctx context.Context, d time.Duration) {
	if !e.simulateLatency {
		return
	}
	e.clock.Sleep(ctx, d)
}
