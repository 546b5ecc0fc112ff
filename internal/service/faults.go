package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

// ErrTransientIO is the simulated unreliable-dependency failure. It is the
// only error the retry loop treats as retryable.
var ErrTransientIO = errors.New("transient I/O failure")

// Injector models the unreliable link between a kiosk and the backend.
// Simulate runs before each attempt of a wrapped operation; it may sleep to
// model round-trip latency and may fail with ErrTransientIO.
type Injector interface {
	Simulate(ctx context.Context) error
}

// RandomInjector sleeps a uniform duration in [MinLatency, MaxLatency) and
// fails with probability FailureRate.
type RandomInjector struct {
	MinLatency  time.Duration
	MaxLatency  time.Duration
	FailureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomInjector seeds an injector with its own random source.
func NewRandomInjector(minLatency, maxLatency time.Duration, failureRate float64) *RandomInjector {
	return &RandomInjector{
		MinLatency:  minLatency,
		MaxLatency:  maxLatency,
		FailureRate: failureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *RandomInjector) Simulate(ctx context.Context) error {
	r.mu.Lock()
	delay := r.MinLatency
	if span := r.MaxLatency - r.MinLatency; span > 0 {
		delay += time.Duration(r.rng.Int63n(int64(span)))
	}
	fail := r.rng.Float64() < r.FailureRate
	r.mu.Unlock()

	if err := sleep(ctx, delay); err != nil {
		return err
	}
	if fail {
		return ErrTransientIO
	}
	return nil
}

// NoopInjector performs no latency and never fails.
type NoopInjector struct{}

func (NoopInjector) Simulate(context.Context) error { return nil }

// ScriptInjector replays a fixed error sequence, one entry per attempt, so
// tests can force deterministic failure patterns. After the script is
// exhausted every call succeeds.
type ScriptInjector struct {
	mu     sync.Mutex
	script []error
	calls  int
}

// NewScriptInjector builds an injector that returns the given errors in
// order; nil entries are successful attempts.
func NewScriptInjector(script ...error) *ScriptInjector {
	return &ScriptInjector{script: script}
}

func (s *ScriptInjector) Simulate(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= len(s.script) {
		return s.script[s.calls-1]
	}
	return nil
}

// Calls reports how many attempts reached the injector.
func (s *ScriptInjector) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
