package service

import (
	"context"
	"sync"

	"github.com/cx-tal-miterani/airport-checkin-system/internal/checkin"
)

// SeatResult carries the outcome of an asynchronous seat request.
type SeatResult struct {
	Assignment *SeatAssignment
	Err        error
}

// BagResult carries the outcome of an asynchronous baggage request.
type BagResult struct {
	Accepted bool
	Err      error
}

// Dispatcher runs check-in requests on a bounded worker pool. Each request,
// including its retry and backoff sleeps, occupies one worker from submit to
// completion; results are delivered on per-request channels so callers may
// block or fan out as they choose.
type Dispatcher struct {
	svc   CheckInService
	tasks chan func()
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// DefaultPoolSize matches the kiosk bank the original deployment served.
const DefaultPoolSize = 8

// NewDispatcher starts size workers over the given service.
func NewDispatcher(svc CheckInService, size int) *Dispatcher {
	if size <= 0 {
		size = DefaultPoolSize
	}
	d := &Dispatcher{
		svc:   svc,
		tasks: make(chan func()),
	}
	d.wg.Add(size)
	for i := 0; i < size; i++ {
		go d.worker()
	}
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for task := range d.tasks {
		task()
	}
}

// SubmitSeat queues a seat-selection request and returns a channel that
// receives exactly one result.
func (d *Dispatcher) SubmitSeat(ctx context.Context, flightNo string, p checkin.Passenger, preferredSeatID, kioskID string) <-chan SeatResult {
	out := make(chan SeatResult, 1)
	d.tasks <- func() {
		a, err := d.svc.SelectSeat(ctx, flightNo, p, preferredSeatID, kioskID)
		out <- SeatResult{Assignment: a, Err: err}
	}
	return out
}

// SubmitBag queues a baggage request and returns a channel that receives
// exactly one result.
func (d *Dispatcher) SubmitBag(ctx context.Context, flightNo string, p checkin.Passenger, bagTag string, weightKg float64, kioskID string) <-chan BagResult {
	out := make(chan BagResult, 1)
	d.tasks <- func() {
		ok, err := d.svc.CheckInBag(ctx, flightNo, p, bagTag, weightKg, kioskID)
		out <- BagResult{Accepted: ok, Err: err}
	}
	return out
}

// Close stops intake and waits for in-flight requests to finish. Submitting
// after Close panics.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.tasks)
	})
	d.wg.Wait()
}
