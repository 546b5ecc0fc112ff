package checkin

import "sync"

// Registry maps flight numbers to flights. It is populated at startup and
// read-mostly afterwards.
type Registry struct {
	mu      sync.RWMutex
	flights map[string]*Flight
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{flights: make(map[string]*Flight)}
}

// CreateFlight builds the full seat set eagerly and registers the flight,
// replacing any previous registration under the same number.
func (r *Registry) CreateFlight(flightNo string, rows int, columns []byte) *Flight {
	f := NewFlight(flightNo, rows, columns)
	r.mu.Lock()
	r.flights[flightNo] = f
	r.mu.Unlock()
	return f
}

// Get resolves a flight number to its flight.
func (r *Registry) Get(flightNo string) (*Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.flights[flightNo]
	if !ok {
		return nil, ErrFlightNotFound
	}
	return f, nil
}
