package checkin

import (
	"fmt"
	"sync/atomic"
)

// Seat is a single occupancy slot on a flight. Occupancy transitions at
// most once, from free to a fixed booking reference; there is no release.
type Seat struct {
	ID       string
	occupant atomic.Pointer[string]
}

// NewSeat creates a free seat with the given ID.
func NewSeat(id string) *Seat {
	return &Seat{ID: id}
}

// TryAssign claims the seat for bookingRef. It succeeds iff the seat is
// currently free; the check and the assignment are one compare-and-set, so
// among any number of concurrent callers exactly one succeeds.
func (s *Seat) TryAssign(bookingRef string) bool {
	return s.occupant.CompareAndSwap(nil, &bookingRef)
}

// Occupant returns the occupying booking reference, if any.
func (s *Seat) Occupant() (string, bool) {
	p := s.occupant.Load()
	if p == nil {
		return "", false
	}
	return *p, true
}

// Free reports whether the seat is unoccupied.
func (s *Seat) Free() bool {
	return s.occupant.Load() == nil
}

// SeatID renders the canonical seat identifier for a row and column letter.
func SeatID(row int, col byte) string {
	return fmt.Sprintf("%d%c", row, col)
}

// ParseSeatID splits an identifier like "12C" into row and column letter.
func ParseSeatID(id string) (row int, col byte, err error) {
	i := 0
	for i < len(id) && id[i] >= '0' && id[i] <= '9' {
		row = row*10 + int(id[i]-'0')
		i++
	}
	if i == 0 || i != len(id)-1 {
		return 0, 0, fmt.Errorf("malformed seat id %q", id)
	}
	if row < 1 {
		row = 1
	}
	return row, id[i], nil
}
