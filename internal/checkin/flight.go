package checkin

import "fmt"

// DefaultColumns is the standard single-aisle column layout.
var DefaultColumns = []byte{'A', 'B', 'C', 'D', 'E', 'F'}

// Flight owns a fixed seat map and the flight's baggage ledger. The seat
// set never changes after construction, so the map itself needs no locking;
// all mutation happens inside the individual seats.
type Flight struct {
	FlightNo string
	Baggage  *BaggageLedger

	seats   map[string]*Seat
	rows    int
	columns []byte
}

// NewFlight builds a flight with rows × len(columns) free seats.
func NewFlight(flightNo string, rows int, columns []byte) *Flight {
	f := &Flight{
		FlightNo: flightNo,
		Baggage:  NewBaggageLedger(),
		seats:    make(map[string]*Seat, rows*len(columns)),
		rows:     rows,
		columns:  append([]byte(nil), columns...),
	}
	for r := 1; r <= rows; r++ {
		for _, c := range f.columns {
			id := SeatID(r, c)
			f.seats[id] = NewSeat(id)
		}
	}
	return f
}

// Seat looks up a seat by ID.
func (f *Flight) Seat(id string) (*Seat, bool) {
	s, ok := f.seats[id]
	return s, ok
}

// AssignSeatOrNearest claims the preferred seat, or failing that the first
// claimable seat in the nearest-candidate order. ErrNoSeatAvailable means
// every candidate was missing or already occupied.
func (f *Flight) AssignSeatOrNearest(preferredSeatID, bookingRef string) (*Seat, error) {
	if s, ok := f.seats[preferredSeatID]; ok && s.TryAssign(bookingRef) {
		return s, nil
	}
	cands, err := f.nearestCandidates(preferredSeatID)
	if err != nil {
		return nil, err
	}
	for _, id := range cands {
		if s, ok := f.seats[id]; ok && s.TryAssign(bookingRef) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w near %s on %s", ErrNoSeatAvailable, preferredSeatID, f.FlightNo)
}

// nearestCandidates generates the ordered fallback list around a preferred
// seat: the preferred row swept by column offsets -1,+1,-2,+2,-3,+3, then
// rows -1,+1,-2,+2 (rows below 1 skipped entirely), each contributing the
// preferred column followed by the same column sweep. Candidates may name
// seats the flight does not have; callers skip those on lookup.
func (f *Flight) nearestCandidates(preferredSeatID string) ([]string, error) {
	row, col, err := ParseSeatID(preferredSeatID)
	if err != nil {
		return nil, err
	}
	colIdx := 0
	for i, c := range f.columns {
		if c == col {
			colIdx = i
		}
	}

	colOffsets := []int{-1, +1, -2, +2, -3, +3}
	rowOffsets := []int{-1, +1, -2, +2}

	var list []string
	for _, off := range colOffsets {
		if idx := colIdx + off; idx >= 0 && idx < len(f.columns) {
			list = append(list, SeatID(row, f.columns[idx]))
		}
	}
	for _, ro := range rowOffsets {
		rr := row + ro
		if rr < 1 {
			continue
		}
		list = append(list, SeatID(rr, col))
		for _, off := range colOffsets {
			if idx := colIdx + off; idx >= 0 && idx < len(f.columns) {
				list = append(list, SeatID(rr, f.columns[idx]))
			}
		}
	}
	return list, nil
}

// TotalSeats returns the fixed seat count.
func (f *Flight) TotalSeats() int {
	return len(f.seats)
}

// OccupiedSeats counts currently claimed seats.
func (f *Flight) OccupiedSeats() int {
	n := 0
	for _, s := range f.seats {
		if !s.Free() {
			n++
		}
	}
	return n
}

// SeatInfo is a point-in-time view of one seat, for display.
type SeatInfo struct {
	SeatID     string `json:"seatId"`
	Row        int    `json:"row"`
	Column     string `json:"column"`
	Occupied   bool   `json:"occupied"`
	BookingRef string `json:"bookingRef,omitempty"`
}

// SeatMap snapshots every seat in row-major order.
func (f *Flight) SeatMap() []SeatInfo {
	out := make([]SeatInfo, 0, len(f.seats))
	for r := 1; r <= f.rows; r++ {
		for _, c := range f.columns {
			s := f.seats[SeatID(r, c)]
			info := SeatInfo{SeatID: s.ID, Row: r, Column: string(c)}
			if ref, ok := s.Occupant(); ok {
				info.Occupied = true
				info.BookingRef = ref
			}
			out = append(out, info)
		}
	}
	return out
}
