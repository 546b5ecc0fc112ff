package checkin

import "time"

// Passenger identifies a traveler; the booking reference is the identity
// used by seats and the baggage ledger.
type Passenger struct {
	Name       string `json:"name"`
	BookingRef string `json:"bookingRef"`
}

// BaggageRecord is one checked-in bag. Records are immutable once built.
type BaggageRecord struct {
	BagTag     string    `json:"bagTag"`
	BookingRef string    `json:"bookingRef"`
	WeightKg   float64   `json:"weightKg"`
	KioskID    string    `json:"kioskId"`
	CreatedAt  time.Time `json:"createdAt"`
}
