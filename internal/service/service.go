package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cx-tal-miterani/airport-checkin-system/internal/checkin"
)

// ErrValidation marks caller-supplied input that is missing or malformed.
// Validation failures are rejected before any simulated I/O and are never
// retried.
var ErrValidation = errors.New("invalid request")

// SeatAssignment is the successful result of a seat selection.
type SeatAssignment struct {
	FlightNo   string `json:"flightNo"`
	SeatID     string `json:"seatId"`
	BookingRef string `json:"bookingRef"`
	Preferred  bool   `json:"preferred"`
}

// FlightSummary aggregates a flight's occupancy and baggage totals for
// display.
type FlightSummary struct {
	FlightNo      string  `json:"flightNo"`
	OccupiedSeats int     `json:"occupiedSeats"`
	TotalSeats    int     `json:"totalSeats"`
	TotalBags     int     `json:"totalBags"`
	TotalWeightKg float64 `json:"totalWeightKg"`
}

// CheckInService orchestrates seat and baggage requests against the flight
// registry under simulated unreliable I/O.
type CheckInService interface {
	SelectSeat(ctx context.Context, flightNo string, p checkin.Passenger, preferredSeatID, kioskID string) (*SeatAssignment, error)
	CheckInBag(ctx context.Context, flightNo string, p checkin.Passenger, bagTag string, weightKg float64, kioskID string) (bool, error)
	FlightSummary(ctx context.Context, flightNo string) (*FlightSummary, error)
	SeatMap(ctx context.Context, flightNo string) ([]checkin.SeatInfo, error)
}

// checkInServiceImpl implements CheckInService
type checkInServiceImpl struct {
	registry *checkin.Registry
	injector Injector
	policy   RetryPolicy
	now      func() time.Time
}

// NewCheckInService wires the registry with a fault injector and retry
// policy. A nil injector disables fault simulation.
func NewCheckInService(registry *checkin.Registry, injector Injector, policy RetryPolicy) CheckInService {
	if injector == nil {
		injector = NoopInjector{}
	}
	return &checkInServiceImpl{
		registry: registry,
		injector: injector,
		policy:   policy,
		now:      time.Now,
	}
}

func (s *checkInServiceImpl) SelectSeat(ctx context.Context, flightNo string, p checkin.Passenger, preferredSeatID, kioskID string) (*SeatAssignment, error) {
	if flightNo == "" || p.BookingRef == "" || preferredSeatID == "" {
		return nil, fmt.Errorf("%w: flight number, booking ref, and preferred seat are required", ErrValidation)
	}
	if _, _, err := checkin.ParseSeatID(preferredSeatID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return withRetry(ctx, s.policy, func() (*SeatAssignment, error) {
		if err := s.injector.Simulate(ctx); err != nil {
			return nil, err
		}
		f, err := s.registry.Get(flightNo)
		if err != nil {
			return nil, err
		}
		seat, err := f.AssignSeatOrNearest(preferredSeatID, p.BookingRef)
		if err != nil {
			return nil, err
		}
		return &SeatAssignment{
			FlightNo:   flightNo,
			SeatID:     seat.ID,
			BookingRef: p.BookingRef,
			Preferred:  seat.ID == preferredSeatID,
		}, nil
	})
}

func (s *checkInServiceImpl) CheckInBag(ctx context.Context, flightNo string, p checkin.Passenger, bagTag string, weightKg float64, kioskID string) (bool, error) {
	if flightNo == "" || p.BookingRef == "" || bagTag == "" {
		return false, fmt.Errorf("%w: flight number, booking ref, and bag tag are required", ErrValidation)
	}
	if weightKg < 0 {
		return false, fmt.Errorf("%w: weight must not be negative", ErrValidation)
	}

	return withRetry(ctx, s.policy, func() (bool, error) {
		if err := s.injector.Simulate(ctx); err != nil {
			return false, err
		}
		f, err := s.registry.Get(flightNo)
		if err != nil {
			return false, err
		}
		return f.Baggage.CheckIn(checkin.BaggageRecord{
			BagTag:     bagTag,
			BookingRef: p.BookingRef,
			WeightKg:   weightKg,
			KioskID:    kioskID,
			CreatedAt:  s.now(),
		}), nil
	})
}

func (s *checkInServiceImpl) FlightSummary(ctx context.Context, flightNo string) (*FlightSummary, error) {
	f, err := s.registry.Get(flightNo)
	if err != nil {
		return nil, err
	}
	return &FlightSummary{
		FlightNo:      f.FlightNo,
		OccupiedSeats: f.OccupiedSeats(),
		TotalSeats:    f.TotalSeats(),
		TotalBags:     f.Baggage.TotalBags(),
		TotalWeightKg: f.Baggage.TotalWeight(),
	}, nil
}

func (s *checkInServiceImpl) SeatMap(ctx context.Context, flightNo string) ([]checkin.SeatInfo, error) {
	f, err := s.registry.Get(flightNo)
	if err != nil {
		return nil, err
	}
	return f.SeatMap(), nil
}
