package mocks

import (
	"context"

	"github.com/cx-tal-miterani/airport-checkin-system/internal/checkin"
	"github.com/cx-tal-miterani/airport-checkin-system/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockCheckInService is a mock implementation of service.CheckInService
type MockCheckInService struct {
	mock.Mock
}

func (m *MockCheckInService) SelectSeat(ctx context.Context, flightNo string, p checkin.Passenger, preferredSeatID, kioskID string) (*service.SeatAssignment, error) {
	args := m.Called(ctx, flightNo, p, preferredSeatID, kioskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SeatAssignment), args.Error(1)
}

func (m *MockCheckInService) CheckInBag(ctx context.Context, flightNo string, p checkin.Passenger, bagTag string, weightKg float64, kioskID string) (bool, error) {
	args := m.Called(ctx, flightNo, p, bagTag, weightKg, kioskID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCheckInService) FlightSummary(ctx context.Context, flightNo string) (*service.FlightSummary, error) {
	args := m.Called(ctx, flightNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FlightSummary), args.Error(1)
}

func (m *MockCheckInService) SeatMap(ctx context.Context, flightNo string) ([]checkin.SeatInfo, error) {
	args := m.Called(ctx, flightNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]checkin.SeatInfo), args.Error(1)
}
