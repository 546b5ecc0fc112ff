package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cx-tal-miterani/airport-checkin-system/internal/checkin"
	"github.com/cx-tal-miterani/airport-checkin-system/internal/service"
	"github.com/cx-tal-miterani/airport-checkin-system/internal/service/mocks"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/flights/{flightNo}", h.GetFlightSummary).Methods(http.MethodGet)
	api.HandleFunc("/flights/{flightNo}/seats", h.GetSeatMap).Methods(http.MethodGet)
	api.HandleFunc("/flights/{flightNo}/seats", h.SelectSeat).Methods(http.MethodPost)
	api.HandleFunc("/flights/{flightNo}/bags", h.CheckInBag).Methods(http.MethodPost)
	return r
}

func newTestHandler(mockService *mocks.MockCheckInService) *Handler {
	// A single-worker dispatcher over the mock keeps handler behavior
	// identical to production wiring.
	return NewHandler(service.NewDispatcher(mockService, 1), mockService, nil)
}

func TestHandler_GetFlightSummary(t *testing.T) {
	tests := []struct {
		name           string
		flightNo       string
		mockReturn     *service.FlightSummary
		mockError      error
		expectedStatus int
	}{
		{
			name:     "flight found",
			flightNo: "QZ101",
			mockReturn: &service.FlightSummary{
				FlightNo:      "QZ101",
				OccupiedSeats: 3,
				TotalSeats:    180,
				TotalBags:     2,
				TotalWeightKg: 31.5,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "flight not found",
			flightNo:       "ZZ999",
			mockError:      checkin.ErrFlightNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockCheckInService)
			handler := newTestHandler(mockService)
			router := setupTestRouter(handler)

			mockService.On("FlightSummary", mock.Anything, tt.flightNo).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/flights/"+tt.flightNo, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_GetSeatMap(t *testing.T) {
	mockService := new(mocks.MockCheckInService)
	handler := newTestHandler(mockService)
	router := setupTestRouter(handler)

	seats := []checkin.SeatInfo{
		{SeatID: "1A", Row: 1, Column: "A", Occupied: true, BookingRef: "BR100001"},
		{SeatID: "1B", Row: 1, Column: "B"},
	}
	mockService.On("SeatMap", mock.Anything, "QZ101").Return(seats, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/flights/QZ101/seats", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []checkin.SeatInfo
	err := json.NewDecoder(rec.Body).Decode(&response)
	require.NoError(t, err)
	assert.Len(t, response, 2)
	assert.Equal(t, "1A", response[0].SeatID)
	assert.True(t, response[0].Occupied)

	mockService.AssertExpectations(t)
}

func TestHandler_SelectSeat(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockReturn     *service.SeatAssignment
		mockError      error
		expectedStatus int
		wantRetryable  *bool
		shouldCallMock bool
	}{
		{
			name: "seat assigned",
			requestBody: SelectSeatRequest{
				Name:          "Dana Cole",
				BookingRef:    "BR100001",
				PreferredSeat: "12C",
				KioskID:       "K1",
			},
			mockReturn: &service.SeatAssignment{
				FlightNo:   "QZ101",
				SeatID:     "12C",
				BookingRef: "BR100001",
				Preferred:  true,
			},
			expectedStatus: http.StatusOK,
			shouldCallMock: true,
		},
		{
			name: "missing booking ref",
			requestBody: SelectSeatRequest{
				Name:          "Dana Cole",
				PreferredSeat: "12C",
			},
			expectedStatus: http.StatusBadRequest,
			shouldCallMock: false,
		},
		{
			name: "flight full is terminal",
			requestBody: SelectSeatRequest{
				Name:          "Dana Cole",
				BookingRef:    "BR100001",
				PreferredSeat: "12C",
			},
			mockError:      checkin.ErrNoSeatAvailable,
			expectedStatus: http.StatusConflict,
			wantRetryable:  boolPtr(false),
			shouldCallMock: true,
		},
		{
			name: "transient failure is retryable",
			requestBody: SelectSeatRequest{
				Name:          "Dana Cole",
				BookingRef:    "BR100001",
				PreferredSeat: "12C",
			},
			mockError:      service.ErrTransientIO,
			expectedStatus: http.StatusServiceUnavailable,
			wantRetryable:  boolPtr(true),
			shouldCallMock: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockCheckInService)
			handler := newTestHandler(mockService)
			router := setupTestRouter(handler)

			if tt.shouldCallMock {
				mockService.On("SelectSeat", mock.Anything, "QZ101", mock.AnythingOfType("checkin.Passenger"), "12C", mock.AnythingOfType("string")).
					Return(tt.mockReturn, tt.mockError)
			}

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/flights/QZ101/seats", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.wantRetryable != nil {
				var response map[string]interface{}
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, *tt.wantRetryable, response["retryable"])
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_CheckInBag(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockAccepted   bool
		mockError      error
		expectedStatus int
		wantDuplicate  *bool
		shouldCallMock bool
	}{
		{
			name: "bag accepted",
			requestBody: CheckInBagRequest{
				BookingRef: "BR100001",
				BagTag:     "BR100001-B1",
				WeightKg:   18.5,
				KioskID:    "K1",
			},
			mockAccepted:   true,
			expectedStatus: http.StatusOK,
			wantDuplicate:  boolPtr(false),
			shouldCallMock: true,
		},
		{
			name: "duplicate tag is not an error",
			requestBody: CheckInBagRequest{
				BookingRef: "BR100001",
				BagTag:     "BR100001-B1",
				WeightKg:   18.5,
			},
			mockAccepted:   false,
			expectedStatus: http.StatusOK,
			wantDuplicate:  boolPtr(true),
			shouldCallMock: true,
		},
		{
			name: "negative weight",
			requestBody: CheckInBagRequest{
				BookingRef: "BR100001",
				BagTag:     "BR100001-B1",
				WeightKg:   -2,
			},
			expectedStatus: http.StatusBadRequest,
			shouldCallMock: false,
		},
		{
			name: "missing bag tag",
			requestBody: CheckInBagRequest{
				BookingRef: "BR100001",
				WeightKg:   18.5,
			},
			expectedStatus: http.StatusBadRequest,
			shouldCallMock: false,
		},
		{
			name: "transient failure surfaces as 503",
			requestBody: CheckInBagRequest{
				BookingRef: "BR100001",
				BagTag:     "BR100001-B1",
				WeightKg:   18.5,
			},
			mockError:      service.ErrTransientIO,
			expectedStatus: http.StatusServiceUnavailable,
			shouldCallMock: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockCheckInService)
			handler := newTestHandler(mockService)
			router := setupTestRouter(handler)

			if tt.shouldCallMock {
				mockService.On("CheckInBag", mock.Anything, "QZ101", mock.AnythingOfType("checkin.Passenger"), "BR100001-B1", 18.5, mock.AnythingOfType("string")).
					Return(tt.mockAccepted, tt.mockError)
			}

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/flights/QZ101/bags", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.wantDuplicate != nil {
				var response CheckInBagResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, *tt.wantDuplicate, response.Duplicate)
				assert.Equal(t, !*tt.wantDuplicate, response.Accepted)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	mockService := new(mocks.MockCheckInService)
	handler := newTestHandler(mockService)
	router := setupTestRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/flights/QZ101/seats", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func boolPtr(b bool) *bool { return &b }
