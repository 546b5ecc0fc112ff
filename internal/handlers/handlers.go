package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cx-tal-miterani/airport-checkin-system/internal/checkin"
	"github.com/cx-tal-miterani/airport-checkin-system/internal/service"
	"github.com/cx-tal-miterani/airport-checkin-system/internal/websocket"
	"github.com/gorilla/mux"
)

// Handler contains HTTP handlers for the kiosk API
type Handler struct {
	dispatcher *service.Dispatcher
	service    service.CheckInService
	hub        *websocket.Hub
}

// NewHandler creates a new Handler instance. hub may be nil when no live
// feed is wired (tests).
func NewHandler(dispatcher *service.Dispatcher, svc service.CheckInService, hub *websocket.Hub) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		service:    svc,
		hub:        hub,
	}
}

// SelectSeatRequest is the body of POST /api/flights/{flightNo}/seats
type SelectSeatRequest struct {
	Name          string `json:"name"`
	BookingRef    string `json:"bookingRef"`
	PreferredSeat string `json:"preferredSeat"`
	KioskID       string `json:"kioskId"`
}

// CheckInBagRequest is the body of POST /api/flights/{flightNo}/bags
type CheckInBagRequest struct {
	BookingRef string  `json:"bookingRef"`
	BagTag     string  `json:"bagTag"`
	WeightKg   float64 `json:"weightKg"`
	KioskID    string  `json:"kioskId"`
}

// CheckInBagResponse reports whether the bag was newly accepted or an
// idempotent duplicate.
type CheckInBagResponse struct {
	Accepted  bool   `json:"accepted"`
	Duplicate bool   `json:"duplicate"`
	BagTag    string `json:"bagTag"`
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string, retryable bool) {
	respondJSON(w, status, map[string]interface{}{
		"error":     message,
		"retryable": retryable,
	})
}

// serviceError maps the error taxonomy onto HTTP responses: validation 400,
// unknown flight 404, full flight 409 (not retryable), exhausted transient
// failure 503 (retryable).
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error(), false)
	case errors.Is(err, checkin.ErrFlightNotFound):
		respondError(w, http.StatusNotFound, err.Error(), false)
	case errors.Is(err, checkin.ErrNoSeatAvailable):
		respondError(w, http.StatusConflict, err.Error(), false)
	case errors.Is(err, service.ErrTransientIO):
		respondError(w, http.StatusServiceUnavailable, err.Error(), true)
	default:
		respondError(w, http.StatusInternalServerError, err.Error(), false)
	}
}

// GetFlightSummary handles GET /api/flights/{flightNo}
func (h *Handler) GetFlightSummary(w http.ResponseWriter, r *http.Request) {
	flightNo := mux.Vars(r)["flightNo"]
	summary, err := h.service.FlightSummary(r.Context(), flightNo)
	if err != nil {
		serviceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// GetSeatMap handles GET /api/flights/{flightNo}/seats
func (h *Handler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	flightNo := mux.Vars(r)["flightNo"]
	seats, err := h.service.SeatMap(r.Context(), flightNo)
	if err != nil {
		serviceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, seats)
}

// SelectSeat handles POST /api/flights/{flightNo}/seats
func (h *Handler) SelectSeat(w http.ResponseWriter, r *http.Request) {
	flightNo := mux.Vars(r)["flightNo"]

	var req SelectSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", false)
		return
	}
	if req.Name == "" || req.BookingRef == "" || req.PreferredSeat == "" {
		respondError(w, http.StatusBadRequest, "Name, booking ref, and preferred seat are required", false)
		return
	}

	p := checkin.Passenger{Name: req.Name, BookingRef: req.BookingRef}
	result := <-h.dispatcher.SubmitSeat(r.Context(), flightNo, p, req.PreferredSeat, req.KioskID)
	if result.Err != nil {
		serviceError(w, result.Err)
		return
	}

	if h.hub != nil {
		h.hub.BroadcastSeatAssigned(flightNo, result.Assignment.SeatID, req.BookingRef)
	}
	respondJSON(w, http.StatusOK, result.Assignment)
}

// CheckInBag handles POST /api/flights/{flightNo}/bags
func (h *Handler) CheckInBag(w http.ResponseWriter, r *http.Request) {
	flightNo := mux.Vars(r)["flightNo"]

	var req CheckInBagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", false)
		return
	}
	if req.BookingRef == "" || req.BagTag == "" {
		respondError(w, http.StatusBadRequest, "Booking ref and bag tag are required", false)
		return
	}
	if req.WeightKg < 0 {
		respondError(w, http.StatusBadRequest, "Weight must not be negative", false)
		return
	}

	p := checkin.Passenger{BookingRef: req.BookingRef}
	result := <-h.dispatcher.SubmitBag(r.Context(), flightNo, p, req.BagTag, req.WeightKg, req.KioskID)
	if result.Err != nil {
		serviceError(w, result.Err)
		return
	}

	if result.Accepted && h.hub != nil {
		summary, err := h.service.FlightSummary(r.Context(), flightNo)
		if err == nil {
			h.hub.BroadcastBagCheckedIn(flightNo, req.BagTag, summary.TotalBags, summary.TotalWeightKg)
		}
	}
	respondJSON(w, http.StatusOK, CheckInBagResponse{
		Accepted:  result.Accepted,
		Duplicate: !result.Accepted,
		BagTag:    req.BagTag,
	})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
