package router

import (
	"net/http"

	"github.com/cx-tal-miterani/airport-checkin-system/internal/handlers"
	"github.com/cx-tal-miterani/airport-checkin-system/internal/websocket"
	"github.com/gorilla/mux"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(h *handlers.Handler, hub *websocket.Hub) *mux.Router {
	r := mux.NewRouter()

	// CORS middleware
	r.Use(corsMiddleware)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Flights
	api.HandleFunc("/flights/{flightNo}", h.GetFlightSummary).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{flightNo}/seats", h.GetSeatMap).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{flightNo}/seats", h.SelectSeat).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/flights/{flightNo}/bags", h.CheckInBag).Methods(http.MethodPost, http.MethodOptions)

	// WebSocket feed for kiosk displays
	if hub != nil {
		api.HandleFunc("/flights/{flightNo}/ws", hub.HandleWebSocket)
	}

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
