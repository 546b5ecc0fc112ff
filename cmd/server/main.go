package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cx-tal-miterani/airport-checkin-system/internal/checkin"
	"github.com/cx-tal-miterani/airport-checkin-system/internal/config"
	"github.com/cx-tal-miterani/airport-checkin-system/internal/handlers"
	"github.com/cx-tal-miterani/airport-checkin-system/internal/router"
	"github.com/cx-tal-miterani/airport-checkin-system/internal/service"
	"github.com/cx-tal-miterani/airport-checkin-system/internal/websocket"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	// Registry is populated once at startup; flights live for the process
	// lifetime.
	registry := checkin.NewRegistry()
	flight := registry.CreateFlight(cfg.FlightNo, cfg.SeatRows, []byte(cfg.SeatColumns))

	injector := service.NewRandomInjector(cfg.MinLatency, cfg.MaxLatency, cfg.FailureRate)
	policy := service.RetryPolicy{
		MaxAttempts: cfg.MaxAttempts,
		BaseBackoff: cfg.BaseBackoff,
		MaxJitter:   cfg.MaxJitter,
	}

	svc := service.NewCheckInService(registry, injector, policy)
	dispatcher := service.NewDispatcher(svc, cfg.PoolSize)
	defer dispatcher.Close()

	hub := websocket.NewHub()
	go hub.Run()

	h := handlers.NewHandler(dispatcher, svc, hub)
	r := router.SetupRouter(h, hub)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Check-in server starting on %s (flight %s, %d seats)",
			cfg.HTTPAddr, flight.FlightNo, flight.TotalSeats())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
