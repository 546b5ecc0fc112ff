package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the environment-driven server configuration.
type Config struct {
	HTTPAddr string

	FlightNo    string
	SeatRows    int
	SeatColumns string

	PoolSize    int
	MaxAttempts int
	BaseBackoff time.Duration
	MaxJitter   time.Duration
	FailureRate float64
	MinLatency  time.Duration
	MaxLatency  time.Duration
}

// Load reads the configuration from the environment, falling back to the
// kiosk defaults.
func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		FlightNo:    getenv("FLIGHT_NO", "QZ101"),
		SeatRows:    getint("SEAT_ROWS", 30),
		SeatColumns: getenv("SEAT_COLUMNS", "ABCDEF"),
		PoolSize:    getint("POOL_SIZE", 8),
		MaxAttempts: getint("MAX_ATTEMPTS", 5),
		BaseBackoff: getms("BASE_BACKOFF_MS", 12),
		MaxJitter:   getms("MAX_JITTER_MS", 10),
		FailureRate: getfloat("FAILURE_RATE", 0.06),
		MinLatency:  getms("LATENCY_MIN_MS", 4),
		MaxLatency:  getms("LATENCY_MAX_MS", 13),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getms(k string, def int) time.Duration {
	return time.Duration(getint(k, def)) * time.Millisecond
}
