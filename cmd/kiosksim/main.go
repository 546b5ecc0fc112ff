// kiosksim drives the check-in service the way a bank of airport kiosks
// would: N concurrent passengers contend over a short list of popular seats
// and drop off up to two bags each, all through the bounded dispatcher.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/cx-tal-miterani/airport-checkin-system/internal/checkin"
	"github.com/cx-tal-miterani/airport-checkin-system/internal/service"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var hotSeats = []string{"12C", "12D", "13C", "14D", "10A", "10F", "15C"}

func main() {
	var (
		passengers  = flag.Int("passengers", 50, "number of concurrent passengers")
		flightNo    = flag.String("flight", "QZ101", "flight number")
		rows        = flag.Int("rows", 30, "seat rows")
		poolSize    = flag.Int("pool", service.DefaultPoolSize, "dispatcher worker count")
		failureRate = flag.Float64("failure-rate", 0.06, "transient failure probability per attempt")
	)
	flag.Parse()

	registry := checkin.NewRegistry()
	flight := registry.CreateFlight(*flightNo, *rows, checkin.DefaultColumns)

	injector := service.NewRandomInjector(4*time.Millisecond, 13*time.Millisecond, *failureRate)
	svc := service.NewCheckInService(registry, injector, service.DefaultRetryPolicy())
	dispatcher := service.NewDispatcher(svc, *poolSize)

	log.Printf("Simulating %d passengers on flight %s (%d seats)", *passengers, *flightNo, flight.TotalSeats())
	start := time.Now()

	var g errgroup.Group
	ctx := context.Background()
	for i := 0; i < *passengers; i++ {
		g.Go(func() error {
			name := "PAX" + uuid.NewString()[:6]
			bookingRef := fmt.Sprintf("BR%06d", 100000+rand.Intn(900000))
			pref := hotSeats[rand.Intn(len(hotSeats))]
			p := checkin.Passenger{Name: name, BookingRef: bookingRef}

			res := <-dispatcher.SubmitSeat(ctx, *flightNo, p, pref, "SIM")
			if res.Err != nil {
				if errors.Is(res.Err, checkin.ErrNoSeatAvailable) {
					return nil // flight full, nothing more to do
				}
				log.Printf("seat request for %s failed: %v", bookingRef, res.Err)
				return nil
			}
			log.Printf("%s(%s) -> %s (preferred %s)", name, bookingRef, res.Assignment.SeatID, pref)

			bags := rand.Intn(3)
			for b := 1; b <= bags; b++ {
				tag := fmt.Sprintf("%s-B%d", bookingRef, b)
				weight := 12 + rand.Float64()*16
				bag := <-dispatcher.SubmitBag(ctx, *flightNo, p, tag, weight, "SIM")
				if bag.Err != nil {
					log.Printf("bag %s failed: %v", tag, bag.Err)
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	dispatcher.Close()

	fmt.Printf("\ndone in %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("seats: %d / %d occupied\n", flight.OccupiedSeats(), flight.TotalSeats())
	fmt.Printf("bags:  %d  |  weight: %.2f kg\n", flight.Baggage.TotalBags(), flight.Baggage.TotalWeight())
}
