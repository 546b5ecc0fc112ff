package checkin

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bag(tag, ref string, weight float64) BaggageRecord {
	return BaggageRecord{
		BagTag:     tag,
		BookingRef: ref,
		WeightKg:   weight,
		KioskID:    "K1",
		CreatedAt:  time.Now(),
	}
}

func TestBaggageLedger_CheckIn(t *testing.T) {
	l := NewBaggageLedger()

	assert.True(t, l.CheckIn(bag("BR100001-B1", "BR100001", 18.5)))
	assert.Equal(t, 1, l.TotalBags())
	assert.InDelta(t, 18.5, l.TotalWeight(), 1e-9)
}

func TestBaggageLedger_DuplicateIsIdempotent(t *testing.T) {
	l := NewBaggageLedger()

	require.True(t, l.CheckIn(bag("BR100001-B1", "BR100001", 18.5)))

	// Same tag with a different weight and kiosk: nothing may change.
	dup := bag("BR100001-B1", "BR100001", 25.0)
	dup.KioskID = "K2"
	assert.False(t, l.CheckIn(dup))

	assert.Equal(t, 1, l.TotalBags())
	assert.InDelta(t, 18.5, l.TotalWeight(), 1e-9)

	records := l.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "K1", records["BR100001-B1"].KioskID)
	assert.InDelta(t, 18.5, records["BR100001-B1"].WeightKg, 1e-9)
}

func TestBaggageLedger_AggregateConsistency(t *testing.T) {
	const (
		tags      = 20
		perTag    = 5
		bagWeight = 10.0
	)

	l := NewBaggageLedger()

	// Every tag is checked in several times concurrently; only the first
	// insert per tag may count.
	var wg sync.WaitGroup
	for i := 0; i < tags; i++ {
		tag := fmt.Sprintf("BR%06d-B1", i)
		for j := 0; j < perTag; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				l.CheckIn(bag(tag, "BR100001", bagWeight))
			}()
		}
	}
	wg.Wait()

	assert.Equal(t, tags, l.TotalBags())
	assert.InDelta(t, tags*bagWeight, l.TotalWeight(), 1e-9)
	assert.Len(t, l.Records(), l.TotalBags())
}
