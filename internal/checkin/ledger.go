package checkin

import "sync"

// BaggageLedger is the deduplicating store of checked-in bags. The record
// map and the running totals are updated inside one critical section, so
// readers can never observe counters that disagree with the record set.
type BaggageLedger struct {
	mu          sync.RWMutex
	records     map[string]BaggageRecord
	totalBags   int
	totalWeight float64
}

// NewBaggageLedger creates an empty ledger.
func NewBaggageLedger() *BaggageLedger {
	return &BaggageLedger{records: make(map[string]BaggageRecord)}
}

// CheckIn inserts the record if its bag tag is new and updates both totals
// with it. A repeated bag tag mutates nothing and returns false — an
// idempotent no-op, not a failure.
func (l *BaggageLedger) CheckIn(rec BaggageRecord) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.records[rec.BagTag]; exists {
		return false
	}
	l.records[rec.BagTag] = rec
	l.totalBags++
	l.totalWeight += rec.WeightKg
	return true
}

// TotalBags returns the number of distinct accepted bag tags.
func (l *BaggageLedger) TotalBags() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalBags
}

// TotalWeight returns the summed weight of all accepted bags in kg.
func (l *BaggageLedger) TotalWeight() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalWeight
}

// Records snapshots the accepted records keyed by bag tag.
func (l *BaggageLedger) Records() map[string]BaggageRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]BaggageRecord, len(l.records))
	for tag, rec := range l.records {
		out[tag] = rec
	}
	return out
}
