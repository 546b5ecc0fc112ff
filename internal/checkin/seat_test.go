package checkin

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeat_TryAssign(t *testing.T) {
	s := NewSeat("12C")
	assert.True(t, s.Free())

	assert.True(t, s.TryAssign("BR100001"))
	assert.False(t, s.Free())

	occupant, ok := s.Occupant()
	require.True(t, ok)
	assert.Equal(t, "BR100001", occupant)

	// Second claim must fail and must not change the occupant
	assert.False(t, s.TryAssign("BR100002"))
	occupant, _ = s.Occupant()
	assert.Equal(t, "BR100001", occupant)
}

func TestSeat_ConcurrentExclusivity(t *testing.T) {
	const callers = 64

	s := NewSeat("1A")

	var wg sync.WaitGroup
	var mu sync.Mutex
	var winners []string

	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		ref := fmt.Sprintf("BR%06d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if s.TryAssign(ref) {
				mu.Lock()
				winners = append(winners, ref)
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Len(t, winners, 1, "exactly one caller may claim a seat")
	occupant, ok := s.Occupant()
	require.True(t, ok)
	assert.Equal(t, winners[0], occupant)
}

func TestParseSeatID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		row     int
		col     byte
		wantErr bool
	}{
		{name: "simple", id: "12C", row: 12, col: 'C'},
		{name: "single digit row", id: "1A", row: 1, col: 'A'},
		{name: "row zero clamps to one", id: "0F", row: 1, col: 'F'},
		{name: "no row", id: "C", wantErr: true},
		{name: "no column", id: "12", wantErr: true},
		{name: "trailing garbage", id: "12CD", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, err := ParseSeatID(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.row, row)
			assert.Equal(t, tt.col, col)
		})
	}
}
