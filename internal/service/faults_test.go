package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptInjector_ReplaysThenSucceeds(t *testing.T) {
	inj := NewScriptInjector(ErrTransientIO, nil, ErrTransientIO)
	ctx := context.Background()

	assert.ErrorIs(t, inj.Simulate(ctx), ErrTransientIO)
	assert.NoError(t, inj.Simulate(ctx))
	assert.ErrorIs(t, inj.Simulate(ctx), ErrTransientIO)

	// Exhausted script: everything succeeds.
	assert.NoError(t, inj.Simulate(ctx))
	assert.Equal(t, 4, inj.Calls())
}

func TestRandomInjector_FailureRateBounds(t *testing.T) {
	ctx := context.Background()

	never := NewRandomInjector(0, 0, 0)
	for i := 0; i < 100; i++ {
		require.NoError(t, never.Simulate(ctx))
	}

	always := NewRandomInjector(0, 0, 1)
	for i := 0; i < 100; i++ {
		require.ErrorIs(t, always.Simulate(ctx), ErrTransientIO)
	}
}

func TestRandomInjector_LatencyRespectsContext(t *testing.T) {
	inj := NewRandomInjector(50*time.Millisecond, 60*time.Millisecond, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := inj.Simulate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
