package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestTripsAfterMaxFailures(t *testing.T) {
	cb := New(Settings{Name: "test", MaxFailures: 2, Timeout: time.Minute})

	fail := func() error { return errBoom }
	require.ErrorIs(t, cb.Execute(fail), errBoom)
	require.ErrorIs(t, cb.Execute(fail), errBoom)

	// Open now; calls are rejected without running fn.
	ran := false
	err := cb.Execute(func() error { ran = true; return nil })
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, ran)
}

func TestHalfOpenProbeRecovers(t *testing.T) {
	cb := New(Settings{Name: "test", MaxFailures: 1, Timeout: 10 * time.Millisecond})

	require.ErrorIs(t, cb.Execute(func() error { return errBoom }), errBoom)
	require.ErrorIs(t, cb.Execute(func() error { return nil }), ErrOpen)

	time.Sleep(20 * time.Millisecond)

	// Probe succeeds and closes the breaker.
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))
}

func TestHalfOpenProbeFailureReopens(t *testing.T) {
	cb := New(Settings{Name: "test", MaxFailures: 1, Timeout: 10 * time.Millisecond})

	require.ErrorIs(t, cb.Execute(func() error { return errBoom }), errBoom)
	time.Sleep(20 * time.Millisecond)
	require.ErrorIs(t, cb.Execute(func() error { return errBoom }), errBoom)

	// Back open immediately after the failed probe.
	assert.ErrorIs(t, cb.Execute(func() error { return nil }), ErrOpen)
}

func TestSuccessResetsFailureCount(t *testing.T) {
	cb := New(Settings{Name: "test", MaxFailures: 2, Timeout: time.Minute})

	require.ErrorIs(t, cb.Execute(func() error { return errBoom }), errBoom)
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.ErrorIs(t, cb.Execute(func() error { return errBoom }), errBoom)

	// Still closed; the earlier success cleared the streak.
	require.NoError(t, cb.Execute(func() error { return nil }))
}
