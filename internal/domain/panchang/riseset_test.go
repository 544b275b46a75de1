package panchang

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brahmakaal/kaal-engine/internal/domain"
	"github.com/brahmakaal/kaal-engine/internal/ephemeris/analytic"
)

var ujjain = domain.Location{Latitude: 23.1765, Longitude: 75.7885}

func testDeriver() *Deriver {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDeriver(analytic.New(), logger)
}

func TestSunTimesNearEquinox(t *testing.T) {
	t.Parallel()

	d := testDeriver()
	at := domain.NewInstant(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC))

	rise, set, noon, err := d.sunTimes(context.Background(), at, ujjain)
	require.NoError(t, err)

	require.True(t, rise.Before(noon))
	require.True(t, noon.Before(set))

	// Near the equinox daylight is close to 12 hours at any latitude.
	daylight := set.Sub(rise)
	assert.InDelta(t, 12, daylight.Hours(), 0.5)

	// Local mean sunrise around 06:00 is roughly 00:57 UTC at 75.79°E.
	wantRise := time.Date(2024, 3, 15, 0, 57, 0, 0, time.UTC)
	assert.WithinDuration(t, wantRise, rise.Time(), 45*time.Minute)

	// The solver must land on the horizon altitude it was asked for.
	alt, err := analytic.New().Altitude(context.Background(), domain.BodySun, rise, ujjain)
	require.NoError(t, err)
	assert.InDelta(t, -sunHorizonDeg, alt, 0.05)
}

func TestSunTimesRespectsElevationDip(t *testing.T) {
	t.Parallel()

	d := testDeriver()
	at := domain.NewInstant(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC))

	elevated := ujjain
	elevated.ElevationM = 1500

	seaRise, _, _, err := d.sunTimes(context.Background(), at, ujjain)
	require.NoError(t, err)
	highRise, _, _, err := d.sunTimes(context.Background(), at, elevated)
	require.NoError(t, err)

	// A depressed horizon makes the sun rise earlier.
	assert.True(t, highRise.Before(seaRise))
	assert.Less(t, seaRise.Sub(highRise), 15*time.Minute)
}

func TestMoonTimes(t *testing.T) {
	t.Parallel()

	d := testDeriver()
	at := domain.NewInstant(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC))

	rise, set, err := d.moonTimes(context.Background(), at, ujjain)
	require.NoError(t, err)
	assert.False(t, rise.IsZero())
	assert.False(t, set.IsZero())
	assert.False(t, rise.Equal(set))

	// The solver works on topocentric altitudes, so the Moon must sit at
	// the refraction-plus-semidiameter threshold, with no extra parallax
	// term folded in.
	alt, err := analytic.New().Altitude(context.Background(), domain.BodyMoon, rise, ujjain)
	require.NoError(t, err)
	assert.InDelta(t, -moonHorizonDeg, alt, 0.05)
}

func TestSunTimesPolarNight(t *testing.T) {
	t.Parallel()

	d := testDeriver()
	svalbard := domain.Location{Latitude: 78.22, Longitude: 15.64}
	at := domain.NewInstant(time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC))

	_, _, _, err := d.sunTimes(context.Background(), at, svalbard)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoRiseOrSet)
}

func TestSunTimesContextCancellation(t *testing.T) {
	t.Parallel()

	d := testDeriver()
	at := domain.NewInstant(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := d.sunTimes(ctx, at, ujjain)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSunTimesOutsideEphemerisRange(t *testing.T) {
	t.Parallel()

	d := testDeriver()
	at := domain.NewInstant(time.Date(500, 1, 1, 0, 0, 0, 0, time.UTC))

	_, _, _, err := d.sunTimes(context.Background(), at, ujjain)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEphemerisUnavailable)
}

func TestHorizonDip(t *testing.T) {
	t.Parallel()

	assert.Zero(t, horizonDip(0))
	assert.Zero(t, horizonDip(-10))
	// 1.76·√100 arcmin = 17.6′ ≈ 0.293°.
	assert.InDelta(t, 0.2933, horizonDip(100), 1e-3)
}
