package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstantJulianDayRoundTrip(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		utc  time.Time
		jd   float64
	}{
		{
			name: "J2000 epoch",
			utc:  time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			jd:   2451545.0,
		},
		{
			name: "Unix epoch",
			utc:  time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			jd:   2440587.5,
		},
		{
			name: "arbitrary modern date",
			utc:  time.Date(2024, 6, 15, 6, 0, 0, 0, time.UTC),
			jd:   2460476.75,
		},
		{
			name: "medieval date outside nanosecond range",
			utc:  time.Date(1000, 1, 1, 0, 0, 0, 0, time.UTC),
			jd:   2086302.5,
		},
		{
			name: "far future date outside nanosecond range",
			utc:  time.Date(2600, 1, 1, 0, 0, 0, 0, time.UTC),
			jd:   2670690.5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			i := NewInstant(tc.utc)
			assert.InDelta(t, tc.jd, i.JulianDay(), 1e-9)

			back := InstantFromJulianDay(i.JulianDay())
			assert.WithinDuration(t, tc.utc, back.Time(), time.Millisecond)
		})
	}
}

func TestInstantJulianCenturies(t *testing.T) {
	t.Parallel()

	// Exactly one Julian century after J2000.0.
	i := InstantFromJulianDay(J2000 + 36525)
	assert.InDelta(t, 1.0, i.JulianCenturies(), 1e-9)
	assert.InDelta(t, 100.0, i.JulianYears(), 1e-9)
}

func TestInstantLocalMean(t *testing.T) {
	t.Parallel()

	i := NewInstant(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	// 82.5°E is UTC+5:30 in mean solar time (the Ujjain reference meridian
	// is close to this).
	local := i.LocalMean(82.5)
	assert.Equal(t, 17, local.Hour())
	assert.Equal(t, 30, local.Minute())

	// Negative longitudes shift west.
	local = i.LocalMean(-90)
	assert.Equal(t, 6, local.Hour())
}

func TestIntervalContainsAndOverlaps(t *testing.T) {
	t.Parallel()

	base := NewInstant(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	iv := Interval{Start: base, End: base.Add(2 * time.Hour)}

	assert.True(t, iv.Contains(base), "half-open interval includes start")
	assert.True(t, iv.Contains(base.Add(time.Hour)))
	assert.False(t, iv.Contains(base.Add(2*time.Hour)), "half-open interval excludes end")

	other := Interval{Start: base.Add(time.Hour), End: base.Add(3 * time.Hour)}
	assert.True(t, iv.Overlaps(other))
	assert.True(t, other.Overlaps(iv))

	disjoint := Interval{Start: base.Add(2 * time.Hour), End: base.Add(4 * time.Hour)}
	assert.False(t, iv.Overlaps(disjoint), "touching intervals do not overlap")

	assert.Equal(t, 2*time.Hour, iv.Duration())
}

func TestLocationValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		loc     Location
		wantErr bool
	}{
		{name: "valid equator", loc: Location{Latitude: 0, Longitude: 0}},
		{name: "valid Ujjain", loc: Location{Latitude: 23.1765, Longitude: 75.7885, ElevationM: 491}},
		{name: "valid extremes", loc: Location{Latitude: 90, Longitude: -180}},
		{name: "latitude too high", loc: Location{Latitude: 90.01, Longitude: 0}, wantErr: true},
		{name: "latitude too low", loc: Location{Latitude: -91, Longitude: 0}, wantErr: true},
		{name: "longitude too high", loc: Location{Latitude: 0, Longitude: 180.5}, wantErr: true},
		{name: "longitude too low", loc: Location{Latitude: 0, Longitude: -200}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.loc.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCoordinate))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBodyLongitudeValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, BodyLongitude{Body: BodySun, Degrees: 359.999}.Validate())
	require.NoError(t, BodyLongitude{Body: BodyMoon, Degrees: 0}.Validate())

	err := BodyLongitude{Body: BodySun, Degrees: 360}.Validate()
	assert.True(t, errors.Is(err, ErrMissingLongitude))

	err = BodyLongitude{Degrees: 10}.Validate()
	assert.True(t, errors.Is(err, ErrMissingLongitude))
}

func TestParseBody(t *testing.T) {
	t.Parallel()

	b, err := ParseBody("jupiter")
	require.NoError(t, err)
	assert.Equal(t, BodyJupiter, b)

	_, err = ParseBody("pluto")
	assert.Error(t, err)
}

func TestNormalizeDegrees(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0, NormalizeDegrees(360), 1e-12)
	assert.InDelta(t, 125.0, NormalizeDegrees(-235), 1e-12)
	assert.InDelta(t, 5.0, NormalizeDegrees(725), 1e-12)
	assert.InDelta(t, 355.0, NormalizeDegrees(-5), 1e-12)

	// Values just below zero must fold to zero, never to 360.
	assert.Equal(t, 0.0, NormalizeDegrees(-1e-14))
	assert.Less(t, NormalizeDegrees(-1e-9), 360.0)
	assert.GreaterOrEqual(t, NormalizeDegrees(-1e-9), 0.0)
}

func TestInstantJSONRoundTrip(t *testing.T) {
	t.Parallel()

	at := NewInstant(time.Date(2024, 3, 15, 6, 30, 0, 0, time.UTC))

	data, err := json.Marshal(at)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15T06:30:00Z"`, string(data))

	var back Instant
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, at.Equal(back))
}
