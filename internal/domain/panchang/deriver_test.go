package panchang

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brahmakaal/kaal-engine/internal/domain"
)

func TestDeriverDerive(t *testing.T) {
	t.Parallel()

	d := testDeriver()
	at := domain.NewInstant(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC))

	res, err := d.Derive(context.Background(), 280, 45, at, ujjain)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 11, res.Tithi.Number)
	assert.Equal(t, ShuklaPaksha, res.Tithi.Paksha)
	assert.Equal(t, "Rohini", res.Nakshatra.Name)
	assert.Equal(t, "Makara", res.SunRashi.Name)
	assert.Equal(t, "Vrishabha", res.MoonRashi.Name)

	// 2024-03-15 is a Friday at Ujjain's longitude.
	assert.Equal(t, time.Friday, res.Vara.Weekday)
	assert.Equal(t, "Shukravara", res.Vara.Name)
	assert.Equal(t, "West", res.Shool.Direction)

	require.True(t, res.Sunrise.Before(res.SolarNoon))
	require.True(t, res.SolarNoon.Before(res.Sunset))

	// Every kaal window lies within the daylight span.
	daylight := domain.Interval{Start: res.Sunrise, End: res.Sunset}
	for _, iv := range []domain.Interval{
		res.Periods.RahuKaal, res.Periods.GulikaKaal, res.Periods.YamagandaKaal,
	} {
		assert.False(t, iv.Start.Before(daylight.Start))
		assert.False(t, iv.End.After(daylight.End))
	}
	assert.True(t, res.Periods.BrahmaMuhurta.End.Before(res.Sunrise.Add(time.Second)))
	assert.True(t, res.Periods.AbhijitMuhurta.Contains(res.SolarNoon))

	assert.Equal(t, 2080, res.Years.VikramSamvat)
	assert.True(t, res.TithiEnds.At.After(at))
	assert.True(t, res.NakshatraEnds.At.After(at))
}

func TestDeriverDeriveIsDeterministic(t *testing.T) {
	t.Parallel()

	d := testDeriver()
	at := domain.NewInstant(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC))

	first, err := d.Derive(context.Background(), 123.4, 201.7, at, ujjain)
	require.NoError(t, err)
	second, err := d.Derive(context.Background(), 123.4, 201.7, at, ujjain)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDeriverDeriveValidation(t *testing.T) {
	t.Parallel()

	d := testDeriver()
	at := domain.NewInstant(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC))

	testCases := []struct {
		name    string
		sun     float64
		moon    float64
		loc     domain.Location
		wantErr error
	}{
		{
			name:    "latitude out of range",
			sun:     100,
			moon:    200,
			loc:     domain.Location{Latitude: 91, Longitude: 75},
			wantErr: domain.ErrInvalidCoordinate,
		},
		{
			name:    "sun longitude NaN",
			sun:     math.NaN(),
			moon:    200,
			loc:     ujjain,
			wantErr: domain.ErrMissingLongitude,
		},
		{
			name:    "moon longitude infinite",
			sun:     100,
			moon:    math.Inf(1),
			loc:     ujjain,
			wantErr: domain.ErrMissingLongitude,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := d.Derive(context.Background(), tc.sun, tc.moon, at, tc.loc)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, res)
		})
	}
}
