package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brahmakaal/kaal-engine/internal/config"
	"github.com/brahmakaal/kaal-engine/internal/domain"
	"github.com/brahmakaal/kaal-engine/internal/domain/ayanamsha"
	"github.com/brahmakaal/kaal-engine/internal/domain/festival"
	"github.com/brahmakaal/kaal-engine/internal/domain/muhurta"
	"github.com/brahmakaal/kaal-engine/internal/ephemeris/analytic"
	"github.com/brahmakaal/kaal-engine/internal/service"
)

var ujjain = domain.Location{Latitude: 23.1765, Longitude: 75.7885}

func testConfig() config.Config {
	return config.Config{
		Engine: config.EngineConfig{
			DefaultAyanamsha: "lahiri",
			LogLevel:         "info",
		},
		Cache: config.CacheConfig{
			Enabled:     true,
			Size:        256,
			PanchangTTL: 30 * time.Minute,
			MuhurtaTTL:  2 * time.Hour,
		},
		Muhurta: config.MuhurtaConfig{
			Step:       time.Hour,
			Duration:   time.Hour,
			MaxResults: 20,
		},
	}
}

func testService(t *testing.T, cfg config.Config) service.KaalService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := service.NewKaalService(analytic.New(), cfg, logger)
	require.NoError(t, err)
	return svc
}

func TestNewKaalServiceValidation(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := service.NewKaalService(nil, testConfig(), logger)
	assert.Error(t, err)

	cfg := testConfig()
	cfg.Engine.DefaultAyanamsha = "tropical"
	_, err = service.NewKaalService(analytic.New(), cfg, logger)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownAyanamshaSystem)
}

func TestComputePanchangCachesResults(t *testing.T) {
	t.Parallel()

	svc := testService(t, testConfig())
	at := domain.NewInstant(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC))

	first, err := svc.ComputePanchang(context.Background(), ujjain, at, "")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.ComputePanchang(context.Background(), ujjain, at, "")
	require.NoError(t, err)
	assert.Same(t, first, second)

	stats := svc.CacheStats()
	assert.Equal(t, uint64(1), stats["panchang"].Hits)
	assert.Equal(t, uint64(1), stats["panchang"].Misses)
}

func TestComputePanchangDefaultsToConfiguredSystem(t *testing.T) {
	t.Parallel()

	svc := testService(t, testConfig())
	at := domain.NewInstant(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC))

	defaulted, err := svc.ComputePanchang(context.Background(), ujjain, at, "")
	require.NoError(t, err)
	explicit, err := svc.ComputePanchang(context.Background(), ujjain, at, ayanamsha.Lahiri)
	require.NoError(t, err)

	assert.Equal(t, defaulted.Tithi, explicit.Tithi)
	assert.Equal(t, defaulted.Nakshatra, explicit.Nakshatra)
}

func TestComputePanchangRejectsBadInput(t *testing.T) {
	t.Parallel()

	svc := testService(t, testConfig())
	at := domain.NewInstant(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC))

	_, err := svc.ComputePanchang(context.Background(), ujjain, at, "tropical")
	assert.ErrorIs(t, err, domain.ErrUnknownAyanamshaSystem)

	bad := domain.Location{Latitude: 91, Longitude: 0}
	_, err = svc.ComputePanchang(context.Background(), bad, at, "")
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
}

func TestCompareAyanamsha(t *testing.T) {
	t.Parallel()

	svc := testService(t, testConfig())
	at := domain.NewInstant(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	values, err := svc.CompareAyanamsha(context.Background(), at)
	require.NoError(t, err)
	require.Len(t, values, len(ayanamsha.Systems()))

	for i, sys := range ayanamsha.Systems() {
		assert.Equal(t, sys, values[i].System)
	}

	// Lahiri drifts from 23.85 at J2000 by roughly 50 arcsec per year.
	assert.Equal(t, ayanamsha.Lahiri, values[0].System)
	assert.InDelta(t, 24.19, values[0].Degrees, 0.1)
}

func TestFindMuhurtaRanksAndCaches(t *testing.T) {
	t.Parallel()

	svc := testService(t, testConfig())
	req := service.MuhurtaRequest{
		Event:     "marriage",
		Latitude:  ujjain.Latitude,
		Longitude: ujjain.Longitude,
		Start:     time.Date(2024, 6, 17, 6, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 6, 17, 18, 0, 0, 0, time.UTC),
		Step:      2 * time.Hour,
	}

	first, err := svc.FindMuhurta(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, first.Candidates)
	assert.NotEqual(t, uuid.Nil, first.RequestID)
	assert.False(t, first.Partial)

	for i := 1; i < len(first.Candidates); i++ {
		assert.GreaterOrEqual(t, first.Candidates[i-1].Score, first.Candidates[i].Score)
	}

	second, err := svc.FindMuhurta(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.Candidates, second.Candidates)
	assert.NotEqual(t, first.RequestID, second.RequestID)

	stats := svc.CacheStats()
	assert.Equal(t, uint64(1), stats["muhurta"].Hits)
}

func TestFindMuhurtaMinQuality(t *testing.T) {
	t.Parallel()

	svc := testService(t, testConfig())
	req := service.MuhurtaRequest{
		Event:     "general",
		Latitude:  ujjain.Latitude,
		Longitude: ujjain.Longitude,
		Start:     time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Step:      time.Hour,

		// Wide enough that the tier filter, not the cap, sets the count.
		MaxResults: 24,
	}

	unfiltered, err := svc.FindMuhurta(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, unfiltered.Candidates)

	req.MinQuality = "average"
	filtered, err := svc.FindMuhurta(context.Background(), req)
	require.NoError(t, err)
	for _, cand := range filtered.Candidates {
		assert.True(t, cand.Tier.AtLeast(muhurta.TierAverage))
	}
	assert.Less(t, len(filtered.Candidates), len(unfiltered.Candidates))

	// The threshold is part of the cache identity, so the filtered search
	// must not be served from the unfiltered entry.
	stats := svc.CacheStats()
	assert.Equal(t, uint64(0), stats["muhurta"].Hits)
	assert.Equal(t, uint64(2), stats["muhurta"].Misses)

	req.MinQuality = "superb"
	_, err = svc.FindMuhurta(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTier)
}

func TestFindMuhurtaValidation(t *testing.T) {
	t.Parallel()

	svc := testService(t, testConfig())
	start := time.Date(2024, 6, 17, 6, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		req  service.MuhurtaRequest
	}{
		{
			name: "missing event",
			req:  service.MuhurtaRequest{Start: start, End: start.Add(12 * time.Hour)},
		},
		{
			name: "end before start",
			req: service.MuhurtaRequest{
				Event: "travel",
				Start: start,
				End:   start.Add(-time.Hour),
			},
		},
		{
			name: "latitude out of range",
			req: service.MuhurtaRequest{
				Event:    "travel",
				Latitude: 95,
				Start:    start,
				End:      start.Add(12 * time.Hour),
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.FindMuhurta(context.Background(), tc.req)
			require.Error(t, err)
			var svcErr *service.KaalServiceError
			assert.ErrorAs(t, err, &svcErr)
		})
	}
}

func TestFindMuhurtaUnknownEventAndSystem(t *testing.T) {
	t.Parallel()

	svc := testService(t, testConfig())
	req := service.MuhurtaRequest{
		Event:     "coronation",
		Latitude:  ujjain.Latitude,
		Longitude: ujjain.Longitude,
		Start:     time.Date(2024, 6, 17, 6, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 6, 17, 18, 0, 0, 0, time.UTC),
	}
	_, err := svc.FindMuhurta(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUnknownEventType)

	req.Event = "travel"
	req.System = "tropical"
	_, err = svc.FindMuhurta(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUnknownAyanamshaSystem)
}

func TestFestivalCalendar(t *testing.T) {
	t.Parallel()

	svc := testService(t, testConfig())

	dates, err := svc.FestivalCalendar(context.Background(), ujjain, 2024, nil)
	require.NoError(t, err)
	require.NotEmpty(t, dates)

	for i := 1; i < len(dates); i++ {
		assert.False(t, dates[i].Day.Before(dates[i-1].Day))
	}

	// Second call for the same year is served from cache.
	again, err := svc.FestivalCalendar(context.Background(), ujjain, 2024, nil)
	require.NoError(t, err)
	assert.Equal(t, dates, again)
	assert.Equal(t, uint64(1), svc.CacheStats()["festival"].Hits)
}

func TestFestivalCalendarRejectsBadInput(t *testing.T) {
	t.Parallel()

	svc := testService(t, testConfig())

	_, err := svc.FestivalCalendar(context.Background(), domain.Location{Latitude: 100}, 2024, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)

	_, err = svc.FestivalCalendar(context.Background(), ujjain, 500, nil)
	assert.ErrorIs(t, err, domain.ErrEphemerisUnavailable)
}

func TestCachingDisabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Cache.Enabled = false
	svc := testService(t, cfg)
	at := domain.NewInstant(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC))

	first, err := svc.ComputePanchang(context.Background(), ujjain, at, "")
	require.NoError(t, err)
	second, err := svc.ComputePanchang(context.Background(), ujjain, at, "")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.Tithi, second.Tithi)
	assert.Empty(t, svc.CacheStats())
}

func TestRegionFilteredCalendarCachedSeparately(t *testing.T) {
	t.Parallel()

	svc := testService(t, testConfig())

	all, err := svc.FestivalCalendar(context.Background(), ujjain, 2024, nil)
	require.NoError(t, err)
	kerala, err := svc.FestivalCalendar(context.Background(), ujjain, 2024, []festival.Region{festival.RegionKerala})
	require.NoError(t, err)

	assert.Less(t, len(kerala), len(all))
	assert.Equal(t, uint64(0), svc.CacheStats()["festival"].Hits)
}
