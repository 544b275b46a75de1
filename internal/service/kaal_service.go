package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/brahmakaal/kaal-engine/internal/config"
	"github.com/brahmakaal/kaal-engine/internal/domain"
	"github.com/brahmakaal/kaal-engine/internal/domain/ayanamsha"
	"github.com/brahmakaal/kaal-engine/internal/domain/festival"
	"github.com/brahmakaal/kaal-engine/internal/domain/muhurta"
	"github.com/brahmakaal/kaal-engine/internal/domain/panchang"
	"github.com/brahmakaal/kaal-engine/internal/ephemeris"
	"github.com/brahmakaal/kaal-engine/internal/platform/cache"
)

// MuhurtaRequest is the external request shape for muhurta searches. Zero
// Step, Duration, System and MaxResults fall back to configured defaults.
type MuhurtaRequest struct {
	Event      string    `validate:"required"`
	Latitude   float64   `validate:"gte=-90,lte=90"`
	Longitude  float64   `validate:"gte=-180,lte=180"`
	ElevationM float64
	Start      time.Time `validate:"required"`
	End        time.Time `validate:"required,gtfield=Start"`

	Step       time.Duration `validate:"min=0"`
	Duration   time.Duration `validate:"min=0"`
	System     string
	MaxResults int `validate:"min=0,max=200"`

	// MinQuality drops candidates below the named tier, e.g. "good".
	// Empty keeps every scored candidate.
	MinQuality string
}

// MuhurtaResult pairs the ranked candidates with the id assigned to the
// request for log correlation.
type MuhurtaResult struct {
	RequestID  uuid.UUID
	Candidates []muhurta.Candidate
	Partial    bool
}

// KaalService is the facade over the calendrical engine's use cases.
type KaalService interface {
	// ComputePanchang computes the full panchang for a location and instant.
	// An empty system selects the configured default ayanamsha.
	ComputePanchang(ctx context.Context, loc domain.Location, at domain.Instant, system ayanamsha.System) (*panchang.Result, error)

	// CompareAyanamsha returns the ayanamsha of every supported system at
	// the instant, in the stable system order.
	CompareAyanamsha(ctx context.Context, at domain.Instant) ([]ayanamsha.Value, error)

	// FindMuhurta searches the request window for auspicious windows and
	// returns them ranked best first.
	FindMuhurta(ctx context.Context, req MuhurtaRequest) (*MuhurtaResult, error)

	// FestivalCalendar computes the festival dates observed at the location
	// for a calendar year, optionally filtered by region.
	FestivalCalendar(ctx context.Context, loc domain.Location, year int, regions []festival.Region) ([]festival.Date, error)

	// CacheStats reports hit/miss counters per result cache. Empty when
	// caching is disabled.
	CacheStats() map[string]cache.Stats
}

// kaalServiceImpl implements the KaalService interface.
type kaalServiceImpl struct {
	eph        ephemeris.Provider
	ayan       *ayanamsha.Engine
	deriver    *panchang.Deriver
	searcher   *muhurta.Searcher
	festivals  *festival.Engine
	cfg        config.Config
	defaultSys ayanamsha.System
	validate   *validator.Validate
	logger     *slog.Logger

	// nil when caching is disabled
	panchangCache *cache.Cache[*panchang.Result]
	ayanCache     *cache.Cache[[]ayanamsha.Value]
	muhurtaCache  *cache.Cache[[]muhurta.Candidate]
	festivalCache *cache.Cache[[]festival.Date]
}

// NewKaalService creates a KaalService wired to the given ephemeris provider.
// It returns an error if the provider is nil or the configured default
// ayanamsha is unknown.
func NewKaalService(eph ephemeris.Provider, cfg config.Config, logger *slog.Logger) (KaalService, error) {
	if eph == nil {
		return nil, NewKaalServiceError("init", "ephemeris provider cannot be nil", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "kaal_service"))

	defaultSys, err := ayanamsha.ParseSystem(cfg.Engine.DefaultAyanamsha)
	if err != nil {
		return nil, NewKaalServiceError("init", "default ayanamsha", err)
	}

	ayan := ayanamsha.NewEngine()
	deriver := panchang.NewDeriver(eph, logger)

	s := &kaalServiceImpl{
		eph:        eph,
		ayan:       ayan,
		deriver:    deriver,
		searcher:   muhurta.NewSearcher(eph, ayan, deriver, logger),
		festivals:  festival.NewEngine(eph, ayan, defaultSys, logger),
		cfg:        cfg,
		defaultSys: defaultSys,
		validate:   validator.New(),
		logger:     logger,
	}

	if cfg.Cache.Enabled {
		size := cfg.Cache.Size
		if size <= 0 {
			size = 4096
		}
		s.panchangCache = cache.New[*panchang.Result](size, cfg.Cache.PanchangTTL, logger)
		s.ayanCache = cache.New[[]ayanamsha.Value](size, 0, logger)
		s.muhurtaCache = cache.New[[]muhurta.Candidate](size, cfg.Cache.MuhurtaTTL, logger)
		s.festivalCache = cache.New[[]festival.Date](size, 0, logger)
	}

	return s, nil
}

// ComputePanchang implements KaalService.ComputePanchang.
func (s *kaalServiceImpl) ComputePanchang(ctx context.Context, loc domain.Location, at domain.Instant, system ayanamsha.System) (*panchang.Result, error) {
	if system == "" {
		system = s.defaultSys
	}
	if _, err := ayanamsha.ParseSystem(string(system)); err != nil {
		return nil, err
	}
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	compute := func(ctx context.Context) (*panchang.Result, error) {
		return s.derivePanchang(ctx, loc, at, system)
	}
	if s.panchangCache == nil {
		return compute(ctx)
	}
	key := cache.Key("panchang", system, jdKey(at), locKey(loc))
	return s.panchangCache.GetOrCompute(ctx, key, compute)
}

func (s *kaalServiceImpl) derivePanchang(ctx context.Context, loc domain.Location, at domain.Instant, system ayanamsha.System) (*panchang.Result, error) {
	sun, err := s.eph.Longitude(ctx, domain.BodySun, at)
	if err != nil {
		return nil, NewKaalServiceError("compute_panchang", "sun longitude", err)
	}
	moon, err := s.eph.Longitude(ctx, domain.BodyMoon, at)
	if err != nil {
		return nil, NewKaalServiceError("compute_panchang", "moon longitude", err)
	}

	sunSid, err := s.ayan.ToSidereal(sun.Degrees, system, at)
	if err != nil {
		return nil, err
	}
	moonSid, err := s.ayan.ToSidereal(moon.Degrees, system, at)
	if err != nil {
		return nil, err
	}

	return s.deriver.Derive(ctx, sunSid, moonSid, at, loc)
}

// CompareAyanamsha implements KaalService.CompareAyanamsha.
func (s *kaalServiceImpl) CompareAyanamsha(ctx context.Context, at domain.Instant) ([]ayanamsha.Value, error) {
	compute := func(context.Context) ([]ayanamsha.Value, error) {
		bySystem := s.ayan.CompareAll(at)
		values := make([]ayanamsha.Value, 0, len(bySystem))
		for _, sys := range ayanamsha.Systems() {
			values = append(values, bySystem[sys])
		}
		return values, nil
	}
	if s.ayanCache == nil {
		return compute(ctx)
	}
	return s.ayanCache.GetOrCompute(ctx, cache.Key("ayanamsha", jdKey(at)), compute)
}

// FindMuhurta implements KaalService.FindMuhurta.
func (s *kaalServiceImpl) FindMuhurta(ctx context.Context, req MuhurtaRequest) (*MuhurtaResult, error) {
	requestID := uuid.New()
	log := s.logger.With(slog.String("request_id", requestID.String()))

	if err := s.validate.Struct(&req); err != nil {
		return nil, NewKaalServiceError("find_muhurta", "invalid request", err)
	}
	event, err := muhurta.ParseEventType(req.Event)
	if err != nil {
		return nil, err
	}
	system := s.defaultSys
	if req.System != "" {
		if system, err = ayanamsha.ParseSystem(req.System); err != nil {
			return nil, err
		}
	}
	var minTier muhurta.Tier
	if req.MinQuality != "" {
		if minTier, err = muhurta.ParseTier(req.MinQuality); err != nil {
			return nil, err
		}
	}

	step := req.Step
	if step == 0 {
		step = s.cfg.Muhurta.Step
	}
	duration := req.Duration
	if duration == 0 {
		duration = s.cfg.Muhurta.Duration
	}
	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = s.cfg.Muhurta.MaxResults
	}

	loc := domain.Location{Latitude: req.Latitude, Longitude: req.Longitude, ElevationM: req.ElevationM}
	window := domain.Interval{Start: domain.NewInstant(req.Start), End: domain.NewInstant(req.End)}

	key := cache.Key("muhurta", event, system, locKey(loc),
		req.Start.UTC().Unix(), req.End.UTC().Unix(),
		int64(step/time.Second), int64(duration/time.Second), maxResults, minTier)
	if s.muhurtaCache != nil {
		if candidates, ok := s.muhurtaCache.Get(key); ok {
			return &MuhurtaResult{RequestID: requestID, Candidates: candidates}, nil
		}
	}

	resp, err := s.searcher.Search(ctx, muhurta.Request{
		Event:      event,
		Location:   loc,
		Window:     window,
		Step:       step,
		Duration:   duration,
		System:     system,
		MaxResults: maxResults,
		MinTier:    minTier,
	})
	if err != nil {
		return nil, err
	}

	// Cancelled searches carry an incomplete ranking, so only complete
	// responses are cached.
	if s.muhurtaCache != nil && !resp.Partial {
		s.muhurtaCache.Set(key, resp.Candidates)
	}

	log.Info("muhurta search completed",
		"event", string(event),
		"candidates", len(resp.Candidates),
		"partial", resp.Partial)

	return &MuhurtaResult{
		RequestID:  requestID,
		Candidates: resp.Candidates,
		Partial:    resp.Partial,
	}, nil
}

// FestivalCalendar implements KaalService.FestivalCalendar.
func (s *kaalServiceImpl) FestivalCalendar(ctx context.Context, loc domain.Location, year int, regions []festival.Region) ([]festival.Date, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if year < 1000 || year > 2999 {
		return nil, fmt.Errorf("%w: year %d outside supported range", domain.ErrEphemerisUnavailable, year)
	}

	compute := func(ctx context.Context) ([]festival.Date, error) {
		return s.festivals.Calendar(ctx, loc, year, regions)
	}
	if s.festivalCache == nil {
		return compute(ctx)
	}
	return s.festivalCache.GetOrCompute(ctx, cache.Key("festival", s.defaultSys, year, locKey(loc), regionKey(regions)), compute)
}

// CacheStats implements KaalService.CacheStats.
func (s *kaalServiceImpl) CacheStats() map[string]cache.Stats {
	stats := make(map[string]cache.Stats)
	if s.panchangCache != nil {
		stats["panchang"] = s.panchangCache.Stats()
	}
	if s.ayanCache != nil {
		stats["ayanamsha"] = s.ayanCache.Stats()
	}
	if s.muhurtaCache != nil {
		stats["muhurta"] = s.muhurtaCache.Stats()
	}
	if s.festivalCache != nil {
		stats["festival"] = s.festivalCache.Stats()
	}
	return stats
}

// jdKey renders an instant at microsecond-level precision, stable across
// float formatting.
func jdKey(at domain.Instant) string {
	return fmt.Sprintf("%.8f", at.JulianDay())
}

func locKey(loc domain.Location) string {
	return fmt.Sprintf("%.4f|%.4f|%.0f", loc.Latitude, loc.Longitude, loc.ElevationM)
}

func regionKey(regions []festival.Region) string {
	if len(regions) == 0 {
		return "all"
	}
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = string(r)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
