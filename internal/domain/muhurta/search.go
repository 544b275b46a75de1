package muhurta

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/brahmakaal/kaal-engine/internal/domain"
	"github.com/brahmakaal/kaal-engine/internal/domain/ayanamsha"
	"github.com/brahmakaal/kaal-engine/internal/domain/panchang"
	"github.com/brahmakaal/kaal-engine/internal/ephemeris"
)

// Search defaults.
const (
	defaultStep       = time.Hour
	defaultDuration   = time.Hour
	defaultMaxResults = 20
	searchWorkers     = 4
)

// Request describes a muhurta search over a time window.
type Request struct {
	Event    EventType
	Location domain.Location
	Window   domain.Interval

	// Step is the sampling interval across the window. Zero means 1 hour.
	Step time.Duration

	// Duration is the length of the event window scored at each sample.
	// Zero means 1 hour.
	Duration time.Duration

	// System is the ayanamsha used to siderealize longitudes. Zero value
	// means Lahiri.
	System ayanamsha.System

	// MaxResults caps the ranked candidates returned. Zero means 20.
	MaxResults int

	// MinTier drops candidates below the given quality band before the
	// MaxResults cap is applied. Empty means no filtering.
	MinTier Tier

	// Rules overrides the default rule set for the event when non-nil.
	Rules *Rules
}

// Candidate is one scored moment of a search.
type Candidate struct {
	Window domain.Interval
	Evaluation
}

// Response is the ranked outcome of a search.
type Response struct {
	Candidates []Candidate

	// Partial is true when the search was cancelled before every sample was
	// scored. The candidates present are still correctly ranked.
	Partial bool
}

// Searcher runs muhurta searches against an ephemeris provider.
type Searcher struct {
	eph     ephemeris.Provider
	ayan    *ayanamsha.Engine
	deriver *panchang.Deriver
	logger  *slog.Logger
}

// NewSearcher creates a muhurta searcher.
func NewSearcher(eph ephemeris.Provider, ayan *ayanamsha.Engine, deriver *panchang.Deriver, logger *slog.Logger) *Searcher {
	return &Searcher{eph: eph, ayan: ayan, deriver: deriver, logger: logger}
}

// Search samples the window at the request's step, scores every sample
// concurrently and returns candidates ranked by score, ties broken by the
// earlier start. Cancellation mid-search returns the candidates scored so
// far with Partial set.
func (s *Searcher) Search(ctx context.Context, req Request) (*Response, error) {
	if err := req.Location.Validate(); err != nil {
		return nil, err
	}

	rules := req.Rules
	if rules == nil {
		var err error
		rules, err = NewDefaultRules(req.Event)
		if err != nil {
			return nil, err
		}
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	step := req.Step
	if step <= 0 {
		step = defaultStep
	}
	duration := req.Duration
	if duration <= 0 {
		duration = defaultDuration
	}
	system := req.System
	if system == "" {
		system = ayanamsha.Lahiri
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if req.MinTier != "" {
		if _, err := ParseTier(string(req.MinTier)); err != nil {
			return nil, err
		}
	}

	samples := sampleStarts(req.Window, step)
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: window %s shorter than step %s",
			domain.ErrEmptySearchWindow, req.Window.Duration(), step)
	}

	jobs := make(chan domain.Instant, len(samples))
	for _, at := range samples {
		jobs <- at
	}
	close(jobs)

	results := make(chan Candidate, len(samples))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	cancelled := false

	workers := searchWorkers
	if workers > len(samples) {
		workers = len(samples)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for at := range jobs {
				cand, err := s.score(ctx, rules, system, at, duration, req.Location)
				if err != nil {
					mu.Lock()
					if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
						cancelled = true
					} else if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				results <- cand
			}
		}()
	}

	wg.Wait()
	close(results)

	if firstErr != nil {
		return nil, firstErr
	}

	candidates := make([]Candidate, 0, len(samples))
	for cand := range results {
		candidates = append(candidates, cand)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Window.Start.Before(candidates[j].Window.Start)
	})
	if req.MinTier != "" {
		kept := candidates[:0]
		for _, cand := range candidates {
			if cand.Tier.AtLeast(req.MinTier) {
				kept = append(kept, cand)
			}
		}
		candidates = kept
	}
	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	partial := cancelled

	s.logger.Debug("muhurta search complete",
		"event", req.Event,
		"samples", len(samples),
		"candidates", len(candidates),
		"partial", partial)

	return &Response{Candidates: candidates, Partial: partial}, nil
}

// Best returns the highest ranked candidate, or nil when the search produced
// none.
func (s *Searcher) Best(ctx context.Context, req Request) (*Candidate, error) {
	req.MaxResults = 1
	resp, err := s.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 {
		return nil, nil
	}
	return &resp.Candidates[0], nil
}

// score evaluates one sample start.
func (s *Searcher) score(
	ctx context.Context,
	rules *Rules,
	system ayanamsha.System,
	at domain.Instant,
	duration time.Duration,
	loc domain.Location,
) (Candidate, error) {
	sun, err := s.eph.Longitude(ctx, domain.BodySun, at)
	if err != nil {
		return Candidate{}, fmt.Errorf("sun longitude at jd=%.5f: %w", at.JulianDay(), err)
	}
	moon, err := s.eph.Longitude(ctx, domain.BodyMoon, at)
	if err != nil {
		return Candidate{}, fmt.Errorf("moon longitude at jd=%.5f: %w", at.JulianDay(), err)
	}

	sunSid, err := s.ayan.ToSidereal(sun.Degrees, system, at)
	if err != nil {
		return Candidate{}, err
	}
	moonSid, err := s.ayan.ToSidereal(moon.Degrees, system, at)
	if err != nil {
		return Candidate{}, err
	}

	p, err := s.deriver.Derive(ctx, sunSid, moonSid, at, loc)
	if err != nil {
		return Candidate{}, err
	}

	// Optional bodies degrade to neutral inside the scorer; only context
	// failures abort.
	planets := make(map[domain.Body]float64, len(rules.KeyPlanets))
	for _, body := range rules.KeyPlanets {
		bl, err := s.eph.Longitude(ctx, body, at)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Candidate{}, ctxErr
			}
			continue
		}
		sid, err := s.ayan.ToSidereal(bl.Degrees, system, at)
		if err != nil {
			return Candidate{}, err
		}
		planets[body] = sid
	}

	window := domain.Interval{Start: at, End: at.Add(duration)}
	eval, err := Evaluate(rules, p, window, planets)
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{Window: window, Evaluation: eval}, nil
}

// sampleStarts enumerates the candidate start instants inside the window.
func sampleStarts(window domain.Interval, step time.Duration) []domain.Instant {
	if window.Duration() < step {
		return nil
	}
	var starts []domain.Instant
	for at := window.Start; !at.After(window.End.Add(-step)); at = at.Add(step) {
		starts = append(starts, at)
	}
	return starts
}
