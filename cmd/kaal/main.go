// Package main implements the kaal command line tool, a thin front end over
// the calendrical engine: it computes panchang elements, ayanamsha
// comparisons, muhurta searches, and festival calendars and prints them as
// JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/brahmakaal/kaal-engine/internal/config"
	"github.com/brahmakaal/kaal-engine/internal/domain"
	"github.com/brahmakaal/kaal-engine/internal/domain/ayanamsha"
	"github.com/brahmakaal/kaal-engine/internal/domain/festival"
	"github.com/brahmakaal/kaal-engine/internal/ephemeris/analytic"
	"github.com/brahmakaal/kaal-engine/internal/platform/logger"
	"github.com/brahmakaal/kaal-engine/internal/service"
)

func main() {
	svc, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := run(context.Background(), svc, os.Args[1:]); err != nil {
		log.Fatalf("kaal: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the service.
func initializeApp() (service.KaalService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Debug("configuration loaded",
		"default_ayanamsha", cfg.Engine.DefaultAyanamsha,
		"cache_enabled", cfg.Cache.Enabled)

	return service.NewKaalService(analytic.New(), *cfg, appLogger)
}

func run(ctx context.Context, svc service.KaalService, args []string) error {
	fs := flag.NewFlagSet("kaal", flag.ExitOnError)
	var (
		op     = fs.String("op", "panchang", "operation: panchang, ayanamsha, muhurta, festivals")
		lat    = fs.Float64("lat", 23.1765, "latitude in degrees, north positive")
		lon    = fs.Float64("lon", 75.7885, "longitude in degrees, east positive")
		elev   = fs.Float64("elev", 0, "observer elevation in meters")
		date   = fs.String("date", time.Now().UTC().Format(time.RFC3339), "instant (RFC 3339)")
		system = fs.String("system", "", "ayanamsha system override")
		event  = fs.String("event", "general", "muhurta event type")
		hours  = fs.Int("hours", 24, "muhurta search window in hours")
		minQ   = fs.String("min-quality", "", "minimum muhurta quality tier, e.g. good")
		year   = fs.Int("year", time.Now().UTC().Year(), "festival calendar year")
		region = fs.String("region", "", "festival region filter")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	at, err := time.Parse(time.RFC3339, *date)
	if err != nil {
		return fmt.Errorf("parsing -date: %w", err)
	}
	loc := domain.Location{Latitude: *lat, Longitude: *lon, ElevationM: *elev}

	var out any
	switch *op {
	case "panchang":
		out, err = svc.ComputePanchang(ctx, loc, domain.NewInstant(at), ayanamsha.System(*system))
	case "ayanamsha":
		out, err = svc.CompareAyanamsha(ctx, domain.NewInstant(at))
	case "muhurta":
		out, err = svc.FindMuhurta(ctx, service.MuhurtaRequest{
			Event:      *event,
			Latitude:   *lat,
			Longitude:  *lon,
			ElevationM: *elev,
			Start:      at,
			End:        at.Add(time.Duration(*hours) * time.Hour),
			System:     *system,
			MinQuality: *minQ,
		})
	case "festivals":
		var regions []festival.Region
		if *region != "" {
			regions = append(regions, festival.Region(*region))
		}
		out, err = svc.FestivalCalendar(ctx, loc, *year, regions)
	default:
		return fmt.Errorf("unknown operation %q", *op)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
