// Package service contains the application-specific use cases of the
// calendrical engine. It orchestrates the domain calculators (ayanamsha,
// panchang, muhurta, festival) behind a single facade, adding request
// validation, result caching, and request-scoped logging.
//
// Key components:
//
// 1. KaalService:
//   - The single entry point callers use; one method per use case
//   - Receives its dependencies through constructor injection
//
// 2. Result caching:
//   - Deterministic calculations are cached per (location, instant, system)
//   - TTLs are configured per result volatility
//
// 3. Error Handling:
//   - Domain sentinel errors pass through unwrapped for errors.Is checks
//   - Unexpected failures are wrapped in KaalServiceError with the
//     operation name for context
//
// The service layer depends on domain packages and the ephemeris provider
// interface, never on a concrete provider implementation.
package service
