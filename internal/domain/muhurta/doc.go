// Package muhurta implements electional timing analysis: rule tables for
// common event types, a weighted scorer that blends the calendrical factors
// of a panchang into a 0-100 score with a quality tier, and a concurrent
// search over a time window that ranks candidate moments.
package muhurta
