// Package domain contains the core value objects of the calendrical engine:
// instants on a uniform timescale, geographic locations, celestial body
// identifiers and time intervals. It represents the heart of the system,
// independent of any specific infrastructure or delivery mechanism.
package domain
