// Package ephemeris defines the narrow interface the calendrical core uses
// to obtain celestial body positions. Ephemeris data loading and raw orbital
// mechanics live behind this boundary; the core only consumes apparent
// tropical longitudes and topocentric altitudes.
package ephemeris
