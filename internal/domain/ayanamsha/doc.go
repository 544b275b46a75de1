// Package ayanamsha computes the precession offset between the tropical
// zodiac and a chosen sidereal reference system. Each supported system is
// defined by its value at the J2000.0 epoch, a linear precession rate and,
// for a few systems, small higher-order correction terms.
package ayanamsha
