// Package panchang derives the traditional Hindu calendrical elements from
// sidereal Sun and Moon longitudes: tithi, nakshatra, yoga and karana, the
// day's rise/set instants and the weekday-dependent auspicious and
// inauspicious periods built on them.
package panchang
