// Package festival derives Hindu festival dates for a civil year from the
// panchang: rule-driven lunar festivals matched by lunar month, paksha and
// tithi, recurring Ekadashi, Purnima and Amavasya observances, and solar
// sankranti entries found from the Sun's sidereal sign ingress.
package festival
