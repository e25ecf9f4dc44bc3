// Package domain contains the core business entities and rules for the trip
// search flow. These entities are transport-agnostic and form the foundation
// upon which all other components are built.
package domain

import (
	"fmt"
	"hash/fnv"
	"time"
)

// DateKeyLayout is the canonical date format used wherever dates cross a
// boundary (storage, cache keys, API params).
const DateKeyLayout = "2006-01-02"

// Fare hint band bounds. Hints are decorative and never authoritative.
const (
	fareHintMin = 3500
	fareHintMax = 7500
)

// Midnight truncates a time to midnight in its own location.
// All date comparisons in the trip search flow operate on midnight values so
// that time-of-day never influences ordering.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPast reports whether date falls strictly before today, comparing at
// midnight.
func IsPast(date, today time.Time) bool {
	return Midnight(date).Before(Midnight(today))
}

// IsBefore reports whether a falls strictly before b, comparing at midnight.
func IsBefore(a, b time.Time) bool {
	return Midnight(a).Before(Midnight(b))
}

// IsSameDay reports whether a and b fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}

// IsInRange reports whether day falls within [start, end] inclusive.
// It returns false when either bound is unset (zero).
func IsInRange(day, start, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	d := Midnight(day)
	return !d.Before(Midnight(start)) && !d.After(Midnight(end))
}

// DateKey returns the canonical YYYY-MM-DD key for a date.
// All date equality and lookup must go through this form to avoid timezone
// drift between components.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a canonical YYYY-MM-DD key back into a time.
// The returned instant is pinned to 12:00 UTC so that converting it into any
// timezone still lands on the same calendar day.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date key %q", ErrInvalidRequest, key)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}

// FareHint derives the decorative per-day fare indicator from a canonical
// date key. The same key always yields the same value, across processes and
// restarts.
func FareHint(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	span := uint32(fareHintMax - fareHintMin)
	return fareHintMin + int(h.Sum32()%span)
}
