// Package metrics holds the pure aggregation functions behind the sales
// dashboards. Every function takes fully materialized slices plus an
// explicit reference time and returns plain values; nothing here does
// I/O or keeps state between calls.
package metrics

import "time"

// Timestamped is satisfied by every sales record that carries a
// creation timestamp.
type Timestamped interface {
	CreationTime() time.Time
}

// InCurrentMonth reports whether ts falls in the calendar month and
// year of ref.
func InCurrentMonth(ts, ref time.Time) bool {
	return ts.Month() == ref.Month() && ts.Year() == ref.Year()
}

// InMonth reports whether ts falls in calendar month m of ref's year.
// Used for the historical month buckets of the yearly series.
func InMonth(ts time.Time, m time.Month, ref time.Time) bool {
	return ts.Month() == m && ts.Year() == ref.Year()
}
