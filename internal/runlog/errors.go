// Package runlog merges a runner's goals and runs by date and aggregates them
// into daily and weekly summaries.
package runlog

import "errors"

// Errors returned by the aggregation engine. They are terminal for the call
// that produced them; callers map them to a request-level failure.
var (
	ErrInvalidRange    = errors.New("invalid date range: start is after end")
	ErrDateMismatch    = errors.New("goal and runs must share the same date")
	ErrEmptyCollection = errors.New("no runs in collection")
	ErrMissingDate     = errors.New("goal, runs, or date must supply a date")
)
