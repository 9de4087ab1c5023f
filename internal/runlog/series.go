package runlog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// RunSeries keeps runs sorted in non-decreasing date order. Several runs may
// share a date. A series only grows; nothing is ever removed from it.
type RunSeries struct {
	runs []Run
	date time.Time // representative date, set by NewRunSeriesOn
}

// sortRuns returns a date-sorted copy of runs. Ties keep their input order.
func sortRuns(runs []Run) []Run {
	sorted := make([]Run, len(runs))
	for i, r := range runs {
		sorted[i] = Run{Distance: r.Distance, Date: Day(r.Date)}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// NewRunSeries builds a series from runs in any order. The input slice is not modified.
func NewRunSeries(runs []Run) *RunSeries {
	return &RunSeries{runs: sortRuns(runs)}
}

// NewRunSeriesOn builds a series with a representative date. When runs is
// non-empty the date must match the earliest run.
func NewRunSeriesOn(date time.Time, runs []Run) (*RunSeries, error) {
	s := NewRunSeries(runs)
	date = Day(date)
	if len(s.runs) > 0 && !s.runs[0].Date.Equal(date) {
		return nil, fmt.Errorf("%w: series dated %s starts on %s", ErrDateMismatch,
			date.Format(time.DateOnly), s.runs[0].Date.Format(time.DateOnly))
	}
	s.date = date
	return s, nil
}

// AddAll merges runs into the series. On equal dates the new runs are placed
// before the runs already held. The merged slice is built before it replaces
// the current one.
func (s *RunSeries) AddAll(runs []Run) {
	incoming := sortRuns(runs)
	existing := s.runs

	merged := make([]Run, len(incoming)+len(existing))
	i, j := 0, 0
	for k := range merged {
		if j >= len(existing) || (i < len(incoming) && !incoming[i].Date.After(existing[j].Date)) {
			merged[k] = incoming[i]
			i++
		} else {
			merged[k] = existing[j]
			j++
		}
	}

	s.runs = merged
}

// Add inserts a single run in date order.
func (s *RunSeries) Add(run Run) {
	s.AddAll([]Run{run})
}

// Extend merges every run of other into s.
func (s *RunSeries) Extend(other *RunSeries) {
	if other == nil {
		return
	}
	s.AddAll(other.runs)
}

// Interval returns the runs dated within [start, end], both inclusive.
func (s *RunSeries) Interval(start, end time.Time) (*RunSeries, error) {
	start, end = Day(start), Day(end)
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	var selected []Run
	for _, r := range s.runs {
		if r.Date.After(end) {
			break
		}
		if !r.Date.Before(start) {
			selected = append(selected, r)
		}
	}
	return NewRunSeries(selected), nil
}

// Len returns the number of runs.
func (s *RunSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.runs)
}

// Empty reports whether the series holds no runs.
func (s *RunSeries) Empty() bool {
	return s.Len() == 0
}

// Runs returns a copy of the runs in date order.
func (s *RunSeries) Runs() []Run {
	if s == nil {
		return nil
	}
	out := make([]Run, len(s.runs))
	copy(out, s.runs)
	return out
}

// Date returns the representative date of the series, falling back to the
// earliest run's date. It is zero for an empty series built without one.
func (s *RunSeries) Date() time.Time {
	if s == nil {
		return time.Time{}
	}
	if s.date.IsZero() && len(s.runs) > 0 {
		return s.runs[0].Date
	}
	return s.date
}

// First returns the earliest run, or the zero Run when empty.
func (s *RunSeries) First() Run {
	if s.Empty() {
		return Run{}
	}
	return s.runs[0]
}

// Last returns the most recent run, or the zero Run when empty.
func (s *RunSeries) Last() Run {
	if s.Empty() {
		return Run{}
	}
	return s.runs[len(s.runs)-1]
}

// IsSingleDay reports whether every run falls on the same date. An empty
// series counts as single-day.
func (s *RunSeries) IsSingleDay() bool {
	if s.Empty() {
		return true
	}
	first := s.runs[0].Date
	for _, r := range s.runs[1:] {
		if !r.Date.Equal(first) {
			return false
		}
	}
	return true
}

// SplitByDay partitions the series into one series per distinct date.
func (s *RunSeries) SplitByDay() []*RunSeries {
	if s.Empty() {
		return []*RunSeries{}
	}
	if s.IsSingleDay() {
		return []*RunSeries{s}
	}

	var days []*RunSeries
	start := 0
	for i := 1; i <= len(s.runs); i++ {
		if i == len(s.runs) || !s.runs[i].Date.Equal(s.runs[start].Date) {
			chunk := make([]Run, i-start)
			copy(chunk, s.runs[start:i])
			days = append(days, &RunSeries{runs: chunk, date: chunk[0].Date})
			start = i
		}
	}
	return days
}

// DailyDistancesBetween returns one total per day in [start, end], with 0 for
// days without runs.
func (s *RunSeries) DailyDistancesBetween(start, end time.Time) ([]float64, error) {
	interval, err := s.Interval(start, end)
	if err != nil {
		return nil, err
	}
	start, end = Day(start), Day(end)

	totals := make([]float64, daysBetween(start, end)+1)
	for _, r := range interval.runs {
		totals[daysBetween(start, r.Date)] += r.Distance
	}
	return totals, nil
}

// Sum returns the total distance.
func (s *RunSeries) Sum() float64 {
	var total float64
	if s == nil {
		return total
	}
	for _, r := range s.runs {
		total += r.Distance
	}
	return total
}

// Average returns the mean run distance, or 0 when empty.
func (s *RunSeries) Average() float64 {
	if s.Empty() {
		return 0
	}
	return s.Sum() / float64(len(s.runs))
}

// LongestRun returns the run with the greatest distance. Ties resolve to the
// earliest run.
func (s *RunSeries) LongestRun() (Run, error) {
	if s.Empty() {
		return Run{}, ErrEmptyCollection
	}
	longest := s.runs[0]
	for _, r := range s.runs[1:] {
		if r.Distance > longest.Distance {
			longest = r
		}
	}
	return longest, nil
}

// String renders the distances as "3 + 2", or "0" when empty.
func (s *RunSeries) String() string {
	if s.Empty() {
		return "0"
	}
	parts := make([]string, len(s.runs))
	for i, r := range s.runs {
		parts[i] = strconv.FormatFloat(r.Distance, 'f', -1, 64)
	}
	return strings.Join(parts, " + ")
}
