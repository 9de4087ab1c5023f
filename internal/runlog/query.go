package runlog

import (
	"fmt"
	"time"
)

// GoalRuns is the date-ordered output of MergeGoalsAndRuns.
type GoalRuns []DailyPair

// First returns the earliest pair.
func (gr GoalRuns) First() (DailyPair, bool) {
	if len(gr) == 0 {
		return DailyPair{}, false
	}
	return gr[0], true
}

// SumGoals totals every goal that was set.
func (gr GoalRuns) SumGoals() float64 {
	var total float64
	for _, p := range gr {
		if p.Goal.IsSet() {
			total += p.Goal.Distance
		}
	}
	return total
}

// SumRuns totals every run.
func (gr GoalRuns) SumRuns() float64 {
	var total float64
	for _, p := range gr {
		total += p.Sum()
	}
	return total
}

// NumRuns counts every run.
func (gr GoalRuns) NumRuns() int {
	var n int
	for _, p := range gr {
		n += p.NumRuns()
	}
	return n
}

// Diff returns the distance run minus the distance planned.
func (gr GoalRuns) Diff() float64 {
	return gr.SumRuns() - gr.SumGoals()
}

// FirstMonday returns the Monday of the earliest recorded week.
func (gr GoalRuns) FirstMonday() (time.Time, bool) {
	return FirstMonday(gr)
}

// Weekly groups the pairs by week.
func (gr GoalRuns) Weekly(opts WeeklyOptions) Weeks {
	return BucketByWeek(gr, opts)
}

// Weeks is a chronological sequence of weekly buckets.
type Weeks []WeeklyBucket

// Distances returns the total distance of each week.
func (w Weeks) Distances() []float64 {
	distances := make([]float64, len(w))
	for i, b := range w {
		distances[i] = b.SumRuns()
	}
	return distances
}

// Labels returns the name of each week.
func (w Weeks) Labels() []string {
	labels := make([]string, len(w))
	for i, b := range w {
		labels[i] = b.Name()
	}
	return labels
}

// Last returns the trailing n weeks.
func (w Weeks) Last(n int) Weeks {
	if n <= 0 {
		return Weeks{}
	}
	if n >= len(w) {
		return w
	}
	return w[len(w)-n:]
}

// Reversed returns the weeks newest first.
func (w Weeks) Reversed() Weeks {
	out := make(Weeks, len(w))
	for i, b := range w {
		out[len(w)-1-i] = b
	}
	return out
}

// SumGoals totals the goals of every week.
func (w Weeks) SumGoals() float64 {
	var total float64
	for _, b := range w {
		total += b.SumGoals()
	}
	return total
}

// SumRuns totals the runs of every week.
func (w Weeks) SumRuns() float64 {
	var total float64
	for _, b := range w {
		total += b.SumRuns()
	}
	return total
}

// NumRuns counts the runs of every week.
func (w Weeks) NumRuns() int {
	var n int
	for _, b := range w {
		n += b.NumRuns()
	}
	return n
}

// Diff returns the distance run minus the distance planned across every week.
func (w Weeks) Diff() float64 {
	return w.SumRuns() - w.SumGoals()
}

// DayTotal is the distance run on one labelled day.
type DayTotal struct {
	Label    string
	Date     time.Time
	Distance float64
}

// TrailingDays returns the n days ending on today, oldest first, labelled
// with their weekday abbreviation.
func TrailingDays(series *RunSeries, today time.Time, n int) ([]DayTotal, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: need at least one day, got %d", ErrInvalidRange, n)
	}
	today = Day(today)
	start := addDays(today, -(n - 1))

	if series == nil {
		series = NewRunSeries(nil)
	}
	distances, err := series.DailyDistancesBetween(start, today)
	if err != nil {
		return nil, err
	}

	days := make([]DayTotal, n)
	for i, d := range distances {
		date := addDays(start, i)
		days[i] = DayTotal{Label: date.Format("Mon"), Date: date, Distance: d}
	}
	return days, nil
}
