package runlog

import (
	"fmt"
	"sort"
	"time"
)

// DailyPair combines the goal and the runs recorded on one date.
type DailyPair struct {
	Date time.Time
	Goal Goal
	Runs *RunSeries
}

// NewDailyPair resolves the pair's date from, in order: the explicit date, the
// goal's date when there are no runs, the runs' date when the goal has none,
// and otherwise the agreement of both. A zero date means none was given and a
// nil runs is an empty series.
func NewDailyPair(goal Goal, runs *RunSeries, date time.Time) (DailyPair, error) {
	if runs == nil {
		runs = NewRunSeries(nil)
	}
	goal.Date = Day(goal.Date)
	date = Day(date)

	if !runs.IsSingleDay() {
		return DailyPair{}, fmt.Errorf("%w: runs span %s to %s", ErrDateMismatch,
			runs.First().Date.Format(time.DateOnly), runs.Last().Date.Format(time.DateOnly))
	}

	var resolved time.Time
	switch {
	case !date.IsZero():
		if goal.hasDate() && !goal.Date.Equal(date) {
			return DailyPair{}, fmt.Errorf("%w: goal dated %s, pair dated %s", ErrDateMismatch,
				goal.Date.Format(time.DateOnly), date.Format(time.DateOnly))
		}
		if !runs.Empty() && !runs.First().Date.Equal(date) {
			return DailyPair{}, fmt.Errorf("%w: runs dated %s, pair dated %s", ErrDateMismatch,
				runs.First().Date.Format(time.DateOnly), date.Format(time.DateOnly))
		}
		resolved = date
	case goal.hasDate() && runs.Empty():
		resolved = goal.Date
	case !goal.hasDate() && !runs.Empty():
		resolved = runs.First().Date
	case goal.hasDate() && !runs.Empty():
		if !goal.Date.Equal(runs.First().Date) {
			return DailyPair{}, fmt.Errorf("%w: goal dated %s, runs dated %s", ErrDateMismatch,
				goal.Date.Format(time.DateOnly), runs.First().Date.Format(time.DateOnly))
		}
		resolved = goal.Date
	default:
		return DailyPair{}, ErrMissingDate
	}

	return DailyPair{Date: resolved, Goal: goal, Runs: runs}, nil
}

// Sum returns the total distance run that day.
func (p DailyPair) Sum() float64 {
	return p.Runs.Sum()
}

// NumRuns returns the number of runs that day.
func (p DailyPair) NumRuns() int {
	return p.Runs.Len()
}

// Diff returns the distance run minus the goal.
func (p DailyPair) Diff() float64 {
	return p.Sum() - p.Goal.Distance
}

// AddRun records another run on the pair's date.
func (p *DailyPair) AddRun(run Run) error {
	run.Date = Day(run.Date)
	if !run.Date.Equal(p.Date) {
		return fmt.Errorf("%w: run dated %s, pair dated %s", ErrDateMismatch,
			run.Date.Format(time.DateOnly), p.Date.Format(time.DateOnly))
	}
	if p.Runs == nil {
		p.Runs = NewRunSeries(nil)
	}
	p.Runs.Add(run)
	return nil
}

// ReadableRuns renders the day's runs as "3 + 2".
func (p DailyPair) ReadableRuns() string {
	return p.Runs.String()
}

// sortGoals returns a date-sorted copy of goals with one goal per date. When
// two goals share a date the later one wins, matching how goals are upserted.
func sortGoals(goals []Goal) []Goal {
	sorted := make([]Goal, len(goals))
	for i, g := range goals {
		sorted[i] = Goal{Distance: g.Distance, Date: Day(g.Date)}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	unique := sorted[:0]
	for _, g := range sorted {
		if n := len(unique); n > 0 && unique[n-1].Date.Equal(g.Date) {
			unique[n-1] = g
			continue
		}
		unique = append(unique, g)
	}
	return unique
}

// MergeGoalsAndRuns pairs goals and runs by date. The output holds exactly one
// pair per date that has a goal record or a run, in increasing date order.
// Neither input slice is modified.
func MergeGoalsAndRuns(goals []Goal, runs []Run) (GoalRuns, error) {
	if len(goals) == 0 && len(runs) == 0 {
		return GoalRuns{}, nil
	}

	sortedGoals := sortGoals(goals)
	daily := NewRunSeries(runs).SplitByDay()

	combined := make(GoalRuns, 0, len(sortedGoals)+len(daily))
	i, j := 0, 0
	for i < len(sortedGoals) || j < len(daily) {
		var (
			pair DailyPair
			err  error
		)
		switch {
		case j == len(daily):
			pair, err = NewDailyPair(sortedGoals[i], nil, time.Time{})
			i++
		case i == len(sortedGoals):
			pair, err = NewDailyPair(Goal{}, daily[j], time.Time{})
			j++
		case sortedGoals[i].Date.Equal(daily[j].Date()):
			pair, err = NewDailyPair(sortedGoals[i], daily[j], time.Time{})
			i, j = i+1, j+1
		case sortedGoals[i].Date.Before(daily[j].Date()):
			pair, err = NewDailyPair(sortedGoals[i], nil, time.Time{})
			i++
		default:
			pair, err = NewDailyPair(Goal{}, daily[j], time.Time{})
			j++
		}
		if err != nil {
			return nil, err
		}
		combined = append(combined, pair)
	}
	return combined, nil
}
