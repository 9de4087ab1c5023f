package runlog

import (
	"errors"
	"strconv"
	"time"
)

// WeeklyBucket groups the daily pairs of one Monday-to-Sunday week. A bucket
// without pairs is a dummy week used to keep week sequences contiguous.
type WeeklyBucket struct {
	Monday time.Time
	Sunday time.Time
	Pairs  []DailyPair
}

// NewWeeklyBucket returns an empty bucket for the week starting on monday.
func NewWeeklyBucket(monday time.Time) WeeklyBucket {
	monday = Day(monday)
	return WeeklyBucket{Monday: monday, Sunday: addDays(monday, 6)}
}

// IsDummy reports whether the week holds no recorded activity.
func (b WeeklyBucket) IsDummy() bool {
	return len(b.Pairs) == 0
}

// Contains reports whether date falls within the week.
func (b WeeklyBucket) Contains(date time.Time) bool {
	date = Day(date)
	return !date.Before(b.Monday) && !date.After(b.Sunday)
}

// SumGoals returns the total of the goals set during the week.
func (b WeeklyBucket) SumGoals() float64 {
	return GoalRuns(b.Pairs).SumGoals()
}

// SumRuns returns the total distance run during the week.
func (b WeeklyBucket) SumRuns() float64 {
	return GoalRuns(b.Pairs).SumRuns()
}

// NumRuns returns the number of runs during the week.
func (b WeeklyBucket) NumRuns() int {
	return GoalRuns(b.Pairs).NumRuns()
}

// Diff returns the distance run minus the goals set.
func (b WeeklyBucket) Diff() float64 {
	return b.SumRuns() - b.SumGoals()
}

// Series flattens every run of the week into one series.
func (b WeeklyBucket) Series() *RunSeries {
	runs := NewRunSeries(nil)
	for _, p := range b.Pairs {
		runs.Extend(p.Runs)
	}
	return runs
}

// LongestRun returns the week's longest run, or ErrEmptyCollection for a week
// without runs.
func (b WeeklyBucket) LongestRun() (Run, error) {
	return b.Series().LongestRun()
}

// AverageRun returns the mean run distance of the week.
func (b WeeklyBucket) AverageRun() float64 {
	return b.Series().Average()
}

// DailyDistances returns seven totals, Monday first.
func (b WeeklyBucket) DailyDistances() []float64 {
	// The only error is ErrInvalidRange, and Monday never follows Sunday.
	totals, _ := b.Series().DailyDistancesBetween(b.Monday, b.Sunday)
	return totals
}

// Name labels the week, e.g. "Jan 6 - 12" or "Jan 30 - Feb 5".
func (b WeeklyBucket) Name() string {
	label := b.Monday.Format("Jan 2")
	if b.Monday.Month() == b.Sunday.Month() {
		return label + " - " + strconv.Itoa(b.Sunday.Day())
	}
	return label + " - " + b.Sunday.Format("Jan 2")
}

// CompareDistance returns how much further this week went than other, and
// that difference as a percentage of other. The percentage is 0 when other
// has no distance.
func (b WeeklyBucket) CompareDistance(other WeeklyBucket) (diff, percent float64) {
	return compare(b.SumRuns(), other.SumRuns())
}

// CompareLongestRun compares the longest runs of two weeks. A week without
// runs counts as a longest run of 0.
func (b WeeklyBucket) CompareLongestRun(other WeeklyBucket) (diff, percent float64) {
	return compare(b.longestDistance(), other.longestDistance())
}

func (b WeeklyBucket) longestDistance() float64 {
	run, err := b.LongestRun()
	if errors.Is(err, ErrEmptyCollection) {
		return 0
	}
	return run.Distance
}

func compare(current, previous float64) (diff, percent float64) {
	diff = current - previous
	if previous == 0 {
		return diff, 0
	}
	return diff, diff * 100 / previous
}

// WeeklyOptions controls BucketByWeek.
type WeeklyOptions struct {
	// IncludeDummyWeeks fills every week up to Today that has no activity.
	IncludeDummyWeeks bool
	// AtLeast left-pads the result with dummy weeks to this length.
	AtLeast int
	// Today anchors dummy weeks. Zero means the current date.
	Today time.Time
}

func (o WeeklyOptions) today() time.Time {
	if o.Today.IsZero() {
		return Today()
	}
	return Day(o.Today)
}

// FirstMonday returns the Monday of the week holding the earliest pair.
func FirstMonday(pairs []DailyPair) (time.Time, bool) {
	if len(pairs) == 0 {
		return time.Time{}, false
	}
	return MondayOf(pairs[0].Date), true
}

// BucketByWeek groups date-ordered pairs into consecutive weeks, oldest first.
func BucketByWeek(pairs []DailyPair, opts WeeklyOptions) Weeks {
	today := opts.today()

	monday, ok := FirstMonday(pairs)
	if !ok {
		weeks := make(Weeks, 0, opts.AtLeast)
		start := MondayOf(today)
		for i := opts.AtLeast - 1; i >= 0; i-- {
			weeks = append(weeks, NewWeeklyBucket(addDays(start, -7*i)))
		}
		return weeks
	}

	var weeks Weeks
	open := NewWeeklyBucket(monday)
	for _, p := range pairs {
		if p.Date.After(open.Sunday) {
			if !open.IsDummy() {
				weeks = append(weeks, open)
			}
			next := open.Monday
			for p.Date.After(addDays(next, 6)) {
				next = addDays(next, 7)
			}
			open = NewWeeklyBucket(next)
		}
		open.Pairs = append(open.Pairs, p)
	}
	if !open.IsDummy() {
		weeks = append(weeks, open)
	}

	if opts.IncludeDummyWeeks {
		weeks = addDummyWeeks(weeks, today)
	}

	for len(weeks) < opts.AtLeast {
		weeks = append(Weeks{NewWeeklyBucket(addDays(weeks[0].Monday, -7))}, weeks...)
	}
	return weeks
}

// addDummyWeeks inserts an empty week for every Monday between the first
// week and today's week that has no bucket.
func addDummyWeeks(weeks Weeks, today time.Time) Weeks {
	if len(weeks) == 0 {
		return weeks
	}

	filled := make(Weeks, 0, len(weeks))
	i := 0
	for current := weeks[0].Monday; !current.After(today); current = addDays(current, 7) {
		if i < len(weeks) && weeks[i].Monday.Equal(current) {
			filled = append(filled, weeks[i])
			i++
			continue
		}
		filled = append(filled, NewWeeklyBucket(current))
	}
	return append(filled, weeks[i:]...)
}
