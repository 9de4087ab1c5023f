package runlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeks_Queries(t *testing.T) {
	pairs := mustMerge(t,
		[]Goal{NewGoal(10, Date(2024, time.January, 1)), NewGoal(12, Date(2024, time.January, 15))},
		[]Run{
			NewRun(4, Date(2024, time.January, 2)),
			NewRun(6, Date(2024, time.January, 3)),
			NewRun(7, Date(2024, time.January, 16)),
		},
	)
	weeks := pairs.Weekly(WeeklyOptions{IncludeDummyWeeks: true, AtLeast: 4, Today: Date(2024, time.January, 17)})

	require.Len(t, weeks, 4)
	assert.Equal(t, []float64{0, 10, 0, 7}, weeks.Distances())
	assert.Equal(t, []string{"Dec 25 - 31", "Jan 1 - 7", "Jan 8 - 14", "Jan 15 - 21"}, weeks.Labels())
	assert.InDelta(t, pairs.SumGoals(), weeks.SumGoals(), 1e-9)
	assert.InDelta(t, pairs.SumRuns(), weeks.SumRuns(), 1e-9)
	assert.Equal(t, 3, weeks.NumRuns())
	assert.InDelta(t, -5.0, weeks.Diff(), 1e-9)

	last := weeks.Last(2)
	require.Len(t, last, 2)
	assert.Equal(t, Date(2024, time.January, 8), last[0].Monday)
	assert.Len(t, weeks.Last(10), 4)
	assert.Empty(t, weeks.Last(0))

	reversed := weeks.Reversed()
	assert.Equal(t, weeks[3].Monday, reversed[0].Monday)
	assert.Equal(t, weeks[0].Monday, reversed[3].Monday)
}

func TestGoalRuns_First(t *testing.T) {
	_, ok := GoalRuns{}.First()
	assert.False(t, ok)

	pairs := mustMerge(t, nil, []Run{NewRun(1, jan2), NewRun(1, jan1)})
	first, ok := pairs.First()
	require.True(t, ok)
	assert.Equal(t, jan1, first.Date)
}

func TestTrailingDays(t *testing.T) {
	today := Date(2024, time.January, 10) // Wednesday
	series := NewRunSeries([]Run{
		NewRun(3, Date(2024, time.January, 4)),
		NewRun(5, today),
		NewRun(1, today),
		NewRun(9, Date(2024, time.January, 1)),
	})

	days, err := TrailingDays(series, today, 7)
	require.NoError(t, err)
	require.Len(t, days, 7)

	var labels []string
	var totals []float64
	for _, d := range days {
		labels = append(labels, d.Label)
		totals = append(totals, d.Distance)
	}
	assert.Equal(t, []string{"Thu", "Fri", "Sat", "Sun", "Mon", "Tue", "Wed"}, labels)
	assert.Equal(t, []float64{3, 0, 0, 0, 0, 0, 6}, totals)
	assert.Equal(t, today, days[6].Date)

	days, err = TrailingDays(nil, today, 1)
	require.NoError(t, err)
	assert.Equal(t, []DayTotal{{Label: "Wed", Date: today, Distance: 0}}, days)

	_, err = TrailingDays(series, today, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
