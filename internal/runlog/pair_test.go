package runlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDailyPair_DateResolution(t *testing.T) {
	runsJan1 := NewRunSeries([]Run{NewRun(3, jan1), NewRun(2, jan1)})

	tests := []struct {
		name    string
		goal    Goal
		runs    *RunSeries
		date    time.Time
		want    time.Time
		wantErr error
	}{
		{name: "explicit date only", date: jan2, want: jan2},
		{name: "explicit date agrees", goal: NewGoal(5, jan1), runs: runsJan1, date: jan1, want: jan1},
		{name: "explicit date contradicts goal", goal: NewGoal(5, jan2), date: jan1, wantErr: ErrDateMismatch},
		{name: "explicit date contradicts runs", runs: runsJan1, date: jan2, wantErr: ErrDateMismatch},
		{name: "goal without runs", goal: NewGoal(10, jan1), want: jan1},
		{name: "runs without goal", runs: runsJan1, want: jan1},
		{name: "goal and runs agree", goal: NewGoal(4, jan1), runs: runsJan1, want: jan1},
		{name: "goal and runs disagree", goal: NewGoal(4, jan2), runs: runsJan1, wantErr: ErrDateMismatch},
		{name: "runs over several days", runs: NewRunSeries([]Run{NewRun(1, jan1), NewRun(1, jan2)}), wantErr: ErrDateMismatch},
		{name: "nothing dated", wantErr: ErrMissingDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := NewDailyPair(tt.goal, tt.runs, tt.date)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, pair.Date)
			assert.NotNil(t, pair.Runs)
		})
	}
}

func TestDailyPair_Stats(t *testing.T) {
	pair, err := NewDailyPair(NewGoal(10, jan1), nil, time.Time{})
	require.NoError(t, err)
	assert.Zero(t, pair.Sum())
	assert.Equal(t, -10.0, pair.Diff())
	assert.Equal(t, "0", pair.ReadableRuns())

	require.NoError(t, pair.AddRun(NewRun(4, jan1)))
	require.NoError(t, pair.AddRun(NewRun(7.5, jan1)))
	assert.Equal(t, 2, pair.NumRuns())
	assert.InDelta(t, 1.5, pair.Diff(), 1e-9)
	assert.Equal(t, "4 + 7.5", pair.ReadableRuns())

	err = pair.AddRun(NewRun(1, jan2))
	assert.ErrorIs(t, err, ErrDateMismatch)
	assert.Equal(t, 2, pair.NumRuns())
}

func TestMergeGoalsAndRuns_RunsOnly(t *testing.T) {
	runs := []Run{NewRun(3, jan1), NewRun(2, jan1), NewRun(5, jan2)}

	pairs, err := MergeGoalsAndRuns(nil, runs)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.Equal(t, jan1, pairs[0].Date)
	assert.False(t, pairs[0].Goal.IsSet())
	assert.Equal(t, []float64{3, 2}, distances(pairs[0].Runs.Runs()))
	assert.InDelta(t, 5.0, pairs[0].Sum(), 1e-9)

	assert.Equal(t, jan2, pairs[1].Date)
	assert.Equal(t, []float64{5}, distances(pairs[1].Runs.Runs()))
}

func TestMergeGoalsAndRuns_GoalOnly(t *testing.T) {
	pairs, err := MergeGoalsAndRuns([]Goal{NewGoal(10, jan1)}, nil)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, jan1, pairs[0].Date)
	assert.True(t, pairs[0].Runs.Empty())
	assert.Equal(t, -10.0, pairs[0].Diff())
	assert.Equal(t, -10.0, pairs.Diff())
}

func TestMergeGoalsAndRuns_Interleaved(t *testing.T) {
	jan5 := Date(2024, time.January, 5)
	jan9 := Date(2024, time.January, 9)
	goals := []Goal{
		NewGoal(6, jan9),
		NewGoal(4, jan2),
		NewGoal(0, jan3),
	}
	runs := []Run{
		NewRun(5, jan5),
		NewRun(3, jan2),
		NewRun(1, jan1),
	}

	pairs, err := MergeGoalsAndRuns(goals, runs)
	require.NoError(t, err)

	var dates []time.Time
	for _, p := range pairs {
		dates = append(dates, p.Date)
	}
	// a goal-only tail (jan9) follows a run-only date (jan5)
	assert.Equal(t, []time.Time{jan1, jan2, jan3, jan5, jan9}, dates)

	assert.Equal(t, 4.0, pairs[1].Goal.Distance)
	assert.Equal(t, 1, pairs[1].NumRuns())
	// a zero-distance goal alone on its date still yields a pair
	assert.False(t, pairs[2].Goal.IsSet())
	assert.True(t, pairs[2].Runs.Empty())

	assert.InDelta(t, 10.0, pairs.SumGoals(), 1e-9)
	assert.InDelta(t, 9.0, pairs.SumRuns(), 1e-9)
	assert.Equal(t, 3, pairs.NumRuns())
	assert.InDelta(t, -1.0, pairs.Diff(), 1e-9)
}

func TestMergeGoalsAndRuns_RunTailAfterGoals(t *testing.T) {
	pairs, err := MergeGoalsAndRuns(
		[]Goal{NewGoal(3, jan1)},
		[]Run{NewRun(2, jan2), NewRun(2, jan3)},
	)
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Equal(t, jan3, pairs[2].Date)
}

func TestMergeGoalsAndRuns_DuplicateGoalDates(t *testing.T) {
	pairs, err := MergeGoalsAndRuns(
		[]Goal{NewGoal(3, jan1), NewGoal(8, jan1)},
		[]Run{NewRun(2, jan1)},
	)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, 8.0, pairs[0].Goal.Distance)
}

func TestMergeGoalsAndRuns_DoesNotMutateInputs(t *testing.T) {
	goals := []Goal{NewGoal(6, jan3), NewGoal(4, jan1)}
	runs := []Run{NewRun(5, jan2), NewRun(3, jan1)}

	_, err := MergeGoalsAndRuns(goals, runs)
	require.NoError(t, err)
	assert.Equal(t, jan3, goals[0].Date)
	assert.Equal(t, jan2, runs[0].Date)
}

func TestMergeGoalsAndRuns_UniqueIncreasingDates(t *testing.T) {
	var goals []Goal
	var runs []Run
	start := Date(2024, time.February, 1)
	for i := 0; i < 40; i++ {
		d := addDays(start, (i*7)%23)
		if i%3 == 0 {
			goals = append(goals, NewGoal(float64(i%5), d))
		}
		runs = append(runs, NewRun(float64(i), d))
	}

	pairs, err := MergeGoalsAndRuns(goals, runs)
	require.NoError(t, err)

	seen := map[time.Time]bool{}
	for _, g := range goals {
		seen[g.Date] = true
	}
	for _, r := range runs {
		seen[r.Date] = true
	}
	assert.Len(t, pairs, len(seen))
	for i := 1; i < len(pairs); i++ {
		assert.True(t, pairs[i].Date.After(pairs[i-1].Date))
	}
	assert.Equal(t, len(runs), pairs.NumRuns())
}

func TestMergeGoalsAndRuns_LastRepresentableDate(t *testing.T) {
	last := Date(9999, time.December, 31)
	pairs, err := MergeGoalsAndRuns(
		[]Goal{NewGoal(5, last)},
		[]Run{NewRun(3, jan1), NewRun(4, last)},
	)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, jan1, pairs[0].Date)
	assert.Equal(t, last, pairs[1].Date)
	assert.Equal(t, 5.0, pairs[1].Goal.Distance)
	assert.Equal(t, 1, pairs[1].NumRuns())
	assert.Equal(t, 4.0, pairs[1].Sum())
}

func TestMergeGoalsAndRuns_GoalsOutlastRuns(t *testing.T) {
	pairs, err := MergeGoalsAndRuns(
		[]Goal{NewGoal(5, jan1), NewGoal(6, jan3)},
		[]Run{NewRun(2, jan1)},
	)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, jan3, pairs[1].Date)
	assert.Zero(t, pairs[1].NumRuns())
}

func TestMergeGoalsAndRuns_Empty(t *testing.T) {
	pairs, err := MergeGoalsAndRuns(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}
