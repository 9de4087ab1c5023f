package runlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jan1 = Date(2024, time.January, 1)
	jan2 = Date(2024, time.January, 2)
	jan3 = Date(2024, time.January, 3)
)

func distances(runs []Run) []float64 {
	out := make([]float64, len(runs))
	for i, r := range runs {
		out[i] = r.Distance
	}
	return out
}

func assertSorted(t *testing.T, s *RunSeries) {
	t.Helper()
	runs := s.Runs()
	for i := 1; i < len(runs); i++ {
		assert.False(t, runs[i].Date.Before(runs[i-1].Date), "run %d out of order", i)
	}
}

func TestNewRunSeries_SortsStableCopy(t *testing.T) {
	input := []Run{
		NewRun(5, jan2),
		NewRun(3, jan1),
		NewRun(2, jan1),
	}
	s := NewRunSeries(input)

	assert.Equal(t, []float64{3, 2, 5}, distances(s.Runs()))
	assert.Equal(t, jan1, s.Date())
	// input untouched
	assert.Equal(t, 5.0, input[0].Distance)
}

func TestNewRunSeries_NormalisesTimeOfDay(t *testing.T) {
	s := NewRunSeries([]Run{{Distance: 4, Date: time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC)}})
	assert.Equal(t, jan1, s.First().Date)
}

func TestNewRunSeriesOn(t *testing.T) {
	s, err := NewRunSeriesOn(jan1, []Run{NewRun(1, jan1)})
	require.NoError(t, err)
	assert.Equal(t, jan1, s.Date())

	empty, err := NewRunSeriesOn(jan3, nil)
	require.NoError(t, err)
	assert.Equal(t, jan3, empty.Date())
	assert.True(t, empty.Empty())

	_, err = NewRunSeriesOn(jan2, []Run{NewRun(1, jan1)})
	assert.ErrorIs(t, err, ErrDateMismatch)
}

func TestAddAll_MergesInOrder(t *testing.T) {
	s := NewRunSeries([]Run{NewRun(1, jan1), NewRun(3, jan3)})
	s.AddAll([]Run{NewRun(2, jan2), NewRun(4, Date(2023, time.December, 31))})

	assert.Equal(t, []float64{4, 1, 2, 3}, distances(s.Runs()))
	assertSorted(t, s)
}

func TestAddAll_NewRunsPrecedeExistingOnTie(t *testing.T) {
	s := NewRunSeries([]Run{NewRun(1, jan1), NewRun(2, jan2)})
	s.AddAll([]Run{NewRun(10, jan2), NewRun(20, jan1)})

	assert.Equal(t, []float64{20, 1, 10, 2}, distances(s.Runs()))
}

func TestAddAll_LengthLaw(t *testing.T) {
	a := NewRunSeries([]Run{NewRun(1, jan1), NewRun(2, jan3)})
	b := NewRunSeries([]Run{NewRun(3, jan2), NewRun(4, jan2), NewRun(5, jan1)})

	before := a.Len()
	sumBefore := a.Sum()
	a.Extend(b)

	assert.Equal(t, before+b.Len(), a.Len())
	assert.InDelta(t, sumBefore+b.Sum(), a.Sum(), 1e-9)
	assertSorted(t, a)
}

func TestAdd_DateFollowsEarliestRun(t *testing.T) {
	s := NewRunSeries(nil)
	s.Add(NewRun(2, jan2))
	s.Add(NewRun(1, jan1))

	assert.Equal(t, jan1, s.Date())
	assert.Equal(t, jan1, s.First().Date)
	assert.Equal(t, jan2, s.Last().Date)
}

func TestExtend_Nil(t *testing.T) {
	s := NewRunSeries([]Run{NewRun(1, jan1)})
	s.Extend(nil)
	assert.Equal(t, 1, s.Len())
}

func TestInterval(t *testing.T) {
	s := NewRunSeries([]Run{
		NewRun(1, jan1),
		NewRun(2, jan2),
		NewRun(3, jan2),
		NewRun(4, jan3),
	})

	tests := []struct {
		name       string
		start, end time.Time
		want       []float64
	}{
		{"inclusive both ends", jan1, jan3, []float64{1, 2, 3, 4}},
		{"single day", jan2, jan2, []float64{2, 3}},
		{"before all", Date(2023, 1, 1), Date(2023, 1, 5), []float64{}},
		{"tail", jan3, Date(2024, 2, 1), []float64{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Interval(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, distances(got.Runs()))
			for _, r := range got.Runs() {
				assert.False(t, r.Date.Before(Day(tt.start)))
				assert.False(t, r.Date.After(Day(tt.end)))
			}
		})
	}
}

func TestInterval_InvalidRange(t *testing.T) {
	s := NewRunSeries([]Run{NewRun(1, jan1)})
	_, err := s.Interval(jan3, jan1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestIsSingleDay(t *testing.T) {
	assert.True(t, NewRunSeries(nil).IsSingleDay())
	assert.True(t, NewRunSeries([]Run{NewRun(1, jan1), NewRun(2, jan1)}).IsSingleDay())
	assert.False(t, NewRunSeries([]Run{NewRun(1, jan1), NewRun(2, jan2)}).IsSingleDay())
}

func TestSplitByDay(t *testing.T) {
	assert.Empty(t, NewRunSeries(nil).SplitByDay())

	single := NewRunSeries([]Run{NewRun(1, jan1), NewRun(2, jan1)})
	days := single.SplitByDay()
	require.Len(t, days, 1)
	assert.Same(t, single, days[0])

	s := NewRunSeries([]Run{
		NewRun(3, jan1),
		NewRun(5, jan2),
		NewRun(2, jan1),
		NewRun(7, jan3),
	})
	days = s.SplitByDay()
	require.Len(t, days, 3)
	assert.Equal(t, jan1, days[0].Date())
	assert.Equal(t, []float64{3, 2}, distances(days[0].Runs()))
	assert.Equal(t, jan2, days[1].Date())
	assert.Equal(t, jan3, days[2].Date())
	for _, d := range days {
		assert.True(t, d.IsSingleDay())
	}
}

func TestDailyDistancesBetween(t *testing.T) {
	s := NewRunSeries([]Run{NewRun(3, jan1), NewRun(2, jan1), NewRun(5, jan2)})

	got, err := s.DailyDistancesBetween(jan1, jan3)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 0}, got)

	got, err = s.DailyDistancesBetween(jan2, jan2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, got)

	got, err = NewRunSeries(nil).DailyDistancesBetween(jan1, Date(2024, 1, 31))
	require.NoError(t, err)
	assert.Len(t, got, 31)

	_, err = s.DailyDistancesBetween(jan2, jan1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestDailyDistancesBetween_AcrossDST(t *testing.T) {
	// dates are UTC midnights, so a span containing a DST change has no drift
	start := Date(2024, time.March, 1)
	end := Date(2024, time.March, 31)
	s := NewRunSeries([]Run{NewRun(1, end)})

	got, err := s.DailyDistancesBetween(start, end)
	require.NoError(t, err)
	require.Len(t, got, 31)
	assert.Equal(t, 1.0, got[30])
}

func TestDailyDistancesBetween_MultiCentury(t *testing.T) {
	start := Date(1500, time.January, 1)
	end := Date(2100, time.January, 1)
	s := NewRunSeries([]Run{NewRun(2, start), NewRun(4, end)})

	got, err := s.DailyDistancesBetween(start, end)
	require.NoError(t, err)
	require.Len(t, got, 219147)
	assert.Equal(t, 2.0, got[0])
	assert.Equal(t, 4.0, got[219146])
}

func TestSumAverage(t *testing.T) {
	empty := NewRunSeries(nil)
	assert.Zero(t, empty.Sum())
	assert.Zero(t, empty.Average())

	s := NewRunSeries([]Run{NewRun(3, jan1), NewRun(2, jan1), NewRun(7, jan2)})
	assert.InDelta(t, 12.0, s.Sum(), 1e-9)
	assert.InDelta(t, 4.0, s.Average(), 1e-9)
}

func TestLongestRun(t *testing.T) {
	_, err := NewRunSeries(nil).LongestRun()
	assert.ErrorIs(t, err, ErrEmptyCollection)

	s := NewRunSeries([]Run{NewRun(6, jan3), NewRun(6, jan1), NewRun(2, jan2)})
	longest, err := s.LongestRun()
	require.NoError(t, err)
	assert.Equal(t, NewRun(6, jan1), longest)
}

func TestString(t *testing.T) {
	assert.Equal(t, "0", NewRunSeries(nil).String())
	assert.Equal(t, "3 + 2.5", NewRunSeries([]Run{NewRun(3, jan1), NewRun(2.5, jan1)}).String())
}
