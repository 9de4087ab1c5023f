package service

import (
	"alcyxob/runtrack/internal/log"
	"alcyxob/runtrack/internal/runlog"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultDashboardWeeks is the number of trailing weeks shown when none is configured.
const DefaultDashboardWeeks = 4

// dashboardDays is the length of the trailing daily chart.
const dashboardDays = 7

// WeekTotal is the distance run in one labelled week.
type WeekTotal struct {
	Label    string
	Monday   time.Time
	Distance float64
}

// Totals summarises a span of goals and runs.
type Totals struct {
	Goal     float64
	Distance float64
	Runs     int
	Diff     float64
}

// Dashboard is the landing page summary of a user's training.
type Dashboard struct {
	Days        []runlog.DayTotal
	RecentWeeks []WeekTotal
	AllWeeks    []WeekTotal
	Totals      Totals
}

// DaySummary describes one day inside a week of the history.
type DaySummary struct {
	Date     time.Time
	Goal     float64
	Distance float64
	Runs     string // e.g. "3 + 2"
	NumRuns  int
	Diff     float64
}

// WeekComparison holds the change from the previous recorded week.
type WeekComparison struct {
	Distance        float64
	DistancePercent float64
	Longest         float64
	LongestPercent  float64
}

// WeekSummary describes one week of the history.
type WeekSummary struct {
	Name           string
	Monday         time.Time
	Sunday         time.Time
	Days           []DaySummary
	Totals         Totals
	Longest        float64
	Average        float64
	DailyDistances []float64
	// Previous is nil for the oldest week.
	Previous *WeekComparison
}

type DashboardService interface {
	Dashboard(ctx context.Context, userID primitive.ObjectID) (*Dashboard, error)
	// History returns every recorded week, newest first.
	History(ctx context.Context, userID primitive.ObjectID) ([]WeekSummary, error)
}

// dashboardService implements the DashboardService interface.
type dashboardService struct {
	runService RunService
	weeks      int
	today      func() time.Time
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(runService RunService, weeks int) DashboardService {
	if weeks <= 0 {
		weeks = DefaultDashboardWeeks
	}
	return &dashboardService{
		runService: runService,
		weeks:      weeks,
		today:      runlog.Today,
	}
}

func (s *dashboardService) merge(ctx context.Context, userID primitive.ObjectID) (runlog.GoalRuns, []runlog.Run, error) {
	runs, goals, err := s.runService.Load(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	merged, err := runlog.MergeGoalsAndRuns(goals, runs)
	if err != nil {
		log.Errorw("Failed to merge goals and runs", "userId", userID.Hex(), "error", err)
		return nil, nil, err
	}
	return merged, runs, nil
}

// Dashboard builds the trailing week of days, the trailing weeks and the all-time weekly totals.
func (s *dashboardService) Dashboard(ctx context.Context, userID primitive.ObjectID) (*Dashboard, error) {
	merged, runs, err := s.merge(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := s.today()

	days, err := runlog.TrailingDays(runlog.NewRunSeries(runs), today, dashboardDays)
	if err != nil {
		return nil, fmt.Errorf("trailing days: %w", err)
	}

	allTime := merged.Weekly(runlog.WeeklyOptions{
		IncludeDummyWeeks: true,
		AtLeast:           s.weeks,
		Today:             today,
	})

	return &Dashboard{
		Days:        days,
		RecentWeeks: weekTotals(allTime.Last(s.weeks)),
		AllWeeks:    weekTotals(allTime),
		Totals: Totals{
			Goal:     merged.SumGoals(),
			Distance: merged.SumRuns(),
			Runs:     merged.NumRuns(),
			Diff:     merged.Diff(),
		},
	}, nil
}

func weekTotals(weeks runlog.Weeks) []WeekTotal {
	totals := make([]WeekTotal, len(weeks))
	for i, w := range weeks {
		totals[i] = WeekTotal{Label: w.Name(), Monday: w.Monday, Distance: w.SumRuns()}
	}
	return totals
}

// History summarises every week that has a goal or a run.
func (s *dashboardService) History(ctx context.Context, userID primitive.ObjectID) ([]WeekSummary, error) {
	merged, _, err := s.merge(ctx, userID)
	if err != nil {
		return nil, err
	}

	weeks := merged.Weekly(runlog.WeeklyOptions{Today: s.today()})
	summaries := make([]WeekSummary, len(weeks))
	for i, w := range weeks {
		summary, err := summarizeWeek(w)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			distDiff, distPercent := w.CompareDistance(weeks[i-1])
			longDiff, longPercent := w.CompareLongestRun(weeks[i-1])
			summary.Previous = &WeekComparison{
				Distance:        distDiff,
				DistancePercent: distPercent,
				Longest:         longDiff,
				LongestPercent:  longPercent,
			}
		}
		// newest first
		summaries[len(weeks)-1-i] = summary
	}
	return summaries, nil
}

func summarizeWeek(w runlog.WeeklyBucket) (WeekSummary, error) {
	var longest float64
	run, err := w.LongestRun()
	switch {
	case err == nil:
		longest = run.Distance
	case !errors.Is(err, runlog.ErrEmptyCollection):
		return WeekSummary{}, err
	}

	days := make([]DaySummary, len(w.Pairs))
	for i, p := range w.Pairs {
		days[i] = DaySummary{
			Date:     p.Date,
			Goal:     p.Goal.Distance,
			Distance: p.Sum(),
			Runs:     p.ReadableRuns(),
			NumRuns:  p.NumRuns(),
			Diff:     p.Diff(),
		}
	}

	return WeekSummary{
		Name:   w.Name(),
		Monday: w.Monday,
		Sunday: w.Sunday,
		Days:   days,
		Totals: Totals{
			Goal:     w.SumGoals(),
			Distance: w.SumRuns(),
			Runs:     w.NumRuns(),
			Diff:     w.Diff(),
		},
		Longest:        longest,
		Average:        w.AverageRun(),
		DailyDistances: w.DailyDistances(),
	}, nil
}
