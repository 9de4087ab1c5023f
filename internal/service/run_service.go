package service

import (
	"alcyxob/runtrack/internal/domain"
	"alcyxob/runtrack/internal/repository"
	"alcyxob/runtrack/internal/runlog"
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrInvalidDistance = errors.New("distance must be a non-negative number")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrRunNotFound     = errors.New("run not found")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrRunAccessDenied = errors.New("run belongs to another user")
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

// ParseDistance parses a distance entered as text, e.g. "3.1".
func ParseDistance(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDistance)
	}
	distance, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDistance, text)
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDistance, text)
	}
	return distance, nil
}

// ParseDate parses a YYYY-MM-DD date. An empty string means today.
func ParseDate(text string, today time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return runlog.Day(today), nil
	}
	date, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	return runlog.Day(date), nil
}

type RunService interface {
	AddRun(ctx context.Context, userID primitive.ObjectID, distanceText string, date time.Time) (*domain.RunRecord, error)
	// AddGoal sets the goal for a date, reporting whether it was newly created.
	AddGoal(ctx context.Context, userID primitive.ObjectID, distanceText string, date time.Time) (*domain.GoalRecord, bool, error)
	ListRuns(ctx context.Context, userID primitive.ObjectID) ([]domain.RunRecord, error)
	ListGoals(ctx context.Context, userID primitive.ObjectID) ([]domain.GoalRecord, error)
	DeleteRun(ctx context.Context, userID, runID primitive.ObjectID) error
	DeleteGoal(ctx context.Context, userID, goalID primitive.ObjectID) error
	// Load returns the user's records converted for aggregation.
	Load(ctx context.Context, userID primitive.ObjectID) ([]runlog.Run, []runlog.Goal, error)
}

// runService implements the RunService interface.
type runService struct {
	runRepo  repository.RunRepository
	goalRepo repository.GoalRepository
}

// NewRunService creates a new instance of runService.
func NewRunService(runRepo repository.RunRepository, goalRepo repository.GoalRepository) RunService {
	return &runService{
		runRepo:  runRepo,
		goalRepo: goalRepo,
	}
}

// AddRun records a run for the user.
func (s *runService) AddRun(ctx context.Context, userID primitive.ObjectID, distanceText string, date time.Time) (*domain.RunRecord, error) {
	distance, err := ParseDistance(distanceText)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	run := &domain.RunRecord{
		UserID:   userID,
		Distance: distance,
		Date:     runlog.Day(date),
	}
	runID, err := s.runRepo.Create(ctx, run)
	if err != nil {
		return nil, err
	}
	run.ID = runID
	return run, nil
}

// AddGoal creates or updates the user's goal for a date.
func (s *runService) AddGoal(ctx context.Context, userID primitive.ObjectID, distanceText string, date time.Time) (*domain.GoalRecord, bool, error) {
	distance, err := ParseDistance(distanceText)
	if err != nil {
		return nil, false, err
	}
	if date.IsZero() {
		return nil, false, ErrInvalidDate
	}

	goal := &domain.GoalRecord{
		UserID:   userID,
		Distance: distance,
		Date:     runlog.Day(date),
	}
	created, err := s.goalRepo.Upsert(ctx, goal)
	if err != nil {
		return nil, false, err
	}
	if goal.ID.IsZero() {
		// updates do not report the id; read the stored record back
		stored, err := s.goalRepo.GetByUserAndDate(ctx, userID, goal.Date)
		if err != nil {
			return nil, false, err
		}
		goal = stored
	}
	return goal, created, nil
}

// ListRuns returns the user's runs, oldest first.
func (s *runService) ListRuns(ctx context.Context, userID primitive.ObjectID) ([]domain.RunRecord, error) {
	runs, err := s.runRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if runs == nil {
		runs = []domain.RunRecord{}
	}
	return runs, nil
}

// ListGoals returns the user's goals, oldest first.
func (s *runService) ListGoals(ctx context.Context, userID primitive.ObjectID) ([]domain.GoalRecord, error) {
	goals, err := s.goalRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []domain.GoalRecord{}
	}
	return goals, nil
}

// DeleteRun removes one of the user's runs. A run owned by someone else is
// reported as ErrRunAccessDenied.
func (s *runService) DeleteRun(ctx context.Context, userID, runID primitive.ObjectID) error {
	run, err := s.runRepo.GetByID(ctx, runID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrRunNotFound
	}
	if err != nil {
		return err
	}
	if run.UserID != userID {
		return ErrRunAccessDenied
	}

	err = s.runRepo.Delete(ctx, runID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrRunNotFound
	}
	return err
}

// DeleteGoal removes one of the user's goals.
func (s *runService) DeleteGoal(ctx context.Context, userID, goalID primitive.ObjectID) error {
	err := s.goalRepo.Delete(ctx, goalID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrGoalNotFound
	}
	return err
}

// Load reads every run and goal of the user.
func (s *runService) Load(ctx context.Context, userID primitive.ObjectID) ([]runlog.Run, []runlog.Goal, error) {
	runs, err := s.runRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load runs: %w", err)
	}
	goals, err := s.goalRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load goals: %w", err)
	}
	return domain.RunsFromRecords(runs), domain.GoalsFromRecords(goals), nil
}
