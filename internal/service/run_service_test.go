package service

import (
	"alcyxob/runtrack/internal/domain"
	"alcyxob/runtrack/internal/repository"
	"alcyxob/runtrack/internal/runlog"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseDistance(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"3.1", 3.1, false},
		{" 2 ", 2, false},
		{"0", 0, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"1e400", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDistance(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDistance)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	today := time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)

	got, err := ParseDate("", today)
	require.NoError(t, err)
	assert.Equal(t, runlog.Date(2024, 3, 9), got)

	got, err = ParseDate("2024-01-02", today)
	require.NoError(t, err)
	assert.Equal(t, runlog.Date(2024, 1, 2), got)

	got, err = ParseDate("9999-12-31", today)
	require.NoError(t, err)
	assert.Equal(t, runlog.Date(9999, 12, 31), got)

	_, err = ParseDate("01/02/2024", today)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAddRun(t *testing.T) {
	userID := primitive.NewObjectID()
	runID := primitive.NewObjectID()
	runs := &repository.MockRunRepository{}
	runs.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.RunRecord) bool {
		return r.UserID == userID && r.Distance == 3.5 && r.Date.Equal(runlog.Date(2024, 1, 2))
	})).Return(runID, nil)

	svc := NewRunService(runs, &repository.MockGoalRepository{})
	run, err := svc.AddRun(context.Background(), userID, "3.5", time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, runID, run.ID)
	runs.AssertExpectations(t)
}

func TestAddRun_InvalidInput(t *testing.T) {
	runs := &repository.MockRunRepository{}
	svc := NewRunService(runs, &repository.MockGoalRepository{})

	_, err := svc.AddRun(context.Background(), primitive.NewObjectID(), "-2", runlog.Date(2024, 1, 2))
	assert.ErrorIs(t, err, ErrInvalidDistance)

	_, err = svc.AddRun(context.Background(), primitive.NewObjectID(), "2", time.Time{})
	assert.ErrorIs(t, err, ErrInvalidDate)

	runs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddGoal_Created(t *testing.T) {
	userID := primitive.NewObjectID()
	goalID := primitive.NewObjectID()
	goals := &repository.MockGoalRepository{}
	goals.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.GoalRecord")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.GoalRecord).ID = goalID
		}).
		Return(true, nil)

	svc := NewRunService(&repository.MockRunRepository{}, goals)
	goal, created, err := svc.AddGoal(context.Background(), userID, "4", runlog.Date(2024, 1, 3))

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, goalID, goal.ID)
	assert.Equal(t, 4.0, goal.Distance)
	goals.AssertNotCalled(t, "GetByUserAndDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddGoal_Updated(t *testing.T) {
	userID := primitive.NewObjectID()
	date := runlog.Date(2024, 1, 3)
	stored := &domain.GoalRecord{ID: primitive.NewObjectID(), UserID: userID, Distance: 6, Date: date}
	goals := &repository.MockGoalRepository{}
	goals.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.GoalRecord")).Return(false, nil)
	goals.On("GetByUserAndDate", mock.Anything, userID, date).Return(stored, nil)

	svc := NewRunService(&repository.MockRunRepository{}, goals)
	goal, created, err := svc.AddGoal(context.Background(), userID, "6", date)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, stored, goal)
	goals.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	userID, id := primitive.NewObjectID(), primitive.NewObjectID()
	runs := &repository.MockRunRepository{}
	runs.On("GetByID", mock.Anything, id).Return(nil, repository.ErrNotFound)
	goals := &repository.MockGoalRepository{}
	goals.On("Delete", mock.Anything, id, userID).Return(repository.ErrNotFound)

	svc := NewRunService(runs, goals)
	assert.ErrorIs(t, svc.DeleteRun(context.Background(), userID, id), ErrRunNotFound)
	assert.ErrorIs(t, svc.DeleteGoal(context.Background(), userID, id), ErrGoalNotFound)
	runs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteRun_ChecksOwner(t *testing.T) {
	owner, other, id := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	runs := &repository.MockRunRepository{}
	runs.On("GetByID", mock.Anything, id).Return(&domain.RunRecord{ID: id, UserID: owner, Distance: 3}, nil)
	runs.On("Delete", mock.Anything, id, owner).Return(nil).Once()

	svc := NewRunService(runs, &repository.MockGoalRepository{})
	assert.ErrorIs(t, svc.DeleteRun(context.Background(), other, id), ErrRunAccessDenied)
	runs.AssertNotCalled(t, "Delete", mock.Anything, id, other)

	require.NoError(t, svc.DeleteRun(context.Background(), owner, id))
	runs.AssertExpectations(t)
}

func TestListRuns_EmptyIsNotNil(t *testing.T) {
	userID := primitive.NewObjectID()
	runs := &repository.MockRunRepository{}
	runs.On("GetByUserID", mock.Anything, userID).Return(nil, nil)

	got, err := NewRunService(runs, &repository.MockGoalRepository{}).ListRuns(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad(t *testing.T) {
	userID := primitive.NewObjectID()
	runs := &repository.MockRunRepository{}
	runs.On("GetByUserID", mock.Anything, userID).Return([]domain.RunRecord{
		{UserID: userID, Distance: 3, Date: runlog.Date(2024, 1, 2)},
		{UserID: userID, Distance: 2, Date: runlog.Date(2024, 1, 4)},
	}, nil)
	goals := &repository.MockGoalRepository{}
	goals.On("GetByUserID", mock.Anything, userID).Return([]domain.GoalRecord{
		{UserID: userID, Distance: 3, Date: runlog.Date(2024, 1, 2)},
	}, nil)

	gotRuns, gotGoals, err := NewRunService(runs, goals).Load(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []runlog.Run{
		runlog.NewRun(3, runlog.Date(2024, 1, 2)),
		runlog.NewRun(2, runlog.Date(2024, 1, 4)),
	}, gotRuns)
	assert.Equal(t, []runlog.Goal{runlog.NewGoal(3, runlog.Date(2024, 1, 2))}, gotGoals)
}
