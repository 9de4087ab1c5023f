package service

import (
	"alcyxob/runtrack/internal/domain"
	"alcyxob/runtrack/internal/runlog"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthService for testing.
type MockAuthService struct {
	mock.Mock
}

var _ AuthService = &MockAuthService{} // Compile-time check

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	args := m.Called(ctx, name, email, password)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(1).(*domain.User)
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthService) GetUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockAuthService) GetJWTSecret() string {
	return m.Called().String(0)
}

// MockRunService is a mock implementation of RunService for testing.
type MockRunService struct {
	mock.Mock
}

var _ RunService = &MockRunService{} // Compile-time check

func (m *MockRunService) AddRun(ctx context.Context, userID primitive.ObjectID, distanceText string, date time.Time) (*domain.RunRecord, error) {
	args := m.Called(ctx, userID, distanceText, date)
	run, _ := args.Get(0).(*domain.RunRecord)
	return run, args.Error(1)
}

func (m *MockRunService) AddGoal(ctx context.Context, userID primitive.ObjectID, distanceText string, date time.Time) (*domain.GoalRecord, bool, error) {
	args := m.Called(ctx, userID, distanceText, date)
	goal, _ := args.Get(0).(*domain.GoalRecord)
	return goal, args.Bool(1), args.Error(2)
}

func (m *MockRunService) ListRuns(ctx context.Context, userID primitive.ObjectID) ([]domain.RunRecord, error) {
	args := m.Called(ctx, userID)
	runs, _ := args.Get(0).([]domain.RunRecord)
	return runs, args.Error(1)
}

func (m *MockRunService) ListGoals(ctx context.Context, userID primitive.ObjectID) ([]domain.GoalRecord, error) {
	args := m.Called(ctx, userID)
	goals, _ := args.Get(0).([]domain.GoalRecord)
	return goals, args.Error(1)
}

func (m *MockRunService) DeleteRun(ctx context.Context, userID, runID primitive.ObjectID) error {
	return m.Called(ctx, userID, runID).Error(0)
}

func (m *MockRunService) DeleteGoal(ctx context.Context, userID, goalID primitive.ObjectID) error {
	return m.Called(ctx, userID, goalID).Error(0)
}

func (m *MockRunService) Load(ctx context.Context, userID primitive.ObjectID) ([]runlog.Run, []runlog.Goal, error) {
	args := m.Called(ctx, userID)
	runs, _ := args.Get(0).([]runlog.Run)
	goals, _ := args.Get(1).([]runlog.Goal)
	return runs, goals, args.Error(2)
}

// MockDashboardService is a mock implementation of DashboardService for testing.
type MockDashboardService struct {
	mock.Mock
}

var _ DashboardService = &MockDashboardService{} // Compile-time check

func (m *MockDashboardService) Dashboard(ctx context.Context, userID primitive.ObjectID) (*Dashboard, error) {
	args := m.Called(ctx, userID)
	d, _ := args.Get(0).(*Dashboard)
	return d, args.Error(1)
}

func (m *MockDashboardService) History(ctx context.Context, userID primitive.ObjectID) ([]WeekSummary, error) {
	args := m.Called(ctx, userID)
	weeks, _ := args.Get(0).([]WeekSummary)
	return weeks, args.Error(1)
}

// MockExportService is a mock implementation of ExportService for testing.
type MockExportService struct {
	mock.Mock
}

var _ ExportService = &MockExportService{} // Compile-time check

func (m *MockExportService) ExportWeekly(ctx context.Context, userID primitive.ObjectID) (*ExportResult, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*ExportResult)
	return res, args.Error(1)
}

func (m *MockExportService) ListExports(ctx context.Context, userID primitive.ObjectID) ([]domain.Export, error) {
	args := m.Called(ctx, userID)
	exports, _ := args.Get(0).([]domain.Export)
	return exports, args.Error(1)
}

func (m *MockExportService) DownloadURL(ctx context.Context, export domain.Export) (string, error) {
	args := m.Called(ctx, export)
	return args.String(0), args.Error(1)
}
