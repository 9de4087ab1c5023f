package repository

import (
	"alcyxob/runtrack/internal/domain"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a mock implementation of UserRepository for testing.
type MockUserRepository struct {
	mock.Mock
}

var _ UserRepository = &MockUserRepository{} // Compile-time check

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

// MockRunRepository is a mock implementation of RunRepository for testing.
type MockRunRepository struct {
	mock.Mock
}

var _ RunRepository = &MockRunRepository{} // Compile-time check

func (m *MockRunRepository) Create(ctx context.Context, run *domain.RunRecord) (primitive.ObjectID, error) {
	args := m.Called(ctx, run)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockRunRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.RunRecord, error) {
	args := m.Called(ctx, id)
	run, _ := args.Get(0).(*domain.RunRecord)
	return run, args.Error(1)
}

func (m *MockRunRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.RunRecord, error) {
	args := m.Called(ctx, userID)
	runs, _ := args.Get(0).([]domain.RunRecord)
	return runs, args.Error(1)
}

func (m *MockRunRepository) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	return m.Called(ctx, id, userID).Error(0)
}

// MockGoalRepository is a mock implementation of GoalRepository for testing.
type MockGoalRepository struct {
	mock.Mock
}

var _ GoalRepository = &MockGoalRepository{} // Compile-time check

func (m *MockGoalRepository) Upsert(ctx context.Context, goal *domain.GoalRecord) (bool, error) {
	args := m.Called(ctx, goal)
	return args.Bool(0), args.Error(1)
}

func (m *MockGoalRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*domain.GoalRecord, error) {
	args := m.Called(ctx, userID, date)
	goal, _ := args.Get(0).(*domain.GoalRecord)
	return goal, args.Error(1)
}

func (m *MockGoalRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.GoalRecord, error) {
	args := m.Called(ctx, userID)
	goals, _ := args.Get(0).([]domain.GoalRecord)
	return goals, args.Error(1)
}

func (m *MockGoalRepository) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	return m.Called(ctx, id, userID).Error(0)
}

// MockExportRepository is a mock implementation of ExportRepository for testing.
type MockExportRepository struct {
	mock.Mock
}

var _ ExportRepository = &MockExportRepository{} // Compile-time check

func (m *MockExportRepository) Create(ctx context.Context, export *domain.Export) (primitive.ObjectID, error) {
	args := m.Called(ctx, export)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockExportRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Export, error) {
	args := m.Called(ctx, userID)
	exports, _ := args.Get(0).([]domain.Export)
	return exports, args.Error(1)
}
