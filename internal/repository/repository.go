package repository

import (
	"alcyxob/runtrack/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// RunRepository defines the interface for interacting with run data.
type RunRepository interface {
	Create(ctx context.Context, run *domain.RunRecord) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.RunRecord, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.RunRecord, error)
	Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error // Ensure user owns the run
}

// GoalRepository defines the interface for interacting with goal data.
type GoalRepository interface {
	// Upsert sets the goal for the record's user and date, reporting whether a new record was created.
	Upsert(ctx context.Context, goal *domain.GoalRecord) (created bool, err error)
	GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*domain.GoalRecord, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.GoalRecord, error)
	Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error
}

// ExportRepository defines the interface for interacting with export metadata.
type ExportRepository interface {
	Create(ctx context.Context, export *domain.Export) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Export, error)
}
