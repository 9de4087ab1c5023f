package mongo

import (
	"alcyxob/runtrack/internal/domain"
	"alcyxob/runtrack/internal/repository"
	"alcyxob/runtrack/internal/runlog"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const goalCollectionName = "goals"

// mongoGoalRepository implements repository.GoalRepository
type mongoGoalRepository struct {
	collection *mongo.Collection
}

// NewMongoGoalRepository creates a new Goal repository.
func NewMongoGoalRepository(db *mongo.Database) repository.GoalRepository {
	return &mongoGoalRepository{
		collection: db.Collection(goalCollectionName),
	}
}

// Upsert sets the distance of the user's goal on the record's date, creating
// the goal when none exists yet.
func (r *mongoGoalRepository) Upsert(ctx context.Context, goal *domain.GoalRecord) (bool, error) {
	if goal.UserID == primitive.NilObjectID || goal.Date.IsZero() {
		return false, errors.New("goal user ID and date are required")
	}

	goal.Date = runlog.Day(goal.Date)
	now := time.Now().UTC()
	filter := bson.M{"userId": goal.UserID, "date": goal.Date}
	update := bson.M{
		"$set": bson.M{
			"distance":  goal.Distance,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"createdAt": now,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}

	created := result.UpsertedCount > 0
	if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
		goal.ID = id
		goal.CreatedAt = now
	}
	goal.UpdatedAt = now
	return created, nil
}

// GetByUserAndDate retrieves the user's goal for a date.
func (r *mongoGoalRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*domain.GoalRecord, error) {
	var goal domain.GoalRecord
	filter := bson.M{"userId": userID, "date": runlog.Day(date)}

	err := r.collection.FindOne(ctx, filter).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// GetByUserID retrieves every goal of a user, oldest first.
func (r *mongoGoalRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.GoalRecord, error) {
	var goals []domain.GoalRecord
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &goals); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return goals, nil
}

// Delete removes a goal, ensuring it belongs to the specified user.
func (r *mongoGoalRepository) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	filter := bson.M{"_id": id, "userId": userID}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureGoalIndexes creates necessary indexes. Call during startup.
func EnsureGoalIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// one goal per user per day
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
