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

const runCollectionName = "runs"

// mongoRunRepository implements repository.RunRepository
type mongoRunRepository struct {
	collection *mongo.Collection
}

// NewMongoRunRepository creates a new Run repository backed by MongoDB.
func NewMongoRunRepository(db *mongo.Database) repository.RunRepository {
	return &mongoRunRepository{
		collection: db.Collection(runCollectionName),
	}
}

// Create inserts a new run into the database.
func (r *mongoRunRepository) Create(ctx context.Context, run *domain.RunRecord) (primitive.ObjectID, error) {
	if run.UserID == primitive.NilObjectID || run.Date.IsZero() {
		return primitive.NilObjectID, errors.New("run user ID and date are required")
	}

	run.ID = primitive.NewObjectID()
	run.Date = runlog.Day(run.Date)
	now := time.Now().UTC()
	run.CreatedAt = now
	run.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, run)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves a run by its ID.
func (r *mongoRunRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.RunRecord, error) {
	var run domain.RunRecord
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&run)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &run, nil
}

// GetByUserID retrieves all runs recorded by a user, oldest first.
func (r *mongoRunRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.RunRecord, error) {
	var runs []domain.RunRecord
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &runs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

// Delete removes a run, ensuring it belongs to the specified user.
func (r *mongoRunRepository) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	filter := bson.M{"_id": id, "userId": userID}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		// Not found OR not owned by this user.
		return repository.ErrNotFound
	}
	return nil
}

// EnsureRunIndexes creates necessary indexes for the runs collection.
func EnsureRunIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
