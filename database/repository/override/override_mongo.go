package overrideRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/database"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOverrideRepo implements OverrideRepository using MongoDB.
type MongoOverrideRepo struct {
	coll *mongo.Collection
}

// NewMongoOverrideRepo creates a new instance of OverrideRepository
// using MongoDB.
func NewMongoOverrideRepo() OverrideRepository {
	coll := database.MongoClient.Database("clinicore").Collection("schedule_overrides")
	repo := &MongoOverrideRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOverrideRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new override document.
func (r *MongoOverrideRepo) Create(o *models.ScheduleOverride) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	o.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to create schedule override: %w", err)
	}
	return nil
}

// ListByDoctorDate returns the overrides affecting one doctor+date.
func (r *MongoOverrideRepo) ListByDoctorDate(doctorID, date string) ([]models.ScheduleOverride, error) {
	return r.list(bson.M{"doctorId": doctorID, "date": date})
}

// ListByDoctor returns every override registered for a doctor.
func (r *MongoOverrideRepo) ListByDoctor(doctorID string) ([]models.ScheduleOverride, error) {
	return r.list(bson.M{"doctorId": doctorID})
}

func (r *MongoOverrideRepo) list(filter bson.M) ([]models.ScheduleOverride, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule overrides: %w", err)
	}
	defer cursor.Close(ctx)

	var overrides []models.ScheduleOverride
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, fmt.Errorf("failed to decode schedule overrides: %w", err)
	}
	return overrides, nil
}

// Delete removes an override by its ID.
func (r *MongoOverrideRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule override %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("schedule override %s not found", id)
	}
	return nil
}
