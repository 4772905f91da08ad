package mongodb

import (
	"context"
	"time"

	"github.com/campusquest/hunt-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure MilestoneRepository implements the interface
var _ repositories.MilestoneRepository = (*MilestoneRepository)(nil)

// MilestoneRepository handles MongoDB operations for the two milestone
// collections: threeCompletion (3 components) and completionStud (all 5).
// Writes are upserts keyed by registrationId with $setOnInsert, so
// concurrent triggers collapse to a single document per participant.
type MilestoneRepository struct {
	three *mongo.Collection
	full  *mongo.Collection
}

// NewMilestoneRepository creates a new MilestoneRepository
func NewMilestoneRepository(db *mongo.Database) *MilestoneRepository {
	return &MilestoneRepository{
		three: db.Collection("threeCompletion"),
		full:  db.Collection("completionStud"),
	}
}

// RecordThree idempotently records that a participant reached three
// components. It reports whether a new record was written.
func (r *MilestoneRepository) RecordThree(ctx context.Context, registrationID string, completedAt time.Time) (bool, error) {
	return upsertMilestone(ctx, r.three, registrationID, completedAt)
}

// RecordFull idempotently records full completion of the hunt
func (r *MilestoneRepository) RecordFull(ctx context.Context, registrationID string, completedAt time.Time) (bool, error) {
	return upsertMilestone(ctx, r.full, registrationID, completedAt)
}

// HasThree reports whether the participant has a three-components record
func (r *MilestoneRepository) HasThree(ctx context.Context, registrationID string) (bool, error) {
	return milestoneExists(ctx, r.three, registrationID)
}

// HasFull reports whether the participant has a full-completion record
func (r *MilestoneRepository) HasFull(ctx context.Context, registrationID string) (bool, error) {
	return milestoneExists(ctx, r.full, registrationID)
}

func upsertMilestone(ctx context.Context, coll *mongo.Collection, registrationID string, completedAt time.Time) (bool, error) {
	filter := bson.M{"registrationId": registrationID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"registrationId": registrationID,
			"completedAt":    completedAt,
		},
	}
	opts := options.Update().SetUpsert(true)
	result, err := coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, err
	}
	return result.UpsertedCount == 1, nil
}

func milestoneExists(ctx context.Context, coll *mongo.Collection, registrationID string) (bool, error) {
	count, err := coll.CountDocuments(ctx, bson.M{"registrationId": registrationID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
