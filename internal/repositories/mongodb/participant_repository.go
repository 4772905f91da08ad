package mongodb

import (
	"context"
	"time"

	"github.com/campusquest/hunt-backend/internal/models"
	"github.com/campusquest/hunt-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure ParticipantRepository implements the interface
var _ repositories.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository handles MongoDB operations for Participant
type ParticipantRepository struct {
	collection *mongo.Collection
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(db *mongo.Database) *ParticipantRepository {
	return &ParticipantRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new participant
func (r *ParticipantRepository) Create(ctx context.Context, participant *models.Participant) error {
	participant.ID = primitive.NewObjectID()
	if participant.CreatedAt.IsZero() {
		participant.CreatedAt = time.Now()
	}
	if participant.ScannedComponents == nil {
		participant.ScannedComponents = []string{}
	}
	_, err := r.collection.InsertOne(ctx, participant)
	return err
}

// FindByRegistrationID finds a participant by normalized registration ID
func (r *ParticipantRepository) FindByRegistrationID(ctx context.Context, registrationID string) (*models.Participant, error) {
	var participant models.Participant
	filter := bson.M{"registrationId": registrationID}
	err := r.collection.FindOne(ctx, filter).Decode(&participant)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &participant, nil
}

// Update replaces the mutable fields of an existing participant
func (r *ParticipantRepository) Update(ctx context.Context, participant *models.Participant) error {
	filter := bson.M{"registrationId": participant.RegistrationID}
	update := bson.M{"$set": participant}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// AddComponent appends a component to the collected list if and only if
// it is not already present. The $ne guard makes the append conditional
// inside a single UpdateOne, so concurrent duplicate scans cannot
// double-append.
func (r *ParticipantRepository) AddComponent(ctx context.Context, registrationID, componentID string, scanTime time.Time) (bool, error) {
	filter := bson.M{
		"registrationId":    registrationID,
		"scannedComponents": bson.M{"$ne": componentID},
	}
	update := bson.M{
		"$push": bson.M{"scannedComponents": componentID},
		"$inc":  bson.M{"progress": 1},
		"$set":  bson.M{"lastScanTime": scanTime},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

// MarkPaid flags a participant as paid after a successful gateway notification
func (r *ParticipantRepository) MarkPaid(ctx context.Context, registrationID, paymentID string, paidAt time.Time) error {
	filter := bson.M{"registrationId": registrationID}
	update := bson.M{
		"$set": bson.M{
			"hasPaid":          true,
			"paymentId":        paymentID,
			"paymentTimestamp": paidAt,
		},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CountAhead counts participants with strictly more components, or the
// same count with an earlier last scan. This is a live aggregate over
// mutable state, a best-effort snapshot rather than a transactional
// leaderboard.
func (r *ParticipantRepository) CountAhead(ctx context.Context, progress int, lastScanTime time.Time) (int64, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"progress": bson.M{"$gt": progress}},
			bson.M{
				"progress":     progress,
				"lastScanTime": bson.M{"$lt": lastScanTime},
			},
		},
	}
	return r.collection.CountDocuments(ctx, filter)
}

// Count counts all participants
func (r *ParticipantRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
