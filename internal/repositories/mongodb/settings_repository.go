package mongodb

import (
	"context"
	"errors"

	"github.com/campusquest/hunt-backend/internal/models"
	"github.com/campusquest/hunt-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure SettingsRepository implements the interface
var _ repositories.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository handles MongoDB operations for the verification
// toggle in the settings collection
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection("settings"),
	}
}

// GetVerificationEnabled reads the global toggle. A missing settings
// document means verification is enforced.
func (r *SettingsRepository) GetVerificationEnabled(ctx context.Context) (bool, error) {
	var settings models.VerificationSettings
	err := r.collection.FindOne(ctx, bson.M{"id": models.VerificationSettingsID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return true, nil
		}
		return true, err
	}
	return settings.VerificationEnabled, nil
}

// SetVerificationEnabled upserts the global toggle
func (r *SettingsRepository) SetVerificationEnabled(ctx context.Context, enabled bool) error {
	filter := bson.M{"id": models.VerificationSettingsID}
	update := bson.M{
		"$set":         bson.M{"verificationEnabled": enabled},
		"$setOnInsert": bson.M{"id": models.VerificationSettingsID},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}
