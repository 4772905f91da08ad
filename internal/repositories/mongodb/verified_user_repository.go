package mongodb

import (
	"context"
	"time"

	"github.com/campusquest/hunt-backend/internal/models"
	"github.com/campusquest/hunt-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure VerifiedUserRepository implements the interface
var _ repositories.VerifiedUserRepository = (*VerifiedUserRepository)(nil)

// VerifiedUserRepository handles MongoDB operations for the verifiedUsers
// collection used by the admin verification views
type VerifiedUserRepository struct {
	collection *mongo.Collection
}

// NewVerifiedUserRepository creates a new VerifiedUserRepository
func NewVerifiedUserRepository(db *mongo.Database) *VerifiedUserRepository {
	return &VerifiedUserRepository{
		collection: db.Collection("verifiedUsers"),
	}
}

// Upsert creates or refreshes a verified-user record by registration ID
func (r *VerifiedUserRepository) Upsert(ctx context.Context, user *models.VerifiedUser) error {
	filter := bson.M{"registrationId": user.RegistrationID}
	update := bson.M{
		"$set": bson.M{
			"verified":  user.Verified,
			"name":      user.Name,
			"email":     user.Email,
			"phone":     user.Phone,
			"updatedAt": time.Now(),
		},
		"$setOnInsert": bson.M{
			"registrationId": user.RegistrationID,
			"timestamp":      time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindByRegistrationID finds a verified user by registration ID
func (r *VerifiedUserRepository) FindByRegistrationID(ctx context.Context, registrationID string) (*models.VerifiedUser, error) {
	var user models.VerifiedUser
	err := r.collection.FindOne(ctx, bson.M{"registrationId": registrationID}).Decode(&user)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &user, nil
}

// FindAll retrieves all verified users, newest first
func (r *VerifiedUserRepository) FindAll(ctx context.Context) ([]*models.VerifiedUser, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*models.VerifiedUser
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []*models.VerifiedUser{}
	}
	return users, nil
}
