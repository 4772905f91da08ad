package mongodb

import (
	"context"

	"github.com/campusquest/hunt-backend/internal/models"
	"github.com/campusquest/hunt-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure ComponentRepository implements the interface
var _ repositories.ComponentRepository = (*ComponentRepository)(nil)

// ComponentRepository handles MongoDB operations for the fixed component
// catalog. The catalog is seeded lazily on first read.
type ComponentRepository struct {
	collection *mongo.Collection
}

// NewComponentRepository creates a new ComponentRepository
func NewComponentRepository(db *mongo.Database) *ComponentRepository {
	return &ComponentRepository{
		collection: db.Collection("components"),
	}
}

// FindAll retrieves the component catalog, seeding the defaults if the
// collection is empty
func (r *ComponentRepository) FindAll(ctx context.Context) ([]*models.Component, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var components []*models.Component
	if err = cursor.All(ctx, &components); err != nil {
		return nil, err
	}
	if len(components) > 0 {
		return components, nil
	}
	return r.seed(ctx)
}

// FindByID finds a catalog component by its string identifier
func (r *ComponentRepository) FindByID(ctx context.Context, componentID string) (*models.Component, error) {
	var component models.Component
	err := r.collection.FindOne(ctx, bson.M{"id": componentID}).Decode(&component)
	if err == nil {
		return &component, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}
	// Collection may not be seeded yet.
	components, seedErr := r.FindAll(ctx)
	if seedErr != nil {
		return nil, seedErr
	}
	for _, c := range components {
		if c.ID == componentID {
			return c, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *ComponentRepository) seed(ctx context.Context) ([]*models.Component, error) {
	docs := make([]interface{}, len(models.DefaultComponents))
	components := make([]*models.Component, len(models.DefaultComponents))
	for i := range models.DefaultComponents {
		c := models.DefaultComponents[i]
		docs[i] = c
		components[i] = &c
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return components, nil
}
