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

// Compile-time check to ensure ScanRepository implements the interface
var _ repositories.ScanRepository = (*ScanRepository)(nil)

// ScanRepository handles MongoDB operations for the append-only scan
// analytics collection
type ScanRepository struct {
	collection *mongo.Collection
}

// NewScanRepository creates a new ScanRepository
func NewScanRepository(db *mongo.Database) *ScanRepository {
	return &ScanRepository{
		collection: db.Collection("scans"),
	}
}

// Create appends an analytics record for a first-time collection
func (r *ScanRepository) Create(ctx context.Context, scan *models.Scan) error {
	scan.ID = primitive.NewObjectID()
	if scan.Timestamp.IsZero() {
		scan.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, scan)
	return err
}

// CountByQRID counts how many participants have scanned the given code
func (r *ScanRepository) CountByQRID(ctx context.Context, qrID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"qrId": qrID})
}
