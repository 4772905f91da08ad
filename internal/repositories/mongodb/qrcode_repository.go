package mongodb

import (
	"context"
	"time"

	"github.com/campusquest/hunt-backend/internal/models"
	"github.com/campusquest/hunt-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure QRCodeRepository implements the interface
var _ repositories.QRCodeRepository = (*QRCodeRepository)(nil)

// QRCodeRepository handles MongoDB operations for the fixed QR code
// catalog, seeded lazily on first read.
type QRCodeRepository struct {
	collection *mongo.Collection
}

// NewQRCodeRepository creates a new QRCodeRepository
func NewQRCodeRepository(db *mongo.Database) *QRCodeRepository {
	return &QRCodeRepository{
		collection: db.Collection("qrcodes"),
	}
}

// FindAll retrieves the QR code catalog, seeding the fixed codes if the
// collection is empty
func (r *QRCodeRepository) FindAll(ctx context.Context) ([]*models.QRCode, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var qrCodes []*models.QRCode
	if err = cursor.All(ctx, &qrCodes); err != nil {
		return nil, err
	}
	if len(qrCodes) > 0 {
		return qrCodes, nil
	}
	return r.seed(ctx)
}

// FindByID finds a QR code by its physical code identifier
func (r *QRCodeRepository) FindByID(ctx context.Context, qrID string) (*models.QRCode, error) {
	var qrCode models.QRCode
	err := r.collection.FindOne(ctx, bson.M{"id": qrID}).Decode(&qrCode)
	if err == nil {
		return &qrCode, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}
	qrCodes, seedErr := r.FindAll(ctx)
	if seedErr != nil {
		return nil, seedErr
	}
	for _, qr := range qrCodes {
		if qr.ID == qrID {
			return qr, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

// FindByComponentID finds the QR code granting the given component
func (r *QRCodeRepository) FindByComponentID(ctx context.Context, componentID string) (*models.QRCode, error) {
	var qrCode models.QRCode
	err := r.collection.FindOne(ctx, bson.M{"componentId": componentID}).Decode(&qrCode)
	if err == nil {
		return &qrCode, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}
	qrCodes, seedErr := r.FindAll(ctx)
	if seedErr != nil {
		return nil, seedErr
	}
	for _, qr := range qrCodes {
		if qr.ComponentID == componentID {
			return qr, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *QRCodeRepository) seed(ctx context.Context) ([]*models.QRCode, error) {
	seeded := models.DefaultQRCodes(time.Now())
	docs := make([]interface{}, len(seeded))
	qrCodes := make([]*models.QRCode, len(seeded))
	for i := range seeded {
		qr := seeded[i]
		docs[i] = qr
		qrCodes[i] = &qr
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return qrCodes, nil
}
