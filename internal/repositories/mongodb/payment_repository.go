package mongodb

import (
	"context"
	"time"

	"github.com/campusquest/hunt-backend/internal/models"
	"github.com/campusquest/hunt-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure PaymentRepository implements the interface
var _ repositories.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository handles MongoDB operations for Payment
type PaymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		collection: db.Collection("payments"),
	}
}

// registrationIDFilter matches both historical spellings of the
// registration key. Legacy documents were written with the lowercase
// field name; the rest of the system only ever sees the canonical one.
func registrationIDFilter(registrationID string) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"registrationId": registrationID},
			bson.M{"registrationid": registrationID},
		},
	}
}

// Create inserts a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	payment.ID = primitive.NewObjectID()
	if payment.Timestamp.IsZero() {
		payment.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, payment)
	return err
}

// FindByOrderID finds a payment by its order identifier
func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&payment)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &payment, nil
}

// FindPaidByRegistrationID finds a PAID payment for the normalized
// registration ID, checking both field spellings
func (r *PaymentRepository) FindPaidByRegistrationID(ctx context.Context, registrationID string) (*models.Payment, error) {
	filter := registrationIDFilter(registrationID)
	filter["status"] = models.PaymentStatusPaid

	var payment models.Payment
	err := r.collection.FindOne(ctx, filter).Decode(&payment)
	if err != nil {
		return nil, err
	}
	if payment.RegistrationID == "" {
		// Legacy document: surface the canonical field to callers.
		payment.RegistrationID = registrationID
	}
	return &payment, nil
}

// UpdateStatusByOrderID applies the gateway-reported status and payment
// details to an existing record
func (r *PaymentRepository) UpdateStatusByOrderID(ctx context.Context, orderID string, update *models.Payment) error {
	filter := bson.M{"orderId": orderID}
	set := bson.M{
		"status":    update.Status,
		"updatedAt": time.Now(),
	}
	if update.PaymentID != "" {
		set["paymentId"] = update.PaymentID
	}
	if update.BankingName != "" {
		set["bankingName"] = update.BankingName
	}
	if update.PaymentMethod != "" {
		set["paymentMethod"] = update.PaymentMethod
	}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// FindByStatus retrieves all payments with the given status, newest first
func (r *PaymentRepository) FindByStatus(ctx context.Context, status string) ([]*models.Payment, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []*models.Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	return payments, nil
}

// FindAll retrieves all payment records, newest first
func (r *PaymentRepository) FindAll(ctx context.Context) ([]*models.Payment, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []*models.Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	return payments, nil
}

// Count counts all payment records
func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
