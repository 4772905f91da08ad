package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment status values. The gateway may report additional
// provider-specific strings which are stored verbatim.
const (
	PaymentStatusCreated = "CREATED"
	PaymentStatusPaid    = "PAID"
	PaymentStatusFailed  = "FAILED"
)

// Payment represents a payment record in the payments collection.
// A participant counts as verified once at least one PAID record
// references their registration ID.
type Payment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RegistrationID string             `bson:"registrationId" json:"registrationId"`
	OrderID        string             `bson:"orderId" json:"orderId"`
	PaymentID      string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Amount         float64            `bson:"amount" json:"amount"`
	Status         string             `bson:"status" json:"status"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	BankingName    string             `bson:"bankingName,omitempty" json:"bankingName,omitempty"`
	PaymentMethod  string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
