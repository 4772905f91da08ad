package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VerifiedUser mirrors a manually or payment-verified participant in the
// verifiedUsers collection, used by the admin verification views.
type VerifiedUser struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RegistrationID string             `bson:"registrationId" json:"registrationId"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Verified       bool               `bson:"verified" json:"verified"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// VerifiedUserSummary is the admin listing projection built from PAID
// payment records.
type VerifiedUserSummary struct {
	RegistrationID string    `json:"registrationId"`
	FullName       string    `json:"fullName"`
	TransactionID  string    `json:"transactionId"`
	Amount         float64   `json:"amount"`
	BankingName    string    `json:"bankingName"`
	Verified       bool      `json:"verified"`
	Timestamp      time.Time `json:"timestamp"`
}
