package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Participant represents a hunt entrant in the users collection.
// RegistrationID is stored in its normalized form (trimmed, upper-cased)
// and is the canonical key for every other collection.
type Participant struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RegistrationID    string             `bson:"registrationId" json:"registrationId"`
	ScannedComponents []string           `bson:"scannedComponents" json:"scannedComponents"`
	Progress          int                `bson:"progress" json:"progress"`
	LastScanTime      time.Time          `bson:"lastScanTime,omitempty" json:"lastScanTime,omitempty"`
	HasPaid           bool               `bson:"hasPaid,omitempty" json:"hasPaid,omitempty"`
	PaymentID         string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	PaymentTimestamp  time.Time          `bson:"paymentTimestamp,omitempty" json:"paymentTimestamp,omitempty"`
	DeviceFingerprint string             `bson:"deviceFingerprint,omitempty" json:"deviceFingerprint,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

// HasCollected reports whether the participant already holds the component.
func (p *Participant) HasCollected(componentID string) bool {
	for _, id := range p.ScannedComponents {
		if id == componentID {
			return true
		}
	}
	return false
}
