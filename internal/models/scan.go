package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scan is an append-only analytics record of a first-time collection.
// The scan flow only ever counts these; it never reads them back.
type Scan struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RegistrationID string             `bson:"registrationId" json:"registrationId"`
	QRID           string             `bson:"qrId" json:"qrId"`
	ComponentID    string             `bson:"componentId" json:"componentId"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
}
