package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Milestone counts at which a one-time record is written.
const (
	ThreeMilestoneCount = 3
	FullMilestoneCount  = 5
)

// Milestone records the first time a participant reached a collection
// threshold. At most one document exists per participant per milestone
// collection; writes are idempotent upserts.
type Milestone struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RegistrationID string             `bson:"registrationId" json:"registrationId"`
	CompletedAt    time.Time          `bson:"completedAt" json:"completedAt"`
}
