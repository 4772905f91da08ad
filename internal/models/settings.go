package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VerificationSettingsID is the fixed document id in the settings
// collection.
const VerificationSettingsID = "verification_settings"

// VerificationSettings is the single global toggle controlling whether
// payment verification is enforced. A missing document means enabled.
type VerificationSettings struct {
	OID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID                  string             `bson:"id" json:"id"`
	VerificationEnabled bool               `bson:"verificationEnabled" json:"verificationEnabled"`
}
