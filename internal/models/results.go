package models

import "time"

// Scan outcome status values returned to the HTTP layer.
const (
	ScanStatusSuccess        = "success"
	ScanStatusAlreadyScanned = "already_scanned"
)

// ScanResult describes the outcome of processing a QR scan. Rank and
// ScanCount are populated on first-time collections only; repeat scans
// report progress without recomputing rank.
type ScanResult struct {
	Status              string       `json:"status"`
	Message             string       `json:"message,omitempty"`
	Component           *Component   `json:"component"`
	PointsToComponent   *Component   `json:"pointsToComponent,omitempty"`
	QRCode              *QRCode      `json:"qrCode,omitempty"`
	Progress            int          `json:"progress"`
	CollectedComponents []*Component `json:"collectedComponents"`
	Complete            bool         `json:"complete"`
	Rank                int          `json:"rank,omitempty"`
	ScanCount           int64        `json:"scanCount,omitempty"`
	DeviceToken         string       `json:"deviceToken,omitempty"`
	JustCollectedThird  bool         `json:"justCollectedThird,omitempty"`
}

// ProgressResult describes a pure progress check.
type ProgressResult struct {
	Progress            int          `json:"progress"`
	CollectedComponents []*Component `json:"collectedComponents"`
	Rank                int          `json:"rank"`
	Complete            bool         `json:"complete"`
}

// VerificationResult describes the outcome of a registration
// verification attempt.
type VerificationResult struct {
	Verified       bool   `json:"verified"`
	Bypassed       bool   `json:"bypassed,omitempty"`
	Message        string `json:"message"`
	RegistrationID string `json:"registrationId,omitempty"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	TransactionID  string `json:"transactionId,omitempty"`
}

// OrderResult is returned after creating a payment order.
type OrderResult struct {
	OrderID     string `json:"orderId"`
	PaymentLink string `json:"paymentLink,omitempty"`
}

// RegistrationResult is returned after registering a participant at a
// scan location.
type RegistrationResult struct {
	ParticipantID string    `json:"participantId"`
	DeviceToken   string    `json:"deviceToken"`
	AlreadyExists bool      `json:"alreadyExists"`
	Progress      int       `json:"progress"`
	RegisteredAt  time.Time `json:"registeredAt"`
}
