package services

import (
	"context"
	"errors"

	"github.com/campusquest/hunt-backend/internal/models"
)

// Sentinel errors distinguishing workflow outcomes from store failures.
// Handlers translate these into status codes; anything else is a 500.
var (
	// ErrPaymentRequired is returned when an unverified participant
	// attempts a gated operation.
	ErrPaymentRequired = errors.New("payment verification required")

	// ErrQRCodeNotFound is returned for scan target identifiers that are
	// not in the catalog.
	ErrQRCodeNotFound = errors.New("invalid QR code")

	// ErrParticipantNotFound is returned when a participant was expected
	// to exist.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrInvalidRegistrationID is returned for malformed registration codes.
	ErrInvalidRegistrationID = errors.New("invalid registration ID")

	// ErrAlreadyPaid is returned when creating an order for a participant
	// who already holds a PAID record.
	ErrAlreadyPaid = errors.New("registration ID has already paid")

	// ErrInvalidSignature is returned for webhook deliveries whose
	// signature does not verify.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrAllCollected is returned by the clue flow once every component
	// has been collected.
	ErrAllCollected = errors.New("all components collected")
)

// VerificationService defines the interface for the verification gate
type VerificationService interface {
	// IsVerified reports whether the code belongs to a paid participant,
	// or unconditionally true while the global toggle is off.
	IsVerified(ctx context.Context, registrationID string) (bool, error)

	// VerifyRegistration performs the full verification check and returns
	// a detailed outcome for the verify page.
	VerifyRegistration(ctx context.Context, registrationID string) (*models.VerificationResult, error)

	// VerificationEnabled reads the global toggle.
	VerificationEnabled(ctx context.Context) (bool, error)

	// SetVerificationEnabled flips the global toggle (admin only).
	SetVerificationEnabled(ctx context.Context, enabled bool) error
}

// ScanService defines the interface for the scan processor
type ScanService interface {
	// ProcessScan handles one QR scan for a verified participant.
	ProcessScan(ctx context.Context, registrationID, qrID string) (*models.ScanResult, error)

	// CheckProgress reports current progress without collecting anything.
	CheckProgress(ctx context.Context, registrationID string) (*models.ProgressResult, error)
}

// ProgressService defines the interface for the milestone tracker
type ProgressService interface {
	// OnCountChanged evaluates milestone triggers for a post-increment count.
	OnCountChanged(ctx context.Context, registrationID string, newCount int) error

	// HasReachedThree reports whether the three-components milestone exists.
	HasReachedThree(ctx context.Context, registrationID string) (bool, error)

	// HasReachedFive reports whether the full-completion milestone exists.
	HasReachedFive(ctx context.Context, registrationID string) (bool, error)
}

// PaymentService defines the interface for payment operations
type PaymentService interface {
	CreateOrder(ctx context.Context, registrationID string) (*models.OrderResult, error)
	ProcessWebhook(ctx context.Context, body []byte, signature string) error
	GetPaymentStatus(ctx context.Context, orderID string) (*models.Payment, error)
	ListPayments(ctx context.Context) ([]*models.Payment, error)
	ListVerifiedUsers(ctx context.Context) ([]*models.VerifiedUserSummary, error)
}

// ClueService defines the interface for the clue flow
type ClueService interface {
	FirstClue(ctx context.Context, registrationID string) (*models.QRCode, error)
	NextClue(ctx context.Context, registrationID string) (*models.ClueEntry, error)
}

// RegistrationService defines the interface for participant registration
type RegistrationService interface {
	Register(ctx context.Context, registrationID, qrID, deviceFingerprint string) (*models.RegistrationResult, error)
}

// AdminService defines the interface for admin actions outside the
// verification toggle
type AdminService interface {
	VerifyUser(ctx context.Context, registrationID, name, email, phone string) error
	ListVerifiedUsers(ctx context.Context) ([]*models.VerifiedUser, error)
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}
