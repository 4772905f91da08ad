package repositories

import (
	"context"
	"time"

	"github.com/campusquest/hunt-backend/internal/models"
)

// ParticipantRepository defines the interface for participant data operations
type ParticipantRepository interface {
	Create(ctx context.Context, participant *models.Participant) error
	FindByRegistrationID(ctx context.Context, registrationID string) (*models.Participant, error)
	Update(ctx context.Context, participant *models.Participant) error
	// AddComponent appends componentID to the participant's collected list
	// only if it is not already present, updating lastScanTime and
	// progress in the same write. It reports whether the append happened.
	AddComponent(ctx context.Context, registrationID, componentID string, scanTime time.Time) (bool, error)
	MarkPaid(ctx context.Context, registrationID, paymentID string, paidAt time.Time) error
	// CountAhead returns the number of participants ranked ahead of the
	// given progress/lastScanTime pair: strictly more components, or the
	// same count with an earlier last scan.
	CountAhead(ctx context.Context, progress int, lastScanTime time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// PaymentRepository defines the interface for payment data operations.
// Implementations are responsible for hiding the legacy registrationid
// field spelling behind the canonical registrationId key.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	FindPaidByRegistrationID(ctx context.Context, registrationID string) (*models.Payment, error)
	UpdateStatusByOrderID(ctx context.Context, orderID string, update *models.Payment) error
	FindByStatus(ctx context.Context, status string) ([]*models.Payment, error)
	FindAll(ctx context.Context) ([]*models.Payment, error)
	Count(ctx context.Context) (int64, error)
}

// ComponentRepository defines the interface for the fixed component catalog
type ComponentRepository interface {
	FindAll(ctx context.Context) ([]*models.Component, error)
	FindByID(ctx context.Context, componentID string) (*models.Component, error)
}

// QRCodeRepository defines the interface for the fixed QR code catalog
type QRCodeRepository interface {
	FindAll(ctx context.Context) ([]*models.QRCode, error)
	FindByID(ctx context.Context, qrID string) (*models.QRCode, error)
	FindByComponentID(ctx context.Context, componentID string) (*models.QRCode, error)
}

// ScanRepository defines the interface for append-only scan analytics
type ScanRepository interface {
	Create(ctx context.Context, scan *models.Scan) error
	CountByQRID(ctx context.Context, qrID string) (int64, error)
}

// MilestoneRepository defines the interface for milestone records. Record
// methods are idempotent upserts reporting whether a new record was
// written.
type MilestoneRepository interface {
	RecordThree(ctx context.Context, registrationID string, completedAt time.Time) (bool, error)
	RecordFull(ctx context.Context, registrationID string, completedAt time.Time) (bool, error)
	HasThree(ctx context.Context, registrationID string) (bool, error)
	HasFull(ctx context.Context, registrationID string) (bool, error)
}

// SettingsRepository defines the interface for the global verification toggle
type SettingsRepository interface {
	GetVerificationEnabled(ctx context.Context) (bool, error)
	SetVerificationEnabled(ctx context.Context, enabled bool) error
}

// VerifiedUserRepository defines the interface for the admin verification mirror
type VerifiedUserRepository interface {
	Upsert(ctx context.Context, user *models.VerifiedUser) error
	FindByRegistrationID(ctx context.Context, registrationID string) (*models.VerifiedUser, error)
	FindAll(ctx context.Context) ([]*models.VerifiedUser, error)
}

// AdminUserRepository defines the interface for admin account operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}
