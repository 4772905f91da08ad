package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusquest/hunt-backend/internal/models"
	"github.com/campusquest/hunt-backend/internal/repositories"
	"github.com/campusquest/hunt-backend/internal/utils"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure RegistrationServiceImpl implements RegistrationService
var _ RegistrationService = (*RegistrationServiceImpl)(nil)

// RegistrationServiceImpl registers participants who arrive at a scan
// location before creating an account, granting them the component of
// the code they scanned.
type RegistrationServiceImpl struct {
	participantRepo repositories.ParticipantRepository
	qrCodeRepo      repositories.QRCodeRepository

	now      func() time.Time
	newToken func() string
}

// NewRegistrationService creates a new RegistrationServiceImpl
func NewRegistrationService(
	participantRepo repositories.ParticipantRepository,
	qrCodeRepo repositories.QRCodeRepository,
) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{
		participantRepo: participantRepo,
		qrCodeRepo:      qrCodeRepo,
		now:             time.Now,
		newToken:        uuid.NewString,
	}
}

// Register creates a participant at a scan location. An existing
// registration is not an error; the caller receives a fresh device token
// either way.
func (s *RegistrationServiceImpl) Register(ctx context.Context, registrationID, qrID, deviceFingerprint string) (*models.RegistrationResult, error) {
	normalized := utils.NormalizeRegistrationID(registrationID)

	qrCode, err := s.qrCodeRepo.FindByID(ctx, qrID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQRCodeNotFound
		}
		return nil, fmt.Errorf("failed to resolve QR code: %w", err)
	}

	existing, err := s.participantRepo.FindByRegistrationID(ctx, normalized)
	if err == nil {
		return &models.RegistrationResult{
			ParticipantID: existing.ID.Hex(),
			DeviceToken:   s.newToken(),
			AlreadyExists: true,
			Progress:      len(existing.ScannedComponents),
			RegisteredAt:  existing.CreatedAt,
		}, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to look up participant: %w", err)
	}

	now := s.now()
	participant := &models.Participant{
		RegistrationID:    normalized,
		ScannedComponents: []string{qrCode.ComponentID},
		Progress:          1,
		LastScanTime:      now,
		DeviceFingerprint: deviceFingerprint,
		CreatedAt:         now,
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	slog.Info("Participant registered", "registrationId", normalized, "firstComponent", qrCode.ComponentID)

	return &models.RegistrationResult{
		ParticipantID: participant.ID.Hex(),
		DeviceToken:   s.newToken(),
		AlreadyExists: false,
		Progress:      1,
		RegisteredAt:  now,
	}, nil
}
