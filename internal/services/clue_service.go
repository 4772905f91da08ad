package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusquest/hunt-backend/internal/models"
	"github.com/campusquest/hunt-backend/internal/repositories"
	"github.com/campusquest/hunt-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure ClueServiceImpl implements ClueService
var _ ClueService = (*ClueServiceImpl)(nil)

// ClueServiceImpl serves clue text to verified participants
type ClueServiceImpl struct {
	qrCodeRepo      repositories.QRCodeRepository
	participantRepo repositories.ParticipantRepository
	verification    VerificationService
}

// NewClueService creates a new ClueServiceImpl
func NewClueService(
	qrCodeRepo repositories.QRCodeRepository,
	participantRepo repositories.ParticipantRepository,
	verification VerificationService,
) *ClueServiceImpl {
	return &ClueServiceImpl{
		qrCodeRepo:      qrCodeRepo,
		participantRepo: participantRepo,
		verification:    verification,
	}
}

// FirstClue returns the clue for the hunt's starting component.
func (s *ClueServiceImpl) FirstClue(ctx context.Context, registrationID string) (*models.QRCode, error) {
	verified, err := s.verification.IsVerified(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, ErrPaymentRequired
	}

	first := models.DefaultComponents[0].ID
	qrCode, err := s.qrCodeRepo.FindByComponentID(ctx, first)
	if err != nil {
		return nil, fmt.Errorf("failed to load first clue: %w", err)
	}
	return qrCode, nil
}

// NextClue returns the clue for the first catalog component the
// participant has not collected yet, or ErrAllCollected.
func (s *ClueServiceImpl) NextClue(ctx context.Context, registrationID string) (*models.ClueEntry, error) {
	normalized := utils.NormalizeRegistrationID(registrationID)

	verified, err := s.verification.IsVerified(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, ErrPaymentRequired
	}

	participant, err := s.participantRepo.FindByRegistrationID(ctx, normalized)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to load participant: %w", err)
	}

	for _, componentID := range models.ComponentOrder() {
		if participant.HasCollected(componentID) {
			continue
		}
		for i := range models.CluesAndHints {
			if models.CluesAndHints[i].ComponentID == componentID {
				entry := models.CluesAndHints[i]
				return &entry, nil
			}
		}
	}
	return nil, ErrAllCollected
}
