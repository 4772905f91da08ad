package services

import (
	"context"
	"fmt"
	"time"

	"github.com/campusquest/hunt-backend/internal/models"
	"github.com/campusquest/hunt-backend/internal/repositories"
	"github.com/campusquest/hunt-backend/internal/utils"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure AdminServiceImpl implements AdminService
var _ AdminService = (*AdminServiceImpl)(nil)

// AdminServiceImpl covers manual verification actions taken from the
// admin dashboard when a payment went through out of band.
type AdminServiceImpl struct {
	verifiedUserRepo repositories.VerifiedUserRepository

	now func() time.Time
}

// NewAdminService creates a new AdminServiceImpl
func NewAdminService(verifiedUserRepo repositories.VerifiedUserRepository) *AdminServiceImpl {
	return &AdminServiceImpl{
		verifiedUserRepo: verifiedUserRepo,
		now:              time.Now,
	}
}

// VerifyUser upserts a verified-user record for a registration ID
func (s *AdminServiceImpl) VerifyUser(ctx context.Context, registrationID, name, email, phone string) error {
	normalized := utils.NormalizeRegistrationID(registrationID)
	if normalized == "" {
		return ErrInvalidRegistrationID
	}

	err := s.verifiedUserRepo.Upsert(ctx, &models.VerifiedUser{
		RegistrationID: normalized,
		Name:           name,
		Email:          email,
		Phone:          phone,
		Verified:       true,
		Timestamp:      s.now(),
	})
	if err != nil {
		return fmt.Errorf("failed to upsert verified user: %w", err)
	}

	slog.Info("Participant manually verified", "registrationId", normalized)
	return nil
}

// ListVerifiedUsers retrieves all manually verified participants
func (s *AdminServiceImpl) ListVerifiedUsers(ctx context.Context) ([]*models.VerifiedUser, error) {
	return s.verifiedUserRepo.FindAll(ctx)
}
