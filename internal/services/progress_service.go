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

// Compile-time check to ensure ProgressServiceImpl implements ProgressService
var _ ProgressService = (*ProgressServiceImpl)(nil)

// ProgressServiceImpl tracks collection milestones. Each milestone fires
// at most once per participant; the underlying writes are idempotent
// upserts, so re-evaluating a count is always safe.
type ProgressServiceImpl struct {
	milestoneRepo repositories.MilestoneRepository

	now func() time.Time
}

// NewProgressService creates a new ProgressServiceImpl
func NewProgressService(milestoneRepo repositories.MilestoneRepository) *ProgressServiceImpl {
	return &ProgressServiceImpl{
		milestoneRepo: milestoneRepo,
		now:           time.Now,
	}
}

// OnCountChanged evaluates the milestone triggers for a post-increment
// collection count. The scan processor calls this exactly once per
// first-time collection.
func (s *ProgressServiceImpl) OnCountChanged(ctx context.Context, registrationID string, newCount int) error {
	normalized := utils.NormalizeRegistrationID(registrationID)

	if newCount == models.ThreeMilestoneCount {
		inserted, err := s.milestoneRepo.RecordThree(ctx, normalized, s.now())
		if err != nil {
			return fmt.Errorf("failed to record three-components milestone: %w", err)
		}
		if inserted {
			slog.Info("Participant reached three components", "registrationId", normalized)
		}
	}

	if newCount == models.FullMilestoneCount {
		inserted, err := s.milestoneRepo.RecordFull(ctx, normalized, s.now())
		if err != nil {
			return fmt.Errorf("failed to record full-completion milestone: %w", err)
		}
		if inserted {
			slog.Info("Participant completed the hunt", "registrationId", normalized)
		}
	}

	return nil
}

// HasReachedThree reports whether the participant ever collected three
// components, used to unlock the refreshment perk.
func (s *ProgressServiceImpl) HasReachedThree(ctx context.Context, registrationID string) (bool, error) {
	return s.milestoneRepo.HasThree(ctx, utils.NormalizeRegistrationID(registrationID))
}

// HasReachedFive reports whether the participant completed the hunt.
func (s *ProgressServiceImpl) HasReachedFive(ctx context.Context, registrationID string) (bool, error) {
	return s.milestoneRepo.HasFull(ctx, utils.NormalizeRegistrationID(registrationID))
}
