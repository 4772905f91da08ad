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

// Compile-time check to ensure ScanServiceImpl implements ScanService
var _ ScanService = (*ScanServiceImpl)(nil)

// ScanServiceImpl processes QR scans for verified participants. A scan
// is either a first-time collection (one conditional write, analytics
// entry, milestone evaluation, rank) or an idempotent repeat that reports
// progress without mutating anything.
type ScanServiceImpl struct {
	participantRepo repositories.ParticipantRepository
	qrCodeRepo      repositories.QRCodeRepository
	componentRepo   repositories.ComponentRepository
	scanRepo        repositories.ScanRepository
	verification    VerificationService
	progress        ProgressService

	now      func() time.Time
	newToken func() string
}

// NewScanService creates a new ScanServiceImpl
func NewScanService(
	participantRepo repositories.ParticipantRepository,
	qrCodeRepo repositories.QRCodeRepository,
	componentRepo repositories.ComponentRepository,
	scanRepo repositories.ScanRepository,
	verification VerificationService,
	progress ProgressService,
) *ScanServiceImpl {
	return &ScanServiceImpl{
		participantRepo: participantRepo,
		qrCodeRepo:      qrCodeRepo,
		componentRepo:   componentRepo,
		scanRepo:        scanRepo,
		verification:    verification,
		progress:        progress,
		now:             time.Now,
		newToken:        uuid.NewString,
	}
}

// ProcessScan handles one QR scan. The participant must be verified
// before any state is touched; unknown codes are ErrQRCodeNotFound.
func (s *ScanServiceImpl) ProcessScan(ctx context.Context, registrationID, qrID string) (*models.ScanResult, error) {
	normalized := utils.NormalizeRegistrationID(registrationID)

	verified, err := s.verification.IsVerified(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, ErrPaymentRequired
	}

	qrCode, err := s.qrCodeRepo.FindByID(ctx, qrID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQRCodeNotFound
		}
		return nil, fmt.Errorf("failed to resolve QR code: %w", err)
	}

	component, err := s.componentRepo.FindByID(ctx, qrCode.ComponentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load component %q: %w", qrCode.ComponentID, err)
	}

	participant, err := s.findOrCreateParticipant(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if participant.HasCollected(component.ID) {
		return s.repeatScanResult(ctx, participant, qrCode, component)
	}

	scanTime := s.now()

	// Conditional append: the repository refuses the write if the
	// component is already in the list, so a concurrent duplicate scan
	// from a second device degrades to a repeat instead of a double count.
	added, err := s.participantRepo.AddComponent(ctx, normalized, component.ID, scanTime)
	if err != nil {
		return nil, fmt.Errorf("failed to record collection: %w", err)
	}
	if !added {
		refreshed, err := s.participantRepo.FindByRegistrationID(ctx, normalized)
		if err != nil {
			return nil, fmt.Errorf("failed to reload participant: %w", err)
		}
		return s.repeatScanResult(ctx, refreshed, qrCode, component)
	}

	newCount := len(participant.ScannedComponents) + 1

	// Append-only analytics entry. Never read back by this flow except
	// for the per-code scan count below.
	if err := s.scanRepo.Create(ctx, &models.Scan{
		RegistrationID: normalized,
		QRID:           qrID,
		ComponentID:    component.ID,
		Timestamp:      scanTime,
	}); err != nil {
		slog.Warn("Failed to record scan analytics entry", "error", err, "registrationId", normalized, "qrId", qrID)
	}

	scanCount, err := s.scanRepo.CountByQRID(ctx, qrID)
	if err != nil {
		slog.Warn("Failed to count scans for QR code", "error", err, "qrId", qrID)
	}

	if err := s.progress.OnCountChanged(ctx, normalized, newCount); err != nil {
		return nil, err
	}

	rank, err := s.rank(ctx, newCount, scanTime)
	if err != nil {
		return nil, err
	}

	collected := append(append([]string{}, participant.ScannedComponents...), component.ID)
	collectedComponents, pointsTo, err := s.resolveComponents(ctx, collected, qrCode)
	if err != nil {
		return nil, err
	}

	slog.Info("Component collected",
		"registrationId", normalized,
		"componentId", component.ID,
		"progress", newCount,
		"rank", rank,
	)

	return &models.ScanResult{
		Status:              models.ScanStatusSuccess,
		Message:             "Component collected successfully!",
		Component:           component,
		PointsToComponent:   pointsTo,
		QRCode:              qrCode,
		Progress:            newCount,
		CollectedComponents: collectedComponents,
		Complete:            newCount >= models.FullMilestoneCount,
		Rank:                rank,
		ScanCount:           scanCount,
		DeviceToken:         s.newToken(),
		JustCollectedThird:  newCount == models.ThreeMilestoneCount,
	}, nil
}

// CheckProgress reports current progress without collecting anything.
// Creating the participant on first touch is the only write.
func (s *ScanServiceImpl) CheckProgress(ctx context.Context, registrationID string) (*models.ProgressResult, error) {
	normalized := utils.NormalizeRegistrationID(registrationID)

	verified, err := s.verification.IsVerified(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, ErrPaymentRequired
	}

	participant, err := s.findOrCreateParticipant(ctx, normalized)
	if err != nil {
		return nil, err
	}

	count := len(participant.ScannedComponents)
	lastScan := participant.LastScanTime
	if lastScan.IsZero() {
		lastScan = s.now()
	}

	rank, err := s.rank(ctx, count, lastScan)
	if err != nil {
		return nil, err
	}

	collectedComponents, _, err := s.resolveComponents(ctx, participant.ScannedComponents, nil)
	if err != nil {
		return nil, err
	}

	return &models.ProgressResult{
		Progress:            count,
		CollectedComponents: collectedComponents,
		Rank:                rank,
		Complete:            count >= models.FullMilestoneCount,
	}, nil
}

func (s *ScanServiceImpl) findOrCreateParticipant(ctx context.Context, registrationID string) (*models.Participant, error) {
	participant, err := s.participantRepo.FindByRegistrationID(ctx, registrationID)
	if err == nil {
		return participant, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to load participant: %w", err)
	}

	participant = &models.Participant{
		RegistrationID:    registrationID,
		ScannedComponents: []string{},
		Progress:          0,
		LastScanTime:      s.now(),
		CreatedAt:         s.now(),
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}
	return participant, nil
}

// repeatScanResult builds the idempotent response for an already
// collected component: full progress, next clue, no mutation, no
// milestone evaluation, no rank.
func (s *ScanServiceImpl) repeatScanResult(ctx context.Context, participant *models.Participant, qrCode *models.QRCode, component *models.Component) (*models.ScanResult, error) {
	collectedComponents, pointsTo, err := s.resolveComponents(ctx, participant.ScannedComponents, qrCode)
	if err != nil {
		return nil, err
	}

	count := len(participant.ScannedComponents)
	return &models.ScanResult{
		Status:              models.ScanStatusAlreadyScanned,
		Message:             "You've already collected this component",
		Component:           component,
		PointsToComponent:   pointsTo,
		QRCode:              qrCode,
		Progress:            count,
		CollectedComponents: collectedComponents,
		Complete:            count >= models.FullMilestoneCount,
	}, nil
}

// rank is 1 + the number of participants with strictly more components,
// or the same count and an earlier last scan. A best-effort snapshot
// over live state.
func (s *ScanServiceImpl) rank(ctx context.Context, count int, lastScan time.Time) (int, error) {
	ahead, err := s.participantRepo.CountAhead(ctx, count, lastScan)
	if err != nil {
		return 0, fmt.Errorf("failed to compute rank: %w", err)
	}
	return int(ahead) + 1, nil
}

// resolveComponents maps collected component IDs to catalog entries and,
// when a QR code is given, resolves the component its clue points to.
func (s *ScanServiceImpl) resolveComponents(ctx context.Context, collectedIDs []string, qrCode *models.QRCode) ([]*models.Component, *models.Component, error) {
	catalog, err := s.componentRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load component catalog: %w", err)
	}

	collectedSet := make(map[string]bool, len(collectedIDs))
	for _, id := range collectedIDs {
		collectedSet[id] = true
	}

	var collected []*models.Component
	var pointsTo *models.Component
	for _, c := range catalog {
		if collectedSet[c.ID] {
			collected = append(collected, c)
		}
		if qrCode != nil && c.ID == qrCode.PointsToComponentID {
			pointsTo = c
		}
	}
	if collected == nil {
		collected = []*models.Component{}
	}
	return collected, pointsTo, nil
}
