package services

import (
	"context"
	"time"

	"github.com/campusquest/hunt-backend/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository stubs used across the service tests. They keep
// the same contracts as the mongodb implementations, including
// mongo.ErrNoDocuments for missing records.

type stubParticipantRepo struct {
	participants map[string]*models.Participant
	createErr    error
}

func newStubParticipantRepo() *stubParticipantRepo {
	return &stubParticipantRepo{participants: map[string]*models.Participant{}}
}

func (r *stubParticipantRepo) Create(_ context.Context, p *models.Participant) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *p
	r.participants[p.RegistrationID] = &cp
	return nil
}

func (r *stubParticipantRepo) FindByRegistrationID(_ context.Context, registrationID string) (*models.Participant, error) {
	p, ok := r.participants[registrationID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *p
	cp.ScannedComponents = append([]string{}, p.ScannedComponents...)
	return &cp, nil
}

func (r *stubParticipantRepo) Update(_ context.Context, p *models.Participant) error {
	if _, ok := r.participants[p.RegistrationID]; !ok {
		return mongo.ErrNoDocuments
	}
	cp := *p
	r.participants[p.RegistrationID] = &cp
	return nil
}

func (r *stubParticipantRepo) AddComponent(_ context.Context, registrationID, componentID string, scanTime time.Time) (bool, error) {
	p, ok := r.participants[registrationID]
	if !ok {
		return false, nil
	}
	for _, id := range p.ScannedComponents {
		if id == componentID {
			return false, nil
		}
	}
	p.ScannedComponents = append(p.ScannedComponents, componentID)
	p.Progress++
	p.LastScanTime = scanTime
	return true, nil
}

func (r *stubParticipantRepo) MarkPaid(_ context.Context, registrationID, paymentID string, paidAt time.Time) error {
	p, ok := r.participants[registrationID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.HasPaid = true
	p.PaymentID = paymentID
	p.PaymentTimestamp = paidAt
	return nil
}

func (r *stubParticipantRepo) CountAhead(_ context.Context, progress int, lastScanTime time.Time) (int64, error) {
	var ahead int64
	for _, p := range r.participants {
		if len(p.ScannedComponents) > progress {
			ahead++
		} else if len(p.ScannedComponents) == progress && p.LastScanTime.Before(lastScanTime) {
			ahead++
		}
	}
	return ahead, nil
}

func (r *stubParticipantRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.participants)), nil
}

type stubPaymentRepo struct {
	payments []*models.Payment
}

func (r *stubPaymentRepo) Create(_ context.Context, p *models.Payment) error {
	cp := *p
	r.payments = append(r.payments, &cp)
	return nil
}

func (r *stubPaymentRepo) FindByOrderID(_ context.Context, orderID string) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *stubPaymentRepo) FindPaidByRegistrationID(_ context.Context, registrationID string) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.RegistrationID == registrationID && p.Status == models.PaymentStatusPaid {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *stubPaymentRepo) UpdateStatusByOrderID(_ context.Context, orderID string, update *models.Payment) error {
	for _, p := range r.payments {
		if p.OrderID == orderID {
			p.Status = update.Status
			p.PaymentID = update.PaymentID
			p.BankingName = update.BankingName
			p.PaymentMethod = update.PaymentMethod
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *stubPaymentRepo) FindByStatus(_ context.Context, status string) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range r.payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) FindAll(_ context.Context) ([]*models.Payment, error) {
	return r.payments, nil
}

func (r *stubPaymentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.payments)), nil
}

type stubComponentRepo struct{}

func (stubComponentRepo) FindAll(_ context.Context) ([]*models.Component, error) {
	out := make([]*models.Component, len(models.DefaultComponents))
	for i := range models.DefaultComponents {
		out[i] = &models.DefaultComponents[i]
	}
	return out, nil
}

func (r stubComponentRepo) FindByID(ctx context.Context, componentID string) (*models.Component, error) {
	all, _ := r.FindAll(ctx)
	for _, c := range all {
		if c.ID == componentID {
			return c, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type stubQRCodeRepo struct {
	codes []models.QRCode
}

func newStubQRCodeRepo() *stubQRCodeRepo {
	return &stubQRCodeRepo{codes: models.DefaultQRCodes(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))}
}

func (r *stubQRCodeRepo) FindAll(_ context.Context) ([]*models.QRCode, error) {
	out := make([]*models.QRCode, len(r.codes))
	for i := range r.codes {
		out[i] = &r.codes[i]
	}
	return out, nil
}

func (r *stubQRCodeRepo) FindByID(_ context.Context, qrID string) (*models.QRCode, error) {
	for i := range r.codes {
		if r.codes[i].ID == qrID {
			return &r.codes[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *stubQRCodeRepo) FindByComponentID(_ context.Context, componentID string) (*models.QRCode, error) {
	for i := range r.codes {
		if r.codes[i].ComponentID == componentID {
			return &r.codes[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type stubScanRepo struct {
	scans []*models.Scan
}

func (r *stubScanRepo) Create(_ context.Context, s *models.Scan) error {
	cp := *s
	r.scans = append(r.scans, &cp)
	return nil
}

func (r *stubScanRepo) CountByQRID(_ context.Context, qrID string) (int64, error) {
	var n int64
	for _, s := range r.scans {
		if s.QRID == qrID {
			n++
		}
	}
	return n, nil
}

type stubMilestoneRepo struct {
	three map[string]time.Time
	full  map[string]time.Time

	threeAttempts int
	fullAttempts  int
}

func newStubMilestoneRepo() *stubMilestoneRepo {
	return &stubMilestoneRepo{three: map[string]time.Time{}, full: map[string]time.Time{}}
}

func (r *stubMilestoneRepo) RecordThree(_ context.Context, registrationID string, completedAt time.Time) (bool, error) {
	r.threeAttempts++
	if _, ok := r.three[registrationID]; ok {
		return false, nil
	}
	r.three[registrationID] = completedAt
	return true, nil
}

func (r *stubMilestoneRepo) RecordFull(_ context.Context, registrationID string, completedAt time.Time) (bool, error) {
	r.fullAttempts++
	if _, ok := r.full[registrationID]; ok {
		return false, nil
	}
	r.full[registrationID] = completedAt
	return true, nil
}

func (r *stubMilestoneRepo) HasThree(_ context.Context, registrationID string) (bool, error) {
	_, ok := r.three[registrationID]
	return ok, nil
}

func (r *stubMilestoneRepo) HasFull(_ context.Context, registrationID string) (bool, error) {
	_, ok := r.full[registrationID]
	return ok, nil
}

type stubSettingsRepo struct {
	enabled bool
}

func (r *stubSettingsRepo) GetVerificationEnabled(_ context.Context) (bool, error) {
	return r.enabled, nil
}

func (r *stubSettingsRepo) SetVerificationEnabled(_ context.Context, enabled bool) error {
	r.enabled = enabled
	return nil
}

type stubVerifiedUserRepo struct {
	users map[string]*models.VerifiedUser
}

func newStubVerifiedUserRepo() *stubVerifiedUserRepo {
	return &stubVerifiedUserRepo{users: map[string]*models.VerifiedUser{}}
}

func (r *stubVerifiedUserRepo) Upsert(_ context.Context, u *models.VerifiedUser) error {
	cp := *u
	r.users[u.RegistrationID] = &cp
	return nil
}

func (r *stubVerifiedUserRepo) FindByRegistrationID(_ context.Context, registrationID string) (*models.VerifiedUser, error) {
	u, ok := r.users[registrationID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (r *stubVerifiedUserRepo) FindAll(_ context.Context) ([]*models.VerifiedUser, error) {
	out := make([]*models.VerifiedUser, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type stubAdminUserRepo struct {
	users map[string]*models.AdminUser
}

func newStubAdminUserRepo() *stubAdminUserRepo {
	return &stubAdminUserRepo{users: map[string]*models.AdminUser{}}
}

func (r *stubAdminUserRepo) Create(_ context.Context, u *models.AdminUser) error {
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *stubAdminUserRepo) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}
