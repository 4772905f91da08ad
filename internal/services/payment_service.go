package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/campusquest/hunt-backend/internal/config"
	"github.com/campusquest/hunt-backend/internal/models"
	"github.com/campusquest/hunt-backend/internal/repositories"
	"github.com/campusquest/hunt-backend/internal/utils"
	"github.com/campusquest/hunt-backend/pkg/cashfree"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// PaymentGateway is the slice of the Cashfree client the payment service
// needs. The gateway itself is an external collaborator; this service
// only creates orders and consumes its notifications.
type PaymentGateway interface {
	CreateOrder(order *cashfree.OrderRequest) (*cashfree.OrderResponse, error)
	VerifyWebhookSignature(body []byte, signature string) bool
}

// Compile-time check to ensure PaymentServiceImpl implements PaymentService
var _ PaymentService = (*PaymentServiceImpl)(nil)

// PaymentServiceImpl handles order creation and gateway notifications
type PaymentServiceImpl struct {
	paymentRepo     repositories.PaymentRepository
	participantRepo repositories.ParticipantRepository
	gateway         PaymentGateway
	cfg             *config.Config

	now        func() time.Time
	newOrderID func(registrationID string) string
}

// NewPaymentService creates a new PaymentServiceImpl
func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	participantRepo repositories.ParticipantRepository,
	gateway PaymentGateway,
	cfg *config.Config,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		paymentRepo:     paymentRepo,
		participantRepo: participantRepo,
		gateway:         gateway,
		cfg:             cfg,
		now:             time.Now,
		newOrderID:      cashfree.GenerateOrderID,
	}
}

// CreateOrder creates a gateway order for the participation fee and
// stores the initial CREATED payment record.
func (s *PaymentServiceImpl) CreateOrder(ctx context.Context, registrationID string) (*models.OrderResult, error) {
	if !utils.ValidateRegistrationID(registrationID) {
		return nil, ErrInvalidRegistrationID
	}
	normalized := utils.NormalizeRegistrationID(registrationID)

	_, err := s.paymentRepo.FindPaidByRegistrationID(ctx, normalized)
	if err == nil {
		return nil, ErrAlreadyPaid
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check existing payments: %w", err)
	}

	orderID := s.newOrderID(normalized)
	order := &cashfree.OrderRequest{
		OrderID:       orderID,
		OrderAmount:   s.cfg.Hunt.FeeAmount,
		OrderCurrency: s.cfg.Hunt.Currency,
		OrderNote:     "QR Scavenger Hunt Participation Fee",
		CustomerDetails: cashfree.CustomerDetails{
			CustomerID:   normalized,
			CustomerName: normalized,
		},
		OrderMeta: &cashfree.OrderMeta{
			ReturnURL: fmt.Sprintf("%s/payment/callback?order_id={order_id}&registration_id=%s", s.cfg.Server.AppURL, normalized),
			NotifyURL: fmt.Sprintf("%s/api/v1/payments/webhook", s.cfg.Server.AppURL),
		},
	}

	resp, err := s.gateway.CreateOrder(order)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	if err := s.paymentRepo.Create(ctx, &models.Payment{
		RegistrationID: normalized,
		OrderID:        orderID,
		Amount:         s.cfg.Hunt.FeeAmount,
		Status:         models.PaymentStatusCreated,
		Timestamp:      s.now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to store payment record: %w", err)
	}

	slog.Info("Payment order created", "registrationId", normalized, "orderId", orderID)

	return &models.OrderResult{
		OrderID:     orderID,
		PaymentLink: resp.Payments.URL,
	}, nil
}

// ProcessWebhook applies an asynchronous gateway notification: verify
// the signature, update the payment record, and on success mark (or
// create) the participant as paid.
func (s *PaymentServiceImpl) ProcessWebhook(ctx context.Context, body []byte, signature string) error {
	if !s.gateway.VerifyWebhookSignature(body, signature) {
		return ErrInvalidSignature
	}

	var payload cashfree.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	orderID := payload.Data.Order.OrderID
	record, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("payment record not found for order %s: %w", orderID, err)
		}
		return fmt.Errorf("failed to load payment record: %w", err)
	}

	status := payload.Data.Payment.PaymentStatus
	mapped := status
	if status == "SUCCESS" {
		mapped = models.PaymentStatusPaid
	}

	update := &models.Payment{
		Status:        mapped,
		PaymentID:     payload.Data.Payment.CFPaymentID.String(),
		BankingName:   payload.BankingName(),
		PaymentMethod: payload.Data.Payment.PaymentMethod.PaymentMethodType,
	}
	if err := s.paymentRepo.UpdateStatusByOrderID(ctx, orderID, update); err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	if mapped != models.PaymentStatusPaid {
		slog.Warn("Payment not successful", "orderId", orderID, "status", status)
		return nil
	}

	registrationID := utils.NormalizeRegistrationID(record.RegistrationID)
	paidAt := s.now()
	err = s.participantRepo.MarkPaid(ctx, registrationID, update.PaymentID, paidAt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = s.participantRepo.Create(ctx, &models.Participant{
			RegistrationID:    registrationID,
			ScannedComponents: []string{},
			Progress:          0,
			HasPaid:           true,
			PaymentID:         update.PaymentID,
			PaymentTimestamp:  paidAt,
			CreatedAt:         paidAt,
		})
	}
	if err != nil {
		return fmt.Errorf("failed to mark participant paid: %w", err)
	}

	slog.Info("Payment confirmed", "orderId", orderID, "registrationId", registrationID)
	return nil
}

// GetPaymentStatus retrieves a payment record by order ID
func (s *PaymentServiceImpl) GetPaymentStatus(ctx context.Context, orderID string) (*models.Payment, error) {
	return s.paymentRepo.FindByOrderID(ctx, orderID)
}

// ListPayments retrieves all payment records for the admin dashboard
func (s *PaymentServiceImpl) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return s.paymentRepo.FindAll(ctx)
}

// ListVerifiedUsers projects PAID payment records into the admin
// verified-users listing.
func (s *PaymentServiceImpl) ListVerifiedUsers(ctx context.Context) ([]*models.VerifiedUserSummary, error) {
	payments, err := s.paymentRepo.FindByStatus(ctx, models.PaymentStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to list paid records: %w", err)
	}

	summaries := make([]*models.VerifiedUserSummary, 0, len(payments))
	for _, p := range payments {
		summaries = append(summaries, &models.VerifiedUserSummary{
			RegistrationID: p.RegistrationID,
			FullName:       p.Name,
			TransactionID:  p.OrderID,
			Amount:         p.Amount,
			BankingName:    p.BankingName,
			Verified:       true,
			Timestamp:      p.Timestamp,
		})
	}
	return summaries, nil
}
