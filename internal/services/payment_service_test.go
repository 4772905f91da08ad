package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/campusquest/hunt-backend/internal/config"
	"github.com/campusquest/hunt-backend/internal/models"
	"github.com/campusquest/hunt-backend/pkg/cashfree"
)

type stubGateway struct {
	orders       []*cashfree.OrderRequest
	createErr    error
	signatureOK  bool
	verifiedWith string
}

func (g *stubGateway) CreateOrder(order *cashfree.OrderRequest) (*cashfree.OrderResponse, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.orders = append(g.orders, order)
	resp := &cashfree.OrderResponse{
		CFOrderID:   "cf_123",
		OrderID:     order.OrderID,
		OrderStatus: "ACTIVE",
	}
	resp.Payments.URL = "https://payments.example.com/" + order.OrderID
	return resp, nil
}

func (g *stubGateway) VerifyWebhookSignature(_ []byte, signature string) bool {
	g.verifiedWith = signature
	return g.signatureOK
}

func paymentTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.AppURL = "https://hunt.example.com"
	cfg.Hunt.FeeAmount = 20
	cfg.Hunt.Currency = "INR"
	return cfg
}

func newPaymentService(payments *stubPaymentRepo, participants *stubParticipantRepo, gw *stubGateway) *PaymentServiceImpl {
	svc := NewPaymentService(payments, participants, gw, paymentTestConfig())
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	svc.newOrderID = func(registrationID string) string {
		return fmt.Sprintf("HUNT-%s-1-abc", registrationID)
	}
	return svc
}

func TestCreateOrderRejectsInvalidID(t *testing.T) {
	svc := newPaymentService(&stubPaymentRepo{}, newStubParticipantRepo(), &stubGateway{})

	for _, id := range []string{"", "short", "24F01A0000", "ABCDEF12"} {
		if _, err := svc.CreateOrder(context.Background(), id); !errors.Is(err, ErrInvalidRegistrationID) {
			t.Fatalf("CreateOrder(%q): expected ErrInvalidRegistrationID, got %v", id, err)
		}
	}
}

func TestCreateOrderRejectsAlreadyPaid(t *testing.T) {
	payments := &stubPaymentRepo{payments: []*models.Payment{{
		RegistrationID: "24F01A4909",
		Status:         models.PaymentStatusPaid,
	}}}
	svc := newPaymentService(payments, newStubParticipantRepo(), &stubGateway{})

	if _, err := svc.CreateOrder(context.Background(), "24F01A4909"); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}
}

func TestCreateOrderStoresCreatedRecord(t *testing.T) {
	payments := &stubPaymentRepo{}
	gw := &stubGateway{}
	svc := newPaymentService(payments, newStubParticipantRepo(), gw)

	result, err := svc.CreateOrder(context.Background(), "24f01a4909")
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}

	if result.OrderID != "HUNT-24F01A4909-1-abc" {
		t.Fatalf("unexpected order ID %q", result.OrderID)
	}
	if !strings.HasPrefix(result.PaymentLink, "https://payments.example.com/") {
		t.Fatalf("unexpected payment link %q", result.PaymentLink)
	}

	if len(payments.payments) != 1 {
		t.Fatalf("expected one stored payment, got %d", len(payments.payments))
	}
	stored := payments.payments[0]
	if stored.Status != models.PaymentStatusCreated {
		t.Fatalf("expected CREATED status, got %q", stored.Status)
	}
	if stored.RegistrationID != "24F01A4909" {
		t.Fatalf("expected normalized registration ID, got %q", stored.RegistrationID)
	}
	if stored.Amount != 20 {
		t.Fatalf("expected fee 20, got %v", stored.Amount)
	}

	if len(gw.orders) != 1 {
		t.Fatalf("expected one gateway order, got %d", len(gw.orders))
	}
	order := gw.orders[0]
	if order.OrderCurrency != "INR" {
		t.Fatalf("expected INR currency, got %q", order.OrderCurrency)
	}
	if !strings.Contains(order.OrderMeta.NotifyURL, "/api/v1/payments/webhook") {
		t.Fatalf("unexpected notify URL %q", order.OrderMeta.NotifyURL)
	}
}

func webhookBody(t *testing.T, orderID, status string) []byte {
	t.Helper()
	body := map[string]any{
		"type": "PAYMENT_SUCCESS_WEBHOOK",
		"data": map[string]any{
			"order": map[string]any{"order_id": orderID, "order_amount": 20},
			"payment": map[string]any{
				"cf_payment_id":  12345,
				"payment_status": status,
				"payment_amount": 20,
				"payment_method": map[string]any{
					"payment_method_type": "upi",
					"payment_method_details": map[string]any{
						"upi_id": "asha@upi",
					},
				},
			},
		},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal webhook body: %v", err)
	}
	return raw
}

func TestProcessWebhookRejectsBadSignature(t *testing.T) {
	svc := newPaymentService(&stubPaymentRepo{}, newStubParticipantRepo(), &stubGateway{signatureOK: false})

	err := svc.ProcessWebhook(context.Background(), webhookBody(t, "HUNT-X-1-a", "SUCCESS"), "bogus")
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestProcessWebhookMarksExistingParticipantPaid(t *testing.T) {
	payments := &stubPaymentRepo{payments: []*models.Payment{{
		RegistrationID: "24F01A4909",
		OrderID:        "HUNT-24F01A4909-1-abc",
		Status:         models.PaymentStatusCreated,
	}}}
	participants := newStubParticipantRepo()
	participants.participants["24F01A4909"] = &models.Participant{
		RegistrationID:    "24F01A4909",
		ScannedComponents: []string{},
	}
	svc := newPaymentService(payments, participants, &stubGateway{signatureOK: true})

	err := svc.ProcessWebhook(context.Background(), webhookBody(t, "HUNT-24F01A4909-1-abc", "SUCCESS"), "sig")
	if err != nil {
		t.Fatalf("ProcessWebhook returned error: %v", err)
	}

	if payments.payments[0].Status != models.PaymentStatusPaid {
		t.Fatalf("payment status not updated: %q", payments.payments[0].Status)
	}
	if payments.payments[0].BankingName != "asha@upi" {
		t.Fatalf("banking name not captured: %q", payments.payments[0].BankingName)
	}
	p := participants.participants["24F01A4909"]
	if !p.HasPaid || p.PaymentID != "12345" {
		t.Fatalf("participant not marked paid: %+v", p)
	}
}

func TestProcessWebhookCreatesParticipantWhenMissing(t *testing.T) {
	payments := &stubPaymentRepo{payments: []*models.Payment{{
		RegistrationID: "24F01A4909",
		OrderID:        "HUNT-24F01A4909-1-abc",
		Status:         models.PaymentStatusCreated,
	}}}
	participants := newStubParticipantRepo()
	svc := newPaymentService(payments, participants, &stubGateway{signatureOK: true})

	err := svc.ProcessWebhook(context.Background(), webhookBody(t, "HUNT-24F01A4909-1-abc", "SUCCESS"), "sig")
	if err != nil {
		t.Fatalf("ProcessWebhook returned error: %v", err)
	}

	p, ok := participants.participants["24F01A4909"]
	if !ok {
		t.Fatal("participant not created on successful payment")
	}
	if !p.HasPaid || len(p.ScannedComponents) != 0 {
		t.Fatalf("unexpected participant state: %+v", p)
	}
}

func TestProcessWebhookNonSuccessLeavesParticipantUnpaid(t *testing.T) {
	payments := &stubPaymentRepo{payments: []*models.Payment{{
		RegistrationID: "24F01A4909",
		OrderID:        "HUNT-24F01A4909-1-abc",
		Status:         models.PaymentStatusCreated,
	}}}
	participants := newStubParticipantRepo()
	svc := newPaymentService(payments, participants, &stubGateway{signatureOK: true})

	err := svc.ProcessWebhook(context.Background(), webhookBody(t, "HUNT-24F01A4909-1-abc", "FAILED"), "sig")
	if err != nil {
		t.Fatalf("ProcessWebhook returned error: %v", err)
	}

	if payments.payments[0].Status != "FAILED" {
		t.Fatalf("expected FAILED status stored verbatim, got %q", payments.payments[0].Status)
	}
	if len(participants.participants) != 0 {
		t.Fatal("failed payment must not create a participant")
	}
}

func TestListVerifiedUsersProjectsPaidRecords(t *testing.T) {
	payments := &stubPaymentRepo{payments: []*models.Payment{
		{RegistrationID: "24F01A4909", OrderID: "o1", Status: models.PaymentStatusPaid, Name: "Asha", Amount: 20},
		{RegistrationID: "25F01B4902", OrderID: "o2", Status: models.PaymentStatusCreated},
	}}
	svc := newPaymentService(payments, newStubParticipantRepo(), &stubGateway{})

	users, err := svc.ListVerifiedUsers(context.Background())
	if err != nil {
		t.Fatalf("ListVerifiedUsers returned error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one verified user, got %d", len(users))
	}
	if users[0].RegistrationID != "24F01A4909" || users[0].TransactionID != "o1" || !users[0].Verified {
		t.Fatalf("unexpected summary: %+v", users[0])
	}
}
