package services

import (
	"context"
	"testing"
	"time"

	"github.com/campusquest/hunt-backend/internal/models"
)

func TestIsVerifiedToggleOff(t *testing.T) {
	svc := NewVerificationService(&stubPaymentRepo{}, &stubSettingsRepo{enabled: false})

	verified, err := svc.IsVerified(context.Background(), "ANYTHING")
	if err != nil {
		t.Fatalf("IsVerified returned error: %v", err)
	}
	if !verified {
		t.Fatal("expected every code to pass while the toggle is off")
	}
}

func TestIsVerifiedRequiresPaidRecord(t *testing.T) {
	payments := &stubPaymentRepo{}
	svc := NewVerificationService(payments, &stubSettingsRepo{enabled: true})

	verified, err := svc.IsVerified(context.Background(), "24F01A4909")
	if err != nil {
		t.Fatalf("IsVerified returned error: %v", err)
	}
	if verified {
		t.Fatal("expected unpaid code to be unverified")
	}

	payments.payments = append(payments.payments, &models.Payment{
		RegistrationID: "24F01A4909",
		OrderID:        "HUNT-24F01A4909-1-abc",
		Status:         models.PaymentStatusCreated,
	})
	verified, err = svc.IsVerified(context.Background(), "24F01A4909")
	if err != nil {
		t.Fatalf("IsVerified returned error: %v", err)
	}
	if verified {
		t.Fatal("CREATED record must not count as verified")
	}

	payments.payments[0].Status = models.PaymentStatusPaid
	verified, err = svc.IsVerified(context.Background(), "24F01A4909")
	if err != nil {
		t.Fatalf("IsVerified returned error: %v", err)
	}
	if !verified {
		t.Fatal("expected PAID record to verify")
	}
}

func TestIsVerifiedNormalizesRegistrationID(t *testing.T) {
	payments := &stubPaymentRepo{payments: []*models.Payment{{
		RegistrationID: "24F01A4909",
		Status:         models.PaymentStatusPaid,
	}}}
	svc := NewVerificationService(payments, &stubSettingsRepo{enabled: true})

	verified, err := svc.IsVerified(context.Background(), "  24f01a4909  ")
	if err != nil {
		t.Fatalf("IsVerified returned error: %v", err)
	}
	if !verified {
		t.Fatal("expected lower-cased padded input to match stored record")
	}
}

func TestVerifyRegistrationBypassed(t *testing.T) {
	svc := NewVerificationService(&stubPaymentRepo{}, &stubSettingsRepo{enabled: false})

	result, err := svc.VerifyRegistration(context.Background(), "24f01a4909")
	if err != nil {
		t.Fatalf("VerifyRegistration returned error: %v", err)
	}
	if !result.Verified || !result.Bypassed {
		t.Fatalf("expected verified+bypassed result, got %+v", result)
	}
	if result.RegistrationID != "24F01A4909" {
		t.Fatalf("expected normalized registration ID, got %q", result.RegistrationID)
	}
}

func TestVerifyRegistrationWithPaymentDetails(t *testing.T) {
	payments := &stubPaymentRepo{payments: []*models.Payment{{
		RegistrationID: "24F01A4909",
		OrderID:        "HUNT-24F01A4909-1-abc",
		Status:         models.PaymentStatusPaid,
		Name:           "Asha",
		Email:          "asha@example.com",
		Timestamp:      time.Now(),
	}}}
	svc := NewVerificationService(payments, &stubSettingsRepo{enabled: true})

	result, err := svc.VerifyRegistration(context.Background(), "24F01A4909")
	if err != nil {
		t.Fatalf("VerifyRegistration returned error: %v", err)
	}
	if !result.Verified || result.Bypassed {
		t.Fatalf("expected plain verified result, got %+v", result)
	}
	if result.TransactionID != "HUNT-24F01A4909-1-abc" || result.Name != "Asha" {
		t.Fatalf("payment details not carried through: %+v", result)
	}
}

func TestSetVerificationEnabled(t *testing.T) {
	settings := &stubSettingsRepo{enabled: true}
	svc := NewVerificationService(&stubPaymentRepo{}, settings)

	if err := svc.SetVerificationEnabled(context.Background(), false); err != nil {
		t.Fatalf("SetVerificationEnabled returned error: %v", err)
	}
	enabled, err := svc.VerificationEnabled(context.Background())
	if err != nil {
		t.Fatalf("VerificationEnabled returned error: %v", err)
	}
	if enabled {
		t.Fatal("expected toggle to be off after disabling")
	}
}
