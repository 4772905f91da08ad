package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campusquest/hunt-backend/internal/models"
)

func newRegistrationService(participants *stubParticipantRepo) *RegistrationServiceImpl {
	svc := NewRegistrationService(participants, newStubQRCodeRepo())
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	svc.newToken = func() string { return "token-1" }
	return svc
}

func TestRegisterUnknownQRCode(t *testing.T) {
	svc := newRegistrationService(newStubParticipantRepo())

	_, err := svc.Register(context.Background(), "24F01A4909", "bogus", "fp")
	if !errors.Is(err, ErrQRCodeNotFound) {
		t.Fatalf("expected ErrQRCodeNotFound, got %v", err)
	}
}

func TestRegisterCreatesParticipantWithFirstComponent(t *testing.T) {
	participants := newStubParticipantRepo()
	svc := newRegistrationService(participants)

	result, err := svc.Register(context.Background(), "24f01a4909", models.QRCodeIDs[1], "fp-123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if result.AlreadyExists {
		t.Fatal("fresh registration flagged as existing")
	}
	if result.Progress != 1 {
		t.Fatalf("expected progress 1, got %d", result.Progress)
	}
	if result.DeviceToken != "token-1" {
		t.Fatalf("unexpected device token %q", result.DeviceToken)
	}

	p, ok := participants.participants["24F01A4909"]
	if !ok {
		t.Fatal("participant not stored under normalized ID")
	}
	if len(p.ScannedComponents) != 1 || p.ScannedComponents[0] != "resistor" {
		t.Fatalf("expected seeded component resistor, got %v", p.ScannedComponents)
	}
	if p.DeviceFingerprint != "fp-123" {
		t.Fatalf("device fingerprint not stored: %q", p.DeviceFingerprint)
	}
}

func TestRegisterExistingParticipant(t *testing.T) {
	participants := newStubParticipantRepo()
	created := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	participants.participants["24F01A4909"] = &models.Participant{
		RegistrationID:    "24F01A4909",
		ScannedComponents: []string{"led", "resistor", "battery"},
		CreatedAt:         created,
	}
	svc := newRegistrationService(participants)

	result, err := svc.Register(context.Background(), "24F01A4909", models.QRCodeIDs[0], "fp")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if !result.AlreadyExists {
		t.Fatal("existing registration not flagged")
	}
	if result.Progress != 3 {
		t.Fatalf("expected progress 3, got %d", result.Progress)
	}
	if !result.RegisteredAt.Equal(created) {
		t.Fatalf("expected original creation time, got %v", result.RegisteredAt)
	}
	if result.DeviceToken == "" {
		t.Fatal("existing registration should still receive a token")
	}

	p := participants.participants["24F01A4909"]
	if len(p.ScannedComponents) != 3 {
		t.Fatalf("re-registration mutated collections: %v", p.ScannedComponents)
	}
}
