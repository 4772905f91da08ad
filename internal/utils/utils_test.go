package utils

import (
	"testing"

	"github.com/campusquest/hunt-backend/internal/config"
)

func TestNormalizeRegistrationID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"24f01a4909", "24F01A4909"},
		{"  24F01A4909  ", "24F01A4909"},
		{"\t24f01a4909\n", "24F01A4909"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeRegistrationID(tt.in); got != tt.want {
			t.Errorf("NormalizeRegistrationID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateRegistrationID(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"24F01A4909", true},
		{"  24F01A4909  ", true},
		{"24F01A49", true},
		{"24F01A4", false},
		{"24F01A9409", false},
		{"24F01A0009", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateRegistrationID(tt.in); got != tt.valid {
			t.Errorf("ValidateRegistrationID(%q) = %v, want %v", tt.in, got, tt.valid)
		}
	}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	token, err := GenerateJWT("user-1", "admin", cfg)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	claims, err := ValidateJWT(token, cfg)
	if err != nil {
		t.Fatalf("ValidateJWT returned error: %v", err)
	}
	if claims["user_id"] != "user-1" || claims["role"] != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateJWTWrongSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	token, err := GenerateJWT("user-1", "admin", cfg)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	other := &config.Config{}
	other.JWT.Secret = "different-secret"
	if _, err := ValidateJWT(token, other); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestGenerateRandomString(t *testing.T) {
	a, err := GenerateRandomString(12)
	if err != nil {
		t.Fatalf("GenerateRandomString returned error: %v", err)
	}
	if len(a) != 12 {
		t.Fatalf("expected length 12, got %d", len(a))
	}

	b, err := GenerateRandomString(12)
	if err != nil {
		t.Fatalf("GenerateRandomString returned error: %v", err)
	}
	if a == b {
		t.Fatal("expected two random strings to differ")
	}
}
