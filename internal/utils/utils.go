package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/campusquest/hunt-backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// NormalizeRegistrationID trims whitespace and upper-cases a
// participant-supplied registration code. The normalized form is the
// canonical key used across every collection.
func NormalizeRegistrationID(registrationID string) string {
	return strings.ToUpper(strings.TrimSpace(registrationID))
}

// ValidateRegistrationID reports whether a registration code looks like
// a current-batch campus ID: at least 8 characters with '4' and '9' in
// the 7th and 8th positions.
func ValidateRegistrationID(registrationID string) bool {
	trimmed := strings.TrimSpace(registrationID)
	if len(trimmed) < 8 {
		return false
	}
	return trimmed[6] == '4' && trimmed[7] == '9'
}

// GenerateJWT generates a signed admin token
func GenerateJWT(userID string, role string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Second * time.Duration(cfg.JWT.ExpiresIn)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateJWT validates a token and returns its claims
func ValidateJWT(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// GenerateRandomString generates a URL-safe random string of the given length
func GenerateRandomString(length int) (string, error) {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b)[:length], nil
}
