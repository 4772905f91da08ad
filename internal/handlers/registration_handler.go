package handlers

import (
	"errors"
	"net/http"

	"github.com/campusquest/hunt-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles participant registration HTTP requests
type RegistrationHandler struct {
	registrationService services.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler
func NewRegistrationHandler(registrationService services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
	}
}

// Register handles POST /register
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req struct {
		RegistrationNumber string `json:"registrationNumber" binding:"required"`
		QRID               string `json:"qrId" binding:"required"`
		DeviceFingerprint  string `json:"deviceFingerprint"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration number and QR code ID are required"})
		return
	}

	result, err := h.registrationService.Register(c, req.RegistrationNumber, req.QRID, req.DeviceFingerprint)
	if err != nil {
		if errors.Is(err, services.ErrQRCodeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid QR code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	message := "Registration successful"
	if result.AlreadyExists {
		message = "User already registered"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"message":     message,
		"userId":      result.ParticipantID,
		"deviceToken": result.DeviceToken,
		"progress":    result.Progress,
	})
}
