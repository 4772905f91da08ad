package handlers

import (
	"net/http"

	"github.com/campusquest/hunt-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// VerificationHandler handles verification-related HTTP requests
type VerificationHandler struct {
	verificationService services.VerificationService
}

// NewVerificationHandler creates a new VerificationHandler
func NewVerificationHandler(verificationService services.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
	}
}

// VerifyRegistration handles POST /verify
func (h *VerificationHandler) VerifyRegistration(c *gin.Context) {
	var req struct {
		RegistrationID string `json:"registrationId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Registration ID is required"})
		return
	}

	result, err := h.verificationService.VerifyRegistration(c, req.RegistrationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"verified":       result.Verified,
		"message":        result.Message,
		"registrationId": result.RegistrationID,
		"name":           result.Name,
		"transactionId":  result.TransactionID,
	})
}

// VerificationStatus handles GET /verification-status?registration_id=...
func (h *VerificationHandler) VerificationStatus(c *gin.Context) {
	registrationID := c.Query("registration_id")
	if registrationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration ID is required"})
		return
	}

	verified, err := h.verificationService.IsVerified(c, registrationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check verification status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "verified": verified})
}
