package handlers

import (
	"errors"
	"net/http"

	"github.com/campusquest/hunt-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin dashboard HTTP requests
type AdminHandler struct {
	verificationService services.VerificationService
	paymentService      services.PaymentService
	adminService        services.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	verificationService services.VerificationService,
	paymentService services.PaymentService,
	adminService services.AdminService,
) *AdminHandler {
	return &AdminHandler{
		verificationService: verificationService,
		paymentService:      paymentService,
		adminService:        adminService,
	}
}

// GetVerificationToggle handles GET /admin/toggle-verification
func (h *AdminHandler) GetVerificationToggle(c *gin.Context) {
	enabled, err := h.verificationService.VerificationEnabled(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to read verification status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "verificationEnabled": enabled})
}

// SetVerificationToggle handles POST /admin/toggle-verification
func (h *AdminHandler) SetVerificationToggle(c *gin.Context) {
	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request. 'enabled' parameter must be a boolean."})
		return
	}

	if err := h.verificationService.SetVerificationEnabled(c, *req.Enabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update verification status"})
		return
	}

	message := "Verification disabled successfully"
	if *req.Enabled {
		message = "Verification enabled successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"message":             message,
		"verificationEnabled": *req.Enabled,
	})
}

// VerifyUser handles POST /admin/verify-user
func (h *AdminHandler) VerifyUser(c *gin.Context) {
	var req struct {
		RegistrationID string `json:"registrationId" binding:"required"`
		Name           string `json:"name"`
		Email          string `json:"email"`
		Phone          string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration ID is required"})
		return
	}

	if err := h.adminService.VerifyUser(c, req.RegistrationID, req.Name, req.Email, req.Phone); err != nil {
		if errors.Is(err, services.ErrInvalidRegistrationID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListPayments handles GET /admin/payments
func (h *AdminHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPayments(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments})
}

// ListVerifications handles GET /admin/verifications
func (h *AdminHandler) ListVerifications(c *gin.Context) {
	users, err := h.paymentService.ListVerifiedUsers(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list verified users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "verifiedUsers": users})
}
