package handlers

import (
	"net/http"

	"github.com/campusquest/hunt-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// ProgressHandler handles milestone read queries: the completion page
// and the refreshment-perk check.
type ProgressHandler struct {
	progressService services.ProgressService
}

// NewProgressHandler creates a new ProgressHandler
func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

// CompletionCheck handles GET /completion/check?registrationId=...
func (h *ProgressHandler) CompletionCheck(c *gin.Context) {
	registrationID := c.Query("registrationId")
	if registrationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration ID is required"})
		return
	}

	hasCompleted, err := h.progressService.HasReachedFive(c, registrationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check completion status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "hasCompleted": hasCompleted})
}

// RefreshmentCheck handles GET /refreshment/check?registrationId=...
func (h *ProgressHandler) RefreshmentCheck(c *gin.Context) {
	registrationID := c.Query("registrationId")
	if registrationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration ID is required"})
		return
	}

	hasThree, err := h.progressService.HasReachedThree(c, registrationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check refreshment eligibility"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "hasThreeComponents": hasThree})
}
