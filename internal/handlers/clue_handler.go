package handlers

import (
	"errors"
	"net/http"

	"github.com/campusquest/hunt-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// ClueHandler handles clue-related HTTP requests
type ClueHandler struct {
	clueService services.ClueService
}

// NewClueHandler creates a new ClueHandler
func NewClueHandler(clueService services.ClueService) *ClueHandler {
	return &ClueHandler{
		clueService: clueService,
	}
}

// FirstClue handles GET /clues/first?registration_id=...
func (h *ClueHandler) FirstClue(c *gin.Context) {
	registrationID := c.Query("registration_id")
	if registrationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration ID is required"})
		return
	}

	qrCode, err := h.clueService.FirstClue(c, registrationID)
	if err != nil {
		h.writeClueError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"clue": gin.H{
			"id":          qrCode.ID,
			"componentId": qrCode.ComponentID,
			"clue":        qrCode.Clue,
			"hint":        qrCode.Hint,
			"difficulty":  qrCode.Difficulty,
		},
	})
}

// NextClue handles GET /clues/next?registration_id=...
func (h *ClueHandler) NextClue(c *gin.Context) {
	registrationID := c.Query("registration_id")
	if registrationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration ID is required"})
		return
	}

	clue, err := h.clueService.NextClue(c, registrationID)
	if err != nil {
		if errors.Is(err, services.ErrAllCollected) {
			c.JSON(http.StatusOK, gin.H{"message": "All components collected"})
			return
		}
		h.writeClueError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "clue": clue})
}

func (h *ClueHandler) writeClueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPaymentRequired):
		c.JSON(http.StatusForbidden, gin.H{"error": "Payment verification required to access clues"})
	case errors.Is(err, services.ErrParticipantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clue"})
	}
}
