package handlers

import (
	"errors"
	"net/http"

	"github.com/campusquest/hunt-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// progressCheckID is the reserved scan identifier the front end sends
// for a pure progress check.
const progressCheckID = "check-progress"

// ScanHandler handles scan-related HTTP requests
type ScanHandler struct {
	scanService services.ScanService
}

// NewScanHandler creates a new ScanHandler
func NewScanHandler(scanService services.ScanService) *ScanHandler {
	return &ScanHandler{
		scanService: scanService,
	}
}

// Scan handles GET /scan?id=...&registration_id=...
// The front end sends the physical code as either "id" or "code".
func (h *ScanHandler) Scan(c *gin.Context) {
	qrID := c.Query("id")
	if qrID == "" {
		qrID = c.Query("code")
	}
	if qrID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "QR code ID is required"})
		return
	}

	registrationID := c.Query("registration_id")
	if registrationID == "" {
		registrationID, _ = c.Cookie("registration_id")
	}
	if registrationID == "" {
		c.JSON(http.StatusOK, gin.H{
			"status": "registration_required",
			"qrId":   qrID,
		})
		return
	}

	if qrID == progressCheckID {
		h.progressCheck(c, registrationID)
		return
	}

	result, err := h.scanService.ProcessScan(c, registrationID, qrID)
	if err != nil {
		h.writeScanError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ScanHandler) progressCheck(c *gin.Context, registrationID string) {
	result, err := h.scanService.CheckProgress(c, registrationID)
	if err != nil {
		h.writeScanError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":              "success",
		"progress":            result.Progress,
		"collectedComponents": result.CollectedComponents,
		"rank":                result.Rank,
		"complete":            result.Complete,
	})
}

func (h *ScanHandler) writeScanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPaymentRequired):
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "payment_required",
			"message": "Please pay the registration fee to access the hunt.",
		})
	case errors.Is(err, services.ErrQRCodeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid QR code"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process QR code"})
	}
}
