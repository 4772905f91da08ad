package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/campusquest/hunt-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateOrder handles POST /payments
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req struct {
		RegistrationID string `json:"registrationId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration ID is required"})
		return
	}

	result, err := h.paymentService.CreateOrder(c, req.RegistrationID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRegistrationID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID. The 7th and 8th digits must be 4 and 9."})
		case errors.Is(err, services.ErrAlreadyPaid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already paid for this registration ID.", "alreadyPaid": true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"paymentLink": result.PaymentLink,
		"orderId":     result.OrderID,
	})
}

// Webhook handles POST /payments/webhook
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}
	signature := c.GetHeader("x-webhook-signature")

	if err := h.paymentService.ProcessWebhook(c, body, signature); err != nil {
		if errors.Is(err, services.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process webhook"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetStatus handles GET /payments/status/:orderId
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	payment, err := h.paymentService.GetPaymentStatus(c, orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment record not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId": payment.OrderID,
		"status":  payment.Status,
		"amount":  payment.Amount,
	})
}
