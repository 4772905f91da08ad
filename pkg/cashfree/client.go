package cashfree

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client represents a Cashfree payment-gateway client
type Client struct {
	BaseURL   string
	AppID     string
	SecretKey string
	MockAPI   bool
	client    *http.Client
}

// OrderRequest represents an order creation request
type OrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	OrderNote       string          `json:"order_note,omitempty"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	OrderMeta       *OrderMeta      `json:"order_meta,omitempty"`
}

// CustomerDetails identifies the paying customer
type CustomerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}

// OrderMeta carries the redirect and notification URLs
type OrderMeta struct {
	ReturnURL string `json:"return_url"`
	NotifyURL string `json:"notify_url,omitempty"`
}

// OrderResponse represents an order creation response
type OrderResponse struct {
	CFOrderID        string `json:"cf_order_id"`
	OrderID          string `json:"order_id"`
	OrderStatus      string `json:"order_status"`
	PaymentSessionID string `json:"payment_session_id"`
	Payments         struct {
		URL string `json:"url"`
	} `json:"payments"`
}

// WebhookPayload represents an asynchronous payment notification
type WebhookPayload struct {
	Data struct {
		Order struct {
			OrderID     string  `json:"order_id"`
			OrderAmount float64 `json:"order_amount"`
		} `json:"order"`
		Payment struct {
			CFPaymentID   json.Number `json:"cf_payment_id"`
			PaymentStatus string      `json:"payment_status"`
			PaymentAmount float64     `json:"payment_amount"`
			PaymentTime   string      `json:"payment_time"`
			PaymentMethod struct {
				PaymentMethodType    string `json:"payment_method_type"`
				PaymentMethodDetails struct {
					BankName     string `json:"bank_name"`
					UPIID        string `json:"upi_id"`
					CardBankName string `json:"card_bank_name"`
				} `json:"payment_method_details"`
			} `json:"payment_method"`
		} `json:"payment"`
	} `json:"data"`
	EventTime string `json:"event_time"`
	Type      string `json:"type"`
}

// BankingName extracts whichever banking detail the gateway reported.
func (p *WebhookPayload) BankingName() string {
	d := p.Data.Payment.PaymentMethod.PaymentMethodDetails
	switch {
	case d.BankName != "":
		return d.BankName
	case d.UPIID != "":
		return d.UPIID
	default:
		return d.CardBankName
	}
}

// NewClient creates a new Cashfree client
func NewClient(baseURL, appID, secretKey string, mockAPI bool) *Client {
	return &Client{
		BaseURL:   baseURL,
		AppID:     appID,
		SecretKey: secretKey,
		MockAPI:   mockAPI,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateOrder creates a payment order with the gateway
func (c *Client) CreateOrder(order *OrderRequest) (*OrderResponse, error) {
	if c.MockAPI {
		return c.mockCreateOrder(order)
	}

	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-version", "2022-09-01")
	req.Header.Set("x-client-id", c.AppID)
	req.Header.Set("x-client-secret", c.SecretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, fmt.Errorf("cashfree API error (%d): %s", resp.StatusCode, apiErr.Message)
	}

	var orderResp OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderResp); err != nil {
		return nil, err
	}
	return &orderResp, nil
}

// VerifyWebhookSignature checks the HMAC-SHA256 signature the gateway
// attaches to webhook deliveries.
func (c *Client) VerifyWebhookSignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.SecretKey))
	mac.Write(body)
	computed := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(computed), []byte(signature))
}

// GenerateOrderID builds a unique order identifier for a registration
func GenerateOrderID(registrationID string) string {
	suffix := uuid.NewString()[:6]
	return fmt.Sprintf("HUNT-%s-%d-%s", registrationID, time.Now().UnixMilli(), suffix)
}

// mockCreateOrder mocks order creation for local development
func (c *Client) mockCreateOrder(order *OrderRequest) (*OrderResponse, error) {
	resp := &OrderResponse{
		CFOrderID:        uuid.NewString(),
		OrderID:          order.OrderID,
		OrderStatus:      "ACTIVE",
		PaymentSessionID: "session_" + uuid.NewString(),
	}
	resp.Payments.URL = fmt.Sprintf("https://payments.cashfree.com/order/#%s", resp.PaymentSessionID)
	return resp, nil
}
