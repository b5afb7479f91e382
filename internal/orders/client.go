package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/models"
)

// Result is the outcome of an order submission. Recorded tells whether the
// backend accepted the order; either way both identifiers are populated, so
// the confirmation step never blocks on the backend.
type Result struct {
	OrderID   string
	PaymentID string
	Recorded  bool
}

// Client submits orders to the order-creation endpoint. The backend call is
// best-effort telemetry: any failure, including the request timeout, falls
// back to locally synthesized identifiers.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type createOrderRequest struct {
	Amount         float64               `json:"amount"`
	Currency       string                `json:"currency"`
	BillingDetails models.BillingDetails `json:"billingDetails"`
	CartItems      []models.CartItem     `json:"cartItems"`
}

type createOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		Status   string `json:"status"`
		Receipt  string `json:"receipt"`
	} `json:"order"`
}

// Submit records the order with the backend and returns the identifiers to
// show on the confirmation view. It never fails: a rejected, malformed or
// unreachable backend yields synthesized identifiers instead.
func (c *Client) Submit(ctx context.Context, amount float64, currency string, billing models.BillingDetails, items []models.CartItem) Result {
	order, err := c.createOrder(ctx, amount, currency, billing, items)
	if err != nil {
		log.Println("[ORDER] [WARN] order creation failed, using local ids:", err)
		return Result{OrderID: newOrderID(), PaymentID: newPaymentID()}
	}
	return Result{OrderID: order, PaymentID: newPaymentID(), Recorded: true}
}

func (c *Client) createOrder(ctx context.Context, amount float64, currency string, billing models.BillingDetails, items []models.CartItem) (string, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:         amount,
		Currency:       currency,
		BillingDetails: billing,
		CartItems:      items,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK || !parsed.Success {
		return "", &rejectedError{Status: resp.StatusCode, Message: parsed.Message}
	}
	if strings.TrimSpace(parsed.Order.ID) == "" {
		return "", &rejectedError{Status: resp.StatusCode, Message: "order id missing in response"}
	}
	return parsed.Order.ID, nil
}

type rejectedError struct {
	Status  int
	Message string
}

func (e *rejectedError) Error() string {
	if e.Message == "" {
		return "order rejected by backend"
	}
	return "order rejected by backend: " + e.Message
}
