package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Client is the state treasury payment-gateway client. In mock mode no
// network calls are made; order references are fabricated locally.
type Client struct {
	BaseURL     string
	APIKey      string
	MerchantID  string
	MockGateway bool
	client      *http.Client
}

// OrderRequest is the payload sent to the gateway to raise an order
type OrderRequest struct {
	MerchantID string `json:"merchantId"`
	Reference  string `json:"reference"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
}

// OrderResponse represents a payment order raised with the gateway
type OrderResponse struct {
	OrderID   string    `json:"orderId"`
	Reference string    `json:"reference"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewClient creates a new payment gateway client
func NewClient(baseURL, apiKey, merchantID string, mockGateway bool) *Client {
	return &Client{
		BaseURL:     baseURL,
		APIKey:      apiKey,
		MerchantID:  merchantID,
		MockGateway: mockGateway,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateOrder raises a payment order for the given reference and amount
func (c *Client) CreateOrder(ctx context.Context, reference string, amount decimal.Decimal) (*OrderResponse, error) {
	if c.MockGateway {
		return &OrderResponse{
			OrderID:   fmt.Sprintf("MOCK-ORD-%d", time.Now().UnixNano()),
			Reference: reference,
			Amount:    amount.StringFixed(2),
			Status:    "PENDING",
			CreatedAt: time.Now(),
		}, nil
	}

	body, err := json.Marshal(OrderRequest{
		MerchantID: c.MerchantID,
		Reference:  reference,
		Amount:     amount.StringFixed(2),
		Currency:   "INR",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var order OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderStatus fetches the current status of a payment order
func (c *Client) GetOrderStatus(ctx context.Context, orderID string) (string, error) {
	if c.MockGateway {
		return "PAID", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/orders/"+orderID, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Api-Key", c.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var order OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", err
	}
	return order.Status, nil
}
