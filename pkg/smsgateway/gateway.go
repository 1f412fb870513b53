package smsgateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Gateway represents an SMS gateway interface
type Gateway interface {
	SendSMS(phone, message string) (string, error)
	GetDeliveryStatus(messageID string) (string, error)
}

// HTTPGateway sends SMS through the state notification gateway
type HTTPGateway struct {
	BaseURL  string
	APIKey   string
	SenderID string
	client   *http.Client
}

// MockGateway is a no-op gateway for development and tests
type MockGateway struct{}

// NewHTTPGateway creates a new HTTP SMS gateway
func NewHTTPGateway(baseURL, apiKey, senderID string) Gateway {
	return &HTTPGateway{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		SenderID: senderID,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewMockGateway creates a new mock SMS gateway
func NewMockGateway() Gateway {
	return &MockGateway{}
}

type sendRequest struct {
	Sender  string `json:"sender"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type sendResponse struct {
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
}

// SendSMS sends an SMS through the gateway and returns the message ID
func (g *HTTPGateway) SendSMS(phone, message string) (string, error) {
	body, err := json.Marshal(sendRequest{
		Sender:  g.SenderID,
		Phone:   phone,
		Message: message,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, g.BaseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", g.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		payload, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode, payload)
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.MessageID, nil
}

// GetDeliveryStatus gets the delivery status of a sent message
func (g *HTTPGateway) GetDeliveryStatus(messageID string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, g.BaseURL+"/messages/"+messageID, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Api-Key", g.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Status, nil
}

// SendSMS on the mock gateway fabricates a message ID
func (g *MockGateway) SendSMS(phone, message string) (string, error) {
	return fmt.Sprintf("MOCK-MSG-%d", time.Now().UnixNano()), nil
}

// GetDeliveryStatus on the mock gateway always reports delivery
func (g *MockGateway) GetDeliveryStatus(messageID string) (string, error) {
	return "DELIVERED", nil
}
