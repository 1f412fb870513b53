package smsgateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGateway(t *testing.T) {
	gateway := NewMockGateway()

	messageID, err := gateway.SendSMS("9805012345", "test message")
	require.NoError(t, err)
	assert.Contains(t, messageID, "MOCK-MSG-")

	status, err := gateway.GetDeliveryStatus(messageID)
	require.NoError(t, err)
	assert.Equal(t, "DELIVERED", status)
}

func TestHTTPGateway_SendSMS(t *testing.T) {
	var received sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "api-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(sendResponse{MessageID: "msg-42", Status: "QUEUED"})
	}))
	defer server.Close()

	gateway := NewHTTPGateway(server.URL, "api-key", "HPTOUR")
	messageID, err := gateway.SendSMS("9805012345", "Your application has been approved.")
	require.NoError(t, err)

	assert.Equal(t, "msg-42", messageID)
	assert.Equal(t, "HPTOUR", received.Sender)
	assert.Equal(t, "9805012345", received.Phone)
}

func TestHTTPGateway_SendSMS_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	gateway := NewHTTPGateway(server.URL, "api-key", "HPTOUR")
	_, err := gateway.SendSMS("9805012345", "message")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
