package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_MockGateway(t *testing.T) {
	client := NewClient("", "", "", true)

	order, err := client.CreateOrder(context.Background(), "HS-2026-TEST0001", decimal.RequireFromString("23085"))
	require.NoError(t, err)
	assert.Equal(t, "HS-2026-TEST0001", order.Reference)
	assert.Equal(t, "23085.00", order.Amount, "amounts are sent with two decimals")
	assert.Equal(t, "PENDING", order.Status)
	assert.NotEmpty(t, order.OrderID)

	status, err := client.GetOrderStatus(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "PAID", status)
}

func TestCreateOrder_SendsSignedRequest(t *testing.T) {
	var received OrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(OrderResponse{
			OrderID:   "ORD-1",
			Reference: received.Reference,
			Amount:    received.Amount,
			Status:    "PENDING",
			CreatedAt: time.Now(),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key", "HP-TOURISM", false)
	order, err := client.CreateOrder(context.Background(), "HS-2026-TEST0002", decimal.NewFromInt(8000))
	require.NoError(t, err)

	assert.Equal(t, "HP-TOURISM", received.MerchantID)
	assert.Equal(t, "INR", received.Currency)
	assert.Equal(t, "8000.00", received.Amount)
	assert.Equal(t, "ORD-1", order.OrderID)
}

func TestCreateOrder_GatewayErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "merchant", false)
	_, err := client.CreateOrder(context.Background(), "ref", decimal.NewFromInt(100))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
