package cbadv

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liftss/cbadv-go/pkg/testing/httptesting"
)

func TestCreateOrderRequest_GetParameters(t *testing.T) {
	client := NewClient("key", "secret", 0)

	t.Run("missing client order id", func(t *testing.T) {
		req := client.OrderService.NewCreateOrderRequest()
		req.ProductID("BTC-USD").Side(SideTypeBuy)

		_, err := req.GetParameters()
		assert.EqualError(t, err, "client_order_id is required, empty string given")
	})

	t.Run("invalid side", func(t *testing.T) {
		req := client.OrderService.NewCreateOrderRequest()
		req.ClientOrderID("2c104743-b40c-4b11-a4a6-066d38729a1f").
			ProductID("BTC-USD").
			Side("HOLD")

		_, err := req.GetParameters()
		assert.EqualError(t, err, "side gives invalid value")
	})
}

func TestCreateOrderRequest_payloadShape(t *testing.T) {
	client := NewClient("key", "secret", 0)

	quoteSize := decimal.RequireFromString("100.50")
	req := client.OrderService.NewCreateOrderRequest()
	req.ClientOrderID("2c104743-b40c-4b11-a4a6-066d38729a1f").
		ProductID("BTC-USD").
		Side(SideTypeBuy).
		OrderConfiguration(OrderConfiguration{
			MarketIOC: &MarketIOC{QuoteSize: &quoteSize},
		})

	data, err := req.GetParametersJSON()
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Contains(t, payload, "client_order_id")
	assert.Contains(t, payload, "product_id")
	assert.Contains(t, payload, "side")
	assert.Contains(t, payload, "order_configuration")

	// sizes go over the wire as strings, only the chosen leaf is present
	assert.JSONEq(t, `{"market_market_ioc": {"quote_size": "100.50"}}`, string(payload["order_configuration"]))
}

func TestCreateOrderRequest_Do(t *testing.T) {
	raw := `{
		"success": true,
		"order_id": "a2c52a54-7f3b-4d51-ae2c-1d3bbd1b38c0",
		"success_response": {
			"order_id": "a2c52a54-7f3b-4d51-ae2c-1d3bbd1b38c0",
			"product_id": "BTC-USD",
			"side": "BUY",
			"client_order_id": "2c104743-b40c-4b11-a4a6-066d38729a1f"
		}
	}`

	var saved *http.Request
	client := NewClient("key", "secret", 0)
	client.HttpClient = httptesting.HttpClientSaver(&saved, raw)

	baseSize := decimal.RequireFromString("0.001")
	limitPrice := decimal.RequireFromString("30000")

	req := client.OrderService.NewCreateOrderRequest()
	req.ClientOrderID("2c104743-b40c-4b11-a4a6-066d38729a1f").
		ProductID("BTC-USD").
		Side(SideTypeBuy).
		OrderConfiguration(OrderConfiguration{
			LimitGTC: &LimitGTC{
				BaseSize:   baseSize,
				LimitPrice: limitPrice,
				PostOnly:   true,
			},
		})

	response, err := req.Do(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "POST", saved.Method)
	assert.Equal(t, "/api/v3/brokerage/orders", saved.URL.Path)

	body, err := io.ReadAll(saved.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"limit_limit_gtc"`)
	assert.Contains(t, string(body), `"post_only":true`)

	assert.True(t, response.Success)
	require.NotNil(t, response.SuccessResponse)
	assert.Equal(t, SideTypeBuy, response.SuccessResponse.Side)
	assert.Equal(t, "a2c52a54-7f3b-4d51-ae2c-1d3bbd1b38c0", response.OrderID)
	assert.Nil(t, response.ErrorResponse)
}

func TestCreateOrderRequest_rejected(t *testing.T) {
	raw := `{
		"success": false,
		"failure_reason": "UNKNOWN_FAILURE_REASON",
		"error_response": {
			"error": "INSUFFICIENT_FUND",
			"message": "Insufficient balance in source account",
			"error_details": "",
			"new_order_failure_reason": "INSUFFICIENT_FUND"
		}
	}`

	client := NewClient("key", "secret", 0)
	client.HttpClient = httptesting.HttpClientWithContent(raw)

	quoteSize := decimal.RequireFromString("100000000")
	req := client.OrderService.NewCreateOrderRequest()
	req.ClientOrderID("7b9a1f21-4f0f-4c3a-8bd5-9467c35d6a07").
		ProductID("BTC-USD").
		Side(SideTypeBuy).
		OrderConfiguration(OrderConfiguration{
			MarketIOC: &MarketIOC{QuoteSize: &quoteSize},
		})

	response, err := req.Do(context.Background())
	require.NoError(t, err)

	// a rejected order still comes back as HTTP 200
	assert.False(t, response.Success)
	require.NotNil(t, response.ErrorResponse)
	assert.Equal(t, "INSUFFICIENT_FUND", response.ErrorResponse.Error)
	assert.Equal(t, "Insufficient balance in source account", response.ErrorResponse.Message)
}
