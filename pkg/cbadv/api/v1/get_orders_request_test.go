package cbadv

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSnapshot_UnmarshalJSON(t *testing.T) {
	data := `{
		"orders": [
			{
				"order_id": "a2c52a54-7f3b-4d51-ae2c-1d3bbd1b38c0",
				"product_id": "BTC-USD",
				"user_id": "2b5b6b63-3cb0-4d67-a744-32c6dbbc1312",
				"order_configuration": {
					"limit_limit_gtc": {
						"base_size": "0.001",
						"limit_price": "30000",
						"post_only": false
					}
				},
				"side": "BUY",
				"client_order_id": "2c104743-b40c-4b11-a4a6-066d38729a1f",
				"status": "OPEN",
				"time_in_force": "GOOD_UNTIL_CANCELLED",
				"created_time": "2022-11-01T15:00:00Z",
				"completion_percentage": "50",
				"filled_size": "0.0005",
				"average_filled_price": "29998.50",
				"number_of_fills": "2",
				"filled_value": "14.99925",
				"pending_cancel": false,
				"size_in_quote": false,
				"total_fees": "0.0599",
				"size_inclusive_of_fees": false,
				"total_value_after_fees": "15.059",
				"trigger_status": "UNKNOWN_TRIGGER_STATUS",
				"order_type": "LIMIT",
				"reject_reason": "REJECT_REASON_UNSPECIFIED",
				"settled": false,
				"product_type": "SPOT",
				"reject_message": "",
				"cancel_message": ""
			}
		],
		"has_next": true,
		"cursor": "8912406"
	}`

	var snapshot OrderSnapshot
	require.NoError(t, json.Unmarshal([]byte(data), &snapshot))

	assert.True(t, snapshot.HasNext)
	assert.Equal(t, "8912406", snapshot.Cursor)
	require.Len(t, snapshot.Orders, 1)

	order := snapshot.Orders[0]
	assert.Equal(t, "a2c52a54-7f3b-4d51-ae2c-1d3bbd1b38c0", order.OrderID)
	assert.Equal(t, SideTypeBuy, order.Side)
	assert.Equal(t, OrderStatusOpen, order.Status)
	assert.Equal(t, TimeInForceGTC, order.TimeInForce)
	assert.Equal(t, OrderTypeLimit, order.OrderType)
	assert.Equal(t, ProductTypeSpot, order.ProductType)
	assert.Equal(t, time.Date(2022, 11, 1, 15, 0, 0, 0, time.UTC), order.CreatedTime)
	assert.True(t, order.FilledSize.Equal(decimal.RequireFromString("0.0005")))
	assert.True(t, order.AverageFilledPrice.Equal(decimal.RequireFromString("29998.50")))

	require.NotNil(t, order.OrderConfiguration.LimitGTC)
	assert.Nil(t, order.OrderConfiguration.MarketIOC)
	assert.True(t, order.OrderConfiguration.LimitGTC.LimitPrice.Equal(decimal.RequireFromString("30000")))
	assert.False(t, order.OrderConfiguration.LimitGTC.PostOnly)
}

func TestOrderSnapshot_malformedNumber(t *testing.T) {
	// a drifted schema fails at parse time instead of producing zero values
	data := `{
		"orders": [
			{
				"order_id": "a2c52a54-7f3b-4d51-ae2c-1d3bbd1b38c0",
				"filled_size": "not-a-number"
			}
		]
	}`

	var snapshot OrderSnapshot
	assert.Error(t, json.Unmarshal([]byte(data), &snapshot))
}

func TestGetOrdersRequest_queryEncoding(t *testing.T) {
	client := NewClient("key", "secret", 0)

	req := client.OrderService.NewGetOrdersRequest()
	req.ProductID("BTC-USD").
		OrderStatuses([]OrderStatus{OrderStatusOpen}).
		Limit(50).
		Cursor("abc")

	query, err := req.GetParametersQuery()
	require.NoError(t, err)

	// keys come out in byte order, so the signed path is reproducible
	assert.Equal(t, "cursor=abc&limit=50&order_status%5B%5D=OPEN&product_id=BTC-USD", query.Encode())

	again, err := req.GetParametersQuery()
	require.NoError(t, err)
	assert.Equal(t, query.Encode(), again.Encode())
}

func TestGetOrdersRequest_invalidOrderType(t *testing.T) {
	client := NewClient("key", "secret", 0)

	req := client.OrderService.NewGetOrdersRequest()
	req.Limit(50).OrderType("TWAP")

	_, err := req.GetParameters()
	assert.EqualError(t, err, "order_type gives invalid value")
}
