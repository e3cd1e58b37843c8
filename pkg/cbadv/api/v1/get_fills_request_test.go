package cbadv

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liftss/cbadv-go/pkg/testing/httptesting"
)

func TestGetFillsRequest_Do(t *testing.T) {
	raw := `{
		"fills": [
			{
				"entry_id": "22222-2222222-22222222",
				"trade_id": "1111-11111-111111",
				"order_id": "a2c52a54-7f3b-4d51-ae2c-1d3bbd1b38c0",
				"trade_time": "2021-05-31T09:59:59Z",
				"trade_type": "FILL",
				"price": "10000.00",
				"size": "0.001",
				"commission": "1.25",
				"product_id": "BTC-USD",
				"sequence_timestamp": "2021-05-31T09:58:59Z",
				"liquidity_indicator": "TAKER",
				"size_in_quote": false,
				"user_id": "3333-333333-3333333",
				"side": "BUY"
			}
		],
		"cursor": ""
	}`

	var saved *http.Request
	client := NewClient("key", "secret", 0)
	client.HttpClient = httptesting.HttpClientSaver(&saved, raw)

	req := client.OrderService.NewGetFillsRequest()
	req.OrderID("a2c52a54-7f3b-4d51-ae2c-1d3bbd1b38c0").Limit(100)

	snapshot, err := req.Do(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "/api/v3/brokerage/orders/historical/fills", saved.URL.Path)
	assert.Equal(t, "100", saved.URL.Query().Get("limit"))

	require.Len(t, snapshot.Fills, 1)
	fill := snapshot.Fills[0]
	assert.Equal(t, LiquidityTaker, fill.LiquidityIndicator)
	assert.Equal(t, SideTypeBuy, fill.Side)
	assert.True(t, fill.Commission.Equal(decimal.RequireFromString("1.25")))

	// an empty cursor means there is no next page
	assert.Empty(t, snapshot.Cursor)
}
