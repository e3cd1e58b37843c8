package cbadv

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/Liftss/cbadv-go/pkg/cbadv/api/v1"
)

func TestSubmitOrderParams_OrderConfiguration(t *testing.T) {
	d := decimal.RequireFromString
	endTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		params  SubmitOrderParams
		wantErr string
		check   func(t *testing.T, cfg *api.OrderConfiguration)
	}{
		{
			name: "market buy with quote size",
			params: SubmitOrderParams{
				ProductID: "BTC-USD",
				Side:      api.SideTypeBuy,
				Type:      api.OrderTypeMarket,
				QuoteSize: d("100"),
			},
			check: func(t *testing.T, cfg *api.OrderConfiguration) {
				require.NotNil(t, cfg.MarketIOC)
				require.NotNil(t, cfg.MarketIOC.QuoteSize)
				assert.Nil(t, cfg.MarketIOC.BaseSize)
				assert.True(t, cfg.MarketIOC.QuoteSize.Equal(d("100")))
			},
		},
		{
			name: "market sell with base size",
			params: SubmitOrderParams{
				ProductID: "BTC-USD",
				Side:      api.SideTypeSell,
				Type:      api.OrderTypeMarket,
				BaseSize:  d("0.5"),
			},
			check: func(t *testing.T, cfg *api.OrderConfiguration) {
				require.NotNil(t, cfg.MarketIOC)
				require.NotNil(t, cfg.MarketIOC.BaseSize)
				assert.Nil(t, cfg.MarketIOC.QuoteSize)
			},
		},
		{
			name: "market with both sizes",
			params: SubmitOrderParams{
				ProductID: "BTC-USD",
				Side:      api.SideTypeBuy,
				Type:      api.OrderTypeMarket,
				BaseSize:  d("0.5"),
				QuoteSize: d("100"),
			},
			wantErr: "market orders take exactly one of base size or quote size",
		},
		{
			name: "market with neither size",
			params: SubmitOrderParams{
				ProductID: "BTC-USD",
				Side:      api.SideTypeBuy,
				Type:      api.OrderTypeMarket,
			},
			wantErr: "market orders take exactly one of base size or quote size",
		},
		{
			name: "market sell with quote size",
			params: SubmitOrderParams{
				ProductID: "BTC-USD",
				Side:      api.SideTypeSell,
				Type:      api.OrderTypeMarket,
				QuoteSize: d("100"),
			},
			wantErr: "market sell orders take base size, not quote size",
		},
		{
			name: "market post only",
			params: SubmitOrderParams{
				ProductID: "BTC-USD",
				Side:      api.SideTypeBuy,
				Type:      api.OrderTypeMarket,
				QuoteSize: d("100"),
				PostOnly:  true,
			},
			wantErr: "post only applies to limit orders only",
		},
		{
			name: "limit gtc",
			params: SubmitOrderParams{
				ProductID:  "BTC-USD",
				Side:       api.SideTypeBuy,
				Type:       api.OrderTypeLimit,
				BaseSize:   d("0.001"),
				LimitPrice: d("25000"),
				PostOnly:   true,
			},
			check: func(t *testing.T, cfg *api.OrderConfiguration) {
				require.NotNil(t, cfg.LimitGTC)
				assert.Nil(t, cfg.LimitGTD)
				assert.True(t, cfg.LimitGTC.PostOnly)
				assert.True(t, cfg.LimitGTC.LimitPrice.Equal(d("25000")))
			},
		},
		{
			name: "limit with end time becomes good until date",
			params: SubmitOrderParams{
				ProductID:  "BTC-USD",
				Side:       api.SideTypeBuy,
				Type:       api.OrderTypeLimit,
				BaseSize:   d("0.001"),
				LimitPrice: d("25000"),
				EndTime:    endTime,
			},
			check: func(t *testing.T, cfg *api.OrderConfiguration) {
				require.NotNil(t, cfg.LimitGTD)
				assert.Nil(t, cfg.LimitGTC)
				assert.True(t, cfg.LimitGTD.EndTime.Equal(endTime))
			},
		},
		{
			name: "limit without base size",
			params: SubmitOrderParams{
				ProductID:  "BTC-USD",
				Side:       api.SideTypeBuy,
				Type:       api.OrderTypeLimit,
				LimitPrice: d("25000"),
			},
			wantErr: "limit orders take a positive base size",
		},
		{
			name: "limit without limit price",
			params: SubmitOrderParams{
				ProductID: "BTC-USD",
				Side:      api.SideTypeBuy,
				Type:      api.OrderTypeLimit,
				BaseSize:  d("0.001"),
			},
			wantErr: "limit orders take a positive limit price",
		},
		{
			name: "stop limit gtc",
			params: SubmitOrderParams{
				ProductID:     "BTC-USD",
				Side:          api.SideTypeSell,
				Type:          api.OrderTypeStopLimit,
				BaseSize:      d("0.001"),
				LimitPrice:    d("24000"),
				StopPrice:     d("24500"),
				StopDirection: api.StopDirectionDown,
			},
			check: func(t *testing.T, cfg *api.OrderConfiguration) {
				require.NotNil(t, cfg.StopLimitGTC)
				assert.Nil(t, cfg.StopLimitGTD)
				assert.Equal(t, api.StopDirectionDown, cfg.StopLimitGTC.StopDirection)
				assert.True(t, cfg.StopLimitGTC.StopPrice.Equal(d("24500")))
			},
		},
		{
			name: "stop limit with end time becomes good until date",
			params: SubmitOrderParams{
				ProductID:     "BTC-USD",
				Side:          api.SideTypeBuy,
				Type:          api.OrderTypeStopLimit,
				BaseSize:      d("0.001"),
				LimitPrice:    d("26000"),
				StopPrice:     d("25500"),
				StopDirection: api.StopDirectionUp,
				EndTime:       endTime,
			},
			check: func(t *testing.T, cfg *api.OrderConfiguration) {
				require.NotNil(t, cfg.StopLimitGTD)
				assert.Nil(t, cfg.StopLimitGTC)
				assert.True(t, cfg.StopLimitGTD.EndTime.Equal(endTime))
			},
		},
		{
			name: "stop limit without stop price",
			params: SubmitOrderParams{
				ProductID:     "BTC-USD",
				Side:          api.SideTypeSell,
				Type:          api.OrderTypeStopLimit,
				BaseSize:      d("0.001"),
				LimitPrice:    d("24000"),
				StopDirection: api.StopDirectionDown,
			},
			wantErr: "stop limit orders take a positive stop price",
		},
		{
			name: "stop limit without direction",
			params: SubmitOrderParams{
				ProductID:  "BTC-USD",
				Side:       api.SideTypeSell,
				Type:       api.OrderTypeStopLimit,
				BaseSize:   d("0.001"),
				LimitPrice: d("24000"),
				StopPrice:  d("24500"),
			},
			wantErr: "unsupported stop direction: ",
		},
		{
			name: "stop limit post only",
			params: SubmitOrderParams{
				ProductID:     "BTC-USD",
				Side:          api.SideTypeSell,
				Type:          api.OrderTypeStopLimit,
				BaseSize:      d("0.001"),
				LimitPrice:    d("24000"),
				StopPrice:     d("24500"),
				StopDirection: api.StopDirectionDown,
				PostOnly:      true,
			},
			wantErr: "post only applies to limit orders only",
		},
		{
			name: "missing product id",
			params: SubmitOrderParams{
				Side:      api.SideTypeBuy,
				Type:      api.OrderTypeMarket,
				QuoteSize: d("100"),
			},
			wantErr: "product id is required",
		},
		{
			name: "unsupported side",
			params: SubmitOrderParams{
				ProductID: "BTC-USD",
				Side:      "HOLD",
				Type:      api.OrderTypeMarket,
				QuoteSize: d("100"),
			},
			wantErr: "unsupported order side: HOLD",
		},
		{
			name: "unsupported type",
			params: SubmitOrderParams{
				ProductID: "BTC-USD",
				Side:      api.SideTypeBuy,
				Type:      api.OrderTypeStop,
				BaseSize:  d("0.001"),
			},
			wantErr: "unsupported order type: STOP",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := c.params.OrderConfiguration()
			if len(c.wantErr) > 0 {
				assert.EqualError(t, err, c.wantErr)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			c.check(t, cfg)
		})
	}
}

func TestSubmitOrderParams_Quantize(t *testing.T) {
	d := decimal.RequireFromString
	product := &api.Product{
		ProductID:      "BTC-USD",
		BaseIncrement:  d("0.0001"),
		QuoteIncrement: d("0.01"),
	}

	params := SubmitOrderParams{
		ProductID:  "BTC-USD",
		Side:       api.SideTypeBuy,
		Type:       api.OrderTypeLimit,
		BaseSize:   d("0.00012345"),
		LimitPrice: d("25000.129"),
	}

	quantized := params.Quantize(product)
	assert.True(t, quantized.BaseSize.Equal(d("0.0001")), "got %s", quantized.BaseSize)
	assert.True(t, quantized.LimitPrice.Equal(d("25000.12")), "got %s", quantized.LimitPrice)

	// values already on the grid stay put
	assert.True(t, quantized.Quantize(product).BaseSize.Equal(quantized.BaseSize))

	// the original is left untouched
	assert.True(t, params.BaseSize.Equal(d("0.00012345")))
}
