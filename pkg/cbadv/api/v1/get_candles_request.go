package cbadv

import (
	"time"

	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

type Candle struct {
	Start  Timestamp       `json:"start"`
	Low    decimal.Decimal `json:"low"`
	High   decimal.Decimal `json:"high"`
	Open   decimal.Decimal `json:"open"`
	Close  decimal.Decimal `json:"close"`
	Volume decimal.Decimal `json:"volume"`
}

type CandleSnapshot struct {
	Candles []Candle `json:"candles"`
}

// The exchange serves at most 300 candles per request; the window between
// start and end has to respect that for the chosen granularity.
//go:generate requestgen -method GET -url "/api/v3/brokerage/products/:product_id/candles" -type GetCandlesRequest -responseType .CandleSnapshot
type GetCandlesRequest struct {
	client requestgen.AuthenticatedAPIClient

	productID   string      `param:"product_id,slug,required"`
	start       *time.Time  `param:"start" timeFormat:"seconds"`
	end         *time.Time  `param:"end" timeFormat:"seconds"`
	granularity Granularity `param:"granularity,required" validValues:"ONE_MINUTE,FIVE_MINUTE,FIFTEEN_MINUTE,THIRTY_MINUTE,ONE_HOUR,TWO_HOUR,SIX_HOUR,ONE_DAY"`
}

func (s *ProductService) NewGetCandlesRequest() *GetCandlesRequest {
	return &GetCandlesRequest{client: s.client}
}
