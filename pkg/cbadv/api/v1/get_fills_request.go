package cbadv

import (
	"time"

	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

type Fill struct {
	EntryID            string          `json:"entry_id"`
	TradeID            string          `json:"trade_id"`
	OrderID            string          `json:"order_id"`
	TradeTime          time.Time       `json:"trade_time"`
	TradeType          string          `json:"trade_type"`
	Price              decimal.Decimal `json:"price"`
	Size               decimal.Decimal `json:"size"`
	Commission         decimal.Decimal `json:"commission"`
	ProductID          string          `json:"product_id"`
	SequenceTimestamp  time.Time       `json:"sequence_timestamp"`
	LiquidityIndicator Liquidity       `json:"liquidity_indicator"`
	SizeInQuote        bool            `json:"size_in_quote"`
	UserID             string          `json:"user_id"`
	Side               SideType        `json:"side"`
}

// FillSnapshot is one page of fills. There is no has_next flag here, an
// empty Cursor marks the last page.
type FillSnapshot struct {
	Fills  []Fill `json:"fills"`
	Cursor string `json:"cursor"`
}

//go:generate requestgen -method GET -url "/api/v3/brokerage/orders/historical/fills" -type GetFillsRequest -responseType .FillSnapshot
type GetFillsRequest struct {
	client requestgen.AuthenticatedAPIClient

	orderID *string `param:"order_id"`

	productID *string `param:"product_id"`

	startSequenceTimestamp *time.Time `param:"start_sequence_timestamp" timeFormat:"RFC3339"`

	endSequenceTimestamp *time.Time `param:"end_sequence_timestamp" timeFormat:"RFC3339"`

	limit int `param:"limit,required"`

	cursor *string `param:"cursor"`
}

func (s *OrderService) NewGetFillsRequest() *GetFillsRequest {
	return &GetFillsRequest{client: s.client}
}
