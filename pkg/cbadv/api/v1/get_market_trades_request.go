package cbadv

import (
	"time"

	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

type MarketTrade struct {
	TradeID   string          `json:"trade_id"`
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	Size      decimal.Decimal `json:"size"`
	Time      time.Time       `json:"time"`
	Side      SideType        `json:"side"`
}

type MarketTradeSnapshot struct {
	Trades  []MarketTrade   `json:"trades"`
	BestBid decimal.Decimal `json:"best_bid"`
	BestAsk decimal.Decimal `json:"best_ask"`
}

//go:generate requestgen -method GET -url "/api/v3/brokerage/products/:product_id/ticker" -type GetMarketTradesRequest -responseType .MarketTradeSnapshot
type GetMarketTradesRequest struct {
	client requestgen.AuthenticatedAPIClient

	productID string `param:"product_id,slug,required"`
	limit     int    `param:"limit,required"`
}

func (s *ProductService) NewGetMarketTradesRequest() *GetMarketTradesRequest {
	return &GetMarketTradesRequest{client: s.client}
}
