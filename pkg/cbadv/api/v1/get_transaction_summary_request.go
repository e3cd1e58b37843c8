package cbadv

import (
	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

// FeeTier describes the volume band the account currently sits in. The band
// bounds stay strings, the top tier has an open upper bound.
type FeeTier struct {
	PricingTier  string          `json:"pricing_tier"`
	UsdFrom      string          `json:"usd_from"`
	UsdTo        string          `json:"usd_to"`
	TakerFeeRate decimal.Decimal `json:"taker_fee_rate"`
	MakerFeeRate decimal.Decimal `json:"maker_fee_rate"`
}

type MarginRate struct {
	Value decimal.Decimal `json:"value"`
}

type GoodsAndServicesTax struct {
	Rate decimal.Decimal `json:"rate"`
	Type string          `json:"type"`
}

type TransactionSummary struct {
	TotalVolume             decimal.Decimal      `json:"total_volume"`
	TotalFees               decimal.Decimal      `json:"total_fees"`
	FeeTier                 FeeTier              `json:"fee_tier"`
	MarginRate              *MarginRate          `json:"margin_rate,omitempty"`
	GoodsAndServicesTax     *GoodsAndServicesTax `json:"goods_and_services_tax,omitempty"`
	AdvancedTradeOnlyVolume decimal.Decimal      `json:"advanced_trade_only_volume"`
	AdvancedTradeOnlyFees   decimal.Decimal      `json:"advanced_trade_only_fees"`
	CoinbaseProVolume       decimal.Decimal      `json:"coinbase_pro_volume"`
	CoinbaseProFees         decimal.Decimal      `json:"coinbase_pro_fees"`
}

//go:generate requestgen -method GET -url "/api/v3/brokerage/transaction_summary" -type GetTransactionSummaryRequest -responseType .TransactionSummary
type GetTransactionSummaryRequest struct {
	client requestgen.AuthenticatedAPIClient

	productType *ProductType `param:"product_type" validValues:"SPOT,FUTURE"`
}

func (s *FeeService) NewGetTransactionSummaryRequest() *GetTransactionSummaryRequest {
	return &GetTransactionSummaryRequest{client: s.client}
}
