package cbadv

import (
	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID                 string          `json:"product_id"`
	Price                     decimal.Decimal `json:"price"`
	PricePercentageChange24H  decimal.Decimal `json:"price_percentage_change_24h"`
	Volume24H                 decimal.Decimal `json:"volume_24h"`
	VolumePercentageChange24H decimal.Decimal `json:"volume_percentage_change_24h"`
	BaseIncrement             decimal.Decimal `json:"base_increment"`
	QuoteIncrement            decimal.Decimal `json:"quote_increment"`
	QuoteMinSize              decimal.Decimal `json:"quote_min_size"`
	QuoteMaxSize              decimal.Decimal `json:"quote_max_size"`
	BaseMinSize               decimal.Decimal `json:"base_min_size"`
	BaseMaxSize               decimal.Decimal `json:"base_max_size"`
	BaseName                  string          `json:"base_name"`
	QuoteName                 string          `json:"quote_name"`
	Watched                   bool            `json:"watched"`
	IsDisabled                bool            `json:"is_disabled"`
	New                       bool            `json:"new"`
	Status                    ProductStatus   `json:"status"`
	CancelOnly                bool            `json:"cancel_only"`
	LimitOnly                 bool            `json:"limit_only"`
	PostOnly                  bool            `json:"post_only"`
	TradingDisabled           bool            `json:"trading_disabled"`
	AuctionMode               bool            `json:"auction_mode"`
	ProductType               ProductType     `json:"product_type"`
	QuoteCurrencyID           string          `json:"quote_currency_id"`
	BaseCurrencyID            string          `json:"base_currency_id"`
	BaseDisplaySymbol         string          `json:"base_display_symbol"`
	QuoteDisplaySymbol        string          `json:"quote_display_symbol"`
}

type ProductSnapshot struct {
	Products    []Product `json:"products"`
	NumProducts int       `json:"num_products"`
}

//go:generate requestgen -method GET -url "/api/v3/brokerage/products" -type GetProductsRequest -responseType .ProductSnapshot
type GetProductsRequest struct {
	client requestgen.AuthenticatedAPIClient

	limit       *int         `param:"limit"`
	offset      *int         `param:"offset"`
	productType *ProductType `param:"product_type" validValues:"SPOT,FUTURE"`
}

func (s *ProductService) NewGetProductsRequest() *GetProductsRequest {
	return &GetProductsRequest{client: s.client}
}
