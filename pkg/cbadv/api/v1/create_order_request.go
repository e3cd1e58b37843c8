package cbadv

import (
	"time"

	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

// MarketIOC fills immediately at the best available price. Exactly one of
// QuoteSize or BaseSize must be set: quote size for BUY, base size for SELL.
type MarketIOC struct {
	QuoteSize *decimal.Decimal `json:"quote_size,omitempty"`
	BaseSize  *decimal.Decimal `json:"base_size,omitempty"`
}

type LimitGTC struct {
	BaseSize   decimal.Decimal `json:"base_size"`
	LimitPrice decimal.Decimal `json:"limit_price"`
	PostOnly   bool            `json:"post_only"`
}

type LimitGTD struct {
	BaseSize   decimal.Decimal `json:"base_size"`
	LimitPrice decimal.Decimal `json:"limit_price"`
	EndTime    time.Time       `json:"end_time"`
	PostOnly   bool            `json:"post_only"`
}

type StopLimitGTC struct {
	BaseSize      decimal.Decimal `json:"base_size"`
	LimitPrice    decimal.Decimal `json:"limit_price"`
	StopPrice     decimal.Decimal `json:"stop_price"`
	StopDirection StopDirection   `json:"stop_direction"`
}

type StopLimitGTD struct {
	BaseSize      decimal.Decimal `json:"base_size"`
	LimitPrice    decimal.Decimal `json:"limit_price"`
	StopPrice     decimal.Decimal `json:"stop_price"`
	EndTime       time.Time       `json:"end_time"`
	StopDirection StopDirection   `json:"stop_direction"`
}

// OrderConfiguration selects the execution mode of an order.
// Exactly one leaf must be non-nil.
type OrderConfiguration struct {
	MarketIOC    *MarketIOC    `json:"market_market_ioc,omitempty"`
	LimitGTC     *LimitGTC     `json:"limit_limit_gtc,omitempty"`
	LimitGTD     *LimitGTD     `json:"limit_limit_gtd,omitempty"`
	StopLimitGTC *StopLimitGTC `json:"stop_limit_stop_limit_gtc,omitempty"`
	StopLimitGTD *StopLimitGTD `json:"stop_limit_stop_limit_gtd,omitempty"`
}

type SuccessResponse struct {
	OrderID       string   `json:"order_id"`
	ProductID     string   `json:"product_id"`
	Side          SideType `json:"side"`
	ClientOrderID string   `json:"client_order_id"`
}

type OrderErrorResponse struct {
	Error                 string `json:"error"`
	Message               string `json:"message"`
	ErrorDetails          string `json:"error_details"`
	PreviewFailureReason  string `json:"preview_failure_reason"`
	NewOrderFailureReason string `json:"new_order_failure_reason"`
}

// CreateOrderResponse reports acceptance with HTTP 200 even when the order is
// rejected; check Success and ErrorResponse.
type CreateOrderResponse struct {
	Success            bool                `json:"success"`
	FailureReason      string              `json:"failure_reason,omitempty"`
	OrderID            string              `json:"order_id,omitempty"`
	SuccessResponse    *SuccessResponse    `json:"success_response,omitempty"`
	ErrorResponse      *OrderErrorResponse `json:"error_response,omitempty"`
	OrderConfiguration *OrderConfiguration `json:"order_configuration,omitempty"`
}

//go:generate requestgen -method POST -url "/api/v3/brokerage/orders" -type CreateOrderRequest -responseType .CreateOrderResponse
type CreateOrderRequest struct {
	client requestgen.AuthenticatedAPIClient

	// clientOrderID is a unique caller-chosen ID, the idempotency key of the
	// order. Resubmitting the same ID never creates a second order.
	clientOrderID string `param:"client_order_id,required"`

	productID string `param:"product_id,required"`

	side SideType `param:"side,required" validValues:"BUY,SELL"`

	orderConfiguration OrderConfiguration `param:"order_configuration,required"`
}

func (s *OrderService) NewCreateOrderRequest() *CreateOrderRequest {
	return &CreateOrderRequest{client: s.client}
}
