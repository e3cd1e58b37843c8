package cbadv

import (
	"time"

	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID              string             `json:"order_id"`
	ProductID            string             `json:"product_id"`
	UserID               string             `json:"user_id"`
	OrderConfiguration   OrderConfiguration `json:"order_configuration"`
	Side                 SideType           `json:"side"`
	ClientOrderID        string             `json:"client_order_id"`
	Status               OrderStatus        `json:"status"`
	TimeInForce          TimeInForceType    `json:"time_in_force"`
	CreatedTime          time.Time          `json:"created_time"`
	CompletionPercentage decimal.Decimal    `json:"completion_percentage"`
	FilledSize           decimal.Decimal    `json:"filled_size"`
	AverageFilledPrice   decimal.Decimal    `json:"average_filled_price"`
	NumberOfFills        string             `json:"number_of_fills"`
	FilledValue          decimal.Decimal    `json:"filled_value"`
	PendingCancel        bool               `json:"pending_cancel"`
	SizeInQuote          bool               `json:"size_in_quote"`
	TotalFees            decimal.Decimal    `json:"total_fees"`
	SizeInclusiveOfFees  bool               `json:"size_inclusive_of_fees"`
	TotalValueAfterFees  decimal.Decimal    `json:"total_value_after_fees"`
	TriggerStatus        string             `json:"trigger_status"`
	OrderType            OrderType          `json:"order_type"`
	RejectReason         string             `json:"reject_reason"`
	Settled              bool               `json:"settled"`
	ProductType          ProductType        `json:"product_type"`
	RejectMessage        string             `json:"reject_message"`
	CancelMessage        string             `json:"cancel_message"`
}

// OrderSnapshot is one page of historical orders. Hand Cursor back unchanged
// on the next request while HasNext holds.
type OrderSnapshot struct {
	Orders  []Order `json:"orders"`
	HasNext bool    `json:"has_next"`
	Cursor  string  `json:"cursor"`
}

//go:generate requestgen -method GET -url "/api/v3/brokerage/orders/historical/batch" -type GetOrdersRequest -responseType .OrderSnapshot
type GetOrdersRequest struct {
	client requestgen.AuthenticatedAPIClient

	productID *string `param:"product_id"`

	// orderStatuses filters by status. OPEN cannot be combined with other
	// statuses.
	orderStatuses []OrderStatus `param:"order_status"`

	startDate *time.Time `param:"start_date" timeFormat:"RFC3339"`

	endDate *time.Time `param:"end_date" timeFormat:"RFC3339"`

	orderType *OrderType `param:"order_type" validValues:"MARKET,LIMIT,STOP,STOP_LIMIT"`

	orderSide *SideType `param:"order_side" validValues:"BUY,SELL"`

	limit int `param:"limit,required"`

	cursor *string `param:"cursor"`
}

func (s *OrderService) NewGetOrdersRequest() *GetOrdersRequest {
	return &GetOrdersRequest{client: s.client}
}
