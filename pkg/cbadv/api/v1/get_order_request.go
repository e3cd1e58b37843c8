package cbadv

import (
	"github.com/c9s/requestgen"
)

type SingleOrderResponse struct {
	Order Order `json:"order"`
}

//go:generate requestgen -method GET -url "/api/v3/brokerage/orders/historical/:order_id" -type GetOrderRequest -responseType .SingleOrderResponse
type GetOrderRequest struct {
	client requestgen.AuthenticatedAPIClient

	// orderID is the exchange-assigned ID, not the client order ID.
	orderID string `param:"order_id,slug,required"`
}

func (s *OrderService) NewGetOrderRequest() *GetOrderRequest {
	return &GetOrderRequest{client: s.client}
}
