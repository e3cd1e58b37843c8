package cbadv

import (
	"github.com/c9s/requestgen"
)

type CancelOrderResult struct {
	Success       bool   `json:"success"`
	FailureReason string `json:"failure_reason"`
	OrderID       string `json:"order_id"`
}

// CancelOrdersResponse carries one result per submitted order ID, in the
// same order. A failed cancel does not fail the batch.
type CancelOrdersResponse struct {
	Results []CancelOrderResult `json:"results"`
}

//go:generate requestgen -method POST -url "/api/v3/brokerage/orders/batch_cancel" -type CancelOrdersRequest -responseType .CancelOrdersResponse
type CancelOrdersRequest struct {
	client requestgen.AuthenticatedAPIClient

	orderIDs []string `param:"order_ids,required"`
}

func (s *OrderService) NewCancelOrdersRequest() *CancelOrdersRequest {
	return &CancelOrdersRequest{client: s.client}
}
