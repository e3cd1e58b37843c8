package cbadv

import (
	"github.com/c9s/requestgen"
)

//go:generate requestgen -method GET -url "/api/v3/brokerage/products/:product_id" -type GetProductRequest -responseType .Product
type GetProductRequest struct {
	client requestgen.AuthenticatedAPIClient

	productID string `param:"product_id,slug,required"`
}

func (s *ProductService) NewGetProductRequest() *GetProductRequest {
	return &GetProductRequest{client: s.client}
}
