package cbadv

import (
	"github.com/c9s/requestgen"
)

type SingleAccountResponse struct {
	Account Account `json:"account"`
}

//go:generate requestgen -method GET -url "/api/v3/brokerage/accounts/:account_uuid" -type GetAccountRequest -responseType .SingleAccountResponse
type GetAccountRequest struct {
	client requestgen.AuthenticatedAPIClient

	accountUUID string `param:"account_uuid,slug,required"`
}

func (s *AccountService) NewGetAccountRequest() *GetAccountRequest {
	return &GetAccountRequest{client: s.client}
}
