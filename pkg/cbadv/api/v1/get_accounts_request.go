package cbadv

import (
	"time"

	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

type Balance struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

type Account struct {
	UUID             string     `json:"uuid"`
	Name             string     `json:"name"`
	Currency         string     `json:"currency"`
	AvailableBalance Balance    `json:"available_balance"`
	Default          bool       `json:"default"`
	Active           bool       `json:"active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at"`
	Type             string     `json:"type"`
	Ready            bool       `json:"ready"`
	Hold             Balance    `json:"hold"`
}

// AccountSnapshot is one page of the account listing. Cursor points at the
// next page and is passed back verbatim by the caller.
type AccountSnapshot struct {
	Accounts []Account `json:"accounts"`
	HasNext  bool      `json:"has_next"`
	Cursor   string    `json:"cursor"`
	Size     int       `json:"size"`
}

//go:generate requestgen -method GET -url "/api/v3/brokerage/accounts" -type GetAccountsRequest -responseType .AccountSnapshot
type GetAccountsRequest struct {
	client requestgen.AuthenticatedAPIClient

	limit  *int    `param:"limit"`
	cursor *string `param:"cursor"`
}

func (s *AccountService) NewGetAccountsRequest() *GetAccountsRequest {
	return &GetAccountsRequest{client: s.client}
}
