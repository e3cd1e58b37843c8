package cbadv

import (
	"time"

	"github.com/c9s/requestgen"
)

type ServerTime struct {
	Iso          time.Time `json:"iso"`
	EpochSeconds Timestamp `json:"epochSeconds"`
	EpochMillis  string    `json:"epochMillis"`
}

// The time endpoint is public, no credentials needed. Useful for probing
// clock skew before signing anything.
//
//go:generate requestgen -method GET -url "/api/v3/brokerage/time" -type GetServerTimeRequest -responseType .ServerTime
type GetServerTimeRequest struct {
	client requestgen.APIClient
}

func (c *RestAPIClient) NewGetServerTimeRequest() *GetServerTimeRequest {
	return &GetServerTimeRequest{client: c}
}
