package cbadv

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liftss/cbadv-go/pkg/testing/httptesting"
)

func TestGetAccountsRequest(t *testing.T) {
	raw := `{
		"accounts": [
			{
				"uuid": "8bfc20d7-f7c6-4422-bf07-8243ca4169fe",
				"name": "BTC Wallet",
				"currency": "BTC",
				"available_balance": {"value": "1.23", "currency": "BTC"},
				"default": false,
				"active": true,
				"created_at": "2021-05-31T09:59:59Z",
				"updated_at": "2021-05-31T09:59:59Z",
				"type": "ACCOUNT_TYPE_CRYPTO",
				"ready": true,
				"hold": {"value": "0.5", "currency": "BTC"}
			}
		],
		"has_next": true,
		"cursor": "789100",
		"size": 1
	}`

	var saved *http.Request
	client := NewClient("key", "secret", 0)
	client.HttpClient = httptesting.HttpClientSaver(&saved, raw)

	req := client.AccountService.NewGetAccountsRequest()
	req.Limit(25).Cursor("aabbcc")

	snapshot, err := req.Do(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)

	// the opaque cursor goes back to the server untouched
	assert.Equal(t, "aabbcc", saved.URL.Query().Get("cursor"))
	assert.Equal(t, "25", saved.URL.Query().Get("limit"))

	assert.True(t, snapshot.HasNext)
	assert.Equal(t, "789100", snapshot.Cursor)
	assert.Equal(t, 1, snapshot.Size)
	require.Len(t, snapshot.Accounts, 1)

	account := snapshot.Accounts[0]
	assert.Equal(t, "8bfc20d7-f7c6-4422-bf07-8243ca4169fe", account.UUID)
	assert.Equal(t, "BTC", account.Currency)
	assert.True(t, account.AvailableBalance.Value.Equal(decimal.RequireFromString("1.23")))
	assert.True(t, account.Hold.Value.Equal(decimal.RequireFromString("0.5")))
	assert.Nil(t, account.DeletedAt)
}

func TestGetAccountRequest(t *testing.T) {
	raw := `{
		"account": {
			"uuid": "8bfc20d7-f7c6-4422-bf07-8243ca4169fe",
			"name": "BTC Wallet",
			"currency": "BTC",
			"available_balance": {"value": "1.23", "currency": "BTC"},
			"active": true,
			"created_at": "2021-05-31T09:59:59Z",
			"updated_at": "2021-05-31T09:59:59Z",
			"type": "ACCOUNT_TYPE_CRYPTO",
			"ready": true,
			"hold": {"value": "0", "currency": "BTC"}
		}
	}`

	var saved *http.Request
	client := NewClient("key", "secret", 0)
	client.HttpClient = httptesting.HttpClientSaver(&saved, raw)

	req := client.AccountService.NewGetAccountRequest()
	req.AccountUUID("8bfc20d7-f7c6-4422-bf07-8243ca4169fe")

	response, err := req.Do(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)

	// the slug lands in the request path
	assert.Equal(t, "/api/v3/brokerage/accounts/8bfc20d7-f7c6-4422-bf07-8243ca4169fe", saved.URL.Path)
	assert.Equal(t, "BTC Wallet", response.Account.Name)
}

func TestGetAccountRequest_missingUUID(t *testing.T) {
	client := NewClient("key", "secret", 0)

	req := client.AccountService.NewGetAccountRequest()
	_, err := req.GetSlugParameters()
	assert.EqualError(t, err, "account_uuid is required, empty string given")
}
