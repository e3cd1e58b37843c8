package cbadv

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liftss/cbadv-go/pkg/testing/httptesting"
)

func TestCancelOrdersRequest_emptyBatch(t *testing.T) {
	client := NewClient("key", "secret", 0)

	req := client.OrderService.NewCancelOrdersRequest()
	_, err := req.GetParameters()
	assert.EqualError(t, err, "order_ids is required, empty string given")
}

func TestCancelOrdersRequest_Do(t *testing.T) {
	raw := `{
		"results": [
			{"success": true, "failure_reason": "UNKNOWN_CANCEL_FAILURE_REASON", "order_id": "aaa"},
			{"success": false, "failure_reason": "UNKNOWN_CANCEL_ORDER", "order_id": "bbb"}
		]
	}`

	var saved *http.Request
	client := NewClient("key", "secret", 0)
	client.HttpClient = httptesting.HttpClientSaver(&saved, raw)

	req := client.OrderService.NewCancelOrdersRequest()
	req.OrderIDs([]string{"aaa", "bbb"})

	response, err := req.Do(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "POST", saved.Method)
	assert.Equal(t, "/api/v3/brokerage/orders/batch_cancel", saved.URL.Path)

	body, err := io.ReadAll(saved.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"order_ids": ["aaa", "bbb"]}`, string(body))

	// results mirror the submitted order, one failed cancel does not fail the batch
	require.Len(t, response.Results, 2)
	assert.True(t, response.Results[0].Success)
	assert.Equal(t, "aaa", response.Results[0].OrderID)
	assert.False(t, response.Results[1].Success)
	assert.Equal(t, "UNKNOWN_CANCEL_ORDER", response.Results[1].FailureReason)
}
