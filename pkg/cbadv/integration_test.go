package cbadv

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/Liftss/cbadv-go/pkg/cbadv/api/v1"
	"github.com/Liftss/cbadv-go/pkg/config"
	"github.com/Liftss/cbadv-go/pkg/testutil"
)

func getClientOrSkip(t *testing.T) *Client {
	if b, _ := strconv.ParseBool(os.Getenv("CI")); b {
		t.Skip("skip test for CI")
	}
	if _, _, ok := testutil.IntegrationTestConfigured(t, "CBADV"); !ok {
		t.SkipNow()
		return nil
	}

	cfg, err := config.Load("")
	require.NoError(t, err)

	client, err := NewFromConfig(cfg)
	require.NoError(t, err)
	return client
}

func Test_Live_QueryAccounts(t *testing.T) {
	client := getClientOrSkip(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	accounts, err := client.QueryAccountsAll(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, accounts)
}

func Test_Live_QueryProducts(t *testing.T) {
	client := getClientOrSkip(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	products, err := client.QueryProducts(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, products)

	product, err := client.QueryProduct(ctx, "BTC-USD")
	assert.NoError(t, err)
	assert.True(t, product.QuoteIncrement.IsPositive())
}

func Test_Live_QueryCandles(t *testing.T) {
	client := getClientOrSkip(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	endTime := time.Now()
	startTime := endTime.Add(-time.Hour)
	candles, err := client.QueryCandles(ctx, "BTC-USD", api.GranularityFiveMinute, startTime, endTime)
	assert.NoError(t, err)
	assert.NotEmpty(t, candles)
}

func Test_Live_QueryMarketTrades(t *testing.T) {
	client := getClientOrSkip(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	snapshot, err := client.QueryMarketTrades(ctx, "BTC-USD", 10)
	assert.NoError(t, err)
	assert.NotEmpty(t, snapshot.Trades)
}

func Test_Live_QueryFeeSummary(t *testing.T) {
	client := getClientOrSkip(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	summary, err := client.QueryFeeSummary(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, summary)
}

func Test_Live_QueryServerTime(t *testing.T) {
	client := getClientOrSkip(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	serverTime, err := client.QueryServerTime(ctx)
	assert.NoError(t, err)
	assert.False(t, serverTime.Iso.IsZero())
}
