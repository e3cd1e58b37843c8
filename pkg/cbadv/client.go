package cbadv

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	api "github.com/Liftss/cbadv-go/pkg/cbadv/api/v1"
	"github.com/Liftss/cbadv-go/pkg/config"
)

const (
	ID              = "cbadv"
	PaginationLimit = 100
)

var log = logrus.WithField("exchange", ID)

// Credentials identifies an API key pair. Secret holds the raw secret bytes,
// already decoded when the pair comes from the config loader.
type Credentials struct {
	Key    string
	Secret string
}

// Client is the convenience tier over the typed API client: it owns the
// credentials, translates parameters, walks cursors and builds streams.
type Client struct {
	credentials Credentials

	apiClient *api.RestAPIClient

	wsURL string
}

func New(key, secret string) *Client {
	return &Client{
		credentials: Credentials{
			Key: key,
			// pragma: allowlist nextline secret
			Secret: secret,
		},
		apiClient: api.NewClient(key, secret, 0),
		wsURL:     ProductionWebsocketURL,
	}
}

// NewFromConfig builds a client from a loaded configuration, applying the
// endpoint and timeout overrides.
func NewFromConfig(cfg *config.Config) (*Client, error) {
	client := New(cfg.Key, cfg.Secret)
	client.apiClient = api.NewClient(cfg.Key, cfg.Secret, cfg.Timeout.Duration())

	if len(cfg.BaseURL) > 0 {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid api base url %q", cfg.BaseURL)
		}
		client.apiClient.BaseURL = u
	}
	if len(cfg.WebsocketURL) > 0 {
		client.wsURL = cfg.WebsocketURL
	}
	return client, nil
}

// RestAPIClient exposes the underlying typed API client for requests the
// convenience methods do not cover.
func (c *Client) RestAPIClient() *api.RestAPIClient {
	return c.apiClient
}

// NewStream builds a stream sharing the client's credentials and endpoint
// settings.
func (c *Client) NewStream() *Stream {
	stream := NewStream(c.credentials.Key, c.credentials.Secret)
	stream.SetEndpoint(c.wsURL)
	return stream
}

// QueryAccounts fetches one page of accounts. Pass the previous page's
// cursor to continue; an empty cursor starts from the beginning.
func (c *Client) QueryAccounts(ctx context.Context, limit int, cursor string) (*api.AccountSnapshot, error) {
	req := c.apiClient.AccountService.NewGetAccountsRequest()
	if limit > 0 {
		req.Limit(limit)
	}
	if len(cursor) > 0 {
		req.Cursor(cursor)
	}

	snapshot, err := req.Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get accounts")
	}
	return snapshot, nil
}

// QueryAccountsAll walks the account pages until has_next turns false.
func (c *Client) QueryAccountsAll(ctx context.Context) ([]api.Account, error) {
	req := c.apiClient.AccountService.NewGetAccountsRequest().Limit(PaginationLimit)
	snapshot, err := req.Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get accounts")
	}

	accounts := snapshot.Accounts
	for snapshot.HasNext {
		select {
		case <-ctx.Done():
			return accounts, ctx.Err()
		default:
			req.Cursor(snapshot.Cursor)
			snapshot, err = req.Do(ctx)
			if err != nil {
				return nil, errors.Wrap(err, "failed to get accounts while paginating")
			}
			accounts = append(accounts, snapshot.Accounts...)
		}
	}
	return accounts, nil
}

func (c *Client) QueryAccount(ctx context.Context, accountUUID string) (*api.Account, error) {
	res, err := c.apiClient.AccountService.NewGetAccountRequest().AccountUUID(accountUUID).Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get account %s", accountUUID)
	}
	return &res.Account, nil
}

// QueryAccountByCurrency walks the account pages until it finds the account
// holding the given currency code.
func (c *Client) QueryAccountByCurrency(ctx context.Context, currency string) (*api.Account, error) {
	req := c.apiClient.AccountService.NewGetAccountsRequest().Limit(PaginationLimit)
	for {
		snapshot, err := req.Do(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get accounts")
		}
		for i := range snapshot.Accounts {
			if snapshot.Accounts[i].Currency == currency {
				return &snapshot.Accounts[i], nil
			}
		}
		if !snapshot.HasNext {
			return nil, errors.Errorf("no account holds %s", currency)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			req.Cursor(snapshot.Cursor)
		}
	}
}

func (c *Client) QueryProducts(ctx context.Context) ([]api.Product, error) {
	snapshot, err := c.apiClient.ProductService.NewGetProductsRequest().Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get products")
	}
	return snapshot.Products, nil
}

func (c *Client) QueryProduct(ctx context.Context, productID string) (*api.Product, error) {
	product, err := c.apiClient.ProductService.NewGetProductRequest().ProductID(productID).Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get product %s", productID)
	}
	return product, nil
}

// QueryCandles fetches candles between start and end. The exchange serves at
// most 300 candles per request, so the window has to respect the chosen
// granularity; zero start or end leaves the bound open.
func (c *Client) QueryCandles(ctx context.Context, productID string, granularity api.Granularity, start, end time.Time) ([]api.Candle, error) {
	req := c.apiClient.ProductService.NewGetCandlesRequest().
		ProductID(productID).
		Granularity(granularity)
	if !start.IsZero() {
		req.Start(start)
	}
	if !end.IsZero() {
		req.End(end)
	}

	snapshot, err := req.Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get candles(%v): %s", granularity, productID)
	}
	return snapshot.Candles, nil
}

func (c *Client) QueryMarketTrades(ctx context.Context, productID string, limit int) (*api.MarketTradeSnapshot, error) {
	snapshot, err := c.apiClient.ProductService.NewGetMarketTradesRequest().
		ProductID(productID).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get market trades: %s", productID)
	}
	return snapshot, nil
}

// SubmitOrder validates the parameters and creates the order. A random
// client order id is generated when the caller leaves it empty. The exchange
// acknowledges rejected orders with HTTP 200; those come back as a non-nil
// response together with an error carrying the failure reason.
func (c *Client) SubmitOrder(ctx context.Context, params SubmitOrderParams) (*api.CreateOrderResponse, error) {
	orderConfig, err := params.OrderConfiguration()
	if err != nil {
		return nil, err
	}

	if len(params.ClientOrderID) == 0 {
		params.ClientOrderID = uuid.New().String()
	}

	req := c.apiClient.OrderService.NewCreateOrderRequest().
		ClientOrderID(params.ClientOrderID).
		ProductID(params.ProductID).
		Side(params.Side).
		OrderConfiguration(*orderConfig)

	timeNow := time.Now()
	res, err := req.Do(ctx)
	if err != nil {
		recordFailedOrderSubmissionMetrics(params, err)
		return nil, errors.Wrap(err, "failed to submit order")
	}

	if !res.Success {
		recordFailedOrderSubmissionMetrics(params, nil)
		if res.ErrorResponse != nil {
			return res, errors.Errorf("order rejected: %s: %s", res.FailureReason, res.ErrorResponse.Message)
		}
		return res, errors.Errorf("order rejected: %s", res.FailureReason)
	}

	recordSuccessOrderSubmissionMetrics(params, time.Since(timeNow))
	return res, nil
}

// CancelOrders cancels a batch of orders. The response carries one result
// per order id in submission order; a failed cancel does not fail the batch
// call.
func (c *Client) CancelOrders(ctx context.Context, orderIDs ...string) ([]api.CancelOrderResult, error) {
	req := c.apiClient.OrderService.NewCancelOrdersRequest().OrderIDs(orderIDs)

	timeNow := time.Now()
	res, err := req.Do(ctx)
	if err != nil {
		recordFailedOrderCancelMetrics(err)
		return nil, errors.Wrap(err, "failed to cancel orders")
	}

	recordSuccessOrderCancelMetrics(time.Since(timeNow))
	return res.Results, nil
}

func (c *Client) QueryOrder(ctx context.Context, orderID string) (*api.Order, error) {
	res, err := c.apiClient.OrderService.NewGetOrderRequest().OrderID(orderID).Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get order %s", orderID)
	}
	return &res.Order, nil
}

// QueryOrders walks the historical order pages matching the product and
// status filters. An empty product id matches all products; no statuses
// matches all statuses.
func (c *Client) QueryOrders(ctx context.Context, productID string, statuses ...api.OrderStatus) ([]api.Order, error) {
	req := c.apiClient.OrderService.NewGetOrdersRequest().Limit(PaginationLimit)
	if len(productID) > 0 {
		req.ProductID(productID)
	}
	if len(statuses) > 0 {
		req.OrderStatuses(statuses)
	}

	snapshot, err := req.Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get orders")
	}

	orders := snapshot.Orders
	for snapshot.HasNext {
		select {
		case <-ctx.Done():
			return orders, ctx.Err()
		default:
			req.Cursor(snapshot.Cursor)
			snapshot, err = req.Do(ctx)
			if err != nil {
				return nil, errors.Wrap(err, "failed to get orders while paginating")
			}
			orders = append(orders, snapshot.Orders...)
		}
	}
	return orders, nil
}

// QueryFills walks the fill pages. Empty order id and product id fetch all
// fills; the last page carries an empty cursor.
func (c *Client) QueryFills(ctx context.Context, orderID, productID string) ([]api.Fill, error) {
	req := c.apiClient.OrderService.NewGetFillsRequest().Limit(PaginationLimit)
	if len(orderID) > 0 {
		req.OrderID(orderID)
	}
	if len(productID) > 0 {
		req.ProductID(productID)
	}

	snapshot, err := req.Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get fills")
	}

	fills := snapshot.Fills
	for len(snapshot.Cursor) > 0 {
		select {
		case <-ctx.Done():
			return fills, ctx.Err()
		default:
			req.Cursor(snapshot.Cursor)
			snapshot, err = req.Do(ctx)
			if err != nil {
				return nil, errors.Wrap(err, "failed to get fills while paginating")
			}
			fills = append(fills, snapshot.Fills...)
		}
	}
	return fills, nil
}

func (c *Client) QueryFeeSummary(ctx context.Context) (*api.TransactionSummary, error) {
	summary, err := c.apiClient.FeeService.NewGetTransactionSummaryRequest().Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction summary")
	}
	return summary, nil
}

func (c *Client) QueryServerTime(ctx context.Context) (*api.ServerTime, error) {
	serverTime, err := c.apiClient.NewGetServerTimeRequest().Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get server time")
	}
	return serverTime, nil
}
