package cbadv

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"

	"github.com/Liftss/cbadv-go/pkg/version"
)

const defaultHTTPTimeout = time.Second * 15

// ProductionAPIURL is the REST endpoint of the exchange.
const ProductionAPIURL = "https://api.coinbase.com"

const UserAgent = "cbadv/" + version.Version

type RestAPIClient struct {
	requestgen.BaseAPIClient

	key, secret string

	AccountService *AccountService
	ProductService *ProductService
	OrderService   *OrderService
	FeeService     *FeeService
}

type AccountService struct {
	client *RestAPIClient
}

type ProductService struct {
	client *RestAPIClient
}

type OrderService struct {
	client *RestAPIClient
}

type FeeService struct {
	client *RestAPIClient
}

func NewClient(key, secret string, timeout time.Duration) *RestAPIClient {
	u, err := url.Parse(ProductionAPIURL)
	if err != nil {
		panic(err)
	}

	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}

	client := &RestAPIClient{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL: u,
			HttpClient: &http.Client{
				Timeout: timeout,
			},
		},
		key: key,
		// pragma: allowlist nextline secret
		secret: secret,
	}

	client.AccountService = &AccountService{client: client}
	client.ProductService = &ProductService{client: client}
	client.OrderService = &OrderService{client: client}
	client.FeeService = &FeeService{client: client}
	return client
}

// NewAuthenticatedRequest creates a new http request for authenticated routes.
func (c *RestAPIClient) NewAuthenticatedRequest(ctx context.Context, method, refURL string, params url.Values, payload interface{}) (*http.Request, error) {
	if len(c.key) == 0 {
		return nil, errors.New("empty api key")
	}

	if len(c.secret) == 0 {
		return nil, errors.New("empty api secret")
	}

	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	if params != nil {
		rel.RawQuery = params.Encode()
	}

	pathURL := c.BaseURL.ResolveReference(rel)
	path := pathURL.Path
	if rel.RawQuery != "" {
		path += "?" + rel.RawQuery
	}

	body, err := castPayload(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, pathURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	c.attachAuthHeaders(req, method, path, body)
	return req, nil
}

func (c *RestAPIClient) attachAuthHeaders(req *http.Request, method string, path string, body []byte) {
	// the signature window is tight, always take a fresh wall-clock timestamp
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := sign(c.secret, timestamp, method, path, string(body))

	req.Header.Add("CB-ACCESS-KEY", c.key)
	req.Header.Add("CB-ACCESS-SIGN", signature)
	req.Header.Add("CB-ACCESS-TIMESTAMP", timestamp)
}

// sign computes the lowercase hex encoded HMAC-SHA256 signature over the
// prehash string: the decimal timestamp, the uppercase method, the request
// path including the query string, and the raw body.
func sign(secret, timestamp, method, path, body string) string {
	var sig = hmac.New(sha256.New, []byte(secret))
	_, err := sig.Write([]byte(timestamp + strings.ToUpper(method) + path + body))
	if err != nil {
		return ""
	}

	return hex.EncodeToString(sig.Sum(nil))
}

func castPayload(payload interface{}) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}

	switch v := payload.(type) {
	case string:
		return []byte(v), nil

	case []byte:
		return v, nil

	}
	return json.Marshal(payload)
}

var _ requestgen.AuthenticatedAPIClient = &RestAPIClient{}
