package cbadv

import (
	"time"

	"github.com/shopspring/decimal"

	api "github.com/Liftss/cbadv-go/pkg/cbadv/api/v1"
)

// messageBaseType is the envelope shared by every data frame. SequenceNum is
// a single counter covering all channels on the connection and restarts from
// zero after a reconnect.
type messageBaseType struct {
	Channel     Channel   `json:"channel"`
	ClientID    string    `json:"client_id"`
	Timestamp   time.Time `json:"timestamp"`
	SequenceNum int64     `json:"sequence_num"`
}

func (m *messageBaseType) header() *messageBaseType { return m }

type enveloped interface {
	header() *messageBaseType
}

// ErrorMessage is a connection level failure frame. It carries no channel and
// no sequence number.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

// SubscriptionsMessage confirms the active subscriptions after each
// subscribe or unsubscribe request.
type SubscriptionsMessage struct {
	messageBaseType
	Events []SubscriptionsEvent `json:"events"`
}

type SubscriptionsEvent struct {
	Subscriptions map[string][]string `json:"subscriptions"`
}

type HeartbeatsMessage struct {
	messageBaseType
	Events []HeartbeatsEvent `json:"events"`
}

type HeartbeatsEvent struct {
	// CurrentTime is not RFC3339, keep the raw string
	CurrentTime      string `json:"current_time"`
	HeartbeatCounter uint64 `json:"heartbeat_counter,string"`
}

type StatusMessage struct {
	messageBaseType
	Events []StatusEvent `json:"events"`
}

type StatusEvent struct {
	Type     string          `json:"type"`
	Products []ProductStatus `json:"products"`
}

type ProductStatus struct {
	ProductType    api.ProductType `json:"product_type"`
	ID             string          `json:"id"`
	BaseCurrency   string          `json:"base_currency"`
	QuoteCurrency  string          `json:"quote_currency"`
	BaseIncrement  decimal.Decimal `json:"base_increment"`
	QuoteIncrement decimal.Decimal `json:"quote_increment"`
	DisplayName    string          `json:"display_name"`
	Status         string          `json:"status"`
	StatusMessage  string          `json:"status_message"`
	MinMarketFunds decimal.Decimal `json:"min_market_funds"`
}

// TickerMessage carries both ticker and ticker_batch frames; the two channels
// share one payload shape and differ only in cadence.
type TickerMessage struct {
	messageBaseType
	Events []TickerEvent `json:"events"`
}

type TickerEvent struct {
	Type    string   `json:"type"`
	Tickers []Ticker `json:"tickers"`
}

type Ticker struct {
	Type               string          `json:"type"`
	ProductID          string          `json:"product_id"`
	Price              decimal.Decimal `json:"price"`
	Volume24H          decimal.Decimal `json:"volume_24_h"`
	Low24H             decimal.Decimal `json:"low_24_h"`
	High24H            decimal.Decimal `json:"high_24_h"`
	Low52W             decimal.Decimal `json:"low_52_w"`
	High52W            decimal.Decimal `json:"high_52_w"`
	PricePercentChg24H decimal.Decimal `json:"price_percent_chg_24_h"`
}

// OrderBookMessage carries level2 book data. The frames arrive under the
// l2_data channel even though the subscription is made to level2.
type OrderBookMessage struct {
	messageBaseType
	Events []OrderBookEvent `json:"events"`
}

type OrderBookEvent struct {
	// Type is snapshot for the initial book image, update afterwards
	Type      string           `json:"type"`
	ProductID string           `json:"product_id"`
	Updates   []OrderBookLevel `json:"updates"`
}

type OrderBookLevel struct {
	// Side is bid or offer
	Side        string          `json:"side"`
	EventTime   time.Time       `json:"event_time"`
	PriceLevel  decimal.Decimal `json:"price_level"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
}

type MarketTradesMessage struct {
	messageBaseType
	Events []MarketTradesEvent `json:"events"`
}

type MarketTradesEvent struct {
	Type   string            `json:"type"`
	Trades []api.MarketTrade `json:"trades"`
}

type CandlesMessage struct {
	messageBaseType
	Events []CandlesEvent `json:"events"`
}

type CandlesEvent struct {
	Type    string         `json:"type"`
	Candles []StreamCandle `json:"candles"`
}

// StreamCandle is a REST candle plus the product it belongs to, since candle
// frames are not scoped to a single product.
type StreamCandle struct {
	api.Candle
	ProductID string `json:"product_id"`
}

type UserMessage struct {
	messageBaseType
	Events []UserEvent `json:"events"`
}

type UserEvent struct {
	Type   string      `json:"type"`
	Orders []UserOrder `json:"orders"`
}

type UserOrder struct {
	OrderID            string          `json:"order_id"`
	ClientOrderID      string          `json:"client_order_id"`
	CumulativeQuantity decimal.Decimal `json:"cumulative_quantity"`
	LeavesQuantity     decimal.Decimal `json:"leaves_quantity"`
	AvgPrice           decimal.Decimal `json:"avg_price"`
	TotalFees          decimal.Decimal `json:"total_fees"`
	Status             api.OrderStatus `json:"status"`
	ProductID          string          `json:"product_id"`
	CreationTime       time.Time       `json:"creation_time"`
	OrderSide          api.SideType    `json:"order_side"`
	// OrderType is mixed case on this channel, e.g. "Limit"
	OrderType string `json:"order_type"`
}
