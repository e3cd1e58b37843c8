package cbadv

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/Liftss/cbadv-go/pkg/websocket"
)

// ProductionWebsocketURL serves both market data and the user channel.
const ProductionWebsocketURL = "wss://advanced-trade-ws.coinbase.com"

//go:generate callbackgen -type Stream
type Stream struct {
	apiKey    string
	apiSecret string

	endpoint string

	mu            sync.Mutex
	client        *websocket.WebSocketClient
	cancel        context.CancelFunc
	subscriptions []*subscription

	// lastSequence is the per connection frame counter, -1 before the first
	// frame arrives
	seqMu        sync.Mutex
	lastSequence int64

	tickerCallbacks        []func(m *TickerMessage)
	level2Callbacks        []func(m *OrderBookMessage)
	marketTradesCallbacks  []func(m *MarketTradesMessage)
	candlesCallbacks       []func(m *CandlesMessage)
	heartbeatsCallbacks    []func(m *HeartbeatsMessage)
	statusCallbacks        []func(m *StatusMessage)
	subscriptionsCallbacks []func(m *SubscriptionsMessage)
	userOrderCallbacks     []func(o *UserOrder)

	connectCallbacks    []func()
	disconnectCallbacks []func()
	rawMessageCallbacks []func(raw []byte)
	errorCallbacks      []func(err error)
}

type subscription struct {
	Channel    Channel
	ProductIDs []string
}

func NewStream(key, secret string) *Stream {
	return &Stream{
		apiKey: key,
		// pragma: allowlist nextline secret
		apiSecret:    secret,
		endpoint:     ProductionWebsocketURL,
		lastSequence: -1,
	}
}

// SetEndpoint overrides the websocket endpoint. Call it before Connect.
func (s *Stream) SetEndpoint(url string) {
	s.endpoint = url
}

// Subscribe records a channel subscription. Subscriptions registered before
// Connect are written on every (re)connect; calling Subscribe on a live
// stream writes the subscribe message immediately.
func (s *Stream) Subscribe(channel Channel, productIDs ...string) {
	s.mu.Lock()
	sub := s.addSubscription(channel, productIDs)
	client := s.client
	s.mu.Unlock()

	if client != nil && client.IsConnected() {
		if err := s.writeSubscribe(client, sub); err != nil {
			log.WithError(err).Errorf("subscription error for %s", channel)
			s.EmitError(err)
		}
	}
}

// Unsubscribe removes the given product ids from a channel subscription, or
// the whole channel when no product id is given, and tells the server when
// the stream is live.
func (s *Stream) Unsubscribe(channel Channel, productIDs ...string) {
	s.mu.Lock()
	removed, ok := s.removeSubscription(channel, productIDs)
	client := s.client
	s.mu.Unlock()

	if !ok {
		return
	}
	if client != nil && client.IsConnected() {
		if err := s.writeUnsubscribe(client, channel, removed); err != nil {
			log.WithError(err).Errorf("unsubscription error for %s", channel)
			s.EmitError(err)
		}
	}
}

// addSubscription merges product ids into the channel entry. Caller holds mu.
func (s *Stream) addSubscription(channel Channel, productIDs []string) *subscription {
	for _, sub := range s.subscriptions {
		if sub.Channel != channel {
			continue
		}
		for _, id := range productIDs {
			if !contains(sub.ProductIDs, id) {
				sub.ProductIDs = append(sub.ProductIDs, id)
			}
		}
		return sub
	}

	sub := &subscription{
		Channel:    channel,
		ProductIDs: append([]string(nil), productIDs...),
	}
	s.subscriptions = append(s.subscriptions, sub)
	return sub
}

// removeSubscription reports the product ids actually removed and whether a
// matching subscription entry existed. Caller holds mu.
func (s *Stream) removeSubscription(channel Channel, productIDs []string) ([]string, bool) {
	for i, sub := range s.subscriptions {
		if sub.Channel != channel {
			continue
		}

		if len(productIDs) == 0 {
			s.subscriptions = append(s.subscriptions[:i], s.subscriptions[i+1:]...)
			return sub.ProductIDs, true
		}

		var kept, removed []string
		for _, id := range sub.ProductIDs {
			if contains(productIDs, id) {
				removed = append(removed, id)
			} else {
				kept = append(kept, id)
			}
		}
		sub.ProductIDs = kept
		if len(kept) == 0 {
			s.subscriptions = append(s.subscriptions[:i], s.subscriptions[i+1:]...)
		}
		return removed, len(removed) > 0
	}
	return nil, false
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Connect dials the endpoint, writes one subscribe message per channel and
// dispatches incoming frames to the registered callbacks. On connection loss
// the transport keeps redialing until Close, and every reconnect replays the
// recorded subscriptions.
func (s *Stream) Connect(basectx context.Context) error {
	s.mu.Lock()
	needAuth := false
	for _, sub := range s.subscriptions {
		if sub.Channel == UserChannel {
			needAuth = true
		}
	}
	s.mu.Unlock()

	if needAuth && (len(s.apiKey) == 0 || len(s.apiSecret) == 0) {
		return errors.New("user channel requires api key and api secret")
	}

	client := websocket.New(s.endpoint, nil)
	client.OnConnect(func(c websocket.Client) {
		// the server restarts the sequence counter with each connection
		s.clearSequenceNumber()
		s.writeSubscriptions(c)
		s.EmitConnect()
	})
	client.OnDisconnect(func(c websocket.Client) {
		s.clearSequenceNumber()
		s.EmitDisconnect()
	})

	ctx, cancel := context.WithCancel(basectx)
	s.mu.Lock()
	s.client = client
	s.cancel = cancel
	s.mu.Unlock()

	go s.dispatch(ctx, client)
	return client.Connect(ctx)
}

// Close stops the dispatch loop and shuts the connection down.
func (s *Stream) Close() error {
	s.mu.Lock()
	cancel := s.cancel
	client := s.client
	s.cancel = nil
	s.client = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if client == nil {
		return nil
	}
	return client.Close()
}

func (s *Stream) dispatch(ctx context.Context, client *websocket.WebSocketClient) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-client.Messages():
			if !ok {
				return
			}
			s.handleMessage(msg.Body)
		}
	}
}
