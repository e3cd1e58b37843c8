package cbadv

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{}

func testWsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

type subFrame struct {
	Type       string   `json:"type"`
	Channel    string   `json:"channel"`
	ProductIDs []string `json:"product_ids"`
	APIKey     string   `json:"api_key"`
	Timestamp  string   `json:"timestamp"`
	Signature  string   `json:"signature"`
}

func TestStream_SubscribeAndReceive(t *testing.T) {
	tickerFrame := `{
		"channel": "ticker",
		"client_id": "",
		"timestamp": "2023-02-09T20:30:37.167359596Z",
		"sequence_num": 0,
		"events": [
			{"type": "snapshot", "tickers": [{"type": "ticker", "product_id": "BTC-USD", "price": "21932.98"}]}
		]
	}`

	received := make(chan subFrame, 4)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			_, body, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var frame subFrame
			if err := json.Unmarshal(body, &frame); err != nil {
				continue
			}
			received <- frame

			if frame.Channel == "ticker" {
				if err := conn.WriteMessage(websocket.TextMessage, []byte(tickerFrame)); err != nil {
					return
				}
			}
		}
	}))
	defer server.Close()

	stream := NewStream("mykey", "secret123")
	stream.SetEndpoint(testWsURL(server))
	stream.Subscribe(TickerChannel, "BTC-USD")

	tickers := make(chan *TickerMessage, 1)
	stream.OnTicker(func(m *TickerMessage) {
		select {
		case tickers <- m:
		default:
		}
	})

	err := stream.Connect(context.Background())
	require.NoError(t, err)
	defer stream.Close()

	select {
	case frame := <-received:
		assert.Equal(t, "subscribe", frame.Type)
		assert.Equal(t, "ticker", frame.Channel)
		assert.Equal(t, []string{"BTC-USD"}, frame.ProductIDs)
		assert.Equal(t, "mykey", frame.APIKey)
		assert.NotEmpty(t, frame.Timestamp)
		assert.NotEmpty(t, frame.Signature)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for subscribe message")
	}

	select {
	case m := <-tickers:
		assert.Equal(t, "BTC-USD", m.Events[0].Tickers[0].ProductID)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for ticker")
	}

	// subscribing on a live stream writes the message immediately
	stream.Subscribe(StatusChannel, "BTC-USD")
	select {
	case frame := <-received:
		assert.Equal(t, "subscribe", frame.Type)
		assert.Equal(t, "status", frame.Channel)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for status subscribe message")
	}
}

func TestStream_ResubscribeOnReconnect(t *testing.T) {
	heartbeatFrame := `{
		"channel": "heartbeats",
		"client_id": "",
		"timestamp": "2023-06-23T20:31:56.121961769Z",
		"sequence_num": 0,
		"events": [{"current_time": "2023-06-23 20:31:56 +0000 UTC", "heartbeat_counter": "1"}]
	}`

	var connCount int64
	subscribes := make(chan string, 4)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		n := atomic.AddInt64(&connCount, 1)

		_, body, err := conn.ReadMessage()
		if err != nil {
			conn.Close()
			return
		}
		subscribes <- string(body)

		if n == 1 {
			// drop the first connection right after the subscribe
			conn.Close()
			return
		}

		defer conn.Close()
		if err := conn.WriteMessage(websocket.TextMessage, []byte(heartbeatFrame)); err != nil {
			return
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	stream := NewStream("", "")
	stream.SetEndpoint(testWsURL(server))
	stream.Subscribe(HeartbeatsChannel)

	heartbeats := make(chan *HeartbeatsMessage, 1)
	stream.OnHeartbeats(func(m *HeartbeatsMessage) {
		select {
		case heartbeats <- m:
		default:
		}
	})

	require.NoError(t, stream.Connect(context.Background()))
	defer stream.Close()

	// the recorded subscription is replayed on every connection
	for i := 0; i < 2; i++ {
		select {
		case raw := <-subscribes:
			assert.Contains(t, raw, `"channel":"heartbeats"`)
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for subscribe message")
		}
	}

	// the fresh connection restarts at sequence zero and still goes through
	select {
	case m := <-heartbeats:
		assert.Equal(t, uint64(1), m.Events[0].HeartbeatCounter)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for heartbeat")
	}

	assert.GreaterOrEqual(t, atomic.LoadInt64(&connCount), int64(2))
}

func TestStream_UserChannelRequiresCredentials(t *testing.T) {
	stream := NewStream("", "")
	stream.Subscribe(UserChannel, "BTC-USD")

	err := stream.Connect(context.Background())
	assert.EqualError(t, err, "user channel requires api key and api secret")
}

func TestStream_SubscriptionBookkeeping(t *testing.T) {
	stream := NewStream("", "")

	stream.Subscribe(TickerChannel, "BTC-USD")
	stream.Subscribe(TickerChannel, "BTC-USD", "ETH-USD")
	stream.Subscribe(HeartbeatsChannel)

	require.Len(t, stream.subscriptions, 2)
	assert.Equal(t, []string{"BTC-USD", "ETH-USD"}, stream.subscriptions[0].ProductIDs)

	// removing one product keeps the channel alive
	stream.Unsubscribe(TickerChannel, "BTC-USD")
	require.Len(t, stream.subscriptions, 2)
	assert.Equal(t, []string{"ETH-USD"}, stream.subscriptions[0].ProductIDs)

	// removing the last product drops the channel entry
	stream.Unsubscribe(TickerChannel, "ETH-USD")
	require.Len(t, stream.subscriptions, 1)
	assert.Equal(t, HeartbeatsChannel, stream.subscriptions[0].Channel)

	// channels that were never subscribed are ignored
	stream.Unsubscribe(StatusChannel)
	assert.Len(t, stream.subscriptions, 1)

	// no product ids drops the whole channel
	stream.Unsubscribe(HeartbeatsChannel)
	assert.Empty(t, stream.subscriptions)
}

func TestStream_CloseBeforeConnect(t *testing.T) {
	stream := NewStream("", "")
	assert.NoError(t, stream.Close())
}
