package websocket

import (
	"context"
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

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func waitForMessage(t *testing.T, c *WebSocketClient) Message {
	t.Helper()
	select {
	case msg := <-c.Messages():
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for message")
	}
	return Message{}
}

func TestWebSocketClient_ConnectAndReceive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for _, body := range []string{"one", "two", "three"} {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(body)); err != nil {
				return
			}
		}

		// hold the connection open until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	client := New(wsURL(server), nil)
	err := client.Connect(context.Background())
	require.NoError(t, err)
	defer client.Close()

	assert.True(t, client.IsConnected())

	for _, expected := range []string{"one", "two", "three"} {
		msg := waitForMessage(t, client)
		assert.Equal(t, websocket.TextMessage, msg.Type)
		assert.Equal(t, expected, string(msg.Body))
	}
}

func TestWebSocketClient_WriteJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// echo frames back to the client
		for {
			msgType, body, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(msgType, body); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	client := New(wsURL(server), nil)
	err := client.Connect(context.Background())
	require.NoError(t, err)
	defer client.Close()

	err = client.WriteJSON(map[string]string{"type": "subscribe"})
	require.NoError(t, err)

	msg := waitForMessage(t, client)
	assert.Contains(t, string(msg.Body), `"type":"subscribe"`)
}

func TestWebSocketClient_ReconnectAfterServerDrop(t *testing.T) {
	var connCount int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		n := atomic.AddInt64(&connCount, 1)
		if n == 1 {
			// drop the first connection right after greeting
			_ = conn.WriteMessage(websocket.TextMessage, []byte("first"))
			conn.Close()
			return
		}

		defer conn.Close()
		if err := conn.WriteMessage(websocket.TextMessage, []byte("second")); err != nil {
			return
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	client := New(wsURL(server), nil)
	err := client.Connect(context.Background())
	require.NoError(t, err)
	defer client.Close()

	msg := waitForMessage(t, client)
	assert.Equal(t, "first", string(msg.Body))

	// the listen loop should redial and resume the message sequence
	msg = waitForMessage(t, client)
	assert.Equal(t, "second", string(msg.Body))

	assert.GreaterOrEqual(t, atomic.LoadInt64(&connCount), int64(2))
}

func TestWebSocketClient_CloseBeforeConnect(t *testing.T) {
	client := New("ws://127.0.0.1:0", nil)
	assert.NoError(t, client.Close())
}
