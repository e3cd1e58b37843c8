package websocket

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/Liftss/cbadv-go/pkg/sigchan"
	"github.com/Liftss/cbadv-go/pkg/util"
)

var log = logrus.WithField("component", "websocket")

// DefaultMessageBufferSize bounds the messages channel. When the buffer is
// full the reader goroutine blocks until the consumer catches up, so a slow
// consumer stalls the connection instead of growing memory. Messages are
// never dropped.
const DefaultMessageBufferSize = 128

const DefaultWriteTimeout = 30 * time.Second
const DefaultReadTimeout = 30 * time.Second

// DefaultMinBackoff is the initial redial interval. Consecutive failures
// back off exponentially up to DefaultMaxBackoff.
const DefaultMinBackoff = 2 * time.Second
const DefaultMaxBackoff = time.Minute

var ErrReconnectContextDone = errors.New("reconnect canceled due to context done")
var ErrReconnectFailed = errors.New("failed to reconnect")
var ErrConnectionLost = errors.New("connection lost")

// MaxReconnectRate spaces out redial attempts so that connection storms can
// not hammer the endpoint faster than the minimum backoff interval.
var MaxReconnectRate = rate.Limit(1 / DefaultMinBackoff.Seconds())

// Client is the surface a connection consumer sees. Connect callbacks
// receive it so they can write the initial subscribe payload.
type Client interface {
	WriteJSON(v interface{}) error
	WriteTextMessage(message []byte) error
	Messages() <-chan Message
	IsConnected() bool
	Reconnect()
}

// WebSocketClient connects to a websocket endpoint and feeds received frames
// into a bounded message channel. The underlying connection object is
// replaced with a fresh one whenever the connection is unexpectedly closed.
type WebSocketClient struct {
	// Url is the websocket connection location, starts with ws:// or wss://
	Url string

	conn *websocket.Conn

	// Dialer is used for creating the websocket connection
	Dialer *websocket.Dialer

	// requestHeader is passed to the Dial call. Credentials can be stored in
	// the request header for authentication.
	requestHeader http.Header

	messages chan Message

	readTimeout time.Duration

	writeTimeout time.Duration

	onConnect []func(c Client)

	onDisconnect []func(c Client)

	// cancel is mapped to the ctx given to Connect
	cancel func()

	readerClosed chan struct{}

	connected bool

	mu sync.Mutex

	reconnectC sigchan.Chan

	backoff *backoff.ExponentialBackOff

	// attempts counts consecutive failed redials, reset on success. Touched
	// only from the listen goroutine.
	attempts int

	limiter *rate.Limiter
}

var _ Client = (*WebSocketClient)(nil)

type Message struct {
	// Type is websocket.BinaryMessage or websocket.TextMessage
	Type int
	Body []byte
}

func (c *WebSocketClient) Messages() <-chan Message {
	return c.messages
}

func (c *WebSocketClient) SetReadTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readTimeout = timeout
}

func (c *WebSocketClient) SetWriteTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeTimeout = timeout
}

func (c *WebSocketClient) OnConnect(f func(c Client)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onConnect = append(c.onConnect, f)
}

func (c *WebSocketClient) OnDisconnect(f func(c Client)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDisconnect = append(c.onDisconnect, f)
}

func (c *WebSocketClient) WriteTextMessage(message []byte) error {
	return c.WriteMessage(websocket.TextMessage, message)
}

func (c *WebSocketClient) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return ErrConnectionLost
	}

	if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, data)
}

func (c *WebSocketClient) readMessage() error {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return ErrConnectionLost
	}
	timeout := c.readTimeout
	conn := c.conn
	c.mu.Unlock()

	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}
	msgType, message, err := conn.ReadMessage()
	if err != nil {
		return err
	}
	c.messages <- Message{msgType, message}
	return nil
}

// listen reads messages until ctx is done and redials the server whenever
// the reader returns an error. Always break the reader loop on error: the
// connection object is dead at that point.
func (c *WebSocketClient) listen(ctx context.Context) {
	// The lifetime of readerClosed and reconnectC is bound to one listen
	// loop. readerClosed informs Close() the loop has ended; reconnectC
	// centralizes redials in this loop.
	c.mu.Lock()
	c.readerClosed = make(chan struct{})
	c.reconnectC = sigchan.New(1)
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		close(c.readerClosed)
		c.reconnectC.Close()
		c.reconnectC = nil
		c.mu.Unlock()
	}()

	for {
		select {

		case <-ctx.Done():
			return

		case <-c.reconnectC:
			// either an i/o timeout from a network disconnection or an
			// explicit Reconnect call from outside
			c.SetDisconnected()
			if err := c.redial(ctx); err != nil {
				if err == ErrReconnectContextDone {
					log.Debugf("context canceled, stop reconnecting")
					return
				}
				log.WithError(err).Warnf("redial %q failed", c.Url)
				c.Reconnect()
			}

		default:
			if err := c.readMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure) {
					log.Warnf("unexpected close error: %v", err)
				}

				log.Warnf("failed to read message: %v", err)
				c.Reconnect()
			}
		}
	}
}

// Reconnect schedules a redial without blocking. At most one reconnect
// signal is pending at a time; extra signals are dropped.
func (c *WebSocketClient) Reconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reconnectC != nil {
		c.reconnectC.Emit()
	}
}

// Close shuts down the reader goroutine and the connection, then waits for
// the reader to finish.
func (c *WebSocketClient) Close() (err error) {
	c.mu.Lock()
	// leave the listen goroutine before closing the connection. The nil
	// check handles Close being called before Connect.
	if c.cancel != nil {
		c.cancel()
	}
	readerClosed := c.readerClosed
	c.mu.Unlock()
	c.SetDisconnected()

	if readerClosed != nil {
		<-readerClosed
	}
	return err
}

// redial creates a new connection from the existing dialer. One attempt per
// call; the caller loops by re-emitting the reconnect signal.
func (c *WebSocketClient) redial(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrReconnectContextDone
	default:
	}

	if s := util.ShouldDelay(c.limiter); s > 0 {
		log.Warnf("reconnecting too frequently, sleeping for %v", s)
		time.Sleep(s)
	}

	c.attempts++
	log.Warnf("reconnecting x %d to %q", c.attempts, c.Url)
	conn, resp, err := c.Dialer.DialContext(ctx, c.Url, c.requestHeader)
	if err != nil {
		dur := c.backoff.NextBackOff()
		log.Warnf("failed to dial %s: %v, response: %+v, waiting for %v", c.Url, err, resp, dur)
		time.Sleep(dur)
		return ErrReconnectFailed
	}

	log.Infof("reconnected to %q", c.Url)
	c.backoff.Reset()
	c.attempts = 0
	c.setConn(conn)
	c.setPingHandler(conn)

	return nil
}

// Conn returns the current active connection instance
func (c *WebSocketClient) Conn() (conn *websocket.Conn) {
	c.mu.Lock()
	conn = c.conn
	c.mu.Unlock()
	return conn
}

func (c *WebSocketClient) setConn(conn *websocket.Conn) {
	// disconnect the old connection before replacing it
	c.SetDisconnected()

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()
	for _, f := range c.onConnect {
		go f(c)
	}
}

func (c *WebSocketClient) setPingHandler(conn *websocket.Conn) {
	conn.SetPingHandler(func(message string) error {
		if err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second)); err != nil {
			return err
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		return conn.SetReadDeadline(time.Now().Add(c.readTimeout))
	})
}

func (c *WebSocketClient) SetDisconnected() {
	c.mu.Lock()
	closed := false
	if c.conn != nil {
		closed = true
		c.conn.Close()
	}
	c.connected = false
	c.conn = nil
	c.mu.Unlock()

	if closed {
		// only fire disconnect callbacks when a connection was actually open
		for _, f := range c.onDisconnect {
			go f(c)
		}
	}
}

func (c *WebSocketClient) IsConnected() (ret bool) {
	c.mu.Lock()
	ret = c.connected
	c.mu.Unlock()
	return ret
}

func (c *WebSocketClient) Connect(basectx context.Context) error {
	// maintain our own context so the connection can be shut down manually
	ctx, cancel := context.WithCancel(basectx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	conn, _, err := c.Dialer.DialContext(ctx, c.Url, c.requestHeader)
	if err == nil {
		c.setConn(conn)
		c.setPingHandler(conn)
	}

	// 1) if the connection is up, start listening for messages.
	// 2) if the connection is not ready, the listen loop keeps redialing.
	go c.listen(ctx)

	return err
}

func New(url string, requestHeader http.Header) *WebSocketClient {
	return NewWithDialer(url, websocket.DefaultDialer, requestHeader)
}

func NewWithDialer(url string, d *websocket.Dialer, requestHeader http.Header) *WebSocketClient {
	limiter, err := util.NewValidLimiter(MaxReconnectRate, 1)
	if err != nil {
		log.WithError(err).Panic("invalid reconnect rate limiter")
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = DefaultMinBackoff
	bo.MaxInterval = DefaultMaxBackoff
	// never give up, the listen loop decides when to stop
	bo.MaxElapsedTime = 0

	return &WebSocketClient{
		Url:           url,
		Dialer:        d,
		requestHeader: requestHeader,
		readTimeout:   DefaultReadTimeout,
		writeTimeout:  DefaultWriteTimeout,
		messages:      make(chan Message, DefaultMessageBufferSize),
		backoff:       bo,
		limiter:       limiter,
	}
}
