package cbadv

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Liftss/cbadv-go/pkg/websocket"
)

type Channel string

const (
	SubscriptionsChannel Channel = "subscriptions"
	HeartbeatsChannel    Channel = "heartbeats"
	StatusChannel        Channel = "status"
	TickerChannel        Channel = "ticker"
	TickerBatchChannel   Channel = "ticker_batch"
	Level2Channel        Channel = "level2"
	MarketTradesChannel  Channel = "market_trades"
	CandlesChannel       Channel = "candles"
	UserChannel          Channel = "user"
)

// level2 data frames arrive under a different channel name than the one the
// subscription is made to.
const level2DataChannel Channel = "l2_data"

const (
	subscribeMsgType   = "subscribe"
	unsubscribeMsgType = "unsubscribe"
)

type authMsg struct {
	APIKey    string `json:"api_key,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Signature string `json:"signature,omitempty"`
}

func (msg authMsg) String() string {
	return fmt.Sprintf("(authMsg Timestamp:%s)", msg.Timestamp)
}

type subscribeMsg struct {
	Type       string   `json:"type"`
	Channel    Channel  `json:"channel"`
	ProductIDs []string `json:"product_ids,omitempty"`

	authMsg
}

func (msg subscribeMsg) String() string {
	return fmt.Sprintf("(subscribeMsg Type:%s, Channel:%s, ProductIDs:%s, %s)", msg.Type, msg.Channel, msg.ProductIDs, msg.authMsg.String())
}

// generateSignature signs a subscribe request: lowercase hex HMAC-SHA256
// over the timestamp, the channel name and the comma joined product ids.
func (s *Stream) generateSignature(timestamp string, channel Channel, productIDs []string) string {
	var sig = hmac.New(sha256.New, []byte(s.apiSecret))
	_, err := sig.Write([]byte(timestamp + string(channel) + strings.Join(productIDs, ",")))
	if err != nil {
		return ""
	}

	return hex.EncodeToString(sig.Sum(nil))
}

// subscribeCmd builds a subscribe or unsubscribe message for one channel.
// The message is signed whenever credentials are present; public channels
// accept unsigned requests.
func (s *Stream) subscribeCmd(msgType string, channel Channel, productIDs []string) subscribeMsg {
	cmd := subscribeMsg{
		Type:       msgType,
		Channel:    channel,
		ProductIDs: productIDs,
	}
	if len(s.apiKey) > 0 && len(s.apiSecret) > 0 {
		timestamp := strconv.FormatInt(time.Now().Unix(), 10)
		cmd.authMsg = authMsg{
			APIKey:    s.apiKey,
			Timestamp: timestamp,
			Signature: s.generateSignature(timestamp, channel, productIDs),
		}
	}
	return cmd
}

// writeSubscriptions writes one subscribe message per recorded channel. The
// server takes a single channel per subscribe request.
func (s *Stream) writeSubscriptions(client websocket.Client) {
	s.mu.Lock()
	subs := make([]*subscription, len(s.subscriptions))
	copy(subs, s.subscriptions)
	s.mu.Unlock()

	for _, sub := range subs {
		cmd := s.subscribeCmd(subscribeMsgType, sub.Channel, sub.ProductIDs)
		if err := client.WriteJSON(cmd); err != nil {
			log.WithError(err).Errorf("subscription error: %s", cmd)
			s.EmitError(err)
		} else {
			log.Infof("subscribed to %s", cmd)
		}
	}
}

func (s *Stream) writeSubscribe(client websocket.Client, sub *subscription) error {
	cmd := s.subscribeCmd(subscribeMsgType, sub.Channel, sub.ProductIDs)
	if err := client.WriteJSON(cmd); err != nil {
		return err
	}
	log.Infof("subscribed to %s", cmd)
	return nil
}

func (s *Stream) writeUnsubscribe(client websocket.Client, channel Channel, productIDs []string) error {
	cmd := s.subscribeCmd(unsubscribeMsgType, channel, productIDs)
	if err := client.WriteJSON(cmd); err != nil {
		return err
	}
	log.Infof("unsubscribed from %s", cmd)
	return nil
}

func (s *Stream) handleMessage(data []byte) {
	s.EmitRawMessage(data)

	parsed, err := s.parseMessage(data)
	if err != nil {
		streamFramesDroppedMetrics.WithLabelValues("parse_error").Inc()
		log.WithError(err).Warnf("failed to parse stream message: %s", data)
		s.EmitError(err)
		return
	}

	if msg, ok := parsed.(enveloped); ok {
		hdr := msg.header()
		if !s.checkAndUpdateSequenceNumber(hdr.SequenceNum) {
			streamFramesDroppedMetrics.WithLabelValues("stale_sequence").Inc()
			log.Debugf("dropping stale frame: channel=%s sequence=%d", hdr.Channel, hdr.SequenceNum)
			return
		}
		streamFramesParsedMetrics.WithLabelValues(string(hdr.Channel)).Inc()
	}

	switch m := parsed.(type) {
	case *SubscriptionsMessage:
		s.EmitSubscriptions(m)
	case *HeartbeatsMessage:
		s.EmitHeartbeats(m)
	case *StatusMessage:
		s.EmitStatus(m)
	case *TickerMessage:
		s.EmitTicker(m)
	case *OrderBookMessage:
		s.EmitLevel2(m)
	case *MarketTradesMessage:
		s.EmitMarketTrades(m)
	case *CandlesMessage:
		s.EmitCandles(m)
	case *UserMessage:
		for i := range m.Events {
			orders := m.Events[i].Orders
			for j := range orders {
				s.EmitUserOrder(&orders[j])
			}
		}
	case *ErrorMessage:
		s.EmitError(errors.Errorf("stream error: %s: %s", m.Message, m.Reason))
	}
}

// checkAndUpdateSequenceNumber returns false when the frame is not newer
// than the last one seen. The counter spans all channels on the connection.
func (s *Stream) checkAndUpdateSequenceNumber(sequenceNum int64) bool {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	if sequenceNum <= s.lastSequence {
		return false
	}
	s.lastSequence = sequenceNum
	return true
}

func (s *Stream) clearSequenceNumber() {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	s.lastSequence = -1
}
