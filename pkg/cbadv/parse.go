package cbadv

import (
	"encoding/json"
	"errors"
	"fmt"
)

// See https://docs.cdp.coinbase.com/advanced-trade/docs/ws-channels for message schemas
func (s *Stream) parseMessage(data []byte) (interface{}, error) {
	var baseMsg messageBaseType
	err := json.Unmarshal(data, &baseMsg)
	if err != nil {
		return nil, err
	}

	switch baseMsg.Channel {
	case SubscriptionsChannel:
		var subMsg SubscriptionsMessage
		err = json.Unmarshal(data, &subMsg)
		if err != nil {
			return nil, err
		}
		return &subMsg, nil
	case HeartbeatsChannel:
		var heartbeatsMsg HeartbeatsMessage
		err = json.Unmarshal(data, &heartbeatsMsg)
		if err != nil {
			return nil, err
		}
		return &heartbeatsMsg, nil
	case StatusChannel:
		var statusMsg StatusMessage
		err = json.Unmarshal(data, &statusMsg)
		if err != nil {
			return nil, err
		}
		return &statusMsg, nil
	case TickerChannel, TickerBatchChannel:
		var tickerMsg TickerMessage
		err = json.Unmarshal(data, &tickerMsg)
		if err != nil {
			return nil, err
		}
		return &tickerMsg, nil
	case level2DataChannel:
		var bookMsg OrderBookMessage
		err = json.Unmarshal(data, &bookMsg)
		if err != nil {
			return nil, err
		}
		return &bookMsg, nil
	case MarketTradesChannel:
		var tradesMsg MarketTradesMessage
		err = json.Unmarshal(data, &tradesMsg)
		if err != nil {
			return nil, err
		}
		return &tradesMsg, nil
	case CandlesChannel:
		var candlesMsg CandlesMessage
		err = json.Unmarshal(data, &candlesMsg)
		if err != nil {
			return nil, err
		}
		return &candlesMsg, nil
	case UserChannel:
		var userMsg UserMessage
		err = json.Unmarshal(data, &userMsg)
		if err != nil {
			return nil, err
		}
		return &userMsg, nil
	case "":
		// failure frames carry a type instead of a channel
		var errMsg ErrorMessage
		err = json.Unmarshal(data, &errMsg)
		if err != nil {
			return nil, err
		}
		if errMsg.Type == "error" {
			return &errMsg, nil
		}
	}
	return nil, errors.New(fmt.Sprintf("unknown channel: %s", baseMsg.Channel))
}
