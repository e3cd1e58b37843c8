package cbadv

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	api "github.com/Liftss/cbadv-go/pkg/cbadv/api/v1"
)

// SubmitOrderParams describes an order in caller terms. OrderConfiguration
// validates it and translates it to the wire form.
type SubmitOrderParams struct {
	ProductID string
	Side      api.SideType
	Type      api.OrderType

	// ClientOrderID is the idempotency key of the order. SubmitOrder fills
	// in a random UUID when it is left empty.
	ClientOrderID string

	// BaseSize is the quantity in base currency. Market buys may set
	// QuoteSize instead to spend a quote currency amount.
	BaseSize  decimal.Decimal
	QuoteSize decimal.Decimal

	LimitPrice decimal.Decimal

	StopPrice     decimal.Decimal
	StopDirection api.StopDirection

	// PostOnly rejects the order instead of taking liquidity. Limit only.
	PostOnly bool

	// EndTime turns a limit or stop limit order into good-until-date.
	EndTime time.Time
}

// OrderConfiguration checks the side and type combination and builds the
// matching execution configuration.
func (p SubmitOrderParams) OrderConfiguration() (*api.OrderConfiguration, error) {
	if len(p.ProductID) == 0 {
		return nil, errors.New("product id is required")
	}

	switch p.Side {
	case api.SideTypeBuy, api.SideTypeSell:
	default:
		return nil, errors.Errorf("unsupported order side: %v", p.Side)
	}

	switch p.Type {
	case api.OrderTypeMarket:
		return p.marketConfiguration()
	case api.OrderTypeLimit:
		return p.limitConfiguration()
	case api.OrderTypeStopLimit:
		return p.stopLimitConfiguration()
	}
	return nil, errors.Errorf("unsupported order type: %v", p.Type)
}

func (p SubmitOrderParams) marketConfiguration() (*api.OrderConfiguration, error) {
	if p.PostOnly {
		return nil, errors.New("post only applies to limit orders only")
	}

	hasBase := p.BaseSize.IsPositive()
	hasQuote := p.QuoteSize.IsPositive()
	if hasBase == hasQuote {
		return nil, errors.New("market orders take exactly one of base size or quote size")
	}
	if hasQuote && p.Side == api.SideTypeSell {
		return nil, errors.New("market sell orders take base size, not quote size")
	}

	ioc := &api.MarketIOC{}
	if hasQuote {
		quote := p.QuoteSize
		ioc.QuoteSize = &quote
	} else {
		base := p.BaseSize
		ioc.BaseSize = &base
	}
	return &api.OrderConfiguration{MarketIOC: ioc}, nil
}

func (p SubmitOrderParams) limitConfiguration() (*api.OrderConfiguration, error) {
	if !p.BaseSize.IsPositive() {
		return nil, errors.New("limit orders take a positive base size")
	}
	if !p.LimitPrice.IsPositive() {
		return nil, errors.New("limit orders take a positive limit price")
	}

	if p.EndTime.IsZero() {
		return &api.OrderConfiguration{
			LimitGTC: &api.LimitGTC{
				BaseSize:   p.BaseSize,
				LimitPrice: p.LimitPrice,
				PostOnly:   p.PostOnly,
			},
		}, nil
	}

	return &api.OrderConfiguration{
		LimitGTD: &api.LimitGTD{
			BaseSize:   p.BaseSize,
			LimitPrice: p.LimitPrice,
			EndTime:    p.EndTime,
			PostOnly:   p.PostOnly,
		},
	}, nil
}

func (p SubmitOrderParams) stopLimitConfiguration() (*api.OrderConfiguration, error) {
	if p.PostOnly {
		return nil, errors.New("post only applies to limit orders only")
	}
	if !p.BaseSize.IsPositive() {
		return nil, errors.New("stop limit orders take a positive base size")
	}
	if !p.LimitPrice.IsPositive() {
		return nil, errors.New("stop limit orders take a positive limit price")
	}
	if !p.StopPrice.IsPositive() {
		return nil, errors.New("stop limit orders take a positive stop price")
	}

	switch p.StopDirection {
	case api.StopDirectionUp, api.StopDirectionDown:
	default:
		return nil, errors.Errorf("unsupported stop direction: %v", p.StopDirection)
	}

	if p.EndTime.IsZero() {
		return &api.OrderConfiguration{
			StopLimitGTC: &api.StopLimitGTC{
				BaseSize:      p.BaseSize,
				LimitPrice:    p.LimitPrice,
				StopPrice:     p.StopPrice,
				StopDirection: p.StopDirection,
			},
		}, nil
	}

	return &api.OrderConfiguration{
		StopLimitGTD: &api.StopLimitGTD{
			BaseSize:      p.BaseSize,
			LimitPrice:    p.LimitPrice,
			StopPrice:     p.StopPrice,
			EndTime:       p.EndTime,
			StopDirection: p.StopDirection,
		},
	}, nil
}

// Quantize rounds the sizes down to the product's base increment and the
// prices down to its quote increment, so a submission can not be rejected
// for excess precision.
func (p SubmitOrderParams) Quantize(product *api.Product) SubmitOrderParams {
	out := p
	out.BaseSize = quantizeBy(p.BaseSize, product.BaseIncrement)
	out.QuoteSize = quantizeBy(p.QuoteSize, product.QuoteIncrement)
	out.LimitPrice = quantizeBy(p.LimitPrice, product.QuoteIncrement)
	out.StopPrice = quantizeBy(p.StopPrice, product.QuoteIncrement)
	return out
}

// quantizeBy floors v to a multiple of step.
func quantizeBy(v, step decimal.Decimal) decimal.Decimal {
	if v.IsZero() || step.IsZero() {
		return v
	}
	return v.Div(step).Floor().Mul(step)
}
