package swap

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"tradequotes/internal/quote"
)

// Type is the order style of a swap.
type Type string

const (
	TypeMarket Type = "market"
	TypeLimit  Type = "limit"
	TypeTWAP   Type = "twap"
	TypeStop   Type = "stop"
)

func (t Type) Valid() bool {
	switch t {
	case TypeMarket, TypeLimit, TypeTWAP, TypeStop:
		return true
	}
	return false
}

// Direction tells whether a swap buys the base, sells it, or trades two
// non-quote symbols.
type Direction string

const (
	DirectionBuy  Direction = "buy"
	DirectionSell Direction = "sell"
	DirectionSwap Direction = "swap"
)

var one = decimal.NewFromInt(1)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", quote.ErrValidation, fmt.Sprintf(format, args...))
}

func normalizeSymbol(field, s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", invalid("%s must be a non-empty symbol", field)
	}
	return s, nil
}

func nonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return invalid("%s must be non-negative, got %s", field, v)
	}
	return nil
}

// DirectionOf derives the direction from the quote-like classification of
// both symbols: quote to base is a buy, base to quote a sell.
func DirectionOf(from, to string) Direction {
	fromQuote, toQuote := quote.IsQuoteLike(from), quote.IsQuoteLike(to)
	switch {
	case fromQuote && !toQuote:
		return DirectionBuy
	case !fromQuote && toQuote:
		return DirectionSell
	default:
		return DirectionSwap
	}
}
