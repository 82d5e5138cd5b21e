package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BotPair binds quantities and prices to one trading pair. It is the only way
// to create Asset and Price values.
type BotPair struct {
	pair       string
	base       string
	quote      string
	precisions PrecisionTable
}

type Option func(*BotPair)

// WithPrecisions overrides the digit count per symbol class for every Asset
// created through the pair.
func WithPrecisions(t PrecisionTable) Option {
	return func(p *BotPair) {
		p.precisions = t
	}
}

// NewBotPair parses a "BASE/QUOTE" specifier such as "BTC/USDC".
func NewBotPair(pair string, opts ...Option) (BotPair, error) {
	parts := strings.Split(pair, "/")
	if len(parts) != 2 {
		return BotPair{}, validationError("pair %q must have the form BASE/QUOTE", pair)
	}
	base, err := normalizeSymbol(parts[0])
	if err != nil {
		return BotPair{}, validationError("pair %q has an empty base symbol", pair)
	}
	quote, err := normalizeSymbol(parts[1])
	if err != nil {
		return BotPair{}, validationError("pair %q has an empty quote symbol", pair)
	}

	p := BotPair{
		pair:       strings.TrimSpace(pair),
		base:       base,
		quote:      quote,
		precisions: DefaultPrecisions,
	}
	for _, opt := range opts {
		opt(&p)
	}
	if err = p.precisions.Validate(); err != nil {
		return BotPair{}, err
	}
	return p, nil
}

func (p BotPair) Pair() string               { return p.pair }
func (p BotPair) Base() string               { return p.base }
func (p BotPair) Quote() string              { return p.quote }
func (p BotPair) Precisions() PrecisionTable { return p.precisions }

// FriendlyName is the exchange form of the pair, e.g. "BTCUSDC".
func (p BotPair) FriendlyName() string { return p.base + p.quote }

func (p BotPair) String() string { return p.base + "/" + p.quote }

func (p BotPair) CreateBaseAsset(amount decimal.Decimal) Asset {
	return newAsset(amount, p.base, p.precisions)
}

func (p BotPair) CreateQuoteAsset(amount decimal.Decimal) Asset {
	return newAsset(amount, p.quote, p.precisions)
}

func (p BotPair) CreatePrice(value decimal.Decimal) Price {
	return newPrice(value, p.base, p.quote)
}

func (p BotPair) ZeroBase() Asset  { return p.CreateBaseAsset(decimal.Zero) }
func (p BotPair) ZeroQuote() Asset { return p.CreateQuoteAsset(decimal.Zero) }
func (p BotPair) ZeroPrice() Price { return p.CreatePrice(decimal.Zero) }

// CreateToken is the legacy name of CreateBaseAsset.
func (p BotPair) CreateToken(amount decimal.Decimal) Asset { return p.CreateBaseAsset(amount) }
func (p BotPair) ZeroToken() Asset                         { return p.ZeroBase() }

// CreateUSD is the legacy name of CreateQuoteAsset, kept for callers that
// still think of the quote side as "USD" whatever the pair's quote symbol is.
func (p BotPair) CreateUSD(amount decimal.Decimal) Asset { return p.CreateQuoteAsset(amount) }
func (p BotPair) ZeroUSD() Asset                         { return p.ZeroQuote() }

// ParseBaseAsset, ParseQuoteAsset and ParsePrice accept decimal text.

func (p BotPair) ParseBaseAsset(amount string) (Asset, error) {
	d, err := ParseDecimal(amount)
	if err != nil {
		return Asset{}, err
	}
	return p.CreateBaseAsset(d), nil
}

func (p BotPair) ParseQuoteAsset(amount string) (Asset, error) {
	d, err := ParseDecimal(amount)
	if err != nil {
		return Asset{}, err
	}
	return p.CreateQuoteAsset(d), nil
}

func (p BotPair) ParsePrice(value string) (Price, error) {
	d, err := ParseDecimal(value)
	if err != nil {
		return Price{}, err
	}
	return p.CreatePrice(d), nil
}
