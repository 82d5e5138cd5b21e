package position

import (
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tradequotes/internal/domain"
	"tradequotes/internal/quote"
)

const DefaultStrategyTag = "default"

var hundred = decimal.NewFromInt(100)

// Position is an open trading position on one pair. Values are immutable;
// the With* and Apply* methods return modified copies.
type Position struct {
	ID                uuid.UUID
	ShortID           int64
	Pair              quote.BotPair
	PurchasePrice     quote.Price
	NumberOfTokens    quote.Asset
	ExpectedSalePrice quote.Price
	NextPurchasePrice quote.Price
	Variations        map[string]decimal.Decimal
	StrategyTag       string
	OpenedAt          time.Time
	Notes             string
}

// Params are the caller-supplied figures of a new position.
type Params struct {
	PurchasePrice     decimal.Decimal
	NumberOfTokens    decimal.Decimal
	ExpectedSalePrice decimal.Decimal
	NextPurchasePrice decimal.Decimal
	Variations        map[string]decimal.Decimal
	StrategyTag       string
	Notes             string
}

func (p Params) validate() error {
	if !p.PurchasePrice.IsPositive() {
		return fmt.Errorf("%w: purchase price must be positive, got %s", quote.ErrValidation, p.PurchasePrice)
	}
	if p.NumberOfTokens.IsNegative() {
		return fmt.Errorf("%w: number of tokens must be non-negative, got %s", quote.ErrValidation, p.NumberOfTokens)
	}
	if p.ExpectedSalePrice.IsNegative() || p.NextPurchasePrice.IsNegative() {
		return fmt.Errorf("%w: target prices must be non-negative", quote.ErrValidation)
	}
	return nil
}

func New(id uuid.UUID, pair quote.BotPair, p Params, openedAt time.Time) (Position, error) {
	if err := p.validate(); err != nil {
		return Position{}, err
	}
	tag := p.StrategyTag
	if tag == "" {
		tag = DefaultStrategyTag
	}
	variations := maps.Clone(p.Variations)
	if variations == nil {
		variations = map[string]decimal.Decimal{}
	}

	return Position{
		ID:                id,
		Pair:              pair,
		PurchasePrice:     pair.CreatePrice(p.PurchasePrice),
		NumberOfTokens:    pair.CreateBaseAsset(p.NumberOfTokens),
		ExpectedSalePrice: pair.CreatePrice(p.ExpectedSalePrice),
		NextPurchasePrice: pair.CreatePrice(p.NextPurchasePrice),
		Variations:        variations,
		StrategyTag:       tag,
		OpenedAt:          openedAt,
		Notes:             p.Notes,
	}, nil
}

// FromRecord rebuilds a stored position through its pair factory.
func FromRecord(pair quote.BotPair, rec domain.PositionRecord) (Position, error) {
	if rec.Pair != pair.String() {
		return Position{}, fmt.Errorf("%w: record pair %s does not match %s", quote.ErrCurrencyMismatch, rec.Pair, pair)
	}
	pos, err := New(rec.ID, pair, Params{
		PurchasePrice:     rec.PurchasePrice,
		NumberOfTokens:    rec.NumberOfTokens,
		ExpectedSalePrice: rec.ExpectedSalePrice,
		NextPurchasePrice: rec.NextPurchasePrice,
		Variations:        rec.Variations,
		StrategyTag:       rec.StrategyTag,
		Notes:             rec.Notes,
	}, rec.OpenedAt)
	if err != nil {
		return Position{}, fmt.Errorf("invalid stored position %s: %w", rec.ID, err)
	}
	pos.ShortID = rec.ShortID
	return pos, nil
}

func (p Position) Record() domain.PositionRecord {
	return domain.PositionRecord{
		ID:                p.ID,
		ShortID:           p.ShortID,
		Pair:              p.Pair.String(),
		PurchasePrice:     p.PurchasePrice.Value(),
		NumberOfTokens:    p.NumberOfTokens.Amount(),
		ExpectedSalePrice: p.ExpectedSalePrice.Value(),
		NextPurchasePrice: p.NextPurchasePrice.Value(),
		Variations:        maps.Clone(p.Variations),
		StrategyTag:       p.StrategyTag,
		Notes:             p.Notes,
		OpenedAt:          p.OpenedAt,
	}
}

// ROI is the return in percent when selling at sale, e.g. 2.5 for 2.5%.
func (p Position) ROI(sale quote.Price) (decimal.Decimal, error) {
	diff, err := sale.Sub(p.PurchasePrice)
	if err != nil {
		return decimal.Zero, err
	}
	ratio, err := diff.Quo(p.PurchasePrice)
	if err != nil {
		return decimal.Zero, err
	}
	return ratio.Mul(hundred), nil
}

// Profit is the quote-symbol gain when selling every token at sale.
func (p Position) Profit(sale quote.Price) (quote.Asset, error) {
	saleValue, err := p.GrossValue(sale)
	if err != nil {
		return quote.Asset{}, err
	}
	cost, err := p.CostBasis()
	if err != nil {
		return quote.Asset{}, err
	}
	return saleValue.Sub(cost)
}

// GrossValue is the quote-symbol value of the tokens at price.
func (p Position) GrossValue(price quote.Price) (quote.Asset, error) {
	return price.MulAsset(p.NumberOfTokens)
}

func (p Position) CostBasis() (quote.Asset, error) {
	return p.PurchasePrice.MulAsset(p.NumberOfTokens)
}

func (p Position) PotentialProfit() (quote.Asset, error) {
	return p.Profit(p.ExpectedSalePrice)
}

func (p Position) PotentialROI() (decimal.Decimal, error) {
	return p.ROI(p.ExpectedSalePrice)
}

func (p Position) ShouldSellAt(current quote.Price) (bool, error) {
	return current.GreaterOrEqual(p.ExpectedSalePrice)
}

func (p Position) ShouldBuyDCAAt(current quote.Price) (bool, error) {
	return current.LessOrEqual(p.NextPurchasePrice)
}

func (p Position) IsProfitableAt(current quote.Price) (bool, error) {
	return current.Greater(p.PurchasePrice)
}

func (p Position) WithExpectedSalePrice(price quote.Price) Position {
	p.ExpectedSalePrice = price
	p.Variations = maps.Clone(p.Variations)
	return p
}

// ApplyTrailingStop moves the expected sale price up to current * (1 - trail)
// when that is higher than the current target. trail is a fraction. The
// boolean reports whether the target moved.
func (p Position) ApplyTrailingStop(current quote.Price, trail decimal.Decimal) (Position, bool, error) {
	candidate, err := current.ApplyPercentage(trail.Neg())
	if err != nil {
		return p, false, err
	}
	higher, err := candidate.Greater(p.ExpectedSalePrice)
	if err != nil {
		return p, false, err
	}
	if !higher {
		return p, false, nil
	}
	return p.WithExpectedSalePrice(candidate), true, nil
}
