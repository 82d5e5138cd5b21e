package position

import (
	"errors"

	"github.com/shopspring/decimal"

	"tradequotes/internal/quote"
)

var (
	ErrNoPositions = errors.New("no positions to aggregate")
	ErrZeroTokens  = errors.New("positions hold zero tokens")
)

// Calculator aggregates positions of one pair.
type Calculator struct {
	pair quote.BotPair
}

func NewCalculator(pair quote.BotPair) Calculator {
	return Calculator{pair: pair}
}

// TotalValue sums the gross value of every position at price.
func (c Calculator) TotalValue(positions []Position, price quote.Price) (quote.Asset, error) {
	total := c.pair.ZeroQuote()
	for _, p := range positions {
		v, err := p.GrossValue(price)
		if err != nil {
			return quote.Asset{}, err
		}
		if total, err = total.Add(v); err != nil {
			return quote.Asset{}, err
		}
	}
	return total, nil
}

func (c Calculator) TotalCostBasis(positions []Position) (quote.Asset, error) {
	total := c.pair.ZeroQuote()
	for _, p := range positions {
		cost, err := p.CostBasis()
		if err != nil {
			return quote.Asset{}, err
		}
		if total, err = total.Add(cost); err != nil {
			return quote.Asset{}, err
		}
	}
	return total, nil
}

func (c Calculator) totalTokens(positions []Position) (quote.Asset, error) {
	total := c.pair.ZeroBase()
	for _, p := range positions {
		var err error
		if total, err = total.Add(p.NumberOfTokens); err != nil {
			return quote.Asset{}, err
		}
	}
	return total, nil
}

// WeightedAveragePrice is the total cost basis divided by the total number of
// tokens.
func (c Calculator) WeightedAveragePrice(positions []Position) (quote.Price, error) {
	if len(positions) == 0 {
		return quote.Price{}, ErrNoPositions
	}
	cost, err := c.TotalCostBasis(positions)
	if err != nil {
		return quote.Price{}, err
	}
	tokens, err := c.totalTokens(positions)
	if err != nil {
		return quote.Price{}, err
	}
	if tokens.IsZero() {
		return quote.Price{}, ErrZeroTokens
	}
	avg, _ := cost.Amount().QuoRem(tokens.Amount(), quote.RatioPrecision)
	return c.pair.CreatePrice(avg), nil
}

// AggregateROI is the percent return of all positions at price. It is zero
// for an empty set or a zero cost basis.
func (c Calculator) AggregateROI(positions []Position, price quote.Price) (decimal.Decimal, error) {
	if len(positions) == 0 {
		return decimal.Zero, nil
	}
	cost, err := c.TotalCostBasis(positions)
	if err != nil {
		return decimal.Zero, err
	}
	if cost.IsZero() {
		return decimal.Zero, nil
	}
	value, err := c.TotalValue(positions, price)
	if err != nil {
		return decimal.Zero, err
	}
	gain, err := value.Sub(cost)
	if err != nil {
		return decimal.Zero, err
	}
	ratio, err := gain.Quo(cost)
	if err != nil {
		return decimal.Zero, err
	}
	return ratio.Mul(hundred), nil
}
