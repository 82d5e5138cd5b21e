package quote

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Asset is an amount of exactly one symbol, e.g. 0.5 BTC or 100 USDC.
// Values are created by a BotPair; the zero value is not usable.
type Asset struct {
	amount    decimal.Decimal
	precision int32
	symbol    string
	table     PrecisionTable
}

func newAsset(amount decimal.Decimal, symbol string, table PrecisionTable) Asset {
	return newAssetWithPrecision(amount, symbol, table.For(symbol), table)
}

func newAssetWithPrecision(amount decimal.Decimal, symbol string, precision int32, table PrecisionTable) Asset {
	return Asset{
		amount:    Truncate(amount, precision),
		precision: precision,
		symbol:    symbol,
		table:     table,
	}
}

func (a Asset) Amount() decimal.Decimal { return a.amount }
func (a Asset) Precision() int32        { return a.precision }
func (a Asset) Symbol() string          { return a.symbol }

func (a Asset) IsFiat() bool       { return IsFiat(a.symbol) }
func (a Asset) IsStablecoin() bool { return IsStablecoin(a.symbol) }
func (a Asset) IsQuoteLike() bool  { return IsQuoteLike(a.symbol) }

func (a Asset) IsPositive() bool { return a.amount.IsPositive() }
func (a Asset) IsZero() bool     { return a.amount.IsZero() }
func (a Asset) IsNegative() bool { return a.amount.IsNegative() }

func (a Asset) String() string {
	return fmt.Sprintf("%s %s", a.amount.StringFixed(a.precision), a.symbol)
}

func (a Asset) check(others ...Asset) error {
	if a.symbol == "" {
		return ErrConstructionDiscipline
	}
	for _, o := range others {
		if o.symbol == "" {
			return ErrConstructionDiscipline
		}
	}
	return nil
}

func (a Asset) sameSymbol(op string, other Asset) error {
	if err := a.check(other); err != nil {
		return err
	}
	if a.symbol != other.symbol {
		return currencyMismatch(op, a.symbol, other.symbol)
	}
	return nil
}

// with returns an Asset of the same symbol and precision holding amount.
func (a Asset) with(amount decimal.Decimal) Asset {
	return newAssetWithPrecision(amount, a.symbol, a.precision, a.table)
}

func (a Asset) Add(other Asset) (Asset, error) {
	if err := a.sameSymbol("add", other); err != nil {
		return Asset{}, err
	}
	return a.with(a.amount.Add(other.amount)), nil
}

func (a Asset) Sub(other Asset) (Asset, error) {
	if err := a.sameSymbol("subtract", other); err != nil {
		return Asset{}, err
	}
	return a.with(a.amount.Sub(other.amount)), nil
}

func (a Asset) Neg() (Asset, error) {
	if err := a.check(); err != nil {
		return Asset{}, err
	}
	return a.with(a.amount.Neg()), nil
}

func (a Asset) Mul(factor decimal.Decimal) (Asset, error) {
	if err := a.check(); err != nil {
		return Asset{}, err
	}
	return a.with(a.amount.Mul(factor)), nil
}

// MulPrice converts an amount of the price's base symbol into its quote symbol.
func (a Asset) MulPrice(p Price) (Asset, error) {
	if err := a.check(); err != nil {
		return Asset{}, err
	}
	if err := p.check(); err != nil {
		return Asset{}, err
	}
	if a.symbol != p.base {
		return Asset{}, currencyMismatch("multiply", a.symbol, p.Pair())
	}
	return newAsset(a.amount.Mul(p.value), p.quote, a.table), nil
}

// ValueAt is the value of the asset expressed in the quote symbol of p.
func (a Asset) ValueAt(p Price) (Asset, error) {
	return a.MulPrice(p)
}

func (a Asset) Div(divisor decimal.Decimal) (Asset, error) {
	if err := a.check(); err != nil {
		return Asset{}, err
	}
	if divisor.IsZero() {
		return Asset{}, ErrDivisionByZero
	}
	return a.with(quo(a.amount, divisor, a.precision)), nil
}

func (a Asset) Quo(other Asset) (decimal.Decimal, error) {
	if err := a.check(other); err != nil {
		return decimal.Zero, err
	}
	if other.amount.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	if a.symbol != other.symbol {
		return decimal.Zero, currencyMismatch("divide", a.symbol, other.symbol)
	}
	return quo(a.amount, other.amount, RatioPrecision), nil
}

// DivPrice converts an amount of the price's quote symbol into its base symbol.
func (a Asset) DivPrice(p Price) (Asset, error) {
	if err := a.check(); err != nil {
		return Asset{}, err
	}
	if err := p.check(); err != nil {
		return Asset{}, err
	}
	if p.value.IsZero() {
		return Asset{}, ErrDivisionByZero
	}
	if a.symbol != p.quote {
		return Asset{}, currencyMismatch("divide", a.symbol, p.Pair())
	}
	precision := a.table.For(p.base)
	return newAssetWithPrecision(quo(a.amount, p.value, precision), p.base, precision, a.table), nil
}

func (a Asset) Compare(other Asset) (int, error) {
	if err := a.sameSymbol("compare", other); err != nil {
		return 0, err
	}
	return a.amount.Cmp(other.amount), nil
}

func (a Asset) Less(other Asset) (bool, error) {
	c, err := a.Compare(other)
	return c < 0, err
}

func (a Asset) Equal(other Asset) (bool, error) {
	c, err := a.Compare(other)
	return c == 0 && err == nil, err
}

// Split divides the asset into amount*fraction and amount*(1-fraction).
// Each part is truncated on its own, so a+b may differ from the original by
// one unit of the last decimal place.
func (a Asset) Split(fraction decimal.Decimal) (Asset, Asset, error) {
	if err := a.check(); err != nil {
		return Asset{}, Asset{}, err
	}
	if fraction.IsNegative() || fraction.GreaterThan(decimal.NewFromInt(1)) {
		return Asset{}, Asset{}, validationError("split fraction must be between 0 and 1, got %s", fraction)
	}
	first := a.with(a.amount.Mul(fraction))
	second := a.with(a.amount.Mul(decimal.NewFromInt(1).Sub(fraction)))
	return first, second, nil
}
