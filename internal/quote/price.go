package quote

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Price is the number of quote-symbol units per one base-symbol unit.
// The value is kept exact and is not truncated.
type Price struct {
	value decimal.Decimal
	base  string
	quote string
}

func newPrice(value decimal.Decimal, base, quote string) Price {
	return Price{value: value, base: base, quote: quote}
}

func (p Price) Value() decimal.Decimal { return p.value }
func (p Price) Base() string           { return p.base }
func (p Price) Quote() string          { return p.quote }
func (p Price) Pair() string           { return p.base + "/" + p.quote }

func (p Price) IsPositive() bool { return p.value.IsPositive() }
func (p Price) IsZero() bool     { return p.value.IsZero() }
func (p Price) IsNegative() bool { return p.value.IsNegative() }

func (p Price) String() string {
	return fmt.Sprintf("%s %s", p.value.StringFixed(2), p.Pair())
}

func (p Price) check(others ...Price) error {
	if p.base == "" || p.quote == "" {
		return ErrConstructionDiscipline
	}
	for _, o := range others {
		if o.base == "" || o.quote == "" {
			return ErrConstructionDiscipline
		}
	}
	return nil
}

func (p Price) samePair(op string, other Price) error {
	if err := p.check(other); err != nil {
		return err
	}
	if p.base != other.base || p.quote != other.quote {
		return currencyMismatch(op, p.Pair(), other.Pair())
	}
	return nil
}

func (p Price) with(value decimal.Decimal) Price {
	return newPrice(value, p.base, p.quote)
}

func (p Price) Add(other Price) (Price, error) {
	if err := p.samePair("add", other); err != nil {
		return Price{}, err
	}
	return p.with(p.value.Add(other.value)), nil
}

func (p Price) Sub(other Price) (Price, error) {
	if err := p.samePair("subtract", other); err != nil {
		return Price{}, err
	}
	return p.with(p.value.Sub(other.value)), nil
}

func (p Price) Neg() (Price, error) {
	if err := p.check(); err != nil {
		return Price{}, err
	}
	return p.with(p.value.Neg()), nil
}

func (p Price) Mul(factor decimal.Decimal) (Price, error) {
	if err := p.check(); err != nil {
		return Price{}, err
	}
	return p.with(p.value.Mul(factor)), nil
}

// MulAsset converts an amount of the base symbol into the quote symbol.
func (p Price) MulAsset(a Asset) (Asset, error) {
	return a.MulPrice(p)
}

func (p Price) Div(divisor decimal.Decimal) (Price, error) {
	if err := p.check(); err != nil {
		return Price{}, err
	}
	if divisor.IsZero() {
		return Price{}, ErrDivisionByZero
	}
	return p.with(quo(p.value, divisor, RatioPrecision)), nil
}

func (p Price) Quo(other Price) (decimal.Decimal, error) {
	if err := p.check(other); err != nil {
		return decimal.Zero, err
	}
	if other.value.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	if err := p.samePair("divide", other); err != nil {
		return decimal.Zero, err
	}
	return quo(p.value, other.value, RatioPrecision), nil
}

// Compare orders two prices of the same pair.
func (p Price) Compare(other Price) (int, error) {
	if err := p.samePair("compare", other); err != nil {
		return 0, err
	}
	return p.value.Cmp(other.value), nil
}

func (p Price) Less(other Price) (bool, error) {
	c, err := p.Compare(other)
	return c < 0, err
}

func (p Price) LessOrEqual(other Price) (bool, error) {
	c, err := p.Compare(other)
	return c <= 0 && err == nil, err
}

func (p Price) Greater(other Price) (bool, error) {
	c, err := p.Compare(other)
	return c > 0, err
}

func (p Price) GreaterOrEqual(other Price) (bool, error) {
	c, err := p.Compare(other)
	return c >= 0 && err == nil, err
}

// Equal compares values only; the symbols do not take part.
func (p Price) Equal(other Price) (bool, error) {
	if err := p.check(other); err != nil {
		return false, err
	}
	return p.value.Equal(other.value), nil
}

// ApplyPercentage returns price * (1 + pct). pct is a fraction: 0.02 is +2%.
func (p Price) ApplyPercentage(pct decimal.Decimal) (Price, error) {
	return p.Mul(decimal.NewFromInt(1).Add(pct))
}

// DistancePercent is the exact signed distance from other in percent, cut to
// RatioPrecision digits. ok is false when other is zero and the distance is
// unbounded.
func (p Price) DistancePercent(other Price) (dist decimal.Decimal, ok bool, err error) {
	if err = p.samePair("measure distance between", other); err != nil {
		return decimal.Zero, false, err
	}
	if other.value.IsZero() {
		return decimal.Zero, false, nil
	}
	diff := p.value.Sub(other.value).Mul(decimal.NewFromInt(100))
	return quo(diff, other.value, RatioPrecision), true, nil
}

// DistanceFrom is DistancePercent as a float64, the one lossy result of the
// algebra. It exists for display and thresholds that accept +Inf, which is
// returned for a zero other. Use DistancePercent for exact work.
func (p Price) DistanceFrom(other Price) (float64, error) {
	dist, ok, err := p.DistancePercent(other)
	if err != nil {
		return 0, err
	}
	if !ok {
		return math.Inf(1), nil
	}
	return dist.InexactFloat64(), nil
}

// IsWithinPercentage reports whether p lies within tolerance (a fraction) of
// target. A zero target is never matched.
func (p Price) IsWithinPercentage(target Price, tolerance decimal.Decimal) (bool, error) {
	if err := p.samePair("compare", target); err != nil {
		return false, err
	}
	if target.value.IsZero() {
		return false, nil
	}
	// |p - t| / |t| <= tolerance, without the division.
	return p.value.Sub(target.value).Abs().LessThanOrEqual(tolerance.Mul(target.value.Abs())), nil
}

// Midpoint returns (a + b) / 2 for two prices of the same pair.
func Midpoint(a, b Price) (Price, error) {
	if err := a.check(b); err != nil {
		return Price{}, err
	}
	if a.base != b.base || a.quote != b.quote {
		return Price{}, validationError("cannot take midpoint of prices with different symbols %s and %s", a.Pair(), b.Pair())
	}
	return a.with(a.value.Add(b.value).Mul(decimal.New(5, -1))), nil
}
