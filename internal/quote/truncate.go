package quote

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// RatioPrecision is the number of digits kept by dimensionless quotients and
// by Price divisions, whose exact result may not terminate.
const RatioPrecision int32 = 18

// Truncate cuts amount to precision decimal digits toward zero. It never rounds.
func Truncate(amount decimal.Decimal, precision int32) decimal.Decimal {
	if precision < 0 {
		precision = 0
	}
	return amount.Truncate(precision)
}

// quo divides a by b keeping precision digits, truncated toward zero.
// Callers check b for zero.
func quo(a, b decimal.Decimal, precision int32) decimal.Decimal {
	q, _ := a.QuoRem(b, precision)
	return q
}

// ParseDecimal parses an exact decimal string such as "0.123456789".
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, validationError("invalid decimal %q", s)
	}
	return d, nil
}

// Number lists the amount inputs accepted by ToDecimal.
type Number interface {
	decimal.Decimal | string | int | int64 | float64
}

// ToDecimal converts v to an exact decimal. Floats go through their shortest
// decimal text, so 0.1 becomes exactly 0.1.
func ToDecimal[N Number](v N) (decimal.Decimal, error) {
	switch x := any(v).(type) {
	case decimal.Decimal:
		return x, nil
	case string:
		return ParseDecimal(x)
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, validationError("amount must be finite, got %v", x)
		}
		return decimal.NewFromFloat(x), nil
	}
	return decimal.Zero, validationError("unsupported amount type %T", v)
}
