package quote

import "github.com/shopspring/decimal"

// Quantity is the operation set shared by every quantity kind. Results are
// always new values; receivers are never mutated.
type Quantity[T any] interface {
	Add(other T) (T, error)
	Sub(other T) (T, error)
	Neg() (T, error)
	Mul(factor decimal.Decimal) (T, error)
	Div(divisor decimal.Decimal) (T, error)
	// Quo divides by a value of the same kind and returns a dimensionless ratio.
	Quo(other T) (decimal.Decimal, error)
	Less(other T) (bool, error)
	Equal(other T) (bool, error)

	IsPositive() bool
	IsZero() bool
	IsNegative() bool
}

var (
	_ Quantity[Asset] = Asset{}
	_ Quantity[Price] = Price{}
)
