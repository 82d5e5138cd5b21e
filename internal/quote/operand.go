package quote

import "github.com/shopspring/decimal"

// Kind names the variants of Operand.
type Kind int

const (
	KindScalar Kind = iota
	KindAsset
	KindPrice
)

func (k Kind) String() string {
	switch k {
	case KindAsset:
		return "asset"
	case KindPrice:
		return "price"
	default:
		return "scalar"
	}
}

// Operand is a closed sum type over Scalar, Asset and Price. The package
// level Add, Sub, Mul, Div and Compare switch over every pair of variants.
type Operand interface {
	Kind() Kind
	operand()
}

// Scalar is a dimensionless number.
type Scalar struct {
	value decimal.Decimal
}

func NewScalar(v decimal.Decimal) Scalar { return Scalar{value: v} }

func (s Scalar) Value() decimal.Decimal { return s.value }
func (s Scalar) String() string         { return s.value.String() }
func (Scalar) Kind() Kind               { return KindScalar }
func (Asset) Kind() Kind                { return KindAsset }
func (Price) Kind() Kind                { return KindPrice }

func (Scalar) operand() {}
func (Asset) operand()  {}
func (Price) operand()  {}

func typeMismatch(op string, l, r Operand) error {
	return &TypeMismatchError{Op: op, Left: l.Kind(), Right: r.Kind()}
}

func Add(l, r Operand) (Operand, error) {
	switch lv := l.(type) {
	case Scalar:
		if rv, ok := r.(Scalar); ok {
			return NewScalar(lv.value.Add(rv.value)), nil
		}
	case Asset:
		if rv, ok := r.(Asset); ok {
			return lv.Add(rv)
		}
	case Price:
		if rv, ok := r.(Price); ok {
			return lv.Add(rv)
		}
	}
	return nil, typeMismatch("add", l, r)
}

func Sub(l, r Operand) (Operand, error) {
	switch lv := l.(type) {
	case Scalar:
		if rv, ok := r.(Scalar); ok {
			return NewScalar(lv.value.Sub(rv.value)), nil
		}
	case Asset:
		if rv, ok := r.(Asset); ok {
			return lv.Sub(rv)
		}
	case Price:
		if rv, ok := r.(Price); ok {
			return lv.Sub(rv)
		}
	}
	return nil, typeMismatch("subtract", l, r)
}

func Mul(l, r Operand) (Operand, error) {
	switch lv := l.(type) {
	case Scalar:
		switch rv := r.(type) {
		case Scalar:
			return NewScalar(lv.value.Mul(rv.value)), nil
		case Asset:
			return rv.Mul(lv.value)
		case Price:
			return rv.Mul(lv.value)
		}
	case Asset:
		switch rv := r.(type) {
		case Scalar:
			return lv.Mul(rv.value)
		case Price:
			return lv.MulPrice(rv)
		}
	case Price:
		switch rv := r.(type) {
		case Scalar:
			return lv.Mul(rv.value)
		case Asset:
			return lv.MulAsset(rv)
		}
	}
	return nil, typeMismatch("multiply", l, r)
}

func Div(l, r Operand) (Operand, error) {
	switch lv := l.(type) {
	case Scalar:
		if rv, ok := r.(Scalar); ok {
			if rv.value.IsZero() {
				return nil, ErrDivisionByZero
			}
			return NewScalar(quo(lv.value, rv.value, RatioPrecision)), nil
		}
	case Asset:
		switch rv := r.(type) {
		case Scalar:
			return lv.Div(rv.value)
		case Asset:
			q, err := lv.Quo(rv)
			if err != nil {
				return nil, err
			}
			return NewScalar(q), nil
		case Price:
			return lv.DivPrice(rv)
		}
	case Price:
		switch rv := r.(type) {
		case Scalar:
			return lv.Div(rv.value)
		case Price:
			q, err := lv.Quo(rv)
			if err != nil {
				return nil, err
			}
			return NewScalar(q), nil
		}
	}
	return nil, typeMismatch("divide", l, r)
}

// Compare orders two operands of the same kind.
func Compare(l, r Operand) (int, error) {
	switch lv := l.(type) {
	case Scalar:
		if rv, ok := r.(Scalar); ok {
			return lv.value.Cmp(rv.value), nil
		}
	case Asset:
		if rv, ok := r.(Asset); ok {
			return lv.Compare(rv)
		}
	case Price:
		if rv, ok := r.(Price); ok {
			return lv.Compare(rv)
		}
	}
	return 0, typeMismatch("compare", l, r)
}
