package quote

import (
	"errors"
	"fmt"
)

var (
	ErrConstructionDiscipline = errors.New("quantity must be created through a BotPair")
	ErrTypeMismatch           = errors.New("type mismatch")
	ErrCurrencyMismatch       = errors.New("currency mismatch")
	ErrDivisionByZero         = errors.New("division by zero")
	ErrValidation             = errors.New("validation failed")
)

// TypeMismatchError reports an operand kind that the operation does not accept.
type TypeMismatchError struct {
	Op          string
	Left, Right Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: cannot %s %s and %s", e.Op, e.Left, e.Right)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// CurrencyMismatchError reports operands of the right kind bound to different symbols.
type CurrencyMismatchError struct {
	Op          string
	Left, Right string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: cannot %s %s and %s", e.Op, e.Left, e.Right)
}

func (e *CurrencyMismatchError) Unwrap() error { return ErrCurrencyMismatch }

func currencyMismatch(op, left, right string) error {
	return &CurrencyMismatchError{Op: op, Left: left, Right: right}
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
