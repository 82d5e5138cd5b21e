package swap

import (
	"time"

	"github.com/shopspring/decimal"

	"tradequotes/internal/quote"
)

// Result records an executed swap.
type Result struct {
	Request       Request             `json:"request" msgpack:"request"`
	ExecutedRate  decimal.Decimal     `json:"executed_rate" msgpack:"executed_rate"`
	FromAmount    decimal.Decimal     `json:"from_amount" msgpack:"from_amount"`
	ToAmount      decimal.Decimal     `json:"to_amount" msgpack:"to_amount"`
	FeesPaid      decimal.Decimal     `json:"fees_paid" msgpack:"fees_paid"`
	TransactionID string              `json:"transaction_id" msgpack:"transaction_id"`
	ExecutedAt    time.Time           `json:"executed_at" msgpack:"executed_at"`
	GasUsed       decimal.NullDecimal `json:"gas_used" msgpack:"gas_used"`
	ExpectedRate  decimal.Decimal     `json:"expected_rate" msgpack:"expected_rate"`
	Slippage      decimal.Decimal     `json:"slippage" msgpack:"slippage"`
}

// Execution carries the venue-reported figures of a swap.
type Execution struct {
	Rate          decimal.Decimal
	FromAmount    decimal.Decimal
	ToAmount      decimal.Decimal
	FeesPaid      decimal.Decimal
	TransactionID string
	ExecutedAt    time.Time
	GasUsed       decimal.NullDecimal
}

// NewResult derives the expected rate (to / from, zero when nothing was sent)
// and the slippage |expected - executed| / executed.
func NewResult(req Request, exec Execution) (Result, error) {
	if err := nonNegative("from amount", exec.FromAmount); err != nil {
		return Result{}, err
	}
	if err := nonNegative("to amount", exec.ToAmount); err != nil {
		return Result{}, err
	}
	if err := nonNegative("fees paid", exec.FeesPaid); err != nil {
		return Result{}, err
	}

	expected := decimal.Zero
	if exec.FromAmount.IsPositive() {
		expected, _ = exec.ToAmount.QuoRem(exec.FromAmount, quote.RatioPrecision)
	}
	slippage := decimal.Zero
	if expected.IsPositive() && exec.Rate.IsPositive() {
		slippage, _ = expected.Sub(exec.Rate).Abs().QuoRem(exec.Rate, quote.RatioPrecision)
	}

	return Result{
		Request:       req,
		ExecutedRate:  exec.Rate,
		FromAmount:    exec.FromAmount,
		ToAmount:      exec.ToAmount,
		FeesPaid:      exec.FeesPaid,
		TransactionID: exec.TransactionID,
		ExecutedAt:    exec.ExecutedAt,
		GasUsed:       exec.GasUsed,
		ExpectedRate:  expected,
		Slippage:      slippage,
	}, nil
}
