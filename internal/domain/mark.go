package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mark is the latest price recorded for a pair.
type Mark struct {
	Pair      string
	Price     decimal.Decimal
	UpdatedAt time.Time
}
