package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PositionRecord is the stored form of a trading position. Prices are in
// quote units per base unit, NumberOfTokens in base units.
type PositionRecord struct {
	ID                uuid.UUID
	ShortID           int64
	Pair              string
	PurchasePrice     decimal.Decimal
	NumberOfTokens    decimal.Decimal
	ExpectedSalePrice decimal.Decimal
	NextPurchasePrice decimal.Decimal
	Variations        map[string]decimal.Decimal
	StrategyTag       string
	Notes             string
	OpenedAt          time.Time
}

type SalePriceUpdate struct {
	ID                uuid.UUID       `json:"id"`
	ExpectedSalePrice decimal.Decimal `json:"expected_sale_price"`
}
