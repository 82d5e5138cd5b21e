package adapters

import (
	"context"

	"tradequotes/internal/domain"
	"tradequotes/internal/quote"

	"github.com/google/uuid"
)

type PositionRepository interface {
	Create(ctx context.Context, rec domain.PositionRecord) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.PositionRecord, error)
	ListByPair(ctx context.Context, pair string) ([]domain.PositionRecord, error)
	ListAll(ctx context.Context) ([]domain.PositionRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateExpectedSalePrices(ctx context.Context, updates []domain.SalePriceUpdate) error
}

type MarkRepository interface {
	Upsert(ctx context.Context, mark domain.Mark) error
	Get(ctx context.Context, pair string) (domain.Mark, error)
}

// PairCache keeps parsed pair factories keyed by their "BASE/QUOTE" spec.
type PairCache interface {
	Get(spec string) (quote.BotPair, bool)
	Set(spec string, pair quote.BotPair)
}
