package position

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tradequotes/internal/adapters"
	"tradequotes/internal/domain"
	"tradequotes/internal/quote"
)

// Summary values every position of a pair at one price.
type Summary struct {
	Pair                 string
	Price                quote.Price
	Count                int
	TotalValue           quote.Asset
	TotalCostBasis       quote.Asset
	WeightedAveragePrice *quote.Price
	AggregateROI         decimal.Decimal
}

type Service struct {
	positions adapters.PositionRepository
	marks     adapters.MarkRepository
	pairs     *Pairs
	now       func() time.Time
}

func (s *Service) Open(ctx context.Context, pairSpec string, params Params) (Position, error) {
	pair, err := s.pairs.Resolve(pairSpec)
	if err != nil {
		return Position{}, err
	}
	pos, err := New(uuid.New(), pair, params, s.now().UTC())
	if err != nil {
		return Position{}, err
	}
	shortID, err := s.positions.Create(ctx, pos.Record())
	if err != nil {
		return Position{}, fmt.Errorf("failed to store position: %w", err)
	}
	pos.ShortID = shortID
	return pos, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (Position, error) {
	rec, err := s.positions.GetByID(ctx, id)
	if err != nil {
		return Position{}, err
	}
	return s.fromRecord(rec)
}

func (s *Service) ListByPair(ctx context.Context, pairSpec string) ([]Position, error) {
	pair, err := s.pairs.Resolve(pairSpec)
	if err != nil {
		return nil, err
	}
	recs, err := s.positions.ListByPair(ctx, pair.String())
	if err != nil {
		return nil, err
	}
	out := make([]Position, 0, len(recs))
	for _, rec := range recs {
		pos, err := FromRecord(pair, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	return out, nil
}

func (s *Service) Close(ctx context.Context, id uuid.UUID) error {
	return s.positions.Delete(ctx, id)
}

// Summary values the open positions of a pair at price. The weighted average
// price is nil when the positions hold no tokens.
func (s *Service) Summary(ctx context.Context, pairSpec string, price decimal.Decimal) (Summary, error) {
	positions, err := s.ListByPair(ctx, pairSpec)
	if err != nil {
		return Summary{}, err
	}
	pair, err := s.pairs.Resolve(pairSpec)
	if err != nil {
		return Summary{}, err
	}
	at := pair.CreatePrice(price)
	calc := NewCalculator(pair)

	value, err := calc.TotalValue(positions, at)
	if err != nil {
		return Summary{}, err
	}
	cost, err := calc.TotalCostBasis(positions)
	if err != nil {
		return Summary{}, err
	}
	roi, err := calc.AggregateROI(positions, at)
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{
		Pair:           pair.String(),
		Price:          at,
		Count:          len(positions),
		TotalValue:     value,
		TotalCostBasis: cost,
		AggregateROI:   roi,
	}
	if avg, avgErr := calc.WeightedAveragePrice(positions); avgErr == nil {
		sum.WeightedAveragePrice = &avg
	}
	return sum, nil
}

// RecordMark stores price as the latest mark of the pair.
func (s *Service) RecordMark(ctx context.Context, pairSpec string, price decimal.Decimal) (quote.Price, error) {
	pair, err := s.pairs.Resolve(pairSpec)
	if err != nil {
		return quote.Price{}, err
	}
	if !price.IsPositive() {
		return quote.Price{}, fmt.Errorf("%w: mark price must be positive, got %s", quote.ErrValidation, price)
	}
	mark := pair.CreatePrice(price)
	if err = s.marks.Upsert(ctx, domain.Mark{Pair: pair.String(), Price: price, UpdatedAt: s.now().UTC()}); err != nil {
		return quote.Price{}, fmt.Errorf("failed to store mark for %s: %w", pair, err)
	}
	return mark, nil
}

func (s *Service) fromRecord(rec domain.PositionRecord) (Position, error) {
	pair, err := s.pairs.Resolve(rec.Pair)
	if err != nil {
		return Position{}, err
	}
	return FromRecord(pair, rec)
}

func NewService(positions adapters.PositionRepository, marks adapters.MarkRepository, pairs *Pairs) *Service {
	return &Service{positions: positions, marks: marks, pairs: pairs, now: time.Now}
}
