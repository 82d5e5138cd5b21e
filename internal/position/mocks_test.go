package position

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tradequotes/internal/domain"
	"tradequotes/internal/quote"
)

// --- Testify mocks ---

type MockPositionRepository struct{ mock.Mock }

func (m *MockPositionRepository) Create(ctx context.Context, rec domain.PositionRecord) (int64, error) {
	args := m.Called(ctx, rec)
	id, _ := args.Get(0).(int64)
	return id, args.Error(1)
}

func (m *MockPositionRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.PositionRecord, error) {
	args := m.Called(ctx, id)
	rec, _ := args.Get(0).(domain.PositionRecord)
	return rec, args.Error(1)
}

func (m *MockPositionRepository) ListByPair(ctx context.Context, pair string) ([]domain.PositionRecord, error) {
	args := m.Called(ctx, pair)
	recs, _ := args.Get(0).([]domain.PositionRecord)
	return recs, args.Error(1)
}

func (m *MockPositionRepository) ListAll(ctx context.Context) ([]domain.PositionRecord, error) {
	args := m.Called(ctx)
	recs, _ := args.Get(0).([]domain.PositionRecord)
	return recs, args.Error(1)
}

func (m *MockPositionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPositionRepository) UpdateExpectedSalePrices(ctx context.Context, updates []domain.SalePriceUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

type MockMarkRepository struct{ mock.Mock }

func (m *MockMarkRepository) Upsert(ctx context.Context, mark domain.Mark) error {
	args := m.Called(ctx, mark)
	return args.Error(0)
}

func (m *MockMarkRepository) Get(ctx context.Context, pair string) (domain.Mark, error) {
	args := m.Called(ctx, pair)
	mark, _ := args.Get(0).(domain.Mark)
	return mark, args.Error(1)
}

// mapPairCache is an in-memory PairCache.
type mapPairCache struct {
	mu    sync.Mutex
	pairs map[string]quote.BotPair
}

func newMapPairCache() *mapPairCache {
	return &mapPairCache{pairs: map[string]quote.BotPair{}}
}

func (c *mapPairCache) Get(spec string) (quote.BotPair, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pairs[spec]
	return p, ok
}

func (c *mapPairCache) Set(spec string, pair quote.BotPair) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pairs[spec] = pair
}
