package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"tradequotes/internal/adapters/postgres"
	"tradequotes/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const migrationsDir = "../../platform/db/migrations"

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, resetDatabase(ctx, pool))

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return db.PingContext(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, db, migrationsDir))

	pgContainer = pg
	pgConnStr = dsn
}

func resetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `truncate table positions, pair_marks restart identity cascade`); err != nil {
		return err
	}
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newRecord(pair string) domain.PositionRecord {
	return domain.PositionRecord{
		ID:                uuid.New(),
		Pair:              pair,
		PurchasePrice:     dec("50000.123456789"),
		NumberOfTokens:    dec("0.12345678"),
		ExpectedSalePrice: dec("52000"),
		NextPurchasePrice: dec("48000"),
		Variations:        map[string]decimal.Decimal{"buy": dec("0.02"), "sell": dec("0.025")},
		StrategyTag:       "default",
		Notes:             "integration",
		OpenedAt:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// ---------- PositionRepository tests ----------

func TestPositionRepository_CreateAndGet_KeepsExactDecimals(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPositionRepository(pool)
	ctx := context.Background()

	rec := newRecord("BTC/USDT")
	shortID, err := repo.Create(ctx, rec)
	require.NoError(t, err)
	require.Equal(t, int64(1), shortID)

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec.ID, got.ID)
	require.Equal(t, shortID, got.ShortID)
	require.Equal(t, "BTC/USDT", got.Pair)
	require.Equal(t, "50000.123456789", got.PurchasePrice.String())
	require.Equal(t, "0.12345678", got.NumberOfTokens.String())
	require.True(t, dec("0.025").Equal(got.Variations["sell"]))
	require.Equal(t, "integration", got.Notes)
	require.True(t, rec.OpenedAt.Equal(got.OpenedAt))
}

func TestPositionRepository_GetByID_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPositionRepository(pool)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrPositionNotFound)
}

func TestPositionRepository_ListByPairAndAll(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPositionRepository(pool)
	ctx := context.Background()

	for _, pair := range []string{"BTC/USDT", "ETH/USDT", "BTC/USDT"} {
		_, err := repo.Create(ctx, newRecord(pair))
		require.NoError(t, err)
	}

	btc, err := repo.ListByPair(ctx, "BTC/USDT")
	require.NoError(t, err)
	require.Len(t, btc, 2)
	require.Less(t, btc[0].ShortID, btc[1].ShortID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	none, err := repo.ListByPair(ctx, "SOL/USDT")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestPositionRepository_Delete(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPositionRepository(pool)
	ctx := context.Background()

	rec := newRecord("BTC/USDT")
	_, err := repo.Create(ctx, rec)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, rec.ID))
	require.ErrorIs(t, repo.Delete(ctx, rec.ID), domain.ErrPositionNotFound)

	_, err = repo.GetByID(ctx, rec.ID)
	require.ErrorIs(t, err, domain.ErrPositionNotFound)
}

func TestPositionRepository_UpdateExpectedSalePrices(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPositionRepository(pool)
	ctx := context.Background()

	moved := newRecord("BTC/USDT")
	kept := newRecord("BTC/USDT")
	for _, rec := range []domain.PositionRecord{moved, kept} {
		_, err := repo.Create(ctx, rec)
		require.NoError(t, err)
	}

	require.NoError(t, repo.UpdateExpectedSalePrices(ctx, nil))
	require.NoError(t, repo.UpdateExpectedSalePrices(ctx, []domain.SalePriceUpdate{
		{ID: moved.ID, ExpectedSalePrice: dec("53900.5")},
	}))

	got, err := repo.GetByID(ctx, moved.ID)
	require.NoError(t, err)
	require.Equal(t, "53900.5", got.ExpectedSalePrice.String())

	got, err = repo.GetByID(ctx, kept.ID)
	require.NoError(t, err)
	require.Equal(t, "52000", got.ExpectedSalePrice.String())
}

// ---------- MarkRepository tests ----------

func TestMarkRepository_GetMissing(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewMarkRepository(pool)

	_, err := repo.Get(context.Background(), "BTC/USDT")
	require.ErrorIs(t, err, domain.ErrMarkNotFound)
}

func TestMarkRepository_UpsertOverwrites(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewMarkRepository(pool)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Upsert(ctx, domain.Mark{Pair: "BTC/USDT", Price: dec("50000.1"), UpdatedAt: at}))
	require.NoError(t, repo.Upsert(ctx, domain.Mark{Pair: "BTC/USDT", Price: dec("51000.25"), UpdatedAt: at.Add(time.Minute)}))

	mark, err := repo.Get(ctx, "BTC/USDT")
	require.NoError(t, err)
	require.Equal(t, "51000.25", mark.Price.String())
	require.True(t, at.Add(time.Minute).Equal(mark.UpdatedAt))
}
