package postgres

import (
	"context"
	"errors"
	"fmt"

	"tradequotes/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type MarkRepository struct {
	pool *pgxpool.Pool
}

func (r *MarkRepository) Upsert(ctx context.Context, mark domain.Mark) error {
	const q = `
		insert into pair_marks (pair, price, updated_at)
		values ($1, $2::numeric, $3)
		on conflict (pair) do update
		set price = excluded.price, updated_at = excluded.updated_at;
	`

	if _, err := r.pool.Exec(ctx, q, mark.Pair, mark.Price.String(), mark.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert mark for %q: %w", mark.Pair, err)
	}
	return nil
}

func (r *MarkRepository) Get(ctx context.Context, pair string) (domain.Mark, error) {
	const q = `select pair, price::text, updated_at from pair_marks where pair = $1;`

	var (
		mark  domain.Mark
		price string
	)
	if err := r.pool.QueryRow(ctx, q, pair).Scan(&mark.Pair, &price, &mark.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Mark{}, domain.ErrMarkNotFound
		}
		return domain.Mark{}, fmt.Errorf("failed to select mark for %q: %w", pair, err)
	}

	var err error
	if mark.Price, err = decimal.NewFromString(price); err != nil {
		return domain.Mark{}, fmt.Errorf("failed to parse mark price %q: %w", price, err)
	}
	return mark, nil
}

func NewMarkRepository(pool *pgxpool.Pool) *MarkRepository {
	return &MarkRepository{pool: pool}
}
