package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tradequotes/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PositionRepository struct {
	pool *pgxpool.Pool
}

const positionColumns = `
	id, short_id, pair,
	purchase_price::text, number_of_tokens::text,
	expected_sale_price::text, next_purchase_price::text,
	variations, strategy_tag, notes, opened_at`

func (r *PositionRepository) Create(ctx context.Context, rec domain.PositionRecord) (int64, error) {
	const q = `
		insert into positions (
			id, pair, purchase_price, number_of_tokens,
			expected_sale_price, next_purchase_price,
			variations, strategy_tag, notes, opened_at
		)
		values ($1, $2, $3::numeric, $4::numeric, $5::numeric, $6::numeric, $7::jsonb, $8, $9, $10)
		returning short_id;
	`

	variations, err := json.Marshal(rec.Variations)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal variations: %w", err)
	}

	var shortID int64
	err = r.pool.QueryRow(ctx, q,
		rec.ID,
		rec.Pair,
		rec.PurchasePrice.String(),
		rec.NumberOfTokens.String(),
		rec.ExpectedSalePrice.String(),
		rec.NextPurchasePrice.String(),
		string(variations),
		rec.StrategyTag,
		rec.Notes,
		rec.OpenedAt,
	).Scan(&shortID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert position %s: %w", rec.ID, err)
	}
	return shortID, nil
}

func (r *PositionRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.PositionRecord, error) {
	q := `select ` + positionColumns + ` from positions where id = $1;`

	rec, err := scanPosition(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PositionRecord{}, domain.ErrPositionNotFound
		}
		return domain.PositionRecord{}, fmt.Errorf("failed to select position %s: %w", id, err)
	}
	return rec, nil
}

func (r *PositionRepository) ListByPair(ctx context.Context, pair string) ([]domain.PositionRecord, error) {
	q := `select ` + positionColumns + ` from positions where pair = $1 order by short_id;`
	return r.list(ctx, q, pair)
}

func (r *PositionRepository) ListAll(ctx context.Context) ([]domain.PositionRecord, error) {
	q := `select ` + positionColumns + ` from positions order by short_id;`
	return r.list(ctx, q)
}

func (r *PositionRepository) list(ctx context.Context, q string, args ...any) ([]domain.PositionRecord, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	recs := make([]domain.PositionRecord, 0, 16)
	for rows.Next() {
		rec, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		recs = append(recs, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating positions: %w", err)
	}
	return recs, nil
}

func (r *PositionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `delete from positions where id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPositionNotFound
	}
	return nil
}

func (r *PositionRepository) UpdateExpectedSalePrices(ctx context.Context, updates []domain.SalePriceUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	payloadJSON, err := json.Marshal(updates)
	if err != nil {
		return fmt.Errorf("failed to marshal sale price updates: %w", err)
	}

	const q = `
		with input_rows as (
		  select * from json_to_recordset($1::json) as r(id uuid, expected_sale_price numeric)
		)
		update positions p
		set expected_sale_price = ir.expected_sale_price
		from input_rows ir
		where p.id = ir.id;
	`

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, q, string(payloadJSON)); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func scanPosition(row pgx.Row) (domain.PositionRecord, error) {
	var (
		rec                                      domain.PositionRecord
		purchase, tokens, expected, nextPurchase string
		variations                               []byte
	)
	if err := row.Scan(
		&rec.ID,
		&rec.ShortID,
		&rec.Pair,
		&purchase,
		&tokens,
		&expected,
		&nextPurchase,
		&variations,
		&rec.StrategyTag,
		&rec.Notes,
		&rec.OpenedAt,
	); err != nil {
		return domain.PositionRecord{}, err
	}

	var err error
	if rec.PurchasePrice, err = decimal.NewFromString(purchase); err != nil {
		return domain.PositionRecord{}, err
	}
	if rec.NumberOfTokens, err = decimal.NewFromString(tokens); err != nil {
		return domain.PositionRecord{}, err
	}
	if rec.ExpectedSalePrice, err = decimal.NewFromString(expected); err != nil {
		return domain.PositionRecord{}, err
	}
	if rec.NextPurchasePrice, err = decimal.NewFromString(nextPurchase); err != nil {
		return domain.PositionRecord{}, err
	}
	if err = json.Unmarshal(variations, &rec.Variations); err != nil {
		return domain.PositionRecord{}, fmt.Errorf("failed to decode variations: %w", err)
	}
	return rec, nil
}

func NewPositionRepository(pool *pgxpool.Pool) *PositionRepository {
	return &PositionRepository{pool: pool}
}
