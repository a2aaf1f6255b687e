package shipping

import (
	"context"
	"errors"
	"io"
	"log"

	"velaluz/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const methodColumns = `id::text, name, COALESCE(description, ''), price_cents, free_shipping_threshold_cents, min_weight_grams, max_weight_grams, active, display_order`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) ListActive(ctx context.Context) ([]domain.ShippingMethod, error) {
	q := `SELECT ` + methodColumns + ` FROM shipping_methods WHERE active ORDER BY display_order, name`
	return r.list(ctx, q)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.ShippingMethod, error) {
	q := `SELECT ` + methodColumns + ` FROM shipping_methods ORDER BY display_order, name`
	return r.list(ctx, q)
}

func (r *postgresRepo) list(ctx context.Context, q string) ([]domain.ShippingMethod, error) {
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("shipping repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.ShippingMethod
	for rows.Next() {
		m, err := scanMethod(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("shipping repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.ShippingMethod, error) {
	q := `SELECT ` + methodColumns + ` FROM shipping_methods WHERE id = $1`
	m, err := scanMethod(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("shipping repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return m, nil
}

func (r *postgresRepo) Create(ctx context.Context, m domain.ShippingMethod) (*domain.ShippingMethod, error) {
	const q = `
INSERT INTO shipping_methods (name, description, price_cents, free_shipping_threshold_cents, min_weight_grams, max_weight_grams, active, display_order)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)
RETURNING ` + methodColumns
	created, err := scanMethod(r.pool.QueryRow(ctx, q,
		m.Name, m.Description, m.PriceCents, m.FreeShippingThresholdCents,
		m.MinWeightGrams, m.MaxWeightGrams, m.Active, m.DisplayOrder))
	if err != nil {
		r.logger.Printf("shipping repo: create name=%q error=%v", m.Name, err)
		return nil, err
	}
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, m domain.ShippingMethod) (*domain.ShippingMethod, error) {
	const q = `
UPDATE shipping_methods
SET name = $2,
    description = NULLIF($3, ''),
    price_cents = $4,
    free_shipping_threshold_cents = $5,
    min_weight_grams = $6,
    max_weight_grams = $7,
    active = $8,
    display_order = $9
WHERE id = $1
RETURNING ` + methodColumns
	updated, err := scanMethod(r.pool.QueryRow(ctx, q,
		m.ID, m.Name, m.Description, m.PriceCents, m.FreeShippingThresholdCents,
		m.MinWeightGrams, m.MaxWeightGrams, m.Active, m.DisplayOrder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("shipping repo: update id=%s error=%v", m.ID, err)
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shipping_methods WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("shipping repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMethod(row pgx.Row) (*domain.ShippingMethod, error) {
	var m domain.ShippingMethod
	if err := row.Scan(
		&m.ID, &m.Name, &m.Description, &m.PriceCents, &m.FreeShippingThresholdCents,
		&m.MinWeightGrams, &m.MaxWeightGrams, &m.Active, &m.DisplayOrder,
	); err != nil {
		return nil, err
	}
	return &m, nil
}
