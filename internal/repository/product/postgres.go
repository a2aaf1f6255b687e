package product

import (
	"context"
	"errors"
	"io"
	"log"

	"velaluz/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id::text, sku, name, COALESCE(description, ''), price_cents, sale_price_cents, stock, weight_grams, COALESCE(burn_time, ''), intensity, COALESCE(top_note, ''), COALESCE(heart_note, ''), COALESCE(base_note, ''), featured, active, created_at`

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

func (r *postgresRepo) List(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	if activeOnly {
		q = `SELECT ` + productColumns + ` FROM products WHERE active ORDER BY featured DESC, created_at DESC`
	}
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (sku, name, description, price_cents, sale_price_cents, stock, weight_grams, burn_time, intensity, top_note, heart_note, base_note, featured, active)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, NULLIF($8, ''), $9, NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), $13, $14)
RETURNING ` + productColumns
	created, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.SKU, p.Name, p.Description, p.PriceCents, p.SalePriceCents, p.Stock, p.WeightGrams,
		p.BurnTime, p.Intensity, p.TopNote, p.HeartNote, p.BaseNote, p.Featured, p.Active))
	if err != nil {
		r.logger.Printf("product repo: create sku=%s error=%v", p.SKU, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s sku=%s", created.ID, created.SKU)
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET sku = $2,
    name = $3,
    description = NULLIF($4, ''),
    price_cents = $5,
    sale_price_cents = $6,
    stock = $7,
    weight_grams = $8,
    burn_time = NULLIF($9, ''),
    intensity = $10,
    top_note = NULLIF($11, ''),
    heart_note = NULLIF($12, ''),
    base_note = NULLIF($13, ''),
    featured = $14,
    active = $15
WHERE id = $1
RETURNING ` + productColumns
	updated, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.ID, p.SKU, p.Name, p.Description, p.PriceCents, p.SalePriceCents, p.Stock, p.WeightGrams,
		p.BurnTime, p.Intensity, p.TopNote, p.HeartNote, p.BaseNote, p.Featured, p.Active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.PriceCents, &p.SalePriceCents,
		&p.Stock, &p.WeightGrams, &p.BurnTime, &p.Intensity,
		&p.TopNote, &p.HeartNote, &p.BaseNote, &p.Featured, &p.Active, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
