package promotion

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"velaluz/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const promotionColumns = `id::text, code, COALESCE(description, ''), discount_type, discount_value, min_order_amount_cents, usage_limit, used_count, start_date, end_date, active`

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Promotion, error) {
	q := `SELECT ` + promotionColumns + ` FROM promotions ORDER BY code`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("promotion repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("promotion repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Promotion, error) {
	q := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`
	return r.getOne(ctx, q, id)
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	q := `SELECT ` + promotionColumns + ` FROM promotions WHERE code = $1`
	return r.getOne(ctx, q, strings.ToUpper(strings.TrimSpace(code)))
}

func (r *postgresRepo) getOne(ctx context.Context, q, arg string) (*domain.Promotion, error) {
	p, err := scanPromotion(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("promotion repo: get %s error=%v", arg, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Promotion) (*domain.Promotion, error) {
	const q = `
INSERT INTO promotions (code, description, discount_type, discount_value, min_order_amount_cents, usage_limit, start_date, end_date, active)
VALUES (UPPER($1), NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + promotionColumns
	created, err := scanPromotion(r.pool.QueryRow(ctx, q,
		p.Code, p.Description, string(p.DiscountType), p.DiscountValue,
		p.MinOrderAmountCents, p.UsageLimit, p.StartDate, p.EndDate, p.Active))
	if err != nil {
		r.logger.Printf("promotion repo: create code=%s error=%v", p.Code, err)
		return nil, err
	}
	r.logger.Printf("promotion repo: created id=%s code=%s", created.ID, created.Code)
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Promotion) (*domain.Promotion, error) {
	const q = `
UPDATE promotions
SET code = UPPER($2),
    description = NULLIF($3, ''),
    discount_type = $4,
    discount_value = $5,
    min_order_amount_cents = $6,
    usage_limit = $7,
    start_date = $8,
    end_date = $9,
    active = $10
WHERE id = $1
RETURNING ` + promotionColumns
	updated, err := scanPromotion(r.pool.QueryRow(ctx, q,
		p.ID, p.Code, p.Description, string(p.DiscountType), p.DiscountValue,
		p.MinOrderAmountCents, p.UsageLimit, p.StartDate, p.EndDate, p.Active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("promotion repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE promotions SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		r.logger.Printf("promotion repo: set active id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) IncrementUsage(ctx context.Context, code string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE promotions SET used_count = used_count + 1 WHERE code = UPPER($1)`, code)
	if err != nil {
		r.logger.Printf("promotion repo: increment usage code=%s error=%v", code, err)
	}
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("promotion repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPromotion(row pgx.Row) (*domain.Promotion, error) {
	var p domain.Promotion
	var discountType string
	if err := row.Scan(
		&p.ID, &p.Code, &p.Description, &discountType, &p.DiscountValue,
		&p.MinOrderAmountCents, &p.UsageLimit, &p.UsedCount,
		&p.StartDate, &p.EndDate, &p.Active,
	); err != nil {
		return nil, err
	}
	p.DiscountType = domain.DiscountType(discountType)
	return &p, nil
}
