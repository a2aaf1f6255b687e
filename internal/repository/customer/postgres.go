package customer

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

const customerColumns = `id::text, name, email, COALESCE(phone, ''), COALESCE(nif, ''), COALESCE(address, ''), COALESCE(city, ''), COALESCE(zip_code, ''), created_at`

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

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	q := `SELECT ` + customerColumns + ` FROM customers WHERE LOWER(email) = LOWER($1)`
	c, err := scanCustomer(r.pool.QueryRow(ctx, q, strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: get email=%s error=%v", email, err)
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) UpsertProfile(ctx context.Context, email string, in UpdateProfileInput) (*domain.Customer, error) {
	name := ""
	if in.Name != nil {
		name = *in.Name
	}
	const q = `
INSERT INTO customers (name, email, phone, nif, address, city, zip_code)
VALUES (COALESCE(NULLIF($2, ''), $1), LOWER($1), $3, $4, $5, $6, $7)
ON CONFLICT (email) DO UPDATE SET
    name = COALESCE(NULLIF(EXCLUDED.name, ''), customers.name),
    phone = COALESCE(EXCLUDED.phone, customers.phone),
    nif = COALESCE(EXCLUDED.nif, customers.nif),
    address = COALESCE(EXCLUDED.address, customers.address),
    city = COALESCE(EXCLUDED.city, customers.city),
    zip_code = COALESCE(EXCLUDED.zip_code, customers.zip_code)
RETURNING ` + customerColumns
	c, err := scanCustomer(r.pool.QueryRow(ctx, q,
		strings.TrimSpace(email), name, in.Phone, in.NIF, in.Address, in.City, in.ZipCode))
	if err != nil {
		r.logger.Printf("customer repo: upsert email=%s error=%v", email, err)
		return nil, err
	}
	r.logger.Printf("customer repo: upserted id=%s email=%s", c.ID, c.Email)
	return c, nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.NIF, &c.Address, &c.City, &c.ZipCode, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
