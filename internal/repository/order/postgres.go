package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"velaluz/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id::text, created_at, channel, status,
customer_name, customer_email, customer_phone, COALESCE(customer_nif, ''),
address, city, zip_code,
COALESCE(billing_address, ''), COALESCE(billing_city, ''), COALESCE(billing_zip_code, ''),
shipping_method, shipping_cost_cents,
payment_method, total_amount_cents, COALESCE(applied_promotion_code, ''), discount_amount_cents,
without_box, without_card, invoice_issued,
is_gift, COALESCE(gift_message, ''), COALESCE(gift_from_name, ''), COALESCE(gift_to_name, '')`

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

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO orders (channel, status, customer_name, customer_email, customer_phone, customer_nif,
                    address, city, zip_code, billing_address, billing_city, billing_zip_code,
                    shipping_method, shipping_cost_cents, payment_method, total_amount_cents,
                    applied_promotion_code, discount_amount_cents, without_box, without_card,
                    invoice_issued, is_gift, gift_message, gift_from_name, gift_to_name)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''),
        $13, $14, $15, $16, NULLIF($17, ''), $18, $19, $20, $21, $22, NULLIF($23, ''), NULLIF($24, ''), NULLIF($25, ''))
RETURNING id::text, created_at, status
`
	created := o
	if err := tx.QueryRow(ctx, q,
		string(o.Channel), string(o.Status),
		o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.CustomerNIF,
		o.Address, o.City, o.ZipCode,
		o.BillingAddress, o.BillingCity, o.BillingZipCode,
		o.ShippingMethod, o.ShippingCostCents, o.PaymentMethod, o.TotalAmountCents,
		o.AppliedPromotionCode, o.DiscountAmountCents,
		o.WithoutBox, o.WithoutCard, o.InvoiceIssued,
		o.IsGift, o.GiftMessage, o.GiftFromName, o.GiftToName,
	).Scan(&created.ID, &created.CreatedAt, (*string)(&created.Status)); err != nil {
		r.logger.Printf("order repo: create error=%v", err)
		return nil, err
	}

	const itemQ = `
INSERT INTO order_items (order_id, product_id, product_name, sku, price_cents, quantity)
VALUES ($1, NULLIF($2, '')::uuid, $3, NULLIF($4, ''), $5, $6)
`
	for _, item := range o.Items {
		if _, err := tx.Exec(ctx, itemQ, created.ID, item.ProductID, item.ProductName, item.SKU, item.PriceCents, item.Quantity); err != nil {
			r.logger.Printf("order repo: create item product=%s error=%v", item.ProductID, err)
			return nil, err
		}
	}

	if code := strings.TrimSpace(o.AppliedPromotionCode); code != "" {
		if _, err := tx.Exec(ctx, `UPDATE promotions SET used_count = used_count + 1 WHERE code = UPPER($1)`, code); err != nil {
			r.logger.Printf("order repo: bump promotion code=%s error=%v", code, err)
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	r.logger.Printf("order repo: created id=%s total_cents=%d items=%d", created.ID, created.TotalAmountCents, len(o.Items))
	return &created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}
	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.list(ctx, q)
}

func (r *postgresRepo) ListByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE LOWER(customer_email) = LOWER($1) ORDER BY created_at DESC`
	return r.list(ctx, q, email)
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows error=%v", err)
		return nil, err
	}
	for i := range result {
		if err := r.loadItems(ctx, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) SetInvoiceIssued(ctx context.Context, id string, issued bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET invoice_issued = $2 WHERE id = $1`, id, issued)
	if err != nil {
		r.logger.Printf("order repo: set invoice id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) loadItems(ctx context.Context, o *domain.Order) error {
	const q = `
SELECT COALESCE(product_id::text, ''), product_name, COALESCE(sku, ''), price_cents, quantity
FROM order_items
WHERE order_id = $1
`
	rows, err := r.pool.Query(ctx, q, o.ID)
	if err != nil {
		r.logger.Printf("order repo: load items order=%s error=%v", o.ID, err)
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.SKU, &item.PriceCents, &item.Quantity); err != nil {
			return err
		}
		o.Items = append(o.Items, item)
	}
	return rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var channel, status string
	if err := row.Scan(
		&o.ID, &o.CreatedAt, &channel, &status,
		&o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.CustomerNIF,
		&o.Address, &o.City, &o.ZipCode,
		&o.BillingAddress, &o.BillingCity, &o.BillingZipCode,
		&o.ShippingMethod, &o.ShippingCostCents,
		&o.PaymentMethod, &o.TotalAmountCents, &o.AppliedPromotionCode, &o.DiscountAmountCents,
		&o.WithoutBox, &o.WithoutCard, &o.InvoiceIssued,
		&o.IsGift, &o.GiftMessage, &o.GiftFromName, &o.GiftToName,
	); err != nil {
		return nil, err
	}
	o.Channel = domain.OrderChannel(channel)
	o.Status = domain.OrderStatus(status)
	return &o, nil
}
