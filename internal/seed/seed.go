package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	SKU         string
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	WeightGrams int
	BurnTime    string
	Intensity   int
	TopNote     string
	HeartNote   string
	BaseNote    string
	Featured    bool
}

type shippingSeed struct {
	Name         string
	Description  string
	PriceCents   int64
	DisplayOrder int
}

type promotionSeed struct {
	Code          string
	Description   string
	DiscountType  string
	DiscountValue int64
	MinOrderCents int64
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			SKU:         "VL-LAV-200",
			Name:        "Vela de Lavanda",
			Description: "Vela artesanal de cera de soja com óleo essencial de lavanda",
			PriceCents:  1450,
			Stock:       24,
			WeightGrams: 320,
			BurnTime:    "40h",
			Intensity:   3,
			TopNote:     "Lavanda",
			HeartNote:   "Alecrim",
			BaseNote:    "Almíscar",
			Featured:    true,
		},
		{
			SKU:         "VL-BAU-150",
			Name:        "Vela de Baunilha",
			Description: "Aroma quente de baunilha e caramelo",
			PriceCents:  1200,
			Stock:       30,
			WeightGrams: 260,
			BurnTime:    "32h",
			Intensity:   4,
			TopNote:     "Baunilha",
			HeartNote:   "Caramelo",
			BaseNote:    "Sândalo",
		},
		{
			SKU:         "VL-FIG-250",
			Name:        "Vela de Figo Selvagem",
			Description: "Edição limitada de outono",
			PriceCents:  1800,
			Stock:       12,
			WeightGrams: 400,
			BurnTime:    "48h",
			Intensity:   2,
			TopNote:     "Figo",
			HeartNote:   "Folha verde",
			BaseNote:    "Cedro",
		},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.SKU, err)
		}
	}

	methods := []shippingSeed{
		{Name: "Correio Registado", Description: "3-5 dias úteis", PriceCents: 350, DisplayOrder: 1},
		{Name: "Correio Expresso", Description: "1-2 dias úteis", PriceCents: 550, DisplayOrder: 2},
		{Name: "Recolha em Loja", Description: "Levantamento no atelier", PriceCents: 0, DisplayOrder: 3},
	}
	for _, m := range methods {
		if err := upsertShippingMethod(ctx, pool, m); err != nil {
			return fmt.Errorf("upsert shipping %q: %w", m.Name, err)
		}
	}

	promotions := []promotionSeed{
		{Code: "BEMVINDO10", Description: "10% para novos clientes", DiscountType: "PERCENTAGE", DiscountValue: 10},
		{Code: "PORTESGRATIS", Description: "Portes grátis", DiscountType: "FREE_SHIPPING", MinOrderCents: 2500},
		{Code: "NATAL5", Description: "5 EUR de desconto", DiscountType: "FIXED_AMOUNT", DiscountValue: 500, MinOrderCents: 3000},
	}
	for _, p := range promotions {
		if err := upsertPromotion(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert promotion %s: %w", p.Code, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (sku, name, description, price_cents, stock, weight_grams, burn_time, intensity, top_note, heart_note, base_note, featured, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, TRUE)
ON CONFLICT (sku) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    stock = EXCLUDED.stock
`
	_, err := pool.Exec(ctx, q, p.SKU, p.Name, p.Description, p.PriceCents, p.Stock, p.WeightGrams,
		p.BurnTime, p.Intensity, p.TopNote, p.HeartNote, p.BaseNote, p.Featured)
	return err
}

func upsertShippingMethod(ctx context.Context, pool *pgxpool.Pool, m shippingSeed) error {
	const q = `
INSERT INTO shipping_methods (name, description, price_cents, display_order, active)
SELECT $1, $2, $3, $4, TRUE
WHERE NOT EXISTS (SELECT 1 FROM shipping_methods WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, m.Name, m.Description, m.PriceCents, m.DisplayOrder)
	return err
}

func upsertPromotion(ctx context.Context, pool *pgxpool.Pool, p promotionSeed) error {
	const q = `
INSERT INTO promotions (code, description, discount_type, discount_value, min_order_amount_cents, active)
VALUES ($1, $2, $3, $4, $5, TRUE)
ON CONFLICT (code) DO UPDATE SET
    description = EXCLUDED.description,
    discount_type = EXCLUDED.discount_type,
    discount_value = EXCLUDED.discount_value,
    min_order_amount_cents = EXCLUDED.min_order_amount_cents
`
	_, err := pool.Exec(ctx, q, p.Code, p.Description, p.DiscountType, p.DiscountValue, p.MinOrderCents)
	return err
}
