package domain

import "time"

type Product struct {
	ID             string    `json:"id"`
	SKU            string    `json:"sku"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	PriceCents     int64     `json:"priceCents"`
	SalePriceCents *int64    `json:"salePriceCents,omitempty"`
	Stock          int       `json:"stock"`
	WeightGrams    int       `json:"weightGrams"`
	BurnTime       string    `json:"burnTime,omitempty"`
	Intensity      int       `json:"intensity,omitempty"`
	TopNote        string    `json:"topNote,omitempty"`
	HeartNote      string    `json:"heartNote,omitempty"`
	BaseNote       string    `json:"baseNote,omitempty"`
	Featured       bool      `json:"featured"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

// EffectivePriceCents is the price charged in the cart: the sale price when
// one is set, the regular price otherwise.
func (p Product) EffectivePriceCents() int64 {
	if p.SalePriceCents != nil && *p.SalePriceCents > 0 {
		return *p.SalePriceCents
	}
	return p.PriceCents
}
