package domain

// ShippingMethod is an immutable snapshot of a delivery option. The shop side
// only reads these; admin CRUD replaces whole rows.
type ShippingMethod struct {
	ID                         string `json:"id"`
	Name                       string `json:"name"`
	Description                string `json:"description"`
	PriceCents                 int64  `json:"priceCents"`
	FreeShippingThresholdCents *int64 `json:"freeShippingThresholdCents,omitempty"`
	MinWeightGrams             int    `json:"minWeightGrams"`
	MaxWeightGrams             int    `json:"maxWeightGrams"`
	Active                     bool   `json:"active"`
	DisplayOrder               int    `json:"displayOrder"`
}
