package domain

import "time"

type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
	DiscountFreeShip    DiscountType = "FREE_SHIPPING"
)

type Promotion struct {
	ID                  string       `json:"id"`
	Code                string       `json:"code"`
	Description         string       `json:"description,omitempty"`
	DiscountType        DiscountType `json:"discountType"`
	DiscountValue       int64        `json:"discountValue"`
	MinOrderAmountCents int64        `json:"minOrderAmountCents"`
	UsageLimit          *int         `json:"usageLimit,omitempty"`
	UsedCount           int          `json:"usedCount"`
	StartDate           *time.Time   `json:"startDate,omitempty"`
	EndDate             *time.Time   `json:"endDate,omitempty"`
	Active              bool         `json:"active"`
}

// Redeemable reports whether the promotion can be applied at the given time.
// It checks the active flag, the validity window and the usage counter, not
// the order amount (that depends on the cart and is checked at apply time).
func (p Promotion) Redeemable(now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.StartDate != nil && now.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && now.After(*p.EndDate) {
		return false
	}
	if p.UsageLimit != nil && p.UsedCount >= *p.UsageLimit {
		return false
	}
	return true
}
