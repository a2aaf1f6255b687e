package checkout

import (
	"strings"

	"velaluz/internal/domain"
)

// freeShippingSubtotalCents is the subtotal at which eligible methods ship
// free (50.00 in the shop's currency).
const freeShippingSubtotalCents = 5000

// freeShippingNameFragment marks which methods the subtotal rule applies to.
// Eligibility keys off the display name, matching the shop's live rule.
const freeShippingNameFragment = "registado"

// Session is the explicitly owned checkout state for one shopper: the
// selected shipping method and the applied coupon. The cart itself lives in
// its own snapshot store; totals are derived from the subtotal on demand and
// never persisted.
type Session struct {
	SelectedMethod *domain.ShippingMethod `json:"selectedMethod,omitempty"`
	Promotion      *domain.Promotion      `json:"promotion,omitempty"`
	CouponCode     string                 `json:"couponCode,omitempty"`
	DiscountCents  int64                  `json:"discountCents"`
	// ReapplyCoupon is set when a shipping change invalidated a
	// FREE_SHIPPING coupon and the shopper should apply it again.
	ReapplyCoupon bool `json:"reapplyCoupon,omitempty"`
}

// ShippingCostCents returns the effective shipping cost for the given cart
// subtotal: zero with no selection, zero when the subtotal reaches the
// free-shipping threshold and the method is name-eligible, the listed price
// otherwise.
func (s Session) ShippingCostCents(subtotalCents int64) int64 {
	if s.SelectedMethod == nil {
		return 0
	}
	if subtotalCents >= freeShippingSubtotalCents &&
		strings.Contains(strings.ToLower(s.SelectedMethod.Name), freeShippingNameFragment) {
		return 0
	}
	return s.SelectedMethod.PriceCents
}

// TotalCents is the payable amount: max(0, subtotal + shipping - discount).
func (s Session) TotalCents(subtotalCents int64) int64 {
	total := subtotalCents + s.ShippingCostCents(subtotalCents) - s.DiscountCents
	if total < 0 {
		return 0
	}
	return total
}

// SelectShipping sets the current method. A FREE_SHIPPING coupon applied
// against the previous method is stale, so it is dropped and the session
// flags a re-apply prompt.
func (s *Session) SelectShipping(method domain.ShippingMethod) {
	s.SelectedMethod = &method
	if s.Promotion != nil && s.Promotion.DiscountType == domain.DiscountFreeShip {
		s.RemoveCoupon()
		s.ReapplyCoupon = true
	}
}

// ApplyPromotion evaluates the promotion against the given subtotal. Any
// previously applied coupon is superseded; promotions never stack.
func (s *Session) ApplyPromotion(promo domain.Promotion, subtotalCents int64) error {
	s.RemoveCoupon()

	if subtotalCents < promo.MinOrderAmountCents {
		return domain.ErrCouponMinOrder
	}

	shippingCents := s.ShippingCostCents(subtotalCents)
	var discount int64
	switch promo.DiscountType {
	case domain.DiscountPercentage:
		discount = roundHalfUpPercent(subtotalCents, promo.DiscountValue)
	case domain.DiscountFixedAmount:
		discount = promo.DiscountValue
	case domain.DiscountFreeShip:
		discount = shippingCents
	default:
		return domain.ErrCouponInvalid
	}

	// Never discount past the payable amount.
	if limit := subtotalCents + shippingCents; discount > limit {
		discount = limit
	}

	s.Promotion = &promo
	s.CouponCode = promo.Code
	s.DiscountCents = discount
	return nil
}

// RemoveCoupon resets the coupon state. It is idempotent.
func (s *Session) RemoveCoupon() {
	s.Promotion = nil
	s.CouponCode = ""
	s.DiscountCents = 0
	s.ReapplyCoupon = false
}

func roundHalfUpPercent(amountCents, percent int64) int64 {
	return (amountCents*percent + 50) / 100
}
