package checkout

import (
	"testing"

	"velaluz/internal/domain"
)

func registado(priceCents int64) domain.ShippingMethod {
	return domain.ShippingMethod{
		ID:         "m1",
		Name:       "Correio Registado",
		PriceCents: priceCents,
		Active:     true,
	}
}

func TestShippingCost_NoSelection(t *testing.T) {
	var s Session
	if got := s.ShippingCostCents(4500); got != 0 {
		t.Fatalf("expected 0 with no method selected, got %d", got)
	}
}

func TestShippingCost_BelowThreshold(t *testing.T) {
	var s Session
	s.SelectShipping(registado(350))
	if got := s.ShippingCostCents(4500); got != 350 {
		t.Fatalf("expected 350, got %d", got)
	}
}

func TestShippingCost_FreeAtThreshold(t *testing.T) {
	var s Session
	s.SelectShipping(registado(350))
	if got := s.ShippingCostCents(5000); got != 0 {
		t.Fatalf("expected free shipping at threshold, got %d", got)
	}
	if got := s.ShippingCostCents(5500); got != 0 {
		t.Fatalf("expected free shipping above threshold, got %d", got)
	}
}

func TestShippingCost_NameMatchIsCaseInsensitive(t *testing.T) {
	var s Session
	s.SelectShipping(domain.ShippingMethod{ID: "m2", Name: "CORREIO REGISTADO PRIORITÁRIO", PriceCents: 420})
	if got := s.ShippingCostCents(6000); got != 0 {
		t.Fatalf("expected free shipping for name-eligible method, got %d", got)
	}
}

func TestShippingCost_IneligibleNamePaysAboveThreshold(t *testing.T) {
	var s Session
	s.SelectShipping(domain.ShippingMethod{ID: "m3", Name: "Correio Expresso", PriceCents: 550})
	if got := s.ShippingCostCents(9000); got != 550 {
		t.Fatalf("expected listed price for non-eligible method, got %d", got)
	}
}

func TestApplyPromotion_Percentage(t *testing.T) {
	// Cart 45.00, Correio Registado 3.50, 10% coupon: discount 4.50, total 44.00.
	var s Session
	s.SelectShipping(registado(350))
	promo := domain.Promotion{Code: "DEZ", DiscountType: domain.DiscountPercentage, DiscountValue: 10, Active: true}

	if err := s.ApplyPromotion(promo, 4500); err != nil {
		t.Fatalf("ApplyPromotion: %v", err)
	}
	if s.DiscountCents != 450 {
		t.Fatalf("expected discount 450, got %d", s.DiscountCents)
	}
	if got := s.TotalCents(4500); got != 4400 {
		t.Fatalf("expected total 4400, got %d", got)
	}
}

func TestApplyPromotion_FreeShippingWhenShippingAlreadyFree(t *testing.T) {
	// Subtotal 55.00 already rides free; a FREE_SHIPPING coupon discounts 0.
	var s Session
	s.SelectShipping(registado(350))
	promo := domain.Promotion{Code: "PORTES", DiscountType: domain.DiscountFreeShip, Active: true}

	if err := s.ApplyPromotion(promo, 5500); err != nil {
		t.Fatalf("ApplyPromotion: %v", err)
	}
	if s.DiscountCents != 0 {
		t.Fatalf("expected zero discount, got %d", s.DiscountCents)
	}
	if got := s.TotalCents(5500); got != 5500 {
		t.Fatalf("expected total 5500, got %d", got)
	}
}

func TestApplyPromotion_FreeShippingEqualsShippingCost(t *testing.T) {
	var s Session
	s.SelectShipping(registado(350))
	promo := domain.Promotion{Code: "PORTES", DiscountType: domain.DiscountFreeShip, Active: true}

	if err := s.ApplyPromotion(promo, 2000); err != nil {
		t.Fatalf("ApplyPromotion: %v", err)
	}
	if s.DiscountCents != 350 {
		t.Fatalf("expected discount to equal shipping cost 350, got %d", s.DiscountCents)
	}
	if got := s.TotalCents(2000); got != 2000 {
		t.Fatalf("expected total 2000, got %d", got)
	}
}

func TestApplyPromotion_FixedAmountClampedToPayable(t *testing.T) {
	// 100.00 off a 20.00 cart with 3.50 shipping clamps to 23.50; total 0.
	var s Session
	s.SelectShipping(registado(350))
	promo := domain.Promotion{Code: "CEM", DiscountType: domain.DiscountFixedAmount, DiscountValue: 10000, Active: true}

	if err := s.ApplyPromotion(promo, 2000); err != nil {
		t.Fatalf("ApplyPromotion: %v", err)
	}
	if s.DiscountCents != 2350 {
		t.Fatalf("expected discount clamped to 2350, got %d", s.DiscountCents)
	}
	if got := s.TotalCents(2000); got != 0 {
		t.Fatalf("expected total 0, got %d", got)
	}
}

func TestApplyPromotion_MinOrderRejected(t *testing.T) {
	var s Session
	s.SelectShipping(registado(350))
	promo := domain.Promotion{Code: "MIN", DiscountType: domain.DiscountPercentage, DiscountValue: 10, MinOrderAmountCents: 3000, Active: true}

	if err := s.ApplyPromotion(promo, 2999); err != domain.ErrCouponMinOrder {
		t.Fatalf("expected ErrCouponMinOrder, got %v", err)
	}
	if s.DiscountCents != 0 || s.Promotion != nil {
		t.Fatalf("rejected coupon must leave no discount state: %+v", s)
	}
}

func TestApplyPromotion_SupersedesPrevious(t *testing.T) {
	var s Session
	s.SelectShipping(registado(350))
	first := domain.Promotion{Code: "A", DiscountType: domain.DiscountFixedAmount, DiscountValue: 500, Active: true}
	second := domain.Promotion{Code: "B", DiscountType: domain.DiscountPercentage, DiscountValue: 10, Active: true}

	if err := s.ApplyPromotion(first, 4500); err != nil {
		t.Fatalf("apply first: %v", err)
	}
	if err := s.ApplyPromotion(second, 4500); err != nil {
		t.Fatalf("apply second: %v", err)
	}
	if s.CouponCode != "B" || s.DiscountCents != 450 {
		t.Fatalf("expected last coupon to win, got code=%s discount=%d", s.CouponCode, s.DiscountCents)
	}
}

func TestSelectShipping_InvalidatesFreeShippingCoupon(t *testing.T) {
	var s Session
	s.SelectShipping(registado(350))
	promo := domain.Promotion{Code: "PORTES", DiscountType: domain.DiscountFreeShip, Active: true}
	if err := s.ApplyPromotion(promo, 2000); err != nil {
		t.Fatalf("ApplyPromotion: %v", err)
	}

	s.SelectShipping(domain.ShippingMethod{ID: "m2", Name: "Correio Expresso", PriceCents: 550})

	if s.Promotion != nil || s.DiscountCents != 0 {
		t.Fatalf("expected coupon cleared after shipping change, got %+v", s)
	}
	if !s.ReapplyCoupon {
		t.Fatal("expected re-apply prompt after shipping change")
	}
}

func TestSelectShipping_KeepsOtherCoupons(t *testing.T) {
	var s Session
	s.SelectShipping(registado(350))
	promo := domain.Promotion{Code: "DEZ", DiscountType: domain.DiscountPercentage, DiscountValue: 10, Active: true}
	if err := s.ApplyPromotion(promo, 4500); err != nil {
		t.Fatalf("ApplyPromotion: %v", err)
	}

	s.SelectShipping(domain.ShippingMethod{ID: "m2", Name: "Correio Expresso", PriceCents: 550})

	if s.CouponCode != "DEZ" || s.DiscountCents != 450 {
		t.Fatalf("percentage coupon must survive shipping change, got %+v", s)
	}
}

func TestRemoveCoupon_Idempotent(t *testing.T) {
	var s Session
	s.RemoveCoupon()
	s.RemoveCoupon()
	if s.DiscountCents != 0 || s.Promotion != nil || s.CouponCode != "" {
		t.Fatalf("expected zeroed coupon state, got %+v", s)
	}
}

func TestTotal_NeverNegative(t *testing.T) {
	var s Session
	s.DiscountCents = 99999
	if got := s.TotalCents(100); got != 0 {
		t.Fatalf("expected total clamped to 0, got %d", got)
	}
}

func TestRoundHalfUpPercent(t *testing.T) {
	cases := []struct {
		amount, percent, want int64
	}{
		{4500, 10, 450},
		{999, 10, 100},  // 99.9 rounds up
		{994, 10, 99},   // 99.4 rounds down
		{5, 10, 1},      // 0.5 rounds up
		{10000, 33, 3300},
	}
	for _, tc := range cases {
		if got := roundHalfUpPercent(tc.amount, tc.percent); got != tc.want {
			t.Errorf("roundHalfUpPercent(%d, %d) = %d, want %d", tc.amount, tc.percent, got, tc.want)
		}
	}
}
