package checkout

import (
	"context"
	"errors"
	"testing"

	"velaluz/internal/domain"
	customerrepo "velaluz/internal/repository/customer"
)

type memSessions struct {
	sessions map[string]Session
	saveErr  error
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: map[string]Session{}}
}

func (m *memSessions) Load(_ context.Context, id string) (Session, error) {
	return m.sessions[id], nil
}

func (m *memSessions) Save(_ context.Context, id string, s Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[id] = s
	return nil
}

func (m *memSessions) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

type stubCarts struct {
	cart    domain.Cart
	cleared int
}

func (s *stubCarts) Get(_ context.Context, _ string) domain.Cart { return s.cart }

func (s *stubCarts) Clear(_ context.Context, _ string) error {
	s.cleared++
	s.cart = domain.Cart{}
	return nil
}

type stubShipping struct {
	method *domain.ShippingMethod
	err    error
}

func (s *stubShipping) Resolve(_ context.Context, _ string) (*domain.ShippingMethod, error) {
	return s.method, s.err
}

type stubCoupons struct {
	promo *domain.Promotion
	err   error
}

func (s *stubCoupons) ValidateCoupon(_ context.Context, _ string) (*domain.Promotion, error) {
	return s.promo, s.err
}

type stubOrders struct {
	created *domain.Order
	err     error
	last    domain.Order
	calls   int
}

func (s *stubOrders) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.calls++
	s.last = o
	if s.err != nil {
		return nil, s.err
	}
	created := o
	created.ID = "order-1"
	s.created = &created
	return &created, nil
}

type stubProfiles struct {
	err   error
	calls int
	email string
}

func (s *stubProfiles) UpsertProfile(_ context.Context, email string, _ customerrepo.UpdateProfileInput) (*domain.Customer, error) {
	s.calls++
	s.email = email
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Customer{ID: "c1", Email: email}, nil
}

func filledCart() domain.Cart {
	return domain.Cart{Items: []domain.CartItem{
		{ProductID: "p1", Name: "Vela de Lavanda", SKU: "VL-LAV-200", PriceCents: 1450, Quantity: 2, Stock: 10},
		{ProductID: "p2", Name: "Vela de Baunilha", SKU: "VL-BAU-150", PriceCents: 1200, Quantity: 1, Stock: 10},
	}}
}

func validInput() ConfirmInput {
	in := ConfirmInput{PaymentMethod: "MBWAY"}
	in.Customer = CustomerDetails{
		Name:                  "Maria Santos",
		Email:                 "maria@example.com",
		Phone:                 "912345678",
		Address:               "Rua das Flores 12",
		City:                  "Porto",
		ZipCode:               "4000-123",
		BillingSameAsShipping: true,
	}
	return in
}

func newTestService(sessions SessionStore, carts *stubCarts, orders *stubOrders, profiles *stubProfiles) *Service {
	return New(sessions, carts,
		&stubShipping{method: &domain.ShippingMethod{ID: "m1", Name: "Correio Registado", PriceCents: 350}},
		&stubCoupons{}, orders, profiles, nil)
}

func selectTestShipping(t *testing.T, svc *Service) {
	t.Helper()
	if _, err := svc.SelectShipping(context.Background(), "s1", "m1"); err != nil {
		t.Fatalf("SelectShipping: %v", err)
	}
}

func TestConfirm_EmptyCartRejected(t *testing.T) {
	svc := newTestService(newMemSessions(), &stubCarts{}, &stubOrders{}, &stubProfiles{})

	_, err := svc.Confirm(context.Background(), "s1", validInput())
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestConfirm_NoShippingRejected(t *testing.T) {
	svc := newTestService(newMemSessions(), &stubCarts{cart: filledCart()}, &stubOrders{}, &stubProfiles{})

	_, err := svc.Confirm(context.Background(), "s1", validInput())
	if !errors.Is(err, domain.ErrNoShippingMethod) {
		t.Fatalf("expected ErrNoShippingMethod, got %v", err)
	}
}

func TestConfirm_AssemblesOrderAndClearsCart(t *testing.T) {
	sessions := newMemSessions()
	carts := &stubCarts{cart: filledCart()}
	orders := &stubOrders{}
	svc := newTestService(sessions, carts, orders, &stubProfiles{})
	selectTestShipping(t, svc)

	created, err := svc.Confirm(context.Background(), "s1", validInput())
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if created.ID != "order-1" {
		t.Fatalf("expected created order id, got %q", created.ID)
	}

	// subtotal 41.00, shipping 3.50, no discount
	if orders.last.TotalAmountCents != 4450 {
		t.Fatalf("expected total 4450, got %d", orders.last.TotalAmountCents)
	}
	if orders.last.ShippingCostCents != 350 || orders.last.ShippingMethod != "Correio Registado" {
		t.Fatalf("unexpected shipping on payload: %+v", orders.last)
	}
	if len(orders.last.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(orders.last.Items))
	}
	if orders.last.Status != domain.OrderPending || orders.last.Channel != domain.ChannelWebsite {
		t.Fatalf("unexpected status/channel: %+v", orders.last)
	}
	if carts.cleared != 1 {
		t.Fatalf("expected cart cleared once, got %d", carts.cleared)
	}
	if _, ok := sessions.sessions["s1"]; ok {
		t.Fatal("expected checkout session removed after success")
	}
}

func TestConfirm_BillingMergedFromShipping(t *testing.T) {
	orders := &stubOrders{}
	svc := newTestService(newMemSessions(), &stubCarts{cart: filledCart()}, orders, &stubProfiles{})
	selectTestShipping(t, svc)

	in := validInput()
	in.Customer.BillingSameAsShipping = true
	in.Customer.BillingAddress = "ignored"

	if _, err := svc.Confirm(context.Background(), "s1", in); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if orders.last.BillingAddress != in.Customer.Address || orders.last.BillingCity != in.Customer.City {
		t.Fatalf("expected billing merged from shipping, got %+v", orders.last)
	}
}

func TestConfirm_SeparateBillingKept(t *testing.T) {
	orders := &stubOrders{}
	svc := newTestService(newMemSessions(), &stubCarts{cart: filledCart()}, orders, &stubProfiles{})
	selectTestShipping(t, svc)

	in := validInput()
	in.Customer.BillingSameAsShipping = false
	in.Customer.BillingAddress = "Av. Fiscal 1"
	in.Customer.BillingCity = "Lisboa"
	in.Customer.BillingZipCode = "1000-001"

	if _, err := svc.Confirm(context.Background(), "s1", in); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if orders.last.BillingAddress != "Av. Fiscal 1" || orders.last.BillingCity != "Lisboa" {
		t.Fatalf("expected separate billing kept, got %+v", orders.last)
	}
}

func TestConfirm_GiftBlockAttached(t *testing.T) {
	orders := &stubOrders{}
	svc := newTestService(newMemSessions(), &stubCarts{cart: filledCart()}, orders, &stubProfiles{})
	selectTestShipping(t, svc)

	in := validInput()
	in.Gift = &GiftDetails{Message: "Parabéns!", FromName: "Maria", ToName: "Ana"}

	if _, err := svc.Confirm(context.Background(), "s1", in); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !orders.last.IsGift || orders.last.GiftToName != "Ana" || orders.last.GiftMessage != "Parabéns!" {
		t.Fatalf("expected gift block on payload, got %+v", orders.last)
	}
}

func TestConfirm_NoGiftBlockByDefault(t *testing.T) {
	orders := &stubOrders{}
	svc := newTestService(newMemSessions(), &stubCarts{cart: filledCart()}, orders, &stubProfiles{})
	selectTestShipping(t, svc)

	if _, err := svc.Confirm(context.Background(), "s1", validInput()); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if orders.last.IsGift || orders.last.GiftMessage != "" {
		t.Fatalf("expected no gift block, got %+v", orders.last)
	}
}

func TestConfirm_ProfileSavedBeforeOrder(t *testing.T) {
	orders := &stubOrders{}
	profiles := &stubProfiles{}
	svc := newTestService(newMemSessions(), &stubCarts{cart: filledCart()}, orders, profiles)
	selectTestShipping(t, svc)

	in := validInput()
	in.Customer.SaveToProfile = true

	if _, err := svc.Confirm(context.Background(), "s1", in); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if profiles.calls != 1 || profiles.email != "maria@example.com" {
		t.Fatalf("expected profile save, got calls=%d email=%q", profiles.calls, profiles.email)
	}
}

func TestConfirm_ProfileFailureDoesNotBlockOrder(t *testing.T) {
	orders := &stubOrders{}
	profiles := &stubProfiles{err: errors.New("profile service down")}
	carts := &stubCarts{cart: filledCart()}
	svc := newTestService(newMemSessions(), carts, orders, profiles)
	selectTestShipping(t, svc)

	in := validInput()
	in.Customer.SaveToProfile = true

	created, err := svc.Confirm(context.Background(), "s1", in)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if created == nil || orders.calls != 1 {
		t.Fatal("expected the order to be created despite the profile failure")
	}
}

func TestConfirm_CreateFailurePreservesCart(t *testing.T) {
	orders := &stubOrders{err: errors.New("api down")}
	carts := &stubCarts{cart: filledCart()}
	svc := newTestService(newMemSessions(), carts, orders, &stubProfiles{})
	selectTestShipping(t, svc)

	if _, err := svc.Confirm(context.Background(), "s1", validInput()); err == nil {
		t.Fatal("expected error from order creation")
	}
	if carts.cleared != 0 {
		t.Fatal("cart must be preserved when submission fails")
	}
	if carts.cart.IsEmpty() {
		t.Fatal("cart items must survive a failed submission")
	}
}

func TestApplyCoupon_InvalidCodeResetsState(t *testing.T) {
	sessions := newMemSessions()
	carts := &stubCarts{cart: filledCart()}
	coupons := &stubCoupons{err: domain.ErrCouponInvalid}
	svc := New(sessions, carts,
		&stubShipping{method: &domain.ShippingMethod{ID: "m1", Name: "Correio Registado", PriceCents: 350}},
		coupons, &stubOrders{}, &stubProfiles{}, nil)
	selectTestShipping(t, svc)

	// apply a good coupon first so there is state to reset
	coupons.err = nil
	coupons.promo = &domain.Promotion{Code: "DEZ", DiscountType: domain.DiscountPercentage, DiscountValue: 10, Active: true}
	if _, err := svc.ApplyCoupon(context.Background(), "s1", "dez"); err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}

	coupons.err = domain.ErrCouponInvalid
	summary, err := svc.ApplyCoupon(context.Background(), "s1", "NOPE")
	if !errors.Is(err, domain.ErrCouponInvalid) {
		t.Fatalf("expected ErrCouponInvalid, got %v", err)
	}
	if summary.DiscountCents != 0 || summary.CouponCode != "" {
		t.Fatalf("expected discount state reset, got %+v", summary)
	}
	if sessions.sessions["s1"].DiscountCents != 0 {
		t.Fatal("expected persisted session reset")
	}
}

func TestSummarize_DerivesTotalsEachCall(t *testing.T) {
	carts := &stubCarts{cart: filledCart()}
	svc := newTestService(newMemSessions(), carts, &stubOrders{}, &stubProfiles{})
	selectTestShipping(t, svc)

	before := svc.Summarize(context.Background(), "s1")
	if before.SubTotalCents != 4100 || before.TotalCents != 4450 {
		t.Fatalf("unexpected summary %+v", before)
	}

	// growing the cart shifts the derived totals without any session write
	carts.cart.Items[0].Quantity = 4
	after := svc.Summarize(context.Background(), "s1")
	if after.SubTotalCents != 7000 {
		t.Fatalf("expected subtotal 7000, got %d", after.SubTotalCents)
	}
	if after.ShippingCents != 0 {
		t.Fatalf("expected free shipping above threshold, got %d", after.ShippingCents)
	}
	if after.TotalCents != 7000 {
		t.Fatalf("expected total 7000, got %d", after.TotalCents)
	}
}
