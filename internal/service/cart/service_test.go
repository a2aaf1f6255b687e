package cart

import (
	"context"
	"errors"
	"testing"

	"velaluz/internal/domain"
)

type stubStore struct {
	carts   map[string]domain.Cart
	loadErr error
	saveErr error
	saves   int
}

func newStubStore() *stubStore {
	return &stubStore{carts: map[string]domain.Cart{}}
}

func (s *stubStore) Load(_ context.Context, sessionID string) (domain.Cart, error) {
	if s.loadErr != nil {
		return domain.Cart{}, s.loadErr
	}
	return s.carts[sessionID], nil
}

func (s *stubStore) Save(_ context.Context, sessionID string, cart domain.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.carts[sessionID] = cart
	return nil
}

func (s *stubStore) Delete(_ context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

func testProduct(id string, priceCents int64, stock int) domain.Product {
	return domain.Product{
		ID:          id,
		SKU:         "SKU-" + id,
		Name:        "Vela " + id,
		PriceCents:  priceCents,
		Stock:       stock,
		WeightGrams: 300,
		Active:      true,
	}
}

func TestAddItem_AppendsAndPersists(t *testing.T) {
	store := newStubStore()
	svc := New(store, nil)
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "s1", testProduct("p1", 1450, 10), 2)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart %+v", cart)
	}
	if store.saves != 1 {
		t.Fatalf("expected snapshot persisted once, got %d", store.saves)
	}
}

func TestAddItem_MergesExistingLine(t *testing.T) {
	store := newStubStore()
	svc := New(store, nil)
	ctx := context.Background()

	p := testProduct("p1", 1450, 10)
	if _, err := svc.AddItem(ctx, "s1", p, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	cart, err := svc.AddItem(ctx, "s1", p, 3)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 5 {
		t.Fatalf("expected merged line with quantity 5, got %+v", cart.Items)
	}
}

func TestAddItem_ClampsToStock(t *testing.T) {
	store := newStubStore()
	svc := New(store, nil)
	ctx := context.Background()

	p := testProduct("p1", 1450, 3)
	if _, err := svc.AddItem(ctx, "s1", p, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	cart, err := svc.AddItem(ctx, "s1", p, 5)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if cart.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity clamped to stock 3, got %d", cart.Items[0].Quantity)
	}
}

func TestAddItem_UsesSalePrice(t *testing.T) {
	store := newStubStore()
	svc := New(store, nil)

	p := testProduct("p1", 1450, 10)
	sale := int64(999)
	p.SalePriceCents = &sale

	cart, err := svc.AddItem(context.Background(), "s1", p, 1)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if cart.Items[0].PriceCents != 999 {
		t.Fatalf("expected sale price 999, got %d", cart.Items[0].PriceCents)
	}
}

func TestUpdateQuantity_ClampsIntoRange(t *testing.T) {
	store := newStubStore()
	svc := New(store, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", testProduct("p1", 1450, 5), 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	cases := []struct {
		in, want int
	}{
		{0, 1},
		{-3, 1},
		{5, 5},
		{99, 5},
		{3, 3},
	}
	for _, tc := range cases {
		cart, err := svc.UpdateQuantity(ctx, "s1", "p1", tc.in)
		if err != nil {
			t.Fatalf("UpdateQuantity(%d): %v", tc.in, err)
		}
		if got := cart.Items[0].Quantity; got != tc.want {
			t.Errorf("UpdateQuantity(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDerivedTotals(t *testing.T) {
	store := newStubStore()
	svc := New(store, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", testProduct("p1", 1450, 10), 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	cart, err := svc.AddItem(ctx, "s1", testProduct("p2", 1200, 10), 1)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if got := cart.TotalItemsCount(); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}
	if got := cart.SubTotalCents(); got != 2*1450+1200 {
		t.Fatalf("expected subtotal %d, got %d", 2*1450+1200, got)
	}
}

func TestRemoveItem(t *testing.T) {
	store := newStubStore()
	svc := New(store, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", testProduct("p1", 1450, 10), 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	cart, err := svc.RemoveItem(ctx, "s1", "p1")
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", cart)
	}

	// removing again is harmless
	if _, err := svc.RemoveItem(ctx, "s1", "p1"); err != nil {
		t.Fatalf("RemoveItem twice: %v", err)
	}
}

func TestClear_Idempotent(t *testing.T) {
	store := newStubStore()
	svc := New(store, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", testProduct("p1", 1450, 10), 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := svc.Clear(ctx, "s1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := svc.Clear(ctx, "s1"); err != nil {
		t.Fatalf("Clear twice: %v", err)
	}
	if got := svc.Get(ctx, "s1"); !got.IsEmpty() {
		t.Fatalf("expected empty cart after clear, got %+v", got)
	}
}

func TestGet_LoadFailureYieldsEmptyCart(t *testing.T) {
	store := newStubStore()
	store.loadErr = errors.New("storage down")
	svc := New(store, nil)

	if got := svc.Get(context.Background(), "s1"); !got.IsEmpty() {
		t.Fatalf("expected empty cart on load failure, got %+v", got)
	}
}
