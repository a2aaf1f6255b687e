package sessionstore

import (
	"context"
	"testing"

	"velaluz/internal/domain"
	"velaluz/internal/service/checkout"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupStore(t *testing.T) (checkout.SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedis(client, nil), mr
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	session := checkout.Session{
		SelectedMethod: &domain.ShippingMethod{ID: "m1", Name: "Correio Registado", PriceCents: 350},
		CouponCode:     "BEMVINDO10",
		Promotion:      &domain.Promotion{ID: "pr1", Code: "BEMVINDO10", DiscountType: domain.DiscountPercentage, DiscountValue: 10},
		DiscountCents:  450,
	}
	if err := store.Save(ctx, "s1", session); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.CouponCode != "BEMVINDO10" || loaded.DiscountCents != 450 {
		t.Fatalf("unexpected session %+v", loaded)
	}
	if loaded.SelectedMethod == nil || loaded.SelectedMethod.ID != "m1" {
		t.Fatalf("shipping selection not restored: %+v", loaded.SelectedMethod)
	}
	if loaded.Promotion == nil || loaded.Promotion.Code != "BEMVINDO10" {
		t.Fatalf("promotion not restored: %+v", loaded.Promotion)
	}
}

func TestLoad_MissingStateYieldsFreshSession(t *testing.T) {
	store, _ := setupStore(t)

	session, err := store.Load(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if session.SelectedMethod != nil || session.Promotion != nil || session.CouponCode != "" {
		t.Fatalf("expected fresh session, got %+v", session)
	}
}

func TestLoad_CorruptStateYieldsFreshSession(t *testing.T) {
	store, mr := setupStore(t)

	mr.Set("checkout_luz:s1", "not json at all")

	session, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if session.SelectedMethod != nil || session.Promotion != nil {
		t.Fatalf("expected fresh session for corrupt state, got %+v", session)
	}
}

func TestDelete(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "s1", checkout.Session{CouponCode: "NATAL5"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	session, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if session.CouponCode != "" {
		t.Fatalf("expected fresh session after delete, got %+v", session)
	}
}
