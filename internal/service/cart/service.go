package cart

import (
	"context"
	"io"
	"log"

	"velaluz/internal/domain"
)

// snapshotStore is the slice of the cart store the service needs.
type snapshotStore interface {
	Load(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// Service owns the session cart: every mutation clamps quantities into
// [1, stock] and overwrites the persisted snapshot.
type Service struct {
	store  snapshotStore
	logger *log.Logger
}

func New(store snapshotStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{store: store, logger: logger}
}

// Get loads the session cart. Storage or parse failures surface as an empty
// cart so the storefront always renders.
func (s *Service) Get(ctx context.Context, sessionID string) domain.Cart {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		s.logger.Printf("cart: load session=%s error=%v", sessionID, err)
		return domain.Cart{}
	}
	return cart
}

// AddItem merges the product into the cart: an existing line has its
// quantity increased, a new product is appended. Quantity is clamped to the
// product's stock either way.
func (s *Service) AddItem(ctx context.Context, sessionID string, product domain.Product, quantity int) (domain.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}
	cart := s.Get(ctx, sessionID)

	merged := false
	for i, item := range cart.Items {
		if item.ProductID == product.ID {
			cart.Items[i].Quantity = clampQuantity(item.Quantity+quantity, item.Stock)
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:   product.ID,
			Name:        product.Name,
			SKU:         product.SKU,
			PriceCents:  product.EffectivePriceCents(),
			Quantity:    clampQuantity(quantity, product.Stock),
			Stock:       product.Stock,
			WeightGrams: product.WeightGrams,
		})
	}

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// UpdateQuantity sets a line's quantity, clamped to [1, stock]. Unknown
// products leave the cart unchanged.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (domain.Cart, error) {
	cart := s.Get(ctx, sessionID)
	for i, item := range cart.Items {
		if item.ProductID == productID {
			cart.Items[i].Quantity = clampQuantity(quantity, item.Stock)
			break
		}
	}
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (domain.Cart, error) {
	cart := s.Get(ctx, sessionID)
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// Clear empties the cart. Calling it on an already empty cart is a no-op.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func clampQuantity(quantity, stock int) int {
	if quantity > stock {
		quantity = stock
	}
	if quantity < 1 {
		quantity = 1
	}
	return quantity
}
