package shipping

import (
	"context"

	"velaluz/internal/domain"
)

// Repository provides access to shipping methods.
type Repository interface {
	ListActive(ctx context.Context) ([]domain.ShippingMethod, error)
	ListAll(ctx context.Context) ([]domain.ShippingMethod, error)
	GetByID(ctx context.Context, id string) (*domain.ShippingMethod, error)
	Create(ctx context.Context, m domain.ShippingMethod) (*domain.ShippingMethod, error)
	Update(ctx context.Context, m domain.ShippingMethod) (*domain.ShippingMethod, error)
	Delete(ctx context.Context, id string) error
}
