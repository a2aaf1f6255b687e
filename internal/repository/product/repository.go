package product

import (
	"context"

	"velaluz/internal/domain"
)

// Repository provides access to the product catalog.
type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
