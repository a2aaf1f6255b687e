package promotion

import (
	"context"

	"velaluz/internal/domain"
)

// Repository provides access to promotions. GetByCode matches the normalized
// (upper-case) coupon code.
type Repository interface {
	List(ctx context.Context) ([]domain.Promotion, error)
	GetByID(ctx context.Context, id string) (*domain.Promotion, error)
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
	Create(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	SetActive(ctx context.Context, id string, active bool) error
	IncrementUsage(ctx context.Context, code string) error
	Delete(ctx context.Context, id string) error
}
