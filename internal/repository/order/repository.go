package order

import (
	"context"

	"velaluz/internal/domain"
)

// Repository provides access to orders. Create stores the order, its items
// and the promotion usage bump in one transaction.
type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	SetInvoiceIssued(ctx context.Context, id string, issued bool) error
}
