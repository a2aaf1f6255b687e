package customer

import (
	"context"

	"velaluz/internal/domain"
)

// UpdateProfileInput carries the optional fields a shopper may save from
// checkout. Nil fields are left untouched.
type UpdateProfileInput struct {
	Name    *string
	Phone   *string
	NIF     *string
	Address *string
	City    *string
	ZipCode *string
}

// Repository provides access to customer profiles, keyed by email.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	UpsertProfile(ctx context.Context, email string, in UpdateProfileInput) (*domain.Customer, error)
}
