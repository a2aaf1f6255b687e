package customer

import (
	"context"
	"errors"
	"strings"

	"velaluz/internal/domain"
	customerrepo "velaluz/internal/repository/customer"
)

type customerRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	UpsertProfile(ctx context.Context, email string, in customerrepo.UpdateProfileInput) (*domain.Customer, error)
}

type Service struct {
	repo customerRepo
}

func New(repo customerRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errors.New("email required")
	}
	return s.repo.GetByEmail(ctx, email)
}

// UpdateProfile saves the partial fields a shopper opted to keep.
func (s *Service) UpdateProfile(ctx context.Context, email string, in customerrepo.UpdateProfileInput) (*domain.Customer, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errors.New("email required")
	}
	return s.repo.UpsertProfile(ctx, email, in)
}
