package product

import (
	"context"
	"errors"
	"strings"

	"velaluz/internal/domain"
)

type productRepo interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo productRepo
}

func New(repo productRepo) *Service {
	return &Service{repo: repo}
}

// ListShop returns only active products, featured first.
func (s *Service) ListShop(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx, true)
}

func (s *Service) ListAdmin(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx, false)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(p domain.Product) error {
	if strings.TrimSpace(p.SKU) == "" {
		return errors.New("sku required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name required")
	}
	if p.PriceCents <= 0 {
		return errors.New("price must be positive")
	}
	if p.Stock < 0 {
		return errors.New("stock cannot be negative")
	}
	return nil
}
