package shipping

import (
	"context"
	"io"
	"log"

	"velaluz/internal/domain"
)

type methodRepo interface {
	ListActive(ctx context.Context) ([]domain.ShippingMethod, error)
	ListAll(ctx context.Context) ([]domain.ShippingMethod, error)
	GetByID(ctx context.Context, id string) (*domain.ShippingMethod, error)
	Create(ctx context.Context, m domain.ShippingMethod) (*domain.ShippingMethod, error)
	Update(ctx context.Context, m domain.ShippingMethod) (*domain.ShippingMethod, error)
	Delete(ctx context.Context, id string) error
}

// FallbackMethodID marks the hardcoded method used when the listing cannot
// be fetched.
const FallbackMethodID = "fallback"

// fallbackMethod keeps checkout usable when the shipping listing fails.
var fallbackMethod = domain.ShippingMethod{
	ID:          FallbackMethodID,
	Name:        "Envio Standard",
	Description: "3-5 dias úteis",
	PriceCents:  350,
	Active:      true,
}

type Service struct {
	repo   methodRepo
	logger *log.Logger
}

func New(repo methodRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// ActiveMethods lists the active shipping methods. A repository failure
// degrades to the hardcoded fallback rather than blocking checkout.
func (s *Service) ActiveMethods(ctx context.Context) []domain.ShippingMethod {
	methods, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Printf("shipping: list active failed, using fallback: %v", err)
		return []domain.ShippingMethod{fallbackMethod}
	}
	if len(methods) == 0 {
		return []domain.ShippingMethod{fallbackMethod}
	}
	return methods
}

// Resolve finds a selectable method by id, including the fallback id.
func (s *Service) Resolve(ctx context.Context, id string) (*domain.ShippingMethod, error) {
	if id == FallbackMethodID {
		m := fallbackMethod
		return &m, nil
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.ShippingMethod, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Create(ctx context.Context, m domain.ShippingMethod) (*domain.ShippingMethod, error) {
	return s.repo.Create(ctx, m)
}

func (s *Service) Update(ctx context.Context, m domain.ShippingMethod) (*domain.ShippingMethod, error) {
	return s.repo.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
