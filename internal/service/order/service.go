package order

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"velaluz/internal/domain"
)

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	SetInvoiceIssued(ctx context.Context, id string, issued bool) error
}

// Service covers order tracking for the shop and order management for the
// back office.
type Service struct {
	repo   orderRepo
	logger *log.Logger
}

func New(repo orderRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errors.New("customer email required")
	}
	return s.repo.ListByCustomerEmail(ctx, email)
}

// CreateManual records an order taken outside the website (market stall,
// Instagram, direct sale). The channel must be one of the known values.
func (s *Service) CreateManual(ctx context.Context, o domain.Order) (*domain.Order, error) {
	switch o.Channel {
	case domain.ChannelWebsite, domain.ChannelInstagram, domain.ChannelFacebook,
		domain.ChannelBasket, domain.ChannelMarketStall, domain.ChannelDirect:
	default:
		return nil, errors.New("unknown order channel")
	}
	if o.Status == "" {
		o.Status = domain.OrderPending
	}
	return s.repo.Create(ctx, o)
}

// ChangeStatus moves an order through its lifecycle, guarding against
// transitions the back office must not make (for example shipping a
// cancelled order).
func (s *Service) ChangeStatus(ctx context.Context, id string, to domain.OrderStatus) (*domain.Order, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(current.Status, to) {
		s.logger.Printf("order: blocked transition id=%s %s -> %s", id, current.Status, to)
		return nil, domain.ErrInvalidTransition
	}
	return s.repo.UpdateStatus(ctx, id, to)
}

func (s *Service) SetInvoiceIssued(ctx context.Context, id string, issued bool) error {
	return s.repo.SetInvoiceIssued(ctx, id, issued)
}
