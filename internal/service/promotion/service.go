package promotion

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"velaluz/internal/domain"
)

type promotionRepo interface {
	List(ctx context.Context) ([]domain.Promotion, error)
	GetByID(ctx context.Context, id string) (*domain.Promotion, error)
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
	Create(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo   promotionRepo
	logger *log.Logger
	now    func() time.Time
}

func New(repo promotionRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// ValidateCoupon resolves a coupon code to a redeemable promotion. The code
// is normalized (trimmed, upper-cased) before lookup. Unknown, inactive,
// out-of-window and exhausted codes all collapse into ErrCouponInvalid so
// the storefront shows a single message.
func (s *Service) ValidateCoupon(ctx context.Context, code string) (*domain.Promotion, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.ErrCouponInvalid
	}

	promo, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCouponInvalid
		}
		return nil, err
	}
	if !promo.Redeemable(s.now()) {
		s.logger.Printf("promotion: code=%s rejected (inactive, out of window or exhausted)", code)
		return nil, domain.ErrCouponInvalid
	}
	return promo, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Promotion, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Promotion, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p domain.Promotion) (*domain.Promotion, error) {
	if err := validateDiscount(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p domain.Promotion) (*domain.Promotion, error) {
	if err := validateDiscount(p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateDiscount(p domain.Promotion) error {
	if strings.TrimSpace(p.Code) == "" {
		return errors.New("code required")
	}
	switch p.DiscountType {
	case domain.DiscountPercentage:
		if p.DiscountValue < 1 || p.DiscountValue > 100 {
			return errors.New("percentage discount must be between 1 and 100")
		}
	case domain.DiscountFixedAmount:
		if p.DiscountValue <= 0 {
			return errors.New("fixed discount must be positive")
		}
	case domain.DiscountFreeShip:
		// value unused
	default:
		return errors.New("unsupported discount type")
	}
	return nil
}
