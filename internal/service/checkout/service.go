package checkout

import (
	"context"
	"io"
	"log"
	"strings"

	"velaluz/internal/domain"
	customerrepo "velaluz/internal/repository/customer"
)

type cartService interface {
	Get(ctx context.Context, sessionID string) domain.Cart
	Clear(ctx context.Context, sessionID string) error
}

type shippingService interface {
	Resolve(ctx context.Context, id string) (*domain.ShippingMethod, error)
}

type couponService interface {
	ValidateCoupon(ctx context.Context, code string) (*domain.Promotion, error)
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
}

type profileRepo interface {
	UpsertProfile(ctx context.Context, email string, in customerrepo.UpdateProfileInput) (*domain.Customer, error)
}

// SessionStore persists the checkout session between requests. Like the cart
// snapshot, a load failure yields a fresh session.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (Session, error)
	Save(ctx context.Context, sessionID string, session Session) error
	Delete(ctx context.Context, sessionID string) error
}

// Service drives the checkout flow: shipping selection, coupon application
// and order submission.
type Service struct {
	sessions  SessionStore
	carts     cartService
	shipping  shippingService
	coupons   couponService
	orders    orderRepo
	customers profileRepo
	logger    *log.Logger
}

func New(sessions SessionStore, carts cartService, shipping shippingService, coupons couponService, orders orderRepo, customers profileRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		sessions:  sessions,
		carts:     carts,
		shipping:  shipping,
		coupons:   coupons,
		orders:    orders,
		customers: customers,
		logger:    logger,
	}
}

// Summary is the view-state of a checkout session; every amount is derived
// from the current cart and session on each call.
type Summary struct {
	Items           []domain.CartItem      `json:"items"`
	TotalItemsCount int                    `json:"totalItemsCount"`
	SubTotalCents   int64                  `json:"subTotalCents"`
	SelectedMethod  *domain.ShippingMethod `json:"selectedMethod,omitempty"`
	ShippingCents   int64                  `json:"shippingCents"`
	CouponCode      string                 `json:"couponCode,omitempty"`
	DiscountCents   int64                  `json:"discountCents"`
	TotalCents      int64                  `json:"totalCents"`
	ReapplyCoupon   bool                   `json:"reapplyCoupon,omitempty"`
}

func (s *Service) session(ctx context.Context, sessionID string) Session {
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		s.logger.Printf("checkout: load session=%s error=%v", sessionID, err)
		return Session{}
	}
	return session
}

func (s *Service) summarize(cart domain.Cart, session Session) Summary {
	subtotal := cart.SubTotalCents()
	return Summary{
		Items:           cart.Items,
		TotalItemsCount: cart.TotalItemsCount(),
		SubTotalCents:   subtotal,
		SelectedMethod:  session.SelectedMethod,
		ShippingCents:   session.ShippingCostCents(subtotal),
		CouponCode:      session.CouponCode,
		DiscountCents:   session.DiscountCents,
		TotalCents:      session.TotalCents(subtotal),
		ReapplyCoupon:   session.ReapplyCoupon,
	}
}

// Summarize returns the current checkout view-state.
func (s *Service) Summarize(ctx context.Context, sessionID string) Summary {
	return s.summarize(s.carts.Get(ctx, sessionID), s.session(ctx, sessionID))
}

// SelectShipping picks the shipping method for the session.
func (s *Service) SelectShipping(ctx context.Context, sessionID, methodID string) (Summary, error) {
	method, err := s.shipping.Resolve(ctx, methodID)
	if err != nil {
		return Summary{}, err
	}

	session := s.session(ctx, sessionID)
	session.SelectShipping(*method)
	if err := s.sessions.Save(ctx, sessionID, session); err != nil {
		return Summary{}, err
	}
	return s.summarize(s.carts.Get(ctx, sessionID), session), nil
}

// ApplyCoupon validates the code and applies its discount to the session.
// A rejected code clears any previously applied coupon (the session is left
// with no discount) and the error is returned for the storefront message.
func (s *Service) ApplyCoupon(ctx context.Context, sessionID, code string) (Summary, error) {
	session := s.session(ctx, sessionID)
	cart := s.carts.Get(ctx, sessionID)

	promo, err := s.coupons.ValidateCoupon(ctx, code)
	if err != nil {
		session.RemoveCoupon()
		if saveErr := s.sessions.Save(ctx, sessionID, session); saveErr != nil {
			s.logger.Printf("checkout: save session=%s error=%v", sessionID, saveErr)
		}
		return s.summarize(cart, session), err
	}

	if err := session.ApplyPromotion(*promo, cart.SubTotalCents()); err != nil {
		if saveErr := s.sessions.Save(ctx, sessionID, session); saveErr != nil {
			s.logger.Printf("checkout: save session=%s error=%v", sessionID, saveErr)
		}
		return s.summarize(cart, session), err
	}

	if err := s.sessions.Save(ctx, sessionID, session); err != nil {
		return Summary{}, err
	}
	s.logger.Printf("checkout: coupon applied session=%s code=%s discount_cents=%d", sessionID, session.CouponCode, session.DiscountCents)
	return s.summarize(cart, session), nil
}

// RemoveCoupon drops the applied coupon, if any.
func (s *Service) RemoveCoupon(ctx context.Context, sessionID string) (Summary, error) {
	session := s.session(ctx, sessionID)
	session.RemoveCoupon()
	if err := s.sessions.Save(ctx, sessionID, session); err != nil {
		return Summary{}, err
	}
	return s.summarize(s.carts.Get(ctx, sessionID), session), nil
}

// CustomerDetails is the checkout form's customer block.
type CustomerDetails struct {
	Name    string
	Email   string
	Phone   string
	NIF     string
	Address string
	City    string
	ZipCode string

	BillingSameAsShipping bool
	BillingAddress        string
	BillingCity           string
	BillingZipCode        string

	SaveToProfile bool
}

// GiftDetails is attached to the order only when the purchase is a gift.
type GiftDetails struct {
	Message  string
	FromName string
	ToName   string
}

// ConfirmInput is everything the submission needs beyond the session state.
type ConfirmInput struct {
	Customer      CustomerDetails
	PaymentMethod string
	Gift          *GiftDetails
}

// Confirm assembles and submits the order. The profile save, when requested,
// is awaited before order creation but its failure does not block the order.
// The cart and session are cleared only after the order is stored, so a
// failed submission leaves everything in place for a retry.
func (s *Service) Confirm(ctx context.Context, sessionID string, in ConfirmInput) (*domain.Order, error) {
	cart := s.carts.Get(ctx, sessionID)
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	session := s.session(ctx, sessionID)
	if session.SelectedMethod == nil {
		return nil, domain.ErrNoShippingMethod
	}

	if in.Customer.SaveToProfile && strings.TrimSpace(in.Customer.Email) != "" {
		if _, err := s.customers.UpsertProfile(ctx, in.Customer.Email, profileInput(in.Customer)); err != nil {
			s.logger.Printf("checkout: profile save failed session=%s email=%s error=%v", sessionID, in.Customer.Email, err)
		}
	}

	order := s.assemble(cart, session, in)
	created, err := s.orders.Create(ctx, order)
	if err != nil {
		// Cart untouched so the shopper can resubmit.
		return nil, err
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logger.Printf("checkout: clear cart session=%s error=%v", sessionID, err)
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Printf("checkout: clear session=%s error=%v", sessionID, err)
	}
	s.logger.Printf("checkout: order created session=%s order=%s total_cents=%d", sessionID, created.ID, created.TotalAmountCents)
	return created, nil
}

func (s *Service) assemble(cart domain.Cart, session Session, in ConfirmInput) domain.Order {
	subtotal := cart.SubTotalCents()

	order := domain.Order{
		Channel:       domain.ChannelWebsite,
		Status:        domain.OrderPending,
		CustomerName:  in.Customer.Name,
		CustomerEmail: in.Customer.Email,
		CustomerPhone: in.Customer.Phone,
		CustomerNIF:   in.Customer.NIF,
		Address:       in.Customer.Address,
		City:          in.Customer.City,
		ZipCode:       in.Customer.ZipCode,

		ShippingMethod:    session.SelectedMethod.Name,
		ShippingCostCents: session.ShippingCostCents(subtotal),

		PaymentMethod:        in.PaymentMethod,
		TotalAmountCents:     session.TotalCents(subtotal),
		AppliedPromotionCode: session.CouponCode,
		DiscountAmountCents:  session.DiscountCents,
	}

	// One-time merge at submission, not a live binding.
	if in.Customer.BillingSameAsShipping {
		order.BillingAddress = in.Customer.Address
		order.BillingCity = in.Customer.City
		order.BillingZipCode = in.Customer.ZipCode
	} else {
		order.BillingAddress = in.Customer.BillingAddress
		order.BillingCity = in.Customer.BillingCity
		order.BillingZipCode = in.Customer.BillingZipCode
	}

	if in.Gift != nil {
		order.IsGift = true
		order.GiftMessage = in.Gift.Message
		order.GiftFromName = in.Gift.FromName
		order.GiftToName = in.Gift.ToName
	}

	order.Items = make([]domain.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			SKU:         item.SKU,
			PriceCents:  item.PriceCents,
			Quantity:    item.Quantity,
		})
	}
	return order
}

func profileInput(c CustomerDetails) customerrepo.UpdateProfileInput {
	in := customerrepo.UpdateProfileInput{}
	if v := strings.TrimSpace(c.Name); v != "" {
		in.Name = &v
	}
	if v := strings.TrimSpace(c.Phone); v != "" {
		in.Phone = &v
	}
	if v := strings.TrimSpace(c.NIF); v != "" {
		in.NIF = &v
	}
	if v := strings.TrimSpace(c.Address); v != "" {
		in.Address = &v
	}
	if v := strings.TrimSpace(c.City); v != "" {
		in.City = &v
	}
	if v := strings.TrimSpace(c.ZipCode); v != "" {
		in.ZipCode = &v
	}
	return in
}
