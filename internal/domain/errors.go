package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrCouponInvalid covers unknown, inactive, expired and exhausted codes.
	ErrCouponInvalid = errors.New("coupon invalid or expired")

	// ErrCouponMinOrder is returned when the cart subtotal is below the
	// promotion's minimum order amount.
	ErrCouponMinOrder = errors.New("coupon minimum order not reached")

	// ErrEmptyCart blocks checkout submission with no line items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNoShippingMethod blocks checkout submission without a selected method.
	ErrNoShippingMethod = errors.New("no shipping method selected")

	// ErrInvalidTransition reports a disallowed order status change.
	ErrInvalidTransition = errors.New("invalid order status transition")
)
