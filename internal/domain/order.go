package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderReturned  OrderStatus = "RETURNED"
)

type OrderChannel string

const (
	ChannelWebsite     OrderChannel = "WEBSITE"
	ChannelInstagram   OrderChannel = "INSTAGRAM"
	ChannelFacebook    OrderChannel = "FACEBOOK"
	ChannelBasket      OrderChannel = "BASKET"
	ChannelMarketStall OrderChannel = "MARKET_STALL"
	ChannelDirect      OrderChannel = "DIRECT"
)

type OrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	SKU         string `json:"sku,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	Quantity    int    `json:"quantity"`
}

type Order struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	Channel   OrderChannel `json:"channel"`
	Status    OrderStatus  `json:"status"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	CustomerNIF   string `json:"customerNif,omitempty"`

	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`

	// Billing fields stay empty when billing equals the shipping address.
	BillingAddress string `json:"billingAddress,omitempty"`
	BillingCity    string `json:"billingCity,omitempty"`
	BillingZipCode string `json:"billingZipCode,omitempty"`

	ShippingMethod    string `json:"shippingMethod"`
	ShippingCostCents int64  `json:"shippingCostCents"`

	PaymentMethod        string `json:"paymentMethod"`
	TotalAmountCents     int64  `json:"totalAmountCents"`
	AppliedPromotionCode string `json:"appliedPromotionCode,omitempty"`
	DiscountAmountCents  int64  `json:"discountAmountCents"`

	WithoutBox    bool `json:"withoutBox"`
	WithoutCard   bool `json:"withoutCard"`
	InvoiceIssued bool `json:"invoiceIssued"`

	IsGift       bool   `json:"isGift"`
	GiftMessage  string `json:"giftMessage,omitempty"`
	GiftFromName string `json:"giftFromName,omitempty"`
	GiftToName   string `json:"giftToName,omitempty"`

	Items []OrderItem `json:"items"`
}

// statusTransitions holds the allowed moves in the order lifecycle.
// CANCELLED and RETURNED are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderPaid, OrderCancelled},
	OrderPaid:      {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered, OrderReturned},
	OrderDelivered: {OrderReturned},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
