package domain

// CartItem is one line of a shopper's cart. Quantity is always kept inside
// [1, Stock]; callers never see an out-of-range value.
type CartItem struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	PriceCents  int64  `json:"priceCents"`
	Quantity    int    `json:"quantity"`
	Stock       int    `json:"stock"`
	WeightGrams int    `json:"weightGrams"`
}

// Cart is the session-scoped line item list. Totals are derived on demand,
// never stored.
type Cart struct {
	Items []CartItem `json:"items"`
}

func (c Cart) TotalItemsCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c Cart) SubTotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}

func (c Cart) TotalWeightGrams() int {
	total := 0
	for _, item := range c.Items {
		total += item.WeightGrams * item.Quantity
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
