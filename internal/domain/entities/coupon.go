package entities

// Coupon is a promotional discount. Percent (0-100) takes precedence; when it
// is zero, Amount is a flat value split evenly across every unit in the cart.
type Coupon struct {
	Code    string `json:"code"`
	Percent int64  `json:"percent,omitempty"`
	Amount  int64  `json:"amount,omitempty"`
}

func (c Coupon) IsPercent() bool { return c.Percent > 0 }

func (c Coupon) IsFixed() bool { return c.Percent <= 0 && c.Amount > 0 }

// CouponUI is the storefront coupon widget state: the switch and whatever
// code the customer typed. It is independent of the applied coupon.
type CouponUI struct {
	Enabled bool   `json:"enabled"`
	Code    string `json:"draft_code"`
}

// CouponUIPatch carries the fields to merge into CouponUI; nil means keep.
type CouponUIPatch struct {
	Enabled *bool
	Code    *string
}

// CartSummary is the priced view of a cart.
type CartSummary struct {
	Items         []PricedLineItem `json:"items"`
	TotalItems    int              `json:"total_items"`
	Subtotal      int64            `json:"subtotal"`
	DiscountTotal int64            `json:"discount_total"`
	Total         int64            `json:"total"`
	Coupon        *Coupon          `json:"applied_coupon"`
	CouponUI      CouponUI         `json:"coupon_ui"`
	OrderNotes    string           `json:"order_notes"`
}
