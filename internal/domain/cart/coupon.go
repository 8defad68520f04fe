package cart

import "delivery_cart/internal/domain/entities"

// DistributeDiscount overwrites DiscountPerUnit on every item for the given
// coupon. It never accumulates, so calling it again after the cart changes
// fully replaces the previous distribution.
//
//   - percent: floor(unitPrice * percent / 100), per item
//   - fixed:   floor(amount / totalUnits), the same for every unit
//
// A fixed coupon on a cart with no units leaves the items untouched.
func DistributeDiscount(items []entities.LineItem, coupon entities.Coupon) {
	switch {
	case coupon.IsPercent():
		percent := clampPercent(coupon.Percent)
		for i := range items {
			base := items[i].UnitPrice
			if base < 0 {
				base = 0
			}
			items[i].DiscountPerUnit = base * percent / 100
		}
	case coupon.IsFixed():
		units := totalUnits(items)
		if units == 0 {
			return
		}
		share := coupon.Amount / int64(units)
		for i := range items {
			items[i].DiscountPerUnit = share
		}
	default:
		resetDiscounts(items)
	}
}

func resetDiscounts(items []entities.LineItem) {
	for i := range items {
		items[i].DiscountPerUnit = 0
	}
}

func totalUnits(items []entities.LineItem) int {
	n := 0
	for _, it := range items {
		if it.Quantity > 0 {
			n += it.Quantity
		}
	}
	return n
}

func clampPercent(p int64) int64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ApplyCoupon records the coupon, syncs the coupon widget and distributes
// the discount. On an empty cart only the state is recorded.
func (s *Store) ApplyCoupon(coupon entities.Coupon) {
	c := coupon
	s.coupon = &c

	code := coupon.Code
	if code == "" {
		code = s.couponUI.Code
	}
	s.couponUI = entities.CouponUI{Enabled: true, Code: code}

	if len(s.items) == 0 {
		return
	}
	DistributeDiscount(s.items, c)
}

// RemoveCoupon drops the applied coupon and zeroes every discount. The
// coupon widget keeps whatever the customer typed.
func (s *Store) RemoveCoupon() {
	s.coupon = nil
	resetDiscounts(s.items)
}

func (s *Store) reapplyCoupon() {
	if s.coupon != nil {
		s.ApplyCoupon(*s.coupon)
	}
}
