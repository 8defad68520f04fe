package cart

import (
	"testing"

	"delivery_cart/internal/domain/entities"
)

func TestDistributeDiscount(t *testing.T) {
	t.Run("percent per item", func(t *testing.T) {
		items := []entities.LineItem{
			{UnitPrice: 999, Quantity: 1},
			{UnitPrice: 1000, Quantity: 3},
		}
		DistributeDiscount(items, entities.Coupon{Percent: 15})
		if items[0].DiscountPerUnit != 149 || items[1].DiscountPerUnit != 150 {
			t.Fatalf("unexpected discounts: %+v", items)
		}
	})

	t.Run("percent above 100 is clamped", func(t *testing.T) {
		items := []entities.LineItem{{UnitPrice: 1000, Quantity: 1}}
		DistributeDiscount(items, entities.Coupon{Percent: 250})
		if items[0].DiscountPerUnit != 1000 {
			t.Fatalf("expected 1000, got %d", items[0].DiscountPerUnit)
		}
	})

	t.Run("fixed split per unit regardless of price", func(t *testing.T) {
		items := []entities.LineItem{
			{UnitPrice: 100, Quantity: 1},
			{UnitPrice: 5000, Quantity: 2},
		}
		DistributeDiscount(items, entities.Coupon{Amount: 1000})
		for _, it := range items {
			if it.DiscountPerUnit != 333 {
				t.Fatalf("expected 333, got %d", it.DiscountPerUnit)
			}
		}
	})

	t.Run("fixed on empty cart does nothing", func(t *testing.T) {
		var items []entities.LineItem
		DistributeDiscount(items, entities.Coupon{Amount: 1000})
	})

	t.Run("recomputation overwrites", func(t *testing.T) {
		items := []entities.LineItem{{UnitPrice: 1000, Quantity: 2}}
		c := entities.Coupon{Percent: 10}
		DistributeDiscount(items, c)
		DistributeDiscount(items, c)
		if items[0].DiscountPerUnit != 100 {
			t.Fatalf("expected 100, got %d", items[0].DiscountPerUnit)
		}
	})

	t.Run("coupon without value clears discounts", func(t *testing.T) {
		items := []entities.LineItem{{UnitPrice: 1000, Quantity: 2, DiscountPerUnit: 300}}
		DistributeDiscount(items, entities.Coupon{Code: "EMPTY"})
		if items[0].DiscountPerUnit != 0 {
			t.Fatalf("expected 0, got %d", items[0].DiscountPerUnit)
		}
	})
}

func TestStore_ApplyCoupon(t *testing.T) {
	t.Run("empty cart records state only", func(t *testing.T) {
		s := NewStore()
		s.ApplyCoupon(entities.Coupon{Code: "FLAT", Amount: 500})
		if s.Coupon() == nil || s.Coupon().Code != "FLAT" {
			t.Fatalf("expected coupon recorded")
		}
		if ui := s.CouponUI(); !ui.Enabled || ui.Code != "FLAT" {
			t.Fatalf("unexpected coupon ui %+v", ui)
		}
		if s.DiscountTotal() != 0 {
			t.Fatalf("expected no discount")
		}
	})

	t.Run("keeps draft when coupon has no code", func(t *testing.T) {
		s := NewStore()
		code := "typed"
		s.SetCouponUI(entities.CouponUIPatch{Code: &code})
		s.ApplyCoupon(entities.Coupon{Percent: 5})
		if ui := s.CouponUI(); ui.Code != "typed" || !ui.Enabled {
			t.Fatalf("unexpected coupon ui %+v", ui)
		}
	})

	t.Run("scenario percent and fixed", func(t *testing.T) {
		s := NewStore()
		s.AddItem(burger(), 2, nil)

		s.ApplyCoupon(entities.Coupon{Percent: 10})
		if it := s.Items()[0]; it.DiscountPerUnit != 100 || s.Total() != 1800 {
			t.Fatalf("percent: discount %d total %d", it.DiscountPerUnit, s.Total())
		}

		s.ApplyCoupon(entities.Coupon{Amount: 300})
		if it := s.Items()[0]; it.DiscountPerUnit != 150 || s.Total() != 1700 {
			t.Fatalf("fixed: discount %d total %d", it.DiscountPerUnit, s.Total())
		}
	})
}

func TestStore_RemoveCoupon(t *testing.T) {
	s := NewStore()
	s.AddItem(burger(), 2, nil)
	s.ApplyCoupon(entities.Coupon{Code: "TEN", Percent: 10})
	s.RemoveCoupon()

	if s.Coupon() != nil {
		t.Fatalf("expected coupon cleared")
	}
	if s.DiscountTotal() != 0 || s.Total() != 2000 {
		t.Fatalf("expected discounts zeroed, total %d", s.Total())
	}
	if ui := s.CouponUI(); !ui.Enabled || ui.Code != "TEN" {
		t.Fatalf("coupon ui must be untouched, got %+v", ui)
	}

	s.IncrementItem(s.Items()[0].Signature)
	if s.DiscountTotal() != 0 {
		t.Fatalf("removed coupon must not come back")
	}
}
