package usecase

import (
	"time"

	"delivery_cart/internal/domain/cart"
	"delivery_cart/internal/domain/entities"
	"delivery_cart/internal/domain/site"

	"go.uber.org/zap"
)

// TakeSnapshot captures the persisted subset of a session.
func TakeSnapshot(id string, version int64, c *cart.Store, s *site.Context) entities.SessionState {
	ui := c.CouponUI()
	loc := s.Location()
	return entities.SessionState{
		ID:                   id,
		Version:              version,
		Cart:                 c.Items(),
		AppliedCoupon:        c.Coupon(),
		CouponUI:             &ui,
		OrderNotes:           c.OrderNotes(),
		Location:             &loc,
		CurrentDeliveryPrice: s.CurrentDeliveryPrice(),
		UpdatedAt:            time.Now().UTC(),
	}
}

// RestoreSnapshot rebuilds the cart and site context of a persisted session.
// A missing coupon widget state restores as disabled with an empty draft; a
// missing location restores as a fresh one.
func RestoreSnapshot(state entities.SessionState, backend site.Backend, logger *zap.Logger) (*cart.Store, *site.Context) {
	ui := entities.CouponUI{}
	if state.CouponUI != nil {
		ui = *state.CouponUI
	}
	c := cart.Restore(state.Cart, state.AppliedCoupon, &ui, state.OrderNotes)

	loc := entities.NewLocation()
	if state.Location != nil {
		loc = *state.Location
	}
	return c, site.Restore(backend, logger, loc, state.CurrentDeliveryPrice)
}
