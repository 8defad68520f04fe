package usecase

import (
	"context"
	"errors"
	"strings"

	"delivery_cart/internal/domain/entities"

	"go.uber.org/zap"
)

var (
	ErrInvalidProduct    = errors.New("invalid product")
	ErrInvalidSignature  = errors.New("invalid line item signature")
	ErrInvalidModifierID = errors.New("invalid modifier id")
)

// ICartUseCase exposes the cart of a session.
//
//   - GET    /sessions/{id}/cart                              => GetCart()
//   - POST   /sessions/{id}/cart/items                        => AddItem()
//   - DELETE /sessions/{id}/cart/items                        => RemoveItem()
//   - PATCH  /sessions/{id}/cart/items/increment|decrement    => IncrementItem() / DecrementItem()
//   - PATCH  /sessions/{id}/cart/items/modifiers/...          => IncrementModifier() / DecrementModifier()
//   - DELETE /sessions/{id}/cart                              => ClearCart()
//   - POST|DELETE /sessions/{id}/cart/coupon                  => ApplyCoupon() / RemoveCoupon()
type ICartUseCase interface {
	GetCart(ctx context.Context, sessionID string) (entities.CartSummary, error)
	AddItem(ctx context.Context, sessionID string, product entities.Product, quantity int, selections []entities.ModifierSelection) (entities.CartSummary, error)
	RemoveItem(ctx context.Context, sessionID, signature string) (entities.CartSummary, error)
	IncrementItem(ctx context.Context, sessionID, signature string) (entities.CartSummary, error)
	DecrementItem(ctx context.Context, sessionID, signature string) (entities.CartSummary, error)
	IncrementModifier(ctx context.Context, sessionID, signature, modifierID string) (entities.CartSummary, error)
	DecrementModifier(ctx context.Context, sessionID, signature, modifierID string) (entities.CartSummary, error)
	ClearCart(ctx context.Context, sessionID string) (entities.CartSummary, error)
	ApplyCoupon(ctx context.Context, sessionID string, coupon entities.Coupon) (entities.CartSummary, error)
	RemoveCoupon(ctx context.Context, sessionID string) (entities.CartSummary, error)
	UpdateCouponUI(ctx context.Context, sessionID string, patch entities.CouponUIPatch) (entities.CartSummary, error)
	SetOrderNotes(ctx context.Context, sessionID, notes string) (entities.CartSummary, error)
}

type CartUseCase struct {
	sessions *SessionRegistry
	logger   *zap.Logger
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(sessions *SessionRegistry, logger *zap.Logger) *CartUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartUseCase{sessions: sessions, logger: logger}
}

func (u *CartUseCase) GetCart(ctx context.Context, sessionID string) (entities.CartSummary, error) {
	s, err := u.sessions.Open(ctx, sessionID)
	if err != nil {
		return entities.CartSummary{}, err
	}
	var out entities.CartSummary
	u.sessions.View(s, func(s *Session) { out = s.Cart.Summary() })
	return out, nil
}

func (u *CartUseCase) AddItem(ctx context.Context, sessionID string, product entities.Product, quantity int, selections []entities.ModifierSelection) (entities.CartSummary, error) {
	if strings.TrimSpace(product.ResolveProductID()) == "" {
		return entities.CartSummary{}, ErrInvalidProduct
	}
	return u.mutate(ctx, sessionID, func(s *Session) (bool, error) {
		item := s.Cart.AddItem(product, quantity, selections)
		u.logger.Debug("item added",
			zap.String("session_id", s.ID),
			zap.String("signature", item.Signature),
			zap.Int("quantity", item.Quantity))
		return true, nil
	})
}

func (u *CartUseCase) RemoveItem(ctx context.Context, sessionID, signature string) (entities.CartSummary, error) {
	return u.mutateItem(ctx, sessionID, signature, func(s *Session, sig string) bool {
		return s.Cart.RemoveItem(sig)
	})
}

func (u *CartUseCase) IncrementItem(ctx context.Context, sessionID, signature string) (entities.CartSummary, error) {
	return u.mutateItem(ctx, sessionID, signature, func(s *Session, sig string) bool {
		return s.Cart.IncrementItem(sig)
	})
}

func (u *CartUseCase) DecrementItem(ctx context.Context, sessionID, signature string) (entities.CartSummary, error) {
	return u.mutateItem(ctx, sessionID, signature, func(s *Session, sig string) bool {
		return s.Cart.DecrementItem(sig)
	})
}

func (u *CartUseCase) IncrementModifier(ctx context.Context, sessionID, signature, modifierID string) (entities.CartSummary, error) {
	return u.mutateModifier(ctx, sessionID, signature, modifierID, func(s *Session, sig, mod string) bool {
		return s.Cart.IncrementModifier(sig, mod)
	})
}

func (u *CartUseCase) DecrementModifier(ctx context.Context, sessionID, signature, modifierID string) (entities.CartSummary, error) {
	return u.mutateModifier(ctx, sessionID, signature, modifierID, func(s *Session, sig, mod string) bool {
		return s.Cart.DecrementModifier(sig, mod)
	})
}

func (u *CartUseCase) ClearCart(ctx context.Context, sessionID string) (entities.CartSummary, error) {
	return u.mutate(ctx, sessionID, func(s *Session) (bool, error) {
		return s.Cart.Clear(), nil
	})
}

// ApplyCoupon never rejects a coupon. Negative values count as 0, so a
// coupon with nothing usable zeroes every discount.
func (u *CartUseCase) ApplyCoupon(ctx context.Context, sessionID string, coupon entities.Coupon) (entities.CartSummary, error) {
	coupon.Code = strings.TrimSpace(coupon.Code)
	coupon.Percent = max(coupon.Percent, 0)
	coupon.Amount = max(coupon.Amount, 0)
	return u.mutate(ctx, sessionID, func(s *Session) (bool, error) {
		s.Cart.ApplyCoupon(coupon)
		return true, nil
	})
}

func (u *CartUseCase) RemoveCoupon(ctx context.Context, sessionID string) (entities.CartSummary, error) {
	return u.mutate(ctx, sessionID, func(s *Session) (bool, error) {
		if s.Cart.Coupon() == nil {
			return false, nil
		}
		s.Cart.RemoveCoupon()
		return true, nil
	})
}

func (u *CartUseCase) UpdateCouponUI(ctx context.Context, sessionID string, patch entities.CouponUIPatch) (entities.CartSummary, error) {
	return u.mutate(ctx, sessionID, func(s *Session) (bool, error) {
		s.Cart.SetCouponUI(patch)
		return true, nil
	})
}

func (u *CartUseCase) SetOrderNotes(ctx context.Context, sessionID, notes string) (entities.CartSummary, error) {
	return u.mutate(ctx, sessionID, func(s *Session) (bool, error) {
		s.Cart.SetOrderNotes(notes)
		return true, nil
	})
}

func (u *CartUseCase) mutateItem(ctx context.Context, sessionID, signature string, fn func(s *Session, sig string) bool) (entities.CartSummary, error) {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return entities.CartSummary{}, ErrInvalidSignature
	}
	return u.mutate(ctx, sessionID, func(s *Session) (bool, error) {
		return fn(s, signature), nil
	})
}

func (u *CartUseCase) mutateModifier(ctx context.Context, sessionID, signature, modifierID string, fn func(s *Session, sig, mod string) bool) (entities.CartSummary, error) {
	signature = strings.TrimSpace(signature)
	modifierID = strings.TrimSpace(modifierID)
	if signature == "" {
		return entities.CartSummary{}, ErrInvalidSignature
	}
	if modifierID == "" {
		return entities.CartSummary{}, ErrInvalidModifierID
	}
	return u.mutate(ctx, sessionID, func(s *Session) (bool, error) {
		return fn(s, signature, modifierID), nil
	})
}

// mutate applies fn to the session cart and returns the resulting summary.
// The session is persisted only when fn reports a change; an unknown
// signature or modifier id is a no-op.
func (u *CartUseCase) mutate(ctx context.Context, sessionID string, fn func(s *Session) (bool, error)) (entities.CartSummary, error) {
	s, err := u.sessions.Open(ctx, sessionID)
	if err != nil {
		return entities.CartSummary{}, err
	}
	var (
		out   entities.CartSummary
		opErr error
	)
	u.sessions.Update(s, func(s *Session) bool {
		changed, err := fn(s)
		opErr = err
		out = s.Cart.Summary()
		return changed && err == nil
	})
	if opErr != nil {
		return entities.CartSummary{}, opErr
	}
	return out, nil
}
