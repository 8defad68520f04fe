// Package cart holds the shopping cart of a session: line items, pricing
// queries and coupon application.
package cart

import (
	"strings"

	"delivery_cart/internal/domain/entities"
	"delivery_cart/internal/domain/pricing"
)

// Store owns the ordered line items and the applied coupon of one cart.
//
// Store is not safe for concurrent use; the owning session serializes
// access. Every mutation runs to completion and never touches the network.
type Store struct {
	items      []entities.LineItem
	coupon     *entities.Coupon
	couponUI   entities.CouponUI
	orderNotes string
}

func NewStore() *Store {
	return &Store{items: []entities.LineItem{}}
}

// AddItem builds a line item from the product and merges it into the cart.
// An item with the same signature gets its quantity increased instead of
// being duplicated. Quantities below 1 count as 1.
func (s *Store) AddItem(product entities.Product, quantity int, selections []entities.ModifierSelection) entities.LineItem {
	if quantity < 1 {
		quantity = 1
	}
	item := newLineItem(product, quantity, selections)

	idx := s.indexOf(item.Signature)
	if idx >= 0 {
		s.items[idx].Quantity += quantity
	} else {
		s.items = append(s.items, item)
		idx = len(s.items) - 1
	}

	s.reapplyCoupon()
	return s.items[idx].Clone()
}

func newLineItem(product entities.Product, quantity int, selections []entities.ModifierSelection) entities.LineItem {
	modifiers := make([]entities.Modifier, 0, len(selections))
	for _, sel := range selections {
		q := sel.Quantity
		if q < 1 {
			q = 1
		}
		modifiers = append(modifiers, entities.Modifier{
			ID:       strings.TrimSpace(sel.ID),
			GroupID:  sel.GroupID,
			Name:     sel.Name,
			Price:    sel.Price,
			Quantity: q,
		})
	}

	combo := make([]entities.ComboComponent, 0, len(product.ComboItems))
	combo = append(combo, product.ComboItems...)

	productID := strings.TrimSpace(product.ResolveProductID())
	return entities.LineItem{
		Signature:       Signature(productID, modifiers),
		ProductID:       productID,
		Name:            product.Name,
		ImageURL:        product.ImageURL,
		IsCombo:         product.IsCombo,
		UnitPrice:       product.ResolveUnitPrice(),
		Quantity:        quantity,
		Modifiers:       modifiers,
		ComboComponents: combo,
	}
}

// RemoveItem deletes the item with the given signature. Reports whether
// anything was removed.
func (s *Store) RemoveItem(signature string) bool {
	idx := s.indexOf(signature)
	if idx < 0 {
		return false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.reapplyCoupon()
	return true
}

func (s *Store) IncrementItem(signature string) bool {
	idx := s.indexOf(signature)
	if idx < 0 {
		return false
	}
	s.items[idx].Quantity++
	s.reapplyCoupon()
	return true
}

// DecrementItem lowers the quantity by one and removes the item at zero.
func (s *Store) DecrementItem(signature string) bool {
	idx := s.indexOf(signature)
	if idx < 0 {
		return false
	}
	s.items[idx].Quantity--
	if s.items[idx].Quantity <= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}
	s.reapplyCoupon()
	return true
}

// IncrementModifier adds one unit of a modifier inside the matched item.
// The item signature is not recomputed.
func (s *Store) IncrementModifier(signature, modifierID string) bool {
	idx, m := s.modifierIndex(signature, modifierID)
	if m < 0 {
		return false
	}
	s.items[idx].Modifiers[m].Quantity++
	return true
}

// DecrementModifier removes one unit of a modifier; below 1 the modifier is
// detached from the item. The item itself always stays.
func (s *Store) DecrementModifier(signature, modifierID string) bool {
	idx, m := s.modifierIndex(signature, modifierID)
	if m < 0 {
		return false
	}
	mods := s.items[idx].Modifiers
	mods[m].Quantity--
	if mods[m].Quantity < 1 {
		s.items[idx].Modifiers = append(mods[:m], mods[m+1:]...)
	}
	return true
}

// Clear empties the cart. An applied coupon stays applied.
func (s *Store) Clear() bool {
	if len(s.items) == 0 {
		return false
	}
	s.items = []entities.LineItem{}
	return true
}

func (s *Store) SetCouponUI(patch entities.CouponUIPatch) {
	if patch.Enabled != nil {
		s.couponUI.Enabled = *patch.Enabled
	}
	if patch.Code != nil {
		s.couponUI.Code = *patch.Code
	}
}

func (s *Store) SetOrderNotes(notes string) {
	s.orderNotes = notes
}

func (s *Store) indexOf(signature string) int {
	if signature == "" {
		return -1
	}
	for i := range s.items {
		if s.items[i].Signature == signature {
			return i
		}
	}
	return -1
}

func (s *Store) modifierIndex(signature, modifierID string) (int, int) {
	idx := s.indexOf(signature)
	if idx < 0 {
		return -1, -1
	}
	for m := range s.items[idx].Modifiers {
		if s.items[idx].Modifiers[m].ID == modifierID {
			return idx, m
		}
	}
	return idx, -1
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []entities.LineItem {
	out := make([]entities.LineItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it.Clone())
	}
	return out
}

// Coupon returns the applied coupon, nil when none.
func (s *Store) Coupon() *entities.Coupon {
	if s.coupon == nil {
		return nil
	}
	c := *s.coupon
	return &c
}

func (s *Store) CouponUI() entities.CouponUI { return s.couponUI }

func (s *Store) OrderNotes() string { return s.orderNotes }

func (s *Store) TotalItemCount() int {
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *Store) Subtotal() int64 {
	var sum int64
	for _, it := range s.items {
		sum += pricing.Subtotal(it)
	}
	return sum
}

func (s *Store) Total() int64 {
	var sum int64
	for _, it := range s.items {
		sum += pricing.Total(it)
	}
	return sum
}

func (s *Store) DiscountTotal() int64 {
	var sum int64
	for _, it := range s.items {
		sum += pricing.Discount(it)
	}
	return sum
}

func (s *Store) ContainsProduct(productID string) bool {
	for _, it := range s.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

func (s *Store) Summary() entities.CartSummary {
	priced := make([]entities.PricedLineItem, 0, len(s.items))
	for _, it := range s.items {
		priced = append(priced, entities.PricedLineItem{
			LineItem: it.Clone(),
			Subtotal: pricing.Subtotal(it),
			Total:    pricing.Total(it),
		})
	}
	return entities.CartSummary{
		Items:         priced,
		TotalItems:    s.TotalItemCount(),
		Subtotal:      s.Subtotal(),
		DiscountTotal: s.DiscountTotal(),
		Total:         s.Total(),
		Coupon:        s.Coupon(),
		CouponUI:      s.couponUI,
		OrderNotes:    s.orderNotes,
	}
}

// Restore rebuilds a store from persisted state. Quantities below 1 are
// raised to 1, duplicate signatures are merged, and an applied coupon is
// redistributed over the restored items.
func Restore(items []entities.LineItem, coupon *entities.Coupon, ui *entities.CouponUI, orderNotes string) *Store {
	s := NewStore()
	for _, it := range items {
		it = it.Clone()
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		if it.Signature == "" {
			it.Signature = Signature(it.ProductID, it.Modifiers)
		}
		if idx := s.indexOf(it.Signature); idx >= 0 {
			s.items[idx].Quantity += it.Quantity
			continue
		}
		s.items = append(s.items, it)
	}
	if ui != nil {
		s.couponUI = *ui
	}
	s.orderNotes = orderNotes
	if coupon != nil {
		c := *coupon
		s.coupon = &c
		if len(s.items) > 0 {
			DistributeDiscount(s.items, c)
		}
	}
	return s
}
