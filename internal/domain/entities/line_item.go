package entities

// Modifier is an add-on selected for a line item (extra sauce, size, ...).
//
// ID is the selection id; GroupID is the modifier group it belongs to.
// Quantity is always >= 1 while the modifier is attached to an item.
type Modifier struct {
	ID       string `json:"id"`
	GroupID  string `json:"group_id,omitempty"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// ComboComponent is a product bundled inside a combo. It is informational
// only and never priced separately.
type ComboComponent struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// LineItem is one configured product in the cart.
//
// Invariants:
//   - Quantity >= 1 (an item that would drop to 0 is removed)
//   - Signature is unique inside a cart
//   - DiscountPerUnit applies to UnitPrice only, never to modifiers
//
// Money is expressed in the smallest currency unit.
type LineItem struct {
	Signature       string           `json:"signature"`
	ProductID       string           `json:"product_id"`
	Name            string           `json:"name"`
	ImageURL        string           `json:"image_url,omitempty"`
	IsCombo         bool             `json:"is_combo"`
	UnitPrice       int64            `json:"unit_price"`
	Quantity        int              `json:"quantity"`
	DiscountPerUnit int64            `json:"discount_per_unit"`
	Modifiers       []Modifier       `json:"modifiers"`
	ComboComponents []ComboComponent `json:"combo_components"`
}

// Clone returns a deep copy so callers never share slices with the store.
func (li LineItem) Clone() LineItem {
	out := li
	out.Modifiers = append([]Modifier(nil), li.Modifiers...)
	out.ComboComponents = append([]ComboComponent(nil), li.ComboComponents...)
	if out.Modifiers == nil {
		out.Modifiers = []Modifier{}
	}
	if out.ComboComponents == nil {
		out.ComboComponents = []ComboComponent{}
	}
	return out
}

// PricedLineItem is a line item together with its derived amounts.
type PricedLineItem struct {
	LineItem
	Subtotal int64 `json:"subtotal"`
	Total    int64 `json:"total"`
}
