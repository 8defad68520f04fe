package response

import "delivery_cart/internal/domain/entities"

type ModifierResponse struct {
	ID       string `json:"id"`
	GroupID  string `json:"group_id,omitempty"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type ComboComponentResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type LineItemResponse struct {
	Signature       string                   `json:"signature"`
	ProductID       string                   `json:"product_id"`
	Name            string                   `json:"name"`
	ImageURL        string                   `json:"image_url,omitempty"`
	IsCombo         bool                     `json:"is_combo"`
	UnitPrice       int64                    `json:"unit_price"`
	Quantity        int                      `json:"quantity"`
	DiscountPerUnit int64                    `json:"discount_per_unit"`
	Modifiers       []ModifierResponse       `json:"modifiers"`
	ComboComponents []ComboComponentResponse `json:"combo_components"`
	Subtotal        int64                    `json:"subtotal"`
	Total           int64                    `json:"total"`
}

type CouponResponse struct {
	Code    string `json:"code"`
	Percent int64  `json:"percent,omitempty"`
	Amount  int64  `json:"amount,omitempty"`
}

type CouponUIResponse struct {
	Enabled   bool   `json:"enabled"`
	DraftCode string `json:"draft_code"`
}

type CartResponse struct {
	Items         []LineItemResponse `json:"items"`
	TotalItems    int                `json:"total_items"`
	Subtotal      int64              `json:"subtotal"`
	DiscountTotal int64              `json:"discount_total"`
	Total         int64              `json:"total"`
	AppliedCoupon *CouponResponse    `json:"applied_coupon"`
	CouponUI      CouponUIResponse   `json:"coupon_ui"`
	OrderNotes    string             `json:"order_notes"`
}

func FromCartSummary(s entities.CartSummary) CartResponse {
	items := make([]LineItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, fromPricedLineItem(it))
	}
	res := CartResponse{
		Items:         items,
		TotalItems:    s.TotalItems,
		Subtotal:      s.Subtotal,
		DiscountTotal: s.DiscountTotal,
		Total:         s.Total,
		CouponUI: CouponUIResponse{
			Enabled:   s.CouponUI.Enabled,
			DraftCode: s.CouponUI.Code,
		},
		OrderNotes: s.OrderNotes,
	}
	if s.Coupon != nil {
		res.AppliedCoupon = &CouponResponse{
			Code:    s.Coupon.Code,
			Percent: s.Coupon.Percent,
			Amount:  s.Coupon.Amount,
		}
	}
	return res
}

func fromPricedLineItem(it entities.PricedLineItem) LineItemResponse {
	mods := make([]ModifierResponse, 0, len(it.Modifiers))
	for _, m := range it.Modifiers {
		mods = append(mods, ModifierResponse{
			ID:       m.ID,
			GroupID:  m.GroupID,
			Name:     m.Name,
			Price:    m.Price,
			Quantity: m.Quantity,
		})
	}
	combo := make([]ComboComponentResponse, 0, len(it.ComboComponents))
	for _, c := range it.ComboComponents {
		combo = append(combo, ComboComponentResponse{
			ProductID: c.ProductID,
			Name:      c.Name,
			Price:     c.Price,
			Quantity:  c.Quantity,
		})
	}
	return LineItemResponse{
		Signature:       it.Signature,
		ProductID:       it.ProductID,
		Name:            it.Name,
		ImageURL:        it.ImageURL,
		IsCombo:         it.IsCombo,
		UnitPrice:       it.UnitPrice,
		Quantity:        it.Quantity,
		DiscountPerUnit: it.DiscountPerUnit,
		Modifiers:       mods,
		ComboComponents: combo,
		Subtotal:        it.Subtotal,
		Total:           it.Total,
	}
}
