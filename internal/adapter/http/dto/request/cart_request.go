package request

import (
	"strings"

	"delivery_cart/internal/domain/entities"
	"delivery_cart/pkg"
)

type PresentationRequest struct {
	ProductID pkg.FlexString `json:"product_id"`
	Price     pkg.FlexInt    `json:"price"`
}

type ComboItemRequest struct {
	ProductID pkg.FlexString `json:"product_id"`
	Name      string         `json:"name"`
	Price     pkg.FlexInt    `json:"price"`
	Quantity  pkg.FlexInt    `json:"quantity"`
}

// ProductRequest is the menu product as the storefront sends it.
type ProductRequest struct {
	ID            pkg.FlexString        `json:"id"`
	Name          string                `json:"name"`
	ImageURL      string                `json:"image_url"`
	GeneralPrice  pkg.FlexInt           `json:"general_price"`
	IsCombo       pkg.FlexBool          `json:"is_combo"`
	Presentations []PresentationRequest `json:"presentations"`
	ComboItems    []ComboItemRequest    `json:"combo_items"`
}

type ModifierRequest struct {
	ID       pkg.FlexString `json:"id"`
	GroupID  pkg.FlexString `json:"group_id"`
	Name     string         `json:"name"`
	Price    pkg.FlexInt    `json:"price"`
	Quantity pkg.FlexInt    `json:"quantity"`
}

type AddItemRequest struct {
	Product   ProductRequest    `json:"product"`
	Quantity  pkg.FlexInt       `json:"quantity"`
	Modifiers []ModifierRequest `json:"modifiers"`
}

// ToDomain returns the product, the quantity (1 when missing) and the
// modifier selections.
func (r AddItemRequest) ToDomain() (entities.Product, int, []entities.ModifierSelection) {
	p := entities.Product{
		ID:           strings.TrimSpace(r.Product.ID.String()),
		Name:         r.Product.Name,
		ImageURL:     r.Product.ImageURL,
		GeneralPrice: r.Product.GeneralPrice.Int64(),
		IsCombo:      r.Product.IsCombo.Bool(),
	}
	for _, pr := range r.Product.Presentations {
		p.Presentations = append(p.Presentations, entities.Presentation{
			ProductID: pr.ProductID.String(),
			Price:     pr.Price.Int64(),
		})
	}
	for _, ci := range r.Product.ComboItems {
		p.ComboItems = append(p.ComboItems, entities.ComboComponent{
			ProductID: ci.ProductID.String(),
			Name:      ci.Name,
			Price:     ci.Price.Int64(),
			Quantity:  int(ci.Quantity.OrDefault(1)),
		})
	}

	selections := make([]entities.ModifierSelection, 0, len(r.Modifiers))
	for _, m := range r.Modifiers {
		selections = append(selections, entities.ModifierSelection{
			ID:       m.ID.String(),
			GroupID:  m.GroupID.String(),
			Name:     m.Name,
			Price:    m.Price.Int64(),
			Quantity: int(m.Quantity.OrDefault(1)),
		})
	}
	return p, int(r.Quantity.OrDefault(1)), selections
}

type SignatureRequest struct {
	Signature string `json:"signature" binding:"required"`
}

type ModifierRefRequest struct {
	Signature  string         `json:"signature" binding:"required"`
	ModifierID pkg.FlexString `json:"modifier_id"`
}

type CouponRequest struct {
	Code    string      `json:"code"`
	Percent pkg.FlexInt `json:"percent"`
	Amount  pkg.FlexInt `json:"amount"`
}

func (r CouponRequest) ToDomain() entities.Coupon {
	return entities.Coupon{
		Code:    strings.TrimSpace(r.Code),
		Percent: max(r.Percent.Int64(), 0),
		Amount:  max(r.Amount.Int64(), 0),
	}
}

// CouponUIRequest is a partial update of the coupon widget.
type CouponUIRequest struct {
	Enabled *bool   `json:"enabled"`
	Code    *string `json:"draft_code"`
}

func (r CouponUIRequest) ToDomain() entities.CouponUIPatch {
	return entities.CouponUIPatch{Enabled: r.Enabled, Code: r.Code}
}

type OrderNotesRequest struct {
	Notes string `json:"notes"`
}
