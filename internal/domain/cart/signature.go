package cart

import (
	"encoding/json"

	"delivery_cart/internal/domain/entities"
)

type signaturePart struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Signature is the identity of a configured product: the product id plus
// the ordered modifier id/quantity pairs, e.g. `12-[{"id":"3","quantity":1}]`.
func Signature(productID string, modifiers []entities.Modifier) string {
	parts := make([]signaturePart, 0, len(modifiers))
	for _, m := range modifiers {
		parts = append(parts, signaturePart{ID: m.ID, Quantity: m.Quantity})
	}
	b, err := json.Marshal(parts)
	if err != nil {
		return productID + "-[]"
	}
	return productID + "-" + string(b)
}
