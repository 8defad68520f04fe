package entities

import "time"

// SessionState is the persisted subset of a session.
//
// Storage model:
//   - DynamoDB: PK id, payload holds this struct as JSON
//   - Redis: key session:<id>, value holds this struct as JSON
type SessionState struct {
	ID                   string     `json:"id"`
	Version              int64      `json:"version"`
	Cart                 []LineItem `json:"cart"`
	AppliedCoupon        *Coupon    `json:"applied_coupon"`
	CouponUI             *CouponUI  `json:"coupon_ui"`
	OrderNotes           string     `json:"order_notes"`
	Location             *Location  `json:"location"`
	CurrentDeliveryPrice int64      `json:"current_delivery_price"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// SessionView is everything the storefront needs to render a session.
type SessionView struct {
	ID       string          `json:"id"`
	Cart     CartSummary     `json:"cart"`
	Location LocationSummary `json:"location"`
	Status   SiteStatus      `json:"status"`
}
