package interfaces

import (
	"context"
	"delivery_cart/internal/domain/entities"
)

// ISessionStateRepository persists the declared subset of a session
// (cart, coupon, coupon widget, order notes, location).
//
// Load returns an empty state (ID == "") when nothing is stored for the id.
//
//go:generate mockgen -source=session_state_repository_interface.go -destination=mocks/session_state_repository_interface_mock.go -package=mock_interfaces

type ISessionStateRepository interface {
	Save(ctx context.Context, state entities.SessionState) error
	Load(ctx context.Context, id string) (entities.SessionState, error)
}
