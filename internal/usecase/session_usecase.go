package usecase

import (
	"context"

	"delivery_cart/internal/domain/entities"
)

// ISessionUseCase creates and reads visitor sessions.
//
//   - POST /sessions              => CreateSession()
//   - GET  /sessions/{session_id} => GetSession()
type ISessionUseCase interface {
	CreateSession(ctx context.Context) (entities.SessionView, error)
	GetSession(ctx context.Context, sessionID string) (entities.SessionView, error)
}

type SessionUseCase struct {
	sessions *SessionRegistry
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(sessions *SessionRegistry) *SessionUseCase {
	return &SessionUseCase{sessions: sessions}
}

func (u *SessionUseCase) CreateSession(ctx context.Context) (entities.SessionView, error) {
	s, err := u.sessions.Create(ctx)
	if err != nil {
		return entities.SessionView{}, err
	}
	return u.view(s), nil
}

func (u *SessionUseCase) GetSession(ctx context.Context, sessionID string) (entities.SessionView, error) {
	s, err := u.sessions.Open(ctx, sessionID)
	if err != nil {
		return entities.SessionView{}, err
	}
	return u.view(s), nil
}

func (u *SessionUseCase) view(s *Session) entities.SessionView {
	var v entities.SessionView
	u.sessions.View(s, func(s *Session) {
		v = entities.SessionView{
			ID:       s.ID,
			Cart:     s.Cart.Summary(),
			Location: s.Site.Summary(),
			Status:   s.Site.Status(),
		}
	})
	return v
}
