package usecase

import (
	"context"
	"errors"

	"delivery_cart/internal/domain/entities"
)

var ErrNeighborhoodUnavailable = errors.New("neighborhood price unavailable")

// ISiteUseCase exposes the delivery context and site status of a session.
//
//   - GET|PATCH|PUT /sessions/{id}/location              => GetLocation() / SetLocation() / UpdateLocation()
//   - POST /sessions/{id}/location/neighborhood/refresh  => RefreshNeighborhoodPrice()
//   - POST /sessions/{id}/location/delivery/zero         => ZeroDeliveryPrice()
//   - PUT  /sessions/{id}/location/address-details       => SetAddressDetails()
//   - GET|POST /sessions/{id}/site/status[/refresh]      => GetStatus() / RefreshStatus()
type ISiteUseCase interface {
	GetLocation(ctx context.Context, sessionID string) (entities.LocationSummary, error)
	SetLocation(ctx context.Context, sessionID string, patch entities.LocationPatch) (entities.LocationSummary, error)
	UpdateLocation(ctx context.Context, sessionID string, update entities.LocationUpdate, price int64) (entities.LocationSummary, error)
	RefreshNeighborhoodPrice(ctx context.Context, sessionID string) (entities.Neighborhood, error)
	ZeroDeliveryPrice(ctx context.Context, sessionID string) (entities.LocationSummary, error)
	SetAddressDetails(ctx context.Context, sessionID string, details map[string]string) (entities.LocationSummary, error)
	GetStatus(ctx context.Context, sessionID string) (entities.SiteStatus, error)
	RefreshStatus(ctx context.Context, sessionID string) (entities.SiteStatus, error)
}

type SiteUseCase struct {
	sessions *SessionRegistry
}

var _ ISiteUseCase = (*SiteUseCase)(nil)

func NewSiteUseCase(sessions *SessionRegistry) *SiteUseCase {
	return &SiteUseCase{sessions: sessions}
}

func (u *SiteUseCase) GetLocation(ctx context.Context, sessionID string) (entities.LocationSummary, error) {
	s, err := u.sessions.Open(ctx, sessionID)
	if err != nil {
		return entities.LocationSummary{}, err
	}
	return s.Site.Summary(), nil
}

func (u *SiteUseCase) SetLocation(ctx context.Context, sessionID string, patch entities.LocationPatch) (entities.LocationSummary, error) {
	return u.mutate(ctx, sessionID, func(s *Session) {
		s.Site.SetLocation(patch)
	})
}

func (u *SiteUseCase) UpdateLocation(ctx context.Context, sessionID string, update entities.LocationUpdate, price int64) (entities.LocationSummary, error) {
	return u.mutate(ctx, sessionID, func(s *Session) {
		s.Site.UpdateLocation(update, price)
	})
}

// RefreshNeighborhoodPrice reloads the selected neighborhood from the
// backend. The fetch runs outside the session lock.
func (u *SiteUseCase) RefreshNeighborhoodPrice(ctx context.Context, sessionID string) (entities.Neighborhood, error) {
	s, err := u.sessions.Open(ctx, sessionID)
	if err != nil {
		return entities.Neighborhood{}, err
	}
	n := s.Site.FetchNeighborhoodPrice(ctx)
	if n == nil {
		return entities.Neighborhood{}, ErrNeighborhoodUnavailable
	}
	u.sessions.Persist(s)
	return *n, nil
}

func (u *SiteUseCase) ZeroDeliveryPrice(ctx context.Context, sessionID string) (entities.LocationSummary, error) {
	return u.mutate(ctx, sessionID, func(s *Session) {
		s.Site.ZeroDeliveryPrice()
	})
}

func (u *SiteUseCase) SetAddressDetails(ctx context.Context, sessionID string, details map[string]string) (entities.LocationSummary, error) {
	return u.mutate(ctx, sessionID, func(s *Session) {
		s.Site.SetAddressDetails(details)
	})
}

func (u *SiteUseCase) GetStatus(ctx context.Context, sessionID string) (entities.SiteStatus, error) {
	s, err := u.sessions.Open(ctx, sessionID)
	if err != nil {
		return entities.SiteStatus{}, err
	}
	return s.Site.Status(), nil
}

// RefreshStatus fetches the site status now instead of waiting for the
// next poll.
func (u *SiteUseCase) RefreshStatus(ctx context.Context, sessionID string) (entities.SiteStatus, error) {
	s, err := u.sessions.Open(ctx, sessionID)
	if err != nil {
		return entities.SiteStatus{}, err
	}
	s.Poller.Refresh(ctx, "")
	return s.Site.Status(), nil
}

func (u *SiteUseCase) mutate(ctx context.Context, sessionID string, fn func(s *Session)) (entities.LocationSummary, error) {
	s, err := u.sessions.Open(ctx, sessionID)
	if err != nil {
		return entities.LocationSummary{}, err
	}
	var out entities.LocationSummary
	u.sessions.Update(s, func(s *Session) bool {
		fn(s)
		out = s.Site.Summary()
		return true
	})
	return out, nil
}
