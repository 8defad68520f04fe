package interfaces

import (
	"context"
	"delivery_cart/internal/domain/entities"
)

// ISiteBackend abstracts the storefront backend reads used by the site context:
//   - GET /neighborhood/{id}/
//   - GET /site/{id}/status
//
//go:generate mockgen -source=site_backend_interface.go -destination=mocks/site_backend_interface_mock.go -package=mock_interfaces

type ISiteBackend interface {
	FetchNeighborhood(ctx context.Context, id string) (entities.Neighborhood, error)
	FetchSiteStatus(ctx context.Context, siteID string) (entities.StatusResponse, error)
}
