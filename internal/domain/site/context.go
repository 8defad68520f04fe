// Package site holds the delivery context of a session: the selected site,
// neighborhood and delivery price, plus the open/closed status of the site.
package site

import (
	"context"
	"strings"
	"sync"

	"delivery_cart/internal/domain/entities"

	"go.uber.org/zap"
)

// Backend is the read side of the storefront backend.
type Backend interface {
	FetchNeighborhood(ctx context.Context, id string) (entities.Neighborhood, error)
	FetchSiteStatus(ctx context.Context, siteID string) (entities.StatusResponse, error)
}

// Context owns the location of one session. It is safe for concurrent use:
// the status poller writes to it from its own goroutine.
type Context struct {
	mu                   sync.RWMutex
	location             entities.Location
	currentDeliveryPrice int64
	selectionOpen        bool
	status               entities.SiteStatus

	backend Backend
	logger  *zap.Logger

	watchersMu sync.Mutex
	watchers   []func(siteID string)
}

func NewContext(backend Backend, logger *zap.Logger) *Context {
	return Restore(backend, logger, entities.NewLocation(), 0)
}

// Restore builds a context from a persisted location. A missing
// neighborhood is backfilled with the empty sentinel.
func Restore(backend Backend, logger *zap.Logger, loc entities.Location, currentDeliveryPrice int64) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	loc.Neighborhood = entities.NewNeighborhood(loc.Neighborhood.ID, loc.Neighborhood.Name, loc.Neighborhood.DeliveryPrice)
	if loc.Mode == "" {
		loc.Mode = entities.LocationModeManual
	}
	loc.AddressDetails = copyDetails(loc.AddressDetails)
	return &Context{
		location:             loc,
		currentDeliveryPrice: currentDeliveryPrice,
		status:               entities.UnknownStatus(),
		backend:              backend,
		logger:               logger,
	}
}

// OnSiteChange registers fn to run whenever the selected site id changes to
// a new non-empty value. Callbacks run after the context lock is released.
func (c *Context) OnSiteChange(fn func(siteID string)) {
	c.watchersMu.Lock()
	defer c.watchersMu.Unlock()
	c.watchers = append(c.watchers, fn)
}

// SetLocation merges patch into the location and opens the location picker.
// The neighborhood is always replaced: by the supplied one, or by the empty
// sentinel.
func (c *Context) SetLocation(patch entities.LocationPatch) {
	c.mu.Lock()
	before := c.location.Site.ID

	if patch.City != nil {
		city := *patch.City
		c.location.City = &city
	}
	if patch.Site != nil {
		c.location.Site = *patch.Site
	}
	if patch.Neighborhood != nil {
		n := patch.Neighborhood
		c.location.Neighborhood = entities.NewNeighborhood(n.ID, n.Name, n.DeliveryPrice)
	} else {
		c.location.Neighborhood = entities.EmptyNeighborhood(0)
	}
	if patch.AddressDetails != nil {
		c.location.AddressDetails = copyDetails(patch.AddressDetails)
	}
	if patch.FormattedAddress != nil {
		c.location.FormattedAddress = *patch.FormattedAddress
	}
	if patch.PlaceID != nil {
		c.location.PlaceID = *patch.PlaceID
	}
	if patch.Lat != nil {
		c.location.Lat = *patch.Lat
	}
	if patch.Lng != nil {
		c.location.Lng = *patch.Lng
	}
	if patch.Mode != nil {
		c.location.Mode = *patch.Mode
	}
	c.selectionOpen = true

	after := c.location.Site.ID
	c.mu.Unlock()

	c.notifySiteChange(before, after)
}

// UpdateLocation commits the location picker.
//
// With a neighborhood the mode is manual and the delivery price is price,
// falling back to the neighborhood's own price. Without one the mode is
// geocoded and the neighborhood is the empty sentinel carrying price.
func (c *Context) UpdateLocation(data entities.LocationUpdate, price int64) {
	if price < 0 {
		price = 0
	}

	c.mu.Lock()
	before := c.location.Site.ID

	if data.City != nil {
		city := *data.City
		c.location.City = &city
	}
	if data.Site != nil {
		c.location.Site = *data.Site
	}

	if data.Neighborhood != nil {
		n := data.Neighborhood
		delivery := price
		if delivery == 0 {
			delivery = n.DeliveryPrice
		}
		c.location.Mode = entities.LocationModeManual
		c.location.Neighborhood = entities.NewNeighborhood(n.ID, n.Name, delivery)
	} else {
		c.location.Mode = entities.LocationModeGeocoded
		c.location.Neighborhood = entities.EmptyNeighborhood(price)
	}

	if data.FormattedAddress != nil {
		c.location.FormattedAddress = *data.FormattedAddress
	}
	if data.PlaceID != nil {
		c.location.PlaceID = *data.PlaceID
	}
	if data.Lat != nil {
		c.location.Lat = *data.Lat
	}
	if data.Lng != nil {
		c.location.Lng = *data.Lng
	}

	c.currentDeliveryPrice = c.location.Neighborhood.DeliveryPrice
	c.selectionOpen = false

	after := c.location.Site.ID
	c.mu.Unlock()

	c.notifySiteChange(before, after)
}

// FetchNeighborhoodPrice reloads the current neighborhood from the backend.
// It returns nil, leaving the state unchanged, when there is no neighborhood
// id, the fetch fails, or the neighborhood changed while the fetch was in
// flight.
func (c *Context) FetchNeighborhoodPrice(ctx context.Context) *entities.Neighborhood {
	c.mu.RLock()
	id := c.location.Neighborhood.ID
	c.mu.RUnlock()

	if id == "" || c.backend == nil {
		return nil
	}

	fetched, err := c.backend.FetchNeighborhood(ctx, id)
	if err != nil {
		c.logger.Warn("neighborhood fetch failed", zap.String("neighborhood_id", id), zap.Error(err))
		return nil
	}
	if fetched.ID == "" {
		fetched.ID = id
	}
	n := entities.NewNeighborhood(fetched.ID, fetched.Name, fetched.DeliveryPrice)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.location.Neighborhood.ID != id {
		c.logger.Info("discarding stale neighborhood response",
			zap.String("requested_id", id),
			zap.String("current_id", c.location.Neighborhood.ID))
		return nil
	}
	c.location.Neighborhood = n
	return &n
}

// ZeroDeliveryPrice sets the neighborhood delivery price to 0, for pickup.
func (c *Context) ZeroDeliveryPrice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.location.Neighborhood.DeliveryPrice = 0
}

func (c *Context) SetAddressDetails(details map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.location.AddressDetails = copyDetails(details)
}

func (c *Context) SetSelectionOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectionOpen = open
}

func (c *Context) Location() entities.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()
	loc := c.location
	if loc.City != nil {
		city := *loc.City
		loc.City = &city
	}
	loc.AddressDetails = copyDetails(loc.AddressDetails)
	return loc
}

func (c *Context) SiteID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.location.Site.ID
}

func (c *Context) CurrentDeliveryPrice() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentDeliveryPrice
}

func (c *Context) Summary() entities.LocationSummary {
	loc := c.Location()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return entities.LocationSummary{
		Location:             loc,
		CurrentDeliveryPrice: c.currentDeliveryPrice,
		SelectionOpen:        c.selectionOpen,
	}
}

func (c *Context) Status() entities.SiteStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

func (c *Context) setStatus(s entities.SiteStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = s
}

func (c *Context) notifySiteChange(before, after string) {
	after = strings.TrimSpace(after)
	if after == "" || after == strings.TrimSpace(before) {
		return
	}
	c.watchersMu.Lock()
	watchers := append([]func(string){}, c.watchers...)
	c.watchersMu.Unlock()
	for _, fn := range watchers {
		fn(after)
	}
}

func copyDetails(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
