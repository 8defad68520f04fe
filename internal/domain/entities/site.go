package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// Site is a store location. Reference data, never mutated by the cart.
type Site struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	BusinessHours string `json:"business_hours"`
	WhatsappLink  string `json:"whatsapp_link"`
	CityID        string `json:"city_id"`
	MapsURL       string `json:"maps_url"`
	Visible       bool   `json:"visible"`
	Email         string `json:"email"`
	Active        bool   `json:"active"`
	ComingSoon    bool   `json:"coming_soon"`
}

// DefaultSite is the site a fresh session starts on.
func DefaultSite() Site {
	return Site{ID: "1", Name: "PRINCIPAL", CityID: "8", Visible: true}
}

type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Neighborhood is a delivery zone with a flat delivery price.
type Neighborhood struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DeliveryPrice int64  `json:"delivery_price"`
}

// EmptyNeighborhood is the "none selected" value. Location never holds a
// nil neighborhood; this sentinel takes its place.
func EmptyNeighborhood(deliveryPrice int64) Neighborhood {
	if deliveryPrice < 0 {
		deliveryPrice = 0
	}
	return Neighborhood{DeliveryPrice: deliveryPrice}
}

// NewNeighborhood merges the given fields over the empty sentinel.
func NewNeighborhood(id, name string, deliveryPrice int64) Neighborhood {
	n := EmptyNeighborhood(deliveryPrice)
	n.ID = strings.TrimSpace(id)
	n.Name = name
	return n
}

func (n Neighborhood) IsEmpty() bool { return n.ID == "" }

type LocationMode string

const (
	LocationModeManual   LocationMode = "manual-neighborhood"
	LocationModeGeocoded LocationMode = "geocoded"
)

// Location is the delivery context of a session.
type Location struct {
	City             *City             `json:"city"`
	Site             Site              `json:"site"`
	Neighborhood     Neighborhood      `json:"neighborhood"`
	AddressDetails   map[string]string `json:"address_details,omitempty"`
	FormattedAddress string            `json:"formatted_address"`
	PlaceID          string            `json:"place_id"`
	Lat              float64           `json:"lat"`
	Lng              float64           `json:"lng"`
	Mode             LocationMode      `json:"mode"`
}

// NewLocation returns the location of a fresh session.
func NewLocation() Location {
	return Location{
		Site:         DefaultSite(),
		Neighborhood: EmptyNeighborhood(0),
		Mode:         LocationModeManual,
	}
}

// LocationPatch is merged into Location by SetLocation. Nil fields are kept,
// except Neighborhood: a nil neighborhood resets it to the empty sentinel.
type LocationPatch struct {
	City             *City
	Site             *Site
	Neighborhood     *Neighborhood
	AddressDetails   map[string]string
	FormattedAddress *string
	PlaceID          *string
	Lat              *float64
	Lng              *float64
	Mode             *LocationMode
}

// LocationUpdate is what a location picker commits.
type LocationUpdate struct {
	City             *City
	Site             *Site
	Neighborhood     *Neighborhood
	FormattedAddress *string
	PlaceID          *string
	Lat              *float64
	Lng              *float64
}

// LocationSummary is the read view of a session's delivery context.
type LocationSummary struct {
	Location             Location `json:"location"`
	CurrentDeliveryPrice int64    `json:"current_delivery_price"`
	SelectionOpen        bool     `json:"selection_open"`
}

type StatusState string

const (
	StatusUnknown StatusState = "unknown"
	StatusOpen    StatusState = "open"
	StatusClosed  StatusState = "closed"
)

// NormalizeStatus maps the backend's raw status string.
func NormalizeStatus(raw string) StatusState {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "open":
		return StatusOpen
	case "closed", "close":
		return StatusClosed
	default:
		return StatusUnknown
	}
}

// SiteStatus is the open/closed state of the selected site.
//
// Networks is opaque presence data (social links etc.) and survives failed
// refreshes.
type SiteStatus struct {
	State           StatusState     `json:"status"`
	NextOpeningTime *time.Time      `json:"next_opening_time"`
	Networks        json.RawMessage `json:"networks"`
	SiteID          string          `json:"site_id,omitempty"`
}

func UnknownStatus() SiteStatus {
	return SiteStatus{State: StatusUnknown}
}

// StatusResponse is the decoded body of GET /site/{id}/status.
type StatusResponse struct {
	Status          string
	NextOpeningTime *time.Time
	Networks        json.RawMessage
}
