package request

import (
	"errors"

	"delivery_cart/internal/domain/entities"
	"delivery_cart/pkg"
)

var ErrInvalidLocationMode = errors.New("invalid location mode")

type CityRequest struct {
	ID   pkg.FlexString `json:"id"`
	Name string         `json:"name"`
}

func (r CityRequest) ToDomain() entities.City {
	return entities.City{ID: r.ID.String(), Name: r.Name}
}

// SiteRequest accepts the site id as "id" or the legacy "site_id".
type SiteRequest struct {
	ID            pkg.FlexString `json:"id"`
	SiteID        pkg.FlexString `json:"site_id"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	Phone         pkg.FlexString `json:"phone"`
	BusinessHours string         `json:"business_hours"`
	WhatsappLink  string         `json:"whatsapp_link"`
	CityID        pkg.FlexString `json:"city_id"`
	MapsURL       string         `json:"maps_url"`
	Visible       pkg.FlexBool   `json:"visible"`
	Email         string         `json:"email"`
	Active        pkg.FlexBool   `json:"active"`
	ComingSoon    pkg.FlexBool   `json:"coming_soon"`
}

func (r SiteRequest) ToDomain() entities.Site {
	id := r.ID.String()
	if id == "" {
		id = r.SiteID.String()
	}
	return entities.Site{
		ID:            id,
		Name:          r.Name,
		Address:       r.Address,
		Phone:         r.Phone.String(),
		BusinessHours: r.BusinessHours,
		WhatsappLink:  r.WhatsappLink,
		CityID:        r.CityID.String(),
		MapsURL:       r.MapsURL,
		Visible:       r.Visible.Bool(),
		Email:         r.Email,
		Active:        r.Active.Bool(),
		ComingSoon:    r.ComingSoon.Bool(),
	}
}

// NeighborhoodRequest accepts the neighborhood id as "id" or the legacy
// "neighborhood_id".
type NeighborhoodRequest struct {
	ID             pkg.FlexString `json:"id"`
	NeighborhoodID pkg.FlexString `json:"neighborhood_id"`
	Name           string         `json:"name"`
	DeliveryPrice  pkg.FlexInt    `json:"delivery_price"`
}

func (r NeighborhoodRequest) ToDomain() entities.Neighborhood {
	id := r.ID.String()
	if id == "" {
		id = r.NeighborhoodID.String()
	}
	return entities.NewNeighborhood(id, r.Name, r.DeliveryPrice.Int64())
}

// SetLocationRequest is merged into the location. Omitted fields are kept,
// except the neighborhood, which resets when omitted.
type SetLocationRequest struct {
	City             *CityRequest         `json:"city"`
	Site             *SiteRequest         `json:"site"`
	Neighborhood     *NeighborhoodRequest `json:"neighborhood"`
	AddressDetails   map[string]string    `json:"address_details"`
	FormattedAddress *string              `json:"formatted_address"`
	PlaceID          *string              `json:"place_id"`
	Lat              *float64             `json:"lat"`
	Lng              *float64             `json:"lng"`
	Mode             *string              `json:"mode"`
}

func (r SetLocationRequest) ToDomain() (entities.LocationPatch, error) {
	patch := entities.LocationPatch{
		AddressDetails:   r.AddressDetails,
		FormattedAddress: r.FormattedAddress,
		PlaceID:          r.PlaceID,
		Lat:              r.Lat,
		Lng:              r.Lng,
	}
	if r.City != nil {
		city := r.City.ToDomain()
		patch.City = &city
	}
	if r.Site != nil {
		site := r.Site.ToDomain()
		patch.Site = &site
	}
	if r.Neighborhood != nil {
		n := r.Neighborhood.ToDomain()
		patch.Neighborhood = &n
	}
	if r.Mode != nil {
		mode := entities.LocationMode(*r.Mode)
		if mode != entities.LocationModeManual && mode != entities.LocationModeGeocoded {
			return entities.LocationPatch{}, ErrInvalidLocationMode
		}
		patch.Mode = &mode
	}
	return patch, nil
}

// UpdateLocationRequest is what the location picker commits.
type UpdateLocationRequest struct {
	City             *CityRequest         `json:"city"`
	Site             *SiteRequest         `json:"site"`
	Neighborhood     *NeighborhoodRequest `json:"neighborhood"`
	Price            pkg.FlexInt          `json:"price"`
	FormattedAddress *string              `json:"formatted_address"`
	PlaceID          *string              `json:"place_id"`
	Lat              *float64             `json:"lat"`
	Lng              *float64             `json:"lng"`
}

func (r UpdateLocationRequest) ToDomain() (entities.LocationUpdate, int64) {
	update := entities.LocationUpdate{
		FormattedAddress: r.FormattedAddress,
		PlaceID:          r.PlaceID,
		Lat:              r.Lat,
		Lng:              r.Lng,
	}
	if r.City != nil {
		city := r.City.ToDomain()
		update.City = &city
	}
	if r.Site != nil {
		site := r.Site.ToDomain()
		update.Site = &site
	}
	if r.Neighborhood != nil {
		n := r.Neighborhood.ToDomain()
		update.Neighborhood = &n
	}
	price := r.Price.Int64()
	if price < 0 {
		price = 0
	}
	return update, price
}

type AddressDetailsRequest struct {
	Details map[string]string `json:"details" binding:"required"`
}
