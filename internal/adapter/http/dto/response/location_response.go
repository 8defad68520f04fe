package response

import (
	"encoding/json"
	"time"

	"delivery_cart/internal/domain/entities"
)

type NeighborhoodResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DeliveryPrice int64  `json:"delivery_price"`
}

func FromNeighborhood(n entities.Neighborhood) NeighborhoodResponse {
	return NeighborhoodResponse{ID: n.ID, Name: n.Name, DeliveryPrice: n.DeliveryPrice}
}

type LocationResponse struct {
	City                 *entities.City       `json:"city"`
	Site                 entities.Site        `json:"site"`
	Neighborhood         NeighborhoodResponse `json:"neighborhood"`
	AddressDetails       map[string]string    `json:"address_details"`
	FormattedAddress     string               `json:"formatted_address"`
	PlaceID              string               `json:"place_id"`
	Lat                  float64              `json:"lat"`
	Lng                  float64              `json:"lng"`
	Mode                 string               `json:"mode"`
	CurrentDeliveryPrice int64                `json:"current_delivery_price"`
	SelectionOpen        bool                 `json:"selection_open"`
}

func FromLocationSummary(s entities.LocationSummary) LocationResponse {
	details := s.Location.AddressDetails
	if details == nil {
		details = map[string]string{}
	}
	return LocationResponse{
		City:                 s.Location.City,
		Site:                 s.Location.Site,
		Neighborhood:         FromNeighborhood(s.Location.Neighborhood),
		AddressDetails:       details,
		FormattedAddress:     s.Location.FormattedAddress,
		PlaceID:              s.Location.PlaceID,
		Lat:                  s.Location.Lat,
		Lng:                  s.Location.Lng,
		Mode:                 string(s.Location.Mode),
		CurrentDeliveryPrice: s.CurrentDeliveryPrice,
		SelectionOpen:        s.SelectionOpen,
	}
}

type StatusResponse struct {
	Status          string          `json:"status"`
	NextOpeningTime *time.Time      `json:"next_opening_time"`
	Networks        json.RawMessage `json:"networks"`
}

func FromSiteStatus(s entities.SiteStatus) StatusResponse {
	networks := s.Networks
	if len(networks) == 0 {
		networks = json.RawMessage("null")
	}
	return StatusResponse{
		Status:          string(s.State),
		NextOpeningTime: s.NextOpeningTime,
		Networks:        networks,
	}
}

type SessionResponse struct {
	ID       string           `json:"id"`
	Cart     CartResponse     `json:"cart"`
	Location LocationResponse `json:"location"`
	Status   StatusResponse   `json:"status"`
}

func FromSessionView(v entities.SessionView) SessionResponse {
	return SessionResponse{
		ID:       v.ID,
		Cart:     FromCartSummary(v.Cart),
		Location: FromLocationSummary(v.Location),
		Status:   FromSiteStatus(v.Status),
	}
}
