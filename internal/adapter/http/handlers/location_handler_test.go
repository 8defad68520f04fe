package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"delivery_cart/internal/adapter/http/handlers/mocks"
	"delivery_cart/internal/domain/entities"
	"delivery_cart/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLocationRouter(h *LocationHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/sessions/:session_id")
	g.GET("/location", h.GetLocation)
	g.PATCH("/location", h.SetLocation)
	g.PUT("/location", h.UpdateLocation)
	g.POST("/location/neighborhood/refresh", h.RefreshNeighborhoodPrice)
	g.POST("/location/delivery/zero", h.ZeroDeliveryPrice)
	g.PUT("/location/address-details", h.SetAddressDetails)
	g.GET("/site/status", h.GetStatus)
	g.POST("/site/status/refresh", h.RefreshStatus)
	return r
}

func sampleLocation() entities.LocationSummary {
	loc := entities.NewLocation()
	loc.Neighborhood = entities.NewNeighborhood("7", "Centro", 3000)
	return entities.LocationSummary{Location: loc, CurrentDeliveryPrice: 3000}
}

func TestLocationHandler_GetLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISiteUseCase(ctrl)
	r := newLocationRouter(NewLocationHandler(uc))

	uc.EXPECT().GetLocation(gomock.Any(), "s-1").Return(sampleLocation(), nil)

	w := doJSON(r, http.MethodGet, "/v1/sessions/s-1/location", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Neighborhood struct {
			ID string `json:"id"`
		} `json:"neighborhood"`
		CurrentDeliveryPrice int64  `json:"current_delivery_price"`
		Mode                 string `json:"mode"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Neighborhood.ID != "7" || body.CurrentDeliveryPrice != 3000 || body.Mode != "manual-neighborhood" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestLocationHandler_SetLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISiteUseCase(ctrl)
		r := newLocationRouter(NewLocationHandler(uc))

		w := doJSON(r, http.MethodPatch, "/v1/sessions/s-1/location", `{"mode":"teleport"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISiteUseCase(ctrl)
		r := newLocationRouter(NewLocationHandler(uc))

		uc.EXPECT().SetLocation(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.LocationPatch) (entities.LocationSummary, error) {
				if p.Site == nil || p.Site.ID != "2" || p.Neighborhood != nil {
					t.Errorf("unexpected patch %+v", p)
				}
				return sampleLocation(), nil
			},
		)

		w := doJSON(r, http.MethodPatch, "/v1/sessions/s-1/location", `{"site":{"site_id":2}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLocationHandler_UpdateLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISiteUseCase(ctrl)
	r := newLocationRouter(NewLocationHandler(uc))

	uc.EXPECT().UpdateLocation(gomock.Any(), "s-1", gomock.Any(), int64(4500)).Return(sampleLocation(), nil)

	w := doJSON(r, http.MethodPut, "/v1/sessions/s-1/location", `{"neighborhood":{"id":"7"},"price":"4500"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLocationHandler_RefreshNeighborhoodPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISiteUseCase(ctrl)
		r := newLocationRouter(NewLocationHandler(uc))

		uc.EXPECT().RefreshNeighborhoodPrice(gomock.Any(), "s-1").Return(entities.Neighborhood{}, usecase.ErrNeighborhoodUnavailable)

		w := doJSON(r, http.MethodPost, "/v1/sessions/s-1/location/neighborhood/refresh", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("NEIGHBORHOOD_UNAVAILABLE")) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISiteUseCase(ctrl)
		r := newLocationRouter(NewLocationHandler(uc))

		uc.EXPECT().RefreshNeighborhoodPrice(gomock.Any(), "s-1").Return(entities.NewNeighborhood("7", "Centro", 3200), nil)

		w := doJSON(r, http.MethodPost, "/v1/sessions/s-1/location/neighborhood/refresh", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"delivery_price":3200`)) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestLocationHandler_AddressDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISiteUseCase(ctrl)
		r := newLocationRouter(NewLocationHandler(uc))

		w := doJSON(r, http.MethodPut, "/v1/sessions/s-1/location/address-details", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISiteUseCase(ctrl)
		r := newLocationRouter(NewLocationHandler(uc))

		uc.EXPECT().SetAddressDetails(gomock.Any(), "s-1", map[string]string{"apartment": "301"}).Return(sampleLocation(), nil)

		w := doJSON(r, http.MethodPut, "/v1/sessions/s-1/location/address-details", `{"details":{"apartment":"301"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("zero delivery price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISiteUseCase(ctrl)
		r := newLocationRouter(NewLocationHandler(uc))

		uc.EXPECT().ZeroDeliveryPrice(gomock.Any(), "s-1").Return(entities.LocationSummary{Location: entities.NewLocation()}, nil)

		w := doJSON(r, http.MethodPost, "/v1/sessions/s-1/location/delivery/zero", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLocationHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISiteUseCase(ctrl)
		r := newLocationRouter(NewLocationHandler(uc))

		uc.EXPECT().GetStatus(gomock.Any(), "s-1").Return(entities.SiteStatus{
			State:    entities.StatusOpen,
			Networks: json.RawMessage(`{"instagram":"x"}`),
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/sessions/s-1/site/status", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		want := `{"status":"open","next_opening_time":null,"networks":{"instagram":"x"}}`
		if w.Body.String() != want {
			t.Fatalf("expected %s, got %s", want, w.Body.String())
		}
	})

	t.Run("refresh on closed registry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISiteUseCase(ctrl)
		r := newLocationRouter(NewLocationHandler(uc))

		uc.EXPECT().RefreshStatus(gomock.Any(), "s-1").Return(entities.SiteStatus{}, usecase.ErrRegistryClosed)

		w := doJSON(r, http.MethodPost, "/v1/sessions/s-1/site/status/refresh", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
