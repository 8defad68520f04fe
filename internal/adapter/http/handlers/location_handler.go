package handlers

import (
	"context"
	"net/http"

	request "delivery_cart/internal/adapter/http/dto/request"
	response "delivery_cart/internal/adapter/http/dto/response"
	"delivery_cart/internal/domain/entities"
	"delivery_cart/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles the delivery context and site status of a session.
type LocationHandler struct {
	usecase usecase.ISiteUseCase
}

func NewLocationHandler(uc usecase.ISiteUseCase) *LocationHandler {
	return &LocationHandler{usecase: uc}
}

func (h *LocationHandler) GetLocation(c *gin.Context) {
	h.respond(c, h.usecase.GetLocation)
}

func (h *LocationHandler) SetLocation(c *gin.Context) {
	var payload request.SetLocationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c)
		return
	}
	patch, err := payload.ToDomain()
	if err != nil {
		badPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.LocationSummary, error) {
		return h.usecase.SetLocation(ctx, id, patch)
	})
}

func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	var payload request.UpdateLocationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c)
		return
	}
	update, price := payload.ToDomain()
	h.respond(c, func(ctx context.Context, id string) (entities.LocationSummary, error) {
		return h.usecase.UpdateLocation(ctx, id, update, price)
	})
}

func (h *LocationHandler) RefreshNeighborhoodPrice(c *gin.Context) {
	n, err := h.usecase.RefreshNeighborhoodPrice(c.Request.Context(), c.Param(sessionIDParam))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNeighborhood(n))
}

func (h *LocationHandler) ZeroDeliveryPrice(c *gin.Context) {
	h.respond(c, h.usecase.ZeroDeliveryPrice)
}

func (h *LocationHandler) SetAddressDetails(c *gin.Context) {
	var payload request.AddressDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.LocationSummary, error) {
		return h.usecase.SetAddressDetails(ctx, id, payload.Details)
	})
}

func (h *LocationHandler) GetStatus(c *gin.Context) {
	h.status(c, h.usecase.GetStatus)
}

func (h *LocationHandler) RefreshStatus(c *gin.Context) {
	h.status(c, h.usecase.RefreshStatus)
}

func (h *LocationHandler) respond(
	c *gin.Context,
	op func(ctx context.Context, sessionID string) (entities.LocationSummary, error),
) {
	summary, err := op(c.Request.Context(), c.Param(sessionIDParam))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLocationSummary(summary))
}

func (h *LocationHandler) status(
	c *gin.Context,
	op func(ctx context.Context, sessionID string) (entities.SiteStatus, error),
) {
	st, err := op(c.Request.Context(), c.Param(sessionIDParam))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSiteStatus(st))
}
