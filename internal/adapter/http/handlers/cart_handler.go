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

// CartHandler handles HTTP requests for the cart of a session. Every
// successful call answers with the full priced cart.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	h.respond(c, http.StatusOK, func(ctx context.Context, id string) (entities.CartSummary, error) {
		return h.usecase.GetCart(ctx, id)
	})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c)
		return
	}
	product, qty, selections := payload.ToDomain()
	h.respond(c, http.StatusCreated, func(ctx context.Context, id string) (entities.CartSummary, error) {
		return h.usecase.AddItem(ctx, id, product, qty, selections)
	})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.bySignature(c, h.usecase.RemoveItem)
}

func (h *CartHandler) IncrementItem(c *gin.Context) {
	h.bySignature(c, h.usecase.IncrementItem)
}

func (h *CartHandler) DecrementItem(c *gin.Context) {
	h.bySignature(c, h.usecase.DecrementItem)
}

func (h *CartHandler) IncrementModifier(c *gin.Context) {
	h.byModifier(c, h.usecase.IncrementModifier)
}

func (h *CartHandler) DecrementModifier(c *gin.Context) {
	h.byModifier(c, h.usecase.DecrementModifier)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	h.respond(c, http.StatusOK, h.usecase.ClearCart)
}

func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var payload request.CouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c)
		return
	}
	coupon := payload.ToDomain()
	h.respond(c, http.StatusOK, func(ctx context.Context, id string) (entities.CartSummary, error) {
		return h.usecase.ApplyCoupon(ctx, id, coupon)
	})
}

func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	h.respond(c, http.StatusOK, h.usecase.RemoveCoupon)
}

func (h *CartHandler) UpdateCouponUI(c *gin.Context) {
	var payload request.CouponUIRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c)
		return
	}
	h.respond(c, http.StatusOK, func(ctx context.Context, id string) (entities.CartSummary, error) {
		return h.usecase.UpdateCouponUI(ctx, id, payload.ToDomain())
	})
}

func (h *CartHandler) SetOrderNotes(c *gin.Context) {
	var payload request.OrderNotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c)
		return
	}
	h.respond(c, http.StatusOK, func(ctx context.Context, id string) (entities.CartSummary, error) {
		return h.usecase.SetOrderNotes(ctx, id, payload.Notes)
	})
}

func (h *CartHandler) bySignature(
	c *gin.Context,
	op func(ctx context.Context, sessionID, signature string) (entities.CartSummary, error),
) {
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c)
		return
	}
	h.respond(c, http.StatusOK, func(ctx context.Context, id string) (entities.CartSummary, error) {
		return op(ctx, id, payload.Signature)
	})
}

func (h *CartHandler) byModifier(
	c *gin.Context,
	op func(ctx context.Context, sessionID, signature, modifierID string) (entities.CartSummary, error),
) {
	var payload request.ModifierRefRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c)
		return
	}
	h.respond(c, http.StatusOK, func(ctx context.Context, id string) (entities.CartSummary, error) {
		return op(ctx, id, payload.Signature, payload.ModifierID.String())
	})
}

func (h *CartHandler) respond(
	c *gin.Context,
	status int,
	op func(ctx context.Context, sessionID string) (entities.CartSummary, error),
) {
	summary, err := op(c.Request.Context(), c.Param(sessionIDParam))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(status, response.FromCartSummary(summary))
}
