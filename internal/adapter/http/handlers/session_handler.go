package handlers

import (
	"net/http"

	response "delivery_cart/internal/adapter/http/dto/response"
	"delivery_cart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	view, err := h.usecase.CreateSession(c.Request.Context())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSessionView(view))
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	view, err := h.usecase.GetSession(c.Request.Context(), c.Param(sessionIDParam))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(view))
}
