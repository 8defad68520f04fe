package handlers

import (
	"errors"
	"net/http"

	"delivery_cart/internal/usecase"
	"delivery_cart/pkg"

	"github.com/gin-gonic/gin"
)

const sessionIDParam = "session_id"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid payload", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func badPayload(c *gin.Context) {
	writeError(c, errInvalidPayload)
}

// mapUseCaseError translates usecase sentinels into the API envelope.
func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Invalid session id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "Product has no id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSignature), errors.Is(err, usecase.ErrInvalidModifierID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNeighborhoodUnavailable):
		return pkg.NewDomainErrorSimple("NEIGHBORHOOD_UNAVAILABLE", "Neighborhood price could not be fetched", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegistryClosed):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Service is shutting down", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
