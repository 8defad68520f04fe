package routes

import (
	"delivery_cart/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
	PathSession  = "/sessions/:session_id"
)

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, cartHandler *handlers.CartHandler, locationHandler *handlers.LocationHandler) {
	rg.POST(PathSessions, sessionHandler.CreateSession)

	session := rg.Group(PathSession)
	{
		session.GET("", sessionHandler.GetSession)
		addCartRoutes(session, cartHandler)
		addLocationRoutes(session, locationHandler)
	}
}

func addCartRoutes(rg *gin.RouterGroup, h *handlers.CartHandler) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)

		cart.POST("/items", h.AddItem)
		cart.DELETE("/items", h.RemoveItem)
		cart.PATCH("/items/increment", h.IncrementItem)
		cart.PATCH("/items/decrement", h.DecrementItem)
		cart.PATCH("/items/modifiers/increment", h.IncrementModifier)
		cart.PATCH("/items/modifiers/decrement", h.DecrementModifier)

		cart.POST("/coupon", h.ApplyCoupon)
		cart.DELETE("/coupon", h.RemoveCoupon)
		cart.PATCH("/coupon-ui", h.UpdateCouponUI)
		cart.PUT("/notes", h.SetOrderNotes)
	}
}

func addLocationRoutes(rg *gin.RouterGroup, h *handlers.LocationHandler) {
	location := rg.Group("/location")
	{
		location.GET("", h.GetLocation)
		location.PATCH("", h.SetLocation)
		location.PUT("", h.UpdateLocation)
		location.POST("/neighborhood/refresh", h.RefreshNeighborhoodPrice)
		location.POST("/delivery/zero", h.ZeroDeliveryPrice)
		location.PUT("/address-details", h.SetAddressDetails)
	}

	site := rg.Group("/site")
	{
		site.GET("/status", h.GetStatus)
		site.POST("/status/refresh", h.RefreshStatus)
	}
}
