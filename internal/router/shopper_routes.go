package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/progear-storefront/internal/handler"
	"github.com/iliyamo/progear-storefront/internal/middleware"
)

// RegisterShopper mounts the logged-in shopper endpoints under /v1: cart,
// wishlist, orders and settings. Anonymous callers get 401, or a redirect to
// the login page when they submitted an HTML form.
func RegisterShopper(e *echo.Echo, cart *handler.CartHandler, orders *handler.OrderHandler, settings *handler.SettingsHandler) {
	g := e.Group("/v1", middleware.RequireLogin())

	// ---- Cart ----
	g.GET("/cart", cart.Get)
	g.DELETE("/cart", cart.Clear)
	g.POST("/cart/items", cart.AddItem)
	g.PATCH("/cart/items/:id", cart.UpdateQuantity)
	g.POST("/cart/items/:id/quantity", cart.UpdateQuantity)
	g.DELETE("/cart/items/:id", cart.RemoveItem)
	g.POST("/cart/items/:id/remove", cart.RemoveItem)

	// ---- Wishlist ----
	g.GET("/wishlist", cart.GetWishlist)
	g.POST("/wishlist/:id/toggle", cart.ToggleWishlist)
	g.DELETE("/wishlist/:id", cart.RemoveWishlist)

	// ---- Orders ----
	g.POST("/orders", orders.Create)
	g.GET("/orders", orders.List)
	g.GET("/orders/:id", orders.Get)
	g.POST("/orders/:id/cancel", orders.Cancel)

	// ---- Settings ----
	g.GET("/settings", settings.Get)
	g.POST("/settings", settings.Update)
	g.PATCH("/settings", settings.Update)
	g.POST("/settings/theme", settings.ToggleTheme)
}

