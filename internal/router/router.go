package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/progear-storefront/internal/handler"
	"github.com/iliyamo/progear-storefront/internal/middleware"
	"github.com/iliyamo/progear-storefront/internal/model"
)

// Handlers groups the HTTP handlers mounted by RegisterRoutes.
type Handlers struct {
	Pages    *handler.PageHandler
	Health   *handler.HealthHandler
	Auth     *handler.AuthHandler
	Products *handler.ProductHandler
	Cart     *handler.CartHandler
	Orders   *handler.OrderHandler
	Settings *handler.SettingsHandler
	Admin    *handler.AdminHandler
}

// Middleware groups the cross-cutting middleware. Session is required; Cache
// and RateLimit may be nil.
type Middleware struct {
	Session   echo.MiddlewareFunc
	Cache     echo.MiddlewareFunc
	RateLimit echo.MiddlewareFunc
}

func (m Middleware) cache() []echo.MiddlewareFunc {
	if m.Cache == nil {
		return nil
	}
	return []echo.MiddlewareFunc{m.Cache}
}

func (m Middleware) rateLimit() []echo.MiddlewareFunc {
	if m.RateLimit == nil {
		return nil
	}
	return []echo.MiddlewareFunc{m.RateLimit}
}

// RegisterRoutes mounts the whole storefront on e: probes, the /v1 API and
// the HTML pages. Every request passes through the session middleware so
// pages and API see the same identity.
func RegisterRoutes(e *echo.Echo, h Handlers, mw Middleware) {
	if mw.Session != nil {
		e.Use(mw.Session)
	}

	e.GET("/healthz", handler.Health)
	e.GET("/readyz", h.Health.Ready)

	RegisterAuth(e, h.Auth, mw)
	RegisterCatalog(e, h.Products, mw)
	RegisterShopper(e, h.Cart, h.Orders, h.Settings)
	RegisterAdmin(e, h.Admin)
	RegisterPages(e, h.Pages)
}

// RegisterAuth mounts register, login, logout and me. Register and login are
// rate limited against password guessing.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, mw Middleware) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register, mw.rateLimit()...)
	g.POST("/login", a.Login, mw.rateLimit()...)
	g.POST("/logout", a.Logout)

	e.GET("/v1/me", a.Me, middleware.RequireLogin())
}

// RegisterCatalog mounts the public product API. Read endpoints go through
// the response cache; posting a review needs a login.
func RegisterCatalog(e *echo.Echo, p *handler.ProductHandler, mw Middleware) {
	g := e.Group("/v1/products")
	g.GET("", p.List, mw.cache()...)
	g.GET("/suggest", p.Suggest, mw.cache()...)
	g.GET("/facets", p.Facets, mw.cache()...)
	g.GET("/:id", p.Get, mw.cache()...)
	g.GET("/:id/reviews", p.ListReviews)
	g.POST("/:id/reviews", p.AddReview, middleware.RequireLogin())
}

// RegisterAdmin mounts the admin API. Every route requires the admin role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler) {
	g := e.Group("/v1/admin", middleware.RequireRole(model.RoleAdmin))

	g.GET("/dashboard", a.Dashboard)
	g.GET("/users", a.ListUsers)
	g.GET("/orders", a.ListOrders)
	g.GET("/export/:kind", a.Export)

	// ---- Products ----
	g.POST("/products", a.AddProduct)
	g.PUT("/products/:id", a.UpdateProduct)
	g.PATCH("/products/:id", a.UpdateProduct)
	g.DELETE("/products/:id", a.DeleteProduct)
	g.POST("/products/:id/delete", a.DeleteProduct) // HTML forms cannot send DELETE

	// ---- Orders ----
	g.PATCH("/orders/:id/status", a.UpdateOrderStatus)
	g.POST("/orders/:id/status", a.UpdateOrderStatus)

	// ---- Promotions ----
	g.POST("/promotions/banner", a.ToggleBanner)
	g.POST("/promotions/winter-sale", a.ToggleWinterSale)
}

// RegisterPages mounts the HTML storefront. The wildcard sends every other
// GET to the navigator, which renders unknown paths as the home page.
func RegisterPages(e *echo.Echo, p *handler.PageHandler) {
	e.GET("/", p.Show)
	e.GET("/*", p.Show)
}
