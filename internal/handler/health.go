package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/progear-storefront/internal/catalog"
)

// Health is the liveness probe. It answers "ok" while the process serves
// HTTP.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}

// HealthHandler reports readiness, which depends on the catalog.
type HealthHandler struct {
    Catalog *catalog.Catalog
}

func NewHealthHandler(cat *catalog.Catalog) *HealthHandler {
    if cat == nil {
        panic("nil catalog passed to NewHealthHandler")
    }
    return &HealthHandler{Catalog: cat}
}

// Ready is 200 once products are available. An empty catalog after a failed
// feed fetch is 503 so a balancer keeps traffic away until a retry succeeds.
func (h *HealthHandler) Ready(c echo.Context) error {
    n := h.Catalog.Count(c.Request().Context())
    notice := h.Catalog.Notice()
    if n == 0 && notice != "" {
        return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "degraded", "products": n, "notice": notice})
    }
    return c.JSON(http.StatusOK, echo.Map{"status": "ok", "products": n})
}
