package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/progear-storefront/internal/middleware"
    "github.com/iliyamo/progear-storefront/internal/service"
)

// OrderHandler serves checkout and the shopper's order history.
type OrderHandler struct {
    Orders   *service.Ledger
    Settings *service.Settings
    Log      logrus.FieldLogger
}

func NewOrderHandler(orders *service.Ledger, settings *service.Settings, log logrus.FieldLogger) *OrderHandler {
    if orders == nil || settings == nil {
        panic("nil service passed to NewOrderHandler")
    }
    if log == nil {
        log = logrus.StandardLogger()
    }
    return &OrderHandler{Orders: orders, Settings: settings, Log: log}
}

// Create places an order from the cart.
func (h *OrderHandler) Create(c echo.Context) error {
    var req service.Checkout
    if err := c.Bind(&req); err != nil {
        return badRequest(c, "invalid body", "/checkout")
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
    defer cancel()

    o, err := h.Orders.Create(ctx, middleware.CurrentSession(c), req)
    if err != nil {
        return fail(c, h.Log, err, "/checkout")
    }
    return reply(c, http.StatusCreated, o, "/orders", translate(ctx, h.Settings, "orderPlaced"))
}

// List returns the caller's orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Orders.ListForUser(c.Request().Context(), middleware.CurrentSession(c)))
}

// Get returns one order. Only its owner and admins may read it.
func (h *OrderHandler) Get(c echo.Context) error {
    o, err := h.Orders.Get(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"))
    if err != nil {
        return fail(c, h.Log, err, "/orders")
    }
    return c.JSON(http.StatusOK, o)
}

// Cancel cancels one of the caller's open orders.
func (h *OrderHandler) Cancel(c echo.Context) error {
    ctx := c.Request().Context()
    o, err := h.Orders.Cancel(ctx, middleware.CurrentSession(c), c.Param("id"))
    if err != nil {
        return fail(c, h.Log, err, "/orders")
    }
    return reply(c, http.StatusOK, o, "/orders", translate(ctx, h.Settings, "orderCancelled"))
}
