package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/progear-storefront/internal/middleware"
    "github.com/iliyamo/progear-storefront/internal/model"
    "github.com/iliyamo/progear-storefront/internal/service"
)

// CartHandler serves the cart and the wishlist of the current user.
type CartHandler struct {
    Cart     *service.Cart
    Wishlist *service.Wishlist
    Settings *service.Settings
    Log      logrus.FieldLogger
}

func NewCartHandler(cart *service.Cart, wishlist *service.Wishlist, settings *service.Settings, log logrus.FieldLogger) *CartHandler {
    if cart == nil || wishlist == nil || settings == nil {
        panic("nil service passed to NewCartHandler")
    }
    if log == nil {
        log = logrus.StandardLogger()
    }
    return &CartHandler{Cart: cart, Wishlist: wishlist, Settings: settings, Log: log}
}

type addItemReq struct {
    ProductID int64 `json:"productId" form:"productId" validate:"required"`
    Quantity  int   `json:"quantity" form:"quantity" validate:"min=0,max=99"`
}
type quantityReq struct {
    Quantity int `json:"quantity" form:"quantity" validate:"max=99"`
}

type cartResp struct {
    Items []service.CartItem `json:"items"`
    Count int                `json:"count"`
    Total decimal.Decimal    `json:"total"`
}

func (h *CartHandler) snapshot(c echo.Context, s *model.Session) cartResp {
    ctx := c.Request().Context()
    items := h.Cart.Items(ctx, s)
    if items == nil {
        items = []service.CartItem{}
    }
    return cartResp{Items: items, Count: h.Cart.Count(ctx, s), Total: h.Cart.Total(ctx, s)}
}

func pathID(c echo.Context) (int64, bool) {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    return id, err == nil && id > 0
}

// Get returns the cart with live prices.
func (h *CartHandler) Get(c echo.Context) error {
    return c.JSON(http.StatusOK, h.snapshot(c, middleware.CurrentSession(c)))
}

// AddItem puts a product into the cart, merging with an existing line.
func (h *CartHandler) AddItem(c echo.Context) error {
    back := backTo(c, "/cart")
    var req addItemReq
    if err := c.Bind(&req); err != nil {
        return badRequest(c, "invalid body", back)
    }
    if err := c.Validate(&req); err != nil {
        if req.ProductID == 0 {
            return fail(c, h.Log, service.ErrProductNotFound, back)
        }
        return fail(c, h.Log, service.ErrInvalidQuantity, back)
    }
    s := middleware.CurrentSession(c)
    ctx := c.Request().Context()
    if err := h.Cart.AddItem(ctx, s, req.ProductID, req.Quantity); err != nil {
        return fail(c, h.Log, err, back)
    }
    return reply(c, http.StatusOK, h.snapshot(c, s), back, translate(ctx, h.Settings, "productAdded"))
}

// UpdateQuantity sets a line's quantity; anything below 1 removes it.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
    back := backTo(c, "/cart")
    id, ok := pathID(c)
    if !ok {
        return badRequest(c, "invalid id", back)
    }
    var req quantityReq
    if err := c.Bind(&req); err != nil {
        return badRequest(c, "invalid body", back)
    }
    if err := c.Validate(&req); err != nil {
        return fail(c, h.Log, service.ErrInvalidQuantity, back)
    }
    s := middleware.CurrentSession(c)
    ctx := c.Request().Context()
    if err := h.Cart.UpdateQuantity(ctx, s, id, req.Quantity); err != nil {
        return fail(c, h.Log, err, back)
    }
    return reply(c, http.StatusOK, h.snapshot(c, s), back, translate(ctx, h.Settings, "cartUpdated"))
}

// RemoveItem drops a line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
    back := backTo(c, "/cart")
    id, ok := pathID(c)
    if !ok {
        return badRequest(c, "invalid id", back)
    }
    s := middleware.CurrentSession(c)
    ctx := c.Request().Context()
    if err := h.Cart.RemoveItem(ctx, s, id); err != nil {
        return fail(c, h.Log, err, back)
    }
    return reply(c, http.StatusOK, h.snapshot(c, s), back, translate(ctx, h.Settings, "productRemoved"))
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
    s := middleware.CurrentSession(c)
    if err := h.Cart.Clear(c.Request().Context(), s); err != nil {
        return fail(c, h.Log, err, "/cart")
    }
    return reply(c, http.StatusOK, h.snapshot(c, s), "/cart", "")
}

// GetWishlist returns the saved products.
func (h *CartHandler) GetWishlist(c echo.Context) error {
    items := h.Wishlist.Items(c.Request().Context(), middleware.CurrentSession(c))
    if items == nil {
        items = []model.Product{}
    }
    return c.JSON(http.StatusOK, items)
}

// ToggleWishlist saves or unsaves a product.
func (h *CartHandler) ToggleWishlist(c echo.Context) error {
    back := backTo(c, "/wishlist")
    id, ok := pathID(c)
    if !ok {
        return badRequest(c, "invalid id", back)
    }
    ctx := c.Request().Context()
    saved, err := h.Wishlist.Toggle(ctx, middleware.CurrentSession(c), id)
    if err != nil {
        return fail(c, h.Log, err, back)
    }
    key := "removedFromWishlist"
    if saved {
        key = "addedToWishlist"
    }
    return reply(c, http.StatusOK, echo.Map{"productId": id, "saved": saved}, back, translate(ctx, h.Settings, key))
}

// RemoveWishlist unsaves a product. Removing an unsaved product is a no-op.
func (h *CartHandler) RemoveWishlist(c echo.Context) error {
    back := backTo(c, "/wishlist")
    id, ok := pathID(c)
    if !ok {
        return badRequest(c, "invalid id", back)
    }
    ctx := c.Request().Context()
    if err := h.Wishlist.Remove(ctx, middleware.CurrentSession(c), id); err != nil {
        return fail(c, h.Log, err, back)
    }
    return reply(c, http.StatusNoContent, nil, back, translate(ctx, h.Settings, "removedFromWishlist"))
}
