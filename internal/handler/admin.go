package handler

import (
    "context"
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/progear-storefront/internal/catalog"
    "github.com/iliyamo/progear-storefront/internal/middleware"
    "github.com/iliyamo/progear-storefront/internal/model"
    "github.com/iliyamo/progear-storefront/internal/repository"
    "github.com/iliyamo/progear-storefront/internal/service"
)

// AdminHandler serves the dashboard, catalog maintenance, order status and
// promotion switches. Routes are gated by RequireRole(admin); the services
// check the role again.
type AdminHandler struct {
    Catalog  *catalog.Catalog
    Orders   *service.Ledger
    Settings *service.Settings
    Users    *repository.UserRepo
    Log      logrus.FieldLogger

    // OnCatalogChange, when set, runs after product or sale changes.
    OnCatalogChange func(ctx context.Context) error
}

func NewAdminHandler(cat *catalog.Catalog, orders *service.Ledger, settings *service.Settings,
    users *repository.UserRepo, log logrus.FieldLogger) *AdminHandler {
    if cat == nil || orders == nil || settings == nil || users == nil {
        panic("nil dependency passed to NewAdminHandler")
    }
    if log == nil {
        log = logrus.StandardLogger()
    }
    return &AdminHandler{Catalog: cat, Orders: orders, Settings: settings, Users: users, Log: log}
}

type productReq struct {
    Title       string `json:"title" form:"title" validate:"required"`
    Price       string `json:"price" form:"price" validate:"required,numeric"`
    Category    string `json:"category" form:"category"`
    Brand       string `json:"brand" form:"brand"`
    Image       string `json:"image" form:"image"`
    Description string `json:"description" form:"description"`
}

type statusReq struct {
    Status string `json:"status" form:"status" validate:"required"`
}

func (r productReq) input() (catalog.ProductInput, error) {
    price, err := decimal.NewFromString(r.Price)
    if err != nil {
        return catalog.ProductInput{}, catalog.ErrInvalidProduct
    }
    return catalog.ProductInput{
        Title:       r.Title,
        Price:       price,
        Category:    r.Category,
        Brand:       r.Brand,
        Image:       r.Image,
        Description: r.Description,
    }, nil
}

// bindProduct reads and checks a product form. Any failure is reported as
// ErrInvalidProduct so forms and API clients see one message.
func bindProduct(c echo.Context) (catalog.ProductInput, error) {
    var req productReq
    if err := c.Bind(&req); err != nil {
        return catalog.ProductInput{}, catalog.ErrInvalidProduct
    }
    if err := c.Validate(&req); err != nil {
        return catalog.ProductInput{}, catalog.ErrInvalidProduct
    }
    return req.input()
}

// Dashboard returns the headline numbers.
func (h *AdminHandler) Dashboard(c echo.Context) error {
    d, err := h.Orders.Dashboard(c.Request().Context(), middleware.CurrentSession(c))
    if err != nil {
        return fail(c, h.Log, err, "/admin")
    }
    return c.JSON(http.StatusOK, d)
}

// ListUsers returns every account without password hashes.
func (h *AdminHandler) ListUsers(c echo.Context) error {
    users := h.Users.List(c.Request().Context())
    out := make([]service.ExportedUser, 0, len(users))
    for _, u := range users {
        out = append(out, service.ExportedUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt})
    }
    return c.JSON(http.StatusOK, out)
}

// ListOrders returns every order, newest first.
func (h *AdminHandler) ListOrders(c echo.Context) error {
    orders, err := h.Orders.ListAll(c.Request().Context(), middleware.CurrentSession(c))
    if err != nil {
        return fail(c, h.Log, err, "/admin")
    }
    return c.JSON(http.StatusOK, orders)
}

// Export downloads the users or orders collection as a JSON file.
func (h *AdminHandler) Export(c echo.Context) error {
    name, body, err := h.Orders.Export(c.Request().Context(), middleware.CurrentSession(c), c.Param("kind"))
    if err != nil {
        return fail(c, h.Log, err, "/admin")
    }
    c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
    return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, body)
}

// AddProduct creates a product from the admin form.
func (h *AdminHandler) AddProduct(c echo.Context) error {
    in, err := bindProduct(c)
    if err != nil {
        return fail(c, h.Log, err, "/admin")
    }
    ctx := c.Request().Context()
    p, err := h.Catalog.Add(ctx, middleware.CurrentSession(c), in)
    if err != nil {
        return fail(c, h.Log, err, "/admin")
    }
    catalogChanged(ctx, h.Log, h.OnCatalogChange)
    return reply(c, http.StatusCreated, p, "/admin", translate(ctx, h.Settings, "productSaved"))
}

// UpdateProduct edits a product. Empty optional fields keep their value.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return badRequest(c, "invalid id", "/admin")
    }
    in, err := bindProduct(c)
    if err != nil {
        return fail(c, h.Log, err, "/admin")
    }
    ctx := c.Request().Context()
    p, err := h.Catalog.Update(ctx, middleware.CurrentSession(c), id, in)
    if err != nil {
        return fail(c, h.Log, err, "/admin")
    }
    catalogChanged(ctx, h.Log, h.OnCatalogChange)
    return reply(c, http.StatusOK, p, "/admin", translate(ctx, h.Settings, "productSaved"))
}

// DeleteProduct removes a product.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return badRequest(c, "invalid id", "/admin")
    }
    ctx := c.Request().Context()
    removed, err := h.Catalog.Delete(ctx, middleware.CurrentSession(c), id)
    if err != nil {
        return fail(c, h.Log, err, "/admin")
    }
    if !removed {
        return fail(c, h.Log, service.ErrProductNotFound, "/admin")
    }
    catalogChanged(ctx, h.Log, h.OnCatalogChange)
    return reply(c, http.StatusNoContent, nil, "/admin", translate(ctx, h.Settings, "productDeleted"))
}

// UpdateOrderStatus moves an order to any known status.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
    var req statusReq
    if err := c.Bind(&req); err != nil {
        return badRequest(c, "invalid body", "/admin")
    }
    if err := c.Validate(&req); err != nil {
        return fail(c, h.Log, service.ErrInvalidStatus, "/admin")
    }
    ctx := c.Request().Context()
    o, err := h.Orders.UpdateStatus(ctx, middleware.CurrentSession(c), c.Param("id"), model.OrderStatus(req.Status))
    if err != nil {
        return fail(c, h.Log, err, "/admin")
    }
    return reply(c, http.StatusOK, o, "/admin", translate(ctx, h.Settings, "orderStatusUpdated"))
}

// ToggleBanner shows or hides the winter-sale banner.
func (h *AdminHandler) ToggleBanner(c echo.Context) error {
    ctx := c.Request().Context()
    on, err := h.Settings.ToggleWinterSaleBanner(ctx, middleware.CurrentSession(c))
    if err != nil {
        return fail(c, h.Log, err, "/admin")
    }
    key := "winterSaleBannerRemoved"
    if on {
        key = "winterSaleBannerAdded"
    }
    return reply(c, http.StatusOK, echo.Map{"banner": on}, "/admin", translate(ctx, h.Settings, key))
}

// ToggleWinterSale turns winter-sale pricing on or off.
func (h *AdminHandler) ToggleWinterSale(c echo.Context) error {
    ctx := c.Request().Context()
    on, err := h.Settings.ToggleWinterSale(ctx, middleware.CurrentSession(c))
    if err != nil {
        return fail(c, h.Log, err, "/admin")
    }
    catalogChanged(ctx, h.Log, h.OnCatalogChange)
    key := "winterSaleDeactivated"
    if on {
        key = "winterSaleActivated"
    }
    return reply(c, http.StatusOK, echo.Map{"active": on}, "/admin", translate(ctx, h.Settings, key))
}
