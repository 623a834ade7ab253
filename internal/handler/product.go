package handler

import (
    "context"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/progear-storefront/internal/catalog"
    "github.com/iliyamo/progear-storefront/internal/middleware"
    "github.com/iliyamo/progear-storefront/internal/model"
    "github.com/iliyamo/progear-storefront/internal/service"
)

// ProductHandler serves catalog reads and review posting.
type ProductHandler struct {
    Catalog  *catalog.Catalog
    Reviews  *service.Reviews
    Settings *service.Settings
    Log      logrus.FieldLogger

    // OnCatalogChange, when set, runs after a write that changes what the
    // product endpoints return.
    OnCatalogChange func(ctx context.Context) error
}

func NewProductHandler(cat *catalog.Catalog, reviews *service.Reviews, settings *service.Settings, log logrus.FieldLogger) *ProductHandler {
    if cat == nil || reviews == nil || settings == nil {
        panic("nil dependency passed to NewProductHandler")
    }
    if log == nil {
        log = logrus.StandardLogger()
    }
    return &ProductHandler{Catalog: cat, Reviews: reviews, Settings: settings, Log: log}
}

// productView is a product as the API shows it: display tags include the
// computed top-rated tag, and SalePrice is set while the winter sale runs.
type productView struct {
    model.Product
    Tags      []string         `json:"tags"`
    Stats     catalog.Stats    `json:"stats"`
    SalePrice *decimal.Decimal `json:"salePrice,omitempty"`
}

type reviewReq struct {
    Rating  int    `json:"rating" form:"rating" validate:"min=1,max=5"`
    Comment string `json:"comment" form:"comment" validate:"max=2000"`
}

func (h *ProductHandler) views(c echo.Context, list []model.Product) []productView {
    ctx := c.Request().Context()
    stats := h.Catalog.StatsIndex(ctx)
    sale := h.Settings.Promotions(ctx).Active
    out := make([]productView, 0, len(list))
    for _, p := range list {
        st := stats(p.ID)
        v := productView{Product: p, Tags: catalog.DisplayTags(p, st), Stats: st}
        if sale {
            price := catalog.WinterSalePrice(p)
            v.SalePrice = &price
        }
        out = append(out, v)
    }
    return out
}

// List returns the catalog. ?q= searches; otherwise category, brand and tag
// filter exactly and sort orders the result.
func (h *ProductHandler) List(c echo.Context) error {
    ctx := c.Request().Context()
    if h.Catalog.Count(ctx) == 0 {
        // the boot fetch may still be running; an empty page must not be cached
        c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
    }
    if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
        return c.JSON(http.StatusOK, h.views(c, h.Catalog.Search(ctx, q)))
    }
    list := h.Catalog.Browse(ctx, catalog.Query{
        Criteria: catalog.Criteria{
            Category: c.QueryParam("category"),
            Brand:    c.QueryParam("brand"),
            Tag:      c.QueryParam("tag"),
        },
        Sort: catalog.ParseSortMode(c.QueryParam("sort")),
    })
    return c.JSON(http.StatusOK, h.views(c, list))
}

// Suggest returns the search box dropdown: ids and titles of the first
// catalog.SuggestLimit matches.
func (h *ProductHandler) Suggest(c echo.Context) error {
    list := h.Catalog.Suggest(c.Request().Context(), c.QueryParam("q"))
    type suggestion struct {
        ID    int64  `json:"id"`
        Title string `json:"title"`
    }
    out := make([]suggestion, 0, len(list))
    for _, p := range list {
        out = append(out, suggestion{ID: p.ID, Title: p.Title})
    }
    return c.JSON(http.StatusOK, out)
}

// Facets lists categories and brands with their counts.
func (h *ProductHandler) Facets(c echo.Context) error {
    ctx := c.Request().Context()
    return c.JSON(http.StatusOK, echo.Map{
        "categories": h.Catalog.Categories(ctx),
        "brands":     h.Catalog.Brands(ctx),
    })
}

// Get returns one product.
func (h *ProductHandler) Get(c echo.Context) error {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    p, err := h.Catalog.Get(c.Request().Context(), id)
    if err != nil {
        return fail(c, h.Log, err, "/products")
    }
    return c.JSON(http.StatusOK, h.views(c, []model.Product{p})[0])
}

// ListReviews returns a product's reviews, newest first.
func (h *ProductHandler) ListReviews(c echo.Context) error {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    return c.JSON(http.StatusOK, h.Reviews.List(c.Request().Context(), id))
}

// AddReview posts a review as the current user.
func (h *ProductHandler) AddReview(c echo.Context) error {
    back := "/product/" + c.Param("id")
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        return badRequest(c, "invalid id", "/products")
    }
    var req reviewReq
    if err := c.Bind(&req); err != nil {
        return badRequest(c, "invalid body", back)
    }
    if err := c.Validate(&req); err != nil {
        return fail(c, h.Log, service.ErrInvalidReview, back)
    }
    ctx := c.Request().Context()
    rv, err := h.Reviews.Add(ctx, middleware.CurrentSession(c), id, req.Rating, req.Comment)
    if err != nil {
        return fail(c, h.Log, err, back)
    }
    catalogChanged(ctx, h.Log, h.OnCatalogChange)
    return reply(c, http.StatusCreated, rv, back, translate(ctx, h.Settings, "reviewSubmitted"))
}
