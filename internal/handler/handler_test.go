package handler

import (
    "context"
    "encoding/json"
    "io"
    "net/http"
    "net/http/httptest"
    "net/url"
    "strings"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"
    "github.com/sirupsen/logrus"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/progear-storefront/internal/auth"
    "github.com/iliyamo/progear-storefront/internal/catalog"
    "github.com/iliyamo/progear-storefront/internal/kvstore"
    "github.com/iliyamo/progear-storefront/internal/middleware"
    "github.com/iliyamo/progear-storefront/internal/model"
    "github.com/iliyamo/progear-storefront/internal/repository"
    "github.com/iliyamo/progear-storefront/internal/service"
    "github.com/iliyamo/progear-storefront/internal/utils"
)

const testSecret = "handler-secret"

type app struct {
    e        *echo.Echo
    auth     *auth.Service
    cart     *service.Cart
    settings *service.Settings
    purged   int
}

func newApp(t *testing.T) *app {
    t.Helper()
    log := logrus.New()
    log.SetOutput(io.Discard)
    ctx := context.Background()

    store := kvstore.New(kvstore.NewMemoryBackend(), log)
    users := repository.NewUserRepo(store)
    products := repository.NewProductRepo(store)
    carts := repository.NewCartRepo(store)
    reviews := repository.NewReviewRepo(store)
    require.NoError(t, products.ReplaceAll(ctx, []model.Product{
        {ID: 1, Title: "Wireless Mouse", Price: decimal.RequireFromString("49.99"), Category: "Electronics", Brand: "Logitech"},
        {ID: 2, Title: "Keyboard", Price: decimal.RequireFromString("120"), Category: "Electronics", Brand: "Razer", Tags: []string{"sale"}},
    }))

    a := &app{}
    a.auth = auth.NewService(users, repository.NewSessionRepo(store), auth.Config{BcryptCost: 4, SessionTTL: time.Hour}, log)
    _, err := a.auth.SeedAdmin(ctx, "Admin", "admin@gmail.com", "Admin@123")
    require.NoError(t, err)

    cat := catalog.New(products, reviews, nil, log)
    a.cart = service.NewCart(carts, products, log)
    wishlist := service.NewWishlist(repository.NewWishlistRepo(store), products, log)
    ledger := service.NewLedger(repository.NewOrderRepo(store), carts, products, users, nil, log)
    a.settings = service.NewSettings(repository.NewSettingsRepo(store), log)
    reviewSvc := service.NewReviews(reviews, products, log)

    ah := NewAuthHandler(a.auth, a.settings, testSecret, log)
    ph := NewProductHandler(cat, reviewSvc, a.settings, log)
    ch := NewCartHandler(a.cart, wishlist, a.settings, log)
    oh := NewOrderHandler(ledger, a.settings, log)
    sh := NewSettingsHandler(a.settings, log)
    adm := NewAdminHandler(cat, ledger, a.settings, users, log)
    adm.OnCatalogChange = func(context.Context) error { a.purged++; return nil }

    e := echo.New()
    e.Validator = NewRequestValidator()
    e.Use(middleware.Session(testSecret, a.auth, log))
    e.GET("/healthz", Health)
    e.GET("/readyz", NewHealthHandler(cat).Ready)
    e.POST("/v1/auth/register", ah.Register)
    e.POST("/v1/auth/login", ah.Login)
    e.POST("/v1/auth/logout", ah.Logout)
    e.GET("/v1/me", ah.Me)
    e.GET("/v1/products", ph.List)
    e.GET("/v1/products/suggest", ph.Suggest)
    e.GET("/v1/products/:id", ph.Get)
    e.GET("/v1/products/:id/reviews", ph.ListReviews)
    e.POST("/v1/products/:id/reviews", ph.AddReview)
    e.GET("/v1/cart", ch.Get)
    e.POST("/v1/cart/items", ch.AddItem)
    e.POST("/v1/cart/items/:id/quantity", ch.UpdateQuantity)
    e.POST("/v1/wishlist/:id/toggle", ch.ToggleWishlist)
    e.POST("/v1/orders", oh.Create)
    e.GET("/v1/orders", oh.List)
    e.POST("/v1/orders/:id/cancel", oh.Cancel)
    e.POST("/v1/settings", sh.Update)
    e.GET("/v1/admin/dashboard", adm.Dashboard)
    e.GET("/v1/admin/users", adm.ListUsers)
    e.GET("/v1/admin/export/:kind", adm.Export)
    e.POST("/v1/admin/products", adm.AddProduct)
    e.POST("/v1/admin/products/:id/delete", adm.DeleteProduct)
    e.POST("/v1/admin/promotions/winter-sale", adm.ToggleWinterSale)
    a.e = e
    return a
}

// token logs in through the service and signs a token for it.
func (a *app) token(t *testing.T, email, password string) string {
    t.Helper()
    sess, err := a.auth.Login(context.Background(), email, password)
    require.NoError(t, err)
    tok, err := utils.NewSessionToken(testSecret, sess.ID, sess.UserID, string(sess.Role), time.Hour)
    require.NoError(t, err)
    return tok.Token
}

func (a *app) shopper(t *testing.T) string {
    t.Helper()
    _, err := a.auth.Register(context.Background(), "Ann", "ann@example.com", "secret1")
    require.NoError(t, err)
    return a.token(t, "ann@example.com", "secret1")
}

func (a *app) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
    var rd io.Reader
    if body != nil {
        bs, _ := json.Marshal(body)
        rd = strings.NewReader(string(bs))
    }
    req := httptest.NewRequest(method, path, rd)
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    if token != "" {
        req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
    }
    rec := httptest.NewRecorder()
    a.e.ServeHTTP(rec, req)
    return rec
}

func (a *app) doForm(path, token, referer string, form url.Values) *httptest.ResponseRecorder {
    req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
    if referer != "" {
        req.Header.Set("Referer", referer)
    }
    if token != "" {
        req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
    }
    rec := httptest.NewRecorder()
    a.e.ServeHTTP(rec, req)
    return rec
}

func location(t *testing.T, rec *httptest.ResponseRecorder) *url.URL {
    t.Helper()
    require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
    u, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
    require.NoError(t, err)
    return u
}

func TestRegisterSetsCookieAndMe(t *testing.T) {
    a := newApp(t)
    rec := a.doJSON(http.MethodPost, "/v1/auth/register", "", echo.Map{"name": "Bo", "email": "bo@example.com", "password": "secret1"})
    require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

    var resp sessionResp
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, model.RoleUser, resp.User.Role)
    assert.NotEmpty(t, resp.Token)
    assert.Contains(t, rec.Header().Get("Set-Cookie"), middleware.SessionCookie+"=")

    me := a.doJSON(http.MethodGet, "/v1/me", resp.Token, nil)
    assert.Equal(t, http.StatusOK, me.Code)
    assert.Contains(t, me.Body.String(), "bo@example.com")

    anon := a.doJSON(http.MethodGet, "/v1/me", "", nil)
    assert.Equal(t, http.StatusUnauthorized, anon.Code)
}

func TestRegisterValidationMessages(t *testing.T) {
    a := newApp(t)
    cases := []struct {
        body   echo.Map
        status int
        msg    string
    }{
        {echo.Map{"name": "", "email": "x@y.zz", "password": "secret1"}, http.StatusBadRequest, "All fields are required"},
        {echo.Map{"name": "X", "email": "nope", "password": "secret1"}, http.StatusBadRequest, "Invalid email address"},
        {echo.Map{"name": "X", "email": "x@y.zz", "password": "123"}, http.StatusBadRequest, "Password must be at least 6 characters"},
        {echo.Map{"name": "X", "email": "ADMIN@gmail.com", "password": "secret1"}, http.StatusConflict, "Email already registered"},
    }
    for _, tc := range cases {
        rec := a.doJSON(http.MethodPost, "/v1/auth/register", "", tc.body)
        assert.Equal(t, tc.status, rec.Code)
        assert.Contains(t, rec.Body.String(), tc.msg)
    }
}

func TestLoginFormRedirects(t *testing.T) {
    a := newApp(t)

    bad := a.doForm("/v1/auth/login", "", "", url.Values{"email": {"admin@gmail.com"}, "password": {"nope123"}, "next": {"/orders"}})
    u := location(t, bad)
    assert.Equal(t, "/login", u.Path)
    assert.Equal(t, "/orders", u.Query().Get("next"))
    assert.Equal(t, "Wrong password", u.Query().Get("notice"))

    ok := a.doForm("/v1/auth/login", "", "", url.Values{"email": {"admin@gmail.com"}, "password": {"Admin@123"}, "next": {"/admin"}})
    u = location(t, ok)
    assert.Equal(t, "/admin", u.Path)
    assert.Equal(t, "Welcome, Admin!", u.Query().Get("notice"))
    assert.Contains(t, ok.Header().Get("Set-Cookie"), middleware.SessionCookie+"=")

    // open redirects are ignored
    ext := a.doForm("/v1/auth/login", "", "", url.Values{"email": {"admin@gmail.com"}, "password": {"Admin@123"}, "next": {"//evil.example"}})
    assert.Equal(t, "/", location(t, ext).Path)
}

func TestLogoutEndsSession(t *testing.T) {
    a := newApp(t)
    tok := a.shopper(t)

    rec := a.doForm("/v1/auth/logout", tok, "", url.Values{})
    u := location(t, rec)
    assert.Equal(t, "/", u.Path)
    assert.Equal(t, "Logged out successfully", u.Query().Get("notice"))

    assert.Equal(t, http.StatusUnauthorized, a.doJSON(http.MethodGet, "/v1/me", tok, nil).Code)
}

func TestCartFormFlow(t *testing.T) {
    a := newApp(t)
    tok := a.shopper(t)

    rec := a.doForm("/v1/cart/items", tok, "http://example.com/products?sort=name&notice=old", url.Values{"productId": {"1"}, "quantity": {"2"}})
    u := location(t, rec)
    assert.Equal(t, "/products", u.Path)
    assert.Equal(t, "name", u.Query().Get("sort"))
    assert.Equal(t, "Product added to cart", u.Query().Get("notice"))

    var cart cartResp
    got := a.doJSON(http.MethodGet, "/v1/cart", tok, nil)
    require.NoError(t, json.Unmarshal(got.Body.Bytes(), &cart))
    assert.Equal(t, 2, cart.Count)
    assert.Equal(t, "99.98", cart.Total.StringFixed(2))

    // quantity below one removes the line
    a.doForm("/v1/cart/items/1/quantity", tok, "", url.Values{"quantity": {"0"}})
    got = a.doJSON(http.MethodGet, "/v1/cart", tok, nil)
    require.NoError(t, json.Unmarshal(got.Body.Bytes(), &cart))
    assert.Equal(t, 0, cart.Count)
    assert.NotNil(t, cart.Items)

    missing := a.doJSON(http.MethodPost, "/v1/cart/items", tok, echo.Map{"productId": 99})
    assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestAnonymousFormPostGoesToLogin(t *testing.T) {
    a := newApp(t)
    rec := a.doForm("/v1/wishlist/1/toggle", "", "http://example.com/product/1", url.Values{})
    u := location(t, rec)
    assert.Equal(t, "/login", u.Path)
    assert.Equal(t, "/product/1", u.Query().Get("next"))
}

func TestWishlistToggle(t *testing.T) {
    a := newApp(t)
    tok := a.shopper(t)

    rec := a.doJSON(http.MethodPost, "/v1/wishlist/2/toggle", tok, nil)
    require.Equal(t, http.StatusOK, rec.Code)
    assert.JSONEq(t, `{"productId":2,"saved":true}`, rec.Body.String())
    rec = a.doJSON(http.MethodPost, "/v1/wishlist/2/toggle", tok, nil)
    assert.JSONEq(t, `{"productId":2,"saved":false}`, rec.Body.String())
}

func TestCheckoutAndCancel(t *testing.T) {
    a := newApp(t)
    tok := a.shopper(t)

    empty := a.doForm("/v1/orders", tok, "", url.Values{"address": {"Main St 1"}, "paymentMethod": {"card"}})
    u := location(t, empty)
    assert.Equal(t, "/checkout", u.Path)
    assert.Equal(t, "Your cart is empty", u.Query().Get("notice"))

    require.Equal(t, http.StatusOK, a.doJSON(http.MethodPost, "/v1/cart/items", tok, echo.Map{"productId": 2, "quantity": 1}).Code)
    noAddr := a.doJSON(http.MethodPost, "/v1/orders", tok, echo.Map{"paymentMethod": "card"})
    assert.Equal(t, http.StatusBadRequest, noAddr.Code)

    rec := a.doJSON(http.MethodPost, "/v1/orders", tok, echo.Map{"address": "Main St 1", "paymentMethod": "card"})
    require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
    var o model.Order
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
    assert.Equal(t, model.OrderPending, o.OrderStatus)
    assert.Equal(t, "120", o.TotalAmount.String())

    cancel := a.doForm("/v1/orders/"+o.OrderID+"/cancel", tok, "", url.Values{})
    assert.Equal(t, "Order cancelled", location(t, cancel).Query().Get("notice"))
    again := a.doJSON(http.MethodPost, "/v1/orders/"+o.OrderID+"/cancel", tok, nil)
    assert.Equal(t, http.StatusConflict, again.Code)

    other := newAppSession(t, a, "Cy", "cy@example.com")
    assert.Equal(t, http.StatusForbidden, a.doJSON(http.MethodPost, "/v1/orders/"+o.OrderID+"/cancel", other, nil).Code)
}

func newAppSession(t *testing.T, a *app, name, email string) string {
    t.Helper()
    _, err := a.auth.Register(context.Background(), name, email, "secret1")
    require.NoError(t, err)
    return a.token(t, email, "secret1")
}

func TestReviewsEndpoint(t *testing.T) {
    a := newApp(t)
    tok := a.shopper(t)

    bad := a.doJSON(http.MethodPost, "/v1/products/1/reviews", tok, echo.Map{"rating": 9})
    assert.Equal(t, http.StatusBadRequest, bad.Code)

    ok := a.doForm("/v1/products/1/reviews", tok, "", url.Values{"rating": {"4"}, "comment": {"solid"}})
    u := location(t, ok)
    assert.Equal(t, "/product/1", u.Path)
    assert.Equal(t, "Review submitted successfully", u.Query().Get("notice"))

    list := a.doJSON(http.MethodGet, "/v1/products/1/reviews", "", nil)
    var reviews []model.Review
    require.NoError(t, json.Unmarshal(list.Body.Bytes(), &reviews))
    require.Len(t, reviews, 1)
    assert.Equal(t, "ann@example.com", reviews[0].UserID)

    var p productView
    require.NoError(t, json.Unmarshal(a.doJSON(http.MethodGet, "/v1/products/1", "", nil).Body.Bytes(), &p))
    assert.Equal(t, 4.0, p.Stats.Rating)
}

func TestProductListing(t *testing.T) {
    a := newApp(t)

    var list []productView
    rec := a.doJSON(http.MethodGet, "/v1/products?sort=price-high", "", nil)
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
    require.Len(t, list, 2)
    assert.Equal(t, int64(2), list[0].ID)
    assert.Nil(t, list[0].SalePrice)

    rec = a.doJSON(http.MethodGet, "/v1/products?q=mou", "", nil)
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
    require.Len(t, list, 1)
    assert.Equal(t, "Wireless Mouse", list[0].Title)

    assert.Equal(t, http.StatusNotFound, a.doJSON(http.MethodGet, "/v1/products/404", "", nil).Code)
    assert.Equal(t, http.StatusBadRequest, a.doJSON(http.MethodGet, "/v1/products/abc", "", nil).Code)
}

func TestWinterSaleShowsSalePrice(t *testing.T) {
    a := newApp(t)
    admin := a.token(t, "admin@gmail.com", "Admin@123")

    rec := a.doJSON(http.MethodPost, "/v1/admin/promotions/winter-sale", admin, nil)
    require.Equal(t, http.StatusOK, rec.Code)
    assert.JSONEq(t, `{"active":true}`, rec.Body.String())
    assert.Equal(t, 1, a.purged)

    var p productView
    require.NoError(t, json.Unmarshal(a.doJSON(http.MethodGet, "/v1/products/2", "", nil).Body.Bytes(), &p))
    require.NotNil(t, p.SalePrice)
    assert.Equal(t, "96", p.SalePrice.String())
}

func TestAdminEndpoints(t *testing.T) {
    a := newApp(t)
    admin := a.token(t, "admin@gmail.com", "Admin@123")
    shopper := a.shopper(t)

    denied := a.doJSON(http.MethodPost, "/v1/admin/products", shopper, echo.Map{"title": "Pad", "price": "15"})
    assert.Equal(t, http.StatusForbidden, denied.Code)

    invalid := a.doJSON(http.MethodPost, "/v1/admin/products", admin, echo.Map{"title": "Pad", "price": "free"})
    assert.Equal(t, http.StatusBadRequest, invalid.Code)
    assert.Contains(t, invalid.Body.String(), catalog.ErrInvalidProduct.Error())

    created := a.doJSON(http.MethodPost, "/v1/admin/products", admin, echo.Map{"title": "Pad", "price": "15.50", "brand": "SteelSeries"})
    require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
    var p model.Product
    require.NoError(t, json.Unmarshal(created.Body.Bytes(), &p))
    assert.Equal(t, int64(3), p.ID)
    assert.True(t, p.AdminAdded)

    del := a.doForm("/v1/admin/products/3/delete", admin, "", url.Values{})
    assert.Equal(t, "Product deleted", location(t, del).Query().Get("notice"))
    gone := a.doJSON(http.MethodPost, "/v1/admin/products/3/delete", admin, nil)
    assert.Equal(t, http.StatusNotFound, gone.Code)
    assert.Equal(t, 2, a.purged)

    users := a.doJSON(http.MethodGet, "/v1/admin/users", admin, nil)
    assert.NotContains(t, users.Body.String(), "passwordHash")
    assert.Contains(t, users.Body.String(), "ann@example.com")

    export := a.doJSON(http.MethodGet, "/v1/admin/export/orders", admin, nil)
    assert.Equal(t, http.StatusOK, export.Code)
    assert.Equal(t, `attachment; filename="orders.json"`, export.Header().Get(echo.HeaderContentDisposition))
    assert.Equal(t, http.StatusBadRequest, a.doJSON(http.MethodGet, "/v1/admin/export/secrets", admin, nil).Code)

    dash := a.doJSON(http.MethodGet, "/v1/admin/dashboard", admin, nil)
    var d service.Dashboard
    require.NoError(t, json.Unmarshal(dash.Body.Bytes(), &d))
    assert.Equal(t, 2, d.TotalProducts)
    assert.Equal(t, 2, d.TotalUsers)
}

func TestSettingsUpdate(t *testing.T) {
    a := newApp(t)
    tok := a.shopper(t)

    bad := a.doJSON(http.MethodPost, "/v1/settings", tok, echo.Map{"currency": "EUR"})
    assert.Equal(t, http.StatusBadRequest, bad.Code)

    rec := a.doForm("/v1/settings", tok, "http://example.com/settings", url.Values{"language": {"mn"}, "currency": {"MNT"}})
    u := location(t, rec)
    assert.Equal(t, "/settings", u.Path)
    assert.Equal(t, "Тохиргоо хадгалагдлаа", u.Query().Get("notice"))

    got := a.settings.Get(context.Background())
    assert.Equal(t, model.LangMongolian, got.Language)
    assert.Equal(t, model.ThemeLight, got.Theme)
}

func TestReadiness(t *testing.T) {
    a := newApp(t)
    rec := httptest.NewRecorder()
    a.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.JSONEq(t, `{"status":"ok","products":2}`, rec.Body.String())

    rec = httptest.NewRecorder()
    a.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
    assert.Equal(t, "ok", rec.Body.String())
}

func TestStatusFor(t *testing.T) {
    cases := map[error]int{
        auth.ErrLoginRequired:            http.StatusUnauthorized,
        auth.ErrWrongPassword:            http.StatusUnauthorized,
        auth.ErrAdminRequired:            http.StatusForbidden,
        service.ErrNotOwner:              http.StatusForbidden,
        repository.ErrProductNotFound:    http.StatusNotFound,
        service.ErrOrderNotFound:         http.StatusNotFound,
        auth.ErrEmailTaken:               http.StatusConflict,
        service.ErrOrderNotCancellable:   http.StatusConflict,
        service.ErrEmptyCart:             http.StatusBadRequest,
        catalog.ErrInvalidProduct:        http.StatusBadRequest,
        io.ErrUnexpectedEOF:              http.StatusInternalServerError,
    }
    for err, want := range cases {
        assert.Equal(t, want, statusFor(err), err.Error())
    }
    assert.Equal(t, msgInternal, messageFor(io.ErrUnexpectedEOF))
    assert.Equal(t, "Product not found", messageFor(repository.ErrProductNotFound))
}

func TestWithNoticeAndSafePath(t *testing.T) {
    assert.Equal(t, "/cart?notice=Saved+%21", withNotice("/cart", "Saved !"))
    assert.Equal(t, "/products?sort=name", withNotice("/products?sort=name&notice=x", ""))
    assert.True(t, safePath("/orders"))
    assert.False(t, safePath("//evil.example"))
    assert.False(t, safePath("/\\evil.example"))
    assert.False(t, safePath("https://evil.example"))
    assert.Equal(t, "/login?next=%2Forders", loginURL("/orders"))
}
