package view

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/progear-storefront/internal/catalog"
	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/service"
)

func (r *Renderer) Home(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "home")
	return r.render("home", l, struct{ Featured []Card }{
		Featured: r.cards(ctx, l, p.Session, r.deps.Catalog.Featured(ctx)),
	})
}

type listing struct {
	Cards      []Card
	Category   string
	Brand      string
	Tag        string
	Tags       []string
	Sort       catalog.SortMode
	Categories []catalog.Facet
	Brands     []catalog.Facet
	SortModes  []catalog.SortMode
}

var sortModes = []catalog.SortMode{
	catalog.SortDefault, catalog.SortPriceLow, catalog.SortPriceHigh,
	catalog.SortRating, catalog.SortNewest, catalog.SortName,
}

// Products lists the catalog with the category, brand, tag and sort query
// parameters applied.
func (r *Renderer) Products(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "products")
	q := catalog.Query{
		Criteria: catalog.Criteria{
			Category: p.Query.Get("category"),
			Brand:    p.Query.Get("brand"),
			Tag:      p.Query.Get("tag"),
		},
		Sort: catalog.ParseSortMode(p.Query.Get("sort")),
	}
	return r.render("products", l, listing{
		Cards:      r.cards(ctx, l, p.Session, r.deps.Catalog.Browse(ctx, q)),
		Category:   q.Category,
		Brand:      q.Brand,
		Tag:        q.Tag,
		Tags:       []string{model.TagNew, model.TagSale, model.TagTopRated},
		Sort:       q.Sort,
		Categories: r.deps.Catalog.Categories(ctx),
		Brands:     r.deps.Catalog.Brands(ctx),
		SortModes:  sortModes,
	})
}

func (r *Renderer) Search(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "searchResults")
	q := strings.TrimSpace(p.Query.Get("q"))
	return r.render("search", l, struct {
		Query string
		Cards []Card
	}{q, r.cards(ctx, l, p.Session, r.deps.Catalog.Search(ctx, q))})
}

func (r *Renderer) Categories(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "categories")
	return r.render("categories", l, r.deps.Catalog.Categories(ctx))
}

func (r *Renderer) Brands(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "brands")
	return r.render("brands", l, r.deps.Catalog.Brands(ctx))
}

func (r *Renderer) Sale(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "sale")
	list := r.deps.Catalog.Browse(ctx, catalog.Query{Criteria: catalog.Criteria{Tag: model.TagSale}})
	return r.render("sale", l, r.cards(ctx, l, p.Session, list))
}

// WinterSale shows every product at the discounted price while the sale is
// active, and an inactive notice otherwise.
func (r *Renderer) WinterSale(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "winterSale")
	var cards []Card
	if l.WinterSale {
		cards = r.cards(ctx, l, p.Session, r.deps.Catalog.Browse(ctx, catalog.Query{}))
	}
	return r.render("winter_sale", l, struct {
		Active bool
		Cards  []Card
	}{l.WinterSale, cards})
}

type productPage struct {
	Found     bool
	Card      Card
	Reviews   []model.Review
	Player    catalog.ProPlayer
	HasPlayer bool
	Related   []Card
}

// Product renders the detail page of p.ProductID.
func (r *Renderer) Product(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "products")
	prod, err := r.deps.Catalog.Get(ctx, p.ProductID)
	if err != nil {
		return r.render("product", l, productPage{})
	}
	card := r.cards(ctx, l, p.Session, []model.Product{prod})[0]
	l.Title = card.Product.Title
	data := productPage{
		Found:   true,
		Card:    card,
		Reviews: r.deps.Reviews.List(ctx, prod.ID),
	}
	data.Player, data.HasPlayer = catalog.LookupProPlayer(prod.ProPlayer)

	related := []model.Product{}
	for _, other := range r.deps.Catalog.Browse(ctx, catalog.Query{Criteria: catalog.Criteria{Category: prod.Category}}) {
		if other.ID != prod.ID && len(related) < 4 {
			related = append(related, other)
		}
	}
	data.Related = r.cards(ctx, l, p.Session, related)
	return r.render("product", l, data)
}

type cartPage struct {
	Items []service.CartItem
	Total decimal.Decimal
}

func (r *Renderer) Cart(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "yourCart")
	return r.render("cart", l, cartPage{
		Items: r.deps.Cart.Items(ctx, p.Session),
		Total: r.deps.Cart.Total(ctx, p.Session),
	})
}

func (r *Renderer) Checkout(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "checkout")
	return r.render("checkout", l, cartPage{
		Items: r.deps.Cart.Items(ctx, p.Session),
		Total: r.deps.Cart.Total(ctx, p.Session),
	})
}

func (r *Renderer) Orders(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "myOrders")
	return r.render("orders", l, r.deps.Orders.ListForUser(ctx, p.Session))
}

func (r *Renderer) Wishlist(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "myWishlist")
	return r.render("wishlist", l, r.cards(ctx, l, p.Session, r.deps.Wishlist.Items(ctx, p.Session)))
}

func (r *Renderer) Settings(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "settings")
	return r.render("settings", l, r.deps.Settings.Get(ctx))
}

type adminPage struct {
	Dashboard service.Dashboard
	Products  []model.Product
	Orders    []model.Order
	Users     []model.User
}

// Admin renders the dashboard. The route is admin-gated upstream; a non-admin
// session here yields the access prompt.
func (r *Renderer) Admin(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "adminDashboard")
	dash, err := r.deps.Orders.Dashboard(ctx, p.Session)
	if err != nil {
		return r.Prompt(ctx, p, PromptDenied)
	}
	orders, err := r.deps.Orders.ListAll(ctx, p.Session)
	if err != nil {
		return r.Prompt(ctx, p, PromptDenied)
	}
	return r.render("admin", l, adminPage{
		Dashboard: dash,
		Products:  r.deps.Catalog.List(ctx),
		Orders:    orders,
		Users:     r.deps.Users.List(ctx),
	})
}

// Login renders the login and register forms. next is carried through so a
// successful login returns to the page that asked for it.
func (r *Renderer) Login(ctx context.Context, p Page) (string, error) {
	l := r.layout(ctx, p, "login")
	next := p.Query.Get("next")
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	return r.render("login", l, struct {
		Next     string
		Register bool
	}{next, p.Query.Get("mode") == "register"})
}
