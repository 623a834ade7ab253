// Package view renders storefront pages to HTML strings. Renderers read
// state through the interfaces in Deps and never write.
package view

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/url"
	"path"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/progear-storefront/internal/catalog"
	"github.com/iliyamo/progear-storefront/internal/i18n"
	"github.com/iliyamo/progear-storefront/internal/model"
)

//go:embed templates/*.html
var files embed.FS

// Page is the per-request input of every renderer.
type Page struct {
	Path      string
	Query     url.Values
	ProductID int64
	Session   *model.Session
	Notice    string
}

// PageFunc renders one route.
type PageFunc func(ctx context.Context, p Page) (string, error)

// Layout is what the shared chrome needs: nav badges, auth links, theme and
// the winter-sale banner.
type Layout struct {
	Title         string
	Lang          string
	Currency      string
	Theme         string
	Path          string
	Session       *model.Session
	CartCount     int
	WishlistCount int
	Banner        bool
	WinterSale    bool
	Notice        string
	CatalogNotice string
}

type root struct {
	Layout
	Data any
}

// Card is a product prepared for display.
type Card struct {
	Product    model.Product
	Tags       []string
	Stats      catalog.Stats
	Saved      bool
	Lang       string
	Currency   string
	WinterSale bool
}

// Renderer owns the parsed page templates.
type Renderer struct {
	deps  Deps
	pages map[string]*template.Template
}

var pageFiles = []string{
	"home", "products", "search", "categories", "brands", "sale", "winter_sale",
	"product", "cart", "checkout", "orders", "wishlist", "settings", "admin",
	"login", "prompt",
}

// New parses every page against the shared layout.
func New(d Deps) (*Renderer, error) {
	if d.Catalog == nil || d.Cart == nil || d.Wishlist == nil || d.Orders == nil ||
		d.Reviews == nil || d.Settings == nil || d.Users == nil {
		return nil, fmt.Errorf("view: incomplete dependencies")
	}
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse layout: %w", err)
	}
	r := &Renderer{deps: d, pages: make(map[string]*template.Template, len(pageFiles))}
	for _, name := range pageFiles {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(files, path.Join("templates", name+".html")); err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

var funcs = template.FuncMap{
	"t":        i18n.T,
	"price":    func(currency string, d decimal.Decimal) string { return i18n.FormatPrice(d, currency) },
	"winter":   catalog.WinterSalePrice,
	"date":     i18n.FormatDate,
	"category": func(lang, c string) string { return i18n.CategoryName(c, lang) },
	"stars":    stars,
	"starsInt": func(n int) string { return stars(float64(n)) },
	"tagKey":   tagKey,
	"sortKey":  func(m catalog.SortMode) string { return tagKey("sort-" + string(m)) },
	"rating":   func(f float64) string { return fmt.Sprintf("%.1f", f) },
	"statuses": func() []model.OrderStatus {
		return []model.OrderStatus{model.OrderPending, model.OrderProcessing, model.OrderDelivered, model.OrderCancelled}
	},
}

// stars renders a 0..5 rating as filled and empty stars.
func stars(rating float64) string {
	n := int(math.Round(rating))
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// tagKey maps a product tag onto its translation key ("top-rated" → "topRated").
func tagKey(tag string) string {
	parts := strings.Split(tag, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func (r *Renderer) layout(ctx context.Context, p Page, titleKey string) Layout {
	st := r.deps.Settings.Get(ctx)
	promo := r.deps.Settings.Promotions(ctx)
	return Layout{
		Title:         i18n.T(st.Language, titleKey),
		Lang:          st.Language,
		Currency:      st.Currency,
		Theme:         st.Theme,
		Path:          p.Path,
		Session:       p.Session,
		CartCount:     r.deps.Cart.Count(ctx, p.Session),
		WishlistCount: r.deps.Wishlist.Count(ctx, p.Session),
		Banner:        promo.Banner,
		WinterSale:    promo.Active,
		Notice:        p.Notice,
		CatalogNotice: r.deps.Catalog.Notice(),
	}
}

func (r *Renderer) render(name string, l Layout, data any) (string, error) {
	t, ok := r.pages[name]
	if !ok {
		return "", fmt.Errorf("view: unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", root{Layout: l, Data: data}); err != nil {
		return "", fmt.Errorf("view: render %s: %w", name, err)
	}
	return buf.String(), nil
}

// cards prepares products for the product grid in the layout's language.
func (r *Renderer) cards(ctx context.Context, l Layout, s *model.Session, list []model.Product) []Card {
	stats := r.deps.Catalog.StatsIndex(ctx)
	saved := map[int64]bool{}
	for _, id := range r.deps.Wishlist.IDs(ctx, s) {
		saved[id] = true
	}
	out := make([]Card, 0, len(list))
	for _, p := range list {
		st := stats(p.ID)
		out = append(out, Card{
			Product:    i18n.TranslateProduct(p, l.Lang),
			Tags:       catalog.DisplayTags(p, st),
			Stats:      st,
			Saved:      saved[p.ID],
			Lang:       l.Lang,
			Currency:   l.Currency,
			WinterSale: l.WinterSale,
		})
	}
	return out
}

// Pages maps each navigable route onto its renderer.
func (r *Renderer) Pages() map[string]PageFunc {
	return map[string]PageFunc{
		"/":            r.Home,
		"/products":    r.Products,
		"/search":      r.Search,
		"/categories":  r.Categories,
		"/brands":      r.Brands,
		"/sale":        r.Sale,
		"/winter-sale": r.WinterSale,
		"/product":     r.Product,
		"/cart":        r.Cart,
		"/checkout":    r.Checkout,
		"/orders":      r.Orders,
		"/wishlist":    r.Wishlist,
		"/settings":    r.Settings,
		"/admin":       r.Admin,
		"/login":       r.Login,
	}
}

// PromptKind selects the access prompt shown instead of a gated page.
type PromptKind string

const (
	PromptLogin  PromptKind = "login"
	PromptDenied PromptKind = "denied"
)

// Prompt renders the login-required or access-denied page. next is the path
// to return to after login.
func (r *Renderer) Prompt(ctx context.Context, p Page, kind PromptKind) (string, error) {
	titleKey := "login"
	if kind == PromptDenied {
		titleKey = "accessDenied"
	}
	l := r.layout(ctx, p, titleKey)
	return r.render("prompt", l, struct {
		Kind PromptKind
		Next string
	}{kind, p.Path})
}
