package router

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/progear-storefront/internal/auth"
	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/view"
)

// Request is a parsed navigation target. Route is the page key; ProductID is
// set for /product/<id>.
type Request struct {
	Path      string
	Route     string
	ProductID int64
	Query     url.Values
}

// ParseRequest splits a raw path such as "/product/7?x=1" into its route,
// product id and query. A non-numeric product id yields ProductID 0, which
// renders as not found.
func ParseRequest(raw string) Request {
	u, err := url.Parse(raw)
	if err != nil {
		return Request{Path: "/", Route: "/", Query: url.Values{}}
	}
	p := u.Path
	if p == "" {
		p = "/"
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	req := Request{Path: p, Route: p, Query: u.Query()}
	if rest, ok := strings.CutPrefix(p, "/product/"); ok {
		req.Route = "/product"
		if id, err := strconv.ParseInt(rest, 10, 64); err == nil && id > 0 {
			req.ProductID = id
		}
	}
	// legacy /products?search=q links
	if req.Route == "/products" && req.Query.Get("search") != "" {
		req.Route = "/search"
		req.Query.Set("q", req.Query.Get("search"))
	}
	return req
}

// Outcome is the result of one navigation. When Denied is set, Markup holds
// the access prompt and the page was not rendered.
type Outcome struct {
	Route  string
	Tier   auth.Tier
	Denied bool
	Prompt view.PromptKind
	Markup string
}

// Pages is the rendering side of the navigator.
type Pages interface {
	Pages() map[string]view.PageFunc
	Prompt(ctx context.Context, p view.Page, kind view.PromptKind) (string, error)
}

// Navigator resolves a request to a page, checking access first.
type Navigator struct {
	pages  map[string]view.PageFunc
	render Pages
	log    logrus.FieldLogger
	warned sync.Map
}

func NewNavigator(p Pages, log logrus.FieldLogger) *Navigator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Navigator{pages: p.Pages(), render: p, log: log}
}

// Navigate checks access for the requested route and renders it, or the
// home page when the route is unknown. A denied request renders the login
// prompt for anonymous sessions and the access-denied prompt otherwise.
func (n *Navigator) Navigate(ctx context.Context, req Request, s *model.Session) (Outcome, error) {
	tier := auth.ClassifyRoute(req.Route)
	page := view.Page{
		Path:      req.Path,
		Query:     req.Query,
		ProductID: req.ProductID,
		Session:   s,
		Notice:    req.Query.Get("notice"),
	}
	if !auth.CanAccessRoute(req.Route, s) {
		kind := view.PromptDenied
		if !s.IsLoggedIn() {
			kind = view.PromptLogin
		}
		n.log.WithFields(logrus.Fields{"route": req.Route, "tier": tier.String()}).Info("navigate: access denied")
		markup, err := n.render.Prompt(ctx, page, kind)
		return Outcome{Route: req.Route, Tier: tier, Denied: true, Prompt: kind, Markup: markup}, err
	}

	route := req.Route
	render, ok := n.pages[route]
	if !ok {
		n.log.WithField("route", route).Debug("navigate: unknown route, falling back to home")
		route = "/"
		render = n.pages[route]
	} else if tier == auth.TierUnlisted {
		if _, seen := n.warned.LoadOrStore(route, true); !seen {
			n.log.WithField("route", route).Warn("navigate: route has no access tier and is served to everyone")
		}
	}
	markup, err := render(ctx, page)
	return Outcome{Route: route, Tier: tier, Markup: markup}, err
}

// NavigateURI parses uri and navigates to it. It serves the HTTP page
// handler, which only needs the markup and whether access was denied.
func (n *Navigator) NavigateURI(ctx context.Context, uri string, s *model.Session) (string, bool, error) {
	out, err := n.Navigate(ctx, ParseRequest(uri), s)
	return out.Markup, out.Denied, err
}
