package view

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/progear-storefront/internal/catalog"
	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/service"
)

// Catalog is the product read side the pages need.
type Catalog interface {
	List(ctx context.Context) []model.Product
	Get(ctx context.Context, id int64) (model.Product, error)
	Browse(ctx context.Context, q catalog.Query) []model.Product
	Featured(ctx context.Context) []model.Product
	Search(ctx context.Context, query string) []model.Product
	StatsIndex(ctx context.Context) catalog.StatsFunc
	Categories(ctx context.Context) []catalog.Facet
	Brands(ctx context.Context) []catalog.Facet
	Notice() string
}

type Cart interface {
	Items(ctx context.Context, s *model.Session) []service.CartItem
	Count(ctx context.Context, s *model.Session) int
	Total(ctx context.Context, s *model.Session) decimal.Decimal
}

type Wishlist interface {
	Items(ctx context.Context, s *model.Session) []model.Product
	IDs(ctx context.Context, s *model.Session) []int64
	Count(ctx context.Context, s *model.Session) int
}

type Orders interface {
	ListForUser(ctx context.Context, s *model.Session) []model.Order
	ListAll(ctx context.Context, s *model.Session) ([]model.Order, error)
	Dashboard(ctx context.Context, s *model.Session) (service.Dashboard, error)
}

type Reviews interface {
	List(ctx context.Context, productID int64) []model.Review
}

type Settings interface {
	Get(ctx context.Context) model.Settings
	Promotions(ctx context.Context) service.Promotions
}

type Users interface {
	List(ctx context.Context) []model.User
}

// Deps bundles everything the renderers read. Every field is required.
type Deps struct {
	Catalog  Catalog
	Cart     Cart
	Wishlist Wishlist
	Orders   Orders
	Reviews  Reviews
	Settings Settings
	Users    Users
}
