// Package catalog owns the product list: seeding from the upstream feed,
// admin edits, ranking stats, sorting, filtering and search.
package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/progear-storefront/internal/auth"
	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/repository"
)

// FeaturedLimit is the number of products shown on the home page.
const FeaturedLimit = 8

// NoticeLoadFailed is shown to shoppers while the last feed fetch has failed.
const NoticeLoadFailed = "Failed to load products"

// ErrInvalidProduct is returned when an admin submits a product without a
// title or with a non-positive price.
var ErrInvalidProduct = errors.New("Product title and a positive price are required")

var winterSaleFactor = decimal.RequireFromString("0.8")

// WinterSalePrice is the promotional price: 20% off.
func WinterSalePrice(p model.Product) decimal.Decimal {
	return p.Price.Mul(winterSaleFactor)
}

// ProductInput is the admin-editable part of a product.
type ProductInput struct {
	Title       string
	Price       decimal.Decimal
	Category    string
	Brand       string
	Image       string
	Description string
}

// Query combines filtering and ordering for listing pages.
type Query struct {
	Criteria
	Sort SortMode
}

// Catalog serves product reads and admin writes.
type Catalog struct {
	products *repository.ProductRepo
	reviews  *repository.ReviewRepo
	feed     Feed
	log      logrus.FieldLogger

	// OnRefresh runs after a successful Refresh, e.g. to drop cached listings
	// that were served while the catalog was still empty.
	OnRefresh func(context.Context) error

	mu     sync.RWMutex
	notice string
}

// New wires the catalog. It panics when a repository is missing.
func New(products *repository.ProductRepo, reviews *repository.ReviewRepo, feed Feed, log logrus.FieldLogger) *Catalog {
	if products == nil || reviews == nil {
		panic("nil repository passed to catalog.New")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Catalog{products: products, reviews: reviews, feed: feed, log: log}
}

// EnsureFresh refetches the catalog when it is empty or was written under a
// different schema version. It is meant to run once at boot, in the
// background; readers racing it see the previous (possibly empty) catalog.
func (c *Catalog) EnsureFresh(ctx context.Context) error {
	count := c.products.Count(ctx)
	version := c.products.Version(ctx)
	if count > 0 && version == SchemaVersion {
		c.log.WithField("products", count).Debug("catalog: cached catalog is current")
		return nil
	}
	c.log.WithFields(logrus.Fields{"products": count, "version": version}).Info("catalog: refreshing from feed")
	return c.Refresh(ctx)
}

// Refresh replaces the stored catalog with a fresh enriched copy of the feed.
// On failure the previous catalog stays and a notice is raised for the views.
func (c *Catalog) Refresh(ctx context.Context) error {
	if c.feed == nil {
		return errors.New("catalog: no feed configured")
	}
	items, err := c.feed.Fetch(ctx)
	if err != nil {
		c.log.WithError(err).Error("catalog: feed fetch failed")
		c.setNotice(NoticeLoadFailed)
		return err
	}
	products := Enrich(items)
	if err := c.products.ReplaceAll(ctx, products); err != nil {
		c.log.WithError(err).Error("catalog: store failed")
		c.setNotice(NoticeLoadFailed)
		return err
	}
	c.products.SetVersion(ctx, SchemaVersion)
	c.setNotice("")
	c.log.WithField("products", len(products)).Info("catalog: refreshed")
	if c.OnRefresh != nil {
		if err := c.OnRefresh(ctx); err != nil {
			c.log.WithError(err).Warn("catalog: refresh hook failed")
		}
	}
	return nil
}

func (c *Catalog) setNotice(n string) {
	c.mu.Lock()
	c.notice = n
	c.mu.Unlock()
}

// Notice returns the pending user-facing catalog notice, if any.
func (c *Catalog) Notice() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notice
}

// List returns every product ordered by id.
func (c *Catalog) List(ctx context.Context) []model.Product { return c.products.List(ctx) }

// Get returns one product.
func (c *Catalog) Get(ctx context.Context, id int64) (model.Product, error) {
	return c.products.GetByID(ctx, id)
}

// Count returns the number of products.
func (c *Catalog) Count(ctx context.Context) int { return c.products.Count(ctx) }

// StatsIndex returns stats for the current catalog and reviews.
func (c *Catalog) StatsIndex(ctx context.Context) StatsFunc {
	return StatsIndex(c.products.List(ctx), c.reviews.All(ctx))
}

// Stats computes the ranking stats of one product.
func (c *Catalog) Stats(ctx context.Context, id int64) Stats {
	p, err := c.products.GetByID(ctx, id)
	if err != nil {
		return Stats{}
	}
	return ComputeStats(p, c.reviews.ByProduct(ctx, id))
}

// Browse filters then sorts the catalog.
func (c *Catalog) Browse(ctx context.Context, q Query) []model.Product {
	stats := c.StatsIndex(ctx)
	return Sort(Filter(c.products.List(ctx), q.Criteria, stats), q.Sort, stats)
}

// Featured returns the first products in default order.
func (c *Catalog) Featured(ctx context.Context) []model.Product {
	list := c.Browse(ctx, Query{Sort: SortDefault})
	if len(list) > FeaturedLimit {
		list = list[:FeaturedLimit]
	}
	return list
}

// Search runs a substring search over the catalog.
func (c *Catalog) Search(ctx context.Context, query string) []model.Product {
	return Search(c.products.List(ctx), query)
}

// Suggest returns the search dropdown entries.
func (c *Catalog) Suggest(ctx context.Context, query string) []model.Product {
	return Suggest(c.products.List(ctx), query)
}

func (c *Catalog) Categories(ctx context.Context) []Facet { return Categories(c.products.List(ctx)) }
func (c *Catalog) Brands(ctx context.Context) []Facet     { return Brands(c.products.List(ctx)) }

// Add stores an admin-created product under a fresh id.
func (c *Catalog) Add(ctx context.Context, s *model.Session, in ProductInput) (model.Product, error) {
	if !s.IsAdmin() {
		return model.Product{}, auth.ErrAdminRequired
	}
	if err := checkInput(in); err != nil {
		return model.Product{}, err
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = FallbackCategory
	}
	p, err := c.products.Add(ctx, model.Product{
		Title:       strings.TrimSpace(in.Title),
		Price:       in.Price,
		Category:    category,
		Brand:       strings.TrimSpace(in.Brand),
		Image:       strings.TrimSpace(in.Image),
		Description: strings.TrimSpace(in.Description),
		Tags:        generateTags(in.Price, 0),
		AdminAdded:  true,
	})
	if err != nil {
		return model.Product{}, err
	}
	c.log.WithFields(logrus.Fields{"product_id": p.ID, "admin": s.Email}).Info("catalog: product added")
	return p, nil
}

// Update edits an existing product. Orders already placed keep their copied
// prices.
func (c *Catalog) Update(ctx context.Context, s *model.Session, id int64, in ProductInput) (model.Product, error) {
	if !s.IsAdmin() {
		return model.Product{}, auth.ErrAdminRequired
	}
	if err := checkInput(in); err != nil {
		return model.Product{}, err
	}
	return c.products.Update(ctx, id, func(p *model.Product) error {
		p.Title = strings.TrimSpace(in.Title)
		p.Price = in.Price
		if v := strings.TrimSpace(in.Category); v != "" {
			p.Category = v
		}
		if v := strings.TrimSpace(in.Brand); v != "" {
			p.Brand = v
		}
		if v := strings.TrimSpace(in.Image); v != "" {
			p.Image = v
		}
		if v := strings.TrimSpace(in.Description); v != "" {
			p.Description = v
		}
		return nil
	})
}

// Delete removes a product and reports whether one was removed.
func (c *Catalog) Delete(ctx context.Context, s *model.Session, id int64) (bool, error) {
	if !s.IsAdmin() {
		return false, auth.ErrAdminRequired
	}
	removed, err := c.products.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		c.log.WithFields(logrus.Fields{"product_id": id, "admin": s.Email}).Info("catalog: product deleted")
	}
	return removed, nil
}

func checkInput(in ProductInput) error {
	if strings.TrimSpace(in.Title) == "" || !in.Price.IsPositive() {
		return ErrInvalidProduct
	}
	return nil
}
