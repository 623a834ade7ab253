package repository

import (
	"context"
	"sort"

	"github.com/iliyamo/progear-storefront/internal/kvstore"
	"github.com/iliyamo/progear-storefront/internal/model"
)

// ProductRepo owns the `products` key (a map from product id to Product) and
// the `productsVersion` marker used to force a catalog refetch.
type ProductRepo struct{ store *kvstore.Store }

func NewProductRepo(s *kvstore.Store) *ProductRepo { return &ProductRepo{store: s} }

func (r *ProductRepo) table(ctx context.Context) map[int64]model.Product {
	return kvstore.Get(ctx, r.store, KeyProducts, map[int64]model.Product(nil))
}

// List returns the catalog ordered by id.
func (r *ProductRepo) List(ctx context.Context) []model.Product {
	t := r.table(ctx)
	out := make([]model.Product, 0, len(t))
	for _, p := range t {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *ProductRepo) Count(ctx context.Context) int { return len(r.table(ctx)) }

// GetByID fetches one product.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (model.Product, error) {
	p, ok := r.table(ctx)[id]
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return p, nil
}

// ReplaceAll swaps the whole catalog for items.
func (r *ProductRepo) ReplaceAll(ctx context.Context, items []model.Product) error {
	err := kvstore.Update(ctx, r.store, KeyProducts, func(t *map[int64]model.Product) error {
		next := make(map[int64]model.Product, len(items))
		for _, p := range items {
			next[p.ID] = p
		}
		*t = next
		return nil
	})
	return conflict(err)
}

// Add assigns p the next free id (one past the current maximum) and stores it.
func (r *ProductRepo) Add(ctx context.Context, p model.Product) (model.Product, error) {
	err := kvstore.Update(ctx, r.store, KeyProducts, func(t *map[int64]model.Product) error {
		if *t == nil {
			*t = make(map[int64]model.Product)
		}
		var maxID int64
		for id := range *t {
			if id > maxID {
				maxID = id
			}
		}
		p.ID = maxID + 1
		(*t)[p.ID] = p
		return nil
	})
	return p, conflict(err)
}

// Update applies fn to the stored product and returns the result.
func (r *ProductRepo) Update(ctx context.Context, id int64, fn func(*model.Product) error) (model.Product, error) {
	var out model.Product
	err := kvstore.Update(ctx, r.store, KeyProducts, func(t *map[int64]model.Product) error {
		p, ok := (*t)[id]
		if !ok {
			return ErrProductNotFound
		}
		if err := fn(&p); err != nil {
			return err
		}
		p.ID = id
		(*t)[id] = p
		out = p
		return nil
	})
	return out, conflict(err)
}

// Delete removes the product and reports whether anything was removed.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	removed := false
	err := kvstore.Update(ctx, r.store, KeyProducts, func(t *map[int64]model.Product) error {
		if _, ok := (*t)[id]; ok {
			delete(*t, id)
			removed = true
		}
		return nil
	})
	return removed, conflict(err)
}

// Version returns the stored catalog schema marker ("" when unset).
func (r *ProductRepo) Version(ctx context.Context) string {
	return kvstore.Get(ctx, r.store, KeyProductsVersion, "")
}

func (r *ProductRepo) SetVersion(ctx context.Context, v string) bool {
	return r.store.Set(ctx, KeyProductsVersion, v)
}
