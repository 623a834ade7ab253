package repository

import (
	"context"

	"github.com/iliyamo/progear-storefront/internal/kvstore"
	"github.com/iliyamo/progear-storefront/internal/model"
)

// CartRepo owns the `cart` key: user id to the ordered lines of that user's cart.
type CartRepo struct{ store *kvstore.Store }

func NewCartRepo(s *kvstore.Store) *CartRepo { return &CartRepo{store: s} }

// Lines returns a copy of the user's cart.
func (r *CartRepo) Lines(ctx context.Context, userID string) []model.CartLine {
	t := kvstore.Get(ctx, r.store, KeyCart, map[string][]model.CartLine(nil))
	lines := t[userID]
	out := make([]model.CartLine, len(lines))
	copy(out, lines)
	return out
}

// Mutate replaces the user's lines with whatever fn returns. An empty result
// drops the user's entry.
func (r *CartRepo) Mutate(ctx context.Context, userID string, fn func([]model.CartLine) ([]model.CartLine, error)) error {
	err := kvstore.Update(ctx, r.store, KeyCart, func(t *map[string][]model.CartLine) error {
		if *t == nil {
			*t = make(map[string][]model.CartLine)
		}
		next, err := fn((*t)[userID])
		if err != nil {
			return err
		}
		if len(next) == 0 {
			delete(*t, userID)
			return nil
		}
		(*t)[userID] = next
		return nil
	})
	return conflict(err)
}

// Clear empties the user's cart.
func (r *CartRepo) Clear(ctx context.Context, userID string) error {
	return r.Mutate(ctx, userID, func([]model.CartLine) ([]model.CartLine, error) { return nil, nil })
}
