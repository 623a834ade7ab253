package repository

import (
	"context"

	"github.com/iliyamo/progear-storefront/internal/kvstore"
)

// WishlistRepo owns the `wishlist` key: user id to product ids. The store
// does not enforce uniqueness; callers do.
type WishlistRepo struct{ store *kvstore.Store }

func NewWishlistRepo(s *kvstore.Store) *WishlistRepo { return &WishlistRepo{store: s} }

func (r *WishlistRepo) Items(ctx context.Context, userID string) []int64 {
	t := kvstore.Get(ctx, r.store, KeyWishlist, map[string][]int64(nil))
	out := make([]int64, len(t[userID]))
	copy(out, t[userID])
	return out
}

// Mutate replaces the user's ids with whatever fn returns.
func (r *WishlistRepo) Mutate(ctx context.Context, userID string, fn func([]int64) ([]int64, error)) error {
	err := kvstore.Update(ctx, r.store, KeyWishlist, func(t *map[string][]int64) error {
		if *t == nil {
			*t = make(map[string][]int64)
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
