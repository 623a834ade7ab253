package repository

import (
	"context"

	"github.com/iliyamo/progear-storefront/internal/kvstore"
	"github.com/iliyamo/progear-storefront/internal/model"
)

// ReviewRepo owns the `comments` key: product id to reviews in submission order.
type ReviewRepo struct{ store *kvstore.Store }

func NewReviewRepo(s *kvstore.Store) *ReviewRepo { return &ReviewRepo{store: s} }

// All returns every product's reviews in one read.
func (r *ReviewRepo) All(ctx context.Context) map[int64][]model.Review {
	return kvstore.Get(ctx, r.store, KeyComments, map[int64][]model.Review{})
}

func (r *ReviewRepo) ByProduct(ctx context.Context, productID int64) []model.Review {
	return r.All(ctx)[productID]
}

// Append adds rv to the end of its product's reviews.
func (r *ReviewRepo) Append(ctx context.Context, rv model.Review) error {
	err := kvstore.Update(ctx, r.store, KeyComments, func(t *map[int64][]model.Review) error {
		if *t == nil {
			*t = make(map[int64][]model.Review)
		}
		(*t)[rv.ProductID] = append((*t)[rv.ProductID], rv)
		return nil
	})
	return conflict(err)
}
