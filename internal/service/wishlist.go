package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/repository"
)

// Wishlist manages saved products. A product appears at most once per user.
type Wishlist struct {
	lists    *repository.WishlistRepo
	products *repository.ProductRepo
	log      logrus.FieldLogger
}

func NewWishlist(lists *repository.WishlistRepo, products *repository.ProductRepo, log logrus.FieldLogger) *Wishlist {
	if lists == nil || products == nil {
		panic("nil repository passed to service.NewWishlist")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Wishlist{lists: lists, products: products, log: log}
}

func (w *Wishlist) Add(ctx context.Context, s *model.Session, productID int64) error {
	if !s.IsLoggedIn() {
		return ErrLoginRequired
	}
	if _, err := w.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return w.lists.Mutate(ctx, s.UserID, func(ids []int64) ([]int64, error) {
		if indexOf(ids, productID) >= 0 {
			return ids, nil
		}
		return append(ids, productID), nil
	})
}

func (w *Wishlist) Remove(ctx context.Context, s *model.Session, productID int64) error {
	if !s.IsLoggedIn() {
		return ErrLoginRequired
	}
	return w.lists.Mutate(ctx, s.UserID, func(ids []int64) ([]int64, error) {
		if i := indexOf(ids, productID); i >= 0 {
			return append(ids[:i], ids[i+1:]...), nil
		}
		return ids, nil
	})
}

// Toggle flips membership and returns whether the product is now saved.
// Toggling twice restores the original list.
func (w *Wishlist) Toggle(ctx context.Context, s *model.Session, productID int64) (bool, error) {
	if !s.IsLoggedIn() {
		return false, ErrLoginRequired
	}
	var saved bool
	err := w.lists.Mutate(ctx, s.UserID, func(ids []int64) ([]int64, error) {
		if i := indexOf(ids, productID); i >= 0 {
			saved = false
			return append(ids[:i], ids[i+1:]...), nil
		}
		saved = true
		return append(ids, productID), nil
	})
	if err != nil {
		return false, err
	}
	w.log.WithFields(logrus.Fields{"user_id": s.UserID, "product_id": productID, "saved": saved}).Debug("wishlist: toggled")
	return saved, nil
}

// IDs returns the saved product ids in the order they were added.
func (w *Wishlist) IDs(ctx context.Context, s *model.Session) []int64 {
	if !s.IsLoggedIn() {
		return []int64{}
	}
	return w.lists.Items(ctx, s.UserID)
}

// Items returns the saved products that still exist in the catalog.
func (w *Wishlist) Items(ctx context.Context, s *model.Session) []model.Product {
	out := []model.Product{}
	for _, id := range w.IDs(ctx, s) {
		if p, err := w.products.GetByID(ctx, id); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func (w *Wishlist) Contains(ctx context.Context, s *model.Session, productID int64) bool {
	return indexOf(w.IDs(ctx, s), productID) >= 0
}

func (w *Wishlist) Count(ctx context.Context, s *model.Session) int { return len(w.IDs(ctx, s)) }

func indexOf(ids []int64, id int64) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
